// Package requestid provides middleware that assigns every request a unique
// identifier so log lines for one computation can be correlated.
package requestid

import (
	"net/http"

	"github.com/google/uuid"

	"sigmahub/pkg/requestcontext"
)

// Header is the response header carrying the request identifier.
const Header = "X-Request-Id"

// Middleware reuses the caller-supplied X-Request-Id when present, otherwise
// generates a UUID. The ID is stored in the context and echoed on the response.
func Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := r.Header.Get(Header)
		if requestID == "" {
			requestID = uuid.NewString()
		}

		ctx := requestcontext.WithRequestID(r.Context(), requestID)
		w.Header().Set(Header, requestID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
