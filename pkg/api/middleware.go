package api

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/xdpzq/devcore/pkg/auth"
	"github.com/xdpzq/devcore/pkg/logger"
)

// RequestID tags every request context so log lines from one request can
// be correlated.
func RequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := logger.ContextWithRequestID(r.Context(), uuid.NewString())
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// EnsureSession resolves the session cookie to its in-memory state,
// creating a fresh guest session when the cookie is missing or stale.
func EnsureSession(store *auth.SessionStore) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			var sess *auth.Session
			if cookie, err := r.Cookie(auth.CookieName); err == nil {
				sess, _ = store.Get(cookie.Value)
			}
			if sess == nil {
				sess = store.Create()
				http.SetCookie(w, &http.Cookie{
					Name:     auth.CookieName,
					Value:    sess.Token,
					Path:     "/",
					HttpOnly: true,
					SameSite: http.SameSiteLaxMode,
				})
			}

			ctx := auth.ContextWithSession(r.Context(), sess)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireAdmin guards the admin surface. It assumes EnsureSession already
// ran.
func RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sess := auth.SessionFromContext(r.Context())
		if sess == nil || !sess.IsAdmin() {
			http.Error(w, "root access only", http.StatusForbidden)
			return
		}
		next.ServeHTTP(w, r)
	})
}
