package middleware

import (
	"log/slog"
	"net/http"
	"net/url"

	"github.com/heartmarshall/ainotes/internal/domain"
	"github.com/heartmarshall/ainotes/pkg/ctxutil"
)

// sessionValidator decodes a session token into an identity.
type sessionValidator interface {
	Validate(token string) (domain.Identity, error)
}

// Session returns middleware that loads the identity from the session
// cookie into the request context. A missing, tampered or expired cookie
// leaves the request anonymous; it never rejects.
func Session(cookieName string, validator sessionValidator, logger *slog.Logger) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			c, err := r.Cookie(cookieName)
			if err != nil || c.Value == "" {
				next.ServeHTTP(w, r)
				return
			}

			id, err := validator.Validate(c.Value)
			if err != nil {
				logger.DebugContext(r.Context(), "session rejected", slog.String("error", err.Error()))
				next.ServeHTTP(w, r)
				return
			}

			next.ServeHTTP(w, r.WithContext(ctxutil.WithUser(r.Context(), id.UserID, id.Username)))
		})
	}
}

// RequireAuth returns middleware that redirects anonymous requests to
// loginPath with 303 See Other. The wrapped handler is not invoked.
// For GET requests the original path is passed as ?next=.
func RequireAuth(loginPath string) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if _, ok := ctxutil.UserIDFromCtx(r.Context()); ok {
				next.ServeHTTP(w, r)
				return
			}

			target := r.URL.RequestURI()
			if r.Method != http.MethodGet && r.Method != http.MethodHead {
				target = "/"
			}
			http.Redirect(w, r, loginPath+"?next="+url.QueryEscape(target), http.StatusSeeOther)
		})
	}
}
