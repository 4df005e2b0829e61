package app

import (
	"net/http"
	"time"

	"github.com/campcal/campcal/internal/config"
	"github.com/campcal/campcal/pkg/session"
	"github.com/campcal/campcal/pkg/user"
	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

// SetupMiddleware wires all HTTP middlewares for the application.
func SetupMiddleware(r *mux.Router, deps *Dependencies, cfg config.Application) {

	// Resolve the session cookie into a user in the request context.
	// Requests without a valid session proceed anonymously; handlers that
	// require identity answer 401 themselves.
	r.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
			ctx := req.Context()

			cookie, err := req.Cookie(session.CookieName)
			if err == nil && cookie.Value != "" {
				s, err := deps.SessionRepo.GetSession(ctx, cookie.Value)
				if err != nil {
					log.Debugf("session %s not found", cookie.Value)
				} else if s.Expired(time.Now()) {
					log.Debugf("session %s expired at %s", s.Sid, s.ExpiresAt)
				} else {
					u, err := deps.UserService.GetUser(ctx, s.UserId)
					if err != nil {
						log.Warnf("session %s references missing user %s: %v", s.Sid, s.UserId, err)
					} else {
						ctx = user.WithUser(ctx, u)
					}
				}
			}

			next.ServeHTTP(w, req.WithContext(ctx))
		})
	})
}
