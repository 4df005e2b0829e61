package app

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/campcal/campcal/internal/config"
	"github.com/campcal/campcal/pkg/session"
	"github.com/campcal/campcal/pkg/user"
	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
)

func newMiddlewareTestRouter(sessions *session.RepositoryStub, users *user.StubUserRepo) (*mux.Router, *string) {
	deps := &Dependencies{
		SessionRepo: sessions,
		UserService: user.NewUserService(users),
	}

	r := mux.NewRouter()
	SetupMiddleware(r, deps, config.Application{})

	var seenUserId string
	r.HandleFunc("/probe", func(w http.ResponseWriter, req *http.Request) {
		if id, err := user.CurrentId(req.Context()); err == nil {
			seenUserId = id
		} else {
			seenUserId = ""
		}
		w.WriteHeader(http.StatusOK)
	})
	return r, &seenUserId
}

func TestSessionMiddleware(t *testing.T) {
	now := time.Now()

	testUser := user.User{Sub: "sub-1", DisplayName: "Camper"}
	users := user.NewStubUserRepo()
	stored, _ := users.UpsertUser(context.Background(), testUser)

	t.Run("valid session cookie resolves the user", func(t *testing.T) {
		sessions := session.NewRepositoryStub()
		sessions.Put(session.Session{Sid: "sid-1", UserId: stored.Id, ExpiresAt: now.Add(time.Hour)})
		router, seen := newMiddlewareTestRouter(sessions, users)

		req := httptest.NewRequest("GET", "/probe", nil)
		req.AddCookie(&http.Cookie{Name: session.CookieName, Value: "sid-1"})
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, stored.Id, *seen)
	})

	t.Run("no cookie proceeds anonymously", func(t *testing.T) {
		router, seen := newMiddlewareTestRouter(session.NewRepositoryStub(), users)

		req := httptest.NewRequest("GET", "/probe", nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Empty(t, *seen)
	})

	t.Run("unknown session proceeds anonymously", func(t *testing.T) {
		router, seen := newMiddlewareTestRouter(session.NewRepositoryStub(), users)

		req := httptest.NewRequest("GET", "/probe", nil)
		req.AddCookie(&http.Cookie{Name: session.CookieName, Value: "nope"})
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Empty(t, *seen)
	})

	t.Run("expired session proceeds anonymously", func(t *testing.T) {
		sessions := session.NewRepositoryStub()
		sessions.Put(session.Session{Sid: "sid-old", UserId: stored.Id, ExpiresAt: now.Add(-time.Hour)})
		router, seen := newMiddlewareTestRouter(sessions, users)

		req := httptest.NewRequest("GET", "/probe", nil)
		req.AddCookie(&http.Cookie{Name: session.CookieName, Value: "sid-old"})
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Empty(t, *seen)
	})
}
