package google

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/campcal/campcal/internal/config"
	"github.com/campcal/campcal/internal/test_utils"
	"github.com/campcal/campcal/pkg/session"
	"github.com/campcal/campcal/pkg/user"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/oauth2"
)

var testDB *pgxpool.Pool

func TestMain(m *testing.M) {
	container, connect := test_utils.TestWithDB()
	testDB = connect()
	code := m.Run()
	testDB.Close()
	_ = container.Terminate(context.Background())
	os.Exit(code)
}

func storeTestUser(t *testing.T) user.User {
	t.Helper()
	u, err := user.NewUserRepo(testDB).UpsertUser(context.Background(), user.User{
		Sub:         uuid.New().String(),
		DisplayName: "Test Camper",
	})
	require.NoError(t, err)
	return u
}

func TestTokenStorage(t *testing.T) {
	ctx := context.Background()
	auth := NewGoogleAuth(testDB, nil, session.NewRepositoryStub(), config.Application{})
	u := storeTestUser(t)

	t.Run("no stored token yields nil", func(t *testing.T) {
		token, err := auth.getToken(ctx, u.Id)
		require.NoError(t, err)
		assert.Nil(t, token)
	})

	t.Run("token round-trips", func(t *testing.T) {
		expiry := time.Now().Add(time.Hour).Truncate(time.Second)
		err := auth.storeToken(ctx, u.Id, &oauth2.Token{
			AccessToken:  "access-1",
			RefreshToken: "refresh-1",
			Expiry:       expiry,
		})
		require.NoError(t, err)

		token, err := auth.getToken(ctx, u.Id)
		require.NoError(t, err)
		require.NotNil(t, token)
		assert.Equal(t, "access-1", token.AccessToken)
		assert.Equal(t, "refresh-1", token.RefreshToken)
		assert.Equal(t, expiry.Unix(), token.Expiry.Unix())
	})

	t.Run("re-auth without refresh token keeps the stored one", func(t *testing.T) {
		err := auth.storeToken(ctx, u.Id, &oauth2.Token{
			AccessToken: "access-2",
			Expiry:      time.Now().Add(time.Hour),
		})
		require.NoError(t, err)

		token, err := auth.getToken(ctx, u.Id)
		require.NoError(t, err)
		require.NotNil(t, token)
		assert.Equal(t, "access-2", token.AccessToken)
		assert.Equal(t, "refresh-1", token.RefreshToken)
	})

	t.Run("delete removes the row", func(t *testing.T) {
		require.NoError(t, auth.deleteToken(ctx, u.Id))

		token, err := auth.getToken(ctx, u.Id)
		require.NoError(t, err)
		assert.Nil(t, token)
	})
}

func TestOAuthLogout(t *testing.T) {
	ctx := context.Background()
	sessions := session.NewRepositoryStub()
	auth := NewGoogleAuth(testDB, nil, sessions, config.Application{})
	u := storeTestUser(t)

	require.NoError(t, auth.storeToken(ctx, u.Id, &oauth2.Token{
		AccessToken: "access-1",
		Expiry:      time.Now().Add(time.Hour),
	}))
	sessions.Put(session.Session{Sid: "sid-1", UserId: u.Id, ExpiresAt: time.Now().Add(time.Hour)})

	req := httptest.NewRequest("DELETE", "/api/auth/google/logout", nil)
	req.AddCookie(&http.Cookie{Name: session.CookieName, Value: "sid-1"})
	rec := httptest.NewRecorder()

	auth.OAuthLogout(rec, req)

	assert.Equal(t, http.StatusNoContent, rec.Code)

	// Session and stored Google token are both gone
	_, err := sessions.GetSession(ctx, "sid-1")
	assert.ErrorIs(t, err, session.ErrSessionNotFound)
	token, err := auth.getToken(ctx, u.Id)
	require.NoError(t, err)
	assert.Nil(t, token)

	// Logging out without a session cookie is still a 204
	rec = httptest.NewRecorder()
	auth.OAuthLogout(rec, httptest.NewRequest("DELETE", "/api/auth/google/logout", nil))
	assert.Equal(t, http.StatusNoContent, rec.Code)
}
