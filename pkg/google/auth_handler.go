package google

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/campcal/campcal/internal/config"
	"github.com/campcal/campcal/internal/rest"
	"github.com/campcal/campcal/pkg/session"
	"github.com/campcal/campcal/pkg/user"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	log "github.com/sirupsen/logrus"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	gcal "google.golang.org/api/calendar/v3"
	oauth2api "google.golang.org/api/oauth2/v2"
	"google.golang.org/api/option"
)

const (
	nonceCookieName = "campcal_oauth_nonce"
	sessionLifetime = 30 * 24 * time.Hour
)

type googleAuthRedirect struct {
	RedirectUrl string `json:"redirectUrl"`
}

// GoogleAuth implements the OAuth login flow: it is the only way sessions and
// users are created in this application.
type GoogleAuth struct {
	db          *pgxpool.Pool
	users       user.Service
	sessions    session.Repository
	oauthConfig *oauth2.Config
}

func NewGoogleAuth(db *pgxpool.Pool, users user.Service, sessions session.Repository, cfg config.Application) *GoogleAuth {
	oauthConfig := &oauth2.Config{
		ClientID:     cfg.Google.ClientId,
		ClientSecret: cfg.Google.ClientSecret,
		Endpoint:     google.Endpoint,
		RedirectURL:  cfg.Host + "/api/auth/google/callback",
		Scopes:       []string{oauth2api.UserinfoEmailScope, oauth2api.UserinfoProfileScope, gcal.CalendarReadonlyScope},
	}

	return &GoogleAuth{db: db, users: users, sessions: sessions, oauthConfig: oauthConfig}
}

func (g *GoogleAuth) OAuthLogin(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	stateNonce := uuid.New().String()
	finalUrl := r.URL.Query().Get("finalUrl")
	if finalUrl == "" {
		finalUrl = "/"
	}

	http.SetCookie(w, &http.Cookie{
		Name:     nonceCookieName,
		Value:    stateNonce,
		Path:     "/",
		MaxAge:   int((10 * time.Minute).Seconds()),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	log.Tracef("Redirecting to Google auth URL with nonce: %s", stateNonce)
	u := g.oauthConfig.AuthCodeURL(finalUrl+"|"+stateNonce, oauth2.AccessTypeOffline)

	w.WriteHeader(http.StatusOK)
	encodeErr := json.NewEncoder(w).Encode(googleAuthRedirect{
		RedirectUrl: u,
	})
	if encodeErr != nil {
		http.Error(w, encodeErr.Error(), http.StatusInternalServerError)
	}
}

func (g *GoogleAuth) OAuthCallback(w http.ResponseWriter, r *http.Request) {
	code := r.FormValue("code")
	state := r.FormValue("state")

	parts := strings.SplitN(state, "|", 2)
	if len(parts) != 2 {
		http.Error(w, "invalid state parameter", http.StatusBadRequest)
		return
	}
	finalUrl := parts[0]
	nonce := parts[1]

	nonceCookie, err := r.Cookie(nonceCookieName)
	if err != nil || nonceCookie.Value != nonce {
		log.Warn("OAuth callback with missing or mismatched nonce")
		http.Redirect(w, r, finalUrl+"?success=false", http.StatusFound)
		return
	}

	token, err := g.oauthConfig.Exchange(r.Context(), code)
	if err != nil {
		log.Errorf("unable to exchange code for token: %v", err)
		http.Redirect(w, r, finalUrl+"?success=false", http.StatusFound)
		return
	}

	info, err := g.fetchUserinfo(r.Context(), token)
	if err != nil {
		log.Errorf("unable to fetch Google userinfo: %v", err)
		http.Redirect(w, r, finalUrl+"?success=false", http.StatusFound)
		return
	}

	authenticatedUser, err := g.users.UpsertUser(r.Context(), user.User{
		Sub:         info.Id,
		Email:       info.Email,
		DisplayName: info.Name,
		PhotoUrl:    info.Picture,
	})
	if err != nil {
		log.Errorf("unable to upsert user: %v", err)
		http.Redirect(w, r, finalUrl+"?success=false", http.StatusFound)
		return
	}

	if err := g.storeToken(r.Context(), authenticatedUser.Id, token); err != nil {
		log.Errorf("unable to store Google auth token: %v", err)
		http.Redirect(w, r, finalUrl+"?success=false", http.StatusFound)
		return
	}

	newSession, err := g.sessions.CreateSession(r.Context(), authenticatedUser.Id, time.Now().Add(sessionLifetime))
	if err != nil {
		log.Errorf("unable to create session: %v", err)
		http.Redirect(w, r, finalUrl+"?success=false", http.StatusFound)
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     session.CookieName,
		Value:    newSession.Sid,
		Path:     "/",
		Expires:  newSession.ExpiresAt,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	log.Debugf("Authenticated user %s via Google", authenticatedUser.Id)
	http.Redirect(w, r, finalUrl+"?success=true", http.StatusFound)
}

func (g *GoogleAuth) OAuthLogout(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	cookie, err := r.Cookie(session.CookieName)
	if err == nil {
		if s, err := g.sessions.GetSession(r.Context(), cookie.Value); err == nil {
			if err := g.deleteToken(r.Context(), s.UserId); err != nil {
				log.Errorf("failed to delete Google auth token: %v", err)
				w.WriteHeader(http.StatusInternalServerError)
				encodeErr := json.NewEncoder(w).Encode(rest.ErrorResponse{
					Error: "Failed to log out",
				})
				if encodeErr != nil {
					http.Error(w, encodeErr.Error(), http.StatusInternalServerError)
				}
				return
			}
		}
		if err := g.sessions.DeleteSession(r.Context(), cookie.Value); err != nil {
			log.Errorf("failed to delete session: %v", err)
			w.WriteHeader(http.StatusInternalServerError)
			encodeErr := json.NewEncoder(w).Encode(rest.ErrorResponse{
				Error: "Failed to log out",
			})
			if encodeErr != nil {
				http.Error(w, encodeErr.Error(), http.StatusInternalServerError)
			}
			return
		}
	}

	http.SetCookie(w, &http.Cookie{
		Name:     session.CookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
	})
	w.WriteHeader(http.StatusNoContent)
}

func (g *GoogleAuth) fetchUserinfo(ctx context.Context, token *oauth2.Token) (*oauth2api.Userinfo, error) {
	svc, err := oauth2api.NewService(ctx, option.WithTokenSource(g.oauthConfig.TokenSource(ctx, token)))
	if err != nil {
		return nil, fmt.Errorf("unable to create oauth2 service: %w", err)
	}
	return svc.Userinfo.Get().Do()
}

func (g *GoogleAuth) storeToken(ctx context.Context, userId string, token *oauth2.Token) error {
	query := `INSERT INTO google_calendar_auth (user_id, access_token, refresh_token, expiry)
				VALUES ($1, $2, $3, $4)
				ON CONFLICT (user_id) DO UPDATE SET
					access_token = EXCLUDED.access_token,
					refresh_token = CASE WHEN EXCLUDED.refresh_token <> '' THEN EXCLUDED.refresh_token
						ELSE google_calendar_auth.refresh_token END,
					expiry = EXCLUDED.expiry`
	_, err := g.db.Exec(ctx, query, userId, token.AccessToken, token.RefreshToken, token.Expiry.Unix())
	return err
}

func (g *GoogleAuth) deleteToken(ctx context.Context, userId string) error {
	_, err := g.db.Exec(ctx, `DELETE FROM google_calendar_auth WHERE user_id = $1`, userId)
	return err
}

func (g *GoogleAuth) getToken(ctx context.Context, userId string) (*oauth2.Token, error) {
	var token oauth2.Token
	var expiryTimestamp int64
	err := g.db.QueryRow(ctx, "SELECT access_token, refresh_token, expiry FROM google_calendar_auth WHERE user_id = $1", userId).
		Scan(&token.AccessToken, &token.RefreshToken, &expiryTimestamp)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	} else if err != nil {
		return nil, fmt.Errorf("unable to retrieve Google auth token: %w", err)
	}

	token.Expiry = time.Unix(expiryTimestamp, 0)
	return &token, nil
}

func (g *GoogleAuth) getClient(ctx context.Context, userId string) (*http.Client, error) {
	token, err := g.getToken(ctx, userId)
	if err != nil {
		log.Error(err)
		return nil, err
	}
	if token == nil {
		return nil, nil
	}
	return g.oauthConfig.Client(ctx, token), nil
}
