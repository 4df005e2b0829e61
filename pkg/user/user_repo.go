package user

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	log "github.com/sirupsen/logrus"
)

var ErrUserNotFound = errors.New("user not found")

type Repo interface {
	UpsertUser(ctx context.Context, user User) (User, error)
	GetUser(ctx context.Context, id string) (User, error)
	UpdateCalendarSync(ctx context.Context, userId string, settings CalendarSyncSettings) (User, error)
}

type UserRepoImpl struct {
	db *pgxpool.Pool
}

func NewUserRepo(db *pgxpool.Pool) *UserRepoImpl {
	return &UserRepoImpl{db: db}
}

const userColumns = `id, sub, email, display_name, photo_url, calendar_sync_enabled,
				google_calendar_id, outlook_calendar_id, created_at, updated_at`

func (u *UserRepoImpl) UpsertUser(ctx context.Context, user User) (User, error) {
	query := `INSERT INTO users (id, sub, email, display_name, photo_url)
				VALUES ($1, $2, $3, $4, $5)
				ON CONFLICT (sub) DO UPDATE SET
					email = EXCLUDED.email,
					display_name = EXCLUDED.display_name,
					photo_url = EXCLUDED.photo_url,
					updated_at = now()
				RETURNING ` + userColumns
	row := u.db.QueryRow(ctx, query,
		uuid.New().String(),
		user.Sub,
		user.Email,
		user.DisplayName,
		user.PhotoUrl,
	)
	stored, err := scanUser(row)
	if err != nil {
		log.Errorf("failed to upsert user: %v", err)
		return User{}, err
	}
	return stored, nil
}

func (u *UserRepoImpl) GetUser(ctx context.Context, id string) (User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1`
	stored, err := scanUser(u.db.QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		log.Debugf("user with id %s not found", id)
		return User{}, ErrUserNotFound
	} else if err != nil {
		log.Errorf("failed to get user: %v", err)
		return User{}, err
	}
	return stored, nil
}

func (u *UserRepoImpl) UpdateCalendarSync(ctx context.Context, userId string, settings CalendarSyncSettings) (User, error) {
	query := `UPDATE users SET
				calendar_sync_enabled = $1,
				google_calendar_id = $2,
				outlook_calendar_id = $3,
				updated_at = now()
			WHERE id = $4
			RETURNING ` + userColumns
	row := u.db.QueryRow(ctx, query,
		settings.Enabled,
		nullIfEmpty(settings.GoogleCalendarId),
		nullIfEmpty(settings.OutlookCalendarId),
		userId,
	)
	stored, err := scanUser(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return User{}, ErrUserNotFound
	} else if err != nil {
		log.Errorf("failed to update calendar sync settings: %v", err)
		return User{}, err
	}
	return stored, nil
}

func scanUser(row pgx.Row) (User, error) {
	var user User
	var email, photoUrl, googleCalendarId, outlookCalendarId *string
	err := row.Scan(
		&user.Id,
		&user.Sub,
		&email,
		&user.DisplayName,
		&photoUrl,
		&user.Settings.Enabled,
		&googleCalendarId,
		&outlookCalendarId,
		&user.CreatedAt,
		&user.UpdatedAt,
	)
	if err != nil {
		return User{}, err
	}
	if email != nil {
		user.Email = *email
	}
	if photoUrl != nil {
		user.PhotoUrl = *photoUrl
	}
	if googleCalendarId != nil {
		user.Settings.GoogleCalendarId = *googleCalendarId
	}
	if outlookCalendarId != nil {
		user.Settings.OutlookCalendarId = *outlookCalendarId
	}
	return user, nil
}

func nullIfEmpty(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
