package favorite

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	log "github.com/sirupsen/logrus"
)

// Postgres SQLSTATE codes used to translate constraint violations.
const (
	uniqueViolation     = "23505"
	foreignKeyViolation = "23503"
)

type Repository interface {
	AddFavorite(ctx context.Context, favorite FavoriteEvent) (FavoriteEvent, error)
	RemoveFavorite(ctx context.Context, userId string, eventId string) error
	IsFavorite(ctx context.Context, userId string, eventId string) (bool, error)
	GetUserFavorites(ctx context.Context, userId string) ([]FavoriteEvent, error)
	UpdateSyncState(ctx context.Context, userId string, eventId string, synced bool, externalEventId string) error
}

type RepositoryImpl struct {
	db *pgxpool.Pool
}

func NewRepository(db *pgxpool.Pool) *RepositoryImpl {
	return &RepositoryImpl{db: db}
}

func (r *RepositoryImpl) AddFavorite(ctx context.Context, favorite FavoriteEvent) (FavoriteEvent, error) {
	query := `INSERT INTO favorite_events (id, user_id, event_id, added_at)
				VALUES ($1, $2, $3, $4)`
	favorite.Id = uuid.New().String()
	_, err := r.db.Exec(ctx, query, favorite.Id, favorite.UserId, favorite.EventId, favorite.AddedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			switch pgErr.Code {
			case uniqueViolation:
				return FavoriteEvent{}, ErrAlreadyExists
			case foreignKeyViolation:
				return FavoriteEvent{}, ErrEventNotFound
			}
		}
		err := fmt.Errorf("could not add favorite: %w", err)
		log.Error(err)
		return FavoriteEvent{}, err
	}
	return favorite, nil
}

// RemoveFavorite deletes the (userId, eventId) row if present. Removing an
// absent favorite is a no-op.
func (r *RepositoryImpl) RemoveFavorite(ctx context.Context, userId string, eventId string) error {
	query := `DELETE FROM favorite_events WHERE user_id = $1 AND event_id = $2`
	_, err := r.db.Exec(ctx, query, userId, eventId)
	if err != nil {
		err := fmt.Errorf("could not remove favorite: %w", err)
		log.Error(err)
		return err
	}
	return nil
}

func (r *RepositoryImpl) IsFavorite(ctx context.Context, userId string, eventId string) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM favorite_events WHERE user_id = $1 AND event_id = $2)`
	var exists bool
	err := r.db.QueryRow(ctx, query, userId, eventId).Scan(&exists)
	if err != nil {
		err := fmt.Errorf("could not check favorite: %w", err)
		log.Error(err)
		return false, err
	}
	return exists, nil
}

func (r *RepositoryImpl) GetUserFavorites(ctx context.Context, userId string) ([]FavoriteEvent, error) {
	query := `SELECT id, user_id, event_id, added_at, synced_to_calendar, external_calendar_event_id
				FROM favorite_events
				WHERE user_id = $1
				ORDER BY added_at DESC`
	rows, err := r.db.Query(ctx, query, userId)
	if err != nil {
		err := fmt.Errorf("could not query favorites: %w", err)
		log.Error(err)
		return nil, err
	}
	defer rows.Close()

	favorites := make([]FavoriteEvent, 0, 10)
	for rows.Next() {
		var favorite FavoriteEvent
		var externalEventId *string
		err := rows.Scan(
			&favorite.Id,
			&favorite.UserId,
			&favorite.EventId,
			&favorite.AddedAt,
			&favorite.SyncedToCalendar,
			&externalEventId,
		)
		if err != nil {
			err := fmt.Errorf("could not scan favorite row: %w", err)
			log.Error(err)
			return nil, err
		}
		if externalEventId != nil {
			favorite.ExternalCalendarEventId = *externalEventId
		}
		favorites = append(favorites, favorite)
	}
	return favorites, rows.Err()
}

func (r *RepositoryImpl) UpdateSyncState(ctx context.Context, userId string, eventId string, synced bool, externalEventId string) error {
	query := `UPDATE favorite_events
				SET synced_to_calendar = $1, external_calendar_event_id = $2
				WHERE user_id = $3 AND event_id = $4`
	var externalId *string
	if externalEventId != "" {
		externalId = &externalEventId
	}
	tag, err := r.db.Exec(ctx, query, synced, externalId, userId, eventId)
	if err != nil {
		err := fmt.Errorf("could not update favorite sync state: %w", err)
		log.Error(err)
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}
