package calendar_sync

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	log "github.com/sirupsen/logrus"
)

type Repository interface {
	AddSyncLog(ctx context.Context, entry SyncLog) (SyncLog, error)
	GetSyncLogs(ctx context.Context, userId string) ([]SyncLog, error)
}

type RepositoryImpl struct {
	db *pgxpool.Pool
}

func NewRepository(db *pgxpool.Pool) *RepositoryImpl {
	return &RepositoryImpl{db: db}
}

func (r *RepositoryImpl) AddSyncLog(ctx context.Context, entry SyncLog) (SyncLog, error) {
	query := `INSERT INTO calendar_sync_log (id, user_id, event_id, operation, provider, status,
					external_event_id, error_message, synced_at)
				VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	entry.Id = uuid.New().String()
	_, err := r.db.Exec(ctx, query,
		entry.Id,
		entry.UserId,
		entry.EventId,
		entry.Operation,
		entry.Provider,
		entry.Status,
		nullIfEmpty(entry.ExternalEventId),
		nullIfEmpty(entry.ErrorMessage),
		entry.SyncedAt,
	)
	if err != nil {
		err := fmt.Errorf("could not insert sync log: %w", err)
		log.Error(err)
		return SyncLog{}, err
	}
	return entry, nil
}

func (r *RepositoryImpl) GetSyncLogs(ctx context.Context, userId string) ([]SyncLog, error) {
	query := `SELECT id, user_id, event_id, operation, provider, status, external_event_id, error_message, synced_at
				FROM calendar_sync_log
				WHERE user_id = $1
				ORDER BY synced_at DESC`
	rows, err := r.db.Query(ctx, query, userId)
	if err != nil {
		err := fmt.Errorf("could not query sync logs: %w", err)
		log.Error(err)
		return nil, err
	}
	defer rows.Close()

	logs := make([]SyncLog, 0, 10)
	for rows.Next() {
		var entry SyncLog
		var externalEventId, errorMessage *string
		err := rows.Scan(
			&entry.Id,
			&entry.UserId,
			&entry.EventId,
			&entry.Operation,
			&entry.Provider,
			&entry.Status,
			&externalEventId,
			&errorMessage,
			&entry.SyncedAt,
		)
		if err != nil {
			err := fmt.Errorf("could not scan sync log row: %w", err)
			log.Error(err)
			return nil, err
		}
		if externalEventId != nil {
			entry.ExternalEventId = *externalEventId
		}
		if errorMessage != nil {
			entry.ErrorMessage = *errorMessage
		}
		logs = append(logs, entry)
	}
	return logs, rows.Err()
}

func nullIfEmpty(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
