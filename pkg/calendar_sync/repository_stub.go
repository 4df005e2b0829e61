package calendar_sync

import (
	"context"
	"sort"
	"strconv"
	"sync"
)

type RepositoryStub struct {
	mu     sync.RWMutex
	logs   []SyncLog
	nextId int
}

func NewRepositoryStub() *RepositoryStub {
	return &RepositoryStub{}
}

func (r *RepositoryStub) AddSyncLog(ctx context.Context, entry SyncLog) (SyncLog, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.nextId++
	entry.Id = "sync-log-" + strconv.Itoa(r.nextId)
	r.logs = append(r.logs, entry)
	return entry, nil
}

func (r *RepositoryStub) GetSyncLogs(ctx context.Context, userId string) ([]SyncLog, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]SyncLog, 0, len(r.logs))
	for _, entry := range r.logs {
		if entry.UserId == userId {
			result = append(result, entry)
		}
	}
	sort.SliceStable(result, func(i, j int) bool {
		return result[i].SyncedAt.After(result[j].SyncedAt)
	})
	return result, nil
}

// All returns every stored row regardless of user, for test assertions.
func (r *RepositoryStub) All() []SyncLog {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]SyncLog(nil), r.logs...)
}
