package repository

import (
	"fmt"
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/samber/lo"
)

var _ IRepository = &Repo{}

type IRepository interface {
	SaveMessage(owner, data string, ttl time.Duration) (*StoredMessage, error)
	GetMessagesByOwner(owner string) ([]StoredMessage, error)
	DeleteExpired(now time.Time) (int, error)
	Count() int
}

// Repo keeps messages in memory, grouped by owner.
type Repo struct {
	mu       sync.RWMutex
	byOwner  map[string][]StoredMessage
	timeFunc func() time.Time
}

func NewRepository() *Repo {
	return &Repo{
		byOwner:  make(map[string][]StoredMessage),
		timeFunc: time.Now,
	}
}

func (repo *Repo) SaveMessage(owner, data string, ttl time.Duration) (*StoredMessage, error) {
	if owner == "" {
		return nil, fmt.Errorf("illegal argument: owner cannot be empty")
	}
	if ttl <= 0 {
		return nil, fmt.Errorf("illegal argument: ttl must be a positive duration")
	}

	now := repo.timeFunc()
	msg := StoredMessage{
		ID:         uuid.NewString(),
		Owner:      owner,
		Data:       data,
		ReceivedAt: now,
		ExpiresAt:  now.Add(ttl),
	}

	repo.mu.Lock()
	repo.byOwner[owner] = append(repo.byOwner[owner], msg)
	repo.mu.Unlock()

	return &msg, nil
}

// GetMessagesByOwner returns the owner's unexpired messages, oldest first.
func (repo *Repo) GetMessagesByOwner(owner string) ([]StoredMessage, error) {
	if owner == "" {
		return nil, fmt.Errorf("illegal argument: owner cannot be empty")
	}

	now := repo.timeFunc()
	repo.mu.RLock()
	msgs := lo.Filter(repo.byOwner[owner], func(m StoredMessage, _ int) bool {
		return !m.Expired(now)
	})
	repo.mu.RUnlock()

	slices.SortStableFunc(msgs, func(m1, m2 StoredMessage) int {
		return m1.ReceivedAt.Compare(m2.ReceivedAt)
	})
	return msgs, nil
}

func (repo *Repo) DeleteExpired(now time.Time) (int, error) {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	removed := 0
	for owner, msgs := range repo.byOwner {
		kept := lo.Reject(msgs, func(m StoredMessage, _ int) bool {
			return m.Expired(now)
		})
		removed += len(msgs) - len(kept)
		if len(kept) == 0 {
			delete(repo.byOwner, owner)
			continue
		}
		repo.byOwner[owner] = kept
	}
	return removed, nil
}

func (repo *Repo) Count() int {
	repo.mu.RLock()
	defer repo.mu.RUnlock()

	n := 0
	for _, msgs := range repo.byOwner {
		n += len(msgs)
	}
	return n
}
