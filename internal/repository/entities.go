package repository

import (
	"time"
)

// StoredMessage is one message held for a recipient until it expires.
type StoredMessage struct {
	ID         string
	Owner      string
	Data       string
	ReceivedAt time.Time
	ExpiresAt  time.Time
}

func (m StoredMessage) Expired(now time.Time) bool {
	return m.ExpiresAt.Before(now)
}
