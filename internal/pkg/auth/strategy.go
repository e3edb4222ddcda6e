package auth

import (
	"time"

	"github.com/polkiloo/orderdesk/internal/pkg/clock"
)

// Session is the identity carried by a staff token.
type Session struct {
	UserID    int64
	Role      string
	ExpiresAt time.Time
}

type Strategy interface {
	IssueToken(userID int64, role string) (string, Session, error)
	ParseToken(token string) (Session, error)
	Name() string
}

type Options struct {
	TTL   time.Duration
	Clock clock.Clock
}
