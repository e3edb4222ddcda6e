package auth

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/polkiloo/orderdesk/internal/pkg/clock"
)

var ErrInvalidToken = errors.New("invalid auth token")

const defaultTTL = 24 * time.Hour

// HMACStrategy implements session token creation/verification using HMAC signatures.
// A token is base64("<userID>:<role>:<expiresUnix>:<signature>").
type HMACStrategy struct {
	secret []byte
	ttl    time.Duration
	clock  clock.Clock
}

// NewHMACStrategy builds HMACStrategy with provided secret and options.
func NewHMACStrategy(secret string, opts Options) *HMACStrategy {
	ttl := opts.TTL
	if ttl <= 0 {
		ttl = defaultTTL
	}
	clk := opts.Clock
	if clk == nil {
		clk = clock.System{}
	}
	return &HMACStrategy{secret: []byte(secret), ttl: ttl, clock: clk}
}

// IssueToken generates a signed session token for the user.
func (s *HMACStrategy) IssueToken(userID int64, role string) (string, Session, error) {
	if strings.Contains(role, ":") {
		return "", Session{}, fmt.Errorf("role %q contains a separator", role)
	}
	expires := s.clock.Now().Add(s.ttl).Truncate(time.Second)
	payload := fmt.Sprintf("%d:%s:%d", userID, role, expires.Unix())
	token := fmt.Sprintf("%s:%s", payload, s.sign(payload))
	session := Session{UserID: userID, Role: role, ExpiresAt: expires}
	return base64.StdEncoding.EncodeToString([]byte(token)), session, nil
}

// ParseToken validates token and returns the encoded session.
func (s *HMACStrategy) ParseToken(token string) (Session, error) {
	raw, err := base64.StdEncoding.DecodeString(token)
	if err != nil {
		return Session{}, ErrInvalidToken
	}

	parts := strings.Split(string(raw), ":")
	if len(parts) != 4 {
		return Session{}, ErrInvalidToken
	}

	payload := strings.Join(parts[:3], ":")
	expectedSig := s.sign(payload)
	if !hmac.Equal([]byte(expectedSig), []byte(parts[3])) {
		return Session{}, ErrInvalidToken
	}

	userID, err := strconv.ParseInt(parts[0], 10, 64)
	if err != nil {
		return Session{}, ErrInvalidToken
	}

	expires, err := strconv.ParseInt(parts[2], 10, 64)
	if err != nil {
		return Session{}, ErrInvalidToken
	}

	expiresAt := time.Unix(expires, 0).UTC()
	if !expiresAt.After(s.clock.Now()) {
		return Session{}, ErrInvalidToken
	}

	return Session{UserID: userID, Role: parts[1], ExpiresAt: expiresAt}, nil
}

// TTL returns the lifetime of issued tokens.
func (s *HMACStrategy) TTL() time.Duration {
	return s.ttl
}

func (s *HMACStrategy) Name() string {
	return "hmac"
}

func (s *HMACStrategy) sign(payload string) string {
	mac := hmac.New(sha256.New, s.secret)
	mac.Write([]byte(payload))
	return base64.StdEncoding.EncodeToString(mac.Sum(nil))
}
