package usecase

import (
	"context"
	"errors"
	"strings"

	domainErrors "github.com/polkiloo/orderdesk/internal/domain/errors"
	"github.com/polkiloo/orderdesk/internal/domain/model"
	"github.com/polkiloo/orderdesk/internal/domain/repository"
	pkgAuth "github.com/polkiloo/orderdesk/internal/pkg/auth"
)

// AuthUseCase handles staff login and session tokens.
type AuthUseCase struct {
	users  repository.UserRepository
	hasher pkgAuth.PasswordHasher
	tokens pkgAuth.Strategy
}

// NewAuthUseCase constructs AuthUseCase.
func NewAuthUseCase(users repository.UserRepository, hasher pkgAuth.PasswordHasher, strategy pkgAuth.Strategy) *AuthUseCase {
	return &AuthUseCase{users: users, hasher: hasher, tokens: strategy}
}

// Register creates a staff account. Used for the bootstrap admin.
func (u *AuthUseCase) Register(ctx context.Context, username, password, role string) (*model.User, error) {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return nil, domainErrors.ErrInvalidCredentials
	}
	if role == "" {
		role = model.RoleAdmin
	}

	hash, err := u.hasher.Hash(password)
	if err != nil {
		return nil, err
	}
	return u.users.Create(ctx, username, hash, role)
}

// Login validates credentials and issues a session token.
func (u *AuthUseCase) Login(ctx context.Context, username, password string) (*model.User, string, pkgAuth.Session, error) {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return nil, "", pkgAuth.Session{}, domainErrors.ErrInvalidCredentials
	}

	usr, err := u.users.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, domainErrors.ErrNotFound) {
			return nil, "", pkgAuth.Session{}, domainErrors.ErrInvalidCredentials
		}
		return nil, "", pkgAuth.Session{}, err
	}

	if err := u.hasher.Compare(usr.PasswordHash, password); err != nil {
		return nil, "", pkgAuth.Session{}, domainErrors.ErrInvalidCredentials
	}

	token, session, err := u.tokens.IssueToken(usr.ID, usr.Role)
	if err != nil {
		return nil, "", pkgAuth.Session{}, err
	}
	return usr, token, session, nil
}

// ParseToken validates a session token.
func (u *AuthUseCase) ParseToken(token string) (pkgAuth.Session, error) {
	if token == "" {
		return pkgAuth.Session{}, pkgAuth.ErrInvalidToken
	}
	return u.tokens.ParseToken(token)
}

// GetByID fetches a staff user.
func (u *AuthUseCase) GetByID(ctx context.Context, id int64) (*model.User, error) {
	return u.users.GetByID(ctx, id)
}
