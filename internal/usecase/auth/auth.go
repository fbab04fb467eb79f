package auth

import (
	"context"

	"golang.org/x/crypto/bcrypt"

	userDomain "mattespel/internal/domain/user"
	errs "mattespel/internal/errors"
	"mattespel/internal/random"
)

const tokenLength = 64

type AuthUsecaseHandler struct {
	userStorage    UserStorage
	sessionStorage SessionStorage
}

func NewAuthUsecaseHandler(u UserStorage, s SessionStorage) *AuthUsecaseHandler {
	return &AuthUsecaseHandler{
		userStorage:    u,
		sessionStorage: s,
	}
}

type UserStorage interface {
	GetByEmail(ctx context.Context, email string) (userDomain.User, bool)
	GetByID(ctx context.Context, id string) (userDomain.User, bool)
	Create(ctx context.Context, email, name, passwordHash string) (userDomain.User, error)
}

type SessionStorage interface {
	GetUserIDBySession(ctx context.Context, token string) (string, bool)
	StoreSession(ctx context.Context, token, userID string)
	DeleteSession(ctx context.Context, token string) bool
}

// RegisterUser creates an identity record and opens a session for it.
// The profile record itself is lazily initialized by the gateway on
// first fetch.
func (a *AuthUsecaseHandler) RegisterUser(ctx context.Context, email, name, password string) (string, userDomain.User, error) {
	if _, exists := a.userStorage.GetByEmail(ctx, email); exists {
		return "", userDomain.User{}, errs.ErrUserExists
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", userDomain.User{}, err
	}

	newUser, err := a.userStorage.Create(ctx, email, name, string(hash))
	if err != nil {
		return "", userDomain.User{}, err
	}

	token := random.RandString(tokenLength)
	a.sessionStorage.StoreSession(ctx, token, newUser.ID)
	return token, newUser, nil
}

func (a *AuthUsecaseHandler) LoginUser(ctx context.Context, email, password string) (string, userDomain.User, error) {
	userFromDb, found := a.userStorage.GetByEmail(ctx, email)
	if !found {
		return "", userDomain.User{}, errs.ErrUserNotFound
	}
	if err := bcrypt.CompareHashAndPassword([]byte(userFromDb.PasswordHash), []byte(password)); err != nil {
		return "", userDomain.User{}, errs.ErrWrongPassword
	}

	token := random.RandString(tokenLength)
	a.sessionStorage.StoreSession(ctx, token, userFromDb.ID)
	return token, userFromDb, nil
}

// LogoutUser returns nil or ErrSessionNotFound.
func (a *AuthUsecaseHandler) LogoutUser(ctx context.Context, token string) error {
	if _, ok := a.sessionStorage.GetUserIDBySession(ctx, token); !ok {
		return errs.ErrSessionNotFound
	}
	if ok := a.sessionStorage.DeleteSession(ctx, token); !ok {
		return errs.ErrSessionNotFound
	}
	return nil
}

// ResolveUser maps a bearer token to the user it belongs to.
func (a *AuthUsecaseHandler) ResolveUser(ctx context.Context, token string) (userDomain.User, error) {
	userID, found := a.sessionStorage.GetUserIDBySession(ctx, token)
	if !found {
		return userDomain.User{}, errs.ErrSessionNotFound
	}
	u, ok := a.userStorage.GetByID(ctx, userID)
	if !ok {
		return userDomain.User{}, errs.ErrSessionNotFound
	}
	return u, nil
}
