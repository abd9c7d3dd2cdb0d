// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"strings"
	"sync"

	deliverycontext "riskmonitor/internal/delivery/context"
	"riskmonitor/internal/domain/entity"
	domainerrors "riskmonitor/internal/domain/errors"
	"riskmonitor/internal/domain/repository"
	"riskmonitor/internal/domain/service"
	"riskmonitor/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// userService implements the UserUsecase interface.
type userService struct {
	store        repository.UserStore
	hasher       service.PasswordHasher
	tokenService service.TokenService
	logger       *slog.Logger

	// mu serialises read-modify-write passes on the users collection
	mu sync.Mutex
}

// UserServiceParams holds dependencies for UserService, injected by Fx.
type UserServiceParams struct {
	fx.In

	Store        repository.UserStore
	Hasher       service.PasswordHasher
	TokenService service.TokenService
	Logger       *slog.Logger
}

// NewUserService is the constructor for userService. It receives all dependencies as interfaces.
func NewUserService(params UserServiceParams) usecase.UserUsecase {
	return &userService{
		store:        params.Store,
		hasher:       params.Hasher,
		tokenService: params.TokenService,
		logger:       params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *userService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Register appends a new user. Emails are not required to be unique; login
// picks the first match.
func (srv *userService) Register(ctx context.Context, input usecase.RegisterUserInput) (*entity.User, error) {
	name := strings.TrimSpace(input.Name)
	email := strings.TrimSpace(input.Email)
	if name == "" || email == "" || input.Password == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("name, email and password are required")
	}

	hashedPassword, err := srv.hasher.Hash(input.Password)
	if err != nil {
		srv.log(ctx).Error("Failed to hash password during registration", slog.Any("error", err))

		return nil, domainerrors.ErrPasswordHashFailed.WrapMessage(err.Error())
	}

	srv.mu.Lock()
	defer srv.mu.Unlock()

	users, err := srv.store.LoadUsers(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load users")
	}

	user := entity.User{Name: name, Email: email, Password: hashedPassword}
	if err := srv.store.SaveUsers(ctx, append(users, user)); err != nil {
		return nil, errors.Wrap(err, "failed to save users")
	}

	srv.log(ctx).Info("User registered", slog.String("email", email))

	return publicUser(user), nil
}

// Login records the first user matching the credentials as the current
// session and issues an access token.
func (srv *userService) Login(ctx context.Context, input usecase.LoginInput) (*entity.Session, error) {
	users, err := srv.store.LoadUsers(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load users")
	}

	email := strings.TrimSpace(input.Email)

	var matched *entity.User
	for i := range users {
		if users[i].Email == email && srv.hasher.Check(input.Password, users[i].Password) {
			matched = publicUser(users[i])

			break
		}
	}
	if matched == nil {
		srv.log(ctx).Warn("Login failed", slog.String("email", email))

		return nil, domainerrors.ErrInvalidCredentials
	}

	token, err := srv.tokenService.GenerateAccessToken(matched.Email)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate access token")
	}

	if err := srv.store.SaveCurrentUser(ctx, matched); err != nil {
		return nil, errors.Wrap(err, "failed to save current user")
	}

	srv.log(ctx).Info("User logged in", slog.String("email", matched.Email))

	return &entity.Session{User: *matched, AccessToken: token}, nil
}

// Logout clears the current session. Logging out twice is not an error.
func (srv *userService) Logout(ctx context.Context) error {
	if err := srv.store.ClearCurrentUser(ctx); err != nil {
		return errors.Wrap(err, "failed to clear current user")
	}

	return nil
}

// CurrentUser returns the logged in user.
func (srv *userService) CurrentUser(ctx context.Context) (*entity.User, error) {
	user, err := srv.store.LoadCurrentUser(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load current user")
	}
	if user == nil {
		return nil, domainerrors.ErrNotAuthenticated
	}

	return user, nil
}

// publicUser copies the user without its password hash.
func publicUser(user entity.User) *entity.User {
	user.Password = ""

	return &user
}
