package storage

import (
	"context"
	"log/slog"

	"riskmonitor/internal/domain/constants"
	"riskmonitor/internal/domain/entity"
	"riskmonitor/internal/domain/repository"
)

type userStore struct {
	users       *Collection[entity.User]
	currentUser *Record[entity.User]
}

// NewUserStore keeps users under "users" and the session under "currentUser"
func NewUserStore(store repository.KeyValueStore, logger *slog.Logger) repository.UserStore {
	return &userStore{
		users:       NewCollection[entity.User](store, constants.KeyUsers, logger),
		currentUser: NewRecord[entity.User](store, constants.KeyCurrentUser, logger),
	}
}

func (s *userStore) LoadUsers(ctx context.Context) ([]entity.User, error) {
	return s.users.Load(ctx)
}

func (s *userStore) SaveUsers(ctx context.Context, users []entity.User) error {
	return s.users.Save(ctx, users)
}

func (s *userStore) LoadCurrentUser(ctx context.Context) (*entity.User, error) {
	return s.currentUser.Load(ctx)
}

func (s *userStore) SaveCurrentUser(ctx context.Context, user *entity.User) error {
	return s.currentUser.Save(ctx, user)
}

func (s *userStore) ClearCurrentUser(ctx context.Context) error {
	return s.currentUser.Clear(ctx)
}
