package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/avc-dev/shlink-dashboard/internal/model"
	"github.com/avc-dev/shlink-dashboard/internal/repository"
	"github.com/avc-dev/shlink-dashboard/internal/store"
	"go.uber.org/zap"
)

// UserAdminUsecase управление пользователями из админки
type UserAdminUsecase struct {
	users  repository.UserStore
	logger *zap.Logger
	now    func() time.Time
}

func NewUserAdminUsecase(users repository.UserStore, logger *zap.Logger) *UserAdminUsecase {
	return &UserAdminUsecase{users: users, logger: logger, now: time.Now}
}

func (u *UserAdminUsecase) List(ctx context.Context) ([]model.User, error) {
	users, err := u.users.ListUsers(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	return users, nil
}

func (u *UserAdminUsecase) get(ctx context.Context, id string) (model.User, error) {
	user, err := u.users.GetUser(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return model.User{}, ErrUserNotFound
		}
		return model.User{}, fmt.Errorf("failed to load user: %w", err)
	}
	return user, nil
}

// UserChange изменения пользователя из админки; nil роль не меняется
type UserChange struct {
	Role   *model.Role
	Unlock bool
}

// Update применяет смену роли и разблокировку одной записью:
// при ошибке пользователь остается без изменений.
// Администратор не может понизить сам себя.
func (u *UserAdminUsecase) Update(ctx context.Context, actorID, id string, change UserChange) (model.User, error) {
	if change.Role != nil {
		if !change.Role.Valid() {
			return model.User{}, ErrInvalidRole
		}
		if actorID == id && *change.Role != model.RoleAdmin {
			return model.User{}, ErrSelfModification
		}
	}

	user, err := u.get(ctx, id)
	if err != nil {
		return model.User{}, err
	}

	changed := false
	roleChanged := false
	if change.Role != nil && user.Role != *change.Role {
		user.Role = *change.Role
		changed, roleChanged = true, true
	}
	if change.Unlock {
		user.FailedAttempts = 0
		user.LockedAt = nil
		changed = true
	}
	if !changed {
		return user, nil
	}

	user.UpdatedAt = u.now()
	if err := u.users.UpdateUser(ctx, user); err != nil {
		return model.User{}, fmt.Errorf("failed to update user: %w", err)
	}

	if roleChanged {
		u.logger.Info("user role changed", zap.String("user_id", id), zap.String("role", string(user.Role)), zap.String("by", actorID))
	}
	if change.Unlock {
		u.logger.Info("user unlocked", zap.String("user_id", id), zap.String("by", actorID))
	}
	return user, nil
}

// Delete удаляет пользователя вместе с его ссылками и ключами
func (u *UserAdminUsecase) Delete(ctx context.Context, actorID, id string) error {
	if actorID == id {
		return ErrSelfModification
	}

	if err := u.users.DeleteUser(ctx, id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrUserNotFound
		}
		return fmt.Errorf("failed to delete user: %w", err)
	}

	u.logger.Info("user deleted", zap.String("user_id", id), zap.String("by", actorID))
	return nil
}
