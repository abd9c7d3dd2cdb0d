// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"riskmonitor/internal/domain/entity"
)

// --- Input DTOs ---

// RegisterUserInput defines the data required to register a new user.
type RegisterUserInput struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// LoginInput defines the data required for a user to log in.
type LoginInput struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// UserUsecase defines the interface for user-related business operations.
type UserUsecase interface {
	Register(ctx context.Context, input RegisterUserInput) (*entity.User, error)
	// Login stores the matching user as the current session.
	Login(ctx context.Context, input LoginInput) (*entity.Session, error)
	Logout(ctx context.Context) error
	// CurrentUser returns ErrNotAuthenticated when nobody is logged in.
	CurrentUser(ctx context.Context) (*entity.User, error)
}
