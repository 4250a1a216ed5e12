package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/invinci009/rmw/internal/domain/entity"
	"github.com/invinci009/rmw/internal/domain/enum"
)

// UserRepository defines the interface for user data operations
type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.User, error)
	GetByEmail(ctx context.Context, email string, role enum.UserRole) (*entity.User, error)
	GetByPhone(ctx context.Context, phone string, role enum.UserRole) (*entity.User, error)
	Update(ctx context.Context, user *entity.User) error
}
