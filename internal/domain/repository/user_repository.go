package repository

import (
	"context"

	"github.com/jhoicas/salesops-api/internal/domain/entity"
)

// UserRepository define el puerto de persistencia para User (solo lo que la
// autenticación necesita; la gestión de usuarios queda fuera de este sistema).
type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	FindByUsername(ctx context.Context, username string) (*entity.User, error)
	GetByID(ctx context.Context, id string) (*entity.User, error)
}
