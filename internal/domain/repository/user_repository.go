package repository

import "github.com/jhoicas/gestion-api/internal/domain/entity"

// UserRepository define el puerto de persistencia para User.
// Los métodos Find* devuelven (nil, nil) cuando no hay coincidencia.
type UserRepository interface {
	Create(user *entity.User) error
	FindByID(id string) (*entity.User, error)
	FindByEmail(email string) (*entity.User, error)
}
