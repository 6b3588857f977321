package repository

import "github.com/tu-usuario/estoque-api/internal/domain/entity"

// UserRepository puerto de persistencia de usuarios.
// CountByLevel existe para la política "nunca eliminar al último administrador".
type UserRepository interface {
	Create(u *entity.User) error
	GetByID(id string) (*entity.User, error)
	GetByUsername(username string) (*entity.User, error)
	Update(u *entity.User) error
	List(limit, offset int) ([]*entity.User, error)
	CountByLevel(level string) (int64, error)
	Delete(id string) error
}
