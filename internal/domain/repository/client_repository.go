package repository

import "github.com/tu-usuario/estoque-api/internal/domain/entity"

// ClientRepository puerto de persistencia de clientes.
type ClientRepository interface {
	Create(c *entity.Client) error
	GetByID(id string) (*entity.Client, error)
	Update(c *entity.Client) error
	List(limit, offset int) ([]*entity.Client, error)
	Delete(id string) error
}
