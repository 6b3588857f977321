package repository

import "github.com/tu-usuario/estoque-api/internal/domain/entity"

// SupplierRepository puerto de persistencia de proveedores.
type SupplierRepository interface {
	Create(s *entity.Supplier) error
	GetByID(id string) (*entity.Supplier, error)
	Update(s *entity.Supplier) error
	List(limit, offset int) ([]*entity.Supplier, error)
	Delete(id string) error
}
