package repository

import "github.com/tu-usuario/estoque-api/internal/domain/entity"

// ProductRepository puerto de persistencia de productos.
// GetForUpdate bloquea la fila (SELECT ... FOR UPDATE) y solo tiene sentido
// dentro de una transacción del TxRunner.
type ProductRepository interface {
	Create(p *entity.Product) error
	GetByID(id string) (*entity.Product, error)
	GetBySKU(sku string) (*entity.Product, error)
	GetByBarcode(code string) (*entity.Product, error)
	GetForUpdate(id string) (*entity.Product, error)
	Update(p *entity.Product) error
	UpdateQuantity(id string, quantity int64) error
	List(limit, offset int) ([]*entity.Product, error)
	Search(term string) ([]*entity.Product, error)
	Delete(id string) error
}
