package ledger

import (
	"context"

	"github.com/tu-usuario/estoque-api/internal/domain/entity"
	"github.com/tu-usuario/estoque-api/internal/domain/repository"
)

// TxRunner ejecuta fn dentro de una transacción con repositorios ligados a
// ella. Si fn devuelve error la transacción se revierte completa.
type TxRunner interface {
	Run(ctx context.Context, fn func(movRepo repository.MovementRepository, productRepo repository.ProductRepository) error) error
}

// StockNotifier evalúa el nivel de stock de un producto recién movido y emite
// las notificaciones que correspondan. Se invoca fuera de la transacción.
type StockNotifier interface {
	EvaluateStockLevel(ctx context.Context, product *entity.Product) error
}
