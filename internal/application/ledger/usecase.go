package ledger

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/tu-usuario/estoque-api/internal/application/dto"
	"github.com/tu-usuario/estoque-api/internal/domain"
	"github.com/tu-usuario/estoque-api/internal/domain/entity"
	"github.com/tu-usuario/estoque-api/internal/domain/repository"
	"github.com/tu-usuario/estoque-api/pkg/logger"
)

// UseCase registra y revierte movimientos de stock. Cada operación ajusta el
// stock del producto y la fila del ledger en la misma transacción: nunca queda
// una sin la otra.
type UseCase struct {
	tx       TxRunner
	movRepo  repository.MovementRepository
	notifier StockNotifier
	log      *logger.Logger
}

func NewUseCase(tx TxRunner, movRepo repository.MovementRepository, notifier StockNotifier, log *logger.Logger) *UseCase {
	return &UseCase{tx: tx, movRepo: movRepo, notifier: notifier, log: log}
}

// RegisterMovement valida y registra un movimiento. Una saída que dejaría el
// stock negativo se rechaza con ErrInsufficientStock sin tocar nada.
func (uc *UseCase) RegisterMovement(ctx context.Context, userID string, req dto.RegisterMovementRequest) (*entity.Movement, error) {
	if err := validateMovement(req); err != nil {
		return nil, err
	}

	now := time.Now()
	mov := &entity.Movement{
		ID:         uuid.NewString(),
		ProductID:  req.ProductID,
		Type:       req.Type,
		Quantity:   req.Quantity,
		UnitPrice:  req.UnitPrice,
		TotalValue: req.UnitPrice.Mul(decimal.NewFromInt(req.Quantity)),
		ClientID:   req.ClientID,
		SupplierID: req.SupplierID,
		Date:       now,
		CreatedAt:  now,
	}
	if userID != "" {
		mov.UserID = &userID
	}

	var moved *entity.Product
	err := uc.tx.Run(ctx, func(movRepo repository.MovementRepository, productRepo repository.ProductRepository) error {
		product, err := productRepo.GetForUpdate(mov.ProductID)
		if err != nil {
			return err
		}
		if product == nil {
			return domain.ErrProductNotFound
		}

		newQty := product.Quantity + mov.Quantity
		if mov.Type == entity.MovementTypeSaida {
			if mov.Quantity > product.Quantity {
				return domain.ErrInsufficientStock
			}
			newQty = product.Quantity - mov.Quantity
		}

		if err := movRepo.Create(mov); err != nil {
			return err
		}
		if err := productRepo.UpdateQuantity(product.ID, newQty); err != nil {
			return err
		}

		product.Quantity = newQty
		moved = product
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.notifyStock(ctx, moved)
	return mov, nil
}

// ReverseMovement deshace un movimiento aplicando el ajuste inverso de stock y
// elimina la fila del ledger. Revertir una entrada que dejaría el stock
// negativo se rechaza con ErrInsufficientStock.
func (uc *UseCase) ReverseMovement(ctx context.Context, movementID string) error {
	var moved *entity.Product
	err := uc.tx.Run(ctx, func(movRepo repository.MovementRepository, productRepo repository.ProductRepository) error {
		mov, err := movRepo.GetByID(movementID)
		if err != nil {
			return err
		}
		if mov == nil {
			return domain.ErrMovementNotFound
		}

		product, err := productRepo.GetForUpdate(mov.ProductID)
		if err != nil {
			return err
		}
		if product == nil {
			return domain.ErrProductNotFound
		}

		var newQty int64
		switch mov.Type {
		case entity.MovementTypeEntrada:
			if mov.Quantity > product.Quantity {
				return domain.ErrInsufficientStock
			}
			newQty = product.Quantity - mov.Quantity
		case entity.MovementTypeSaida:
			newQty = product.Quantity + mov.Quantity
		default:
			return domain.ErrInvalidInput
		}

		if err := movRepo.Delete(mov.ID); err != nil {
			return err
		}
		if err := productRepo.UpdateQuantity(product.ID, newQty); err != nil {
			return err
		}

		product.Quantity = newQty
		moved = product
		return nil
	})
	if err != nil {
		return err
	}

	uc.notifyStock(ctx, moved)
	return nil
}

// ListMovements devuelve el ledger completo, más reciente primero.
func (uc *UseCase) ListMovements(ctx context.Context, page dto.PageRequest) ([]dto.MovementResponse, error) {
	page.DefaultPage()
	records, err := uc.movRepo.ListAll(page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	return toMovementResponses(records), nil
}

// ListMovementsForProduct devuelve el historial de un producto, con filtro
// opcional por tipo.
func (uc *UseCase) ListMovementsForProduct(ctx context.Context, productID, movementType string) ([]dto.MovementResponse, error) {
	if movementType != "" && !entity.ValidMovementType(movementType) {
		return nil, domain.ErrInvalidInput
	}
	records, err := uc.movRepo.ListByProduct(productID, movementType)
	if err != nil {
		return nil, err
	}
	return toMovementResponses(records), nil
}

// notifyStock evalúa las reglas de stock tras el commit. Un fallo acá no
// deshace el movimiento ya confirmado, solo se registra.
func (uc *UseCase) notifyStock(ctx context.Context, product *entity.Product) {
	if uc.notifier == nil || product == nil {
		return
	}
	if err := uc.notifier.EvaluateStockLevel(ctx, product); err != nil {
		uc.log.Error().Err(err).
			Str("product_id", product.ID).
			Msg("no se pudieron evaluar las notificaciones de stock")
	}
}

func validateMovement(req dto.RegisterMovementRequest) error {
	if req.ProductID == "" || req.Quantity <= 0 {
		return domain.ErrInvalidInput
	}
	if !entity.ValidMovementType(req.Type) {
		return domain.ErrInvalidInput
	}
	if req.UnitPrice.IsNegative() {
		return domain.ErrInvalidInput
	}
	switch req.Type {
	case entity.MovementTypeEntrada:
		if req.SupplierID == nil || req.ClientID != nil {
			return domain.ErrInvalidInput
		}
	case entity.MovementTypeSaida:
		if req.ClientID == nil || req.SupplierID != nil {
			return domain.ErrInvalidInput
		}
	}
	return nil
}

func toMovementResponses(records []repository.MovementRecord) []dto.MovementResponse {
	out := make([]dto.MovementResponse, 0, len(records))
	for _, r := range records {
		out = append(out, dto.MovementResponse{
			ID:          r.ID,
			ProductID:   r.ProductID,
			ProductName: r.ProductName,
			Username:    r.Username,
			Type:        r.Type,
			Quantity:    r.Quantity,
			UnitPrice:   r.UnitPrice,
			TotalValue:  r.TotalValue,
			Date:        r.Date,
		})
	}
	return out
}
