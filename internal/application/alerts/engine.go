package alerts

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/tu-usuario/estoque-api/internal/application/dto"
	"github.com/tu-usuario/estoque-api/internal/domain"
	"github.com/tu-usuario/estoque-api/internal/domain/entity"
	"github.com/tu-usuario/estoque-api/internal/domain/repository"
	"github.com/tu-usuario/estoque-api/pkg/logger"
)

// Config umbrales del motor de notificaciones.
type Config struct {
	// LowStockPercent porcentaje del stock inicial bajo el cual el producto
	// se considera en stock bajo (1..100).
	LowStockPercent int64
	// InactivityDays días sin movimientos para marcar un producto inactivo.
	InactivityDays int
}

// Engine evalúa reglas de stock y administra la bandeja de notificaciones.
type Engine struct {
	notifRepo repository.NotificationRepository
	movRepo   repository.MovementRepository
	cfg       Config
	log       *logger.Logger
}

func NewEngine(notifRepo repository.NotificationRepository, movRepo repository.MovementRepository, cfg Config, log *logger.Logger) *Engine {
	return &Engine{notifRepo: notifRepo, movRepo: movRepo, cfg: cfg, log: log}
}

// EvaluateStockLevel emite a lo sumo una notificación por evaluación: stock
// agotado tiene prioridad sobre stock bajo.
func (e *Engine) EvaluateStockLevel(ctx context.Context, product *entity.Product) error {
	if product == nil {
		return nil
	}

	if product.Quantity == 0 {
		return e.emit(product, entity.RuleStockCero,
			fmt.Sprintf("Stock agotado: el producto %q llegó a 0 unidades", product.Name))
	}

	// Comparación en enteros: qty*100 < pct*inicial equivale a
	// qty < pct% del stock inicial sin redondeos de coma flotante.
	if product.InitialQuantity > 0 && product.Quantity*100 < e.cfg.LowStockPercent*product.InitialQuantity {
		return e.emit(product, entity.RuleStockBajo,
			fmt.Sprintf("Stock bajo: el producto %q tiene %d unidades (inicial %d)",
				product.Name, product.Quantity, product.InitialQuantity))
	}
	return nil
}

// CheckInactivity recorre los productos con movimientos y notifica los que no
// registran ninguno desde el corte. Devuelve cuántas notificaciones emitió.
func (e *Engine) CheckInactivity(ctx context.Context) (int, error) {
	cutoff := time.Now().AddDate(0, 0, -e.cfg.InactivityDays)
	inactive, err := e.movRepo.ListInactiveProducts(cutoff)
	if err != nil {
		return 0, err
	}

	emitted := 0
	for _, p := range inactive {
		exists, err := e.notifRepo.ExistsByProductAndRule(p.ProductID, entity.RuleInactividad)
		if err != nil {
			return emitted, err
		}
		if exists {
			continue
		}
		msg := fmt.Sprintf("Producto inactivo: %q no registra movimientos desde %s",
			p.ProductName, p.LastMovement.Format("2006-01-02"))
		notif := &entity.Notification{
			ID:        uuid.NewString(),
			Message:   msg,
			ProductID: &p.ProductID,
			Rule:      entity.RuleInactividad,
			Status:    entity.NotificationUnread,
			CreatedAt: time.Now(),
		}
		if err := e.notifRepo.Create(notif); err != nil {
			return emitted, err
		}
		emitted++
	}
	if emitted > 0 {
		e.log.Info().Int("emitted", emitted).Msg("notificaciones de inactividad emitidas")
	}
	return emitted, nil
}

// List devuelve las notificaciones, más recientes primero.
func (e *Engine) List(ctx context.Context, page dto.PageRequest) ([]dto.NotificationResponse, error) {
	page.DefaultPage()
	notifs, err := e.notifRepo.List(page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	out := make([]dto.NotificationResponse, 0, len(notifs))
	for _, n := range notifs {
		out = append(out, dto.NotificationResponse{
			ID:        n.ID,
			Message:   n.Message,
			ProductID: n.ProductID,
			Rule:      n.Rule,
			Status:    n.Status,
			CreatedAt: n.CreatedAt,
		})
	}
	return out, nil
}

// UnreadCount cantidad de notificaciones sin leer.
func (e *Engine) UnreadCount(ctx context.Context) (int64, error) {
	return e.notifRepo.CountUnread()
}

// MarkRead marca una notificación como leída. Marcar una ya leída no es error.
func (e *Engine) MarkRead(ctx context.Context, id string) error {
	if id == "" {
		return domain.ErrInvalidInput
	}
	return e.notifRepo.MarkRead(id)
}

// ClearRead elimina todas las notificaciones ya leídas.
func (e *Engine) ClearRead(ctx context.Context) error {
	return e.notifRepo.DeleteRead()
}

func (e *Engine) emit(product *entity.Product, rule, msg string) error {
	notif := &entity.Notification{
		ID:        uuid.NewString(),
		Message:   msg,
		ProductID: &product.ID,
		Rule:      rule,
		Status:    entity.NotificationUnread,
		CreatedAt: time.Now(),
	}
	return e.notifRepo.Create(notif)
}
