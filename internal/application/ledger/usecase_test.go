package ledger_test

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/estoque-api/internal/application/dto"
	"github.com/tu-usuario/estoque-api/internal/application/ledger"
	"github.com/tu-usuario/estoque-api/internal/domain"
	"github.com/tu-usuario/estoque-api/internal/domain/entity"
	"github.com/tu-usuario/estoque-api/internal/domain/repository"
	"github.com/tu-usuario/estoque-api/pkg/logger"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria con semántica transaccional (snapshot + restore)
// ──────────────────────────────────────────────────────────────────────────────

type memStore struct {
	products  map[string]*entity.Product
	movements map[string]*entity.Movement
}

func newMemStore() *memStore {
	return &memStore{
		products:  make(map[string]*entity.Product),
		movements: make(map[string]*entity.Movement),
	}
}

func (s *memStore) snapshot() *memStore {
	cp := newMemStore()
	for id, p := range s.products {
		dup := *p
		cp.products[id] = &dup
	}
	for id, m := range s.movements {
		dup := *m
		cp.movements[id] = &dup
	}
	return cp
}

type fakeProductRepo struct{ store *memStore }

func (r *fakeProductRepo) Create(p *entity.Product) error {
	r.store.products[p.ID] = p
	return nil
}

func (r *fakeProductRepo) GetByID(id string) (*entity.Product, error) {
	p, ok := r.store.products[id]
	if !ok {
		return nil, nil
	}
	dup := *p
	return &dup, nil
}

func (r *fakeProductRepo) GetBySKU(sku string) (*entity.Product, error) {
	for _, p := range r.store.products {
		if p.SKU == sku {
			dup := *p
			return &dup, nil
		}
	}
	return nil, nil
}

func (r *fakeProductRepo) GetByBarcode(code string) (*entity.Product, error) {
	for _, p := range r.store.products {
		if p.Barcode != nil && *p.Barcode == code {
			dup := *p
			return &dup, nil
		}
	}
	return nil, nil
}

func (r *fakeProductRepo) GetForUpdate(id string) (*entity.Product, error) {
	return r.GetByID(id)
}

func (r *fakeProductRepo) Update(p *entity.Product) error {
	dup := *p
	r.store.products[p.ID] = &dup
	return nil
}

func (r *fakeProductRepo) UpdateQuantity(id string, quantity int64) error {
	p, ok := r.store.products[id]
	if !ok {
		return domain.ErrProductNotFound
	}
	p.Quantity = quantity
	return nil
}

func (r *fakeProductRepo) List(limit, offset int) ([]*entity.Product, error) {
	out := make([]*entity.Product, 0, len(r.store.products))
	for _, p := range r.store.products {
		dup := *p
		out = append(out, &dup)
	}
	return out, nil
}

func (r *fakeProductRepo) Search(term string) ([]*entity.Product, error) {
	var out []*entity.Product
	for _, p := range r.store.products {
		if strings.Contains(strings.ToLower(p.Name), strings.ToLower(term)) {
			dup := *p
			out = append(out, &dup)
		}
	}
	return out, nil
}

func (r *fakeProductRepo) Delete(id string) error {
	delete(r.store.products, id)
	return nil
}

type fakeMovementRepo struct{ store *memStore }

func (r *fakeMovementRepo) Create(m *entity.Movement) error {
	dup := *m
	r.store.movements[m.ID] = &dup
	return nil
}

func (r *fakeMovementRepo) GetByID(id string) (*entity.Movement, error) {
	m, ok := r.store.movements[id]
	if !ok {
		return nil, nil
	}
	dup := *m
	return &dup, nil
}

func (r *fakeMovementRepo) Delete(id string) error {
	delete(r.store.movements, id)
	return nil
}

func (r *fakeMovementRepo) ListAll(limit, offset int) ([]repository.MovementRecord, error) {
	out := make([]repository.MovementRecord, 0, len(r.store.movements))
	for _, m := range r.store.movements {
		out = append(out, r.toRecord(m))
	}
	return out, nil
}

func (r *fakeMovementRepo) ListByProduct(productID, movementType string) ([]repository.MovementRecord, error) {
	var out []repository.MovementRecord
	for _, m := range r.store.movements {
		if m.ProductID != productID {
			continue
		}
		if movementType != "" && m.Type != movementType {
			continue
		}
		out = append(out, r.toRecord(m))
	}
	return out, nil
}

func (r *fakeMovementRepo) ListInactiveProducts(cutoff time.Time) ([]repository.InactiveProduct, error) {
	return nil, nil
}

func (r *fakeMovementRepo) toRecord(m *entity.Movement) repository.MovementRecord {
	name := ""
	if p, ok := r.store.products[m.ProductID]; ok {
		name = p.Name
	}
	return repository.MovementRecord{
		ID:          m.ID,
		ProductID:   m.ProductID,
		ProductName: name,
		Type:        m.Type,
		Quantity:    m.Quantity,
		UnitPrice:   m.UnitPrice,
		TotalValue:  m.TotalValue,
		Date:        m.Date,
	}
}

// fakeTxRunner aplica fn sobre el store y restaura el snapshot si fn falla,
// imitando el rollback transaccional.
type fakeTxRunner struct{ store *memStore }

func (tx *fakeTxRunner) Run(ctx context.Context, fn func(movRepo repository.MovementRepository, productRepo repository.ProductRepository) error) error {
	before := tx.store.snapshot()
	err := fn(&fakeMovementRepo{store: tx.store}, &fakeProductRepo{store: tx.store})
	if err != nil {
		tx.store.products = before.products
		tx.store.movements = before.movements
	}
	return err
}

type fakeNotifier struct {
	evaluated []entity.Product
}

func (n *fakeNotifier) EvaluateStockLevel(ctx context.Context, product *entity.Product) error {
	n.evaluated = append(n.evaluated, *product)
	return nil
}

// ──────────────────────────────────────────────────────────────────────────────
// Helpers
// ──────────────────────────────────────────────────────────────────────────────

const (
	testProductID  = "00000000-0000-0000-0000-0000000000aa"
	testSupplierID = "00000000-0000-0000-0000-0000000000bb"
	testClientID   = "00000000-0000-0000-0000-0000000000cc"
	testUserID     = "00000000-0000-0000-0000-0000000000dd"
)

func newLedger(t *testing.T, stock int64) (*ledger.UseCase, *memStore, *fakeNotifier) {
	t.Helper()
	store := newMemStore()
	store.products[testProductID] = &entity.Product{
		ID:              testProductID,
		SKU:             "SKU-001",
		Name:            "Café molido",
		Quantity:        stock,
		InitialQuantity: stock,
		Price:           decimal.NewFromInt(10),
	}
	notifier := &fakeNotifier{}
	uc := ledger.NewUseCase(&fakeTxRunner{store: store}, &fakeMovementRepo{store: store}, notifier, logger.Nop())
	return uc, store, notifier
}

func strptr(s string) *string { return &s }

func entradaReq(qty int64, price decimal.Decimal) dto.RegisterMovementRequest {
	return dto.RegisterMovementRequest{
		ProductID:  testProductID,
		Type:       entity.MovementTypeEntrada,
		Quantity:   qty,
		UnitPrice:  price,
		SupplierID: strptr(testSupplierID),
	}
}

func saidaReq(qty int64, price decimal.Decimal) dto.RegisterMovementRequest {
	return dto.RegisterMovementRequest{
		ProductID: testProductID,
		Type:      entity.MovementTypeSaida,
		Quantity:  qty,
		UnitPrice: price,
		ClientID:  strptr(testClientID),
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// RegisterMovement
// ──────────────────────────────────────────────────────────────────────────────

func TestRegisterMovement_EntradaAumentaStock(t *testing.T) {
	uc, store, _ := newLedger(t, 10)

	mov, err := uc.RegisterMovement(context.Background(), testUserID, entradaReq(5, decimal.NewFromInt(3)))
	require.NoError(t, err)

	assert.Equal(t, int64(15), store.products[testProductID].Quantity,
		"una entrada de 5 sobre 10 debe dejar 15")
	require.Len(t, store.movements, 1, "debe quedar exactamente una fila en el ledger")
	assert.Equal(t, entity.MovementTypeEntrada, mov.Type)
	require.NotNil(t, mov.UserID)
	assert.Equal(t, testUserID, *mov.UserID)
}

func TestRegisterMovement_SaidaDescuentaStock(t *testing.T) {
	uc, store, _ := newLedger(t, 10)

	_, err := uc.RegisterMovement(context.Background(), testUserID, saidaReq(4, decimal.NewFromInt(12)))
	require.NoError(t, err)

	assert.Equal(t, int64(6), store.products[testProductID].Quantity,
		"una saída de 4 sobre 10 debe dejar 6")
}

func TestRegisterMovement_SaidaInsuficienteNoCambiaNada(t *testing.T) {
	uc, store, notifier := newLedger(t, 3)

	_, err := uc.RegisterMovement(context.Background(), testUserID, saidaReq(5, decimal.NewFromInt(12)))
	require.ErrorIs(t, err, domain.ErrInsufficientStock)

	assert.Equal(t, int64(3), store.products[testProductID].Quantity,
		"el stock no debe cambiar si la saída se rechaza")
	assert.Empty(t, store.movements, "no debe quedar ninguna fila en el ledger")
	assert.Empty(t, notifier.evaluated, "no debe evaluarse notificación alguna")
}

func TestRegisterMovement_SaidaExactaDejaCero(t *testing.T) {
	uc, store, _ := newLedger(t, 5)

	_, err := uc.RegisterMovement(context.Background(), testUserID, saidaReq(5, decimal.NewFromInt(2)))
	require.NoError(t, err)

	assert.Equal(t, int64(0), store.products[testProductID].Quantity,
		"sacar exactamente el stock disponible es válido y deja cero")
}

func TestRegisterMovement_CapturaPrecioYTotal(t *testing.T) {
	uc, _, _ := newLedger(t, 10)

	price := decimal.RequireFromString("2.50")
	mov, err := uc.RegisterMovement(context.Background(), testUserID, entradaReq(4, price))
	require.NoError(t, err)

	assert.True(t, mov.UnitPrice.Equal(price), "el precio unitario se captura al momento")
	assert.True(t, mov.TotalValue.Equal(decimal.RequireFromString("10.00")),
		"total = cantidad × precio unitario: esperaba 10.00, obtuve %s", mov.TotalValue)
}

func TestRegisterMovement_ProductoInexistente(t *testing.T) {
	uc, _, _ := newLedger(t, 10)

	req := entradaReq(1, decimal.NewFromInt(1))
	req.ProductID = "00000000-0000-0000-0000-00000000ffff"
	_, err := uc.RegisterMovement(context.Background(), testUserID, req)
	require.ErrorIs(t, err, domain.ErrProductNotFound)
}

func TestRegisterMovement_Validaciones(t *testing.T) {
	price := decimal.NewFromInt(1)
	cases := []struct {
		name string
		req  dto.RegisterMovementRequest
	}{
		{"cantidad cero", dto.RegisterMovementRequest{ProductID: testProductID, Type: entity.MovementTypeEntrada, Quantity: 0, UnitPrice: price, SupplierID: strptr(testSupplierID)}},
		{"cantidad negativa", dto.RegisterMovementRequest{ProductID: testProductID, Type: entity.MovementTypeSaida, Quantity: -2, UnitPrice: price, ClientID: strptr(testClientID)}},
		{"tipo desconocido", dto.RegisterMovementRequest{ProductID: testProductID, Type: "transferencia", Quantity: 1, UnitPrice: price, SupplierID: strptr(testSupplierID)}},
		{"precio negativo", dto.RegisterMovementRequest{ProductID: testProductID, Type: entity.MovementTypeEntrada, Quantity: 1, UnitPrice: decimal.NewFromInt(-1), SupplierID: strptr(testSupplierID)}},
		{"entrada sin proveedor", dto.RegisterMovementRequest{ProductID: testProductID, Type: entity.MovementTypeEntrada, Quantity: 1, UnitPrice: price}},
		{"entrada con cliente", dto.RegisterMovementRequest{ProductID: testProductID, Type: entity.MovementTypeEntrada, Quantity: 1, UnitPrice: price, SupplierID: strptr(testSupplierID), ClientID: strptr(testClientID)}},
		{"saida sin cliente", dto.RegisterMovementRequest{ProductID: testProductID, Type: entity.MovementTypeSaida, Quantity: 1, UnitPrice: price}},
		{"saida con proveedor", dto.RegisterMovementRequest{ProductID: testProductID, Type: entity.MovementTypeSaida, Quantity: 1, UnitPrice: price, ClientID: strptr(testClientID), SupplierID: strptr(testSupplierID)}},
		{"sin producto", dto.RegisterMovementRequest{Type: entity.MovementTypeEntrada, Quantity: 1, UnitPrice: price, SupplierID: strptr(testSupplierID)}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			uc, store, _ := newLedger(t, 10)
			_, err := uc.RegisterMovement(context.Background(), testUserID, tc.req)
			require.ErrorIs(t, err, domain.ErrInvalidInput)
			assert.Equal(t, int64(10), store.products[testProductID].Quantity,
				"una validación fallida no debe tocar el stock")
		})
	}
}

func TestRegisterMovement_NotificaConStockNuevo(t *testing.T) {
	uc, _, notifier := newLedger(t, 5)

	_, err := uc.RegisterMovement(context.Background(), testUserID, saidaReq(5, decimal.NewFromInt(1)))
	require.NoError(t, err)

	require.Len(t, notifier.evaluated, 1, "debe evaluarse el producto tras el movimiento")
	assert.Equal(t, int64(0), notifier.evaluated[0].Quantity,
		"el notificador debe recibir el stock ya actualizado")
}

// ──────────────────────────────────────────────────────────────────────────────
// ReverseMovement
// ──────────────────────────────────────────────────────────────────────────────

func TestReverseMovement_EntradaRoundTrip(t *testing.T) {
	uc, store, _ := newLedger(t, 10)

	mov, err := uc.RegisterMovement(context.Background(), testUserID, entradaReq(7, decimal.NewFromInt(2)))
	require.NoError(t, err)
	require.Equal(t, int64(17), store.products[testProductID].Quantity)

	require.NoError(t, uc.ReverseMovement(context.Background(), mov.ID))

	assert.Equal(t, int64(10), store.products[testProductID].Quantity,
		"registrar y revertir debe dejar el stock original")
	assert.Empty(t, store.movements, "la fila revertida debe desaparecer del ledger")
}

func TestReverseMovement_SaidaRestituyeStock(t *testing.T) {
	uc, store, _ := newLedger(t, 10)

	mov, err := uc.RegisterMovement(context.Background(), testUserID, saidaReq(6, decimal.NewFromInt(2)))
	require.NoError(t, err)
	require.Equal(t, int64(4), store.products[testProductID].Quantity)

	require.NoError(t, uc.ReverseMovement(context.Background(), mov.ID))

	assert.Equal(t, int64(10), store.products[testProductID].Quantity,
		"revertir una saída debe devolver las unidades")
}

func TestReverseMovement_EntradaConStockYaConsumido(t *testing.T) {
	uc, store, _ := newLedger(t, 0)

	entrada, err := uc.RegisterMovement(context.Background(), testUserID, entradaReq(10, decimal.NewFromInt(2)))
	require.NoError(t, err)
	_, err = uc.RegisterMovement(context.Background(), testUserID, saidaReq(8, decimal.NewFromInt(5)))
	require.NoError(t, err)
	require.Equal(t, int64(2), store.products[testProductID].Quantity)

	err = uc.ReverseMovement(context.Background(), entrada.ID)
	require.ErrorIs(t, err, domain.ErrInsufficientStock,
		"revertir una entrada que dejaría stock negativo debe rechazarse")

	assert.Equal(t, int64(2), store.products[testProductID].Quantity,
		"el rechazo no debe tocar el stock")
	assert.Len(t, store.movements, 2, "ambas filas deben seguir en el ledger")
}

func TestReverseMovement_MovimientoInexistente(t *testing.T) {
	uc, _, _ := newLedger(t, 10)

	err := uc.ReverseMovement(context.Background(), "00000000-0000-0000-0000-00000000eeee")
	require.ErrorIs(t, err, domain.ErrMovementNotFound)
}

// ──────────────────────────────────────────────────────────────────────────────
// Listados
// ──────────────────────────────────────────────────────────────────────────────

func TestListMovementsForProduct_FiltroInvalido(t *testing.T) {
	uc, _, _ := newLedger(t, 10)

	_, err := uc.ListMovementsForProduct(context.Background(), testProductID, "transferencia")
	require.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestListMovementsForProduct_FiltraPorTipo(t *testing.T) {
	uc, _, _ := newLedger(t, 10)

	_, err := uc.RegisterMovement(context.Background(), testUserID, entradaReq(5, decimal.NewFromInt(1)))
	require.NoError(t, err)
	_, err = uc.RegisterMovement(context.Background(), testUserID, saidaReq(3, decimal.NewFromInt(2)))
	require.NoError(t, err)

	entradas, err := uc.ListMovementsForProduct(context.Background(), testProductID, entity.MovementTypeEntrada)
	require.NoError(t, err)
	require.Len(t, entradas, 1)
	assert.Equal(t, entity.MovementTypeEntrada, entradas[0].Type)

	todos, err := uc.ListMovementsForProduct(context.Background(), testProductID, "")
	require.NoError(t, err)
	assert.Len(t, todos, 2, "sin filtro deben volver ambos movimientos")
}
