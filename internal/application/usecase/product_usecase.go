package usecase

import (
	"context"
	"time"
	"unicode"

	"github.com/google/uuid"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"github.com/tu-usuario/estoque-api/internal/application/dto"
	"github.com/tu-usuario/estoque-api/internal/domain"
	"github.com/tu-usuario/estoque-api/internal/domain/entity"
	"github.com/tu-usuario/estoque-api/internal/domain/repository"
)

// ProductUseCase CRUD de productos. El stock se mueve por el ledger; acá solo
// entran el alta y la corrección administrativa.
type ProductUseCase struct {
	repo repository.ProductRepository
}

func NewProductUseCase(repo repository.ProductRepository) *ProductUseCase {
	return &ProductUseCase{repo: repo}
}

func (uc *ProductUseCase) Create(ctx context.Context, req dto.CreateProductRequest) (*dto.ProductResponse, error) {
	if req.SKU == "" || req.Name == "" || req.Quantity < 0 || req.Price.IsNegative() {
		return nil, domain.ErrInvalidInput
	}
	initial := req.InitialQuantity
	if initial <= 0 {
		initial = req.Quantity
	}
	now := time.Now()
	product := &entity.Product{
		ID:              uuid.NewString(),
		SKU:             req.SKU,
		Name:            req.Name,
		Description:     req.Description,
		Quantity:        req.Quantity,
		InitialQuantity: initial,
		Price:           req.Price,
		SupplierID:      req.SupplierID,
		Barcode:         req.Barcode,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	if err := uc.repo.Create(product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

func (uc *ProductUseCase) GetByID(ctx context.Context, id string) (*dto.ProductResponse, error) {
	return uc.get(func() (*entity.Product, error) { return uc.repo.GetByID(id) })
}

func (uc *ProductUseCase) GetBySKU(ctx context.Context, sku string) (*dto.ProductResponse, error) {
	return uc.get(func() (*entity.Product, error) { return uc.repo.GetBySKU(sku) })
}

func (uc *ProductUseCase) GetByBarcode(ctx context.Context, barcode string) (*dto.ProductResponse, error) {
	return uc.get(func() (*entity.Product, error) { return uc.repo.GetByBarcode(barcode) })
}

func (uc *ProductUseCase) Update(ctx context.Context, id string, req dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	if req.SKU == "" || req.Name == "" || req.Quantity < 0 || req.Price.IsNegative() {
		return nil, domain.ErrInvalidInput
	}
	current, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if current == nil {
		return nil, domain.ErrProductNotFound
	}

	current.SKU = req.SKU
	current.Name = req.Name
	current.Description = req.Description
	current.Quantity = req.Quantity
	current.Price = req.Price
	current.SupplierID = req.SupplierID
	current.Barcode = req.Barcode
	if req.InitialQuantity > 0 {
		current.InitialQuantity = req.InitialQuantity
	}
	current.UpdatedAt = time.Now()

	if err := uc.repo.Update(current); err != nil {
		return nil, err
	}
	return toProductResponse(current), nil
}

func (uc *ProductUseCase) List(ctx context.Context, page dto.PageRequest) ([]dto.ProductResponse, error) {
	page.DefaultPage()
	products, err := uc.repo.List(page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	return toProductResponses(products), nil
}

// Search busca por nombre o SKU ignorando acentos en el término.
func (uc *ProductUseCase) Search(ctx context.Context, term string) ([]dto.ProductResponse, error) {
	if term == "" {
		return nil, domain.ErrInvalidInput
	}
	products, err := uc.repo.Search(normalizeTerm(term))
	if err != nil {
		return nil, err
	}
	return toProductResponses(products), nil
}

func (uc *ProductUseCase) Delete(ctx context.Context, id string) error {
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if product == nil {
		return domain.ErrProductNotFound
	}
	return uc.repo.Delete(id)
}

func (uc *ProductUseCase) get(fetch func() (*entity.Product, error)) (*dto.ProductResponse, error) {
	product, err := fetch()
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrProductNotFound
	}
	return toProductResponse(product), nil
}

// normalizeTerm quita marcas diacríticas ("Café" ≈ "Cafe").
func normalizeTerm(term string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	normalized, _, err := transform.String(t, term)
	if err != nil {
		return term
	}
	return normalized
}

func toProductResponse(p *entity.Product) *dto.ProductResponse {
	return &dto.ProductResponse{
		ID:              p.ID,
		SKU:             p.SKU,
		Name:            p.Name,
		Description:     p.Description,
		Quantity:        p.Quantity,
		InitialQuantity: p.InitialQuantity,
		Price:           p.Price,
		SupplierID:      p.SupplierID,
		Barcode:         p.Barcode,
		CreatedAt:       p.CreatedAt,
		UpdatedAt:       p.UpdatedAt,
	}
}

func toProductResponses(products []*entity.Product) []dto.ProductResponse {
	out := make([]dto.ProductResponse, 0, len(products))
	for _, p := range products {
		out = append(out, *toProductResponse(p))
	}
	return out
}
