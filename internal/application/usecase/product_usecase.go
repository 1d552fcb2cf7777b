package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/gestion-api/internal/application/dto"
	"github.com/jhoicas/gestion-api/internal/domain"
	"github.com/jhoicas/gestion-api/internal/domain/entity"
	"github.com/jhoicas/gestion-api/internal/domain/repository"
)

// ProductUseCase CRUD de productos acotado por propietario.
type ProductUseCase struct {
	repo repository.ProductRepository
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(repo repository.ProductRepository) *ProductUseCase {
	return &ProductUseCase{repo: repo}
}

// List devuelve los productos del propietario, más recientes primero.
func (uc *ProductUseCase) List(ownerID string) ([]dto.ProductResponse, error) {
	list, err := uc.repo.ListByOwner(ownerID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ProductResponse, 0, len(list))
	for _, p := range list {
		out = append(out, toProductResponse(p))
	}
	return out, nil
}

// Create inserta un producto. Name, SKU y Price son obligatorios;
// un Price negativo se considera malformado.
func (uc *ProductUseCase) Create(ownerID string, in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	if in.Name == "" || in.SKU == "" || in.Price == nil {
		return nil, domain.ErrInvalidInput
	}
	if in.Price.IsNegative() || in.Stock < 0 {
		return nil, domain.ErrInvalidInput
	}
	if in.Status != "" && !validRecordStatus(in.Status) {
		return nil, domain.ErrInvalidInput
	}
	status := in.Status
	if status == "" {
		status = entity.StatusActive
	}
	product := &entity.Product{
		ID:        uuid.New().String(),
		OwnerID:   ownerID,
		Name:      in.Name,
		SKU:       in.SKU,
		Price:     *in.Price,
		Stock:     in.Stock,
		Category:  in.Category,
		Status:    status,
		LowStock:  in.LowStock,
		CreatedAt: time.Now(),
	}
	if err := uc.repo.Create(product); err != nil {
		return nil, err
	}
	resp := toProductResponse(product)
	return &resp, nil
}

// Update aplica un parche parcial sobre el producto id+owner.
func (uc *ProductUseCase) Update(ownerID, id string, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByIDAndOwner(id, ownerID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	if in.Status != nil && !validRecordStatus(*in.Status) {
		return nil, domain.ErrInvalidInput
	}
	if in.Price != nil && in.Price.IsNegative() {
		return nil, domain.ErrInvalidInput
	}
	if in.Stock != nil && *in.Stock < 0 {
		return nil, domain.ErrInvalidInput
	}
	if in.Name != nil {
		if *in.Name == "" {
			return nil, domain.ErrInvalidInput
		}
		product.Name = *in.Name
	}
	if in.SKU != nil {
		if *in.SKU == "" {
			return nil, domain.ErrInvalidInput
		}
		product.SKU = *in.SKU
	}
	if in.Price != nil {
		product.Price = *in.Price
	}
	if in.Stock != nil {
		product.Stock = *in.Stock
	}
	if in.Category != nil {
		product.Category = *in.Category
	}
	if in.Status != nil {
		product.Status = *in.Status
	}
	if in.LowStock != nil {
		product.LowStock = *in.LowStock
	}
	if err := uc.repo.Update(product); err != nil {
		return nil, err
	}
	resp := toProductResponse(product)
	return &resp, nil
}

// Delete elimina el producto id+owner.
func (uc *ProductUseCase) Delete(ownerID, id string) error {
	deleted, err := uc.repo.DeleteByIDAndOwner(id, ownerID)
	if err != nil {
		return err
	}
	if !deleted {
		return domain.ErrNotFound
	}
	return nil
}

func toProductResponse(p *entity.Product) dto.ProductResponse {
	return dto.ProductResponse{
		ID:        p.ID,
		Name:      p.Name,
		SKU:       p.SKU,
		Price:     p.Price,
		Stock:     p.Stock,
		Category:  p.Category,
		Status:    p.Status,
		LowStock:  p.LowStock,
		CreatedAt: p.CreatedAt,
	}
}
