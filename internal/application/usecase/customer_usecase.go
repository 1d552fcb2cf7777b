package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/gestion-api/internal/application/dto"
	"github.com/jhoicas/gestion-api/internal/domain"
	"github.com/jhoicas/gestion-api/internal/domain/entity"
	"github.com/jhoicas/gestion-api/internal/domain/repository"
)

// CustomerUseCase CRUD de clientes acotado por propietario.
type CustomerUseCase struct {
	repo repository.CustomerRepository
}

// NewCustomerUseCase construye el caso de uso.
func NewCustomerUseCase(repo repository.CustomerRepository) *CustomerUseCase {
	return &CustomerUseCase{repo: repo}
}

// List devuelve los clientes del propietario, más recientes primero.
func (uc *CustomerUseCase) List(ownerID string) ([]dto.CustomerResponse, error) {
	list, err := uc.repo.ListByOwner(ownerID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.CustomerResponse, 0, len(list))
	for _, c := range list {
		out = append(out, toCustomerResponse(c))
	}
	return out, nil
}

// Create inserta un cliente. OwnerID se estampa desde el token, ignorando
// cualquier valor que el cliente HTTP haya podido enviar.
func (uc *CustomerUseCase) Create(ownerID string, in dto.CreateCustomerRequest) (*dto.CustomerResponse, error) {
	if in.Status != "" && !validRecordStatus(in.Status) {
		return nil, domain.ErrInvalidInput
	}
	status := in.Status
	if status == "" {
		status = entity.StatusActive
	}
	customer := &entity.Customer{
		ID:           uuid.New().String(),
		OwnerID:      ownerID,
		Name:         in.Name,
		Email:        in.Email,
		Phone:        in.Phone,
		Location:     in.Location,
		Status:       status,
		InvoiceCount: in.InvoiceCount,
		TotalSpent:   in.TotalSpent,
		CreatedAt:    time.Now(),
	}
	if err := uc.repo.Create(customer); err != nil {
		return nil, err
	}
	resp := toCustomerResponse(customer)
	return &resp, nil
}

// Update aplica un parche parcial sobre el cliente id+owner.
// Devuelve ErrNotFound tanto si el ID no existe como si pertenece a otro
// usuario: el caller no puede distinguir ambos casos.
func (uc *CustomerUseCase) Update(ownerID, id string, in dto.UpdateCustomerRequest) (*dto.CustomerResponse, error) {
	customer, err := uc.repo.GetByIDAndOwner(id, ownerID)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, domain.ErrNotFound
	}
	if in.Status != nil && !validRecordStatus(*in.Status) {
		return nil, domain.ErrInvalidInput
	}
	if in.Name != nil {
		customer.Name = *in.Name
	}
	if in.Email != nil {
		customer.Email = *in.Email
	}
	if in.Phone != nil {
		customer.Phone = *in.Phone
	}
	if in.Location != nil {
		customer.Location = *in.Location
	}
	if in.Status != nil {
		customer.Status = *in.Status
	}
	if in.InvoiceCount != nil {
		customer.InvoiceCount = *in.InvoiceCount
	}
	if in.TotalSpent != nil {
		customer.TotalSpent = *in.TotalSpent
	}
	if err := uc.repo.Update(customer); err != nil {
		return nil, err
	}
	resp := toCustomerResponse(customer)
	return &resp, nil
}

// Delete elimina el cliente id+owner. Misma disciplina de ErrNotFound que Update.
// No hay borrado en cascada: las facturas del cliente no se tocan.
func (uc *CustomerUseCase) Delete(ownerID, id string) error {
	deleted, err := uc.repo.DeleteByIDAndOwner(id, ownerID)
	if err != nil {
		return err
	}
	if !deleted {
		return domain.ErrNotFound
	}
	return nil
}

func toCustomerResponse(c *entity.Customer) dto.CustomerResponse {
	return dto.CustomerResponse{
		ID:           c.ID,
		Name:         c.Name,
		Email:        c.Email,
		Phone:        c.Phone,
		Location:     c.Location,
		Status:       c.Status,
		InvoiceCount: c.InvoiceCount,
		TotalSpent:   c.TotalSpent,
		CreatedAt:    c.CreatedAt,
	}
}

// validRecordStatus valida el enum compartido por Customer y Product.
func validRecordStatus(s string) bool {
	return s == entity.StatusActive || s == entity.StatusInactive
}
