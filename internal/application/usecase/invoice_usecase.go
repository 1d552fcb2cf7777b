package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/gestion-api/internal/application/dto"
	"github.com/jhoicas/gestion-api/internal/domain"
	"github.com/jhoicas/gestion-api/internal/domain/entity"
	"github.com/jhoicas/gestion-api/internal/domain/repository"
)

// dateLayout formato de fecha calendario aceptado en la API.
const dateLayout = "2006-01-02"

// InvoiceUseCase CRUD de facturas acotado por propietario.
type InvoiceUseCase struct {
	repo repository.InvoiceRepository
}

// NewInvoiceUseCase construye el caso de uso.
func NewInvoiceUseCase(repo repository.InvoiceRepository) *InvoiceUseCase {
	return &InvoiceUseCase{repo: repo}
}

// List devuelve las facturas del propietario, más recientes primero.
func (uc *InvoiceUseCase) List(ownerID string) ([]dto.InvoiceResponse, error) {
	list, err := uc.repo.ListByOwner(ownerID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.InvoiceResponse, 0, len(list))
	for _, inv := range list {
		out = append(out, toInvoiceResponse(inv))
	}
	return out, nil
}

// Create inserta una factura. Type, Recipient, Amount, Date y DueDate son
// obligatorios; una fecha que no parsea como YYYY-MM-DD es entrada inválida.
func (uc *InvoiceUseCase) Create(ownerID string, in dto.CreateInvoiceRequest) (*dto.InvoiceResponse, error) {
	if in.Recipient == "" || in.Amount == nil || in.Date == "" || in.DueDate == "" {
		return nil, domain.ErrInvalidInput
	}
	if !validInvoiceType(in.Type) || in.Amount.IsNegative() {
		return nil, domain.ErrInvalidInput
	}
	if in.Status != "" && !validInvoiceStatus(in.Status) {
		return nil, domain.ErrInvalidInput
	}
	date, err := time.Parse(dateLayout, in.Date)
	if err != nil {
		return nil, domain.ErrInvalidInput
	}
	dueDate, err := time.Parse(dateLayout, in.DueDate)
	if err != nil {
		return nil, domain.ErrInvalidInput
	}
	status := in.Status
	if status == "" {
		status = entity.InvoiceStatusPending
	}
	invoice := &entity.Invoice{
		ID:        uuid.New().String(),
		OwnerID:   ownerID,
		Type:      in.Type,
		Recipient: in.Recipient,
		Amount:    *in.Amount,
		Status:    status,
		Date:      date,
		DueDate:   dueDate,
		CreatedAt: time.Now(),
	}
	if err := uc.repo.Create(invoice); err != nil {
		return nil, err
	}
	resp := toInvoiceResponse(invoice)
	return &resp, nil
}

// Update aplica un parche parcial sobre la factura id+owner.
func (uc *InvoiceUseCase) Update(ownerID, id string, in dto.UpdateInvoiceRequest) (*dto.InvoiceResponse, error) {
	invoice, err := uc.repo.GetByIDAndOwner(id, ownerID)
	if err != nil {
		return nil, err
	}
	if invoice == nil {
		return nil, domain.ErrNotFound
	}
	if in.Type != nil && !validInvoiceType(*in.Type) {
		return nil, domain.ErrInvalidInput
	}
	if in.Status != nil && !validInvoiceStatus(*in.Status) {
		return nil, domain.ErrInvalidInput
	}
	if in.Amount != nil && in.Amount.IsNegative() {
		return nil, domain.ErrInvalidInput
	}
	if in.Date != nil {
		date, err := time.Parse(dateLayout, *in.Date)
		if err != nil {
			return nil, domain.ErrInvalidInput
		}
		invoice.Date = date
	}
	if in.DueDate != nil {
		dueDate, err := time.Parse(dateLayout, *in.DueDate)
		if err != nil {
			return nil, domain.ErrInvalidInput
		}
		invoice.DueDate = dueDate
	}
	if in.Type != nil {
		invoice.Type = *in.Type
	}
	if in.Recipient != nil {
		if *in.Recipient == "" {
			return nil, domain.ErrInvalidInput
		}
		invoice.Recipient = *in.Recipient
	}
	if in.Amount != nil {
		invoice.Amount = *in.Amount
	}
	if in.Status != nil {
		invoice.Status = *in.Status
	}
	if err := uc.repo.Update(invoice); err != nil {
		return nil, err
	}
	resp := toInvoiceResponse(invoice)
	return &resp, nil
}

// Delete elimina la factura id+owner.
func (uc *InvoiceUseCase) Delete(ownerID, id string) error {
	deleted, err := uc.repo.DeleteByIDAndOwner(id, ownerID)
	if err != nil {
		return err
	}
	if !deleted {
		return domain.ErrNotFound
	}
	return nil
}

func toInvoiceResponse(inv *entity.Invoice) dto.InvoiceResponse {
	return dto.InvoiceResponse{
		ID:        inv.ID,
		Type:      inv.Type,
		Recipient: inv.Recipient,
		Amount:    inv.Amount,
		Status:    inv.Status,
		Date:      inv.Date.Format(dateLayout),
		DueDate:   inv.DueDate.Format(dateLayout),
		CreatedAt: inv.CreatedAt,
	}
}

func validInvoiceType(s string) bool {
	return s == entity.InvoiceTypeCustomer || s == entity.InvoiceTypeEmployee || s == entity.InvoiceTypeOther
}

func validInvoiceStatus(s string) bool {
	switch s {
	case entity.InvoiceStatusPending, entity.InvoiceStatusPaid, entity.InvoiceStatusOverdue, entity.InvoiceStatusDraft:
		return true
	}
	return false
}
