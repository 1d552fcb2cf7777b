package billing

import (
	"context"
	"fmt"

	"github.com/jhoicas/gestion-api/internal/domain"
	"github.com/jhoicas/gestion-api/internal/domain/repository"
)

// PDFUseCase genera la representación imprimible (PDF) de una factura.
type PDFUseCase struct {
	invoiceRepo repository.InvoiceRepository
	userRepo    repository.UserRepository
	generator   InvoicePDFGenerator
}

// NewPDFUseCase construye el caso de uso inyectando sus dependencias.
func NewPDFUseCase(
	invoiceRepo repository.InvoiceRepository,
	userRepo repository.UserRepository,
	generator InvoicePDFGenerator,
) *PDFUseCase {
	return &PDFUseCase{invoiceRepo: invoiceRepo, userRepo: userRepo, generator: generator}
}

// DownloadInvoicePDF carga la factura acotada por propietario y genera el PDF.
//
// Retorna:
//   - (pdfBytes, filename, nil)  si todo sale bien.
//   - domain.ErrNotFound         si la factura no existe o pertenece a otro usuario
//     (mismo comportamiento que el resto de lecturas por ID).
func (uc *PDFUseCase) DownloadInvoicePDF(ctx context.Context, ownerID, invoiceID string) (pdfBytes []byte, filename string, err error) {
	inv, err := uc.invoiceRepo.GetByIDAndOwner(invoiceID, ownerID)
	if err != nil {
		return nil, "", fmt.Errorf("pdf: obtener factura: %w", err)
	}
	if inv == nil {
		return nil, "", domain.ErrNotFound
	}

	owner, err := uc.userRepo.FindByID(ownerID)
	if err != nil {
		return nil, "", fmt.Errorf("pdf: obtener emisor: %w", err)
	}
	if owner == nil {
		return nil, "", domain.ErrUserNotFound
	}

	pdfBytes, err = uc.generator.GenerateInvoicePDF(ctx, inv, owner)
	if err != nil {
		return nil, "", fmt.Errorf("pdf: generación fallida: %w", err)
	}

	filename = fmt.Sprintf("factura_%s.pdf", inv.ID)
	return pdfBytes, filename, nil
}
