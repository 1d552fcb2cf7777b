package billing

import (
	"context"

	"github.com/jhoicas/gestion-api/internal/domain/entity"
)

// InvoicePDFGenerator puerto de renderizado: recibe la factura y el usuario
// emisor y devuelve los bytes del documento.
type InvoicePDFGenerator interface {
	GenerateInvoicePDF(ctx context.Context, invoice *entity.Invoice, owner *entity.User) ([]byte, error)
}
