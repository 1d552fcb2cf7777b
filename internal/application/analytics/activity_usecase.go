package analytics

import (
	"context"
	"fmt"
	"sort"

	"github.com/jhoicas/gestion-api/internal/application/dto"
	"github.com/jhoicas/gestion-api/internal/domain/repository"
	"github.com/jhoicas/gestion-api/pkg/logger"
)

const (
	activityPerStore = 2 // registros recientes por colección
	activityMax      = 5 // tamaño máximo del feed
)

// ActivityUseCase arma el feed de actividad reciente: los registros más
// nuevos de clientes, facturas y productos fusionados en una sola lista
// cronológica inversa.
//
// Es best-effort: ante cualquier fallo de lectura devuelve lista vacía en
// lugar de propagar el error, para que un widget secundario nunca rompa la
// página. El fallo se registra en el log.
type ActivityUseCase struct {
	analyticsRepo repository.AnalyticsRepository
	log           *logger.Logger
}

// NewActivityUseCase construye el caso de uso.
func NewActivityUseCase(analyticsRepo repository.AnalyticsRepository, log *logger.Logger) *ActivityUseCase {
	return &ActivityUseCase{analyticsRepo: analyticsRepo, log: log}
}

// GetRecent devuelve hasta 5 actividades del propietario, más recientes primero.
func (uc *ActivityUseCase) GetRecent(ctx context.Context, ownerID string) []dto.Activity {
	customers, err := uc.analyticsRepo.RecentCustomers(ctx, ownerID, activityPerStore)
	if err != nil {
		uc.log.Warn().Err(err).Str("owner_id", ownerID).Msg("feed de actividad: clientes recientes")
		return []dto.Activity{}
	}
	invoices, err := uc.analyticsRepo.RecentInvoices(ctx, ownerID, activityPerStore)
	if err != nil {
		uc.log.Warn().Err(err).Str("owner_id", ownerID).Msg("feed de actividad: facturas recientes")
		return []dto.Activity{}
	}
	products, err := uc.analyticsRepo.RecentProducts(ctx, ownerID, activityPerStore)
	if err != nil {
		uc.log.Warn().Err(err).Str("owner_id", ownerID).Msg("feed de actividad: productos recientes")
		return []dto.Activity{}
	}

	activities := make([]dto.Activity, 0, 3*activityPerStore)
	for _, c := range customers {
		activities = append(activities, dto.Activity{
			ID:      "customer-" + c.ID,
			Type:    "customer",
			Action:  "added",
			Details: fmt.Sprintf("New customer %q registered", c.Name),
			Time:    c.CreatedAt,
		})
	}
	for _, inv := range invoices {
		activities = append(activities, dto.Activity{
			ID:      "invoice-" + inv.ID,
			Type:    "invoice",
			Action:  "created",
			Details: fmt.Sprintf("Invoice for %q ($%s) - %s", inv.Recipient, inv.Amount.String(), inv.Status),
			Time:    inv.CreatedAt,
		})
	}
	for _, p := range products {
		activities = append(activities, dto.Activity{
			ID:      "product-" + p.ID,
			Type:    "product",
			Action:  "updated",
			Details: fmt.Sprintf("Product %q stock: %d", p.Name, p.Stock),
			Time:    p.CreatedAt,
		})
	}

	sort.SliceStable(activities, func(i, j int) bool {
		return activities[i].Time.After(activities[j].Time)
	})
	if len(activities) > activityMax {
		activities = activities[:activityMax]
	}
	return activities
}
