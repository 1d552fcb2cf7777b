package dto

import "time"

// Activity una entrada del feed de actividad reciente.
// Action es una etiqueta fija por tipo: added (customer), created (invoice),
// updated (product). Details es texto legible interpolado.
type Activity struct {
	ID      string    `json:"id"`
	Type    string    `json:"type"` // customer, invoice, product
	Action  string    `json:"action"`
	Details string    `json:"details"`
	Time    time.Time `json:"time"`
}
