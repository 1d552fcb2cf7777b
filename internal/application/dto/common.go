package dto

// ErrorResponse cuerpo de error HTTP.
// El mensaje nunca incluye detalle interno de persistencia; eso va al log.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// MessageResponse confirmación simple (ej. borrado exitoso).
type MessageResponse struct {
	Message string `json:"message"`
}
