package dto

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	// Details lleva datos estructurados del error cuando aplica
	// (ej. allowed_remaining en errores de límites de stock).
	Details map[string]any `json:"details,omitempty"`
}
