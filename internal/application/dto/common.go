package dto

// Response es el sobre uniforme de todas las respuestas del API, éxito o
// error: { status, message, data }. El frontend de administración depende
// de esta forma exacta.
type Response struct {
	Status  string `json:"status"`
	Message string `json:"message"`
	Data    any    `json:"data"`
}

// Valores de Status del sobre.
const (
	StatusSuccess = "success"
	StatusError   = "error"
)
