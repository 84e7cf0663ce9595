package dto

// Result es la forma mínima {success, message} que devuelve toda operación.
// Los fallos siempre viajan como datos, nunca como error a través de la
// frontera del cliente API.
type Result struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// ErrorResponse respuesta de error del API (usada por el servidor de desarrollo).
type ErrorResponse struct {
	Code    string `json:"code,omitempty"`
	Message string `json:"message"`
}
