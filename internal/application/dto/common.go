package dto

// ErrorResponse cuerpo de error HTTP: {"error": "<mensaje>"}.
// El formato lo fija el frontend existente; no cambiar las claves.
type ErrorResponse struct {
	Error string `json:"error"`
}

// MessageResponse respuesta de éxito con solo un mensaje.
type MessageResponse struct {
	Message string `json:"message"`
}

// CreatedResponse respuesta de creación: mensaje + id generado.
type CreatedResponse struct {
	Message string `json:"message"`
	ID      string `json:"id"`
}
