package dto

// LoginRequest clave compartida del sector para abrir sesión.
type LoginRequest struct {
	Key string `json:"key"`
}

// LoginResponse token de sesión.
type LoginResponse struct {
	Token string `json:"token"`
}
