package dto

// LoginRequest entrada para login de admin u officer.
type LoginRequest struct {
	CompanyID string `json:"company_id"`
	Username  string `json:"username"`
	Password  string `json:"password"`
}

// Identity vista saneada del empleado autenticado.
// Nunca incluye el password_hash; las claves (_id, company_id) son las que
// espera el frontend.
type Identity struct {
	ID        string `json:"_id"`
	Username  string `json:"username"`
	Role      string `json:"role"`
	CompanyID string `json:"company_id"`
}
