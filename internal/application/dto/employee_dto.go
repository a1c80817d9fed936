package dto

// CreateAdminRequest entrada del bootstrap de superadmin: crea la empresa con
// su primer Admin o agrega un Admin a una existente.
type CreateAdminRequest struct {
	Username  string `json:"username"`
	Password  string `json:"password"`
	CompanyID string `json:"company_id"`
}

// CreateOfficerRequest entrada para crear un Officer; el company_id sale del
// token del admin autenticado.
type CreateOfficerRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// OfficerListResponse listado de officers de la empresa.
type OfficerListResponse struct {
	Items []Identity `json:"items"`
}
