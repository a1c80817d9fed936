package entity

import "strings"

// Roles válidos para Employee.
const (
	RoleAdmin   = "Admin"
	RoleOfficer = "Officer"
)

// NormalizeRole colapsa las grafías históricas de rol a los valores canónicos.
// Un rol vacío toma fallback (cada call site decide su default explícitamente);
// un rol desconocido se degrada a Officer, nunca se promueve.
func NormalizeRole(role, fallback string) string {
	if role == "" {
		return fallback
	}
	switch strings.ToLower(role) {
	case "admin", "company_admin", "superadmin":
		return RoleAdmin
	case "officer", "company_officer":
		return RoleOfficer
	}
	return RoleOfficer
}

// Employee empleado embebido dentro del documento Company (no tiene colección propia).
// El ID es único dentro de la empresa; el username también.
type Employee struct {
	ID           string `bson:"_id" json:"_id"`
	Username     string `bson:"username" json:"username"`
	PasswordHash []byte `bson:"password_hash" json:"-"` // bcrypt, nunca expuesto al cliente
	Role         string `bson:"role" json:"role"`
}

// Company documento tenant: agrupa sus empleados de forma exclusiva.
type Company struct {
	CompanyID string     `bson:"company_id" json:"company_id"`
	Employees []Employee `bson:"employees" json:"employees"`
}

// EmployeeByUsername devuelve el empleado con ese username exacto, o nil.
func (c *Company) EmployeeByUsername(username string) *Employee {
	for i := range c.Employees {
		if c.Employees[i].Username == username {
			return &c.Employees[i]
		}
	}
	return nil
}

// EmployeeByIDOrUsername busca por ID y, como respaldo, por username.
// Replica la resolución de identidad del token: el sub manda, el username desempata.
func (c *Company) EmployeeByIDOrUsername(id, username string) *Employee {
	for i := range c.Employees {
		e := &c.Employees[i]
		if e.ID == id || (username != "" && e.Username == username) {
			return e
		}
	}
	return nil
}
