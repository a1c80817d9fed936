package entity

import (
	"time"

	"golang.org/x/text/cases"
)

// cropFold case folding Unicode para la unicidad case-insensitive de nombres de cultivo.
var cropFold = cases.Fold()

// EqualCropName compara nombres de cultivo sin distinguir mayúsculas/minúsculas.
func EqualCropName(a, b string) bool {
	return cropFold.String(a) == cropFold.String(b)
}

// CropEntry entrada del catálogo de cultivos de una empresa.
// El nombre es único dentro de la empresa (case-insensitive) y la tarifa no puede ser negativa.
type CropEntry struct {
	CropName    string    `bson:"crop_name" json:"crop_name"`
	RatePerUnit float64   `bson:"rate_per_unit" json:"rate_per_unit"`
	CreatedAt   time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt   time.Time `bson:"updated_at" json:"updated_at"`
	CreatedBy   string    `bson:"created_by" json:"created_by"`
	UpdatedBy   string    `bson:"updated_by" json:"updated_by"`
}

// CropCatalog documento por empresa con la lista embebida crop_details.
// Se crea perezosamente en la primera lectura.
type CropCatalog struct {
	CompanyID   string      `bson:"company_id" json:"company_id"`
	CropDetails []CropEntry `bson:"crop_details" json:"crop_details"`
}

// EntryIndex devuelve la posición de la entrada con nombre exacto, o -1.
func (c *CropCatalog) EntryIndex(name string) int {
	for i := range c.CropDetails {
		if c.CropDetails[i].CropName == name {
			return i
		}
	}
	return -1
}

// HasNameExcept indica si existe otra entrada (distinta de la posición except)
// cuyo nombre coincida case-insensitive con name. except -1 considera todas.
func (c *CropCatalog) HasNameExcept(name string, except int) bool {
	for i := range c.CropDetails {
		if i == except {
			continue
		}
		if EqualCropName(c.CropDetails[i].CropName, name) {
			return true
		}
	}
	return false
}
