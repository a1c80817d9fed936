package dto

import (
	"encoding/json"
	"strconv"
	"strings"

	"github.com/farmdesk/farmdesk-api/internal/domain/entity"
)

// Rate acepta rate_per_unit como número JSON o como string numérico, igual que
// hacía el backend anterior. No falla el parseo del body: el handler decide el
// mensaje según Set/Valid.
type Rate struct {
	Value float64
	Set   bool // el campo vino en el body y no era null
	Valid bool // pudo interpretarse como número
}

// UnmarshalJSON implementa la coerción permisiva. Nunca devuelve error.
func (r *Rate) UnmarshalJSON(b []byte) error {
	s := strings.TrimSpace(string(b))
	if s == "null" {
		return nil
	}
	r.Set = true
	if strings.HasPrefix(s, `"`) {
		var q string
		if err := json.Unmarshal(b, &q); err != nil {
			return nil
		}
		s = strings.TrimSpace(q)
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil
	}
	r.Value, r.Valid = v, true
	return nil
}

// CropRequest entrada para crear o actualizar un cultivo.
type CropRequest struct {
	CropName    string `json:"crop_name"`
	RatePerUnit Rate   `json:"rate_per_unit"`
}

// CropListResponse listado del catálogo de la empresa.
type CropListResponse struct {
	CropDetails []entity.CropEntry `json:"crop_details"`
}

// CropResponse respuesta de mutación con la entrada resultante.
type CropResponse struct {
	Message string           `json:"message"`
	Crop    entity.CropEntry `json:"crop"`
}
