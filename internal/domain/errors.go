package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound       = errors.New("recurso no encontrado")
	ErrUserNotFound   = errors.New("empleado no encontrado")
	ErrCropNotFound   = errors.New("cultivo no encontrado")
	ErrConflict       = errors.New("conflicto con el estado actual")
	ErrBadCredentials = errors.New("credenciales inválidas")
	ErrWrongRole      = errors.New("rol no autorizado")

	// Errores de resolución de identidad (AuthUseCase.ResolveIdentity).
	ErrMissingToken   = errors.New("token ausente")
	ErrMalformedToken = errors.New("token sin claims requeridos")
	ErrInvalidToken   = errors.New("token inválido o expirado")
)
