package domain

import (
	"errors"
	"strings"
)

// ErrNoEncontrado indica que la entidad referenciada no existe
var ErrNoEncontrado = errors.New("no encontrado")

// Códigos de rechazo por cobertura, legibles por el frontend
const (
	CodigoARLRequerida = "ARL_MENSUAL_REQUERIDA"
	CodigoEPSRequerida = "EPS_REQUERIDA"
)

// ErrorCobertura indica que la visita fue rechazada por falta de cobertura vigente
type ErrorCobertura struct {
	Codigo  string
	Mensaje string
}

func (e *ErrorCobertura) Error() string {
	return e.Mensaje
}

// ErrorValidacion agrupa los errores de validación de entrada detectados antes
// de cualquier acceso a base de datos
type ErrorValidacion struct {
	Errores []string
}

func (e *ErrorValidacion) Error() string {
	return strings.Join(e.Errores, "; ")
}

// NuevoErrorValidacion construye un error de validación con un solo mensaje
func NuevoErrorValidacion(mensaje string) *ErrorValidacion {
	return &ErrorValidacion{Errores: []string{mensaje}}
}
