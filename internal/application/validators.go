package application

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/Maxito7/recepcion_backend/internal/domain"
)

// Validator contiene funciones de validación de datos de entrada
type Validator struct{}

var cedulaRegex = regexp.MustCompile(`^\d+$`)

// ValidateCedula valida que la cédula tenga entre 6 y 20 dígitos numéricos
func (v *Validator) ValidateCedula(cedula string) []string {
	var errores []string

	if len(cedula) < 6 || len(cedula) > 20 {
		errores = append(errores, "Cédula inválida (6-20 caracteres)")
	}

	if !cedulaRegex.MatchString(cedula) {
		errores = append(errores, "Solo números permitidos")
	}

	return errores
}

// ValidateRequerido valida que un campo no quede vacío después de recortar espacios
func (v *Validator) ValidateRequerido(valor, campo string) error {
	if strings.TrimSpace(valor) == "" {
		return fmt.Errorf("%s requerido", campo)
	}
	return nil
}

// ValidatePlaca valida que la placa no esté vacía y tenga máximo 6 caracteres
func (v *Validator) ValidatePlaca(placa string) []string {
	var errores []string

	placa = strings.TrimSpace(placa)

	if placa == "" {
		errores = append(errores, "Placa requerida")
	}

	if len(placa) > 6 {
		errores = append(errores, "Máximo 6 caracteres")
	}

	return errores
}

// ValidarVisita valida todos los campos de una solicitud de visita y devuelve
// la lista de mensajes de error encontrados
func (v *Validator) ValidarVisita(solicitud *domain.SolicitudVisita) []string {
	var errores []string

	errores = append(errores, v.ValidateCedula(solicitud.Cedula)...)

	campos := []struct {
		valor   string
		mensaje string
	}{
		{solicitud.Nombre, "Nombre requerido"},
		{solicitud.Apellido, "Apellido requerido"},
		{solicitud.Empresa, "Empresa requerida"},
		{solicitud.Area, "Área requerida"},
		{solicitud.ElementosIngresa, "Elementos ingresados requeridos"},
		{solicitud.AutorizaIngreso, "Autorizador requerido"},
	}

	for _, c := range campos {
		if strings.TrimSpace(c.valor) == "" {
			errores = append(errores, c.mensaje)
		}
	}

	errores = append(errores, v.ValidatePlaca(solicitud.Placa)...)

	return errores
}

// ValidateFechaISO parsea una fecha en formato YYYY-MM-DD
func (v *Validator) ValidateFechaISO(valor, campo string) (time.Time, error) {
	fecha, err := time.Parse("2006-01-02", strings.TrimSpace(valor))
	if err != nil {
		return time.Time{}, fmt.Errorf("%s: fecha inválida, use YYYY-MM-DD", campo)
	}
	return fecha, nil
}

// ValidateHoraIngreso parsea la hora de ingreso aceptando los formatos que
// envía el frontend (datetime-local con o sin segundos, o ISO completo)
func (v *Validator) ValidateHoraIngreso(valor string) (time.Time, error) {
	valor = strings.TrimSpace(valor)

	formatos := []string{
		"2006-01-02T15:04",
		"2006-01-02T15:04:05",
		time.RFC3339,
	}

	for _, formato := range formatos {
		if t, err := time.Parse(formato, valor); err == nil {
			return t, nil
		}
	}

	return time.Time{}, fmt.Errorf("hora_ingreso: fecha inválida")
}
