package application

import (
	"time"

	"github.com/Maxito7/recepcion_backend/internal/domain"
)

// Reloj abstrae la hora actual del sistema para poder inyectar instantes
// fijos en las pruebas
type Reloj interface {
	Ahora() time.Time
}

// RelojSistema devuelve la hora real del sistema
type RelojSistema struct{}

// Ahora devuelve la hora actual
func (RelojSistema) Ahora() time.Time {
	return time.Now()
}

// RelojFijo devuelve siempre el mismo instante
type RelojFijo struct {
	Instante time.Time
}

// Ahora devuelve el instante fijado
func (r RelojFijo) Ahora() time.Time {
	return r.Instante
}

// VentanaMesActual calcula en UTC el primer y último día del mes en curso y la
// fecha de hoy sin componente horario. Todas las validaciones de cobertura se
// hacen contra esta ventana.
func VentanaMesActual(reloj Reloj) domain.VentanaCobertura {
	ahora := reloj.Ahora().UTC()

	inicioMes := time.Date(ahora.Year(), ahora.Month(), 1, 0, 0, 0, 0, time.UTC)
	finMes := inicioMes.AddDate(0, 1, -1)
	hoy := time.Date(ahora.Year(), ahora.Month(), ahora.Day(), 0, 0, 0, 0, time.UTC)

	return domain.VentanaCobertura{
		InicioMes: inicioMes,
		FinMes:    finMes,
		Hoy:       hoy,
	}
}

// PrimerDiaDelMes normaliza una fecha al primer día de su mes en UTC
func PrimerDiaDelMes(fecha time.Time) time.Time {
	f := fecha.UTC()
	return time.Date(f.Year(), f.Month(), 1, 0, 0, 0, 0, time.UTC)
}
