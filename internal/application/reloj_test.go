package application

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestVentanaMesActual(t *testing.T) {
	tests := []struct {
		name      string
		instante  time.Time
		inicioMes time.Time
		finMes    time.Time
		hoy       time.Time
	}{
		{
			name:      "mitad de mes",
			instante:  time.Date(2024, time.March, 15, 10, 30, 0, 0, time.UTC),
			inicioMes: time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC),
			finMes:    time.Date(2024, time.March, 31, 0, 0, 0, 0, time.UTC),
			hoy:       time.Date(2024, time.March, 15, 0, 0, 0, 0, time.UTC),
		},
		{
			name:      "febrero bisiesto",
			instante:  time.Date(2024, time.February, 29, 23, 59, 0, 0, time.UTC),
			inicioMes: time.Date(2024, time.February, 1, 0, 0, 0, 0, time.UTC),
			finMes:    time.Date(2024, time.February, 29, 0, 0, 0, 0, time.UTC),
			hoy:       time.Date(2024, time.February, 29, 0, 0, 0, 0, time.UTC),
		},
		{
			name:      "diciembre cruza de año",
			instante:  time.Date(2023, time.December, 31, 12, 0, 0, 0, time.UTC),
			inicioMes: time.Date(2023, time.December, 1, 0, 0, 0, 0, time.UTC),
			finMes:    time.Date(2023, time.December, 31, 0, 0, 0, 0, time.UTC),
			hoy:       time.Date(2023, time.December, 31, 0, 0, 0, 0, time.UTC),
		},
		{
			name:      "instante en otra zona horaria se normaliza a UTC",
			instante:  time.Date(2024, time.April, 1, 1, 0, 0, 0, time.FixedZone("UTC+5", 5*3600)),
			inicioMes: time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC),
			finMes:    time.Date(2024, time.March, 31, 0, 0, 0, 0, time.UTC),
			hoy:       time.Date(2024, time.March, 31, 0, 0, 0, 0, time.UTC),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ventana := VentanaMesActual(RelojFijo{Instante: tt.instante})

			assert.Equal(t, tt.inicioMes, ventana.InicioMes)
			assert.Equal(t, tt.finMes, ventana.FinMes)
			assert.Equal(t, tt.hoy, ventana.Hoy)
		})
	}
}

func TestPrimerDiaDelMes(t *testing.T) {
	fecha := time.Date(2024, time.March, 15, 18, 45, 0, 0, time.UTC)
	assert.Equal(t, time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC), PrimerDiaDelMes(fecha))

	primero := time.Date(2024, time.July, 1, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, primero, PrimerDiaDelMes(primero))
}
