package domain

import "time"

// SolicitudVisita contiene los datos ya validados para registrar una visita
type SolicitudVisita struct {
	Cedula           string
	Nombre           string
	Apellido         string
	Empresa          string
	Area             string
	ElementosIngresa string
	AutorizaIngreso  string
	Placa            string
}

// VentanaCobertura contiene las fechas de corte contra las que se valida la
// cobertura, calculadas en UTC por el servicio antes de abrir la transacción
type VentanaCobertura struct {
	InicioMes time.Time // primer día del mes actual
	FinMes    time.Time // último día del mes actual
	Hoy       time.Time // fecha de hoy, sin hora
}

// VisitaCompleta es la proyección de una visita unida con su persona
type VisitaCompleta struct {
	ID               int    `json:"id"`
	Cedula           string `json:"cedula"`
	Nombre           string `json:"nombre"`
	Apellido         string `json:"apellido"`
	Empresa          string `json:"empresa"`
	Area             string `json:"area"`
	ElementosIngresa string `json:"elementos_ingresa"`
	AutorizaIngreso  string `json:"autoriza_ingreso"`
	Placa            string `json:"placa"`
	CodigoVisita     string `json:"codigo_visita"`
	HoraIngreso      string `json:"hora_ingreso"` // ISO-8601 UTC
}

// VisitaRepository define las operaciones con visitas
type VisitaRepository interface {
	// RegistrarVisita ejecuta en una sola transacción el upsert de la persona,
	// las validaciones de cobertura ARL/EPS y el alta de la visita. Devuelve
	// *ErrorCobertura si la persona no tiene cobertura vigente; en ese caso la
	// transacción completa se revierte, incluido el upsert de la persona.
	RegistrarVisita(solicitud SolicitudVisita, ventana VentanaCobertura) (*VisitaCompleta, error)
	// List devuelve todas las visitas unidas con su persona
	List() ([]VisitaCompleta, error)
}
