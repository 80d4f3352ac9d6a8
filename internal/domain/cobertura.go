package domain

import "time"

// RegistroARL representa la cobertura mensual de ARL de una persona.
// La vigencia se normaliza siempre al primer día del mes.
type RegistroARL struct {
	ID          int       `json:"id"`
	PersonaID   int       `json:"persona_id"`
	MesVigencia time.Time `json:"mes_vigencia"`
	Entidad     string    `json:"entidad"`
}

// RegistroEPS representa una ventana de cobertura de EPS de una persona.
// Puede haber varias filas por persona; la vigente es la de vencimiento más lejano.
type RegistroEPS struct {
	ID               int       `json:"id"`
	PersonaID        int       `json:"persona_id"`
	FechaVencimiento time.Time `json:"fecha_vencimiento"`
	Entidad          string    `json:"entidad"`
}

// CoberturaRepository define las operaciones con coberturas ARL y EPS
type CoberturaRepository interface {
	// UpsertARL inserta la cobertura ARL de la persona para el mes dado, o
	// sobreescribe la entidad si ya existe una fila para ese mes
	UpsertARL(personaID int, mesVigencia time.Time, entidad string) error
	// InsertEPS agrega una nueva ventana de cobertura EPS para la persona
	InsertEPS(personaID int, fechaVencimiento time.Time, entidad string) error
}
