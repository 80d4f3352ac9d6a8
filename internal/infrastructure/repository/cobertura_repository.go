package repository

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/Maxito7/recepcion_backend/internal/domain"
)

type coberturaRepository struct {
	db *sql.DB
}

// NewCoberturaRepository crea una nueva instancia del repositorio de coberturas
func NewCoberturaRepository(db *sql.DB) domain.CoberturaRepository {
	return &coberturaRepository{db: db}
}

// UpsertARL inserta o sobreescribe la cobertura ARL de la persona para el mes
// dado. La clave única es (persona_id, mes_vigencia): reenviar el mismo mes
// actualiza la entidad en lugar de duplicar la fila.
func (r *coberturaRepository) UpsertARL(personaID int, mesVigencia time.Time, entidad string) error {
	_, err := r.db.Exec(`
		INSERT INTO arl (persona_id, mes_vigencia, entidad)
		VALUES ($1, $2, $3)
		ON CONFLICT (persona_id, mes_vigencia) DO UPDATE SET
			entidad = EXCLUDED.entidad
	`, personaID, mesVigencia, entidad)

	if err != nil {
		return fmt.Errorf("error al registrar ARL: %w", err)
	}

	return nil
}

// InsertEPS agrega una ventana de cobertura EPS. No hay restricción de
// unicidad: cada envío suma una ventana y la vigente es la de vencimiento más
// lejano.
func (r *coberturaRepository) InsertEPS(personaID int, fechaVencimiento time.Time, entidad string) error {
	_, err := r.db.Exec(`
		INSERT INTO eps (persona_id, fecha_vencimiento, entidad)
		VALUES ($1, $2, $3)
	`, personaID, fechaVencimiento, entidad)

	if err != nil {
		return fmt.Errorf("error al registrar EPS: %w", err)
	}

	return nil
}
