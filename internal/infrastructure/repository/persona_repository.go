package repository

import (
	"database/sql"
	"fmt"

	"github.com/Maxito7/recepcion_backend/internal/domain"
)

type personaRepository struct {
	db *sql.DB
}

// NewPersonaRepository crea una nueva instancia del repositorio de personas
func NewPersonaRepository(db *sql.DB) domain.PersonaRepository {
	return &personaRepository{db: db}
}

// FindByCedula busca una persona por su cédula
func (r *personaRepository) FindByCedula(cedula string) (*domain.Persona, error) {
	persona := &domain.Persona{}

	err := r.db.QueryRow(`
		SELECT id, cedula, nombre, apellido, empresa
		FROM personas
		WHERE cedula = $1
	`, cedula).Scan(
		&persona.ID,
		&persona.Cedula,
		&persona.Nombre,
		&persona.Apellido,
		&persona.Empresa,
	)

	if err == sql.ErrNoRows {
		return nil, nil // No existe, devolver nil sin error
	}

	if err != nil {
		return nil, fmt.Errorf("error al buscar persona: %w", err)
	}

	return persona, nil
}

// FindOrCreateTemporal busca una persona por cédula y la crea con datos
// TEMPORAL si no existe. El ON CONFLICT DO NOTHING cubre la carrera entre dos
// inserciones simultáneas de la misma cédula: el perdedor relee la fila.
func (r *personaRepository) FindOrCreateTemporal(cedula string) (int, bool, error) {
	var id int

	err := r.db.QueryRow(`SELECT id FROM personas WHERE cedula = $1`, cedula).Scan(&id)
	if err == nil {
		return id, false, nil
	}

	if err != sql.ErrNoRows {
		return 0, false, fmt.Errorf("error al buscar persona: %w", err)
	}

	err = r.db.QueryRow(`
		INSERT INTO personas (cedula, nombre, apellido, empresa)
		VALUES ($1, $2, $2, $2)
		ON CONFLICT (cedula) DO NOTHING
		RETURNING id
	`, cedula, domain.SentinelTemporal).Scan(&id)

	if err == sql.ErrNoRows {
		// Otra petición la creó entre el SELECT y el INSERT
		if err := r.db.QueryRow(`SELECT id FROM personas WHERE cedula = $1`, cedula).Scan(&id); err != nil {
			return 0, false, fmt.Errorf("error al releer persona: %w", err)
		}
		return id, false, nil
	}

	if err != nil {
		return 0, false, fmt.Errorf("error al crear persona temporal: %w", err)
	}

	return id, true, nil
}
