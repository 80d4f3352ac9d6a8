package repository

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/Maxito7/recepcion_backend/internal/domain"
)

// formatoHoraIngreso es el formato con el que el frontend muestra los registros
const formatoHoraIngreso = "2006-01-02T15:04"

type registroRepository struct {
	db *sql.DB
}

// NewRegistroRepository crea una nueva instancia del repositorio de registros
func NewRegistroRepository(db *sql.DB) domain.RegistroRepository {
	return &registroRepository{db: db}
}

// Create inserta un registro de ingreso y devuelve la proyección completa
func (r *registroRepository) Create(empleadoID int, horaIngreso time.Time) (*domain.RegistroCompleto, error) {
	var id int

	err := r.db.QueryRow(`
		INSERT INTO registros (empleado_id, hora_ingreso)
		VALUES ($1, $2)
		RETURNING id
	`, empleadoID, horaIngreso).Scan(&id)

	if err != nil {
		return nil, fmt.Errorf("error al crear registro: %w", err)
	}

	return r.GetByID(id)
}

// List devuelve todos los registros unidos con su empleado, más recientes primero
func (r *registroRepository) List() ([]domain.RegistroCompleto, error) {
	rows, err := r.db.Query(`
		SELECT r.id, r.hora_ingreso, e.nombre, e.apellido, e.placa
		FROM registros r
		JOIN empleados e ON r.empleado_id = e.id
		ORDER BY r.hora_ingreso DESC
	`)
	if err != nil {
		return nil, fmt.Errorf("error al obtener registros: %w", err)
	}
	defer rows.Close()

	var registros []domain.RegistroCompleto
	for rows.Next() {
		var registro domain.RegistroCompleto
		var horaIngreso time.Time
		var placa sql.NullString

		if err := rows.Scan(&registro.ID, &horaIngreso, &registro.Nombre, &registro.Apellido, &placa); err != nil {
			return nil, fmt.Errorf("error al escanear registro: %w", err)
		}

		registro.HoraIngreso = horaIngreso.Format(formatoHoraIngreso)
		if placa.Valid {
			registro.Placa = &placa.String
		}

		registros = append(registros, registro)
	}

	return registros, rows.Err()
}

// GetByID obtiene un registro por su ID
func (r *registroRepository) GetByID(id int) (*domain.RegistroCompleto, error) {
	registro := &domain.RegistroCompleto{}
	var horaIngreso time.Time
	var placa sql.NullString

	err := r.db.QueryRow(`
		SELECT r.id, r.hora_ingreso, e.nombre, e.apellido, e.placa
		FROM registros r
		JOIN empleados e ON r.empleado_id = e.id
		WHERE r.id = $1
	`, id).Scan(&registro.ID, &horaIngreso, &registro.Nombre, &registro.Apellido, &placa)

	if err == sql.ErrNoRows {
		return nil, domain.ErrNoEncontrado
	}

	if err != nil {
		return nil, fmt.Errorf("error al obtener registro: %w", err)
	}

	registro.HoraIngreso = horaIngreso.Format(formatoHoraIngreso)
	if placa.Valid {
		registro.Placa = &placa.String
	}

	return registro, nil
}

// GetEmpleadoID devuelve el empleado asociado a un registro
func (r *registroRepository) GetEmpleadoID(registroID int) (int, error) {
	var empleadoID int

	err := r.db.QueryRow(`SELECT empleado_id FROM registros WHERE id = $1`, registroID).Scan(&empleadoID)

	if err == sql.ErrNoRows {
		return 0, domain.ErrNoEncontrado
	}

	if err != nil {
		return 0, fmt.Errorf("error al obtener registro: %w", err)
	}

	return empleadoID, nil
}

// UpdateHoraIngreso actualiza la hora de ingreso de un registro
func (r *registroRepository) UpdateHoraIngreso(id int, horaIngreso time.Time) error {
	_, err := r.db.Exec(`UPDATE registros SET hora_ingreso = $1 WHERE id = $2`, horaIngreso, id)
	if err != nil {
		return fmt.Errorf("error al actualizar registro: %w", err)
	}
	return nil
}

// Delete elimina un registro por su ID
func (r *registroRepository) Delete(id int) error {
	result, err := r.db.Exec(`DELETE FROM registros WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error al eliminar registro: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("error al verificar eliminación: %w", err)
	}

	if rowsAffected == 0 {
		return domain.ErrNoEncontrado
	}

	return nil
}
