package repository

import (
	"database/sql"
	"fmt"

	"github.com/Maxito7/recepcion_backend/internal/domain"
)

type empleadoRepository struct {
	db *sql.DB
}

// NewEmpleadoRepository crea una nueva instancia del repositorio de empleados
func NewEmpleadoRepository(db *sql.DB) domain.EmpleadoRepository {
	return &empleadoRepository{db: db}
}

// Create crea un nuevo empleado
func (r *empleadoRepository) Create(empleado *domain.Empleado) error {
	err := r.db.QueryRow(`
		INSERT INTO empleados (nombre, apellido, placa)
		VALUES ($1, $2, $3)
		RETURNING id
	`, empleado.Nombre, empleado.Apellido, placaNull(empleado.Placa)).Scan(&empleado.ID)

	if err != nil {
		return fmt.Errorf("error al crear empleado: %w", err)
	}

	return nil
}

// List devuelve todos los empleados ordenados por apellido y nombre
func (r *empleadoRepository) List() ([]domain.Empleado, error) {
	rows, err := r.db.Query(`
		SELECT id, nombre, apellido, placa
		FROM empleados
		ORDER BY apellido, nombre
	`)
	if err != nil {
		return nil, fmt.Errorf("error al obtener empleados: %w", err)
	}
	defer rows.Close()

	var empleados []domain.Empleado
	for rows.Next() {
		empleado, err := scanEmpleado(rows)
		if err != nil {
			return nil, err
		}
		empleados = append(empleados, *empleado)
	}

	return empleados, rows.Err()
}

// GetByID obtiene un empleado por su ID
func (r *empleadoRepository) GetByID(id int) (*domain.Empleado, error) {
	empleado := &domain.Empleado{}
	var placa sql.NullString

	err := r.db.QueryRow(`
		SELECT id, nombre, apellido, placa
		FROM empleados
		WHERE id = $1
	`, id).Scan(&empleado.ID, &empleado.Nombre, &empleado.Apellido, &placa)

	if err == sql.ErrNoRows {
		return nil, domain.ErrNoEncontrado
	}

	if err != nil {
		return nil, fmt.Errorf("error al obtener empleado: %w", err)
	}

	if placa.Valid {
		empleado.Placa = &placa.String
	}

	return empleado, nil
}

// Update sobreescribe los datos de un empleado existente
func (r *empleadoRepository) Update(empleado *domain.Empleado) error {
	result, err := r.db.Exec(`
		UPDATE empleados
		SET nombre = $1, apellido = $2, placa = $3
		WHERE id = $4
	`, empleado.Nombre, empleado.Apellido, placaNull(empleado.Placa), empleado.ID)

	if err != nil {
		return fmt.Errorf("error al actualizar empleado: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("error al verificar actualización: %w", err)
	}

	if rowsAffected == 0 {
		return domain.ErrNoEncontrado
	}

	return nil
}

// Delete elimina un empleado por su ID
func (r *empleadoRepository) Delete(id int) error {
	result, err := r.db.Exec(`DELETE FROM empleados WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error al eliminar empleado: %w", err)
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

// FindOrCreate busca un empleado por nombre y apellido exactos y lo crea si no
// existe, devolviendo si la fila fue creada o reutilizada
func (r *empleadoRepository) FindOrCreate(nombre, apellido string, placa *string) (int, bool, error) {
	var id int

	err := r.db.QueryRow(`
		SELECT id FROM empleados
		WHERE nombre = $1 AND apellido = $2
		LIMIT 1
	`, nombre, apellido).Scan(&id)

	if err == nil {
		return id, false, nil
	}

	if err != sql.ErrNoRows {
		return 0, false, fmt.Errorf("error al buscar empleado: %w", err)
	}

	err = r.db.QueryRow(`
		INSERT INTO empleados (nombre, apellido, placa)
		VALUES ($1, $2, $3)
		RETURNING id
	`, nombre, apellido, placaNull(placa)).Scan(&id)

	if err != nil {
		return 0, false, fmt.Errorf("error al crear empleado: %w", err)
	}

	return id, true, nil
}

// placaNull convierte *string a sql.NullString
func placaNull(placa *string) sql.NullString {
	if placa == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: *placa, Valid: true}
}

func scanEmpleado(rows *sql.Rows) (*domain.Empleado, error) {
	empleado := &domain.Empleado{}
	var placa sql.NullString

	if err := rows.Scan(&empleado.ID, &empleado.Nombre, &empleado.Apellido, &placa); err != nil {
		return nil, fmt.Errorf("error al escanear empleado: %w", err)
	}

	if placa.Valid {
		empleado.Placa = &placa.String
	}

	return empleado, nil
}
