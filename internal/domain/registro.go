package domain

import "time"

// Registro representa una entrada de un empleado a la planta
type Registro struct {
	ID          int       `json:"id"`
	EmpleadoID  int       `json:"empleado_id"`
	HoraIngreso time.Time `json:"hora_ingreso"`
}

// RegistroCompleto es la proyección de un registro unido con su empleado,
// con la hora formateada como YYYY-MM-DDTHH:mm para el frontend
type RegistroCompleto struct {
	ID          int     `json:"id"`
	HoraIngreso string  `json:"hora_ingreso"`
	Nombre      string  `json:"nombre"`
	Apellido    string  `json:"apellido"`
	Placa       *string `json:"placa"`
}

// RegistroRepository define las operaciones con registros de empleados
type RegistroRepository interface {
	// Create inserta un registro de ingreso y devuelve la proyección completa
	Create(empleadoID int, horaIngreso time.Time) (*RegistroCompleto, error)
	// List devuelve todos los registros unidos con su empleado, más recientes primero
	List() ([]RegistroCompleto, error)
	// GetByID obtiene un registro por su ID; ErrNoEncontrado si no existe
	GetByID(id int) (*RegistroCompleto, error)
	// GetEmpleadoID devuelve el empleado asociado a un registro; ErrNoEncontrado si no existe
	GetEmpleadoID(registroID int) (int, error)
	// UpdateHoraIngreso actualiza la hora de ingreso de un registro
	UpdateHoraIngreso(id int, horaIngreso time.Time) error
	// Delete elimina un registro; ErrNoEncontrado si no existe
	Delete(id int) error
}
