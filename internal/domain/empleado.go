package domain

// Empleado representa a un empleado de la planta
type Empleado struct {
	ID       int     `json:"id"`
	Nombre   string  `json:"nombre"`
	Apellido string  `json:"apellido"`
	Placa    *string `json:"placa"` // Puntero para permitir NULL
}

// EmpleadoRepository define las operaciones con empleados
type EmpleadoRepository interface {
	// Create crea un nuevo empleado y asigna su ID
	Create(empleado *Empleado) error
	// List devuelve todos los empleados ordenados por apellido y nombre
	List() ([]Empleado, error)
	// GetByID obtiene un empleado por su ID; ErrNoEncontrado si no existe
	GetByID(id int) (*Empleado, error)
	// Update sobreescribe los datos de un empleado; ErrNoEncontrado si no existe
	Update(empleado *Empleado) error
	// Delete elimina un empleado; ErrNoEncontrado si no existe
	Delete(id int) error
	// FindOrCreate busca un empleado por nombre y apellido exactos y, si no
	// existe, lo crea. Devuelve el id y si la fila fue creada o reutilizada.
	FindOrCreate(nombre, apellido string, placa *string) (id int, creado bool, err error)
}
