package domain

// SentinelTemporal es el valor usado para personas creadas como marcador
// desde el registro de ARL/EPS, antes de conocer sus datos reales.
const SentinelTemporal = "TEMPORAL"

// Persona representa a un visitante de la planta, identificado por su cédula
type Persona struct {
	ID       int    `json:"id"`
	Cedula   string `json:"cedula"`
	Nombre   string `json:"nombre"`
	Apellido string `json:"apellido"`
	Empresa  string `json:"empresa"`
}

// PersonaRepository define las operaciones con personas
type PersonaRepository interface {
	// FindByCedula busca una persona por su cédula; devuelve (nil, nil) si no existe
	FindByCedula(cedula string) (*Persona, error)
	// FindOrCreateTemporal busca una persona por cédula y, si no existe, la crea
	// con datos TEMPORAL. Devuelve el id y si la fila fue creada o reutilizada.
	FindOrCreateTemporal(cedula string) (id int, creada bool, err error)
}
