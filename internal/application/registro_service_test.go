package application

import (
	"testing"
	"time"

	"github.com/Maxito7/recepcion_backend/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type empleadoRepoFake struct {
	empleados map[int]*domain.Empleado
	nextID    int
	creados   int
}

func newEmpleadoRepoFake() *empleadoRepoFake {
	return &empleadoRepoFake{empleados: map[int]*domain.Empleado{}, nextID: 1}
}

func (f *empleadoRepoFake) Create(empleado *domain.Empleado) error {
	empleado.ID = f.nextID
	f.empleados[empleado.ID] = empleado
	f.nextID++
	f.creados++
	return nil
}

func (f *empleadoRepoFake) List() ([]domain.Empleado, error) {
	var lista []domain.Empleado
	for _, e := range f.empleados {
		lista = append(lista, *e)
	}
	return lista, nil
}

func (f *empleadoRepoFake) GetByID(id int) (*domain.Empleado, error) {
	e, ok := f.empleados[id]
	if !ok {
		return nil, domain.ErrNoEncontrado
	}
	return e, nil
}

func (f *empleadoRepoFake) Update(empleado *domain.Empleado) error {
	if _, ok := f.empleados[empleado.ID]; !ok {
		return domain.ErrNoEncontrado
	}
	f.empleados[empleado.ID] = empleado
	return nil
}

func (f *empleadoRepoFake) Delete(id int) error {
	if _, ok := f.empleados[id]; !ok {
		return domain.ErrNoEncontrado
	}
	delete(f.empleados, id)
	return nil
}

func (f *empleadoRepoFake) FindOrCreate(nombre, apellido string, placa *string) (int, bool, error) {
	for _, e := range f.empleados {
		if e.Nombre == nombre && e.Apellido == apellido {
			return e.ID, false, nil
		}
	}

	empleado := &domain.Empleado{Nombre: nombre, Apellido: apellido, Placa: placa}
	if err := f.Create(empleado); err != nil {
		return 0, false, err
	}
	return empleado.ID, true, nil
}

type registroRepoFake struct {
	registros map[int]*domain.Registro
	nextID    int
}

func newRegistroRepoFake() *registroRepoFake {
	return &registroRepoFake{registros: map[int]*domain.Registro{}, nextID: 1}
}

func (f *registroRepoFake) Create(empleadoID int, horaIngreso time.Time) (*domain.RegistroCompleto, error) {
	registro := &domain.Registro{ID: f.nextID, EmpleadoID: empleadoID, HoraIngreso: horaIngreso}
	f.registros[registro.ID] = registro
	f.nextID++
	return f.GetByID(registro.ID)
}

func (f *registroRepoFake) List() ([]domain.RegistroCompleto, error) {
	var lista []domain.RegistroCompleto
	for id := range f.registros {
		r, _ := f.GetByID(id)
		lista = append(lista, *r)
	}
	return lista, nil
}

func (f *registroRepoFake) GetByID(id int) (*domain.RegistroCompleto, error) {
	r, ok := f.registros[id]
	if !ok {
		return nil, domain.ErrNoEncontrado
	}
	return &domain.RegistroCompleto{
		ID:          r.ID,
		HoraIngreso: r.HoraIngreso.Format("2006-01-02T15:04"),
	}, nil
}

func (f *registroRepoFake) GetEmpleadoID(registroID int) (int, error) {
	r, ok := f.registros[registroID]
	if !ok {
		return 0, domain.ErrNoEncontrado
	}
	return r.EmpleadoID, nil
}

func (f *registroRepoFake) UpdateHoraIngreso(id int, horaIngreso time.Time) error {
	r, ok := f.registros[id]
	if !ok {
		return domain.ErrNoEncontrado
	}
	r.HoraIngreso = horaIngreso
	return nil
}

func (f *registroRepoFake) Delete(id int) error {
	if _, ok := f.registros[id]; !ok {
		return domain.ErrNoEncontrado
	}
	delete(f.registros, id)
	return nil
}

func TestRegistroService_CrearRegistro_CreaEmpleadoNuevo(t *testing.T) {
	empleados := newEmpleadoRepoFake()
	registros := newRegistroRepoFake()
	service := NewRegistroService(registros, empleados)

	registro, err := service.CrearRegistro("Pedro", "López", nil, "2024-03-15T08:30")

	require.NoError(t, err)
	assert.Equal(t, "2024-03-15T08:30", registro.HoraIngreso)
	assert.Equal(t, 1, empleados.creados)
}

func TestRegistroService_CrearRegistro_ReutilizaEmpleado(t *testing.T) {
	empleados := newEmpleadoRepoFake()
	registros := newRegistroRepoFake()
	service := NewRegistroService(registros, empleados)

	_, err := service.CrearRegistro("Pedro", "López", nil, "2024-03-15T08:30")
	require.NoError(t, err)

	_, err = service.CrearRegistro("Pedro", "López", nil, "2024-03-16T08:30")
	require.NoError(t, err)

	// Mismo nombre y apellido: un solo empleado, dos registros
	assert.Equal(t, 1, empleados.creados)
	assert.Len(t, registros.registros, 2)
}

func TestRegistroService_CrearRegistro_Validacion(t *testing.T) {
	service := NewRegistroService(newRegistroRepoFake(), newEmpleadoRepoFake())

	tests := []struct {
		name     string
		nombre   string
		apellido string
		hora     string
	}{
		{name: "sin nombre", nombre: "", apellido: "López", hora: "2024-03-15T08:30"},
		{name: "sin apellido", nombre: "Pedro", apellido: " ", hora: "2024-03-15T08:30"},
		{name: "sin hora", nombre: "Pedro", apellido: "López", hora: ""},
		{name: "hora malformada", nombre: "Pedro", apellido: "López", hora: "ayer"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := service.CrearRegistro(tt.nombre, tt.apellido, nil, tt.hora)

			var errValidacion *domain.ErrorValidacion
			assert.ErrorAs(t, err, &errValidacion)
		})
	}
}

func TestRegistroService_ActualizarRegistro_NoEncontrado(t *testing.T) {
	service := NewRegistroService(newRegistroRepoFake(), newEmpleadoRepoFake())

	_, err := service.ActualizarRegistro(99, "Pedro", "López", nil, "2024-03-15T08:30")

	assert.ErrorIs(t, err, domain.ErrNoEncontrado)
}

func TestRegistroService_ActualizarRegistro_ActualizaEmpleadoYHora(t *testing.T) {
	empleados := newEmpleadoRepoFake()
	registros := newRegistroRepoFake()
	service := NewRegistroService(registros, empleados)

	creado, err := service.CrearRegistro("Pedro", "López", nil, "2024-03-15T08:30")
	require.NoError(t, err)

	actualizado, err := service.ActualizarRegistro(creado.ID, "Pedro Luis", "López", nil, "2024-03-15T09:45")
	require.NoError(t, err)

	assert.Equal(t, "2024-03-15T09:45", actualizado.HoraIngreso)

	empleadoID, err := registros.GetEmpleadoID(creado.ID)
	require.NoError(t, err)
	empleado, err := empleados.GetByID(empleadoID)
	require.NoError(t, err)
	assert.Equal(t, "Pedro Luis", empleado.Nombre)
}

func TestRegistroService_EliminarRegistro_NoEncontrado(t *testing.T) {
	service := NewRegistroService(newRegistroRepoFake(), newEmpleadoRepoFake())

	assert.ErrorIs(t, service.EliminarRegistro(42), domain.ErrNoEncontrado)
}
