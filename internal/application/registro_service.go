package application

import (
	"fmt"
	"strings"

	"github.com/Maxito7/recepcion_backend/internal/domain"
)

type RegistroService struct {
	registroRepo domain.RegistroRepository
	empleadoRepo domain.EmpleadoRepository
	validator    *Validator
}

// NewRegistroService crea una nueva instancia del servicio de registros
func NewRegistroService(registroRepo domain.RegistroRepository, empleadoRepo domain.EmpleadoRepository) *RegistroService {
	return &RegistroService{
		registroRepo: registroRepo,
		empleadoRepo: empleadoRepo,
		validator:    &Validator{},
	}
}

// CrearRegistro crea un registro de ingreso de empleado. Si no existe un
// empleado con ese nombre y apellido se crea automáticamente.
func (s *RegistroService) CrearRegistro(nombre, apellido string, placa *string, horaIngreso string) (*domain.RegistroCompleto, error) {
	if err := s.validarCampos(nombre, apellido, horaIngreso); err != nil {
		return nil, err
	}

	hora, err := s.validator.ValidateHoraIngreso(horaIngreso)
	if err != nil {
		return nil, domain.NuevoErrorValidacion(err.Error())
	}

	empleadoID, _, err := s.empleadoRepo.FindOrCreate(strings.TrimSpace(nombre), strings.TrimSpace(apellido), placa)
	if err != nil {
		return nil, fmt.Errorf("error al resolver empleado: %w", err)
	}

	registro, err := s.registroRepo.Create(empleadoID, hora)
	if err != nil {
		return nil, fmt.Errorf("error al crear registro: %w", err)
	}

	return registro, nil
}

// ListRegistros devuelve todos los registros, más recientes primero
func (s *RegistroService) ListRegistros() ([]domain.RegistroCompleto, error) {
	registros, err := s.registroRepo.List()
	if err != nil {
		return nil, fmt.Errorf("error al obtener registros: %w", err)
	}
	return registros, nil
}

// GetRegistro obtiene un registro por su ID
func (s *RegistroService) GetRegistro(id int) (*domain.RegistroCompleto, error) {
	return s.registroRepo.GetByID(id)
}

// ActualizarRegistro actualiza la hora de ingreso de un registro y los datos
// del empleado asociado
func (s *RegistroService) ActualizarRegistro(id int, nombre, apellido string, placa *string, horaIngreso string) (*domain.RegistroCompleto, error) {
	if err := s.validarCampos(nombre, apellido, horaIngreso); err != nil {
		return nil, err
	}

	hora, err := s.validator.ValidateHoraIngreso(horaIngreso)
	if err != nil {
		return nil, domain.NuevoErrorValidacion(err.Error())
	}

	empleadoID, err := s.registroRepo.GetEmpleadoID(id)
	if err != nil {
		return nil, err
	}

	empleado := &domain.Empleado{
		ID:       empleadoID,
		Nombre:   strings.TrimSpace(nombre),
		Apellido: strings.TrimSpace(apellido),
		Placa:    placa,
	}

	if err := s.empleadoRepo.Update(empleado); err != nil {
		return nil, fmt.Errorf("error al actualizar empleado: %w", err)
	}

	if err := s.registroRepo.UpdateHoraIngreso(id, hora); err != nil {
		return nil, fmt.Errorf("error al actualizar registro: %w", err)
	}

	return s.registroRepo.GetByID(id)
}

// EliminarRegistro elimina un registro por su ID
func (s *RegistroService) EliminarRegistro(id int) error {
	return s.registroRepo.Delete(id)
}

func (s *RegistroService) validarCampos(nombre, apellido, horaIngreso string) error {
	if s.validator.ValidateRequerido(nombre, "Nombre") != nil ||
		s.validator.ValidateRequerido(apellido, "Apellido") != nil ||
		s.validator.ValidateRequerido(horaIngreso, "Hora") != nil {
		return domain.NuevoErrorValidacion("Nombre, apellido y hora son obligatorios")
	}
	return nil
}
