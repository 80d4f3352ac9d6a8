package application

import (
	"fmt"
	"strings"

	"github.com/Maxito7/recepcion_backend/internal/domain"
)

type EmpleadoService struct {
	empleadoRepo domain.EmpleadoRepository
	validator    *Validator
}

// NewEmpleadoService crea una nueva instancia del servicio de empleados
func NewEmpleadoService(empleadoRepo domain.EmpleadoRepository) *EmpleadoService {
	return &EmpleadoService{
		empleadoRepo: empleadoRepo,
		validator:    &Validator{},
	}
}

// CrearEmpleado valida y crea un nuevo empleado
func (s *EmpleadoService) CrearEmpleado(nombre, apellido string, placa *string) (*domain.Empleado, error) {
	if err := s.validarNombreApellido(nombre, apellido); err != nil {
		return nil, err
	}

	empleado := &domain.Empleado{
		Nombre:   strings.TrimSpace(nombre),
		Apellido: strings.TrimSpace(apellido),
		Placa:    placa,
	}

	if err := s.empleadoRepo.Create(empleado); err != nil {
		return nil, fmt.Errorf("error al crear empleado: %w", err)
	}

	return empleado, nil
}

// ListEmpleados devuelve todos los empleados ordenados por apellido y nombre
func (s *EmpleadoService) ListEmpleados() ([]domain.Empleado, error) {
	empleados, err := s.empleadoRepo.List()
	if err != nil {
		return nil, fmt.Errorf("error al obtener empleados: %w", err)
	}
	return empleados, nil
}

// GetEmpleado obtiene un empleado por su ID
func (s *EmpleadoService) GetEmpleado(id int) (*domain.Empleado, error) {
	return s.empleadoRepo.GetByID(id)
}

// ActualizarEmpleado valida y sobreescribe los datos de un empleado
func (s *EmpleadoService) ActualizarEmpleado(id int, nombre, apellido string, placa *string) (*domain.Empleado, error) {
	if err := s.validarNombreApellido(nombre, apellido); err != nil {
		return nil, err
	}

	empleado := &domain.Empleado{
		ID:       id,
		Nombre:   strings.TrimSpace(nombre),
		Apellido: strings.TrimSpace(apellido),
		Placa:    placa,
	}

	if err := s.empleadoRepo.Update(empleado); err != nil {
		return nil, err
	}

	return s.empleadoRepo.GetByID(id)
}

// EliminarEmpleado elimina un empleado por su ID
func (s *EmpleadoService) EliminarEmpleado(id int) error {
	return s.empleadoRepo.Delete(id)
}

func (s *EmpleadoService) validarNombreApellido(nombre, apellido string) error {
	if s.validator.ValidateRequerido(nombre, "Nombre") != nil || s.validator.ValidateRequerido(apellido, "Apellido") != nil {
		return domain.NuevoErrorValidacion("Nombre y apellido son obligatorios")
	}
	return nil
}
