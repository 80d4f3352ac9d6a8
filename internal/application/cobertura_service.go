package application

import (
	"fmt"
	"strings"

	"github.com/Maxito7/recepcion_backend/internal/domain"
)

type CoberturaService struct {
	personaRepo   domain.PersonaRepository
	coberturaRepo domain.CoberturaRepository
	validator     *Validator
}

// NewCoberturaService crea una nueva instancia del servicio de coberturas
func NewCoberturaService(personaRepo domain.PersonaRepository, coberturaRepo domain.CoberturaRepository) *CoberturaService {
	return &CoberturaService{
		personaRepo:   personaRepo,
		coberturaRepo: coberturaRepo,
		validator:     &Validator{},
	}
}

// RegistrarARL registra la cobertura ARL mensual de una persona. Si la persona
// no existe todavía se crea con datos TEMPORAL. La fecha se normaliza al
// primer día de su mes; reenviar el mismo mes sobreescribe la entidad.
func (s *CoberturaService) RegistrarARL(cedula, mesVigencia, entidad string) error {
	if errores := s.validator.ValidateCedula(cedula); len(errores) > 0 {
		return &domain.ErrorValidacion{Errores: errores}
	}

	fecha, err := s.validator.ValidateFechaISO(mesVigencia, "mes_vigencia")
	if err != nil {
		return domain.NuevoErrorValidacion(err.Error())
	}

	if strings.TrimSpace(entidad) == "" {
		return domain.NuevoErrorValidacion("Entidad ARL requerida")
	}

	personaID, _, err := s.personaRepo.FindOrCreateTemporal(cedula)
	if err != nil {
		return fmt.Errorf("error al resolver persona: %w", err)
	}

	primerDia := PrimerDiaDelMes(fecha)

	if err := s.coberturaRepo.UpsertARL(personaID, primerDia, strings.TrimSpace(entidad)); err != nil {
		return fmt.Errorf("error al registrar ARL: %w", err)
	}

	return nil
}

// RegistrarEPS registra una ventana de cobertura EPS de una persona. Si la
// persona no existe todavía se crea con datos TEMPORAL. Cada envío agrega una
// ventana nueva; la vigencia la decide la de vencimiento más lejano.
func (s *CoberturaService) RegistrarEPS(cedula, fechaVencimiento, entidad string) error {
	if errores := s.validator.ValidateCedula(cedula); len(errores) > 0 {
		return &domain.ErrorValidacion{Errores: errores}
	}

	fecha, err := s.validator.ValidateFechaISO(fechaVencimiento, "fecha_vencimiento")
	if err != nil {
		return domain.NuevoErrorValidacion(err.Error())
	}

	if strings.TrimSpace(entidad) == "" {
		return domain.NuevoErrorValidacion("Entidad EPS requerida")
	}

	personaID, _, err := s.personaRepo.FindOrCreateTemporal(cedula)
	if err != nil {
		return fmt.Errorf("error al resolver persona: %w", err)
	}

	if err := s.coberturaRepo.InsertEPS(personaID, fecha, strings.TrimSpace(entidad)); err != nil {
		return fmt.Errorf("error al registrar EPS: %w", err)
	}

	return nil
}
