package application

import (
	"fmt"

	"github.com/Maxito7/recepcion_backend/internal/domain"
)

type PersonaService struct {
	personaRepo domain.PersonaRepository
}

// NewPersonaService crea una nueva instancia del servicio de personas
func NewPersonaService(personaRepo domain.PersonaRepository) *PersonaService {
	return &PersonaService{
		personaRepo: personaRepo,
	}
}

// BuscarPorCedula busca una persona por su cédula. Devuelve (nil, nil) si no
// existe: la ausencia no es un error en este flujo, el frontend recibe
// found=false en lugar de un 404.
func (s *PersonaService) BuscarPorCedula(cedula string) (*domain.Persona, error) {
	if cedula == "" {
		return nil, domain.NuevoErrorValidacion("El parámetro cedula es requerido")
	}

	persona, err := s.personaRepo.FindByCedula(cedula)
	if err != nil {
		return nil, fmt.Errorf("error al buscar persona: %w", err)
	}

	return persona, nil
}
