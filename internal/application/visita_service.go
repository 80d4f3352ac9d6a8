package application

import (
	"fmt"
	"strings"

	"github.com/Maxito7/recepcion_backend/internal/domain"
)

type VisitaService struct {
	visitaRepo domain.VisitaRepository
	reloj      Reloj
	validator  *Validator
}

// NewVisitaService crea una nueva instancia del servicio de visitas
func NewVisitaService(visitaRepo domain.VisitaRepository, reloj Reloj) *VisitaService {
	return &VisitaService{
		visitaRepo: visitaRepo,
		reloj:      reloj,
		validator:  &Validator{},
	}
}

// RegistrarVisita valida la solicitud y ejecuta el registro completo de la
// visita. La validación de campos ocurre antes de tocar la base de datos; las
// validaciones de cobertura ARL/EPS corren dentro de la transacción del
// repositorio y revierten todo si la persona no tiene cobertura vigente.
func (s *VisitaService) RegistrarVisita(solicitud domain.SolicitudVisita) (*domain.VisitaCompleta, error) {
	if errores := s.validator.ValidarVisita(&solicitud); len(errores) > 0 {
		return nil, &domain.ErrorValidacion{Errores: errores}
	}

	solicitud.Nombre = strings.TrimSpace(solicitud.Nombre)
	solicitud.Apellido = strings.TrimSpace(solicitud.Apellido)
	solicitud.Empresa = strings.TrimSpace(solicitud.Empresa)
	solicitud.Area = strings.TrimSpace(solicitud.Area)
	solicitud.ElementosIngresa = strings.TrimSpace(solicitud.ElementosIngresa)
	solicitud.AutorizaIngreso = strings.TrimSpace(solicitud.AutorizaIngreso)
	solicitud.Placa = strings.TrimSpace(solicitud.Placa)

	ventana := VentanaMesActual(s.reloj)

	visita, err := s.visitaRepo.RegistrarVisita(solicitud, ventana)
	if err != nil {
		return nil, err
	}

	return visita, nil
}

// ListVisitas devuelve todas las visitas con los datos de la persona
func (s *VisitaService) ListVisitas() ([]domain.VisitaCompleta, error) {
	visitas, err := s.visitaRepo.List()
	if err != nil {
		return nil, fmt.Errorf("error al obtener visitas: %w", err)
	}
	return visitas, nil
}
