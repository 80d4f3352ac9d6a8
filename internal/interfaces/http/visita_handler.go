package http

import (
	"errors"

	"github.com/Maxito7/recepcion_backend/internal/application"
	"github.com/Maxito7/recepcion_backend/internal/domain"
	"github.com/gofiber/fiber/v2"
)

type VisitaHandler struct {
	visitaService    *application.VisitaService
	coberturaService *application.CoberturaService
	personaService   *application.PersonaService
}

// NewVisitaHandler crea una nueva instancia del handler de visitas
func NewVisitaHandler(
	visitaService *application.VisitaService,
	coberturaService *application.CoberturaService,
	personaService *application.PersonaService,
) *VisitaHandler {
	return &VisitaHandler{
		visitaService:    visitaService,
		coberturaService: coberturaService,
		personaService:   personaService,
	}
}

// VisitaRequest representa la petición para registrar una visita
type VisitaRequest struct {
	Cedula           string `json:"cedula"`
	Nombre           string `json:"nombre"`
	Apellido         string `json:"apellido"`
	Empresa          string `json:"empresa"`
	Area             string `json:"area"`
	ElementosIngresa string `json:"elementos_ingresa"`
	AutorizaIngreso  string `json:"autoriza_ingreso"`
	Placa            string `json:"placa"`
}

// ARLRequest representa la petición para registrar cobertura ARL
type ARLRequest struct {
	Cedula      string `json:"cedula"`
	MesVigencia string `json:"mes_vigencia"`
	EntidadARL  string `json:"entidad_arl"`
}

// EPSRequest representa la petición para registrar cobertura EPS
type EPSRequest struct {
	Cedula           string `json:"cedula"`
	FechaVencimiento string `json:"fecha_vencimiento"`
	EntidadEPS       string `json:"entidad_eps"`
}

// RegistrarVisita registra una visita completa: upsert de persona, validación
// de cobertura ARL/EPS y alta de la visita, todo en una transacción
func (h *VisitaHandler) RegistrarVisita(c *fiber.Ctx) error {
	var req VisitaRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Formato de solicitud inválido",
		})
	}

	visita, err := h.visitaService.RegistrarVisita(domain.SolicitudVisita{
		Cedula:           req.Cedula,
		Nombre:           req.Nombre,
		Apellido:         req.Apellido,
		Empresa:          req.Empresa,
		Area:             req.Area,
		ElementosIngresa: req.ElementosIngresa,
		AutorizaIngreso:  req.AutorizaIngreso,
		Placa:            req.Placa,
	})

	if err != nil {
		var errValidacion *domain.ErrorValidacion
		if errors.As(err, &errValidacion) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"errors": errValidacion.Errores,
			})
		}

		var errCobertura *domain.ErrorCobertura
		if errors.As(err, &errCobertura) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error":  errCobertura.Mensaje,
				"codigo": errCobertura.Codigo,
			})
		}

		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error":   "Error en el registro",
			"detalle": err.Error(),
		})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"data":    visita,
	})
}

// ListVisitas devuelve todas las visitas con los datos de la persona
func (h *VisitaHandler) ListVisitas(c *fiber.Ctx) error {
	visitas, err := h.visitaService.ListVisitas()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Error al obtener visitas",
		})
	}

	if visitas == nil {
		visitas = []domain.VisitaCompleta{}
	}

	return c.JSON(fiber.Map{"data": visitas})
}

// BuscarPersona busca una persona por cédula. La ausencia no es un 404: el
// frontend recibe found=false para decidir si precarga el formulario o no.
func (h *VisitaHandler) BuscarPersona(c *fiber.Ctx) error {
	cedula := c.Query("cedula")

	persona, err := h.personaService.BuscarPorCedula(cedula)
	if err != nil {
		var errValidacion *domain.ErrorValidacion
		if errors.As(err, &errValidacion) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": errValidacion.Error(),
			})
		}

		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Error al buscar persona",
		})
	}

	if persona == nil {
		return c.JSON(fiber.Map{
			"success": true,
			"found":   false,
		})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"found":   true,
		"data":    persona,
	})
}

// RegistrarARL registra la cobertura ARL mensual de una persona
func (h *VisitaHandler) RegistrarARL(c *fiber.Ctx) error {
	var req ARLRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Formato de solicitud inválido",
		})
	}

	if err := h.coberturaService.RegistrarARL(req.Cedula, req.MesVigencia, req.EntidadARL); err != nil {
		return h.responderErrorCobertura(c, err, "Error al registrar ARL")
	}

	return c.JSON(fiber.Map{"success": true})
}

// RegistrarEPS registra una ventana de cobertura EPS de una persona
func (h *VisitaHandler) RegistrarEPS(c *fiber.Ctx) error {
	var req EPSRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Formato de solicitud inválido",
		})
	}

	if err := h.coberturaService.RegistrarEPS(req.Cedula, req.FechaVencimiento, req.EntidadEPS); err != nil {
		return h.responderErrorCobertura(c, err, "Error al registrar EPS")
	}

	return c.JSON(fiber.Map{"success": true})
}

func (h *VisitaHandler) responderErrorCobertura(c *fiber.Ctx, err error, mensaje string) error {
	var errValidacion *domain.ErrorValidacion
	if errors.As(err, &errValidacion) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"errors": errValidacion.Errores,
		})
	}

	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
		"error":   mensaje,
		"detalle": err.Error(),
	})
}
