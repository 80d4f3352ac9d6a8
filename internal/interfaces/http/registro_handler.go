package http

import (
	"github.com/Maxito7/recepcion_backend/internal/application"
	"github.com/Maxito7/recepcion_backend/internal/domain"
	"github.com/gofiber/fiber/v2"
)

type RegistroHandler struct {
	service *application.RegistroService
}

// NewRegistroHandler crea una nueva instancia del handler de registros
func NewRegistroHandler(service *application.RegistroService) *RegistroHandler {
	return &RegistroHandler{
		service: service,
	}
}

// RegistroRequest representa la petición para crear o actualizar un registro
// de ingreso de empleado
type RegistroRequest struct {
	Nombre      string  `json:"nombre"`
	Apellido    string  `json:"apellido"`
	Placa       *string `json:"placa,omitempty"`
	HoraIngreso string  `json:"hora_ingreso"`
}

// CrearRegistro crea un registro de ingreso, creando el empleado si no existe
func (h *RegistroHandler) CrearRegistro(c *fiber.Ctx) error {
	var req RegistroRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Formato de solicitud inválido",
		})
	}

	registro, err := h.service.CrearRegistro(req.Nombre, req.Apellido, req.Placa, req.HoraIngreso)
	if err != nil {
		return responderError(c, err, "Registro no encontrado", "Error al crear registro")
	}

	return c.Status(fiber.StatusCreated).JSON(registro)
}

// ListRegistros devuelve todos los registros, más recientes primero
func (h *RegistroHandler) ListRegistros(c *fiber.Ctx) error {
	registros, err := h.service.ListRegistros()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Error al obtener registros",
		})
	}

	if registros == nil {
		registros = []domain.RegistroCompleto{}
	}

	return c.JSON(registros)
}

// GetRegistro obtiene un registro por su ID
func (h *RegistroHandler) GetRegistro(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	registro, err := h.service.GetRegistro(id)
	if err != nil {
		return responderError(c, err, "Registro no encontrado", "Error al obtener registro")
	}

	return c.JSON(registro)
}

// ActualizarRegistro actualiza un registro y los datos de su empleado
func (h *RegistroHandler) ActualizarRegistro(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	var req RegistroRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Formato de solicitud inválido",
		})
	}

	registro, err := h.service.ActualizarRegistro(id, req.Nombre, req.Apellido, req.Placa, req.HoraIngreso)
	if err != nil {
		return responderError(c, err, "Registro no encontrado", "Error al actualizar registro")
	}

	return c.JSON(registro)
}

// EliminarRegistro elimina un registro por su ID
func (h *RegistroHandler) EliminarRegistro(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	if err := h.service.EliminarRegistro(id); err != nil {
		return responderError(c, err, "Registro no encontrado", "Error al eliminar registro")
	}

	return c.JSON(fiber.Map{"message": "Registro eliminado exitosamente"})
}
