package http

import (
	"github.com/Maxito7/recepcion_backend/internal/application"
	"github.com/Maxito7/recepcion_backend/internal/domain"
	"github.com/gofiber/fiber/v2"
)

type EmpleadoHandler struct {
	service *application.EmpleadoService
}

// NewEmpleadoHandler crea una nueva instancia del handler de empleados
func NewEmpleadoHandler(service *application.EmpleadoService) *EmpleadoHandler {
	return &EmpleadoHandler{
		service: service,
	}
}

// EmpleadoRequest representa la petición para crear o actualizar un empleado
type EmpleadoRequest struct {
	Nombre   string  `json:"nombre"`
	Apellido string  `json:"apellido"`
	Placa    *string `json:"placa,omitempty"`
}

// CrearEmpleado crea un nuevo empleado
func (h *EmpleadoHandler) CrearEmpleado(c *fiber.Ctx) error {
	var req EmpleadoRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Formato de solicitud inválido",
		})
	}

	empleado, err := h.service.CrearEmpleado(req.Nombre, req.Apellido, req.Placa)
	if err != nil {
		return responderError(c, err, "Empleado no encontrado", "Error al crear empleado")
	}

	return c.Status(fiber.StatusCreated).JSON(empleado)
}

// ListEmpleados devuelve todos los empleados
func (h *EmpleadoHandler) ListEmpleados(c *fiber.Ctx) error {
	empleados, err := h.service.ListEmpleados()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Error al obtener empleados",
		})
	}

	if empleados == nil {
		empleados = []domain.Empleado{}
	}

	return c.JSON(empleados)
}

// GetEmpleado obtiene un empleado por su ID
func (h *EmpleadoHandler) GetEmpleado(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	empleado, err := h.service.GetEmpleado(id)
	if err != nil {
		return responderError(c, err, "Empleado no encontrado", "Error al obtener empleado")
	}

	return c.JSON(empleado)
}

// ActualizarEmpleado sobreescribe los datos de un empleado
func (h *EmpleadoHandler) ActualizarEmpleado(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	var req EmpleadoRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Formato de solicitud inválido",
		})
	}

	empleado, err := h.service.ActualizarEmpleado(id, req.Nombre, req.Apellido, req.Placa)
	if err != nil {
		return responderError(c, err, "Empleado no encontrado", "Error al actualizar empleado")
	}

	return c.JSON(empleado)
}

// EliminarEmpleado elimina un empleado por su ID
func (h *EmpleadoHandler) EliminarEmpleado(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	if err := h.service.EliminarEmpleado(id); err != nil {
		return responderError(c, err, "Empleado no encontrado", "Error al eliminar empleado")
	}

	return c.JSON(fiber.Map{"message": "Empleado eliminado exitosamente"})
}
