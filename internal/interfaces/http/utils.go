package http

import (
	"errors"

	"github.com/Maxito7/recepcion_backend/internal/domain"
	"github.com/gofiber/fiber/v2"
)

// responderError traduce los errores del dominio al código HTTP que espera el
// frontend: validación → 400, no encontrado → 404, cualquier otro → 500 con el
// mensaje genérico de la operación
func responderError(c *fiber.Ctx, err error, mensajeNoEncontrado, mensajeError string) error {
	var errValidacion *domain.ErrorValidacion
	if errors.As(err, &errValidacion) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": errValidacion.Error(),
		})
	}

	if errors.Is(err, domain.ErrNoEncontrado) {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": mensajeNoEncontrado,
		})
	}

	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
		"error": mensajeError,
	})
}

// parseID convierte el parámetro de ruta :id a entero
func parseID(c *fiber.Ctx) (int, error) {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return 0, errors.New("ID inválido")
	}
	return id, nil
}
