package http

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/inventario-cli/internal/application/dto"
	"github.com/jhoicas/inventario-cli/internal/domain"
	"github.com/jhoicas/inventario-cli/internal/infrastructure/memory"
)

// UserHandler maneja el listado y borrado de usuarios (solo admin).
type UserHandler struct {
	users *memory.UserRepository
}

// NewUserHandler construye el handler.
func NewUserHandler(users *memory.UserRepository) *UserHandler {
	return &UserHandler{users: users}
}

// List devuelve todos los usuarios.
func (h *UserHandler) List(c *fiber.Ctx) error {
	return c.JSON(h.users.List())
}

// Delete elimina un usuario por id.
func (h *UserHandler) Delete(c *fiber.Ctx) error {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_ID", Message: "id inválido"})
	}
	if err := h.users.Delete(id); err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "Usuario no encontrado"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.SendStatus(fiber.StatusNoContent)
}
