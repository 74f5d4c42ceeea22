package http

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/catalogo-api/internal/application/auth"
	"github.com/jhoicas/catalogo-api/internal/application/dto"
	"github.com/jhoicas/catalogo-api/internal/domain"
)

// UserAccountHandler maneja las peticiones HTTP de cuentas (público).
type UserAccountHandler struct {
	uc       *auth.UserAccountUseCase
	validate *validator.Validate
}

// NewUserAccountHandler construye el handler.
func NewUserAccountHandler(uc *auth.UserAccountUseCase) *UserAccountHandler {
	return &UserAccountHandler{uc: uc, validate: validator.New()}
}

// Register godoc
// @Summary      Crear cuenta
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RegisterRequest  true  "full_name, email y password"
// @Success      201   {object}  dto.UserAccountResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/users [post]
func (h *UserAccountHandler) Register(c *fiber.Ctx) error {
	var in dto.RegisterRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := h.validate.Struct(in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	}
	out, err := h.uc.Register(in)
	if err != nil {
		if errors.Is(err, domain.ErrEmailExists) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "EMAIL_EXISTS", Message: "el email ya está registrado"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      Listar cuentas por nombre
// @Tags         users
// @Produce      json
// @Param        q  query  string  false  "Prefijo de full_name a buscar"
// @Success      200  {array}  dto.UserAccountResponse
// @Router       /api/users [get]
func (h *UserAccountHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.Query("q"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Detalle de una cuenta
// @Tags         users
// @Produce      json
// @Param        user_id  path  string  true  "ID de la cuenta"
// @Success      200  {object}  dto.UserAccountResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/users/{user_id} [get]
func (h *UserAccountHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.Get(c.Params("user_id"))
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "USER_NOT_FOUND", Message: "la cuenta no existe"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}
