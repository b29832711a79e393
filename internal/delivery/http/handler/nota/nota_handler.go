package nota

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	notauc "github.com/ramaprastaruna/CV-Raga-Jaya-Amerta/internal/usecase/nota"
)

type Handler struct {
	uc  *notauc.Usecase
	log zerolog.Logger
}

func New(uc *notauc.Usecase, log zerolog.Logger) *Handler {
	return &Handler{uc: uc, log: log}
}

func (h *Handler) Create(c *fiber.Ctx) error {
	var in notauc.SaveInput
	if err := c.BodyParser(&in); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid json")
	}

	out, err := h.uc.Create(c.Context(), in)
	return h.writeOne(c, out, err, fiber.StatusCreated)
}

func (h *Handler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.Context(),
		c.Query("status"),
		c.Query("period"),
		c.Query("search"),
		c.QueryInt("limit", 50),
		c.QueryInt("offset", 0),
	)
	if err != nil {
		return h.mapErr(err)
	}
	return c.JSON(fiber.Map{"items": out})
}

func (h *Handler) Get(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Context(), c.Params("id"))
	return h.writeOne(c, out, err, fiber.StatusOK)
}

func (h *Handler) Edit(c *fiber.Ctx) error {
	var in notauc.SaveInput
	if err := c.BodyParser(&in); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid json")
	}

	out, err := h.uc.Edit(c.Context(), c.Params("id"), in)
	return h.writeOne(c, out, err, fiber.StatusOK)
}

func (h *Handler) Finalize(c *fiber.Ctx) error {
	out, err := h.uc.Finalize(c.Context(), c.Params("id"))
	return h.writeOne(c, out, err, fiber.StatusOK)
}

func (h *Handler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Context(), c.Params("id")); err != nil {
		return h.mapErr(err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func (h *Handler) writeOne(c *fiber.Ctx, out *notauc.Nota, err error, okStatus int) error {
	if err != nil {
		return h.mapErr(err)
	}
	return c.Status(okStatus).JSON(out)
}

func (h *Handler) mapErr(err error) error {
	var qtyErr *notauc.InvalidQuantityError
	if errors.As(err, &qtyErr) {
		return fiber.NewError(fiber.StatusBadRequest, qtyErr.Error())
	}

	switch {
	case errors.Is(err, notauc.ErrMissingCustomer),
		errors.Is(err, notauc.ErrEmptyCart),
		errors.Is(err, notauc.ErrInvalidQuantity),
		errors.Is(err, notauc.ErrDuplicateProduct),
		errors.Is(err, notauc.ErrUnsupportedUnit):
		return fiber.NewError(fiber.StatusBadRequest, err.Error())

	case errors.Is(err, notauc.ErrProductMissing),
		errors.Is(err, notauc.ErrSalesMissing):
		return fiber.NewError(fiber.StatusUnprocessableEntity, err.Error())

	case errors.Is(err, notauc.ErrNotFound):
		return fiber.NewError(fiber.StatusNotFound, err.Error())

	case errors.Is(err, notauc.ErrNotEditable),
		errors.Is(err, notauc.ErrAlreadyCompleted),
		errors.Is(err, notauc.ErrDuplicateNotaNumber),
		errors.Is(err, notauc.ErrReferentialConflict):
		return fiber.NewError(fiber.StatusConflict, err.Error())

	default:
		h.log.Error().Err(err).Msg("nota handler: internal error")
		return fiber.NewError(fiber.StatusInternalServerError, "internal error")
	}
}
