package patients

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/shashavali-8524/health-care/internal/platform/apierr"
	"github.com/shashavali-8524/health-care/internal/platform/auth"
	"github.com/shashavali-8524/health-care/pkg/pagination"
)

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) RegisterRoutes(api *echo.Group) {
	api.GET("/patients", h.ListPatients)
	api.POST("/patients", h.CreatePatient)
	api.GET("/patients/:id", h.GetPatient)
	api.PUT("/patients/:id", h.UpdatePatient)
	api.DELETE("/patients/:id", h.DeletePatient)
}

// patientRequest is the payload for both create and update (full replace).
// It carries no created_by field; ownership comes from the token.
type patientRequest struct {
	Name           string  `json:"name" validate:"required,max=200"`
	Age            *int    `json:"age" validate:"required,gte=0"`
	Gender         string  `json:"gender" validate:"required,oneof=Male Female Other"`
	Phone          *string `json:"phone" validate:"omitempty,max=15"`
	Address        *string `json:"address"`
	MedicalHistory *string `json:"medical_history"`
}

func (req *patientRequest) toModel() *Patient {
	return &Patient{
		Name:           req.Name,
		Age:            *req.Age,
		Gender:         req.Gender,
		Phone:          req.Phone,
		Address:        req.Address,
		MedicalHistory: req.MedicalHistory,
	}
}

func (h *Handler) CreatePatient(c echo.Context) error {
	var req patientRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Malformed request body.")
	}
	if err := apierr.Validate(&req); err != nil {
		return err
	}

	ctx := c.Request().Context()
	p := req.toModel()
	if err := h.svc.CreatePatient(ctx, auth.UserIDFromContext(ctx), p); err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, p)
}

func (h *Handler) ListPatients(c echo.Context) error {
	ctx := c.Request().Context()
	pg := pagination.FromContext(c)

	items, total, err := h.svc.ListPatients(ctx, auth.UserIDFromContext(ctx), pg.Limit, pg.Offset)
	if err != nil {
		return err
	}
	if items == nil {
		items = []*Patient{}
	}
	return c.JSON(http.StatusOK, pagination.NewResponse(items, total, pg.Limit, pg.Offset))
}

func (h *Handler) GetPatient(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return apierr.NotFound("Patient not found.")
	}

	ctx := c.Request().Context()
	p, err := h.svc.GetPatient(ctx, id, auth.UserIDFromContext(ctx))
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return apierr.NotFound("Patient not found.")
		}
		return err
	}
	return c.JSON(http.StatusOK, p)
}

func (h *Handler) UpdatePatient(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return apierr.NotFound("Patient not found.")
	}

	var req patientRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Malformed request body.")
	}
	if err := apierr.Validate(&req); err != nil {
		return err
	}

	ctx := c.Request().Context()
	p, err := h.svc.UpdatePatient(ctx, id, auth.UserIDFromContext(ctx), req.toModel())
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return apierr.NotFound("Patient not found.")
		}
		return err
	}
	return c.JSON(http.StatusOK, p)
}

func (h *Handler) DeletePatient(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return apierr.NotFound("Patient not found.")
	}

	ctx := c.Request().Context()
	if err := h.svc.DeletePatient(ctx, id, auth.UserIDFromContext(ctx)); err != nil {
		if errors.Is(err, ErrNotFound) {
			return apierr.NotFound("Patient not found.")
		}
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
