package doctors

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

// RegisterRoutes mounts the doctor endpoints. There is no update or delete;
// doctors are append-only.
func (h *Handler) RegisterRoutes(api *echo.Group) {
	api.GET("/doctors", h.ListDoctors)
	api.POST("/doctors", h.CreateDoctor)
	api.GET("/doctors/:id", h.GetDoctor)
}

type doctorRequest struct {
	Name            string  `json:"name" validate:"required,max=200"`
	Specialization  string  `json:"specialization" validate:"required,max=200"`
	Phone           *string `json:"phone" validate:"omitempty,max=15"`
	Email           *string `json:"email" validate:"omitempty,email"`
	ExperienceYears *int    `json:"experience_years" validate:"required,gte=0"`
}

func (h *Handler) CreateDoctor(c echo.Context) error {
	var req doctorRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Malformed request body.")
	}
	if err := apierr.Validate(&req); err != nil {
		return err
	}

	ctx := c.Request().Context()
	d := &Doctor{
		Name:            req.Name,
		Specialization:  req.Specialization,
		Phone:           req.Phone,
		Email:           req.Email,
		ExperienceYears: *req.ExperienceYears,
	}
	if err := h.svc.CreateDoctor(ctx, auth.UserIDFromContext(ctx), d); err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, d)
}

func (h *Handler) ListDoctors(c echo.Context) error {
	pg := pagination.FromContext(c)
	items, total, err := h.svc.ListDoctors(c.Request().Context(), pg.Limit, pg.Offset)
	if err != nil {
		return err
	}
	if items == nil {
		items = []*Doctor{}
	}
	return c.JSON(http.StatusOK, pagination.NewResponse(items, total, pg.Limit, pg.Offset))
}

func (h *Handler) GetDoctor(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return apierr.NotFound("Doctor not found.")
	}

	d, err := h.svc.GetDoctor(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return apierr.NotFound("Doctor not found.")
		}
		return err
	}
	return c.JSON(http.StatusOK, d)
}
