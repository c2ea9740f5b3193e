package mappings

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/shashavali-8524/health-care/internal/platform/apierr"
	"github.com/shashavali-8524/health-care/pkg/pagination"
)

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) RegisterRoutes(api *echo.Group) {
	api.GET("/mappings", h.ListMappings)
	api.POST("/mappings", h.CreateMapping)
	api.GET("/mappings/patient/:patient_id", h.ListByPatient)
	api.DELETE("/mappings/:id", h.DeleteMapping)
}

type mappingRequest struct {
	PatientID string `json:"patient_id" validate:"required,uuid"`
	DoctorID  string `json:"doctor_id" validate:"required,uuid"`
}

func (h *Handler) CreateMapping(c echo.Context) error {
	var req mappingRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Malformed request body.")
	}
	if err := apierr.Validate(&req); err != nil {
		return err
	}

	patientID, _ := uuid.Parse(req.PatientID)
	doctorID, _ := uuid.Parse(req.DoctorID)

	m, err := h.svc.CreateMapping(c.Request().Context(), patientID, doctorID)
	if err != nil {
		switch {
		case errors.Is(err, ErrPatientNotFound):
			return apierr.FieldErrors{"patient_id": {"Patient does not exist."}}
		case errors.Is(err, ErrDoctorNotFound):
			return apierr.FieldErrors{"doctor_id": {"Doctor does not exist."}}
		case errors.Is(err, ErrDuplicate):
			return apierr.Conflict("This doctor is already assigned to this patient.")
		}
		return err
	}
	return c.JSON(http.StatusCreated, m)
}

func (h *Handler) ListMappings(c echo.Context) error {
	pg := pagination.FromContext(c)
	items, total, err := h.svc.ListMappings(c.Request().Context(), pg.Limit, pg.Offset)
	if err != nil {
		return err
	}
	if items == nil {
		items = []*MappingDetail{}
	}
	return c.JSON(http.StatusOK, pagination.NewResponse(items, total, pg.Limit, pg.Offset))
}

func (h *Handler) ListByPatient(c echo.Context) error {
	patientID, err := uuid.Parse(c.Param("patient_id"))
	if err != nil {
		// An unparseable id behaves like a patient with no mappings.
		return c.JSON(http.StatusOK, map[string]interface{}{
			"message": "No doctors assigned to this patient.",
			"data":    []*MappingDetail{},
		})
	}

	items, err := h.svc.ListByPatient(c.Request().Context(), patientID)
	if err != nil {
		return err
	}
	if len(items) == 0 {
		return c.JSON(http.StatusOK, map[string]interface{}{
			"message": "No doctors assigned to this patient.",
			"data":    []*MappingDetail{},
		})
	}
	return c.JSON(http.StatusOK, map[string]interface{}{"data": items})
}

func (h *Handler) DeleteMapping(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return apierr.NotFound("Mapping not found.")
	}

	if err := h.svc.DeleteMapping(c.Request().Context(), id); err != nil {
		if errors.Is(err, ErrNotFound) {
			return apierr.NotFound("Mapping not found.")
		}
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
