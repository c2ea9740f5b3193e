package doctors

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/shashavali-8524/health-care/internal/platform/apierr"
	"github.com/shashavali-8524/health-care/internal/platform/auth"
)

func newTestServer(userID uuid.UUID, repo DoctorRepository) *echo.Echo {
	e := echo.New()
	e.HTTPErrorHandler = apierr.HTTPErrorHandler(zerolog.Nop())
	withUser := func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			ctx := auth.WithUser(c.Request().Context(), userID, "test_user")
			c.SetRequest(c.Request().WithContext(ctx))
			return next(c)
		}
	}
	NewHandler(NewService(repo)).RegisterRoutes(e.Group("/api/v1", withUser))
	return e
}

func doJSON(e *echo.Echo, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestCreateDoctorEndpoint(t *testing.T) {
	e := newTestServer(uuid.New(), &mockDoctorRepo{})

	rec := doJSON(e, http.MethodPost, "/api/v1/doctors",
		`{"name":"Dr. Sarah Johnson","specialization":"Cardiology","experience_years":12,"email":"sarah@hospital.com"}`)
	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body.String())
	}

	var d Doctor
	if err := json.Unmarshal(rec.Body.Bytes(), &d); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if d.Specialization != "Cardiology" || d.ExperienceYears != 12 {
		t.Errorf("got %q/%d", d.Specialization, d.ExperienceYears)
	}
}

func TestCreateDoctorValidation(t *testing.T) {
	e := newTestServer(uuid.New(), &mockDoctorRepo{})

	rec := doJSON(e, http.MethodPost, "/api/v1/doctors",
		`{"name":"Dr. X","specialization":"Cardiology","experience_years":-2,"email":"not-an-email"}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d", rec.Code)
	}

	var resp struct {
		Errors map[string][]string `json:"errors"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if got := resp.Errors["experience_years"]; len(got) != 1 || got[0] != "Ensure this value is greater than or equal to 0." {
		t.Errorf("errors.experience_years = %v", got)
	}
	if len(resp.Errors["email"]) == 0 {
		t.Errorf("expected email error, got %v", resp.Errors)
	}
}

func TestCreateDoctorMissingExperience(t *testing.T) {
	e := newTestServer(uuid.New(), &mockDoctorRepo{})

	rec := doJSON(e, http.MethodPost, "/api/v1/doctors",
		`{"name":"Dr. X","specialization":"Cardiology"}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d", rec.Code)
	}
	var resp struct {
		Errors map[string][]string `json:"errors"`
	}
	json.Unmarshal(rec.Body.Bytes(), &resp)
	if got := resp.Errors["experience_years"]; len(got) != 1 || got[0] != "This field is required." {
		t.Errorf("errors.experience_years = %v", got)
	}
}

func TestGetDoctorNotFound(t *testing.T) {
	e := newTestServer(uuid.New(), &mockDoctorRepo{})

	for _, path := range []string{
		"/api/v1/doctors/" + uuid.NewString(),
		"/api/v1/doctors/not-a-uuid",
	} {
		rec := doJSON(e, http.MethodGet, path, "")
		if rec.Code != http.StatusNotFound {
			t.Errorf("%s: status = %d, want 404", path, rec.Code)
			continue
		}
		var resp struct {
			Error string `json:"error"`
		}
		json.Unmarshal(rec.Body.Bytes(), &resp)
		if resp.Error != "Doctor not found." {
			t.Errorf("%s: error = %q", path, resp.Error)
		}
	}
}

func TestListDoctorsEmpty(t *testing.T) {
	e := newTestServer(uuid.New(), &mockDoctorRepo{})

	rec := doJSON(e, http.MethodGet, "/api/v1/doctors", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	var resp struct {
		Data  []json.RawMessage `json:"data"`
		Total int               `json:"total"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if resp.Data == nil {
		t.Error("data is null, want []")
	}
}
