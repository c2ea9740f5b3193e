package apierr

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
)

func renderError(t *testing.T, err error) (int, map[string]json.RawMessage) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	HTTPErrorHandler(zerolog.Nop())(err, c)

	var body map[string]json.RawMessage
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("response is not JSON: %v (body %q)", err, rec.Body.String())
	}
	return rec.Code, body
}

func TestHandlerRendersAPIError(t *testing.T) {
	status, body := renderError(t, NotFound("Patient not found."))
	if status != http.StatusNotFound {
		t.Errorf("status = %d, want 404", status)
	}
	var msg string
	json.Unmarshal(body["error"], &msg)
	if msg != "Patient not found." {
		t.Errorf("error = %q", msg)
	}
}

func TestHandlerRendersFieldErrors(t *testing.T) {
	fields := FieldErrors{}
	fields.Add("username", "A user with that username already exists.")

	status, body := renderError(t, fields)
	if status != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", status)
	}
	var errs map[string][]string
	if err := json.Unmarshal(body["errors"], &errs); err != nil {
		t.Fatalf("errors key missing or malformed: %v", err)
	}
	if got := errs["username"]; len(got) != 1 || got[0] != "A user with that username already exists." {
		t.Errorf("errors.username = %v", got)
	}
}

func TestHandlerRendersEchoError(t *testing.T) {
	status, body := renderError(t, echo.NewHTTPError(http.StatusMethodNotAllowed, "Method Not Allowed"))
	if status != http.StatusMethodNotAllowed {
		t.Errorf("status = %d, want 405", status)
	}
	var msg string
	json.Unmarshal(body["error"], &msg)
	if msg != "Method Not Allowed" {
		t.Errorf("error = %q", msg)
	}
}

func TestHandlerCollapsesUnknownErrors(t *testing.T) {
	status, body := renderError(t, errors.New("pq: connection refused"))
	if status != http.StatusInternalServerError {
		t.Errorf("status = %d, want 500", status)
	}
	var msg string
	json.Unmarshal(body["error"], &msg)
	if msg != "Internal server error." {
		t.Errorf("internal detail leaked: %q", msg)
	}
}

func TestHandlerSkipsCommittedResponse(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.NoContent(http.StatusOK)

	HTTPErrorHandler(zerolog.Nop())(errors.New("late failure"), c)
	if rec.Code != http.StatusOK {
		t.Errorf("committed response was overwritten, status = %d", rec.Code)
	}
}
