package accounts

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/shashavali-8524/health-care/internal/platform/apierr"
	"github.com/shashavali-8524/health-care/internal/platform/auth"
)

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

// RegisterRoutes mounts the auth endpoints. These are the only routes served
// without a bearer token.
func (h *Handler) RegisterRoutes(g *echo.Group) {
	g.POST("/register", h.Register)
	g.POST("/login", h.Login)
	g.POST("/refresh", h.Refresh)
}

// RegisterProtectedRoutes mounts the account endpoints that require a bearer
// token.
func (h *Handler) RegisterProtectedRoutes(g *echo.Group) {
	g.GET("/auth/me", h.Me)
}

type registerRequest struct {
	Username string `json:"username" validate:"required,min=3,max=150"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
}

type loginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type refreshRequest struct {
	Refresh string `json:"refresh" validate:"required"`
}

func (h *Handler) Register(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Malformed request body.")
	}
	if err := apierr.Validate(&req); err != nil {
		return err
	}

	u, err := h.svc.Register(c.Request().Context(), req.Username, req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, ErrUsernameTaken):
			return apierr.FieldErrors{"username": {"A user with that username already exists."}}
		case errors.Is(err, ErrEmailTaken):
			return apierr.FieldErrors{"email": {"A user with that email already exists."}}
		}
		return err
	}

	return c.JSON(http.StatusCreated, map[string]interface{}{
		"message": "User registered successfully.",
		"user":    u.Public(),
	})
}

func (h *Handler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Malformed request body.")
	}
	if err := apierr.Validate(&req); err != nil {
		return err
	}

	u, tokens, err := h.svc.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, ErrInvalidCredentials) {
			return apierr.Unauthorized("Invalid email or password.")
		}
		return err
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"message": "Login successful.",
		"user":    u.Public(),
		"tokens":  tokens,
	})
}

func (h *Handler) Me(c echo.Context) error {
	ctx := c.Request().Context()
	u, err := h.svc.CurrentUser(ctx, auth.UserIDFromContext(ctx))
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			// The token outlived the account.
			return apierr.Unauthorized("Invalid or expired token.")
		}
		return err
	}
	return c.JSON(http.StatusOK, u.Public())
}

func (h *Handler) Refresh(c echo.Context) error {
	var req refreshRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Malformed request body.")
	}
	if err := apierr.Validate(&req); err != nil {
		return err
	}

	access, err := h.svc.Refresh(req.Refresh)
	if err != nil {
		return apierr.Unauthorized("Invalid or expired token.")
	}

	return c.JSON(http.StatusOK, map[string]string{"access": access})
}
