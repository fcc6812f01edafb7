package handler

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"table-booking/internal/config"
	"table-booking/internal/identity"
	"table-booking/internal/model"
	"table-booking/internal/utils"
)

// AuthHandler bundles dependencies for the mock auth endpoints.  The
// identity provider does all the deciding; this layer only translates
// HTTP and issues session tokens.
type AuthHandler struct {
	Cfg      config.Config
	Identity *identity.Provider
}

func NewAuthHandler(cfg config.Config, p *identity.Provider) *AuthHandler {
	return &AuthHandler{Cfg: cfg, Identity: p}
}

// ----- DTOs -----

type loginReq struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}
type signupReq struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
}

type userPart struct {
	ID      string `json:"id"`
	Email   string `json:"email"`
	Name    string `json:"name"`
	IsAdmin bool   `json:"is_admin"`
}
type authResp struct {
	User    userPart  `json:"user"`
	Token   string    `json:"token"`
	Expires time.Time `json:"expires"`
}

func (h *AuthHandler) respond(c echo.Context, status int, u model.User) error {
	access, err := utils.NewAccessToken(h.Cfg.JWTSecret, u, h.Cfg.AccessTTLMin)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "issue token failed"})
	}
	return c.JSON(status, authResp{
		User:    userPart{ID: u.ID, Email: u.Email, Name: u.Name, IsAdmin: u.IsAdmin},
		Token:   access.Token,
		Expires: access.Exp,
	})
}

// Login verifies a credential pair and returns the user with a session
// token.  The admin pair yields is_admin=true; any other non-empty pair
// logs in as a regular user.
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	u, err := h.Identity.Login(ctx, req.Email, req.Password)
	if err != nil {
		if errors.Is(err, identity.ErrInvalidCredentials) {
			return c.JSON(http.StatusUnauthorized, echo.Map{"error": "invalid credentials"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "login failed"})
	}
	return h.respond(c, http.StatusOK, u)
}

// Signup creates a regular account whenever email, password and name
// are all present, and returns the user with a session token.
func (h *AuthHandler) Signup(c echo.Context) error {
	var req signupReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	u, err := h.Identity.Signup(ctx, req.Email, req.Password, req.Name)
	if err != nil {
		if errors.Is(err, identity.ErrInvalidCredentials) {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "email/password/name required"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "signup failed"})
	}
	return h.respond(c, http.StatusCreated, u)
}

// Logout clears the persisted identity.  The session token itself is
// not revocable; it simply ages out.
func (h *AuthHandler) Logout(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	if err := h.Identity.Logout(ctx); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "logout failed"})
	}
	return c.NoContent(http.StatusNoContent)
}

// Me echoes the identity claims of the current session.
func (h *AuthHandler) Me(c echo.Context) error {
	return c.JSON(http.StatusOK, echo.Map{
		"user_id":  c.Get("user_id"),
		"email":    c.Get("email"),
		"name":     c.Get("name"),
		"is_admin": c.Get("is_admin"),
	})
}
