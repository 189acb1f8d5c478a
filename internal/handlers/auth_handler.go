package handlers

import (
	"errors"

	"github.com/ahmetcoskunkizilkaya/myflat/internal/dto"
	"github.com/ahmetcoskunkizilkaya/myflat/internal/flash"
	"github.com/ahmetcoskunkizilkaya/myflat/internal/pkg/validation"
	"github.com/ahmetcoskunkizilkaya/myflat/internal/services"
	"github.com/ahmetcoskunkizilkaya/myflat/internal/session"
	"github.com/gofiber/fiber/v2"
)

const (
	MsgUsernameTaken      = "Username already exists"
	MsgEmailTaken         = "Email already exists"
	MsgRegistered         = "Registration successful"
	MsgInvalidCredentials = "Invalid username or password"
)

type AuthHandler struct {
	authService *services.AuthService
	sessions    *session.Manager
}

func NewAuthHandler(authService *services.AuthService, sessions *session.Manager) *AuthHandler {
	return &AuthHandler{authService: authService, sessions: sessions}
}

func (h *AuthHandler) ShowRegister(c *fiber.Ctx) error {
	return render(c, "register", fiber.Map{"Title": "Register"})
}

func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var req dto.RegisterForm
	if err := validation.ParseForm(c, &req); err != nil {
		return err
	}

	_, err := h.authService.Register(c.UserContext(), &req)
	switch {
	case errors.Is(err, services.ErrUsernameTaken):
		flash.Add(c, MsgUsernameTaken)
		return c.Redirect("/register")
	case errors.Is(err, services.ErrEmailTaken):
		flash.Add(c, MsgEmailTaken)
		return c.Redirect("/register")
	case err != nil:
		return err
	}

	flash.Add(c, MsgRegistered)
	return c.Redirect("/login")
}

func (h *AuthHandler) ShowLogin(c *fiber.Ctx) error {
	return render(c, "login", fiber.Map{"Title": "Login"})
}

func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req dto.LoginForm
	if err := validation.ParseForm(c, &req); err != nil {
		return err
	}

	res, err := h.authService.Login(c.UserContext(), &req)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			flash.Add(c, MsgInvalidCredentials)
			return render(c, "login", fiber.Map{"Title": "Login"})
		}
		return err
	}

	h.sessions.SetCookie(c, res.Token, res.ExpiresAt)
	return c.Redirect("/")
}

func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	h.sessions.ClearCookie(c)
	return c.Redirect("/")
}
