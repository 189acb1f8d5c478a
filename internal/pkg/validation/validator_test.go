package validation

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/ahmetcoskunkizilkaya/myflat/internal/dto"
	"github.com/gofiber/fiber/v2"
)

func TestValidateStruct(t *testing.T) {
	ok := dto.RegisterForm{Username: "alice", Email: "a@example.com", Phone: "555", Password: "pw"}
	if errs := ValidateStruct(&ok); errs != nil {
		t.Fatalf("expected no errors, got %+v", errs)
	}

	errs := ValidateStruct(&dto.RegisterForm{Username: "alice"})
	if len(errs) != 3 {
		t.Fatalf("expected 3 errors, got %d: %+v", len(errs), errs)
	}
	if errs[0].Field != "email" || errs[0].Tag != "required" {
		t.Errorf("first error: %+v", errs[0])
	}
	if errs[0].Message != "The email field is required." {
		t.Errorf("message: %q", errs[0].Message)
	}

	long := ok
	long.Phone = strings.Repeat("9", 16)
	errs = ValidateStruct(&long)
	if len(errs) != 1 || errs[0].Tag != "max" {
		t.Errorf("expected a single max error, got %+v", errs)
	}
}

func TestParseForm(t *testing.T) {
	app := fiber.New()
	app.Post("/login", func(c *fiber.Ctx) error {
		var form dto.LoginForm
		if err := ParseForm(c, &form); err != nil {
			return err
		}
		return c.SendString(form.Username)
	})

	tests := []struct {
		name   string
		form   url.Values
		status int
	}{
		{"complete", url.Values{"username": {"bob"}, "password": {"pw"}}, fiber.StatusOK},
		{"missing password", url.Values{"username": {"bob"}}, fiber.StatusBadRequest},
		{"empty", url.Values{}, fiber.StatusBadRequest},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/login", strings.NewReader(tt.form.Encode()))
			req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
			resp, err := app.Test(req)
			if err != nil {
				t.Fatalf("app.Test: %v", err)
			}
			if resp.StatusCode != tt.status {
				t.Errorf("status: got %d, want %d", resp.StatusCode, tt.status)
			}
		})
	}
}
