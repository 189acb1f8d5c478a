package views

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/ahmetcoskunkizilkaya/myflat/internal/models"
	"github.com/gofiber/fiber/v2"
)

func TestMediaURL(t *testing.T) {
	if got := MediaURL(nil); got != "" {
		t.Errorf("nil path: got %q", got)
	}
	p := "uploads/images/flat.jpg"
	if got := MediaURL(&p); got != "/media/uploads/images/flat.jpg" {
		t.Errorf("got %q", got)
	}
}

func TestEngineRendersEveryPage(t *testing.T) {
	engine := NewEngine()
	if err := engine.Load(); err != nil {
		t.Fatalf("Load: %v", err)
	}

	img := "uploads/images/flat.jpg"
	listings := []models.Listing{{
		ID: 1, Title: "Sea view <2BHK>", FlatType: models.FlatType2BHK, Location: "Bandra",
		Rent: 42000, ImagePath: &img, ContactName: "Ravi", ContactPhone: "555",
		ContactEmail: "ravi@example.com", IsAvailable: true, PostType: models.PostTypeFlat,
		CreatedAt: time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC), Owner: models.User{Username: "ravi"},
	}}
	admin := &models.User{ID: 1, Username: "admin", IsAdmin: true}

	pages := map[string]fiber.Map{
		"index":     {"Listings": listings, "Flashes": []string{"Post created successfully!"}},
		"register":  {},
		"login":     {"Flashes": []string{"Invalid username or password"}},
		"post_flat": {"User": admin, "FlatTypes": models.FlatTypes, "PostTypes": models.PostTypes},
		"admin":     {"User": admin, "Listings": listings},
		"search":    {"Listings": listings, "Query": "Bandra", "FlatType": "2BHK", "PostType": "", "FlatTypes": models.FlatTypes, "PostTypes": models.PostTypes},
		"error":     {"Status": 400, "StatusText": "Bad Request", "Message": "bad input"},
	}
	for name, data := range pages {
		var buf bytes.Buffer
		if err := engine.Render(&buf, name, data, Layout); err != nil {
			t.Errorf("render %s: %v", name, err)
			continue
		}
		if !strings.Contains(buf.String(), "<title>") {
			t.Errorf("render %s: layout missing", name)
		}
	}

	var buf bytes.Buffer
	if err := engine.Render(&buf, "index", pages["index"], Layout); err != nil {
		t.Fatalf("render index: %v", err)
	}
	out := buf.String()
	for _, want := range []string{"Sea view &lt;2BHK&gt;", "/media/uploads/images/flat.jpg", "Post created successfully!", "Login"} {
		if !strings.Contains(out, want) {
			t.Errorf("index output missing %q", want)
		}
	}

	buf.Reset()
	if err := engine.Render(&buf, "search", pages["search"], Layout); err != nil {
		t.Fatalf("render search: %v", err)
	}
	if !strings.Contains(buf.String(), `value="Bandra"`) || !strings.Contains(buf.String(), `<option value="2BHK" selected>`) {
		t.Error("search form does not echo submitted values")
	}
}
