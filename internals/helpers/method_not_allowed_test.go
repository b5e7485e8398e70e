package helper

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
)

func TestMethodNotAllowed(t *testing.T) {
	app := fiber.New()
	app.Get("/things", func(c *fiber.Ctx) error { return JsonOK(c, "ok", nil) })
	app.All("/things", MethodNotAllowed("GET", "POST"))

	req := httptest.NewRequest("DELETE", "/things", nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	if resp.StatusCode != fiber.StatusMethodNotAllowed {
		t.Errorf("status = %d, want 405", resp.StatusCode)
	}
	if got := resp.Header.Get(fiber.HeaderAllow); got != "GET, POST" {
		t.Errorf("Allow = %q, want \"GET, POST\"", got)
	}
}

func TestMethodNotAllowedDoesNotShadowRealVerb(t *testing.T) {
	app := fiber.New()
	app.Get("/things", func(c *fiber.Ctx) error { return JsonOK(c, "ok", nil) })
	app.All("/things", MethodNotAllowed("GET"))

	req := httptest.NewRequest("GET", "/things", nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	if resp.StatusCode != fiber.StatusOK {
		t.Errorf("status = %d, want 200", resp.StatusCode)
	}
}

func TestBuildPaginationFromPage(t *testing.T) {
	cases := []struct {
		name       string
		total      int64
		page       int
		perPage    int
		wantPages  int
		wantNext   bool
		wantPrev   bool
	}{
		{"first of three", 50, 1, 20, 3, true, false},
		{"middle", 50, 2, 20, 3, true, true},
		{"last", 50, 3, 20, 3, false, true},
		{"empty set still one page", 0, 1, 20, 1, false, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p := BuildPaginationFromPage(tc.total, tc.page, tc.perPage)
			if p.TotalPages != tc.wantPages {
				t.Errorf("TotalPages = %d, want %d", p.TotalPages, tc.wantPages)
			}
			if p.HasNext != tc.wantNext || p.HasPrev != tc.wantPrev {
				t.Errorf("HasNext/HasPrev = %v/%v, want %v/%v", p.HasNext, p.HasPrev, tc.wantNext, tc.wantPrev)
			}
		})
	}
}
