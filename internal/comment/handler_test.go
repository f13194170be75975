package comment

import (
	"encoding/json"
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
)

func TestCreateAndList(t *testing.T) {
	app := fiber.New()
	NewHandler(NewService(NewInMemoryRepository(nil))).RegisterRoutes(app)

	req := httptest.NewRequest("POST", "/api/v1/comment",
		strings.NewReader(`{"name":"Grace","comment":"Thank you for the quick delivery!"}`))
	req.Header.Set("Content-Type", "application/json")
	res, err := app.Test(req)
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if res.StatusCode != fiber.StatusCreated {
		t.Fatalf("expected 201, got %d", res.StatusCode)
	}

	res, err = app.Test(httptest.NewRequest("GET", "/api/v1/comment", nil))
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if res.StatusCode != fiber.StatusOK {
		t.Fatalf("expected 200, got %d", res.StatusCode)
	}

	b, _ := io.ReadAll(res.Body)
	var env struct {
		Success bool      `json:"success"`
		Message string    `json:"message"`
		Data    []Comment `json:"data"`
	}
	if err := json.Unmarshal(b, &env); err != nil {
		t.Fatalf("invalid list body %q: %v", b, err)
	}
	if !env.Success || env.Message != "Comments retrieved successfully" {
		t.Fatalf("unexpected envelope: %s", b)
	}
	if len(env.Data) != 1 || env.Data[0].Comment != "Thank you for the quick delivery!" {
		t.Fatalf("unexpected comments: %s", b)
	}
}
