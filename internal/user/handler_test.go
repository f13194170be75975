package user

import (
	"context"
	"encoding/json"
	"io"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
)

const testSecret = "test-secret"

func newTestApp(repo Repository, lifetime time.Duration) *fiber.App {
	app := fiber.New()
	NewHandler(NewService(repo), testSecret, lifetime).RegisterRoutes(app)
	return app
}

func postJSON(t *testing.T, app *fiber.App, path, body string) (int, string) {
	t.Helper()

	req := httptest.NewRequest("POST", path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	res, err := app.Test(req)
	if err != nil {
		t.Fatalf("request to %s failed: %v", path, err)
	}
	b, _ := io.ReadAll(res.Body)
	return res.StatusCode, string(b)
}

func TestRegister_DuplicateEmail(t *testing.T) {
	repo := NewInMemoryRepository(nil)
	app := newTestApp(repo, time.Hour)

	status, body := postJSON(t, app, "/api/v1/register", `{"name":"Alice","email":"alice@example.com","password":"secret"}`)
	if status != fiber.StatusCreated {
		t.Fatalf("expected 201 on first register, got %d (%s)", status, body)
	}
	if !strings.Contains(body, `"success":true`) {
		t.Fatalf("unexpected register body: %s", body)
	}

	status, body = postJSON(t, app, "/api/v1/register", `{"name":"Alice Again","email":"alice@example.com","password":"other"}`)
	if status != fiber.StatusBadRequest {
		t.Fatalf("expected 400 on duplicate register, got %d (%s)", status, body)
	}
	if !strings.Contains(body, "User already exists") {
		t.Fatalf("unexpected duplicate body: %s", body)
	}

	if repo.Count() != 1 {
		t.Fatalf("expected exactly one stored account, got %d", repo.Count())
	}
}

func TestRegister_PasswordIsHashed(t *testing.T) {
	repo := NewInMemoryRepository(nil)
	app := newTestApp(repo, time.Hour)

	status, _ := postJSON(t, app, "/api/v1/register", `{"name":"Bob","email":"bob@example.com","password":"hunter2"}`)
	if status != fiber.StatusCreated {
		t.Fatalf("register failed with status %d", status)
	}

	stored, err := repo.GetByEmail(context.Background(), "bob@example.com")
	if err != nil {
		t.Fatalf("account not stored: %v", err)
	}
	if stored.Password == "hunter2" {
		t.Fatal("password stored in plaintext")
	}
	if !strings.HasPrefix(stored.Password, "$2") {
		t.Fatalf("stored password is not a bcrypt hash: %q", stored.Password)
	}
}

func TestLogin_InvalidCredentials(t *testing.T) {
	repo := NewInMemoryRepository(nil)
	app := newTestApp(repo, time.Hour)

	postJSON(t, app, "/api/v1/register", `{"name":"Carol","email":"carol@example.com","password":"right"}`)

	status, _ := postJSON(t, app, "/api/v1/login", `{"email":"carol@example.com","password":"wrong"}`)
	if status != fiber.StatusUnauthorized {
		t.Fatalf("expected 401 for wrong password, got %d", status)
	}

	status, _ = postJSON(t, app, "/api/v1/login", `{"email":"nobody@example.com","password":"right"}`)
	if status != fiber.StatusUnauthorized {
		t.Fatalf("expected 401 for unknown email, got %d", status)
	}
}

func TestLogin_IssuesTokenWithEmailAndExpiry(t *testing.T) {
	lifetime := 2 * time.Hour
	repo := NewInMemoryRepository(nil)
	app := newTestApp(repo, lifetime)

	postJSON(t, app, "/api/v1/register", `{"name":"Dave","email":"dave@example.com","password":"secret"}`)

	status, body := postJSON(t, app, "/api/v1/login", `{"email":"dave@example.com","password":"secret"}`)
	if status != fiber.StatusOK {
		t.Fatalf("expected 200 on login, got %d (%s)", status, body)
	}

	var payload struct {
		Success bool   `json:"success"`
		Message string `json:"message"`
		Token   string `json:"token"`
	}
	if err := json.Unmarshal([]byte(body), &payload); err != nil {
		t.Fatalf("invalid login body: %v", err)
	}
	if !payload.Success || payload.Message != "Login successful" || payload.Token == "" {
		t.Fatalf("unexpected login payload: %+v", payload)
	}

	token, err := jwt.Parse(payload.Token, func(t *jwt.Token) (any, error) {
		return []byte(testSecret), nil
	})
	if err != nil || !token.Valid {
		t.Fatalf("token does not verify: %v", err)
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		t.Fatal("unexpected claims type")
	}
	if claims["email"] != "dave@example.com" {
		t.Fatalf("unexpected email claim: %v", claims["email"])
	}

	exp, ok := claims["exp"].(float64)
	if !ok {
		t.Fatalf("missing exp claim: %v", claims["exp"])
	}
	want := time.Now().Add(lifetime).Unix()
	if got := int64(exp); got < want-60 || got > want+60 {
		t.Fatalf("exp %d not within a minute of %d", got, want)
	}
}
