package credential

import (
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
)

func makeAppWithAuthHandler() (*fiber.App, *Service) {
	app := fiber.New()
	service := NewService(NewInMemoryRepository())
	NewHandler(service).RegisterPublicRoutes(app)
	return app, service
}

func postJSON(app *fiber.App, path, body string) (int, string) {
	req := httptest.NewRequest("POST", path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	res, _ := app.Test(req)
	b, _ := io.ReadAll(res.Body)
	return res.StatusCode, string(b)
}

func TestAuthRoutes_RegisterLoginFlow(t *testing.T) {
	app, service := makeAppWithAuthHandler()

	// register
	code, body := postJSON(app, "/api/v1/sign-up",
		`{"name":"Al","email":"a@b.com","password":"secret1","confirmPassword":"secret1"}`)
	if code != fiber.StatusCreated {
		t.Fatalf("expected 201 for sign-up, got %d: %s", code, body)
	}
	if !strings.Contains(body, "Registration successful! Welcome to GreenBasket") {
		t.Fatalf("missing success message: %s", body)
	}

	// duplicate registration
	code, body = postJSON(app, "/api/v1/sign-up",
		`{"name":"Bo","email":"a@b.com","password":"secret2","confirmPassword":"secret2"}`)
	if code != fiber.StatusConflict {
		t.Fatalf("expected 409 for duplicate email, got %d", code)
	}
	if !strings.Contains(body, "Email already registered. Please login instead") {
		t.Fatalf("missing duplicate message: %s", body)
	}

	// short password
	code, _ = postJSON(app, "/api/v1/sign-up",
		`{"name":"Bo","email":"b@c.com","password":"short","confirmPassword":"short"}`)
	if code != fiber.StatusBadRequest {
		t.Fatalf("expected 400 for short password, got %d", code)
	}

	// session is open after registration
	res, _ := app.Test(httptest.NewRequest("GET", "/api/v1/session", nil))
	b, _ := io.ReadAll(res.Body)
	if !strings.Contains(string(b), `"authenticated":true`) {
		t.Fatalf("expected authenticated session, got %s", string(b))
	}

	// sign out
	res2, _ := app.Test(httptest.NewRequest("POST", "/api/v1/sign-out", nil))
	if res2.StatusCode != fiber.StatusNoContent {
		t.Fatalf("expected 204 for sign-out, got %d", res2.StatusCode)
	}
	if service.IsAuthenticated() {
		t.Fatalf("expected session closed after sign-out")
	}

	// wrong password
	code, body = postJSON(app, "/api/v1/sign-in", `{"email":"a@b.com","password":"wrong"}`)
	if code != fiber.StatusUnauthorized {
		t.Fatalf("expected 401 for wrong password, got %d", code)
	}
	if !strings.Contains(body, "Invalid email or password") {
		t.Fatalf("missing error message: %s", body)
	}
	if service.IsAuthenticated() {
		t.Fatalf("failed login must not open a session")
	}

	// correct login
	code, body = postJSON(app, "/api/v1/sign-in", `{"email":"a@b.com","password":"secret1"}`)
	if code != fiber.StatusOK {
		t.Fatalf("expected 200 for sign-in, got %d: %s", code, body)
	}
	if !strings.Contains(body, "Login successful! Welcome back") {
		t.Fatalf("missing success message: %s", body)
	}
}

func TestAuthRoutes_LoginWithoutAccount(t *testing.T) {
	app, _ := makeAppWithAuthHandler()

	code, body := postJSON(app, "/api/v1/sign-in", `{"email":"a@b.com","password":"secret1"}`)
	if code != fiber.StatusNotFound {
		t.Fatalf("expected 404 for unknown account, got %d", code)
	}
	if !strings.Contains(body, "Account not found. Please register first") {
		t.Fatalf("missing error message: %s", body)
	}

	code, _ = postJSON(app, "/api/v1/sign-in", `{"email":"","password":""}`)
	if code != fiber.StatusBadRequest {
		t.Fatalf("expected 400 for missing fields, got %d", code)
	}
}

func TestAuthRoutes_AccountTeardown(t *testing.T) {
	app, service := makeAppWithAuthHandler()

	code, _ := postJSON(app, "/api/v1/sign-up",
		`{"name":"Al","email":"a@b.com","password":"secret1","confirmPassword":"secret1"}`)
	if code != fiber.StatusCreated {
		t.Fatalf("expected 201, got %d", code)
	}

	res, _ := app.Test(httptest.NewRequest("DELETE", "/api/v1/account", nil))
	if res.StatusCode != fiber.StatusNoContent {
		t.Fatalf("expected 204 for account teardown, got %d", res.StatusCode)
	}

	rec, _ := service.Current()
	if rec != (Record{}) {
		t.Fatalf("expected empty record after teardown, got %+v", rec)
	}
}
