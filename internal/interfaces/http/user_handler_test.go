package http_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/plazadecomidas/auth-service/internal/application/usecase"
	"github.com/plazadecomidas/auth-service/internal/domain/entity"
	apphttp "github.com/plazadecomidas/auth-service/internal/interfaces/http"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes y helpers de test
// ──────────────────────────────────────────────────────────────────────────────

// fakeUserStore almacén en memoria con la misma semántica del repositorio
// real: (nil, nil) cuando no hay coincidencia, ID asignado en el insert.
type fakeUserStore struct {
	users  []*entity.User
	nextID int64
}

func (s *fakeUserStore) Save(user *entity.User) (*entity.User, error) {
	saved := *user
	s.nextID++
	saved.ID = s.nextID
	saved.CreatedAt = time.Now()
	s.users = append(s.users, &saved)
	return &saved, nil
}

func (s *fakeUserStore) FindByID(id int64) (*entity.User, error) {
	for _, u := range s.users {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, nil
}

func (s *fakeUserStore) FindByEmail(email string) (*entity.User, error) {
	for _, u := range s.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, nil
}

func (s *fakeUserStore) FindByPhone(phone string) (*entity.User, error) {
	for _, u := range s.users {
		if u.Phone == phone {
			return u, nil
		}
	}
	return nil, nil
}

func (s *fakeUserStore) FindByDocument(document string) (*entity.User, error) {
	for _, u := range s.users {
		if u.Document == document {
			return u, nil
		}
	}
	return nil, nil
}

type fakeRoleStore struct {
	roles []*entity.Role
}

func (s *fakeRoleStore) FindByName(name string) (*entity.Role, error) {
	for _, r := range s.roles {
		if r.Name == name {
			return r, nil
		}
	}
	return nil, nil
}

func (s *fakeRoleStore) FindByID(id int64) (*entity.Role, error) {
	for _, r := range s.roles {
		if r.ID == id {
			return r, nil
		}
	}
	return nil, nil
}

type fakeHasher struct{}

func (fakeHasher) Hash(plaintext string) (string, error) {
	return "$2a$10$hash-de-" + plaintext, nil
}

// buildTestApp construye una app Fiber con el caso de uso real sobre fakes en
// memoria. conRol controla si el catálogo tiene el rol PROPIETARIO sembrado.
func buildTestApp(conRol bool) (*fiber.App, *fakeUserStore) {
	store := &fakeUserStore{}
	roles := &fakeRoleStore{}
	if conRol {
		roles.roles = []*entity.Role{
			{ID: 2, Name: entity.RolePropietario, Description: "Administra su propio restaurante"},
		}
	}
	uc := usecase.NewOwnerUseCase(store, roles, fakeHasher{})
	app := fiber.New()
	apphttp.Router(app, apphttp.RouterDeps{OwnerUC: uc})
	return app, store
}

func cuerpoValido() map[string]string {
	return map[string]string{
		"nombre":                 "Juan",
		"apellido":               "Perez",
		"documento_de_identidad": "123456789",
		"celular":                "+573101234567",
		"correo":                 "juan@example.com",
		"clave":                  "Secret123",
		"fecha_de_nacimiento":    "1990-01-01",
	}
}

func postOwner(t *testing.T, app *fiber.App, body map[string]string) *http.Response {
	t.Helper()
	raw, err := json.Marshal(body)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/users/create-owner", bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decodeBody(t *testing.T, resp *http.Response) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return out
}

// ──────────────────────────────────────────────────────────────────────────────
// POST /api/v1/users/create-owner
// ──────────────────────────────────────────────────────────────────────────────

func TestCreateOwner_Creado201(t *testing.T) {
	app, _ := buildTestApp(true)

	resp := postOwner(t, app, cuerpoValido())
	assert.Equal(t, fiber.StatusCreated, resp.StatusCode)

	body := decodeBody(t, resp)
	assert.NotZero(t, body["id"])
	assert.Equal(t, "Juan", body["nombre"])
	rol := body["rol"].(map[string]any)
	assert.Equal(t, "PROPIETARIO", rol["nombre"])
	// ni la clave ni el hash viajan en la respuesta
	_, tieneClave := body["clave"]
	assert.False(t, tieneClave)
}

func TestCreateOwner_CampoFaltante400ConMensaje(t *testing.T) {
	app, _ := buildTestApp(true)

	cuerpo := cuerpoValido()
	cuerpo["nombre"] = ""
	resp := postOwner(t, app, cuerpo)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	body := decodeBody(t, resp)
	assert.Equal(t, "MISSING_FIELD", body["code"])
	assert.Equal(t, "El nombre es obligatorio", body["mensaje"])
}

func TestCreateOwner_DocumentoNoNumerico400(t *testing.T) {
	app, _ := buildTestApp(true)

	cuerpo := cuerpoValido()
	cuerpo["documento_de_identidad"] = "12A45"
	resp := postOwner(t, app, cuerpo)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	body := decodeBody(t, resp)
	assert.Equal(t, "INVALID_FORMAT", body["code"])
	assert.Equal(t, "El número de documento debe contener solo números", body["mensaje"])
}

func TestCreateOwner_MenorDeEdad400(t *testing.T) {
	app, _ := buildTestApp(true)

	cuerpo := cuerpoValido()
	cuerpo["fecha_de_nacimiento"] = time.Now().AddDate(-17, 0, 0).Format("2006-01-02")
	resp := postOwner(t, app, cuerpo)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	body := decodeBody(t, resp)
	assert.Equal(t, "BIRTHDATE_ADULT", body["code"])
	assert.Equal(t, "La persona debe ser mayor de edad (18 años)", body["mensaje"])
}

func TestCreateOwner_FechaFutura400(t *testing.T) {
	app, _ := buildTestApp(true)

	cuerpo := cuerpoValido()
	cuerpo["fecha_de_nacimiento"] = time.Now().AddDate(1, 0, 0).Format("2006-01-02")
	resp := postOwner(t, app, cuerpo)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	body := decodeBody(t, resp)
	assert.Equal(t, "BIRTHDATE_FUTURE", body["code"])
	assert.Equal(t, "La fecha de nacimiento debe ser una fecha pasada", body["mensaje"])
}

// almacén cuyo Save devuelve (nil, nil): el registro se pierde sin error.
type storeQueNoGuarda struct {
	fakeUserStore
}

func (s *storeQueNoGuarda) Save(user *entity.User) (*entity.User, error) {
	return nil, nil
}

func TestCreateOwner_NoGuardado500(t *testing.T) {
	store := &storeQueNoGuarda{}
	roles := &fakeRoleStore{roles: []*entity.Role{
		{ID: 2, Name: entity.RolePropietario, Description: "Administra su propio restaurante"},
	}}
	uc := usecase.NewOwnerUseCase(store, roles, fakeHasher{})
	app := fiber.New()
	apphttp.Router(app, apphttp.RouterDeps{OwnerUC: uc})

	resp := postOwner(t, app, cuerpoValido())
	assert.Equal(t, fiber.StatusInternalServerError, resp.StatusCode)

	body := decodeBody(t, resp)
	assert.Equal(t, "NOT_SAVED", body["code"])
	assert.Equal(t, "El usuario no pudo ser guardado", body["mensaje"])
}

func TestCreateOwner_Duplicado409ConValor(t *testing.T) {
	app, store := buildTestApp(true)

	resp := postOwner(t, app, cuerpoValido())
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	resp = postOwner(t, app, cuerpoValido())
	assert.Equal(t, fiber.StatusConflict, resp.StatusCode)

	body := decodeBody(t, resp)
	assert.Equal(t, "ALREADY_EXISTS", body["code"])
	assert.Equal(t, "Ya existe un usuario con el correo electrónico: juan@example.com", body["mensaje"])
	assert.Len(t, store.users, 1)
}

func TestCreateOwner_RolNoSembrado404(t *testing.T) {
	app, store := buildTestApp(false)

	resp := postOwner(t, app, cuerpoValido())
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)

	body := decodeBody(t, resp)
	assert.Equal(t, "ROLE_NOT_FOUND", body["code"])
	assert.Equal(t, "El rol 'PROPIETARIO' no se encontró en el sistema.", body["mensaje"])
	assert.Empty(t, store.users)
}

func TestCreateOwner_CuerpoInvalido400(t *testing.T) {
	app, _ := buildTestApp(true)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/users/create-owner", bytes.NewReader([]byte("{no es json")))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

// ──────────────────────────────────────────────────────────────────────────────
// GET /api/v1/users/is-owner
// ──────────────────────────────────────────────────────────────────────────────

func getIsOwner(t *testing.T, app *fiber.App, userID string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, fmt.Sprintf("/api/v1/users/is-owner?userId=%s", userID), nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func TestIsOwner_IdaYVuelta(t *testing.T) {
	app, _ := buildTestApp(true)

	resp := postOwner(t, app, cuerpoValido())
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)
	creado := decodeBody(t, resp)
	id := fmt.Sprintf("%.0f", creado["id"].(float64))

	resp = getIsOwner(t, app, id)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	body := decodeBody(t, resp)
	assert.Equal(t, creado["id"], body["id"])
	assert.Equal(t, "juan@example.com", body["correo"])
	rol := body["rol"].(map[string]any)
	assert.Equal(t, "PROPIETARIO", rol["nombre"])
}

func TestIsOwner_Inexistente404(t *testing.T) {
	app, _ := buildTestApp(true)

	resp := getIsOwner(t, app, "999")
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)

	body := decodeBody(t, resp)
	assert.Equal(t, "USER_NOT_FOUND", body["code"])
	assert.Equal(t, "Usuario no encontrado", body["mensaje"])
}

func TestIsOwner_IdNoNumerico400(t *testing.T) {
	app, _ := buildTestApp(true)

	resp := getIsOwner(t, app, "abc")
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	body := decodeBody(t, resp)
	assert.Equal(t, "INVALID_USER_ID", body["code"])
}
