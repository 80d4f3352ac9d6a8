package http

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/Maxito7/recepcion_backend/internal/application"
	"github.com/Maxito7/recepcion_backend/internal/domain"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type visitaRepoFake struct {
	visita  *domain.VisitaCompleta
	visitas []domain.VisitaCompleta
	err     error
}

func (f *visitaRepoFake) RegistrarVisita(solicitud domain.SolicitudVisita, ventana domain.VentanaCobertura) (*domain.VisitaCompleta, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.visita, nil
}

func (f *visitaRepoFake) List() ([]domain.VisitaCompleta, error) {
	return f.visitas, f.err
}

type personaRepoFake struct {
	persona *domain.Persona
}

func (f *personaRepoFake) FindByCedula(cedula string) (*domain.Persona, error) {
	return f.persona, nil
}

func (f *personaRepoFake) FindOrCreateTemporal(cedula string) (int, bool, error) {
	return 1, true, nil
}

type coberturaRepoFake struct {
	arlRegistradas int
	epsRegistradas int
}

func (f *coberturaRepoFake) UpsertARL(personaID int, mesVigencia time.Time, entidad string) error {
	f.arlRegistradas++
	return nil
}

func (f *coberturaRepoFake) InsertEPS(personaID int, fechaVencimiento time.Time, entidad string) error {
	f.epsRegistradas++
	return nil
}

func nuevaApp(visitaRepo domain.VisitaRepository, personaRepo domain.PersonaRepository, coberturaRepo domain.CoberturaRepository) *fiber.App {
	reloj := application.RelojFijo{Instante: time.Date(2024, time.March, 15, 10, 0, 0, 0, time.UTC)}

	visitaService := application.NewVisitaService(visitaRepo, reloj)
	coberturaService := application.NewCoberturaService(personaRepo, coberturaRepo)
	personaService := application.NewPersonaService(personaRepo)
	handler := NewVisitaHandler(visitaService, coberturaService, personaService)

	app := fiber.New()
	visitas := app.Group("/visitas")
	visitas.Post("/", handler.RegistrarVisita)
	visitas.Get("/", handler.ListVisitas)
	visitas.Get("/buscar-persona", handler.BuscarPersona)
	visitas.Post("/arl", handler.RegistrarARL)
	visitas.Post("/eps", handler.RegistrarEPS)

	return app
}

func postJSON(t *testing.T, app *fiber.App, ruta string, cuerpo any) (int, map[string]any) {
	t.Helper()

	data, err := json.Marshal(cuerpo)
	require.NoError(t, err)

	req := httptest.NewRequest("POST", ruta, bytes.NewReader(data))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(body, &decoded))

	return resp.StatusCode, decoded
}

func cuerpoVisitaValido() map[string]string {
	return map[string]string{
		"cedula":            "123456",
		"nombre":            "Ana",
		"apellido":          "Gómez",
		"empresa":           "Acme",
		"area":              "Producción",
		"elementos_ingresa": "laptop",
		"autoriza_ingreso":  "Carlos Ruiz",
		"placa":             "ABC123",
	}
}

func TestRegistrarVisita_Exitosa(t *testing.T) {
	repo := &visitaRepoFake{visita: &domain.VisitaCompleta{
		ID:          1,
		Cedula:      "123456",
		Nombre:      "Ana",
		HoraIngreso: "2024-03-15T10:00:00Z",
	}}
	app := nuevaApp(repo, &personaRepoFake{}, &coberturaRepoFake{})

	status, body := postJSON(t, app, "/visitas/", cuerpoVisitaValido())

	assert.Equal(t, fiber.StatusCreated, status)
	assert.Equal(t, true, body["success"])

	data := body["data"].(map[string]any)
	assert.Equal(t, "123456", data["cedula"])
}

func TestRegistrarVisita_ValidacionCampos(t *testing.T) {
	app := nuevaApp(&visitaRepoFake{}, &personaRepoFake{}, &coberturaRepoFake{})

	cuerpo := cuerpoVisitaValido()
	cuerpo["cedula"] = "abc"
	cuerpo["empresa"] = ""

	status, body := postJSON(t, app, "/visitas/", cuerpo)

	assert.Equal(t, fiber.StatusBadRequest, status)

	errores := body["errors"].([]any)
	assert.Contains(t, errores, "Solo números permitidos")
	assert.Contains(t, errores, "Empresa requerida")
}

func TestRegistrarVisita_CoberturaFaltante(t *testing.T) {
	tests := []struct {
		name   string
		codigo string
	}{
		{name: "ARL del mes faltante", codigo: domain.CodigoARLRequerida},
		{name: "EPS vencida", codigo: domain.CodigoEPSRequerida},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &visitaRepoFake{err: &domain.ErrorCobertura{Codigo: tt.codigo, Mensaje: "cobertura faltante"}}
			app := nuevaApp(repo, &personaRepoFake{}, &coberturaRepoFake{})

			status, body := postJSON(t, app, "/visitas/", cuerpoVisitaValido())

			assert.Equal(t, fiber.StatusBadRequest, status)
			assert.Equal(t, tt.codigo, body["codigo"])
		})
	}
}

func TestBuscarPersona(t *testing.T) {
	t.Run("persona existente", func(t *testing.T) {
		personaRepo := &personaRepoFake{persona: &domain.Persona{ID: 1, Cedula: "123456", Nombre: "Ana"}}
		app := nuevaApp(&visitaRepoFake{}, personaRepo, &coberturaRepoFake{})

		resp, err := app.Test(httptest.NewRequest("GET", "/visitas/buscar-persona?cedula=123456", nil))
		require.NoError(t, err)
		defer resp.Body.Close()

		assert.Equal(t, fiber.StatusOK, resp.StatusCode)

		var body map[string]any
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
		assert.Equal(t, true, body["found"])
	})

	t.Run("persona ausente responde found=false, no 404", func(t *testing.T) {
		app := nuevaApp(&visitaRepoFake{}, &personaRepoFake{}, &coberturaRepoFake{})

		resp, err := app.Test(httptest.NewRequest("GET", "/visitas/buscar-persona?cedula=999999", nil))
		require.NoError(t, err)
		defer resp.Body.Close()

		assert.Equal(t, fiber.StatusOK, resp.StatusCode)

		var body map[string]any
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
		assert.Equal(t, false, body["found"])
	})

	t.Run("sin parámetro cedula responde 400", func(t *testing.T) {
		app := nuevaApp(&visitaRepoFake{}, &personaRepoFake{}, &coberturaRepoFake{})

		resp, err := app.Test(httptest.NewRequest("GET", "/visitas/buscar-persona", nil))
		require.NoError(t, err)
		defer resp.Body.Close()

		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	})
}

func TestRegistrarARL(t *testing.T) {
	coberturas := &coberturaRepoFake{}
	app := nuevaApp(&visitaRepoFake{}, &personaRepoFake{}, coberturas)

	status, body := postJSON(t, app, "/visitas/arl", map[string]string{
		"cedula":       "123456",
		"mes_vigencia": "2024-03-15",
		"entidad_arl":  "Sura",
	})

	assert.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, true, body["success"])
	assert.Equal(t, 1, coberturas.arlRegistradas)
}

func TestRegistrarARL_FechaInvalida(t *testing.T) {
	app := nuevaApp(&visitaRepoFake{}, &personaRepoFake{}, &coberturaRepoFake{})

	status, body := postJSON(t, app, "/visitas/arl", map[string]string{
		"cedula":       "123456",
		"mes_vigencia": "marzo",
		"entidad_arl":  "Sura",
	})

	assert.Equal(t, fiber.StatusBadRequest, status)
	assert.NotEmpty(t, body["errors"])
}

func TestRegistrarEPS(t *testing.T) {
	coberturas := &coberturaRepoFake{}
	app := nuevaApp(&visitaRepoFake{}, &personaRepoFake{}, coberturas)

	status, body := postJSON(t, app, "/visitas/eps", map[string]string{
		"cedula":            "123456",
		"fecha_vencimiento": "2024-12-31",
		"entidad_eps":       "Sanitas",
	})

	assert.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, true, body["success"])
	assert.Equal(t, 1, coberturas.epsRegistradas)
}

func TestListVisitas(t *testing.T) {
	repo := &visitaRepoFake{visitas: []domain.VisitaCompleta{{ID: 1}, {ID: 2}}}
	app := nuevaApp(repo, &personaRepoFake{}, &coberturaRepoFake{})

	resp, err := app.Test(httptest.NewRequest("GET", "/visitas/", nil))
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var body map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Len(t, body["data"], 2)
}
