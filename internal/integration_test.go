package internal

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/JuanPabloo890/Hackers-Internet-Backend/config"
	"github.com/JuanPabloo890/Hackers-Internet-Backend/internal/api"
	"github.com/JuanPabloo890/Hackers-Internet-Backend/internal/mail"
	"github.com/JuanPabloo890/Hackers-Internet-Backend/internal/model"
	"github.com/JuanPabloo890/Hackers-Internet-Backend/internal/store"
)

type capturedMail struct {
	mu   sync.Mutex
	sent []mail.Message
}

func (m *capturedMail) Dispatch(msg mail.Message) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sent = append(m.sent, msg)
}

func (m *capturedMail) count() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.sent)
}

func setupTestServer(t *testing.T, dbName string) (*gin.Engine, *gorm.DB, *capturedMail) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", dbName)
	testDB, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("Failed to connect to the in-memory database: %v", err)
	}
	t.Cleanup(func() {
		sqlDB, _ := testDB.DB()
		sqlDB.Close()
	})

	err = testDB.AutoMigrate(&model.Cliente{}, &model.Equipo{}, &model.Mantenimiento{}, &model.Administrador{})
	require.NoError(t, err)

	cfg := &config.Config{}
	cfg.Server.RateLimitPerSec = 1000
	cfg.Server.RateLimitBurst = 1000
	cfg.Server.CacheTTLSeconds = 1
	cfg.Auth.JWTSecret = "integration-secret"
	cfg.Auth.TokenTTLMinutes = 15

	mailer := &capturedMail{}
	router := api.NewRouter(store.NewGormStore(testDB), mailer, cfg)
	return router, testDB, mailer
}

func request(r *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

// TestTallerLifecycle walks a device through the shop: a cliente registers,
// hands in a laptop, the laptop gets repaired, the history reflects every
// step, and deleting the cliente removes everything that belonged to them.
func TestTallerLifecycle(t *testing.T) {
	router, testDB, mailer := setupTestServer(t, "taller_lifecycle")

	// Register a cliente; the generated password goes out by mail.
	w := request(router, http.MethodPost, "/api/cliente", gin.H{
		"correo": "ana@example.com", "nombre": "Ana", "telefono": "0999999999",
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Equal(t, 1, mailer.count())

	var cliente model.Cliente
	require.NoError(t, testDB.First(&cliente, "correo = ?", "ana@example.com").Error)
	assert.NotEmpty(t, cliente.Password)

	// Hand in a laptop. The assigned ID carries the LAP prefix and the
	// create leaves exactly one maintenance snapshot behind.
	w = request(router, http.MethodPost, "/api/equipo", gin.H{
		"marca": "Dell", "modelo": "XPS 13", "estado": "Recibido",
		"id_cliente": cliente.ID, "tipo": "laptop", "observaciones": "No enciende",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var equipo model.Equipo
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &equipo))
	assert.Regexp(t, `^LAP[0-9A-F]{6}$`, equipo.ID)

	var count int64
	require.NoError(t, testDB.Model(&model.Mantenimiento{}).Where("id_equipo = ?", equipo.ID).Count(&count).Error)
	assert.EqualValues(t, 1, count)

	// Repair it. The update writes a second snapshot.
	w = request(router, http.MethodPut, "/api/equipo/"+equipo.ID, gin.H{
		"estado": "Reparado", "observaciones": "Fuente reemplazada",
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	require.NoError(t, testDB.Model(&model.Mantenimiento{}).Where("id_equipo = ?", equipo.ID).Count(&count).Error)
	assert.EqualValues(t, 2, count)

	// The history is newest-first and its top entry reflects the repair.
	w = request(router, http.MethodGet, "/api/mantenimiento/equipo/"+equipo.ID, nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var historial store.HistorialEquipo
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &historial))
	assert.Equal(t, equipo.ID, historial.IDEquipo)
	assert.Equal(t, "Ana", historial.NombreCliente)
	require.Len(t, historial.Registros, 2)
	assert.Equal(t, "Reparado", historial.Registros[0].EstadoActual)
	assert.Equal(t, "Recibido", historial.Registros[1].EstadoActual)
	for i := 1; i < len(historial.Registros); i++ {
		assert.GreaterOrEqual(t, historial.Registros[i-1].Fecha, historial.Registros[i].Fecha)
	}

	// Deleting the cliente takes the equipo and its history with it.
	w = request(router, http.MethodDelete, fmt.Sprintf("/api/cliente/%d", cliente.ID), nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	require.NoError(t, testDB.Model(&model.Equipo{}).Where("id_cliente = ?", cliente.ID).Count(&count).Error)
	assert.EqualValues(t, 0, count)
	require.NoError(t, testDB.Model(&model.Mantenimiento{}).Where("id_equipo = ?", equipo.ID).Count(&count).Error)
	assert.EqualValues(t, 0, count)

	// With the history gone, the device answers 404 again.
	w = request(router, http.MethodGet, "/api/mantenimiento/equipo/"+equipo.ID, nil)
	require.Equal(t, http.StatusNotFound, w.Code)
}

// TestRegistrarClienteDuplicado verifies the unique-email rule end to end
// against a real database.
func TestRegistrarClienteDuplicado(t *testing.T) {
	router, _, mailer := setupTestServer(t, "taller_duplicado")

	payload := gin.H{"correo": "luis@example.com", "nombre": "Luis", "telefono": "0987654321"}

	w := request(router, http.MethodPost, "/api/cliente", payload)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	w = request(router, http.MethodPost, "/api/cliente", payload)
	require.Equal(t, http.StatusBadRequest, w.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "El correo electrónico ya se encuentra registrado", body["msg"])
	assert.Equal(t, 1, mailer.count())
}

// TestMantenimientoManualYExport creates an explicit maintenance entry and
// pulls the Excel export.
func TestMantenimientoManualYExport(t *testing.T) {
	router, testDB, mailer := setupTestServer(t, "taller_export")

	w := request(router, http.MethodPost, "/api/cliente", gin.H{
		"correo": "eva@example.com", "nombre": "Eva", "telefono": "0911111111",
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var cliente model.Cliente
	require.NoError(t, testDB.First(&cliente, "correo = ?", "eva@example.com").Error)

	w = request(router, http.MethodPost, "/api/equipo", gin.H{
		"marca": "Epson", "modelo": "L3150", "estado": "Recibido",
		"id_cliente": cliente.ID, "tipo": "impresora",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var equipo model.Equipo
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &equipo))
	assert.Regexp(t, `^IMP[0-9A-F]{6}$`, equipo.ID)

	before := mailer.count()
	w = request(router, http.MethodPost, "/api/mantenimiento", gin.H{
		"id_equipo": equipo.ID, "estado_actual": "En revisión",
		"descripcion": "Limpieza de cabezales", "fecha": "2023-06-27",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	assert.Equal(t, before+1, mailer.count())

	w = request(router, http.MethodGet, "/api/mantenimientos/export", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Disposition"), "mantenimientos.xlsx")
	assert.NotZero(t, w.Body.Len())
}
