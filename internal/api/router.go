package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/patrickmn/go-cache"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"golang.org/x/time/rate"

	"github.com/JuanPabloo890/Hackers-Internet-Backend/config"
	"github.com/JuanPabloo890/Hackers-Internet-Backend/internal/mw"
	"github.com/JuanPabloo890/Hackers-Internet-Backend/internal/store"
)

// NewRouter creates and configures a new Gin router.
func NewRouter(s store.Store, mailer Mailer, cfg *config.Config) *gin.Engine {
	r := gin.Default()

	handler := NewHandler(s, mailer, &cfg.Auth)

	rateLimiter := mw.RateLimiter(rate.Limit(cfg.Server.RateLimitPerSec), cfg.Server.RateLimitBurst)

	cacheTTL := time.Duration(cfg.Server.CacheTTLSeconds) * time.Second
	cacheStore := cache.New(cacheTTL, 2*cacheTTL)
	caching := mw.Cache(cacheStore, cacheTTL)

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := r.Group("/api")
	api.Use(rateLimiter)
	{
		// Clientes
		api.POST("/cliente/login", handler.LoginCliente)
		api.POST("/cliente", handler.RegistrarCliente)
		api.PUT("/cliente/:id", handler.ActualizarCliente)
		api.GET("/cliente/:id", handler.DetalleCliente)
		api.DELETE("/cliente/:id", handler.EliminarCliente)
		api.GET("/clientes", caching, handler.ListarClientes)

		// Equipos
		api.POST("/equipo", handler.RegistrarEquipo)
		api.PUT("/equipo/:id", handler.ActualizarEquipo)
		api.DELETE("/equipo/:id", handler.EliminarEquipo)
		api.GET("/equipo/:id", handler.DetalleEquipo)
		api.GET("/equipos", caching, handler.ListarEquipos)
		api.GET("/equipos/estado/:estado", handler.EquiposPorEstado)
		api.GET("/equipos/marca/:marca", handler.EquiposPorMarca)
		api.GET("/equipos/modelo/:modelo", handler.EquiposPorModelo)
		api.GET("/equipos/cliente/:id_cliente", handler.EquiposPorCliente)
		api.POST("/equipos/:id_equipo/notificar", handler.NotificarEquipo)

		// Mantenimientos
		api.POST("/mantenimiento", handler.CrearMantenimiento)
		api.GET("/mantenimiento/equipo/:id_equipo", handler.HistorialEquipo)
		api.GET("/mantenimiento/:id_unico", handler.DetalleMantenimiento)
		api.PUT("/mantenimiento/:id_unico", handler.ActualizarMantenimiento)
		api.DELETE("/mantenimiento/:id_unico", handler.EliminarMantenimiento)
		api.GET("/mantenimientos", caching, handler.ListarMantenimientos)
		api.GET("/mantenimientos/export", handler.ExportarMantenimientos)

		// Administradores
		api.POST("/admin/login", handler.LoginAdmin)
		api.PUT("/admin/:id", handler.ActualizarAdmin)
		api.POST("/admin/recuperar-password", handler.RecuperarPassword)
	}

	r.NoRoute(func(c *gin.Context) {
		c.String(http.StatusNotFound, "Endpoint no encontrado - 404")
	})

	return r
}
