package api

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/JuanPabloo890/Hackers-Internet-Backend/config"
	"github.com/JuanPabloo890/Hackers-Internet-Backend/internal/mail"
	"github.com/JuanPabloo890/Hackers-Internet-Backend/internal/store"
)

// Mailer is the slice of the mail worker pool the handlers need; tests
// substitute a capture fake.
type Mailer interface {
	Dispatch(msg mail.Message)
}

// Handler holds shared dependencies for API handlers.
type Handler struct {
	store  store.Store
	mailer Mailer
	auth   *config.AuthConfig
}

// NewHandler creates a new API handler.
func NewHandler(s store.Store, mailer Mailer, authCfg *config.AuthConfig) *Handler {
	return &Handler{
		store:  s,
		mailer: mailer,
		auth:   authCfg,
	}
}

// serverError logs the underlying cause and answers with the generic
// message; callers never see store internals.
func serverError(c *gin.Context, contexto string, err error) {
	log.Printf("%s: %v", contexto, err)
	c.JSON(http.StatusInternalServerError, gin.H{"msg": "Error en el servidor"})
}
