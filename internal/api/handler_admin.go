package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/JuanPabloo890/Hackers-Internet-Backend/internal/auth"
	"github.com/JuanPabloo890/Hackers-Internet-Backend/internal/mail"
	"github.com/JuanPabloo890/Hackers-Internet-Backend/internal/password"
)

// LoginAdmin godoc
//
//	@Summary	Inicio de sesión de un administrador
//	@Tags		admin
//	@Accept		json
//	@Produce	json
//	@Success	200	{object}	loginResponse
//	@Router		/admin/login [post]
func (h *Handler) LoginAdmin(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"msg": "Todos los campos son obligatorios"})
		return
	}

	admin, err := h.store.AdminByCorreo(c.Request.Context(), req.Correo)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"msg": "Administrador no encontrado"})
		return
	}
	if err != nil {
		serverError(c, "login del administrador", err)
		return
	}

	if !password.Verify(req.Password, admin.Password) {
		c.JSON(http.StatusBadRequest, gin.H{"msg": "Contraseña incorrecta"})
		return
	}

	token, err := auth.GenerateAccessToken(admin.ID, auth.RoleAdmin, h.auth.JWTSecret, h.auth.TokenTTLMinutes)
	if err != nil {
		serverError(c, "emitiendo token del administrador", err)
		return
	}

	c.JSON(http.StatusOK, loginResponse{
		Nombre:   admin.Nombre,
		Correo:   admin.Correo,
		Telefono: admin.Telefono,
		ID:       admin.ID,
		Token:    token,
	})
}

type actualizarAdminRequest struct {
	Correo   string `json:"correo" binding:"required"`
	Nombre   string `json:"nombre" binding:"required"`
	Telefono string `json:"telefono" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// ActualizarAdmin godoc
//
//	@Summary	Actualiza el perfil y la contraseña de un administrador
//	@Tags		admin
//	@Accept		json
//	@Produce	json
//	@Param		id	path		int	true	"ID del administrador"
//	@Success	200	{object}	model.Administrador
//	@Router		/admin/{id} [put]
func (h *Handler) ActualizarAdmin(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req actualizarAdminRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"msg": "Todos los campos son obligatorios"})
		return
	}

	ctx := c.Request.Context()
	admin, err := h.store.AdminByID(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"msg": "Administrador no encontrado"})
		return
	}
	if err != nil {
		serverError(c, "buscando administrador", err)
		return
	}

	hash, err := password.Hash(req.Password)
	if err != nil {
		serverError(c, "cifrando contraseña", err)
		return
	}

	admin.Correo = req.Correo
	admin.Nombre = req.Nombre
	admin.Telefono = req.Telefono
	admin.Password = hash

	if err := h.store.UpdateAdmin(ctx, admin); err != nil {
		serverError(c, "actualizando administrador", err)
		return
	}

	c.JSON(http.StatusOK, admin)
}

type recuperarPasswordRequest struct {
	Correo string `json:"correo" binding:"required"`
}

// RecuperarPassword godoc
//
//	@Summary	Genera una contraseña temporal y la envía por correo
//	@Tags		admin
//	@Accept		json
//	@Produce	json
//	@Success	200	{object}	map[string]string
//	@Router		/admin/recuperar-password [post]
func (h *Handler) RecuperarPassword(c *gin.Context) {
	var req recuperarPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"msg": "Lo sentimos, debes llenar todos los campos"})
		return
	}

	ctx := c.Request.Context()
	admin, err := h.store.AdminByCorreo(ctx, req.Correo)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"msg": "Lo sentimos, el usuario no se encuentra registrado"})
		return
	}
	if err != nil {
		serverError(c, "buscando administrador", err)
		return
	}

	plain, err := password.GenerateRandom()
	if err != nil {
		serverError(c, "generando contraseña temporal", err)
		return
	}
	hash, err := password.Hash(plain)
	if err != nil {
		serverError(c, "cifrando contraseña temporal", err)
		return
	}

	admin.Password = hash
	if err := h.store.UpdateAdmin(ctx, admin); err != nil {
		serverError(c, "guardando contraseña temporal", err)
		return
	}

	// The plaintext goes out only after the new hash is stored; the old
	// credential is already invalid by the time the mail leaves.
	h.mailer.Dispatch(mail.RecuperarPassword(admin.Correo, plain))

	c.JSON(http.StatusOK, gin.H{"msg": "Revisa tu correo electrónico para obtener tu nueva contraseña temporal"})
}
