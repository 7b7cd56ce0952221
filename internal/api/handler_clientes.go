package api

import (
	"errors"
	"net/http"
	"regexp"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/JuanPabloo890/Hackers-Internet-Backend/internal/auth"
	"github.com/JuanPabloo890/Hackers-Internet-Backend/internal/mail"
	"github.com/JuanPabloo890/Hackers-Internet-Backend/internal/model"
	"github.com/JuanPabloo890/Hackers-Internet-Backend/internal/password"
)

var telefonoValido = regexp.MustCompile(`^\d{10}$`)

// pathID parses a numeric :id path parameter. A non-numeric id is a 400,
// matching the original API's message.
func pathID(c *gin.Context, param string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(param), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"msg": "ID inválido. Debe ser un número entero."})
		return 0, false
	}
	return id, true
}

type loginRequest struct {
	Correo   string `json:"correo" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// loginResponse echoes the profile the original API returned, plus an
// access token.
type loginResponse struct {
	Nombre   string `json:"nombre"`
	Correo   string `json:"correo"`
	Telefono string `json:"telefono"`
	ID       int64  `json:"id"`
	Token    string `json:"token"`
}

// LoginCliente godoc
//
//	@Summary	Inicio de sesión de un cliente
//	@Tags		clientes
//	@Accept		json
//	@Produce	json
//	@Success	200	{object}	loginResponse
//	@Router		/cliente/login [post]
func (h *Handler) LoginCliente(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"msg": "Todos los campos son obligatorios"})
		return
	}

	cliente, err := h.store.ClienteByCorreo(c.Request.Context(), req.Correo)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"msg": "Usuario no encontrado"})
		return
	}
	if err != nil {
		serverError(c, "login del cliente", err)
		return
	}

	if !password.Verify(req.Password, cliente.Password) {
		c.JSON(http.StatusBadRequest, gin.H{"msg": "Contraseña incorrecta"})
		return
	}

	token, err := auth.GenerateAccessToken(cliente.ID, auth.RoleCliente, h.auth.JWTSecret, h.auth.TokenTTLMinutes)
	if err != nil {
		serverError(c, "emitiendo token del cliente", err)
		return
	}

	c.JSON(http.StatusOK, loginResponse{
		Nombre:   cliente.Nombre,
		Correo:   cliente.Correo,
		Telefono: cliente.Telefono,
		ID:       cliente.ID,
		Token:    token,
	})
}

type registrarClienteRequest struct {
	Correo   string `json:"correo" binding:"required"`
	Nombre   string `json:"nombre" binding:"required"`
	Telefono string `json:"telefono" binding:"required"`
}

// RegistrarCliente godoc
//
//	@Summary	Registra un cliente y le envía su contraseña por correo
//	@Tags		clientes
//	@Accept		json
//	@Produce	json
//	@Success	200	{object}	map[string]string
//	@Router		/cliente [post]
func (h *Handler) RegistrarCliente(c *gin.Context) {
	var req registrarClienteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"msg": "Todos los campos son obligatorios"})
		return
	}
	if !telefonoValido.MatchString(req.Telefono) {
		c.JSON(http.StatusBadRequest, gin.H{"msg": "El número de teléfono debe contener exactamente 10 dígitos."})
		return
	}

	ctx := c.Request.Context()
	if _, err := h.store.ClienteByCorreo(ctx, req.Correo); err == nil {
		c.JSON(http.StatusBadRequest, gin.H{"msg": "El correo electrónico ya se encuentra registrado"})
		return
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		serverError(c, "verificando correo del cliente", err)
		return
	}

	plain, err := password.GenerateRandom()
	if err != nil {
		serverError(c, "generando contraseña", err)
		return
	}
	hash, err := password.Hash(plain)
	if err != nil {
		serverError(c, "cifrando contraseña", err)
		return
	}

	cliente := &model.Cliente{
		Correo:   req.Correo,
		Nombre:   req.Nombre,
		Telefono: req.Telefono,
		Password: hash,
	}
	if err := h.store.CreateCliente(ctx, cliente); err != nil {
		serverError(c, "registrando cliente", err)
		return
	}

	// Mail goes out only once the row is committed.
	h.mailer.Dispatch(mail.Credenciales(cliente.Correo, plain))

	c.JSON(http.StatusOK, gin.H{"msg": "Registro exitoso del cliente y correo con la contraseña enviado correctamente."})
}

// ActualizarCliente godoc
//
//	@Summary	Actualiza un cliente; si cambia el correo se genera y envía una nueva contraseña
//	@Tags		clientes
//	@Accept		json
//	@Produce	json
//	@Param		id	path		int	true	"ID del cliente"
//	@Success	200	{object}	model.Cliente
//	@Router		/cliente/{id} [put]
func (h *Handler) ActualizarCliente(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req registrarClienteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"msg": "Todos los campos son obligatorios"})
		return
	}
	if !telefonoValido.MatchString(req.Telefono) {
		c.JSON(http.StatusBadRequest, gin.H{"msg": "El número de teléfono debe contener exactamente 10 dígitos."})
		return
	}

	ctx := c.Request.Context()
	cliente, err := h.store.ClienteByID(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"msg": "Cliente no encontrado"})
		return
	}
	if err != nil {
		serverError(c, "buscando cliente", err)
		return
	}

	cliente.Nombre = req.Nombre
	cliente.Telefono = req.Telefono

	// An email change invalidates the old credential: a fresh password is
	// stored and sent to the new address.
	var nuevaClave string
	if req.Correo != cliente.Correo {
		plain, err := password.GenerateRandom()
		if err != nil {
			serverError(c, "generando contraseña", err)
			return
		}
		hash, err := password.Hash(plain)
		if err != nil {
			serverError(c, "cifrando contraseña", err)
			return
		}
		cliente.Correo = req.Correo
		cliente.Password = hash
		nuevaClave = plain
	}

	if err := h.store.UpdateCliente(ctx, cliente); err != nil {
		serverError(c, "actualizando cliente", err)
		return
	}

	if nuevaClave != "" {
		h.mailer.Dispatch(mail.Credenciales(cliente.Correo, nuevaClave))
	}

	c.JSON(http.StatusOK, cliente)
}

// EliminarCliente godoc
//
//	@Summary	Elimina un cliente junto con sus equipos y su historial
//	@Tags		clientes
//	@Produce	json
//	@Param		id	path		int	true	"ID del cliente"
//	@Success	200	{object}	map[string]string
//	@Router		/cliente/{id} [delete]
func (h *Handler) EliminarCliente(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	err := h.store.DeleteCliente(c.Request.Context(), id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"msg": "Cliente no encontrado"})
		return
	}
	if err != nil {
		serverError(c, "eliminando cliente", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"msg": "Cliente eliminado exitosamente"})
}

// DetalleCliente godoc
//
//	@Summary	Detalle de un cliente
//	@Tags		clientes
//	@Produce	json
//	@Param		id	path		int	true	"ID del cliente"
//	@Success	200	{object}	model.Cliente
//	@Router		/cliente/{id} [get]
func (h *Handler) DetalleCliente(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	cliente, err := h.store.ClienteByID(c.Request.Context(), id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"msg": "Cliente no encontrado"})
		return
	}
	if err != nil {
		serverError(c, "obteniendo cliente", err)
		return
	}

	c.JSON(http.StatusOK, cliente)
}

// ListarClientes godoc
//
//	@Summary	Lista todos los clientes
//	@Tags		clientes
//	@Produce	json
//	@Success	200	{array}	model.Cliente
//	@Router		/clientes [get]
func (h *Handler) ListarClientes(c *gin.Context) {
	clientes, err := h.store.ListClientes(c.Request.Context())
	if err != nil {
		serverError(c, "listando clientes", err)
		return
	}
	c.JSON(http.StatusOK, clientes)
}
