package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/JuanPabloo890/Hackers-Internet-Backend/internal/ident"
	"github.com/JuanPabloo890/Hackers-Internet-Backend/internal/mail"
	"github.com/JuanPabloo890/Hackers-Internet-Backend/internal/model"
)

type registrarEquipoRequest struct {
	Marca         string `json:"marca" binding:"required"`
	Modelo        string `json:"modelo" binding:"required"`
	Estado        string `json:"estado"`
	IDCliente     int64  `json:"id_cliente" binding:"required"`
	Observaciones string `json:"observaciones"`
	Tipo          string `json:"tipo" binding:"required"`
}

// RegistrarEquipo godoc
//
//	@Summary	Registra un equipo y su mantenimiento inicial
//	@Tags		equipos
//	@Accept		json
//	@Produce	json
//	@Success	201	{object}	model.Equipo
//	@Router		/equipo [post]
func (h *Handler) RegistrarEquipo(c *gin.Context) {
	var req registrarEquipoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"msg": "Datos faltantes para registrar el equipo"})
		return
	}

	eq := &model.Equipo{
		Marca:         req.Marca,
		Modelo:        req.Modelo,
		Estado:        req.Estado,
		IDCliente:     req.IDCliente,
		Observaciones: req.Observaciones,
	}
	if err := h.store.CreateEquipo(c.Request.Context(), eq, ident.PrefixForTipo(req.Tipo)); err != nil {
		serverError(c, "registrando equipo", err)
		return
	}

	c.JSON(http.StatusCreated, eq)
}

type actualizarEquipoRequest struct {
	Marca         string `json:"marca"`
	Modelo        string `json:"modelo"`
	Estado        string `json:"estado"`
	IDCliente     int64  `json:"id_cliente"`
	Observaciones string `json:"observaciones"`
}

// ActualizarEquipo godoc
//
//	@Summary	Actualiza un equipo y registra el cambio en su historial
//	@Tags		equipos
//	@Accept		json
//	@Produce	json
//	@Param		id	path		string	true	"ID del equipo"
//	@Success	200	{object}	model.Equipo
//	@Router		/equipo/{id} [put]
func (h *Handler) ActualizarEquipo(c *gin.Context) {
	id := c.Param("id")

	var req actualizarEquipoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"msg": "Datos inválidos para actualizar el equipo"})
		return
	}

	ctx := c.Request.Context()
	det, err := h.store.EquipoByID(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"msg": "Equipo no encontrado"})
		return
	}
	if err != nil {
		serverError(c, "buscando equipo", err)
		return
	}

	eq := det.Equipo
	if req.Marca != "" {
		eq.Marca = req.Marca
	}
	if req.Modelo != "" {
		eq.Modelo = req.Modelo
	}
	if req.Estado != "" {
		eq.Estado = req.Estado
	}
	if req.IDCliente != 0 {
		eq.IDCliente = req.IDCliente
	}
	if req.Observaciones != "" {
		eq.Observaciones = req.Observaciones
	}

	if err := h.store.UpdateEquipo(ctx, &eq); err != nil {
		serverError(c, "actualizando equipo", err)
		return
	}

	c.JSON(http.StatusOK, eq)
}

// EliminarEquipo godoc
//
//	@Summary	Elimina un equipo
//	@Tags		equipos
//	@Produce	json
//	@Param		id	path		string	true	"ID del equipo"
//	@Success	200	{object}	map[string]string
//	@Router		/equipo/{id} [delete]
func (h *Handler) EliminarEquipo(c *gin.Context) {
	_, err := h.store.DeleteEquipo(c.Request.Context(), c.Param("id"))
	if errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"msg": "Equipo no encontrado"})
		return
	}
	if err != nil {
		serverError(c, "eliminando equipo", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"msg": "Equipo eliminado exitosamente"})
}

// DetalleEquipo godoc
//
//	@Summary	Detalle de un equipo con el nombre de su dueño
//	@Tags		equipos
//	@Produce	json
//	@Param		id	path		string	true	"ID del equipo"
//	@Success	200	{object}	store.EquipoDetalle
//	@Router		/equipo/{id} [get]
func (h *Handler) DetalleEquipo(c *gin.Context) {
	det, err := h.store.EquipoByID(c.Request.Context(), c.Param("id"))
	if errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"msg": "Equipo no encontrado"})
		return
	}
	if err != nil {
		serverError(c, "obteniendo equipo", err)
		return
	}

	c.JSON(http.StatusOK, det)
}

// ListarEquipos godoc
//
//	@Summary	Lista todos los equipos con el nombre de su dueño
//	@Tags		equipos
//	@Produce	json
//	@Success	200	{array}	store.EquipoDetalle
//	@Router		/equipos [get]
func (h *Handler) ListarEquipos(c *gin.Context) {
	equipos, err := h.store.ListEquipos(c.Request.Context())
	if err != nil {
		serverError(c, "listando equipos", err)
		return
	}
	c.JSON(http.StatusOK, equipos)
}

// The filtered lookups keep the original API's contract: zero matching
// rows answers 404, not an empty array.

// EquiposPorEstado godoc
//
//	@Summary	Equipos filtrados por estado
//	@Tags		equipos
//	@Produce	json
//	@Param		estado	path	string	true	"Estado"
//	@Success	200		{array}	model.Equipo
//	@Router		/equipos/estado/{estado} [get]
func (h *Handler) EquiposPorEstado(c *gin.Context) {
	equipos, err := h.store.EquiposByEstado(c.Request.Context(), c.Param("estado"))
	h.respondEquipos(c, equipos, err, "Estado de equipos no encontrado")
}

// EquiposPorMarca godoc
//
//	@Summary	Equipos filtrados por marca
//	@Tags		equipos
//	@Produce	json
//	@Param		marca	path	string	true	"Marca"
//	@Success	200		{array}	model.Equipo
//	@Router		/equipos/marca/{marca} [get]
func (h *Handler) EquiposPorMarca(c *gin.Context) {
	equipos, err := h.store.EquiposByMarca(c.Request.Context(), c.Param("marca"))
	h.respondEquipos(c, equipos, err, "Marca de equipos no encontrada")
}

// EquiposPorModelo godoc
//
//	@Summary	Equipos filtrados por modelo
//	@Tags		equipos
//	@Produce	json
//	@Param		modelo	path	string	true	"Modelo"
//	@Success	200		{array}	model.Equipo
//	@Router		/equipos/modelo/{modelo} [get]
func (h *Handler) EquiposPorModelo(c *gin.Context) {
	equipos, err := h.store.EquiposByModelo(c.Request.Context(), c.Param("modelo"))
	h.respondEquipos(c, equipos, err, "Modelo de equipos no encontrado")
}

// EquiposPorCliente godoc
//
//	@Summary	Equipos registrados por un cliente
//	@Tags		equipos
//	@Produce	json
//	@Param		id_cliente	path	int	true	"ID del cliente"
//	@Success	200			{array}	model.Equipo
//	@Router		/equipos/cliente/{id_cliente} [get]
func (h *Handler) EquiposPorCliente(c *gin.Context) {
	id, ok := pathID(c, "id_cliente")
	if !ok {
		return
	}
	equipos, err := h.store.EquiposByCliente(c.Request.Context(), id)
	h.respondEquipos(c, equipos, err, "Cliente no tiene equipos registrados")
}

func (h *Handler) respondEquipos(c *gin.Context, equipos []model.Equipo, err error, vacioMsg string) {
	if err != nil {
		serverError(c, "filtrando equipos", err)
		return
	}
	if len(equipos) == 0 {
		c.JSON(http.StatusNotFound, gin.H{"msg": vacioMsg})
		return
	}
	c.JSON(http.StatusOK, equipos)
}

// NotificarEquipo godoc
//
//	@Summary	Envía al dueño un correo con el estado actual del equipo
//	@Tags		equipos
//	@Produce	json
//	@Param		id_equipo	path		string	true	"ID del equipo"
//	@Success	200			{object}	map[string]string
//	@Router		/equipos/{id_equipo}/notificar [post]
func (h *Handler) NotificarEquipo(c *gin.Context) {
	ctx := c.Request.Context()

	det, err := h.store.EquipoByID(ctx, c.Param("id_equipo"))
	if errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"msg": "Equipo no encontrado"})
		return
	}
	if err != nil {
		serverError(c, "buscando equipo", err)
		return
	}

	cliente, err := h.store.ClienteByID(ctx, det.IDCliente)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"msg": "Cliente no encontrado"})
		return
	}
	if err != nil {
		serverError(c, "buscando dueño del equipo", err)
		return
	}

	h.mailer.Dispatch(mail.EstadoEquipo(cliente.Correo, det.Estado, det.Observaciones, etiquetaEquipo(&det.Equipo)))

	c.JSON(http.StatusOK, gin.H{"msg": "Notificación enviada correctamente al cliente"})
}

// etiquetaEquipo is the human-readable device label used in emails.
func etiquetaEquipo(eq *model.Equipo) string {
	return fmt.Sprintf("%s %s (%s)", eq.Marca, eq.Modelo, eq.ID)
}
