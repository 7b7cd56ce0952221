package api

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/JuanPabloo890/Hackers-Internet-Backend/internal/mail"
	"github.com/JuanPabloo890/Hackers-Internet-Backend/internal/model"
	"github.com/JuanPabloo890/Hackers-Internet-Backend/internal/report"
)

type crearMantenimientoRequest struct {
	IDEquipo     string `json:"id_equipo" binding:"required"`
	Descripcion  string `json:"descripcion"`
	Fecha        string `json:"fecha"`
	EstadoActual string `json:"estado_actual" binding:"required"`
}

// CrearMantenimiento godoc
//
//	@Summary	Registra un mantenimiento y notifica por correo al dueño
//	@Tags		mantenimientos
//	@Accept		json
//	@Produce	json
//	@Success	201	{object}	model.Mantenimiento
//	@Router		/mantenimiento [post]
func (h *Handler) CrearMantenimiento(c *gin.Context) {
	var req crearMantenimientoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"msg": "Todos los campos son obligatorios"})
		return
	}

	fecha, err := model.NormalizeFecha(req.Fecha, time.Now())
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"msg": err.Error()})
		return
	}

	// Resolving the device and its owner is a precondition: without them
	// there is nobody to notify and nothing to attach the record to.
	ctx := c.Request.Context()
	det, err := h.store.EquipoByID(ctx, req.IDEquipo)
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

	m := &model.Mantenimiento{
		IDEquipo:     req.IDEquipo,
		Descripcion:  req.Descripcion,
		Fecha:        fecha,
		EstadoActual: req.EstadoActual,
	}
	if err := h.store.CreateMantenimiento(ctx, m); err != nil {
		serverError(c, "creando mantenimiento", err)
		return
	}

	h.mailer.Dispatch(mail.EstadoEquipo(cliente.Correo, m.EstadoActual, m.Descripcion, etiquetaEquipo(&det.Equipo)))

	c.JSON(http.StatusCreated, m)
}

// DetalleMantenimiento godoc
//
//	@Summary	Detalle de un mantenimiento
//	@Tags		mantenimientos
//	@Produce	json
//	@Param		id_unico	path		int	true	"ID único del mantenimiento"
//	@Success	200			{object}	model.Mantenimiento
//	@Router		/mantenimiento/{id_unico} [get]
func (h *Handler) DetalleMantenimiento(c *gin.Context) {
	id, ok := pathID(c, "id_unico")
	if !ok {
		return
	}

	m, err := h.store.MantenimientoByID(c.Request.Context(), id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"msg": "Mantenimiento no encontrado"})
		return
	}
	if err != nil {
		serverError(c, "obteniendo mantenimiento", err)
		return
	}

	c.JSON(http.StatusOK, m)
}

// HistorialEquipo godoc
//
//	@Summary	Historial de mantenimientos de un equipo, del más reciente al más antiguo
//	@Tags		mantenimientos
//	@Produce	json
//	@Param		id_equipo	path		string	true	"ID del equipo"
//	@Success	200			{object}	store.HistorialEquipo
//	@Router		/mantenimiento/equipo/{id_equipo} [get]
func (h *Handler) HistorialEquipo(c *gin.Context) {
	historial, err := h.store.HistorialEquipo(c.Request.Context(), c.Param("id_equipo"))
	if errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"msg": "Equipo no encontrado o no tiene mantenimientos asociados"})
		return
	}
	if err != nil {
		serverError(c, "obteniendo historial del equipo", err)
		return
	}

	c.JSON(http.StatusOK, historial)
}

// ListarMantenimientos godoc
//
//	@Summary	Lista todos los mantenimientos con datos del equipo y del cliente
//	@Tags		mantenimientos
//	@Produce	json
//	@Success	200	{array}	store.MantenimientoDetalle
//	@Router		/mantenimientos [get]
func (h *Handler) ListarMantenimientos(c *gin.Context) {
	list, err := h.store.ListMantenimientos(c.Request.Context())
	if err != nil {
		serverError(c, "listando mantenimientos", err)
		return
	}
	c.JSON(http.StatusOK, list)
}

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// ExportarMantenimientos godoc
//
//	@Summary	Descarga el listado de mantenimientos como hoja de cálculo
//	@Tags		mantenimientos
//	@Produce	application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
//	@Success	200	{file}	binary
//	@Router		/mantenimientos/export [get]
func (h *Handler) ExportarMantenimientos(c *gin.Context) {
	list, err := h.store.ListMantenimientos(c.Request.Context())
	if err != nil {
		serverError(c, "listando mantenimientos", err)
		return
	}

	b, err := report.MantenimientosExport(list)
	if err != nil {
		serverError(c, "generando exportación", err)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="mantenimientos.xlsx"`)
	c.Data(http.StatusOK, xlsxContentType, b)
}

type actualizarMantenimientoRequest struct {
	IDEquipo     string `json:"id_equipo"`
	Descripcion  string `json:"descripcion"`
	Fecha        string `json:"fecha"`
	EstadoActual string `json:"estado_actual"`
}

// ActualizarMantenimiento godoc
//
//	@Summary	Edita un mantenimiento existente
//	@Tags		mantenimientos
//	@Accept		json
//	@Produce	json
//	@Param		id_unico	path		int	true	"ID único del mantenimiento"
//	@Success	200			{object}	model.Mantenimiento
//	@Router		/mantenimiento/{id_unico} [put]
func (h *Handler) ActualizarMantenimiento(c *gin.Context) {
	id, ok := pathID(c, "id_unico")
	if !ok {
		return
	}

	var req actualizarMantenimientoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"msg": "Datos inválidos para actualizar el mantenimiento"})
		return
	}

	ctx := c.Request.Context()
	m, err := h.store.MantenimientoByID(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"msg": "Mantenimiento no encontrado"})
		return
	}
	if err != nil {
		serverError(c, "buscando mantenimiento", err)
		return
	}

	if req.IDEquipo != "" {
		m.IDEquipo = req.IDEquipo
	}
	if req.Descripcion != "" {
		m.Descripcion = req.Descripcion
	}
	if req.EstadoActual != "" {
		m.EstadoActual = req.EstadoActual
	}
	if req.Fecha != "" {
		fecha, err := model.NormalizeFecha(req.Fecha, time.Now())
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"msg": err.Error()})
			return
		}
		m.Fecha = fecha
	}

	if err := h.store.UpdateMantenimiento(ctx, m); err != nil {
		serverError(c, "actualizando mantenimiento", err)
		return
	}

	c.JSON(http.StatusOK, m)
}

// EliminarMantenimiento godoc
//
//	@Summary	Elimina un mantenimiento y devuelve el registro eliminado
//	@Tags		mantenimientos
//	@Produce	json
//	@Param		id_unico	path		int	true	"ID único del mantenimiento"
//	@Success	200			{object}	model.Mantenimiento
//	@Router		/mantenimiento/{id_unico} [delete]
func (h *Handler) EliminarMantenimiento(c *gin.Context) {
	id, ok := pathID(c, "id_unico")
	if !ok {
		return
	}

	m, err := h.store.DeleteMantenimiento(c.Request.Context(), id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"msg": "Mantenimiento no encontrado"})
		return
	}
	if err != nil {
		serverError(c, "eliminando mantenimiento", err)
		return
	}

	c.JSON(http.StatusOK, m)
}
