package store

import "github.com/JuanPabloo890/Hackers-Internet-Backend/internal/model"

// EquipoDetalle is an equipo joined with its owner's name, the shape the
// detail and list reads return.
type EquipoDetalle struct {
	model.Equipo
	NombreCliente string `json:"nombre_cliente"`
}

// MantenimientoDetalle is a maintenance row joined with device and owner
// attributes, the shape of the flat listing and the Excel export.
type MantenimientoDetalle struct {
	model.Mantenimiento
	Marca         string `json:"marca"`
	Modelo        string `json:"modelo"`
	NombreCliente string `json:"nombre_cliente"`
}

// RegistroMantenimiento is one entry inside a device's grouped history.
type RegistroMantenimiento struct {
	EstadoActual string `json:"estado_actual"`
	Descripcion  string `json:"descripcion"`
	Fecha        string `json:"fecha"`
}

// HistorialEquipo is the per-device maintenance history: device and owner
// attributes denormalized once, plus every maintenance entry newest-first.
type HistorialEquipo struct {
	IDEquipo        string                  `json:"id_equipo"`
	Marca           string                  `json:"marca"`
	Modelo          string                  `json:"modelo"`
	NombreCliente   string                  `json:"nombre_cliente"`
	TelefonoCliente string                  `json:"telefono_cliente"`
	Registros       []RegistroMantenimiento `json:"registros"`
}
