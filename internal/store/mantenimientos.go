package store

import (
	"context"

	"gorm.io/gorm"

	"github.com/JuanPabloo890/Hackers-Internet-Backend/internal/model"
)

func (s *gormStore) CreateMantenimiento(ctx context.Context, m *model.Mantenimiento) error {
	return s.db.WithContext(ctx).Create(m).Error
}

func (s *gormStore) MantenimientoByID(ctx context.Context, idUnico int64) (*model.Mantenimiento, error) {
	var m model.Mantenimiento
	if err := s.db.WithContext(ctx).First(&m, idUnico).Error; err != nil {
		return nil, err
	}
	return &m, nil
}

// historialRow is the flat join the grouped history is assembled from.
type historialRow struct {
	IDEquipo        string
	Marca           string
	Modelo          string
	NombreCliente   string
	TelefonoCliente string
	EstadoActual    string
	Descripcion     string
	Fecha           string
}

// HistorialEquipo returns the device's full maintenance history joined with
// device and owner attributes. All rows share the same equipo, so the
// denormalized fields are taken from the first row; registros come back
// newest-first (fecha is a calendar day, id_unico breaks same-day ties).
// A device with zero history rows yields gorm.ErrRecordNotFound.
func (s *gormStore) HistorialEquipo(ctx context.Context, idEquipo string) (*HistorialEquipo, error) {
	var rows []historialRow
	err := s.db.WithContext(ctx).
		Table("mantenimientos").
		Select("mantenimientos.id_equipo, mantenimientos.estado_actual, mantenimientos.descripcion, mantenimientos.fecha, " +
			"equipos.marca, equipos.modelo, clientes.nombre AS nombre_cliente, clientes.telefono AS telefono_cliente").
		Joins("JOIN equipos ON equipos.id = mantenimientos.id_equipo").
		Joins("JOIN clientes ON clientes.id = equipos.id_cliente").
		Where("mantenimientos.id_equipo = ?", idEquipo).
		Order("mantenimientos.fecha DESC, mantenimientos.id_unico DESC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, gorm.ErrRecordNotFound
	}

	historial := &HistorialEquipo{
		IDEquipo:        rows[0].IDEquipo,
		Marca:           rows[0].Marca,
		Modelo:          rows[0].Modelo,
		NombreCliente:   rows[0].NombreCliente,
		TelefonoCliente: rows[0].TelefonoCliente,
		Registros:       make([]RegistroMantenimiento, 0, len(rows)),
	}
	for _, r := range rows {
		historial.Registros = append(historial.Registros, RegistroMantenimiento{
			EstadoActual: r.EstadoActual,
			Descripcion:  r.Descripcion,
			Fecha:        r.Fecha,
		})
	}
	return historial, nil
}

func (s *gormStore) ListMantenimientos(ctx context.Context) ([]MantenimientoDetalle, error) {
	var list []MantenimientoDetalle
	err := s.db.WithContext(ctx).
		Table("mantenimientos").
		Select("mantenimientos.*, equipos.marca, equipos.modelo, clientes.nombre AS nombre_cliente").
		Joins("JOIN equipos ON equipos.id = mantenimientos.id_equipo").
		Joins("JOIN clientes ON clientes.id = equipos.id_cliente").
		Order("mantenimientos.fecha DESC, mantenimientos.id_unico DESC").
		Scan(&list).Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (s *gormStore) UpdateMantenimiento(ctx context.Context, m *model.Mantenimiento) error {
	return s.db.WithContext(ctx).Save(m).Error
}

func (s *gormStore) DeleteMantenimiento(ctx context.Context, idUnico int64) (*model.Mantenimiento, error) {
	var m model.Mantenimiento
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&m, idUnico).Error; err != nil {
			return err
		}
		return tx.Delete(&model.Mantenimiento{}, idUnico).Error
	})
	if err != nil {
		return nil, err
	}
	return &m, nil
}
