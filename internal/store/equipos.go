package store

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/JuanPabloo890/Hackers-Internet-Backend/internal/ident"
	"github.com/JuanPabloo890/Hackers-Internet-Backend/internal/model"
)

// CreateEquipo assigns a generated id to eq and inserts it together with
// the initial maintenance snapshot in one transaction. The generated id has
// 24 bits of entropy, so a primary-key collision is possible; on
// a duplicate-key error the insert is retried once with a fresh id before
// the error is surfaced.
func (s *gormStore) CreateEquipo(ctx context.Context, eq *model.Equipo, prefix string) error {
	var err error
	for attempt := 0; attempt < 2; attempt++ {
		eq.ID, err = ident.Generate(prefix)
		if err != nil {
			return err
		}
		err = s.insertEquipoConHistorial(ctx, eq)
		if !errors.Is(err, gorm.ErrDuplicatedKey) {
			return err
		}
	}
	return err
}

func (s *gormStore) insertEquipoConHistorial(ctx context.Context, eq *model.Equipo) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(eq).Error; err != nil {
			return err
		}
		return tx.Create(snapshotFor(eq)).Error
	})
}

// UpdateEquipo saves the mutated row and appends a maintenance snapshot
// reflecting the new estado/observaciones, atomically.
func (s *gormStore) UpdateEquipo(ctx context.Context, eq *model.Equipo) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(eq).Error; err != nil {
			return err
		}
		return tx.Create(snapshotFor(eq)).Error
	})
}

// snapshotFor captures the equipo's current estado and observaciones as a
// maintenance history entry dated today.
func snapshotFor(eq *model.Equipo) *model.Mantenimiento {
	return &model.Mantenimiento{
		IDEquipo:     eq.ID,
		Descripcion:  eq.Observaciones,
		Fecha:        time.Now().Format(model.FechaLayout),
		EstadoActual: eq.Estado,
	}
}

func (s *gormStore) EquipoByID(ctx context.Context, id string) (*EquipoDetalle, error) {
	var det EquipoDetalle
	err := s.db.WithContext(ctx).
		Table("equipos").
		Select("equipos.*, clientes.nombre AS nombre_cliente").
		Joins("JOIN clientes ON clientes.id = equipos.id_cliente").
		Where("equipos.id = ?", id).
		Take(&det).Error
	if err != nil {
		return nil, err
	}
	return &det, nil
}

func (s *gormStore) DeleteEquipo(ctx context.Context, id string) (*model.Equipo, error) {
	var eq model.Equipo
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&eq, "id = ?", id).Error; err != nil {
			return err
		}
		return tx.Delete(&model.Equipo{}, "id = ?", id).Error
	})
	if err != nil {
		return nil, err
	}
	return &eq, nil
}

func (s *gormStore) ListEquipos(ctx context.Context) ([]EquipoDetalle, error) {
	var equipos []EquipoDetalle
	err := s.db.WithContext(ctx).
		Table("equipos").
		Select("equipos.*, clientes.nombre AS nombre_cliente").
		Joins("JOIN clientes ON clientes.id = equipos.id_cliente").
		Order("equipos.id").
		Scan(&equipos).Error
	if err != nil {
		return nil, err
	}
	return equipos, nil
}

// The filtered lookups match case-insensitively but exactly, mirroring the
// LOWER(column) = LOWER(value) queries of the original SQL.

func (s *gormStore) EquiposByEstado(ctx context.Context, estado string) ([]model.Equipo, error) {
	return s.equiposWhere(ctx, "LOWER(estado) = LOWER(?)", estado)
}

func (s *gormStore) EquiposByMarca(ctx context.Context, marca string) ([]model.Equipo, error) {
	return s.equiposWhere(ctx, "LOWER(marca) = LOWER(?)", marca)
}

func (s *gormStore) EquiposByModelo(ctx context.Context, modelo string) ([]model.Equipo, error) {
	return s.equiposWhere(ctx, "LOWER(modelo) = LOWER(?)", modelo)
}

func (s *gormStore) EquiposByCliente(ctx context.Context, idCliente int64) ([]model.Equipo, error) {
	return s.equiposWhere(ctx, "id_cliente = ?", idCliente)
}

func (s *gormStore) equiposWhere(ctx context.Context, query string, arg any) ([]model.Equipo, error) {
	var equipos []model.Equipo
	if err := s.db.WithContext(ctx).Where(query, arg).Order("id").Find(&equipos).Error; err != nil {
		return nil, err
	}
	return equipos, nil
}
