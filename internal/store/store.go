// Package store is the data-access layer. A single Store interface fronts a
// gorm-backed implementation so handlers and tests can swap the database
// for sqlmock or in-memory sqlite. Multi-statement writes (equipo +
// maintenance snapshot, cascade deletes, password resets) always run inside
// one transaction: callers never observe a half-applied state.
package store

import (
	"context"

	"gorm.io/gorm"

	"github.com/JuanPabloo890/Hackers-Internet-Backend/internal/model"
)

// Store defines the interface for all database operations. Lookups that
// miss return gorm.ErrRecordNotFound; filtered lookups return empty slices
// and leave the zero-rows-is-404 convention to the handlers.
type Store interface {
	DB() *gorm.DB

	// Clientes
	CreateCliente(ctx context.Context, c *model.Cliente) error
	ClienteByID(ctx context.Context, id int64) (*model.Cliente, error)
	ClienteByCorreo(ctx context.Context, correo string) (*model.Cliente, error)
	UpdateCliente(ctx context.Context, c *model.Cliente) error
	DeleteCliente(ctx context.Context, id int64) error
	ListClientes(ctx context.Context) ([]model.Cliente, error)

	// Equipos
	CreateEquipo(ctx context.Context, eq *model.Equipo, prefix string) error
	EquipoByID(ctx context.Context, id string) (*EquipoDetalle, error)
	UpdateEquipo(ctx context.Context, eq *model.Equipo) error
	DeleteEquipo(ctx context.Context, id string) (*model.Equipo, error)
	ListEquipos(ctx context.Context) ([]EquipoDetalle, error)
	EquiposByEstado(ctx context.Context, estado string) ([]model.Equipo, error)
	EquiposByMarca(ctx context.Context, marca string) ([]model.Equipo, error)
	EquiposByModelo(ctx context.Context, modelo string) ([]model.Equipo, error)
	EquiposByCliente(ctx context.Context, idCliente int64) ([]model.Equipo, error)

	// Mantenimientos
	CreateMantenimiento(ctx context.Context, m *model.Mantenimiento) error
	MantenimientoByID(ctx context.Context, idUnico int64) (*model.Mantenimiento, error)
	HistorialEquipo(ctx context.Context, idEquipo string) (*HistorialEquipo, error)
	ListMantenimientos(ctx context.Context) ([]MantenimientoDetalle, error)
	UpdateMantenimiento(ctx context.Context, m *model.Mantenimiento) error
	DeleteMantenimiento(ctx context.Context, idUnico int64) (*model.Mantenimiento, error)

	// Administradores
	AdminByID(ctx context.Context, id int64) (*model.Administrador, error)
	AdminByCorreo(ctx context.Context, correo string) (*model.Administrador, error)
	UpdateAdmin(ctx context.Context, a *model.Administrador) error
}

// gormStore implements the Store interface using GORM.
type gormStore struct {
	db *gorm.DB
}

// NewGormStore creates a new GORM-backed store.
func NewGormStore(db *gorm.DB) Store {
	return &gormStore{db: db}
}

func (s *gormStore) DB() *gorm.DB {
	return s.db
}

func (s *gormStore) CreateCliente(ctx context.Context, c *model.Cliente) error {
	return s.db.WithContext(ctx).Create(c).Error
}

func (s *gormStore) ClienteByID(ctx context.Context, id int64) (*model.Cliente, error) {
	var c model.Cliente
	if err := s.db.WithContext(ctx).First(&c, id).Error; err != nil {
		return nil, err
	}
	return &c, nil
}

func (s *gormStore) ClienteByCorreo(ctx context.Context, correo string) (*model.Cliente, error) {
	var c model.Cliente
	if err := s.db.WithContext(ctx).First(&c, "correo = ?", correo).Error; err != nil {
		return nil, err
	}
	return &c, nil
}

func (s *gormStore) UpdateCliente(ctx context.Context, c *model.Cliente) error {
	return s.db.WithContext(ctx).Save(c).Error
}

// DeleteCliente removes a cliente together with its equipos and their
// maintenance history in one transaction.
func (s *gormStore) DeleteCliente(ctx context.Context, id int64) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var cli model.Cliente
		if err := tx.First(&cli, id).Error; err != nil {
			return err
		}
		if err := tx.Exec(
			"DELETE FROM mantenimientos WHERE id_equipo IN (SELECT id FROM equipos WHERE id_cliente = ?)", id,
		).Error; err != nil {
			return err
		}
		if err := tx.Where("id_cliente = ?", id).Delete(&model.Equipo{}).Error; err != nil {
			return err
		}
		return tx.Delete(&model.Cliente{}, id).Error
	})
}

func (s *gormStore) ListClientes(ctx context.Context) ([]model.Cliente, error) {
	var clientes []model.Cliente
	if err := s.db.WithContext(ctx).Order("id").Find(&clientes).Error; err != nil {
		return nil, err
	}
	return clientes, nil
}

func (s *gormStore) AdminByID(ctx context.Context, id int64) (*model.Administrador, error) {
	var a model.Administrador
	if err := s.db.WithContext(ctx).First(&a, id).Error; err != nil {
		return nil, err
	}
	return &a, nil
}

func (s *gormStore) AdminByCorreo(ctx context.Context, correo string) (*model.Administrador, error) {
	var a model.Administrador
	if err := s.db.WithContext(ctx).First(&a, "correo = ?", correo).Error; err != nil {
		return nil, err
	}
	return &a, nil
}

func (s *gormStore) UpdateAdmin(ctx context.Context, a *model.Administrador) error {
	return s.db.WithContext(ctx).Save(a).Error
}
