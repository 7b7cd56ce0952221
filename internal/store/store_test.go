package store

import (
	"context"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/JuanPabloo890/Hackers-Internet-Backend/internal/model"
)

// A helper function to create a mock database connection.
func newTestDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)

	gormDB, err := gorm.Open(postgres.New(postgres.Config{
		Conn: db,
	}), &gorm.Config{TranslateError: true})
	require.NoError(t, err)

	return gormDB, mock
}

func TestGormStore_CreateEquipoDualWrite(t *testing.T) {
	gormDB, mock := newTestDB(t)
	s := NewGormStore(gormDB)

	// One transaction: the equipo row and its initial maintenance snapshot
	// commit together or not at all.
	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO "equipos"`)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO "mantenimientos"`)).
		WillReturnRows(sqlmock.NewRows([]string{"id_unico"}).AddRow(1))
	mock.ExpectCommit()

	eq := &model.Equipo{
		Marca:         "HP",
		Modelo:        "LaserJet",
		Estado:        "En mantenimiento",
		IDCliente:     1,
		Observaciones: "No imprime",
	}
	err := s.CreateEquipo(context.Background(), eq, "IMP")
	require.NoError(t, err)

	assert.Regexp(t, `^IMP[0-9A-F]{6}$`, eq.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGormStore_CreateEquipoRetriesOnceOnCollision(t *testing.T) {
	gormDB, mock := newTestDB(t)
	s := NewGormStore(gormDB)

	// First attempt hits the primary-key backstop and rolls back.
	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO "equipos"`)).
		WillReturnError(&pgconn.PgError{Code: "23505"})
	mock.ExpectRollback()

	// Second attempt with a fresh id goes through.
	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO "equipos"`)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO "mantenimientos"`)).
		WillReturnRows(sqlmock.NewRows([]string{"id_unico"}).AddRow(1))
	mock.ExpectCommit()

	eq := &model.Equipo{Marca: "Dell", Modelo: "XPS", IDCliente: 2}
	err := s.CreateEquipo(context.Background(), eq, "LAP")
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGormStore_CreateEquipoGivesUpAfterSecondCollision(t *testing.T) {
	gormDB, mock := newTestDB(t)
	s := NewGormStore(gormDB)

	for i := 0; i < 2; i++ {
		mock.ExpectBegin()
		mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO "equipos"`)).
			WillReturnError(&pgconn.PgError{Code: "23505"})
		mock.ExpectRollback()
	}

	eq := &model.Equipo{Marca: "Dell", Modelo: "XPS", IDCliente: 2}
	err := s.CreateEquipo(context.Background(), eq, "LAP")
	assert.ErrorIs(t, err, gorm.ErrDuplicatedKey)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGormStore_DeleteClienteCascade(t *testing.T) {
	gormDB, mock := newTestDB(t)
	s := NewGormStore(gormDB)

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "clientes"`)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "correo", "nombre", "telefono", "password"}).
			AddRow(3, "juan@example.com", "Juan Pérez", "0987654321", "hash"))
	mock.ExpectExec(`DELETE FROM mantenimientos WHERE id_equipo IN \(SELECT id FROM equipos WHERE id_cliente = \$1\)`).
		WithArgs(int64(3)).
		WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM "equipos" WHERE id_cliente = $1`)).
		WithArgs(int64(3)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM "clientes" WHERE "clientes"."id" = $1`)).
		WithArgs(int64(3)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err := s.DeleteCliente(context.Background(), 3)
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGormStore_DeleteClienteNotFoundRollsBack(t *testing.T) {
	gormDB, mock := newTestDB(t)
	s := NewGormStore(gormDB)

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "clientes"`)).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))
	mock.ExpectRollback()

	err := s.DeleteCliente(context.Background(), 99)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGormStore_HistorialEquipo(t *testing.T) {
	gormDB, mock := newTestDB(t)
	s := NewGormStore(gormDB)

	cols := []string{"id_equipo", "estado_actual", "descripcion", "fecha", "marca", "modelo", "nombre_cliente", "telefono_cliente"}
	mock.ExpectQuery(`SELECT .* FROM "mantenimientos" JOIN equipos .* JOIN clientes .* ORDER BY mantenimientos\.fecha DESC`).
		WithArgs("LAP3F0A1C").
		WillReturnRows(sqlmock.NewRows(cols).
			AddRow("LAP3F0A1C", "Reparado", "Cambio de pantalla", "2023-06-28", "Dell", "XPS 13", "Juan Pérez", "0987654321").
			AddRow("LAP3F0A1C", "En mantenimiento", "Pantalla rota", "2023-06-27", "Dell", "XPS 13", "Juan Pérez", "0987654321"))

	historial, err := s.HistorialEquipo(context.Background(), "LAP3F0A1C")
	require.NoError(t, err)

	assert.Equal(t, "LAP3F0A1C", historial.IDEquipo)
	assert.Equal(t, "Dell", historial.Marca)
	assert.Equal(t, "XPS 13", historial.Modelo)
	assert.Equal(t, "Juan Pérez", historial.NombreCliente)
	assert.Equal(t, "0987654321", historial.TelefonoCliente)

	require.Len(t, historial.Registros, 2)
	assert.Equal(t, "2023-06-28", historial.Registros[0].Fecha, "most recent entry comes first")
	assert.Equal(t, "Reparado", historial.Registros[0].EstadoActual)
	assert.Equal(t, "2023-06-27", historial.Registros[1].Fecha)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGormStore_HistorialEquipoEmptyIsNotFound(t *testing.T) {
	gormDB, mock := newTestDB(t)
	s := NewGormStore(gormDB)

	mock.ExpectQuery(`SELECT .* FROM "mantenimientos"`).
		WithArgs("EQU000000").
		WillReturnRows(sqlmock.NewRows([]string{"id_equipo"}))

	_, err := s.HistorialEquipo(context.Background(), "EQU000000")
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}
