package report

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/JuanPabloo890/Hackers-Internet-Backend/internal/model"
	"github.com/JuanPabloo890/Hackers-Internet-Backend/internal/store"
)

func TestMantenimientosExport(t *testing.T) {
	rows := []store.MantenimientoDetalle{
		{
			Mantenimiento: model.Mantenimiento{
				IDUnico:      1,
				IDEquipo:     "LAP3F0A1C",
				Descripcion:  "Cambio de pantalla",
				Fecha:        "2023-06-28",
				EstadoActual: "Reparado",
			},
			Marca:         "Dell",
			Modelo:        "XPS 13",
			NombreCliente: "Juan Pérez",
		},
	}

	b, err := MantenimientosExport(rows)
	require.NoError(t, err)
	require.NotEmpty(t, b)

	f, err := excelize.OpenReader(bytes.NewReader(b))
	require.NoError(t, err)
	defer f.Close()

	header, err := f.GetCellValue("Mantenimientos", "A1")
	require.NoError(t, err)
	assert.Equal(t, "ID Único", header)

	idEquipo, err := f.GetCellValue("Mantenimientos", "B2")
	require.NoError(t, err)
	assert.Equal(t, "LAP3F0A1C", idEquipo)

	fecha, err := f.GetCellValue("Mantenimientos", "H2")
	require.NoError(t, err)
	assert.Equal(t, "2023-06-28", fecha)
}

func TestMantenimientosExportEmpty(t *testing.T) {
	b, err := MantenimientosExport(nil)
	require.NoError(t, err)
	assert.NotEmpty(t, b, "an empty listing still produces a workbook with headers")
}
