// Package report builds the Excel downloads offered by the admin surface.
package report

import (
	"bytes"
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/JuanPabloo890/Hackers-Internet-Backend/internal/store"
)

const mantenimientosSheet = "Mantenimientos"

// MantenimientosHeader is the column layout of the maintenance export.
var MantenimientosHeader = []string{
	"ID Único",
	"ID Equipo",
	"Marca",
	"Modelo",
	"Cliente",
	"Estado Actual",
	"Descripción",
	"Fecha",
}

// MantenimientosExport renders the flat joined maintenance listing as an
// xlsx workbook.
func MantenimientosExport(rows []store.MantenimientoDetalle) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", mantenimientosSheet); err != nil {
		return nil, fmt.Errorf("renaming sheet: %w", err)
	}

	for col, title := range MantenimientosHeader {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return nil, err
		}
		if err := f.SetCellValue(mantenimientosSheet, cell, title); err != nil {
			return nil, err
		}
	}

	for i, row := range rows {
		values := []any{
			row.IDUnico,
			row.IDEquipo,
			row.Marca,
			row.Modelo,
			row.NombreCliente,
			row.EstadoActual,
			row.Descripcion,
			row.Fecha,
		}
		for col, v := range values {
			cell, err := excelize.CoordinatesToCellName(col+1, i+2)
			if err != nil {
				return nil, err
			}
			if err := f.SetCellValue(mantenimientosSheet, cell, v); err != nil {
				return nil, err
			}
		}
	}

	var buf bytes.Buffer
	if _, err := f.WriteTo(&buf); err != nil {
		return nil, fmt.Errorf("writing workbook: %w", err)
	}
	return buf.Bytes(), nil
}
