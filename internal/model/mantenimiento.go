package model

import (
	"fmt"
	"time"
)

// FechaLayout is the calendar-day representation every maintenance date is
// normalized to. Time-of-day is always discarded before persisting, so
// lexicographic order on fecha matches chronological order.
const FechaLayout = "2006-01-02"

// Mantenimiento is one entry in a device's maintenance history. Rows are
// written explicitly through the maintenance endpoints and implicitly as a
// snapshot on every equipo create and update.
type Mantenimiento struct {
	IDUnico      int64  `gorm:"column:id_unico;primaryKey;autoIncrement" json:"id_unico"`
	IDEquipo     string `gorm:"column:id_equipo;index;size:16;not null" json:"id_equipo"`
	Descripcion  string `json:"descripcion"`
	Fecha        string `gorm:"size:10;not null" json:"fecha"`
	EstadoActual string `gorm:"column:estado_actual;size:64" json:"estado_actual"`
}

// NormalizeFecha reduces a client-supplied date to FechaLayout. An empty
// input means "today". Accepted inputs are a plain date, RFC 3339, or the
// common "2006-01-02 15:04:05" form.
func NormalizeFecha(s string, now time.Time) (string, error) {
	if s == "" {
		return now.Format(FechaLayout), nil
	}
	for _, layout := range []string{FechaLayout, time.RFC3339, "2006-01-02 15:04:05"} {
		if t, err := time.Parse(layout, s); err == nil {
			return t.Format(FechaLayout), nil
		}
	}
	return "", fmt.Errorf("fecha %q no tiene un formato de fecha válido", s)
}
