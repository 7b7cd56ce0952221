package model

// Equipo is a device handed in for repair or maintenance. Its ID is not
// store-assigned: it is a short human-readable code of the form
// PREFIX + 6 uppercase hex characters (e.g. LAP3F0A1C), where the prefix
// comes from the device type given at registration.
type Equipo struct {
	ID            string `gorm:"primaryKey;size:16" json:"id"`
	Marca         string `gorm:"size:128" json:"marca"`
	Modelo        string `gorm:"size:128" json:"modelo"`
	Estado        string `gorm:"size:64" json:"estado"`
	IDCliente     int64  `gorm:"column:id_cliente;index;not null" json:"id_cliente"`
	Observaciones string `json:"observaciones"`
}
