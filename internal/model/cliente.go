package model

// Cliente is a customer of the shop and the owner of zero or more equipos.
// The stored password is a bcrypt hash of a generated credential that is
// mailed to the customer on registration; it never leaves the API.
type Cliente struct {
	ID       int64  `gorm:"primaryKey" json:"id"`
	Correo   string `gorm:"uniqueIndex;size:128;not null" json:"correo"`
	Nombre   string `gorm:"size:128;not null" json:"nombre"`
	Telefono string `gorm:"size:10;not null" json:"telefono"`
	Password string `gorm:"size:128;not null" json:"-"`
}
