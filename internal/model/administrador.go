package model

// Administrador is a back-office user. Password recovery replaces the hash
// with the hash of a freshly generated credential that is mailed out.
type Administrador struct {
	ID       int64  `gorm:"primaryKey" json:"id"`
	Correo   string `gorm:"uniqueIndex;size:128;not null" json:"correo"`
	Nombre   string `gorm:"size:128;not null" json:"nombre"`
	Telefono string `gorm:"size:10;not null" json:"telefono"`
	Password string `gorm:"size:128;not null" json:"-"`
}

// TableName keeps the Spanish plural; gorm's inflector would produce
// "administradors".
func (Administrador) TableName() string { return "administradores" }
