package storage

import "time"

// SchemeModel is the GORM model for schemes table
type SchemeModel struct {
	CreatedAt time.Time
	Name      string `gorm:"primaryKey"`
	UpdatedAt time.Time
}

// TableName specifies the table name for GORM
func (SchemeModel) TableName() string { return "schemes" }

// SchemeBindingModel is one bound sequence. Position orders the bindings of a
// scheme the same way the INI keys are numbered.
type SchemeBindingModel struct {
	Action     string `gorm:"not null"`
	ID         uint   `gorm:"primaryKey;autoIncrement"`
	Position   int    `gorm:"not null;default:0;index:idx_scheme_position,priority:2"`
	SchemeName string `gorm:"not null;index:idx_scheme_position,priority:1"`
	Sequence   string `gorm:"not null"`
}

// TableName specifies the table name for GORM
func (SchemeBindingModel) TableName() string { return "scheme_bindings" }

// SchemeMetaModel holds key/value metadata such as the writing version
type SchemeMetaModel struct {
	Key   string `gorm:"primaryKey"`
	Value string `gorm:"not null;default:''"`
}

// TableName specifies the table name for GORM
func (SchemeMetaModel) TableName() string { return "scheme_meta" }

const metaKeyVersion = "app_version"
