package model

import "time"

// UserModel: usuarios.
type UserModel struct {
	ID           int       `gorm:"column:id;primaryKey" json:"id"`
	Name         string    `gorm:"column:nombre" json:"nombre"`
	Email        string    `gorm:"column:correo_electronico" json:"correo_electronico"`
	Password     string    `gorm:"column:contrasena" json:"-"`
	Role         string    `gorm:"column:tipo_usuario" json:"tipo_usuario"`
	RegisteredAt time.Time `gorm:"column:fecha_registro;autoCreateTime" json:"fecha_registro"`
}

func (UserModel) TableName() string {
	return "usuarios"
}

// EvaluatorModel: evaluadores, one per evaluator user.
type EvaluatorModel struct {
	ID           int    `gorm:"column:id;primaryKey" json:"id"`
	UserID       int    `gorm:"column:usuario_id" json:"usuario_id"`
	Code         string `gorm:"column:codigo" json:"codigo"`
	Kind         string `gorm:"column:tipo" json:"tipo"`
	DocumentType string `gorm:"column:tipo_documento" json:"tipo_documento"`
	Name         string `gorm:"column:nombre" json:"nombre"`
}

func (EvaluatorModel) TableName() string {
	return "evaluadores"
}

// ChildModel: ninos, one per child user.
type ChildModel struct {
	ID     int    `gorm:"column:id;primaryKey" json:"id"`
	UserID int    `gorm:"column:usuario_id" json:"usuario_id"`
	Age    int    `gorm:"column:edad" json:"edad"`
	Grade  int    `gorm:"column:grado" json:"grado"`
	School string `gorm:"column:colegio" json:"colegio"`
	Shift  string `gorm:"column:jornada" json:"jornada"`
}

func (ChildModel) TableName() string {
	return "ninos"
}
