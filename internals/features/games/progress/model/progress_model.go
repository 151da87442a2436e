package model

import "time"

// ProgressModel: progreso_juego, one row per (usuario, juego, nivel).
type ProgressModel struct {
	ID        int       `gorm:"column:id;primaryKey" json:"id"`
	UserID    int       `gorm:"column:usuario_id" json:"usuario_id"`
	GameID    int       `gorm:"column:juego_id" json:"juego_id"`
	LevelID   int       `gorm:"column:nivel_id" json:"nivel_id"`
	Score     int       `gorm:"column:puntuacion" json:"puntuacion"`
	Time      int       `gorm:"column:tiempo" json:"tiempo"`
	Correct   int       `gorm:"column:aciertos" json:"aciertos"`
	Wrong     int       `gorm:"column:fallos" json:"fallos"`
	Completed bool      `gorm:"column:completado" json:"completado"`
	CreatedAt time.Time `gorm:"column:fecha_creacion;autoCreateTime" json:"fecha_creacion"`
	UpdatedAt time.Time `gorm:"column:fecha_actualizacion;autoUpdateTime" json:"fecha_actualizacion"`
}

func (ProgressModel) TableName() string {
	return "progreso_juego"
}
