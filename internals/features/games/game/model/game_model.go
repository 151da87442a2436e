package model

import "gorm.io/datatypes"

// GameModel: juegos
type GameModel struct {
	ID          int          `gorm:"column:id;primaryKey" json:"id"`
	Name        string       `gorm:"column:nombre" json:"nombre"`
	Description *string      `gorm:"column:descripcion" json:"descripcion"`
	Image       *string      `gorm:"column:imagen" json:"imagen"`
	Levels      []LevelModel `gorm:"foreignKey:GameID" json:"niveles,omitempty"`
}

func (GameModel) TableName() string {
	return "juegos"
}

// LevelModel: niveles. Content holds the playable material of the level.
type LevelModel struct {
	ID            int                              `gorm:"column:id;primaryKey" json:"id"`
	GameID        int                              `gorm:"column:juego_id" json:"juego_id"`
	Name          string                           `gorm:"column:nombre" json:"nombre"`
	Description   *string                          `gorm:"column:descripcion" json:"descripcion"`
	Difficulty    *string                          `gorm:"column:dificultad" json:"dificultad"`
	Instructions  *string                          `gorm:"column:instrucciones" json:"instrucciones"`
	MaxTime       *int                             `gorm:"column:tiempo_maximo" json:"tiempo_maximo"`
	TrainingAudio *string                          `gorm:"column:audio_entrenamiento" json:"audio_entrenamiento"`
	Content       datatypes.JSONType[LevelContent] `gorm:"column:contenido" json:"contenido"`
}

func (LevelModel) TableName() string {
	return "niveles"
}

type LevelContent struct {
	Indicators  []Indicator  `json:"indicadores"`
	Selectables []Selectable `json:"seleccionables"`
}

// Indicator is the prompt the child hears.
type Indicator struct {
	ID    int    `json:"id"`
	Name  string `json:"nombre"`
	Image string `json:"imagen"`
	Audio string `json:"audio"`
}

// Selectable is a word the child can pick for an indicator.
type Selectable struct {
	ID          int    `json:"id"`
	Word        string `json:"palabra"`
	Image       string `json:"imagen"`
	Correct     bool   `json:"correcto"`
	IndicatorID int    `json:"indicador_id"`
}
