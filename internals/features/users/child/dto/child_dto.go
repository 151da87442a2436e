package dto

import (
	"time"

	gameDto "priming_backend/internals/features/games/game/dto"
	progressModel "priming_backend/internals/features/games/progress/model"
)

type GameBrief struct {
	ID          int     `json:"id"`
	Name        string  `json:"nombre"`
	Description *string `json:"descripcion"`
}

// ProgressOverview: GET /api/nino/progreso
type ProgressOverview struct {
	Games    []GameBrief                   `json:"juegos"`
	Levels   []gameDto.LevelSummary        `json:"niveles"`
	Progress []progressModel.ProgressModel `json:"progreso"`
}

type ChildInfo struct {
	Name   string `gorm:"column:nombre" json:"nombre"`
	Age    int    `gorm:"column:edad" json:"edad"`
	Grade  int    `gorm:"column:grado" json:"grado"`
	School string `gorm:"column:colegio" json:"colegio"`
	Shift  string `gorm:"column:jornada" json:"jornada"`
}

type Totals struct {
	TotalGames      int64 `gorm:"column:total_juegos" json:"total_juegos"`
	TotalLevels     int64 `gorm:"column:total_niveles" json:"total_niveles"`
	CompletedLevels int64 `gorm:"column:niveles_completados" json:"niveles_completados"`
	TotalScore      int64 `gorm:"column:puntuacion_total" json:"puntuacion_total"`
	TotalMinutes    int64 `gorm:"column:tiempo_total_minutos" json:"tiempo_total_minutos"`
	TotalCorrect    int64 `gorm:"column:total_aciertos" json:"total_aciertos"`
	TotalWrong      int64 `gorm:"column:total_fallos" json:"total_fallos"`
}

type GameStats struct {
	ID              int    `gorm:"column:id" json:"id"`
	Name            string `gorm:"column:nombre" json:"nombre"`
	LevelsPlayed    int64  `gorm:"column:niveles_jugados" json:"niveles_jugados"`
	LevelsCompleted int64  `gorm:"column:niveles_completados" json:"niveles_completados"`
	TotalLevels     int64  `gorm:"column:total_niveles" json:"total_niveles"`
	TotalScore      int64  `gorm:"column:puntuacion_total" json:"puntuacion_total"`
	TotalMinutes    int64  `gorm:"column:tiempo_total_minutos" json:"tiempo_total_minutos"`
}

type RecentSession struct {
	Game      string    `gorm:"column:juego" json:"juego"`
	Level     string    `gorm:"column:nivel" json:"nivel"`
	Score     int       `gorm:"column:puntuacion" json:"puntuacion"`
	Correct   int       `gorm:"column:aciertos" json:"aciertos"`
	Wrong     int       `gorm:"column:fallos" json:"fallos"`
	Time      int       `gorm:"column:tiempo" json:"tiempo"`
	Completed bool      `gorm:"column:completado" json:"completado"`
	UpdatedAt time.Time `gorm:"column:fecha_actualizacion" json:"fecha_actualizacion"`
}

type AssignedEvaluator struct {
	Name       string    `gorm:"column:evaluador_nombre" json:"evaluador_nombre"`
	Kind       string    `gorm:"column:evaluador_tipo" json:"evaluador_tipo"`
	AssignedAt time.Time `gorm:"column:fecha_asignacion" json:"fecha_asignacion"`
}

// Statistics: GET /api/nino/estadisticas
type Statistics struct {
	Child          ChildInfo           `json:"datos_nino"`
	Totals         Totals              `json:"estadisticas"`
	GameProgress   []GameStats         `json:"progreso_juegos"`
	RecentSessions []RecentSession     `json:"ultimas_sesiones"`
	Evaluators     []AssignedEvaluator `json:"evaluadores"`
}
