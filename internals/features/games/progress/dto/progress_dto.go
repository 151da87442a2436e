package dto

import (
	gameDto "priming_backend/internals/features/games/game/dto"
	"priming_backend/internals/features/games/progress/model"
	helper "priming_backend/internals/helpers"
)

// SaveProgressRequest: every field is required, zero is a valid value.
type SaveProgressRequest struct {
	Score     *int  `json:"puntuacion" validate:"required,min=0"`
	Time      *int  `json:"tiempo" validate:"required,min=0"`
	Correct   *int  `json:"aciertos" validate:"required,min=0"`
	Wrong     *int  `json:"fallos" validate:"required,min=0"`
	Completed *bool `json:"completado" validate:"required"`
}

var progressMessages = map[string]string{
	"puntuacion": "La puntuación es obligatoria y no puede ser negativa",
	"tiempo":     "El tiempo es obligatorio y no puede ser negativo",
	"aciertos":   "Los aciertos son obligatorios y no pueden ser negativos",
	"fallos":     "Los fallos son obligatorios y no pueden ser negativos",
	"completado": "El campo completado es obligatorio",
}

func (r SaveProgressRequest) Validate() error {
	if details := helper.ValidateStruct(r, progressMessages); len(details) > 0 {
		return helper.MissingData("Faltan datos de progreso", details...)
	}
	return nil
}

// ToModel assumes Validate passed.
func (r SaveProgressRequest) ToModel(userID, gameID, levelID int) model.ProgressModel {
	return model.ProgressModel{
		UserID:    userID,
		GameID:    gameID,
		LevelID:   levelID,
		Score:     *r.Score,
		Time:      *r.Time,
		Correct:   *r.Correct,
		Wrong:     *r.Wrong,
		Completed: *r.Completed,
	}
}

type SaveProgressResponse struct {
	Message       string              `json:"message"`
	Progress      model.ProgressModel `json:"progreso"`
	UnlockedLevel *int                `json:"nivel_desbloqueado,omitempty"`
}

// CurrentLevelResponse: the level the child should play next.
type CurrentLevelResponse struct {
	Level     gameDto.LevelSummary `json:"nivel"`
	Progress  *model.ProgressModel `json:"progreso"`
	LastLevel bool                 `json:"ultimo_nivel,omitempty"`
}
