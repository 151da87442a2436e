package dto

import "priming_backend/internals/features/games/game/model"

type LevelSummary struct {
	ID          int     `json:"id"`
	GameID      int     `json:"juego_id"`
	Name        string  `json:"nombre"`
	Description *string `json:"descripcion"`
	Difficulty  *string `json:"dificultad"`
	MaxTime     *int    `json:"tiempo_maximo,omitempty"`
}

type GameResponse struct {
	ID          int            `json:"id"`
	Name        string         `json:"nombre"`
	Description *string        `json:"descripcion"`
	Image       *string        `json:"imagen"`
	Levels      []LevelSummary `json:"niveles"`
}

// LevelDetail is a level flattened with its content, ready to play.
type LevelDetail struct {
	ID            int                `json:"id"`
	GameID        int                `json:"juego_id"`
	Name          string             `json:"nombre"`
	Description   *string            `json:"descripcion"`
	Difficulty    *string            `json:"dificultad"`
	Instructions  *string            `json:"instrucciones"`
	MaxTime       *int               `json:"tiempo_maximo"`
	TrainingAudio *string            `json:"audio_entrenamiento"`
	Indicators    []model.Indicator  `json:"indicadores"`
	Selectables   []model.Selectable `json:"seleccionables"`
}

func ToLevelSummary(l model.LevelModel) LevelSummary {
	return LevelSummary{
		ID:          l.ID,
		GameID:      l.GameID,
		Name:        l.Name,
		Description: l.Description,
		Difficulty:  l.Difficulty,
		MaxTime:     l.MaxTime,
	}
}

func ToLevelSummaries(levels []model.LevelModel) []LevelSummary {
	out := make([]LevelSummary, 0, len(levels))
	for _, l := range levels {
		out = append(out, ToLevelSummary(l))
	}
	return out
}

func ToGameResponse(g model.GameModel) GameResponse {
	return GameResponse{
		ID:          g.ID,
		Name:        g.Name,
		Description: g.Description,
		Image:       g.Image,
		Levels:      ToLevelSummaries(g.Levels),
	}
}

func ToLevelDetail(l *model.LevelModel) LevelDetail {
	content := l.Content.Data()
	d := LevelDetail{
		ID:            l.ID,
		GameID:        l.GameID,
		Name:          l.Name,
		Description:   l.Description,
		Difficulty:    l.Difficulty,
		Instructions:  l.Instructions,
		MaxTime:       l.MaxTime,
		TrainingAudio: l.TrainingAudio,
		Indicators:    content.Indicators,
		Selectables:   content.Selectables,
	}
	if d.Indicators == nil {
		d.Indicators = []model.Indicator{}
	}
	if d.Selectables == nil {
		d.Selectables = []model.Selectable{}
	}
	return d
}
