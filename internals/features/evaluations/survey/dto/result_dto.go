package dto

import (
	"strings"
	"time"

	"priming_backend/internals/features/evaluations/survey/model"
	helper "priming_backend/internals/helpers"
)

// ResultRequest is the body of a result submission and of an admin result
// edit. Every field is optional.
type ResultRequest struct {
	MentalExamSummary   *string `json:"resumen_examen_mental"`
	ClinicalHistory     *string `json:"antecedentes_clinicos"`
	LearningDiagnosis   *string `json:"diagnostico_aprendizaje"`
	AcademicProblems    *string `json:"problemas_academicos"`
	LiteracyProblems    *string `json:"problemas_lectoescritura"`
	PretestEvaluation   *string `json:"evaluacion_pretest"`
	PosttestEvaluation  *string `json:"evaluacion_postest"`
	SessionNotes        *string `json:"observaciones_sesion"`
	BehaviorObservation *string `json:"observacion_conductual"`
	Recommendations     *string `json:"recomendaciones"`
	AchievementMarkers  *string `json:"indicadores_logro"`

	GameType         *string    `json:"game_type" validate:"omitempty,max=50"`
	Difficulty       *string    `json:"difficulty" validate:"omitempty,max=50"`
	CurrentLevel     *int       `json:"current_level" validate:"omitempty,min=0"`
	AccumulatedScore *int       `json:"accumulated_score" validate:"omitempty,min=0"`
	LastPlayed       *time.Time `json:"last_played"`
}

var resultMessages = map[string]string{
	"game_type":         "El tipo de juego no puede superar 50 caracteres",
	"difficulty":        "La dificultad no puede superar 50 caracteres",
	"current_level":     "El nivel actual no puede ser negativo",
	"accumulated_score": "El puntaje acumulado no puede ser negativo",
}

func (r ResultRequest) Validate() error {
	if details := helper.ValidateStruct(r, resultMessages); len(details) > 0 {
		return helper.MissingData("Datos de resultado inválidos", details...)
	}
	return nil
}

// ToModel builds the row appended for a survey.
func (r ResultRequest) ToModel(surveyID, childID, evaluatorID int) model.SurveyResultModel {
	return model.SurveyResultModel{
		SurveyID:            surveyID,
		ChildID:             &childID,
		EvaluatorID:         &evaluatorID,
		MentalExamSummary:   trimPtr(r.MentalExamSummary),
		ClinicalHistory:     trimPtr(r.ClinicalHistory),
		LearningDiagnosis:   trimPtr(r.LearningDiagnosis),
		AcademicProblems:    trimPtr(r.AcademicProblems),
		LiteracyProblems:    trimPtr(r.LiteracyProblems),
		PretestEvaluation:   trimPtr(r.PretestEvaluation),
		PosttestEvaluation:  trimPtr(r.PosttestEvaluation),
		SessionNotes:        trimPtr(r.SessionNotes),
		BehaviorObservation: trimPtr(r.BehaviorObservation),
		Recommendations:     trimPtr(r.Recommendations),
		AchievementMarkers:  trimPtr(r.AchievementMarkers),
		GameType:            trimPtr(r.GameType),
		Difficulty:          trimPtr(r.Difficulty),
		CurrentLevel:        r.CurrentLevel,
		AccumulatedScore:    r.AccumulatedScore,
		LastPlayed:          r.LastPlayed,
	}
}

func (r ResultRequest) Patch() ResultPatch {
	return ResultPatch(r)
}

// ResultPatch: admin edit of a single result; only present fields are written.
type ResultPatch ResultRequest

func (p ResultPatch) Columns() map[string]any {
	cols := map[string]any{}
	text := map[string]*string{
		"resumen_examen_mental":    p.MentalExamSummary,
		"antecedentes_clinicos":    p.ClinicalHistory,
		"diagnostico_aprendizaje":  p.LearningDiagnosis,
		"problemas_academicos":     p.AcademicProblems,
		"problemas_lectoescritura": p.LiteracyProblems,
		"evaluacion_pretest":       p.PretestEvaluation,
		"evaluacion_postest":       p.PosttestEvaluation,
		"observaciones_sesion":     p.SessionNotes,
		"observacion_conductual":   p.BehaviorObservation,
		"recomendaciones":          p.Recommendations,
		"indicadores_logro":        p.AchievementMarkers,
		"game_type":                p.GameType,
		"difficulty":               p.Difficulty,
	}
	for col, v := range text {
		if v != nil {
			cols[col] = strings.TrimSpace(*v)
		}
	}
	if p.CurrentLevel != nil {
		cols["current_level"] = *p.CurrentLevel
	}
	if p.AccumulatedScore != nil {
		cols["accumulated_score"] = *p.AccumulatedScore
	}
	if p.LastPlayed != nil {
		cols["last_played"] = *p.LastPlayed
	}
	return cols
}

func trimPtr(s *string) *string {
	if s == nil {
		return nil
	}
	t := strings.TrimSpace(*s)
	return &t
}
