package model

import "time"

// SurveyModel: encuestas, one assessment session of a child by an evaluator.
type SurveyModel struct {
	ID          int       `gorm:"column:id;primaryKey" json:"id"`
	ChildID     int       `gorm:"column:nino_id" json:"nino_id"`
	EvaluatorID int       `gorm:"column:evaluador_id" json:"evaluador_id"`
	Date        time.Time `gorm:"column:fecha;autoCreateTime" json:"fecha"`
	Attempts    int       `gorm:"column:num_intentos" json:"num_intentos"`
	Session     int       `gorm:"column:num_sesion" json:"num_sesion"`
	Notes       string    `gorm:"column:observaciones" json:"observaciones"`
}

func (SurveyModel) TableName() string {
	return "encuestas"
}

// SurveyResultModel: resultados_encuesta. Rows are appended, never replaced
// by a submission.
type SurveyResultModel struct {
	ID          int  `gorm:"column:id;primaryKey" json:"id"`
	SurveyID    int  `gorm:"column:encuesta_id" json:"encuesta_id"`
	ChildID     *int `gorm:"column:nino_id" json:"nino_id"`
	EvaluatorID *int `gorm:"column:evaluador_id" json:"evaluador_id"`

	MentalExamSummary   *string `gorm:"column:resumen_examen_mental" json:"resumen_examen_mental"`
	ClinicalHistory     *string `gorm:"column:antecedentes_clinicos" json:"antecedentes_clinicos"`
	LearningDiagnosis   *string `gorm:"column:diagnostico_aprendizaje" json:"diagnostico_aprendizaje"`
	AcademicProblems    *string `gorm:"column:problemas_academicos" json:"problemas_academicos"`
	LiteracyProblems    *string `gorm:"column:problemas_lectoescritura" json:"problemas_lectoescritura"`
	PretestEvaluation   *string `gorm:"column:evaluacion_pretest" json:"evaluacion_pretest"`
	PosttestEvaluation  *string `gorm:"column:evaluacion_postest" json:"evaluacion_postest"`
	SessionNotes        *string `gorm:"column:observaciones_sesion" json:"observaciones_sesion"`
	BehaviorObservation *string `gorm:"column:observacion_conductual" json:"observacion_conductual"`
	Recommendations     *string `gorm:"column:recomendaciones" json:"recomendaciones"`
	AchievementMarkers  *string `gorm:"column:indicadores_logro" json:"indicadores_logro"`

	GameType         *string    `gorm:"column:game_type" json:"game_type"`
	Difficulty       *string    `gorm:"column:difficulty" json:"difficulty"`
	CurrentLevel     *int       `gorm:"column:current_level" json:"current_level"`
	AccumulatedScore *int       `gorm:"column:accumulated_score" json:"accumulated_score"`
	LastPlayed       *time.Time `gorm:"column:last_played" json:"last_played"`

	RegisteredAt time.Time `gorm:"column:fecha_registro;autoCreateTime" json:"fecha_registro"`
}

func (SurveyResultModel) TableName() string {
	return "resultados_encuesta"
}
