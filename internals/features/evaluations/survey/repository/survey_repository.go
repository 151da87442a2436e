package repository

import (
	"github.com/lib/pq"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"priming_backend/internals/features/evaluations/survey/dto"
	"priming_backend/internals/features/evaluations/survey/model"
)

const surveyRowSelect = `
	SELECT e.id, e.fecha, e.num_intentos, e.num_sesion, e.observaciones,
	       n.id AS nino_id, u.nombre AS nino_nombre
	FROM encuestas e
	JOIN ninos n    ON n.id = e.nino_id
	JOIN usuarios u ON u.id = n.usuario_id`

/* ====================== SURVEYS ====================== */

func ChildExists(db *gorm.DB, childID int) (bool, error) {
	var exists bool
	err := db.Raw(`SELECT EXISTS(SELECT 1 FROM ninos WHERE id = ?)`, childID).Scan(&exists).Error
	return exists, err
}

func CreateSurvey(tx *gorm.DB, s *model.SurveyModel) error {
	return tx.Create(s).Error
}

// ListForChild: surveys of a child made by one evaluator, newest first.
func ListForChild(db *gorm.DB, childID, evaluatorID int) ([]dto.SurveyRow, error) {
	rows := []dto.SurveyRow{}
	err := db.Raw(surveyRowSelect+`
		WHERE e.nino_id = ? AND e.evaluador_id = ?
		ORDER BY e.fecha DESC`, childID, evaluatorID).Scan(&rows).Error
	return rows, err
}

// FindOwned returns (nil, nil) when the survey does not exist or belongs to
// another evaluator.
func FindOwned(db *gorm.DB, surveyID, evaluatorID int) (*model.SurveyModel, error) {
	var rows []model.SurveyModel
	err := db.Where("id = ? AND evaluador_id = ?", surveyID, evaluatorID).Limit(1).Find(&rows).Error
	if err != nil || len(rows) == 0 {
		return nil, err
	}
	return &rows[0], nil
}

func FindOwnedRow(db *gorm.DB, surveyID, evaluatorID int) (*dto.SurveyRow, error) {
	var rows []dto.SurveyRow
	err := db.Raw(surveyRowSelect+`
		WHERE e.id = ? AND e.evaluador_id = ?`, surveyID, evaluatorID).Scan(&rows).Error
	if err != nil || len(rows) == 0 {
		return nil, err
	}
	return &rows[0], nil
}

func UpdateSurvey(db *gorm.DB, surveyID int, cols map[string]any) error {
	return db.Model(&model.SurveyModel{}).Where("id = ?", surveyID).Updates(cols).Error
}

func BumpAttempts(tx *gorm.DB, surveyID int) error {
	return tx.Model(&model.SurveyModel{}).
		Where("id = ?", surveyID).
		UpdateColumn("num_intentos", gorm.Expr("num_intentos + 1")).Error
}

/* ====================== RESULTS ====================== */

func InsertResult(tx *gorm.DB, r *model.SurveyResultModel) error {
	return tx.Create(r).Error
}

func ListResults(db *gorm.DB, surveyID int) ([]model.SurveyResultModel, error) {
	rows := []model.SurveyResultModel{}
	err := db.Where("encuesta_id = ?", surveyID).Order("id ASC").Find(&rows).Error
	return rows, err
}

// ResultsForSurveys loads the results of many surveys in one round trip.
func ResultsForSurveys(db *gorm.DB, surveyIDs []int64) ([]model.SurveyResultModel, error) {
	rows := []model.SurveyResultModel{}
	err := db.Where("encuesta_id = ANY(?::int[])", pq.Int64Array(surveyIDs)).
		Order("id ASC").
		Find(&rows).Error
	return rows, err
}

// UpdateResult returns (nil, nil) when no row matched.
func UpdateResult(db *gorm.DB, resultID int, cols map[string]any) (*model.SurveyResultModel, error) {
	var out model.SurveyResultModel
	res := db.Model(&out).
		Clauses(clause.Returning{}).
		Where("id = ?", resultID).
		Updates(cols)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, nil
	}
	return &out, nil
}

/* ====================== ADMIN ====================== */

type childRef struct {
	ChildID   int    `gorm:"column:nino_id"`
	ChildName string `gorm:"column:nino_nombre"`
}

// FindChildRef returns ok=false when the user has no child row.
func FindChildRef(db *gorm.DB, userID int) (childID int, childName string, ok bool, err error) {
	var rows []childRef
	err = db.Raw(`
		SELECT n.id AS nino_id, u.nombre AS nino_nombre
		FROM ninos n
		JOIN usuarios u ON u.id = n.usuario_id
		WHERE n.usuario_id = ?`, userID).Scan(&rows).Error
	if err != nil || len(rows) == 0 {
		return 0, "", false, err
	}
	return rows[0].ChildID, rows[0].ChildName, true, nil
}

// SurveysForChild: every survey of the child regardless of evaluator.
func SurveysForChild(db *gorm.DB, childID int) ([]dto.AdminSurvey, error) {
	rows := []dto.AdminSurvey{}
	err := db.Raw(`
		SELECT e.id, e.fecha, e.num_intentos, e.num_sesion, e.observaciones, e.nino_id,
		       ev.id AS evaluador_id, uev.nombre AS evaluador_nombre
		FROM encuestas e
		JOIN evaluadores ev ON ev.id = e.evaluador_id
		JOIN usuarios uev   ON uev.id = ev.usuario_id
		WHERE e.nino_id = ?
		ORDER BY e.fecha DESC`, childID).Scan(&rows).Error
	return rows, err
}
