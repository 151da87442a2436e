package repository

import (
	"gorm.io/gorm"

	"priming_backend/internals/features/evaluations/evaluator/dto"
)

/* ====================== ASSIGNMENT ====================== */

// ListAssignedChildren: one row per survey of the evaluator user, newest first.
func ListAssignedChildren(db *gorm.DB, evaluatorUserID int) ([]dto.AssignedChild, error) {
	rows := []dto.AssignedChild{}
	err := db.Raw(`
		SELECT e.id AS encuesta_id, n.id AS nino_id,
		       u.nombre AS nino_nombre, u.correo_electronico AS nino_correo,
		       n.edad, n.grado, n.colegio, n.jornada,
		       e.fecha, e.num_intentos, e.num_sesion, e.observaciones
		FROM encuestas e
		JOIN evaluadores ev ON ev.id = e.evaluador_id
		JOIN ninos n        ON n.id = e.nino_id
		JOIN usuarios u     ON u.id = n.usuario_id
		WHERE ev.usuario_id = ?
		ORDER BY e.fecha DESC`, evaluatorUserID).Scan(&rows).Error
	return rows, err
}

// AssignedChildUserID resolves the child's user id when at least one survey
// links the child to the evaluator user; ok is false otherwise.
func AssignedChildUserID(db *gorm.DB, childID, evaluatorUserID int) (userID int, ok bool, err error) {
	var ids []int
	err = db.Raw(`
		SELECT n.usuario_id
		FROM encuestas e
		JOIN evaluadores ev ON ev.id = e.evaluador_id
		JOIN ninos n        ON n.id = e.nino_id
		WHERE e.nino_id = ? AND ev.usuario_id = ?
		LIMIT 1`, childID, evaluatorUserID).Scan(&ids).Error
	if err != nil || len(ids) == 0 {
		return 0, false, err
	}
	return ids[0], true, nil
}

func FindChildDetail(db *gorm.DB, childID int) (*dto.ChildDetail, error) {
	var rows []dto.ChildDetail
	err := db.Raw(`
		SELECT n.id, u.nombre, u.correo_electronico, n.edad, n.grado, n.colegio, n.jornada
		FROM ninos n
		JOIN usuarios u ON u.id = n.usuario_id
		WHERE n.id = ?`, childID).Scan(&rows).Error
	if err != nil || len(rows) == 0 {
		return nil, err
	}
	return &rows[0], nil
}

func SurveysOfChild(db *gorm.DB, childID, evaluatorUserID int) ([]dto.SurveySummary, error) {
	rows := []dto.SurveySummary{}
	err := db.Raw(`
		SELECT e.id, e.fecha, e.num_intentos, e.num_sesion, e.observaciones
		FROM encuestas e
		JOIN evaluadores ev ON ev.id = e.evaluador_id
		WHERE e.nino_id = ? AND ev.usuario_id = ?
		ORDER BY e.fecha DESC`, childID, evaluatorUserID).Scan(&rows).Error
	return rows, err
}

/* ====================== STATISTICS ====================== */

type totals struct {
	Children int64 `gorm:"column:total_ninos"`
	Surveys  int64 `gorm:"column:total_encuestas"`
}

func Totals(db *gorm.DB, evaluatorID int) (children, surveys int64, err error) {
	var t totals
	err = db.Raw(`
		SELECT COUNT(DISTINCT nino_id) AS total_ninos, COUNT(*) AS total_encuestas
		FROM encuestas
		WHERE evaluador_id = ?`, evaluatorID).Scan(&t).Error
	return t.Children, t.Surveys, err
}

func AgeDistribution(db *gorm.DB, evaluatorID int) ([]dto.AgeBucket, error) {
	rows := []dto.AgeBucket{}
	err := db.Raw(`
		SELECT n.edad, COUNT(*) AS cantidad
		FROM encuestas e
		JOIN ninos n ON n.id = e.nino_id
		WHERE e.evaluador_id = ?
		GROUP BY n.edad
		ORDER BY n.edad`, evaluatorID).Scan(&rows).Error
	return rows, err
}

func GradeDistribution(db *gorm.DB, evaluatorID int) ([]dto.GradeBucket, error) {
	rows := []dto.GradeBucket{}
	err := db.Raw(`
		SELECT n.grado, COUNT(*) AS cantidad
		FROM encuestas e
		JOIN ninos n ON n.id = e.nino_id
		WHERE e.evaluador_id = ?
		GROUP BY n.grado
		ORDER BY n.grado`, evaluatorID).Scan(&rows).Error
	return rows, err
}

func SchoolDistribution(db *gorm.DB, evaluatorID int) ([]dto.SchoolBucket, error) {
	rows := []dto.SchoolBucket{}
	err := db.Raw(`
		SELECT n.colegio, COUNT(*) AS cantidad
		FROM encuestas e
		JOIN ninos n ON n.id = e.nino_id
		WHERE e.evaluador_id = ?
		GROUP BY n.colegio
		ORDER BY cantidad DESC`, evaluatorID).Scan(&rows).Error
	return rows, err
}
