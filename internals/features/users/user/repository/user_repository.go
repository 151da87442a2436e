package repository

import (
	"errors"

	"gorm.io/gorm"

	"priming_backend/internals/features/users/user/model"
)

/* ====================== READ ====================== */

func FindUserByID(db *gorm.DB, id int) (*model.UserModel, error) {
	var user model.UserModel
	if err := db.First(&user, id).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func ListUsers(db *gorm.DB) ([]model.UserModel, error) {
	var users []model.UserModel
	err := db.Order("id ASC").Find(&users).Error
	return users, err
}

// FindEvaluatorByUserID returns (nil, nil) when the user has no evaluator row.
func FindEvaluatorByUserID(db *gorm.DB, userID int) (*model.EvaluatorModel, error) {
	var ev model.EvaluatorModel
	err := db.Where("usuario_id = ?", userID).Take(&ev).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &ev, nil
}

// FindChildByUserID returns (nil, nil) when the user has no child row.
func FindChildByUserID(db *gorm.DB, userID int) (*model.ChildModel, error) {
	var child model.ChildModel
	err := db.Where("usuario_id = ?", userID).Take(&child).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &child, nil
}

func EmailTakenByOther(db *gorm.DB, email string, exceptUserID int) (bool, error) {
	var exists bool
	err := db.Raw(`SELECT EXISTS(SELECT 1 FROM usuarios WHERE correo_electronico = ? AND id <> ?)`,
		email, exceptUserID).Scan(&exists).Error
	return exists, err
}

func CodeTakenByOther(db *gorm.DB, code string, exceptUserID int) (bool, error) {
	var exists bool
	err := db.Raw(`SELECT EXISTS(SELECT 1 FROM evaluadores WHERE codigo = ? AND usuario_id <> ?)`,
		code, exceptUserID).Scan(&exists).Error
	return exists, err
}

/* ====================== WRITE ====================== */

// Update* helpers are no-ops for empty column sets.

func UpdateUser(db *gorm.DB, userID int, cols map[string]any) error {
	if len(cols) == 0 {
		return nil
	}
	return db.Model(&model.UserModel{}).Where("id = ?", userID).Updates(cols).Error
}

func UpdateEvaluatorByUserID(db *gorm.DB, userID int, cols map[string]any) error {
	if len(cols) == 0 {
		return nil
	}
	return db.Model(&model.EvaluatorModel{}).Where("usuario_id = ?", userID).Updates(cols).Error
}

func UpdateChildByUserID(db *gorm.DB, userID int, cols map[string]any) error {
	if len(cols) == 0 {
		return nil
	}
	return db.Model(&model.ChildModel{}).Where("usuario_id = ?", userID).Updates(cols).Error
}

// DeleteUserCascade removes a user and everything that references it,
// children before parents. Run it inside a transaction.
func DeleteUserCascade(tx *gorm.DB, userID int) (bool, error) {
	steps := []string{
		`DELETE FROM resultados_encuesta WHERE encuesta_id IN (
			SELECT e.id FROM encuestas e
			LEFT JOIN ninos n ON n.id = e.nino_id
			LEFT JOIN evaluadores ev ON ev.id = e.evaluador_id
			WHERE n.usuario_id = @uid OR ev.usuario_id = @uid)`,
		`DELETE FROM encuestas
			WHERE nino_id IN (SELECT id FROM ninos WHERE usuario_id = @uid)
			   OR evaluador_id IN (SELECT id FROM evaluadores WHERE usuario_id = @uid)`,
		`DELETE FROM progreso_juego WHERE usuario_id = @uid`,
		`DELETE FROM evaluadores WHERE usuario_id = @uid`,
		`DELETE FROM ninos WHERE usuario_id = @uid`,
	}
	args := map[string]any{"uid": userID}
	for _, q := range steps {
		if err := tx.Exec(q, args).Error; err != nil {
			return false, err
		}
	}
	res := tx.Where("id = ?", userID).Delete(&model.UserModel{})
	return res.RowsAffected > 0, res.Error
}
