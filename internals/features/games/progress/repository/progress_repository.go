package repository

import (
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"priming_backend/internals/features/games/progress/model"
)

var tripleColumns = []clause.Column{{Name: "usuario_id"}, {Name: "juego_id"}, {Name: "nivel_id"}}

// Upsert inserts the triple or overwrites its counters in place.
func Upsert(tx *gorm.DB, p *model.ProgressModel) error {
	return tx.Clauses(clause.OnConflict{
		Columns: tripleColumns,
		DoUpdates: clause.AssignmentColumns([]string{
			"puntuacion", "tiempo", "aciertos", "fallos", "completado", "fecha_actualizacion",
		}),
	}).Create(p).Error
}

// Unlock inserts a zero row for the level unless the triple already exists.
func Unlock(tx *gorm.DB, userID, gameID, levelID int) error {
	row := model.ProgressModel{UserID: userID, GameID: gameID, LevelID: levelID}
	return tx.Clauses(clause.OnConflict{
		Columns:   tripleColumns,
		DoNothing: true,
	}).Create(&row).Error
}

// ListByUser: newest activity first.
func ListByUser(db *gorm.DB, userID int) ([]model.ProgressModel, error) {
	rows := []model.ProgressModel{}
	err := db.Where("usuario_id = ?", userID).
		Order("fecha_actualizacion DESC, id DESC").
		Find(&rows).Error
	return rows, err
}

// ListByChildID resolves the child's user and lists its progress by game
// then level.
func ListByChildID(db *gorm.DB, childID int) ([]model.ProgressModel, error) {
	rows := []model.ProgressModel{}
	err := db.Table("progreso_juego AS pg").
		Select("pg.*").
		Joins("JOIN ninos n ON n.usuario_id = pg.usuario_id").
		Where("n.id = ?", childID).
		Order("pg.juego_id, pg.nivel_id").
		Scan(&rows).Error
	return rows, err
}

// Find returns (nil, nil) when the triple has no row.
func Find(db *gorm.DB, userID, gameID, levelID int) (*model.ProgressModel, error) {
	var row model.ProgressModel
	err := db.Where("usuario_id = ? AND juego_id = ? AND nivel_id = ?", userID, gameID, levelID).
		Take(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &row, nil
}

// HighestLevel is the row with the largest nivel_id for the game, nil if none.
func HighestLevel(db *gorm.DB, userID, gameID int) (*model.ProgressModel, error) {
	var row model.ProgressModel
	err := db.Where("usuario_id = ? AND juego_id = ?", userID, gameID).
		Order("nivel_id DESC").
		Take(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &row, nil
}
