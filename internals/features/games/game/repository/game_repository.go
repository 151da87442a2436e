package repository

import (
	"errors"

	"gorm.io/gorm"

	"priming_backend/internals/features/games/game/model"
)

// ListGamesWithLevels: games by id, each with its levels by id.
func ListGamesWithLevels(db *gorm.DB) ([]model.GameModel, error) {
	var games []model.GameModel
	err := db.
		Preload("Levels", func(tx *gorm.DB) *gorm.DB {
			return tx.Order("id ASC")
		}).
		Order("id ASC").
		Find(&games).Error
	return games, err
}

func ListGames(db *gorm.DB) ([]model.GameModel, error) {
	var games []model.GameModel
	err := db.Order("id ASC").Find(&games).Error
	return games, err
}

func ListLevels(db *gorm.DB) ([]model.LevelModel, error) {
	var levels []model.LevelModel
	err := db.Omit("contenido").Order("juego_id ASC, id ASC").Find(&levels).Error
	return levels, err
}

// FindLevel returns the level only if it belongs to the game.
func FindLevel(db *gorm.DB, gameID, levelID int) (*model.LevelModel, error) {
	var level model.LevelModel
	if err := db.Where("id = ? AND juego_id = ?", levelID, gameID).Take(&level).Error; err != nil {
		return nil, err
	}
	return &level, nil
}

func FindLevelByID(db *gorm.DB, levelID int) (*model.LevelModel, error) {
	var level model.LevelModel
	if err := db.Where("id = ?", levelID).Take(&level).Error; err != nil {
		return nil, err
	}
	return &level, nil
}

func LevelExists(db *gorm.DB, gameID, levelID int) (bool, error) {
	_, err := FindLevel(db.Select("id"), gameID, levelID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return false, nil
	}
	return err == nil, err
}

// FirstLevelID returns 0 when the game has no levels.
func FirstLevelID(db *gorm.DB, gameID int) (int, error) {
	return nextLevelID(db, gameID, 0)
}

// NextLevelID is the smallest level id of the game above afterID, 0 if none.
func NextLevelID(db *gorm.DB, gameID, afterID int) (int, error) {
	return nextLevelID(db, gameID, afterID)
}

func nextLevelID(db *gorm.DB, gameID, afterID int) (int, error) {
	var ids []int
	err := db.Model(&model.LevelModel{}).
		Where("juego_id = ? AND id > ?", gameID, afterID).
		Order("id ASC").
		Limit(1).
		Pluck("id", &ids).Error
	if err != nil || len(ids) == 0 {
		return 0, err
	}
	return ids[0], nil
}
