package service

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"priming_backend/internals/constants"
	"priming_backend/internals/features/games/game/dto"
	"priming_backend/internals/features/games/game/repository"
	helper "priming_backend/internals/helpers"
)

type GameService struct {
	DB *gorm.DB
}

func NewGameService(db *gorm.DB) *GameService {
	return &GameService{DB: db}
}

func LevelNotFound() *helper.AppError {
	return helper.NotFound(constants.CodeMissingData, "Nivel no encontrado")
}

func (s *GameService) ListGames(ctx context.Context) ([]dto.GameResponse, error) {
	games, err := repository.ListGamesWithLevels(s.DB.WithContext(ctx))
	if err != nil {
		return nil, err
	}
	out := make([]dto.GameResponse, 0, len(games))
	for _, g := range games {
		out = append(out, dto.ToGameResponse(g))
	}
	return out, nil
}

// GetLevel returns the playable level; 404 when it does not belong to the game.
func (s *GameService) GetLevel(ctx context.Context, gameID, levelID int) (*dto.LevelDetail, error) {
	level, err := repository.FindLevel(s.DB.WithContext(ctx), gameID, levelID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, LevelNotFound()
	}
	if err != nil {
		return nil, err
	}
	d := dto.ToLevelDetail(level)
	return &d, nil
}
