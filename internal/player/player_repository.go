package player

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"
)

// ListFilter narrows a player listing. Zero values mean no filter.
type ListFilter struct {
	Role   string
	Search string
	Page   int
	Limit  int
}

// PlayerRepository defines the data operations on players.
type PlayerRepository interface {
	CreatePlayer(ctx context.Context, p *Player) error
	GetPlayerByID(ctx context.Context, id uint) (*Player, error)
	GetPlayersByIDs(ctx context.Context, ids []uint) ([]Player, error)
	GetAllPlayers(ctx context.Context, filter ListFilter) ([]Player, int64, error)
	UpdatePlayer(ctx context.Context, p *Player) error
	DeletePlayer(ctx context.Context, id uint) error
}

type playerRepository struct {
	db *gorm.DB
}

func NewPlayerRepository(db *gorm.DB) PlayerRepository {
	return &playerRepository{db: db}
}

func (r *playerRepository) CreatePlayer(ctx context.Context, p *Player) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *playerRepository) GetPlayerByID(ctx context.Context, id uint) (*Player, error) {
	var p Player
	if err := r.db.WithContext(ctx).First(&p, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &p, nil
}

func (r *playerRepository) GetPlayersByIDs(ctx context.Context, ids []uint) ([]Player, error) {
	var players []Player
	if len(ids) == 0 {
		return players, nil
	}
	err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&players).Error
	return players, err
}

func (r *playerRepository) GetAllPlayers(ctx context.Context, filter ListFilter) ([]Player, int64, error) {
	var players []Player
	var total int64

	query := r.db.WithContext(ctx).Model(&Player{})
	if role := NormalizeRole(filter.Role); role != "" && role != "all players" {
		query = query.Where("role = ?", role)
	}
	if search := strings.TrimSpace(filter.Search); search != "" {
		query = query.Where("LOWER(name) LIKE LOWER(?)", "%"+search+"%")
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	if filter.Limit > 0 {
		page := filter.Page
		if page < 1 {
			page = 1
		}
		query = query.Offset((page - 1) * filter.Limit).Limit(filter.Limit)
	}
	err := query.Order("name asc").Order("id asc").Find(&players).Error
	return players, total, err
}

func (r *playerRepository) UpdatePlayer(ctx context.Context, p *Player) error {
	return r.db.WithContext(ctx).Save(p).Error
}

func (r *playerRepository) DeletePlayer(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&Player{}, id).Error
}
