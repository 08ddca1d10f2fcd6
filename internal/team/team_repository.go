package team

import (
	"context"
	"errors"
	"strings"

	"github.com/DhavalSuthar-24/crickettourney/internal/player"
	"github.com/DhavalSuthar-24/crickettourney/pkg/apperr"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// TeamRepository defines the interface for team data operations
type TeamRepository interface {
	CreateTeam(ctx context.Context, team *Team) error
	GetTeamByID(ctx context.Context, id uint) (*Team, error)
	GetTeamByName(ctx context.Context, name string) (*Team, error)
	GetAllTeams(ctx context.Context, page, limit int, search string) ([]Team, int64, error)
	UpdateTeam(ctx context.Context, team *Team) error
	DeleteTeam(ctx context.Context, id uint) error

	// Roster operations
	ReplaceRoster(ctx context.Context, teamID uint, rows []TeamPlayer) error
	RosterConflicts(ctx context.Context, playerIDs []uint, exceptTeamID uint) ([]TeamPlayer, error)
	TeamIDForPlayer(ctx context.Context, playerID uint) (uint, error)
	AvailablePlayers(ctx context.Context) ([]player.Player, error)

	WithTransaction(ctx context.Context, fn func(TeamRepository) error) error
}

type teamRepository struct {
	db *gorm.DB
}

// NewTeamRepository creates a new instance of TeamRepository
func NewTeamRepository(db *gorm.DB) TeamRepository {
	return &teamRepository{db: db}
}

func preloadRoster(db *gorm.DB) *gorm.DB {
	return db.
		Preload("Players", func(db *gorm.DB) *gorm.DB {
			return db.Order("position asc")
		}).
		Preload("Players.Player")
}

// --- Team Operations ---

func (r *teamRepository) CreateTeam(ctx context.Context, team *Team) error {
	return r.db.WithContext(ctx).Create(team).Error
}

func (r *teamRepository) GetTeamByID(ctx context.Context, id uint) (*Team, error) {
	var team Team
	if err := preloadRoster(r.db.WithContext(ctx)).First(&team, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &team, nil
}

func (r *teamRepository) GetTeamByName(ctx context.Context, name string) (*Team, error) {
	var team Team
	err := r.db.WithContext(ctx).
		Where("LOWER(name) = LOWER(?)", strings.TrimSpace(name)).
		First(&team).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &team, nil
}

func (r *teamRepository) GetAllTeams(ctx context.Context, page, limit int, search string) ([]Team, int64, error) {
	var teams []Team
	var total int64

	query := r.db.WithContext(ctx).Model(&Team{})
	if search = strings.TrimSpace(search); search != "" {
		query = query.Where("LOWER(name) LIKE LOWER(?)", "%"+search+"%")
	}
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if limit > 0 {
		if page < 1 {
			page = 1
		}
		query = query.Offset((page - 1) * limit).Limit(limit)
	}
	err := preloadRoster(query).Order("name asc").Find(&teams).Error
	return teams, total, err
}

// UpdateTeam saves the team's own columns. The roster changes through
// ReplaceRoster only.
func (r *teamRepository) UpdateTeam(ctx context.Context, team *Team) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Save(team).Error
}

// DeleteTeam releases the roster and soft-deletes the team.
func (r *teamRepository) DeleteTeam(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("team_id = ?", id).Delete(&TeamPlayer{}).Error; err != nil {
			return err
		}
		return tx.Delete(&Team{}, id).Error
	})
}

// --- Roster Operations ---

// ReplaceRoster swaps the team's roster for rows. A player already signed by
// another team fails with a conflict.
func (r *teamRepository) ReplaceRoster(ctx context.Context, teamID uint, rows []TeamPlayer) error {
	db := r.db.WithContext(ctx)
	if err := db.Where("team_id = ?", teamID).Delete(&TeamPlayer{}).Error; err != nil {
		return err
	}
	if len(rows) == 0 {
		return nil
	}
	for i := range rows {
		rows[i].ID = 0
		rows[i].TeamID = teamID
	}
	err := db.Omit(clause.Associations).Create(&rows).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		// Another roster signed one of these players after the pre-check.
		return apperr.Conflict("a player on the roster of team %d already plays for another team", teamID)
	}
	return err
}

// RosterConflicts lists the roster rows that already sign any of playerIDs to
// a team other than exceptTeamID.
func (r *teamRepository) RosterConflicts(ctx context.Context, playerIDs []uint, exceptTeamID uint) ([]TeamPlayer, error) {
	var rows []TeamPlayer
	if len(playerIDs) == 0 {
		return rows, nil
	}
	query := r.db.WithContext(ctx).Where("player_id IN ?", playerIDs)
	if exceptTeamID != 0 {
		query = query.Where("team_id <> ?", exceptTeamID)
	}
	err := query.Find(&rows).Error
	return rows, err
}

// TeamIDForPlayer returns 0 when the player is unsigned.
func (r *teamRepository) TeamIDForPlayer(ctx context.Context, playerID uint) (uint, error) {
	var row TeamPlayer
	err := r.db.WithContext(ctx).Where("player_id = ?", playerID).First(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, nil
		}
		return 0, err
	}
	return row.TeamID, nil
}

// AvailablePlayers lists players who are on no roster.
func (r *teamRepository) AvailablePlayers(ctx context.Context) ([]player.Player, error) {
	db := r.db.WithContext(ctx)
	var players []player.Player
	err := db.
		Where("id NOT IN (?)", db.Model(&TeamPlayer{}).Select("player_id")).
		Order("name asc").
		Find(&players).Error
	return players, err
}

func (r *teamRepository) WithTransaction(ctx context.Context, fn func(TeamRepository) error) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&teamRepository{db: tx})
	})
}
