package match

import (
	"context"
	"errors"

	"github.com/DhavalSuthar-24/crickettourney/internal/standings"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ListFilter narrows a match listing. Zero values mean no filter.
type ListFilter struct {
	Status Status
	Stage  Stage
	TeamID uint
	Page   int
	Limit  int
}

// MatchRepository defines the match data operations.
type MatchRepository interface {
	CreateMatch(ctx context.Context, m *Match) error
	GetMatchByID(ctx context.Context, id uint) (*Match, error)
	// LockMatch reads the match row and holds it for the rest of the
	// transaction.
	LockMatch(ctx context.Context, id uint) (*Match, error)
	GetMatches(ctx context.Context, filter ListFilter) ([]Match, int64, error)
	CompletedMatches(ctx context.Context) ([]Match, error)
	UpdateMatch(ctx context.Context, m *Match) error
	DeleteMatch(ctx context.Context, id uint) error
	CountMatchesForTeam(ctx context.Context, teamID uint) (int64, error)

	CreateDelivery(ctx context.Context, d *Delivery) error
	SaveOverSummary(ctx context.Context, o *OverSummary) error

	// Standings returns the points table repository on the same connection,
	// so a completion and its standings update commit together.
	Standings() standings.Repository
	WithTransaction(ctx context.Context, fn func(MatchRepository) error) error
}

// GormMatchRepository implements MatchRepository using GORM
type GormMatchRepository struct {
	db *gorm.DB
}

// NewGormMatchRepository creates a new GormMatchRepository
func NewGormMatchRepository(db *gorm.DB) *GormMatchRepository {
	return &GormMatchRepository{db: db}
}

// WithTransaction implements transaction support
func (r *GormMatchRepository) WithTransaction(ctx context.Context, fn func(MatchRepository) error) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&GormMatchRepository{db: tx})
	})
}

func (r *GormMatchRepository) Standings() standings.Repository {
	return standings.NewRepository(r.db)
}

func (r *GormMatchRepository) CreateMatch(ctx context.Context, m *Match) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Create(m).Error
}

func (r *GormMatchRepository) GetMatchByID(ctx context.Context, id uint) (*Match, error) {
	var m Match
	err := r.db.WithContext(ctx).
		Preload("TeamA").
		Preload("TeamB").
		Preload("Winner").
		Preload("Deliveries", func(db *gorm.DB) *gorm.DB {
			return db.Order("innings_no asc, over_number asc, ball_number asc, id asc")
		}).
		Preload("OverSummaries", func(db *gorm.DB) *gorm.DB {
			return db.Order("innings_no asc, over_number asc")
		}).
		First(&m, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &m, nil
}

func (r *GormMatchRepository) LockMatch(ctx context.Context, id uint) (*Match, error) {
	var m Match
	err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&m, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &m, nil
}

func (r *GormMatchRepository) GetMatches(ctx context.Context, filter ListFilter) ([]Match, int64, error) {
	var matches []Match
	var total int64

	query := r.db.WithContext(ctx).Model(&Match{})
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}
	if filter.Stage != "" {
		query = query.Where("stage = ?", filter.Stage)
	}
	if filter.TeamID != 0 {
		query = query.Where("team_a_id = ? OR team_b_id = ?", filter.TeamID, filter.TeamID)
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
	err := query.
		Preload("TeamA").
		Preload("TeamB").
		Order("date asc").
		Order("id asc").
		Find(&matches).Error
	return matches, total, err
}

// CompletedMatches returns completed matches in completion order.
func (r *GormMatchRepository) CompletedMatches(ctx context.Context) ([]Match, error) {
	var matches []Match
	err := r.db.WithContext(ctx).
		Where("status = ?", StatusCompleted).
		Order("completed_at asc").
		Order("id asc").
		Find(&matches).Error
	return matches, err
}

func (r *GormMatchRepository) UpdateMatch(ctx context.Context, m *Match) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Save(m).Error
}

// DeleteMatch drops the ball-by-ball log and soft-deletes the match.
func (r *GormMatchRepository) DeleteMatch(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("match_id = ?", id).Delete(&Delivery{}).Error; err != nil {
			return err
		}
		if err := tx.Where("match_id = ?", id).Delete(&OverSummary{}).Error; err != nil {
			return err
		}
		return tx.Delete(&Match{}, id).Error
	})
}

func (r *GormMatchRepository) CountMatchesForTeam(ctx context.Context, teamID uint) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).
		Model(&Match{}).
		Where("team_a_id = ? OR team_b_id = ?", teamID, teamID).
		Count(&n).Error
	return n, err
}

func (r *GormMatchRepository) CreateDelivery(ctx context.Context, d *Delivery) error {
	return r.db.WithContext(ctx).Create(d).Error
}

// SaveOverSummary inserts the summary or replaces the one already logged for
// the same innings and over.
func (r *GormMatchRepository) SaveOverSummary(ctx context.Context, o *OverSummary) error {
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "match_id"}, {Name: "innings_no"}, {Name: "over_number"}},
		DoUpdates: clause.AssignmentColumns([]string{"runs", "wickets", "description", "updated_at"}),
	}).Create(o).Error
}
