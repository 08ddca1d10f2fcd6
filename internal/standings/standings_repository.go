package standings

import (
	"context"
	"errors"
	"sort"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Repository is the storage behind the engine.
type Repository interface {
	// LockRecords creates missing rows and locks every requested row for the
	// rest of the transaction, in ascending team id order.
	LockRecords(ctx context.Context, teamIDs ...uint) (map[uint]*Record, error)
	SaveRecord(ctx context.Context, rec *Record) error
	InsertRecords(ctx context.Context, recs []Record) error
	DeleteAll(ctx context.Context) error
	// LockTable keeps every other standings writer out until the transaction
	// ends. It must run inside a transaction.
	LockTable(ctx context.Context) error
	GetRecord(ctx context.Context, teamID uint) (*Record, error)
	ListRecords(ctx context.Context) ([]Record, error)
	WithTransaction(ctx context.Context, fn func(Repository) error) error
}

type standingsRepository struct {
	db *gorm.DB
}

// NewRepository binds a repository to db, which may be an open transaction.
func NewRepository(db *gorm.DB) Repository {
	return &standingsRepository{db: db}
}

func (r *standingsRepository) LockRecords(ctx context.Context, teamIDs ...uint) (map[uint]*Record, error) {
	ids := append([]uint(nil), teamIDs...)
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	db := r.db.WithContext(ctx)
	out := make(map[uint]*Record, len(ids))
	for _, id := range ids {
		if _, ok := out[id]; ok {
			continue
		}
		err := db.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "team_id"}},
			DoNothing: true,
		}).Omit(clause.Associations).Create(&Record{TeamID: id}).Error
		if err != nil {
			return nil, err
		}
		var rec Record
		if err := db.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("team_id = ?", id).
			First(&rec).Error; err != nil {
			return nil, err
		}
		out[id] = &rec
	}
	return out, nil
}

func (r *standingsRepository) SaveRecord(ctx context.Context, rec *Record) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Save(rec).Error
}

func (r *standingsRepository) InsertRecords(ctx context.Context, recs []Record) error {
	if len(recs) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Omit(clause.Associations).Create(&recs).Error
}

func (r *standingsRepository) DeleteAll(ctx context.Context) error {
	return r.db.WithContext(ctx).Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&Record{}).Error
}

// LockTable takes SHARE ROW EXCLUSIVE on postgres, which conflicts with the
// row upserts of LockRecords but still lets readers through. SQLite allows a
// single writer at a time, so there is nothing to take.
func (r *standingsRepository) LockTable(ctx context.Context) error {
	if r.db.Dialector.Name() != "postgres" {
		return nil
	}
	return r.db.WithContext(ctx).
		Exec("LOCK TABLE " + Record{}.TableName() + " IN SHARE ROW EXCLUSIVE MODE").Error
}

func (r *standingsRepository) GetRecord(ctx context.Context, teamID uint) (*Record, error) {
	var rec Record
	if err := r.db.WithContext(ctx).Preload("Team").Where("team_id = ?", teamID).First(&rec).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &rec, nil
}

func (r *standingsRepository) ListRecords(ctx context.Context) ([]Record, error) {
	var recs []Record
	err := r.db.WithContext(ctx).
		Preload("Team").
		Order("points desc").
		Order("nrr desc").
		Order("team_id asc").
		Find(&recs).Error
	return recs, err
}

func (r *standingsRepository) WithTransaction(ctx context.Context, fn func(Repository) error) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(NewRepository(tx))
	})
}
