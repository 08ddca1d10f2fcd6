package standings

import (
	"context"
	"sort"

	"github.com/DhavalSuthar-24/crickettourney/pkg/apperr"
	"github.com/DhavalSuthar-24/crickettourney/pkg/logging"
	"github.com/cockroachdb/errors"
	"github.com/go-playground/validator/v10"
)

// Result is a completed match as seen by the points table. Winner is 0 for a
// tie, draw or no-result. Overs use cricket notation.
type Result struct {
	MatchID    uint    `json:"match_id"`
	TeamA      uint    `json:"team_a" validate:"required"`
	TeamB      uint    `json:"team_b" validate:"required,nefield=TeamA"`
	Winner     uint    `json:"winner"`
	TeamARuns  int     `json:"team_a_runs" validate:"gte=0"`
	TeamAOvers float64 `json:"team_a_overs" validate:"gte=0"`
	TeamBRuns  int     `json:"team_b_runs" validate:"gte=0"`
	TeamBOvers float64 `json:"team_b_overs" validate:"gte=0"`
	Stage      string  `json:"stage" validate:"required,oneof=Group Quarter Semi Final"`
}

// Engine owns every write to the standings table.
type Engine struct {
	repo     Repository
	validate *validator.Validate
	log      *logging.Logger
}

func NewEngine(repo Repository, log *logging.Logger) *Engine {
	return &Engine{
		repo:     repo,
		validate: validator.New(validator.WithRequiredStructEnabled()),
		log:      log,
	}
}

// Validate checks a result before anything is written.
func (e *Engine) Validate(res Result) error {
	if err := e.validate.Struct(res); err != nil {
		var ve validator.ValidationErrors
		if errors.As(err, &ve) {
			return errors.Mark(errors.Wrap(ve, "invalid match result"), apperr.ErrValidation)
		}
		return apperr.Validation("invalid match result: %v", err)
	}
	if res.Winner != 0 && res.Winner != res.TeamA && res.Winner != res.TeamB {
		return apperr.Validation("winner %d did not play in this match", res.Winner)
	}
	if _, _, err := res.sides(); err != nil {
		return err
	}
	return nil
}

// sides splits a result into the contributions for team A and team B.
func (res Result) sides() (side, side, error) {
	ballsA, err := BallsFromOvers(res.TeamAOvers)
	if err != nil {
		return side{}, side{}, errors.Wrap(err, "team A overs")
	}
	ballsB, err := BallsFromOvers(res.TeamBOvers)
	if err != nil {
		return side{}, side{}, errors.Wrap(err, "team B overs")
	}
	a := side{
		won:         res.Winner != 0 && res.Winner == res.TeamA,
		lost:        res.Winner != 0 && res.Winner == res.TeamB,
		runsFor:     res.TeamARuns,
		runsAgainst: res.TeamBRuns,
		ballsFaced:  ballsA,
		ballsBowled: ballsB,
	}
	b := side{
		won:         a.lost,
		lost:        a.won,
		runsFor:     res.TeamBRuns,
		runsAgainst: res.TeamARuns,
		ballsFaced:  ballsB,
		ballsBowled: ballsA,
	}
	return a, b, nil
}

// Apply records one result in its own transaction. Either both teams' records
// change or neither does. It is the entry point for callers without a
// transaction of their own; match completion uses ApplyWith.
func (e *Engine) Apply(ctx context.Context, res Result) (*Outcome, error) {
	if err := e.Validate(res); err != nil {
		return nil, err
	}
	var out *Outcome
	err := e.repo.WithTransaction(ctx, func(tx Repository) error {
		var err error
		out, err = e.apply(ctx, tx, res)
		return err
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// ApplyWith records one result using a repository bound to the caller's
// transaction, so the caller decides when it commits.
func (e *Engine) ApplyWith(ctx context.Context, tx Repository, res Result) (*Outcome, error) {
	if err := e.Validate(res); err != nil {
		return nil, err
	}
	return e.apply(ctx, tx, res)
}

func (e *Engine) apply(ctx context.Context, tx Repository, res Result) (*Outcome, error) {
	a, b, err := res.sides()
	if err != nil {
		return nil, err
	}
	recs, err := tx.LockRecords(ctx, res.TeamA, res.TeamB)
	if err != nil {
		return nil, apperr.Storage(err, "lock standings")
	}
	ra, rb := recs[res.TeamA], recs[res.TeamB]
	if ra == nil || rb == nil {
		return nil, apperr.Consistency(errors.Newf("teams %d/%d", res.TeamA, res.TeamB), "standings rows missing after upsert")
	}
	ra.add(a)
	rb.add(b)
	if err := tx.SaveRecord(ctx, ra); err != nil {
		return nil, apperr.Consistency(err, "update standings for team A")
	}
	if err := tx.SaveRecord(ctx, rb); err != nil {
		return nil, apperr.Consistency(err, "update standings for team B")
	}
	e.log.Info("standings updated",
		"match_id", res.MatchID,
		"stage", res.Stage,
		"team_a", res.TeamA,
		"team_b", res.TeamB,
		"winner", res.Winner,
	)
	return &Outcome{TeamA: *ra, TeamB: *rb}, nil
}

// Replay folds results into fresh records. It is the reference for what the
// stored table must contain.
func Replay(results []Result) (map[uint]*Record, error) {
	recs := make(map[uint]*Record)
	get := func(id uint) *Record {
		r, ok := recs[id]
		if !ok {
			r = &Record{TeamID: id}
			recs[id] = r
		}
		return r
	}
	for _, res := range results {
		a, b, err := res.sides()
		if err != nil {
			return nil, errors.Wrapf(err, "match %d", res.MatchID)
		}
		get(res.TeamA).add(a)
		get(res.TeamB).add(b)
	}
	return recs, nil
}

// ResultsLoader reads the completed matches a rebuild replays. It runs after
// the standings table is locked, so it must read through the same transaction.
type ResultsLoader func(ctx context.Context) ([]Result, error)

// Rebuild discards the table and derives it again from results, atomically.
func (e *Engine) Rebuild(ctx context.Context, results []Result) ([]Record, error) {
	var table []Record
	err := e.repo.WithTransaction(ctx, func(tx Repository) error {
		var err error
		table, err = e.RebuildWith(ctx, tx, func(context.Context) ([]Result, error) {
			return results, nil
		})
		return err
	})
	if err != nil {
		return nil, err
	}
	return table, nil
}

// RebuildWith replaces the table inside the caller's transaction. The table is
// locked before load runs, so a completion committing meanwhile either lands
// in the loaded results or waits and applies on top of the rebuilt rows.
func (e *Engine) RebuildWith(ctx context.Context, tx Repository, load ResultsLoader) ([]Record, error) {
	if err := tx.LockTable(ctx); err != nil {
		return nil, apperr.Storage(err, "lock standings")
	}
	results, err := load(ctx)
	if err != nil {
		return nil, err
	}
	for _, res := range results {
		if err := e.Validate(res); err != nil {
			return nil, errors.Wrapf(err, "match %d", res.MatchID)
		}
	}
	replayed, err := Replay(results)
	if err != nil {
		return nil, err
	}
	table := make([]Record, 0, len(replayed))
	for _, r := range replayed {
		table = append(table, *r)
	}
	SortTable(table)

	if err := tx.DeleteAll(ctx); err != nil {
		return nil, apperr.Storage(err, "clear standings")
	}
	if err := tx.InsertRecords(ctx, table); err != nil {
		return nil, apperr.Consistency(err, "insert rebuilt standings")
	}
	e.log.Info("standings rebuilt", "matches", len(results), "teams", len(table))
	return table, nil
}

// Table returns every record ordered for display.
func (e *Engine) Table(ctx context.Context) ([]Record, error) {
	recs, err := e.repo.ListRecords(ctx)
	if err != nil {
		return nil, apperr.Storage(err, "list standings")
	}
	return recs, nil
}

// Get returns one team's record.
func (e *Engine) Get(ctx context.Context, teamID uint) (*Record, error) {
	rec, err := e.repo.GetRecord(ctx, teamID)
	if err != nil {
		return nil, apperr.Storage(err, "get standings")
	}
	if rec == nil {
		return nil, apperr.NotFound("standings for team", teamID)
	}
	return rec, nil
}

// SortTable orders by points, then NRR, both descending, then team id.
func SortTable(recs []Record) {
	sort.SliceStable(recs, func(i, j int) bool {
		if recs[i].Points != recs[j].Points {
			return recs[i].Points > recs[j].Points
		}
		if recs[i].NRR != recs[j].NRR {
			return recs[i].NRR > recs[j].NRR
		}
		return recs[i].TeamID < recs[j].TeamID
	})
}
