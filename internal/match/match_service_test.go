package match

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/DhavalSuthar-24/crickettourney/internal/player"
	"github.com/DhavalSuthar-24/crickettourney/internal/standings"
	"github.com/DhavalSuthar-24/crickettourney/internal/team"
	"github.com/DhavalSuthar-24/crickettourney/internal/testutil"
	"github.com/DhavalSuthar-24/crickettourney/pkg/apperr"
	"github.com/DhavalSuthar-24/crickettourney/pkg/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type recordingFeed struct {
	mu     sync.Mutex
	events []ScoreEvent
}

func (f *recordingFeed) PublishScore(payload interface{}) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.events = append(f.events, payload.(ScoreEvent))
	return nil
}

func (f *recordingFeed) types() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]string, 0, len(f.events))
	for _, ev := range f.events {
		out = append(out, ev.Type)
	}
	return out
}

type serviceFixture struct {
	db     *gorm.DB
	svc    *MatchService
	engine *standings.Engine
	feed   *recordingFeed
}

func newServiceFixture(t *testing.T) *serviceFixture {
	t.Helper()
	db := testutil.OpenDB(t,
		&player.Player{}, &team.Team{}, &team.TeamPlayer{},
		&Match{}, &Delivery{}, &OverSummary{}, &standings.Record{},
	)
	for _, name := range []string{"Alpha", "Bravo", "Charlie"} {
		require.NoError(t, db.Create(&team.Team{Name: name}).Error)
	}

	log := logging.NewNop()
	engine := standings.NewEngine(standings.NewRepository(db), log)
	feed := &recordingFeed{}
	svc := NewMatchService(NewGormMatchRepository(db), team.NewTeamRepository(db), engine, feed, 20, log)
	svc.now = func() time.Time { return time.Date(2025, 3, 1, 14, 0, 0, 0, time.UTC) }
	return &serviceFixture{db: db, svc: svc, engine: engine, feed: feed}
}

func (f *serviceFixture) schedule(t *testing.T, a, b uint) *Match {
	t.Helper()
	m, err := f.svc.Create(context.Background(), CreateMatchRequest{
		TeamAID: a,
		TeamBID: b,
		Date:    time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC),
		Venue:   "Ground 1",
		Stage:   StageGroup,
	})
	require.NoError(t, err)
	return m
}

func alphaWins() CompleteMatchRequest {
	return CompleteMatchRequest{
		FirstInnings:  InningsRequest{BattingTeamID: 1, Runs: 180, Wickets: 6, Overs: 20},
		SecondInnings: InningsRequest{BattingTeamID: 2, Runs: 150, Wickets: 8, Overs: 20},
		Outcome:       OutcomeTeamAWon,
	}
}

func TestCreateMatch(t *testing.T) {
	t.Parallel()
	f := newServiceFixture(t)
	ctx := context.Background()

	m := f.schedule(t, 1, 2)
	assert.Equal(t, StatusScheduled, m.Status)
	assert.Equal(t, 20, m.OversLimit)
	require.NotNil(t, m.TeamA)
	assert.Equal(t, "Alpha", m.TeamA.Name)

	_, err := f.svc.Create(ctx, CreateMatchRequest{TeamAID: 1, TeamBID: 1, Stage: StageGroup})
	assert.ErrorIs(t, err, apperr.ErrValidation)

	_, err = f.svc.Create(ctx, CreateMatchRequest{TeamAID: 1, TeamBID: 42, Stage: StageGroup})
	assert.ErrorIs(t, err, apperr.ErrNotFound)

	_, err = f.svc.Create(ctx, CreateMatchRequest{TeamAID: 1, TeamBID: 2, Stage: StageGroup, OversLimit: 60})
	assert.ErrorIs(t, err, apperr.ErrValidation)

	n, err := NewGormMatchRepository(f.db).CountMatchesForTeam(ctx, 2)
	require.NoError(t, err)
	assert.EqualValues(t, 1, n)
}

func TestLifecycleAndLiveLog(t *testing.T) {
	t.Parallel()
	f := newServiceFixture(t)
	ctx := context.Background()
	m := f.schedule(t, 1, 2)

	_, err := f.svc.RecordDelivery(ctx, m.ID, DeliveryRequest{Innings: 1, Over: 1, Ball: 1, Runs: 4})
	assert.ErrorIs(t, err, apperr.ErrConflict, "no live log before the start")

	started, err := f.svc.Start(ctx, m.ID)
	require.NoError(t, err)
	assert.Equal(t, StatusInProgress, started.Status)
	require.NotNil(t, started.StartedAt)

	_, err = f.svc.Start(ctx, m.ID)
	assert.ErrorIs(t, err, apperr.ErrConflict)

	d, err := f.svc.RecordDelivery(ctx, m.ID, DeliveryRequest{Innings: 1, Over: 1, Ball: 1, Runs: 4, Description: "Cover drive"})
	require.NoError(t, err)
	assert.NotZero(t, d.ID)
	_, err = f.svc.RecordDelivery(ctx, m.ID, DeliveryRequest{Innings: 1, Over: 1, Ball: 2, IsWicket: true})
	require.NoError(t, err)
	_, err = f.svc.RecordDelivery(ctx, m.ID, DeliveryRequest{Innings: 1, Over: 21, Ball: 1})
	assert.ErrorIs(t, err, apperr.ErrValidation)

	_, err = f.svc.RecordOverSummary(ctx, m.ID, OverSummaryRequest{Innings: 1, Over: 1, Runs: 4, Wickets: 1, Description: "first"})
	require.NoError(t, err)
	_, err = f.svc.RecordOverSummary(ctx, m.ID, OverSummaryRequest{Innings: 1, Over: 1, Runs: 9, Wickets: 1, Description: "corrected"})
	require.NoError(t, err)

	got, err := f.svc.Get(ctx, m.ID)
	require.NoError(t, err)
	require.Len(t, got.Deliveries, 2)
	assert.Equal(t, "Cover drive", got.Deliveries[0].Description)
	assert.True(t, got.Deliveries[1].IsWicket)
	require.Len(t, got.OverSummaries, 1)
	assert.Equal(t, 9, got.OverSummaries[0].Runs)
	assert.Equal(t, "corrected", got.OverSummaries[0].Description)

	assert.Equal(t, []string{"status", "delivery", "delivery", "over", "over"}, f.feed.types())
}

func TestCompleteUpdatesStandingsOnce(t *testing.T) {
	t.Parallel()
	f := newServiceFixture(t)
	ctx := context.Background()
	m := f.schedule(t, 1, 2)

	done, err := f.svc.Complete(ctx, m.ID, alphaWins())
	require.NoError(t, err)
	assert.Equal(t, StatusCompleted, done.Match.Status)
	require.NotNil(t, done.Match.WinnerID)
	assert.Equal(t, uint(1), *done.Match.WinnerID)
	assert.Equal(t, "Alpha won by 30 runs", done.Match.Result)
	require.NotNil(t, done.Match.CompletedAt)
	assert.Equal(t, 2, done.Standings.TeamA.Points)
	assert.Equal(t, 1.5, done.Standings.TeamA.NRR)
	assert.Equal(t, -1.5, done.Standings.TeamB.NRR)

	_, err = f.svc.Complete(ctx, m.ID, alphaWins())
	assert.ErrorIs(t, err, apperr.ErrConflict)

	a, err := f.engine.Get(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, 1, a.MatchesPlayed, "second completion must not count again")
	assert.Equal(t, 2, a.Points)

	assert.ErrorIs(t, f.svc.Delete(ctx, m.ID), apperr.ErrConflict)
	venue := "Ground 2"
	_, err = f.svc.Update(ctx, m.ID, UpdateMatchRequest{Venue: &venue})
	assert.ErrorIs(t, err, apperr.ErrConflict)
}

func TestCompleteChasingWinSummary(t *testing.T) {
	t.Parallel()
	f := newServiceFixture(t)
	m := f.schedule(t, 1, 2)

	done, err := f.svc.Complete(context.Background(), m.ID, CompleteMatchRequest{
		FirstInnings:  InningsRequest{BattingTeamID: 1, Runs: 150, Wickets: 9, Overs: 20},
		SecondInnings: InningsRequest{BattingTeamID: 2, Runs: 151, Wickets: 3, Overs: 17.4},
		Outcome:       OutcomeTeamBWon,
	})
	require.NoError(t, err)
	assert.Equal(t, "Bravo won by 7 wickets", done.Match.Result)
	assert.Equal(t, 106, done.Standings.TeamB.BallsFaced)
	assert.Equal(t, 120, done.Standings.TeamB.BallsBowled)
}

func TestCompleteValidation(t *testing.T) {
	t.Parallel()

	cases := map[string]func(*CompleteMatchRequest){
		"overs past limit":  func(r *CompleteMatchRequest) { r.FirstInnings.Overs = 20.1 },
		"bad ball notation": func(r *CompleteMatchRequest) { r.SecondInnings.Overs = 12.6 },
		"too many wickets":  func(r *CompleteMatchRequest) { r.SecondInnings.Wickets = 11 },
		"same batting team": func(r *CompleteMatchRequest) { r.SecondInnings.BattingTeamID = 1 },
		"outside team":      func(r *CompleteMatchRequest) { r.FirstInnings.BattingTeamID = 3 },
		"unknown outcome":   func(r *CompleteMatchRequest) { r.Outcome = "abandoned" },
		"uneven tie":        func(r *CompleteMatchRequest) { r.Outcome = OutcomeTie },
		"winner outscored":  func(r *CompleteMatchRequest) { r.Outcome = OutcomeTeamBWon },
		"winner level":      func(r *CompleteMatchRequest) { r.SecondInnings.Runs = 180 },
		"chase all out": func(r *CompleteMatchRequest) {
			r.SecondInnings.Runs = 181
			r.SecondInnings.Wickets = 10
			r.Outcome = OutcomeTeamBWon
		},
	}
	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			f := newServiceFixture(t)
			ctx := context.Background()
			m := f.schedule(t, 1, 2)

			req := alphaWins()
			mutate(&req)
			_, err := f.svc.Complete(ctx, m.ID, req)
			assert.ErrorIs(t, err, apperr.ErrValidation)

			got, err := f.svc.Get(ctx, m.ID)
			require.NoError(t, err)
			assert.Equal(t, StatusScheduled, got.Status)
			table, err := f.engine.Table(ctx)
			require.NoError(t, err)
			assert.Empty(t, table)
		})
	}
}

func TestCompleteRollsBackWhenStandingsFail(t *testing.T) {
	t.Parallel()
	f := newServiceFixture(t)
	ctx := context.Background()
	m := f.schedule(t, 1, 2)

	require.NoError(t, f.db.Migrator().DropTable(&standings.Record{}))

	_, err := f.svc.Complete(ctx, m.ID, alphaWins())
	require.Error(t, err)

	got, err := f.svc.Get(ctx, m.ID)
	require.NoError(t, err)
	assert.Equal(t, StatusScheduled, got.Status, "match completion rolls back with the standings update")
	assert.Nil(t, got.WinnerID)
}

func TestTieAndDrawAwardNoPoints(t *testing.T) {
	t.Parallel()
	f := newServiceFixture(t)
	ctx := context.Background()

	tie := f.schedule(t, 1, 2)
	done, err := f.svc.Complete(ctx, tie.ID, CompleteMatchRequest{
		FirstInnings:  InningsRequest{BattingTeamID: 2, Runs: 160, Wickets: 7, Overs: 20},
		SecondInnings: InningsRequest{BattingTeamID: 1, Runs: 160, Wickets: 9, Overs: 20},
		Outcome:       OutcomeTie,
	})
	require.NoError(t, err)
	assert.Equal(t, "Match tied", done.Match.Result)
	assert.Nil(t, done.Match.WinnerID)
	assert.Zero(t, done.Standings.TeamA.Points)
	assert.Zero(t, done.Standings.TeamB.Points)
	assert.Equal(t, 1, done.Standings.TeamA.MatchesPlayed)
}

func TestRecordResultAndRebuild(t *testing.T) {
	t.Parallel()
	f := newServiceFixture(t)
	ctx := context.Background()
	first := f.schedule(t, 1, 2)
	second := f.schedule(t, 2, 3)

	// Teams given in the opposite order to the fixture.
	out, err := f.svc.RecordResult(ctx, standings.Result{
		MatchID: first.ID, TeamA: 2, TeamB: 1, Winner: 1,
		TeamARuns: 150, TeamAOvers: 20, TeamBRuns: 180, TeamBOvers: 20, Stage: "Group",
	})
	require.NoError(t, err)
	assert.Equal(t, uint(1), out.TeamA.TeamID)
	assert.Equal(t, 2, out.TeamA.Points)

	_, err = f.svc.RecordResult(ctx, standings.Result{
		MatchID: first.ID, TeamA: 1, TeamB: 2, Winner: 1,
		TeamARuns: 180, TeamAOvers: 20, TeamBRuns: 150, TeamBOvers: 20, Stage: "Group",
	})
	assert.ErrorIs(t, err, apperr.ErrConflict)

	_, err = f.svc.RecordResult(ctx, standings.Result{
		MatchID: second.ID, TeamA: 1, TeamB: 3, Stage: "Group",
	})
	assert.ErrorIs(t, err, apperr.ErrValidation, "team 1 is not in the second match")

	_, err = f.svc.RecordResult(ctx, standings.Result{
		MatchID: second.ID, TeamA: 2, TeamB: 3, Winner: 3,
		TeamARuns: 120, TeamAOvers: 20, TeamBRuns: 121, TeamBOvers: 15.2, Stage: "Group",
	})
	require.NoError(t, err)

	before, err := f.engine.Table(ctx)
	require.NoError(t, err)

	rebuilt, err := f.svc.RebuildStandings(ctx)
	require.NoError(t, err)
	require.Len(t, rebuilt, 3)

	after, err := f.engine.Table(ctx)
	require.NoError(t, err)
	require.Len(t, after, len(before))
	for i := range before {
		assert.Equal(t, before[i].TeamID, after[i].TeamID)
		assert.Equal(t, before[i].MatchesPlayed, after[i].MatchesPlayed)
		assert.Equal(t, before[i].Points, after[i].Points)
		assert.Equal(t, before[i].NRR, after[i].NRR)
	}
}

func TestUpdateAndDeleteMatch(t *testing.T) {
	t.Parallel()
	f := newServiceFixture(t)
	ctx := context.Background()
	m := f.schedule(t, 1, 2)

	teamC := uint(3)
	limit := 10
	updated, err := f.svc.Update(ctx, m.ID, UpdateMatchRequest{TeamBID: &teamC, OversLimit: &limit})
	require.NoError(t, err)
	assert.Equal(t, uint(3), updated.TeamBID)
	assert.Equal(t, 10, updated.OversLimit)
	assert.Equal(t, "Charlie", updated.TeamB.Name)

	teamA := uint(1)
	_, err = f.svc.Update(ctx, m.ID, UpdateMatchRequest{TeamBID: &teamA})
	assert.ErrorIs(t, err, apperr.ErrValidation)

	_, err = f.svc.Start(ctx, m.ID)
	require.NoError(t, err)
	teamB := uint(2)
	_, err = f.svc.Update(ctx, m.ID, UpdateMatchRequest{TeamBID: &teamB})
	assert.ErrorIs(t, err, apperr.ErrConflict, "teams are fixed once play starts")

	_, err = f.svc.RecordDelivery(ctx, m.ID, DeliveryRequest{Innings: 1, Over: 1, Ball: 1})
	require.NoError(t, err)
	require.NoError(t, f.svc.Delete(ctx, m.ID))
	_, err = f.svc.Get(ctx, m.ID)
	assert.ErrorIs(t, err, apperr.ErrNotFound)

	var left int64
	require.NoError(t, f.db.Model(&Delivery{}).Count(&left).Error)
	assert.Zero(t, left)
}

// spyMatchRepository records the calls a rebuild makes and whether they ran
// inside the transaction.
type spyMatchRepository struct {
	MatchRepository
	calls *[]string
	inTx  bool
}

func (r spyMatchRepository) WithTransaction(ctx context.Context, fn func(MatchRepository) error) error {
	return r.MatchRepository.WithTransaction(ctx, func(tx MatchRepository) error {
		return fn(spyMatchRepository{MatchRepository: tx, calls: r.calls, inTx: true})
	})
}

func (r spyMatchRepository) CompletedMatches(ctx context.Context) ([]Match, error) {
	*r.calls = append(*r.calls, fmt.Sprintf("load completed (tx=%t)", r.inTx))
	return r.MatchRepository.CompletedMatches(ctx)
}

func (r spyMatchRepository) Standings() standings.Repository {
	return spyStandings{Repository: r.MatchRepository.Standings(), calls: r.calls}
}

type spyStandings struct {
	standings.Repository
	calls *[]string
}

func (r spyStandings) LockTable(ctx context.Context) error {
	*r.calls = append(*r.calls, "lock standings")
	return r.Repository.LockTable(ctx)
}

func (r spyStandings) DeleteAll(ctx context.Context) error {
	*r.calls = append(*r.calls, "clear standings")
	return r.Repository.DeleteAll(ctx)
}

func TestRebuildReadsMatchesInsideLockedTransaction(t *testing.T) {
	t.Parallel()
	f := newServiceFixture(t)
	ctx := context.Background()

	m := f.schedule(t, 1, 2)
	_, err := f.svc.Complete(ctx, m.ID, alphaWins())
	require.NoError(t, err)

	var calls []string
	spy := spyMatchRepository{MatchRepository: NewGormMatchRepository(f.db), calls: &calls}
	svc := NewMatchService(spy, team.NewTeamRepository(f.db), f.engine, nil, 20, logging.NewNop())

	table, err := svc.RebuildStandings(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"lock standings", "load completed (tx=true)", "clear standings"}, calls)
	require.Len(t, table, 2)
	assert.Equal(t, uint(1), table[0].TeamID)
	assert.Equal(t, 2, table[0].Points)
}

func TestConcurrentCompletionsSharingATeam(t *testing.T) {
	t.Parallel()
	f := newServiceFixture(t)
	ctx := context.Background()

	const n = 6
	ids := make([]uint, 0, n)
	for i := 0; i < n; i++ {
		opp := team.Team{Name: fmt.Sprintf("Opponent %d", i)}
		require.NoError(t, f.db.Create(&opp).Error)
		ids = append(ids, f.schedule(t, 1, opp.ID).ID)
	}

	var wg sync.WaitGroup
	errs := make(chan error, n)
	for _, id := range ids {
		wg.Add(1)
		go func(id uint) {
			defer wg.Done()
			m, err := f.svc.Get(ctx, id)
			if err != nil {
				errs <- err
				return
			}
			req := alphaWins()
			req.SecondInnings.BattingTeamID = m.TeamBID
			_, err = f.svc.Complete(ctx, id, req)
			errs <- err
		}(id)
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		require.NoError(t, err)
	}

	rec, err := f.engine.Get(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, n, rec.MatchesPlayed)
	assert.Equal(t, n, rec.Wins)
	assert.Equal(t, 2*n, rec.Points)
	assert.Equal(t, 180*n, rec.RunsFor)
	assert.Equal(t, 150*n, rec.RunsAgainst)
	assert.Equal(t, 1.5, rec.NRR)

	table, err := f.engine.Table(ctx)
	require.NoError(t, err)
	assert.Len(t, table, n+1)
}
