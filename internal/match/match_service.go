package match

import (
	"context"
	"fmt"
	"time"

	"github.com/DhavalSuthar-24/crickettourney/internal/standings"
	"github.com/DhavalSuthar-24/crickettourney/internal/team"
	"github.com/DhavalSuthar-24/crickettourney/pkg/apperr"
	"github.com/DhavalSuthar-24/crickettourney/pkg/logging"
	"github.com/cockroachdb/errors"
)

// ScoreFeed receives live score events. Delivery is best effort.
type ScoreFeed interface {
	PublishScore(payload interface{}) error
}

// TeamLookup is the part of the team registry matches depend on.
type TeamLookup interface {
	GetTeamByID(ctx context.Context, id uint) (*team.Team, error)
}

// Completion is a completed match together with the standings it produced.
type Completion struct {
	Match     *Match             `json:"match"`
	Standings *standings.Outcome `json:"standings"`
}

// MatchService owns the match lifecycle:
// scheduled -> in_progress -> completed, or scheduled -> completed directly.
type MatchService struct {
	repo         MatchRepository
	teams        TeamLookup
	engine       *standings.Engine
	feed         ScoreFeed
	log          *logging.Logger
	defaultOvers int
	now          func() time.Time
}

func NewMatchService(repo MatchRepository, teams TeamLookup, engine *standings.Engine, feed ScoreFeed, defaultOvers int, log *logging.Logger) *MatchService {
	if defaultOvers <= 0 || defaultOvers > MaxOversLimit {
		defaultOvers = 20
	}
	return &MatchService{
		repo:         repo,
		teams:        teams,
		engine:       engine,
		feed:         feed,
		log:          log,
		defaultOvers: defaultOvers,
		now:          time.Now,
	}
}

func (s *MatchService) publish(ev ScoreEvent) {
	if s.feed == nil {
		return
	}
	if err := s.feed.PublishScore(ev); err != nil {
		s.log.Warn("score event not published", "type", ev.Type, "match_id", ev.MatchID, "err", err)
	}
}

func (s *MatchService) checkTeams(ctx context.Context, teamA, teamB uint) error {
	if teamA == teamB {
		return apperr.Validation("a team cannot play itself")
	}
	for _, id := range []uint{teamA, teamB} {
		t, err := s.teams.GetTeamByID(ctx, id)
		if err != nil {
			return apperr.Storage(err, "load team")
		}
		if t == nil {
			return apperr.NotFound("team", id)
		}
	}
	return nil
}

func checkOversLimit(limit int) error {
	if limit < 1 || limit > MaxOversLimit {
		return apperr.Validation("overs_limit must be between 1 and %d", MaxOversLimit)
	}
	return nil
}

// getMatch loads a match or reports it missing.
func (s *MatchService) getMatch(ctx context.Context, id uint) (*Match, error) {
	m, err := s.repo.GetMatchByID(ctx, id)
	if err != nil {
		return nil, apperr.Storage(err, "get match")
	}
	if m == nil {
		return nil, apperr.NotFound("match", id)
	}
	return m, nil
}

func lockMatch(ctx context.Context, tx MatchRepository, id uint) (*Match, error) {
	m, err := tx.LockMatch(ctx, id)
	if err != nil {
		return nil, apperr.Storage(err, "lock match")
	}
	if m == nil {
		return nil, apperr.NotFound("match", id)
	}
	return m, nil
}

func (s *MatchService) Get(ctx context.Context, id uint) (*Match, error) {
	return s.getMatch(ctx, id)
}

func (s *MatchService) List(ctx context.Context, filter ListFilter) ([]Match, int64, error) {
	matches, total, err := s.repo.GetMatches(ctx, filter)
	if err != nil {
		return nil, 0, apperr.Storage(err, "list matches")
	}
	return matches, total, nil
}

// Create schedules a new match.
func (s *MatchService) Create(ctx context.Context, req CreateMatchRequest) (*Match, error) {
	if err := s.checkTeams(ctx, req.TeamAID, req.TeamBID); err != nil {
		return nil, err
	}
	limit := req.OversLimit
	if limit == 0 {
		limit = s.defaultOvers
	}
	if err := checkOversLimit(limit); err != nil {
		return nil, err
	}

	m := Match{
		TeamAID:    req.TeamAID,
		TeamBID:    req.TeamBID,
		Date:       req.Date,
		Venue:      req.Venue,
		Stage:      req.Stage,
		OversLimit: limit,
		Status:     StatusScheduled,
	}
	if err := s.repo.CreateMatch(ctx, &m); err != nil {
		return nil, apperr.Storage(err, "create match")
	}
	s.log.Info("match scheduled", "match_id", m.ID, "team_a", m.TeamAID, "team_b", m.TeamBID, "stage", m.Stage)
	return s.getMatch(ctx, m.ID)
}

// Update edits the fixture details of a match that is not completed yet.
func (s *MatchService) Update(ctx context.Context, id uint, req UpdateMatchRequest) (*Match, error) {
	current, err := s.getMatch(ctx, id)
	if err != nil {
		return nil, err
	}
	teamA, teamB := current.TeamAID, current.TeamBID
	if req.TeamAID != nil {
		teamA = *req.TeamAID
	}
	if req.TeamBID != nil {
		teamB = *req.TeamBID
	}
	teamsChanged := teamA != current.TeamAID || teamB != current.TeamBID
	if teamsChanged {
		if err := s.checkTeams(ctx, teamA, teamB); err != nil {
			return nil, err
		}
	}

	err = s.repo.WithTransaction(ctx, func(tx MatchRepository) error {
		m, err := lockMatch(ctx, tx, id)
		if err != nil {
			return err
		}
		if m.Status == StatusCompleted {
			return apperr.Conflict("match %d is completed and can no longer be edited", id)
		}
		if teamsChanged {
			if m.Status != StatusScheduled {
				return apperr.Conflict("teams of match %d cannot change once it has started", id)
			}
			m.TeamAID, m.TeamBID = teamA, teamB
		}
		if req.Date != nil {
			m.Date = *req.Date
		}
		if req.Venue != nil {
			m.Venue = *req.Venue
		}
		if req.Stage != nil {
			m.Stage = *req.Stage
		}
		if req.OversLimit != nil {
			if err := checkOversLimit(*req.OversLimit); err != nil {
				return err
			}
			m.OversLimit = *req.OversLimit
		}
		if err := tx.UpdateMatch(ctx, m); err != nil {
			return apperr.Storage(err, "update match")
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return s.getMatch(ctx, id)
}

// Delete removes a match that has not been completed. Completed matches feed
// the points table and stay.
func (s *MatchService) Delete(ctx context.Context, id uint) error {
	m, err := s.getMatch(ctx, id)
	if err != nil {
		return err
	}
	if m.Status == StatusCompleted {
		return apperr.Conflict("match %d is completed and cannot be deleted", id)
	}
	if err := s.repo.DeleteMatch(ctx, id); err != nil {
		return apperr.Storage(err, "delete match")
	}
	s.log.Info("match deleted", "match_id", id)
	return nil
}

// Start moves a scheduled match to in_progress.
func (s *MatchService) Start(ctx context.Context, id uint) (*Match, error) {
	err := s.repo.WithTransaction(ctx, func(tx MatchRepository) error {
		m, err := lockMatch(ctx, tx, id)
		if err != nil {
			return err
		}
		if m.Status != StatusScheduled {
			return apperr.Conflict("match %d cannot be started while %s", id, m.Status)
		}
		now := s.now()
		m.Status = StatusInProgress
		m.StartedAt = &now
		if err := tx.UpdateMatch(ctx, m); err != nil {
			return apperr.Storage(err, "start match")
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	s.publish(ScoreEvent{Type: "status", MatchID: id, Status: StatusInProgress})
	return s.getMatch(ctx, id)
}

// Complete records the final scores and applies them to the points table in
// the same transaction. A match is completed, and counted, exactly once.
func (s *MatchService) Complete(ctx context.Context, id uint, req CompleteMatchRequest) (*Completion, error) {
	current, err := s.getMatch(ctx, id)
	if err != nil {
		return nil, err
	}
	names := teamNames(current)

	var outcome *standings.Outcome
	var result string
	err = s.repo.WithTransaction(ctx, func(tx MatchRepository) error {
		m, err := lockMatch(ctx, tx, id)
		if err != nil {
			return err
		}
		if m.Status == StatusCompleted {
			return apperr.Conflict("match %d is already completed", id)
		}
		if err := validateCompletion(m, req); err != nil {
			return err
		}

		now := s.now()
		m.FirstInnings = req.FirstInnings.innings()
		m.SecondInnings = req.SecondInnings.innings()
		m.Outcome = req.Outcome
		m.WinnerID = winnerFor(m, req.Outcome)
		m.Status = StatusCompleted
		m.CompletedAt = &now
		if m.StartedAt == nil {
			m.StartedAt = &now
		}
		m.Result = req.Result
		if m.Result == "" {
			m.Result = summarize(m, names)
		}
		result = m.Result

		if err := tx.UpdateMatch(ctx, m); err != nil {
			return apperr.Storage(err, "complete match")
		}
		outcome, err = s.engine.ApplyWith(ctx, tx.Standings(), standingsResult(m))
		return err
	})
	if err != nil {
		return nil, err
	}
	s.log.Info("match completed", "match_id", id, "outcome", req.Outcome)
	s.publish(ScoreEvent{Type: "status", MatchID: id, Status: StatusCompleted, Result: result})

	m, err := s.getMatch(ctx, id)
	if err != nil {
		return nil, err
	}
	return &Completion{Match: m, Standings: outcome}, nil
}

// RecordResult completes a match from the flat points-table payload. Teams
// may be given in either order.
func (s *MatchService) RecordResult(ctx context.Context, res standings.Result) (*standings.Outcome, error) {
	m, err := s.getMatch(ctx, res.MatchID)
	if err != nil {
		return nil, err
	}
	if !m.hasTeam(res.TeamA) || !m.hasTeam(res.TeamB) || res.TeamA == res.TeamB {
		return nil, apperr.Validation("teams %d and %d do not match the teams of match %d", res.TeamA, res.TeamB, m.ID)
	}
	if res.Stage != string(m.Stage) {
		return nil, apperr.Validation("stage %q does not match match stage %q", res.Stage, m.Stage)
	}

	req := CompleteMatchRequest{
		FirstInnings:  InningsRequest{BattingTeamID: res.TeamA, Runs: res.TeamARuns, Overs: res.TeamAOvers},
		SecondInnings: InningsRequest{BattingTeamID: res.TeamB, Runs: res.TeamBRuns, Overs: res.TeamBOvers},
	}
	switch {
	case res.Winner == 0 && res.TeamARuns == res.TeamBRuns:
		req.Outcome = OutcomeTie
	case res.Winner == 0:
		req.Outcome = OutcomeDraw
	case res.Winner == m.TeamAID:
		req.Outcome = OutcomeTeamAWon
	case res.Winner == m.TeamBID:
		req.Outcome = OutcomeTeamBWon
	default:
		return nil, apperr.Validation("winner %d did not play in match %d", res.Winner, m.ID)
	}

	done, err := s.Complete(ctx, m.ID, req)
	if err != nil {
		return nil, err
	}
	return done.Standings, nil
}

// RebuildStandings replays every completed match into a fresh points table.
// The completed matches are read in the same transaction that rewrites the
// table, after the table lock, so a concurrent completion is never lost.
func (s *MatchService) RebuildStandings(ctx context.Context) ([]standings.Record, error) {
	var table []standings.Record
	err := s.repo.WithTransaction(ctx, func(tx MatchRepository) error {
		var err error
		table, err = s.engine.RebuildWith(ctx, tx.Standings(), func(ctx context.Context) ([]standings.Result, error) {
			return completedResults(ctx, tx)
		})
		return err
	})
	if err != nil {
		return nil, err
	}
	return table, nil
}

// completedResults lists every completed match as a standings result, in the
// order the matches were completed.
func completedResults(ctx context.Context, repo MatchRepository) ([]standings.Result, error) {
	matches, err := repo.CompletedMatches(ctx)
	if err != nil {
		return nil, apperr.Storage(err, "list completed matches")
	}
	results := make([]standings.Result, 0, len(matches))
	for i := range matches {
		results = append(results, standingsResult(&matches[i]))
	}
	return results, nil
}

// RecordDelivery appends one ball to the live log and pushes it to
// subscribers.
func (s *MatchService) RecordDelivery(ctx context.Context, id uint, req DeliveryRequest) (*Delivery, error) {
	m, err := s.getMatch(ctx, id)
	if err != nil {
		return nil, err
	}
	if m.Status != StatusInProgress {
		return nil, apperr.Conflict("deliveries can only be logged while match %d is in progress", id)
	}
	if req.Over > m.OversLimit {
		return nil, apperr.Validation("over %d exceeds the %d-over limit", req.Over, m.OversLimit)
	}

	d := Delivery{
		MatchID:     id,
		InningsNo:   req.Innings,
		Over:        req.Over,
		Ball:        req.Ball,
		BatterID:    req.BatterID,
		BowlerID:    req.BowlerID,
		Runs:        req.Runs,
		Extras:      req.Extras,
		ExtraType:   req.ExtraType,
		IsWicket:    req.IsWicket,
		Description: req.Description,
	}
	if err := s.repo.CreateDelivery(ctx, &d); err != nil {
		return nil, apperr.Storage(err, "record delivery")
	}
	s.publish(ScoreEvent{Type: "delivery", MatchID: id, Delivery: &d})
	return &d, nil
}

// RecordOverSummary stores the summary of a finished over, replacing any
// earlier one for the same over.
func (s *MatchService) RecordOverSummary(ctx context.Context, id uint, req OverSummaryRequest) (*OverSummary, error) {
	m, err := s.getMatch(ctx, id)
	if err != nil {
		return nil, err
	}
	if m.Status != StatusInProgress {
		return nil, apperr.Conflict("overs can only be logged while match %d is in progress", id)
	}
	if req.Over > m.OversLimit {
		return nil, apperr.Validation("over %d exceeds the %d-over limit", req.Over, m.OversLimit)
	}

	o := OverSummary{
		MatchID:     id,
		InningsNo:   req.Innings,
		Over:        req.Over,
		Runs:        req.Runs,
		Wickets:     req.Wickets,
		Description: req.Description,
	}
	if err := s.repo.SaveOverSummary(ctx, &o); err != nil {
		return nil, apperr.Storage(err, "record over summary")
	}
	s.publish(ScoreEvent{Type: "over", MatchID: id, Over: &o})
	return &o, nil
}

// validateCompletion checks the final scores against the match before
// anything is written.
func validateCompletion(m *Match, req CompleteMatchRequest) error {
	first, second := req.FirstInnings, req.SecondInnings
	if !m.hasTeam(first.BattingTeamID) || !m.hasTeam(second.BattingTeamID) {
		return apperr.Validation("batting teams must be the two teams of match %d", m.ID)
	}
	if first.BattingTeamID == second.BattingTeamID {
		return apperr.Validation("both innings cannot be batted by team %d", first.BattingTeamID)
	}
	for i, in := range []InningsRequest{first, second} {
		if in.Runs < 0 {
			return apperr.Validation("innings %d: runs cannot be negative", i+1)
		}
		if in.Wickets < 0 || in.Wickets > MaxWickets {
			return apperr.Validation("innings %d: wickets must be between 0 and %d", i+1, MaxWickets)
		}
		balls, err := standings.BallsFromOvers(in.Overs)
		if err != nil {
			return errors.Wrapf(err, "innings %d", i+1)
		}
		if balls > m.OversLimit*standings.BallsPerOver {
			return apperr.Validation("innings %d: %.1f overs exceeds the %d-over limit", i+1, in.Overs, m.OversLimit)
		}
	}
	switch req.Outcome {
	case OutcomeTeamAWon, OutcomeTeamBWon, OutcomeDraw, OutcomeTie:
	default:
		return apperr.Validation("outcome %q must be teamA_won, teamB_won, draw or tie", req.Outcome)
	}
	if req.Outcome == OutcomeTie && first.Runs != second.Runs {
		return apperr.Validation("a tie needs equal scores, got %d and %d", first.Runs, second.Runs)
	}
	if winner := winnerFor(m, req.Outcome); winner != nil {
		won, lost := first, second
		if second.BattingTeamID == *winner {
			won, lost = second, first
		}
		if won.Runs <= lost.Runs {
			return apperr.Validation("%s needs team %d to outscore %d runs, got %d", req.Outcome, *winner, lost.Runs, won.Runs)
		}
		// The chase ends when the target is passed, so the side batting
		// second cannot also be all out.
		if won.BattingTeamID == second.BattingTeamID && won.Wickets >= MaxWickets {
			return apperr.Validation("team %d cannot win a chase with %d wickets down", *winner, won.Wickets)
		}
	}
	return nil
}

func winnerFor(m *Match, o Outcome) *uint {
	var id uint
	switch o {
	case OutcomeTeamAWon:
		id = m.TeamAID
	case OutcomeTeamBWon:
		id = m.TeamBID
	default:
		return nil
	}
	return &id
}

// standingsResult converts a completed match into the engine's input.
func standingsResult(m *Match) standings.Result {
	a, b := m.inningsOf(m.TeamAID), m.inningsOf(m.TeamBID)
	res := standings.Result{
		MatchID:    m.ID,
		TeamA:      m.TeamAID,
		TeamB:      m.TeamBID,
		TeamARuns:  a.Runs,
		TeamAOvers: a.Overs,
		TeamBRuns:  b.Runs,
		TeamBOvers: b.Overs,
		Stage:      string(m.Stage),
	}
	if m.WinnerID != nil {
		res.Winner = *m.WinnerID
	}
	return res
}

func teamNames(m *Match) map[uint]string {
	names := make(map[uint]string, 2)
	for _, t := range []*team.Team{m.TeamA, m.TeamB} {
		if t != nil {
			names[t.ID] = t.Name
		}
	}
	return names
}

// summarize writes the usual result line, e.g. "Mumbai won by 30 runs".
func summarize(m *Match, names map[uint]string) string {
	switch m.Outcome {
	case OutcomeDraw:
		return "Match drawn"
	case OutcomeTie:
		return "Match tied"
	}
	winner := *m.WinnerID
	name, ok := names[winner]
	if !ok {
		name = fmt.Sprintf("Team %d", winner)
	}
	if m.FirstInnings.BattingTeamID == winner {
		return fmt.Sprintf("%s won by %d runs", name, m.FirstInnings.Runs-m.SecondInnings.Runs)
	}
	return fmt.Sprintf("%s won by %d wickets", name, MaxWickets-m.SecondInnings.Wickets)
}
