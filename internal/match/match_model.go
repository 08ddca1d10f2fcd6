package match

import (
	"time"

	"github.com/DhavalSuthar-24/crickettourney/internal/team"
	"gorm.io/gorm"
)

type Status string

const (
	StatusScheduled  Status = "scheduled"
	StatusInProgress Status = "in_progress"
	StatusCompleted  Status = "completed"
)

type Stage string

const (
	StageGroup   Stage = "Group"
	StageQuarter Stage = "Quarter"
	StageSemi    Stage = "Semi"
	StageFinal   Stage = "Final"
)

// Outcome is how a completed match ended.
type Outcome string

const (
	OutcomeTeamAWon Outcome = "teamA_won"
	OutcomeTeamBWon Outcome = "teamB_won"
	OutcomeDraw     Outcome = "draw"
	OutcomeTie      Outcome = "tie"
)

const (
	MaxOversLimit = 50
	MaxWickets    = 10
)

// Innings is one side's batting total. Overs use cricket notation, so 19.4
// means 19 overs and 4 balls.
type Innings struct {
	BattingTeamID uint    `json:"batting_team_id"`
	Runs          int     `json:"runs" gorm:"default:0"`
	Wickets       int     `json:"wickets" gorm:"default:0"`
	Overs         float64 `json:"overs" gorm:"default:0"`
}

// Match is a fixture between two teams and, once completed, the source of
// truth the points table is derived from.
type Match struct {
	gorm.Model
	TeamAID    uint       `json:"team_a_id" gorm:"index;not null"`
	TeamA      *team.Team `json:"team_a,omitempty" gorm:"foreignKey:TeamAID"`
	TeamBID    uint       `json:"team_b_id" gorm:"index;not null"`
	TeamB      *team.Team `json:"team_b,omitempty" gorm:"foreignKey:TeamBID"`
	Date       time.Time  `json:"date" gorm:"index"`
	Venue      string     `json:"venue"`
	Stage      Stage      `json:"stage" gorm:"index;not null"`
	OversLimit int        `json:"overs_limit" gorm:"not null;default:20"`
	Status     Status     `json:"status" gorm:"index;not null;default:'scheduled'"`

	FirstInnings  Innings    `json:"first_innings" gorm:"embedded;embeddedPrefix:first_"`
	SecondInnings Innings    `json:"second_innings" gorm:"embedded;embeddedPrefix:second_"`
	Outcome       Outcome    `json:"outcome,omitempty"`
	WinnerID      *uint      `json:"winner_id,omitempty" gorm:"index"`
	Winner        *team.Team `json:"winner,omitempty" gorm:"foreignKey:WinnerID"`
	Result        string     `json:"result"` // e.g. "Mumbai won by 30 runs"

	StartedAt   *time.Time `json:"started_at,omitempty"`
	CompletedAt *time.Time `json:"completed_at,omitempty" gorm:"index"`

	Deliveries    []Delivery    `json:"deliveries,omitempty" gorm:"foreignKey:MatchID;constraint:OnDelete:CASCADE"`
	OverSummaries []OverSummary `json:"over_summaries,omitempty" gorm:"foreignKey:MatchID;constraint:OnDelete:CASCADE"`
}

// Delivery is one ball of live scoring. Over is 1-indexed; Ball counts every
// delivery in the over, so wides and no-balls push it past 6.
type Delivery struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	CreatedAt   time.Time `json:"created_at"`
	MatchID     uint      `json:"match_id" gorm:"index;not null"`
	InningsNo   int       `json:"innings" gorm:"not null"`
	Over        int       `json:"over" gorm:"column:over_number;not null"`
	Ball        int       `json:"ball" gorm:"column:ball_number;not null"`
	BatterID    *uint     `json:"batter_id,omitempty"`
	BowlerID    *uint     `json:"bowler_id,omitempty"`
	Runs        int       `json:"runs" gorm:"default:0"`
	Extras      int       `json:"extras" gorm:"default:0"`
	ExtraType   string    `json:"extra_type,omitempty"`
	IsWicket    bool      `json:"is_wicket" gorm:"default:false"`
	Description string    `json:"description,omitempty"`
}

// OverSummary is the commentary line for a finished over, one per innings
// and over number.
type OverSummary struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
	MatchID     uint      `json:"match_id" gorm:"not null;uniqueIndex:idx_over_summary"`
	InningsNo   int       `json:"innings" gorm:"not null;uniqueIndex:idx_over_summary"`
	Over        int       `json:"over" gorm:"column:over_number;not null;uniqueIndex:idx_over_summary"`
	Runs        int       `json:"runs"`
	Wickets     int       `json:"wickets"`
	Description string    `json:"description"`
}

// ScoreEvent is what the match record pushes to live subscribers.
type ScoreEvent struct {
	Type     string       `json:"type"`
	MatchID  uint         `json:"match_id"`
	Status   Status       `json:"status,omitempty"`
	Result   string       `json:"result,omitempty"`
	Delivery *Delivery    `json:"delivery,omitempty"`
	Over     *OverSummary `json:"over,omitempty"`
}

// inningsOf returns the innings the given team batted in.
func (m *Match) inningsOf(teamID uint) Innings {
	if m.FirstInnings.BattingTeamID == teamID {
		return m.FirstInnings
	}
	return m.SecondInnings
}

func (m *Match) hasTeam(teamID uint) bool {
	return teamID != 0 && (teamID == m.TeamAID || teamID == m.TeamBID)
}
