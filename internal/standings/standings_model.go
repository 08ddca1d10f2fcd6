package standings

import (
	"time"

	"github.com/DhavalSuthar-24/crickettourney/internal/team"
	"gorm.io/gorm"
)

// PointsPerWin is awarded to the winning side. Ties, draws and no-results
// award nothing to either side.
const PointsPerWin = 2

// Record is one team's row in the points table. It is derived state: replaying
// every completed match must reproduce it.
type Record struct {
	TeamID        uint       `json:"team_id" gorm:"primaryKey;autoIncrement:false"`
	Team          *team.Team `json:"team,omitempty" gorm:"foreignKey:TeamID"`
	MatchesPlayed int        `json:"matches_played" gorm:"not null;default:0"`
	Wins          int        `json:"wins" gorm:"not null;default:0"`
	Losses        int        `json:"losses" gorm:"not null;default:0"`
	Points        int        `json:"points" gorm:"not null;default:0;index:idx_standings_rank,priority:1,sort:desc"`
	RunsFor       int        `json:"runs_for" gorm:"not null;default:0"`
	RunsAgainst   int        `json:"runs_against" gorm:"not null;default:0"`
	BallsFaced    int        `json:"balls_faced" gorm:"not null;default:0"`
	BallsBowled   int        `json:"balls_bowled" gorm:"not null;default:0"`
	NRR           float64    `json:"nrr" gorm:"column:nrr;not null;default:0;index:idx_standings_rank,priority:2,sort:desc"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`

	// Overs in cricket notation, derived from the ball counters.
	OversPlayed float64 `json:"overs_played" gorm:"-"`
	OversBowled float64 `json:"overs_bowled" gorm:"-"`
}

func (Record) TableName() string {
	return "standings"
}

// AfterFind fills the derived overs columns for rows read from the database.
func (r *Record) AfterFind(_ *gorm.DB) error {
	r.refresh()
	return nil
}

// refresh recomputes every derived field from the raw counters.
func (r *Record) refresh() {
	r.NRR = NetRunRate(r.RunsFor, r.BallsFaced, r.RunsAgainst, r.BallsBowled)
	r.OversPlayed = OversFromBalls(r.BallsFaced)
	r.OversBowled = OversFromBalls(r.BallsBowled)
}

// side is what one match contributes to one team's record.
type side struct {
	won         bool
	lost        bool
	runsFor     int
	runsAgainst int
	ballsFaced  int
	ballsBowled int
}

func (r *Record) add(s side) {
	r.MatchesPlayed++
	if s.won {
		r.Wins++
		r.Points += PointsPerWin
	}
	if s.lost {
		r.Losses++
	}
	r.RunsFor += s.runsFor
	r.RunsAgainst += s.runsAgainst
	r.BallsFaced += s.ballsFaced
	r.BallsBowled += s.ballsBowled
	r.refresh()
}

// Outcome is the pair of records after a result was applied.
type Outcome struct {
	TeamA Record `json:"team_a"`
	TeamB Record `json:"team_b"`
}
