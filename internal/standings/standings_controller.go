package standings

import (
	"context"
	"net/http"
	"strconv"

	"github.com/DhavalSuthar-24/crickettourney/pkg/responses"
	"github.com/gin-gonic/gin"
)

// MatchResults is the part of the match record the points endpoints need.
// Results only reach the table through a guarded match completion, and a
// rebuild reads the completed matches in the transaction that rewrites it.
type MatchResults interface {
	RecordResult(ctx context.Context, res Result) (*Outcome, error)
	RebuildStandings(ctx context.Context) ([]Record, error)
}

// StandingsController serves the points table.
type StandingsController struct {
	engine  *Engine
	matches MatchResults
}

func NewStandingsController(engine *Engine, matches MatchResults) *StandingsController {
	return &StandingsController{engine: engine, matches: matches}
}

// UpdatePointsRequest mirrors the legacy points update payload. MatchID is
// required so the completion guard can see it.
type UpdatePointsRequest struct {
	MatchID    uint    `json:"match_id" binding:"required"`
	TeamA      uint    `json:"teamA" binding:"required"`
	TeamB      uint    `json:"teamB" binding:"required,nefield=TeamA"`
	Winner     uint    `json:"winner"`
	TeamARuns  int     `json:"teamARuns" binding:"gte=0"`
	TeamAOvers float64 `json:"teamAOvers" binding:"gte=0"`
	TeamBRuns  int     `json:"teamBRuns" binding:"gte=0"`
	TeamBOvers float64 `json:"teamBOvers" binding:"gte=0"`
	Stage      string  `json:"stage" binding:"required,oneof=Group Quarter Semi Final"`
}

// GetTable godoc
// @Summary Get the points table
// @Description Every team's record ordered by points, then net run rate.
// @Tags Points
// @Produce json
// @Success 200 {object} responses.SuccessResponse{data=[]Record}
// @Failure 500 {object} responses.ErrorResponse
// @Router /points [get]
func (sc *StandingsController) GetTable(c *gin.Context) {
	table, err := sc.engine.Table(c.Request.Context())
	if err != nil {
		responses.SendAppError(c, err)
		return
	}
	responses.SendSuccess(c, http.StatusOK, "Points table retrieved successfully", table)
}

// GetTeamRecord godoc
// @Summary Get one team's standings
// @Tags Points
// @Produce json
// @Param team_id path uint true "Team ID"
// @Success 200 {object} responses.SuccessResponse{data=Record}
// @Failure 400 {object} responses.ErrorResponse
// @Failure 404 {object} responses.ErrorResponse
// @Router /points/{team_id} [get]
func (sc *StandingsController) GetTeamRecord(c *gin.Context) {
	teamID, err := strconv.ParseUint(c.Param("team_id"), 10, 32)
	if err != nil {
		responses.SendError(c, http.StatusBadRequest, "Invalid team ID")
		return
	}
	rec, err := sc.engine.Get(c.Request.Context(), uint(teamID))
	if err != nil {
		responses.SendAppError(c, err)
		return
	}
	responses.SendSuccess(c, http.StatusOK, "Team standings retrieved successfully", rec)
}

// UpdatePoints godoc
// @Summary Record a match result
// @Description Completes the referenced match with the given scores and updates both teams. A match can only be counted once.
// @Tags Points
// @Accept json
// @Produce json
// @Param result body UpdatePointsRequest true "Match result"
// @Success 200 {object} responses.SuccessResponse{data=Outcome}
// @Failure 400 {object} responses.ErrorResponse
// @Failure 404 {object} responses.ErrorResponse
// @Failure 409 {object} responses.ErrorResponse "Match already completed"
// @Failure 500 {object} responses.ErrorResponse
// @Router /points/update [post]
func (sc *StandingsController) UpdatePoints(c *gin.Context) {
	var req UpdatePointsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.SendValidationError(c, err)
		return
	}
	out, err := sc.matches.RecordResult(c.Request.Context(), Result{
		MatchID:    req.MatchID,
		TeamA:      req.TeamA,
		TeamB:      req.TeamB,
		Winner:     req.Winner,
		TeamARuns:  req.TeamARuns,
		TeamAOvers: req.TeamAOvers,
		TeamBRuns:  req.TeamBRuns,
		TeamBOvers: req.TeamBOvers,
		Stage:      req.Stage,
	})
	if err != nil {
		responses.SendAppError(c, err)
		return
	}
	responses.SendSuccess(c, http.StatusOK, "Points updated successfully", out)
}

// RebuildTable godoc
// @Summary Rebuild the points table
// @Description Recomputes every record from the completed matches.
// @Tags Points
// @Produce json
// @Success 200 {object} responses.SuccessResponse{data=[]Record}
// @Failure 500 {object} responses.ErrorResponse
// @Router /points/rebuild [post]
func (sc *StandingsController) RebuildTable(c *gin.Context) {
	ctx := c.Request.Context()
	if _, err := sc.matches.RebuildStandings(ctx); err != nil {
		responses.SendAppError(c, err)
		return
	}
	// Re-read so the rows carry their teams.
	table, err := sc.engine.Table(ctx)
	if err != nil {
		responses.SendAppError(c, err)
		return
	}
	responses.SendSuccess(c, http.StatusOK, "Points table rebuilt successfully", table)
}
