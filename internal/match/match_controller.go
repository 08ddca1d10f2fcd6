package match

import (
	"net/http"
	"strconv"
	"time"

	"github.com/DhavalSuthar-24/crickettourney/pkg/responses"
	"github.com/gin-gonic/gin"
)

// MatchController handles match-related HTTP requests
type MatchController struct {
	svc *MatchService
}

// NewMatchController creates a new match controller
func NewMatchController(svc *MatchService) *MatchController {
	return &MatchController{svc: svc}
}

// --- DTOs ---

type CreateMatchRequest struct {
	TeamAID    uint      `json:"team_a_id" binding:"required"`
	TeamBID    uint      `json:"team_b_id" binding:"required,nefield=TeamAID"`
	Date       time.Time `json:"date" binding:"required"`
	Venue      string    `json:"venue" binding:"max=200"`
	Stage      Stage     `json:"stage" binding:"required,oneof=Group Quarter Semi Final"`
	OversLimit int       `json:"overs_limit" binding:"omitempty,min=1,max=50"`
}

type UpdateMatchRequest struct {
	TeamAID    *uint      `json:"team_a_id" binding:"omitempty,min=1"`
	TeamBID    *uint      `json:"team_b_id" binding:"omitempty,min=1"`
	Date       *time.Time `json:"date"`
	Venue      *string    `json:"venue" binding:"omitempty,max=200"`
	Stage      *Stage     `json:"stage" binding:"omitempty,oneof=Group Quarter Semi Final"`
	OversLimit *int       `json:"overs_limit" binding:"omitempty,min=1,max=50"`
}

type InningsRequest struct {
	BattingTeamID uint    `json:"batting_team_id" binding:"required"`
	Runs          int     `json:"runs" binding:"gte=0"`
	Wickets       int     `json:"wickets" binding:"gte=0,lte=10"`
	Overs         float64 `json:"overs" binding:"gte=0"`
}

func (r InningsRequest) innings() Innings {
	return Innings{
		BattingTeamID: r.BattingTeamID,
		Runs:          r.Runs,
		Wickets:       r.Wickets,
		Overs:         r.Overs,
	}
}

type CompleteMatchRequest struct {
	FirstInnings  InningsRequest `json:"first_innings"`
	SecondInnings InningsRequest `json:"second_innings"`
	Outcome       Outcome        `json:"outcome" binding:"required,oneof=teamA_won teamB_won draw tie"`
	Result        string         `json:"result" binding:"max=500"`
}

type DeliveryRequest struct {
	Innings     int    `json:"innings" binding:"required,oneof=1 2"`
	Over        int    `json:"over" binding:"required,min=1"`
	Ball        int    `json:"ball" binding:"required,min=1,max=12"`
	BatterID    *uint  `json:"batter_id"`
	BowlerID    *uint  `json:"bowler_id"`
	Runs        int    `json:"runs" binding:"gte=0,lte=7"`
	Extras      int    `json:"extras" binding:"gte=0,lte=7"`
	ExtraType   string `json:"extra_type" binding:"omitempty,oneof=wide no_ball bye leg_bye penalty"`
	IsWicket    bool   `json:"is_wicket"`
	Description string `json:"description" binding:"max=500"`
}

type OverSummaryRequest struct {
	Innings     int    `json:"innings" binding:"required,oneof=1 2"`
	Over        int    `json:"over" binding:"required,min=1"`
	Runs        int    `json:"runs" binding:"gte=0"`
	Wickets     int    `json:"wickets" binding:"gte=0,lte=10"`
	Description string `json:"description" binding:"max=1000"`
}

func parseMatchID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil || id == 0 {
		responses.SendError(c, http.StatusBadRequest, "Invalid match ID")
		return 0, false
	}
	return uint(id), true
}

// --- Handlers ---

// CreateMatch godoc
// @Summary Schedule a match
// @Tags Matches
// @Accept json
// @Produce json
// @Param match body CreateMatchRequest true "Match"
// @Success 201 {object} responses.SuccessResponse{data=Match}
// @Failure 400 {object} responses.ErrorResponse
// @Failure 404 {object} responses.ErrorResponse "Team not found"
// @Router /matches [post]
func (mc *MatchController) CreateMatch(c *gin.Context) {
	var req CreateMatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.SendValidationError(c, err)
		return
	}
	m, err := mc.svc.Create(c.Request.Context(), req)
	if err != nil {
		responses.SendAppError(c, err)
		return
	}
	responses.SendSuccess(c, http.StatusCreated, "Match created successfully", m)
}

// GetMatches godoc
// @Summary List matches
// @Tags Matches
// @Produce json
// @Param status query string false "scheduled, in_progress or completed"
// @Param stage query string false "Group, Quarter, Semi or Final"
// @Param team_id query int false "Matches involving this team"
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Items per page" default(50)
// @Success 200 {object} responses.PaginatedResponse{data=[]Match}
// @Router /matches [get]
func (mc *MatchController) GetMatches(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 200 {
		limit = 50
	}
	teamID, _ := strconv.ParseUint(c.Query("team_id"), 10, 32)

	matches, total, err := mc.svc.List(c.Request.Context(), ListFilter{
		Status: Status(c.Query("status")),
		Stage:  Stage(c.Query("stage")),
		TeamID: uint(teamID),
		Page:   page,
		Limit:  limit,
	})
	if err != nil {
		responses.SendAppError(c, err)
		return
	}
	responses.SendPaginated(c, http.StatusOK, "Matches retrieved successfully", matches, total, page, limit)
}

// GetMatchByID godoc
// @Summary Get a match
// @Description Includes teams, innings and the ball-by-ball log.
// @Tags Matches
// @Produce json
// @Param id path uint true "Match ID"
// @Success 200 {object} responses.SuccessResponse{data=Match}
// @Failure 404 {object} responses.ErrorResponse
// @Router /matches/{id} [get]
func (mc *MatchController) GetMatchByID(c *gin.Context) {
	id, ok := parseMatchID(c)
	if !ok {
		return
	}
	m, err := mc.svc.Get(c.Request.Context(), id)
	if err != nil {
		responses.SendAppError(c, err)
		return
	}
	responses.SendSuccess(c, http.StatusOK, "Match retrieved successfully", m)
}

// UpdateMatch godoc
// @Summary Update a match
// @Description Completed matches cannot be edited. Teams can only change before the match starts.
// @Tags Matches
// @Accept json
// @Produce json
// @Param id path uint true "Match ID"
// @Param match body UpdateMatchRequest true "Fields to change"
// @Success 200 {object} responses.SuccessResponse{data=Match}
// @Failure 400 {object} responses.ErrorResponse
// @Failure 404 {object} responses.ErrorResponse
// @Failure 409 {object} responses.ErrorResponse
// @Router /matches/{id} [put]
func (mc *MatchController) UpdateMatch(c *gin.Context) {
	id, ok := parseMatchID(c)
	if !ok {
		return
	}
	var req UpdateMatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.SendValidationError(c, err)
		return
	}
	m, err := mc.svc.Update(c.Request.Context(), id, req)
	if err != nil {
		responses.SendAppError(c, err)
		return
	}
	responses.SendSuccess(c, http.StatusOK, "Match updated successfully", m)
}

// DeleteMatch godoc
// @Summary Delete a match
// @Tags Matches
// @Produce json
// @Param id path uint true "Match ID"
// @Success 200 {object} responses.SuccessResponse
// @Failure 404 {object} responses.ErrorResponse
// @Failure 409 {object} responses.ErrorResponse "Match completed"
// @Router /matches/{id} [delete]
func (mc *MatchController) DeleteMatch(c *gin.Context) {
	id, ok := parseMatchID(c)
	if !ok {
		return
	}
	if err := mc.svc.Delete(c.Request.Context(), id); err != nil {
		responses.SendAppError(c, err)
		return
	}
	responses.SendSuccess(c, http.StatusOK, "Match deleted successfully", nil)
}

// StartMatch godoc
// @Summary Start a match
// @Tags Matches
// @Produce json
// @Param id path uint true "Match ID"
// @Success 200 {object} responses.SuccessResponse{data=Match}
// @Failure 404 {object} responses.ErrorResponse
// @Failure 409 {object} responses.ErrorResponse "Match not scheduled"
// @Router /matches/{id}/start [post]
func (mc *MatchController) StartMatch(c *gin.Context) {
	id, ok := parseMatchID(c)
	if !ok {
		return
	}
	m, err := mc.svc.Start(c.Request.Context(), id)
	if err != nil {
		responses.SendAppError(c, err)
		return
	}
	responses.SendSuccess(c, http.StatusOK, "Match started successfully", m)
}

// CompleteMatch godoc
// @Summary Complete a match
// @Description Records both innings and the outcome, then updates the points table. A match can be completed only once.
// @Tags Matches
// @Accept json
// @Produce json
// @Param id path uint true "Match ID"
// @Param result body CompleteMatchRequest true "Final scores"
// @Success 200 {object} responses.SuccessResponse{data=Completion}
// @Failure 400 {object} responses.ErrorResponse
// @Failure 404 {object} responses.ErrorResponse
// @Failure 409 {object} responses.ErrorResponse "Match already completed"
// @Failure 500 {object} responses.ErrorResponse
// @Router /matches/{id}/complete [post]
func (mc *MatchController) CompleteMatch(c *gin.Context) {
	id, ok := parseMatchID(c)
	if !ok {
		return
	}
	var req CompleteMatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.SendValidationError(c, err)
		return
	}
	done, err := mc.svc.Complete(c.Request.Context(), id, req)
	if err != nil {
		responses.SendAppError(c, err)
		return
	}
	responses.SendSuccess(c, http.StatusOK, "Match completed successfully", done)
}

// RecordDelivery godoc
// @Summary Log a delivery
// @Description Appends one ball to the live log and broadcasts it to live subscribers.
// @Tags Matches
// @Accept json
// @Produce json
// @Param id path uint true "Match ID"
// @Param delivery body DeliveryRequest true "Delivery"
// @Success 201 {object} responses.SuccessResponse{data=Delivery}
// @Failure 400 {object} responses.ErrorResponse
// @Failure 409 {object} responses.ErrorResponse "Match not in progress"
// @Router /matches/{id}/deliveries [post]
func (mc *MatchController) RecordDelivery(c *gin.Context) {
	id, ok := parseMatchID(c)
	if !ok {
		return
	}
	var req DeliveryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.SendValidationError(c, err)
		return
	}
	d, err := mc.svc.RecordDelivery(c.Request.Context(), id, req)
	if err != nil {
		responses.SendAppError(c, err)
		return
	}
	responses.SendSuccess(c, http.StatusCreated, "Delivery recorded successfully", d)
}

// RecordOverSummary godoc
// @Summary Log an over summary
// @Tags Matches
// @Accept json
// @Produce json
// @Param id path uint true "Match ID"
// @Param over body OverSummaryRequest true "Over summary"
// @Success 201 {object} responses.SuccessResponse{data=OverSummary}
// @Failure 400 {object} responses.ErrorResponse
// @Failure 409 {object} responses.ErrorResponse "Match not in progress"
// @Router /matches/{id}/overs [post]
func (mc *MatchController) RecordOverSummary(c *gin.Context) {
	id, ok := parseMatchID(c)
	if !ok {
		return
	}
	var req OverSummaryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.SendValidationError(c, err)
		return
	}
	o, err := mc.svc.RecordOverSummary(c.Request.Context(), id, req)
	if err != nil {
		responses.SendAppError(c, err)
		return
	}
	responses.SendSuccess(c, http.StatusCreated, "Over summary recorded successfully", o)
}
