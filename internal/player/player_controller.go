package player

import (
	"context"
	"net/http"
	"strconv"

	"github.com/DhavalSuthar-24/crickettourney/internal/models"
	"github.com/DhavalSuthar-24/crickettourney/pkg/apperr"
	"github.com/DhavalSuthar-24/crickettourney/pkg/logging"
	"github.com/DhavalSuthar-24/crickettourney/pkg/responses"
	"github.com/gin-gonic/gin"
)

var validRoles = map[string]bool{
	RoleBatsman:      true,
	RoleBowler:       true,
	RoleAllRounder:   true,
	RoleWicketkeeper: true,
}

// RosterLookup reports which team, if any, a player is signed to.
type RosterLookup interface {
	TeamIDForPlayer(ctx context.Context, playerID uint) (uint, error)
}

// PlayerController handles player HTTP requests.
type PlayerController struct {
	repo    PlayerRepository
	rosters RosterLookup
	log     *logging.Logger
}

func NewPlayerController(repo PlayerRepository, rosters RosterLookup, log *logging.Logger) *PlayerController {
	return &PlayerController{repo: repo, rosters: rosters, log: log}
}

type CreatePlayerRequest struct {
	Name       string            `json:"name" binding:"required,min=1,max=100"`
	Role       string            `json:"role" binding:"required"`
	Attributes models.Attributes `json:"attributes"`
}

type UpdatePlayerRequest struct {
	Name       *string           `json:"name" binding:"omitempty,min=1,max=100"`
	Role       *string           `json:"role"`
	Attributes models.Attributes `json:"attributes"`
}

func checkRole(raw string) (string, error) {
	role := NormalizeRole(raw)
	if !validRoles[role] {
		return "", apperr.Validation("role %q must be one of batsman, bowler, all-rounder, wicketkeeper", raw)
	}
	return role, nil
}

func parseID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil || id == 0 {
		responses.SendError(c, http.StatusBadRequest, "Invalid player ID")
		return 0, false
	}
	return uint(id), true
}

// CreatePlayer godoc
// @Summary Register a player
// @Tags Players
// @Accept json
// @Produce json
// @Param player body CreatePlayerRequest true "Player"
// @Success 201 {object} responses.SuccessResponse{data=Player}
// @Failure 400 {object} responses.ErrorResponse
// @Failure 500 {object} responses.ErrorResponse
// @Router /players [post]
func (pc *PlayerController) CreatePlayer(c *gin.Context) {
	var req CreatePlayerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.SendValidationError(c, err)
		return
	}
	role, err := checkRole(req.Role)
	if err != nil {
		responses.SendAppError(c, err)
		return
	}
	p := Player{Name: req.Name, Role: role, Attributes: req.Attributes}
	if p.Attributes == nil {
		p.Attributes = models.Attributes{}
	}
	if err := pc.repo.CreatePlayer(c.Request.Context(), &p); err != nil {
		responses.SendAppError(c, apperr.Storage(err, "create player"))
		return
	}
	pc.log.Info("player created", "player_id", p.ID, "role", p.Role)
	responses.SendSuccess(c, http.StatusCreated, "Player created successfully", p)
}

// GetAllPlayers godoc
// @Summary List players
// @Description Optional role filter ("all players" disables it) and case-insensitive name search.
// @Tags Players
// @Produce json
// @Param role query string false "Role"
// @Param search query string false "Name contains"
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Items per page" default(50)
// @Success 200 {object} responses.PaginatedResponse{data=[]Player}
// @Failure 500 {object} responses.ErrorResponse
// @Router /players [get]
func (pc *PlayerController) GetAllPlayers(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 200 {
		limit = 50
	}

	players, total, err := pc.repo.GetAllPlayers(c.Request.Context(), ListFilter{
		Role:   c.Query("role"),
		Search: c.Query("search"),
		Page:   page,
		Limit:  limit,
	})
	if err != nil {
		responses.SendAppError(c, apperr.Storage(err, "list players"))
		return
	}
	responses.SendPaginated(c, http.StatusOK, "Players retrieved successfully", players, total, page, limit)
}

// GetPlayerByID godoc
// @Summary Get a player
// @Tags Players
// @Produce json
// @Param id path uint true "Player ID"
// @Success 200 {object} responses.SuccessResponse{data=Player}
// @Failure 404 {object} responses.ErrorResponse
// @Router /players/{id} [get]
func (pc *PlayerController) GetPlayerByID(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	p, err := pc.repo.GetPlayerByID(c.Request.Context(), id)
	if err != nil {
		responses.SendAppError(c, apperr.Storage(err, "get player"))
		return
	}
	if p == nil {
		responses.NotFound(c, "Player")
		return
	}
	responses.SendSuccess(c, http.StatusOK, "Player retrieved successfully", p)
}

// UpdatePlayer godoc
// @Summary Update a player
// @Tags Players
// @Accept json
// @Produce json
// @Param id path uint true "Player ID"
// @Param player body UpdatePlayerRequest true "Fields to change"
// @Success 200 {object} responses.SuccessResponse{data=Player}
// @Failure 400 {object} responses.ErrorResponse
// @Failure 404 {object} responses.ErrorResponse
// @Router /players/{id} [put]
func (pc *PlayerController) UpdatePlayer(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req UpdatePlayerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.SendValidationError(c, err)
		return
	}

	ctx := c.Request.Context()
	p, err := pc.repo.GetPlayerByID(ctx, id)
	if err != nil {
		responses.SendAppError(c, apperr.Storage(err, "get player"))
		return
	}
	if p == nil {
		responses.NotFound(c, "Player")
		return
	}

	if req.Name != nil {
		p.Name = *req.Name
	}
	if req.Role != nil {
		role, err := checkRole(*req.Role)
		if err != nil {
			responses.SendAppError(c, err)
			return
		}
		p.Role = role
	}
	if req.Attributes != nil {
		p.Attributes = req.Attributes
	}

	if err := pc.repo.UpdatePlayer(ctx, p); err != nil {
		responses.SendAppError(c, apperr.Storage(err, "update player"))
		return
	}
	responses.SendSuccess(c, http.StatusOK, "Player updated successfully", p)
}

// DeletePlayer godoc
// @Summary Delete a player
// @Description A player still on a team roster cannot be deleted.
// @Tags Players
// @Produce json
// @Param id path uint true "Player ID"
// @Success 200 {object} responses.SuccessResponse
// @Failure 404 {object} responses.ErrorResponse
// @Failure 409 {object} responses.ErrorResponse
// @Router /players/{id} [delete]
func (pc *PlayerController) DeletePlayer(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	ctx := c.Request.Context()
	p, err := pc.repo.GetPlayerByID(ctx, id)
	if err != nil {
		responses.SendAppError(c, apperr.Storage(err, "get player"))
		return
	}
	if p == nil {
		responses.NotFound(c, "Player")
		return
	}

	if pc.rosters != nil {
		teamID, err := pc.rosters.TeamIDForPlayer(ctx, id)
		if err != nil {
			responses.SendAppError(c, apperr.Storage(err, "check roster"))
			return
		}
		if teamID != 0 {
			responses.SendAppError(c, apperr.Conflict("player %d is on the roster of team %d", id, teamID))
			return
		}
	}

	if err := pc.repo.DeletePlayer(ctx, id); err != nil {
		responses.SendAppError(c, apperr.Storage(err, "delete player"))
		return
	}
	pc.log.Info("player deleted", "player_id", id)
	responses.SendSuccess(c, http.StatusOK, "Player deleted successfully", nil)
}
