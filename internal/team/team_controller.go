package team

import (
	"context"
	"errors"
	"mime/multipart"
	"net/http"
	"sort"
	"strconv"
	"strings"

	"github.com/DhavalSuthar-24/crickettourney/internal/player"
	"github.com/DhavalSuthar-24/crickettourney/pkg/apperr"
	"github.com/DhavalSuthar-24/crickettourney/pkg/logging"
	"github.com/DhavalSuthar-24/crickettourney/pkg/responses"
	"github.com/DhavalSuthar-24/crickettourney/pkg/upload"
	"github.com/gin-gonic/gin"
)

// MatchLookup tells whether a team is referenced by any match.
type MatchLookup interface {
	CountMatchesForTeam(ctx context.Context, teamID uint) (int64, error)
}

// TeamController handles team-related HTTP requests
type TeamController struct {
	repo    TeamRepository
	players player.PlayerRepository
	matches MatchLookup
	store   *upload.Store
	log     *logging.Logger
}

// NewTeamController creates a new team controller
func NewTeamController(repo TeamRepository, players player.PlayerRepository, matches MatchLookup, store *upload.Store, log *logging.Logger) *TeamController {
	return &TeamController{
		repo:    repo,
		players: players,
		matches: matches,
		store:   store,
		log:     log,
	}
}

// --- DTOs for requests ---

// CreateTeamForm is sent as multipart/form-data so the image can travel with
// it. Players is a JSON array of {player_id, role}.
type CreateTeamForm struct {
	Name        string `form:"name" binding:"required,min=2,max=100"`
	Description string `form:"description" binding:"max=1000"`
	Players     string `form:"players"`
}

type UpdateTeamForm struct {
	Name        *string `form:"name" binding:"omitempty,min=2,max=100"`
	Description *string `form:"description" binding:"omitempty,max=1000"`
	Players     *string `form:"players"`
}

// --- Helpers ---

func parseTeamID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil || id == 0 {
		responses.SendError(c, http.StatusBadRequest, "Invalid team ID")
		return 0, false
	}
	return uint(id), true
}

// imageFile returns the optional "image" part.
func imageFile(c *gin.Context) (*multipart.FileHeader, error) {
	fh, err := c.FormFile("image")
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) || errors.Is(err, http.ErrNotMultipart) {
			return nil, nil
		}
		return nil, apperr.Validation("invalid image upload: %v", err)
	}
	return fh, nil
}

// checkRoster validates entries and makes sure every player exists and is not
// signed to another team.
func (tc *TeamController) checkRoster(ctx context.Context, entries []RosterEntry, teamID uint) error {
	if err := ValidateRoster(entries); err != nil {
		return err
	}
	ids := playerIDs(entries)
	found, err := tc.players.GetPlayersByIDs(ctx, ids)
	if err != nil {
		return apperr.Storage(err, "load roster players")
	}
	if len(found) != len(ids) {
		known := make(map[uint]bool, len(found))
		for _, p := range found {
			known[p.ID] = true
		}
		for _, id := range ids {
			if !known[id] {
				return apperr.NotFound("player", id)
			}
		}
	}

	taken, err := tc.repo.RosterConflicts(ctx, ids, teamID)
	if err != nil {
		return apperr.Storage(err, "check roster conflicts")
	}
	if len(taken) > 0 {
		sort.Slice(taken, func(i, j int) bool { return taken[i].PlayerID < taken[j].PlayerID })
		return apperr.Conflict("player %d is already on the roster of team %d", taken[0].PlayerID, taken[0].TeamID)
	}
	return nil
}

func (tc *TeamController) checkName(ctx context.Context, name string, teamID uint) error {
	existing, err := tc.repo.GetTeamByName(ctx, name)
	if err != nil {
		return apperr.Storage(err, "check team name")
	}
	if existing != nil && existing.ID != teamID {
		return apperr.Conflict("team name %q already exists", strings.TrimSpace(name))
	}
	return nil
}

func (tc *TeamController) discardImage(path string) {
	if err := tc.store.Remove(path); err != nil {
		tc.log.Warn("failed to remove team image", "path", path, "err", err)
	}
}

// --- Team Handlers ---

// CreateTeam godoc
// @Summary Create a new team
// @Description Creates a team with an optional roster and image.
// @Tags Teams
// @Accept multipart/form-data
// @Produce json
// @Param name formData string true "Team name"
// @Param description formData string false "Description"
// @Param players formData string false "Roster as JSON: [{\"player_id\":1,\"role\":\"C\"}]"
// @Param image formData file false "Team image"
// @Success 201 {object} responses.SuccessResponse{data=Team} "Team created successfully"
// @Failure 400 {object} responses.ErrorResponse "Invalid input"
// @Failure 409 {object} responses.ErrorResponse "Name taken or player already signed"
// @Failure 500 {object} responses.ErrorResponse "Internal server error"
// @Router /teams [post]
func (tc *TeamController) CreateTeam(c *gin.Context) {
	var form CreateTeamForm
	if err := c.ShouldBind(&form); err != nil {
		responses.SendValidationError(c, err)
		return
	}
	ctx := c.Request.Context()

	entries, err := ParseRoster(form.Players)
	if err != nil {
		responses.SendAppError(c, err)
		return
	}
	if err := tc.checkName(ctx, form.Name, 0); err != nil {
		responses.SendAppError(c, err)
		return
	}
	if err := tc.checkRoster(ctx, entries, 0); err != nil {
		responses.SendAppError(c, err)
		return
	}

	fh, err := imageFile(c)
	if err != nil {
		responses.SendAppError(c, err)
		return
	}
	team := Team{
		Name:        strings.TrimSpace(form.Name),
		Description: form.Description,
	}
	if fh != nil {
		if team.Image, err = tc.store.Save(fh); err != nil {
			responses.SendAppError(c, err)
			return
		}
	}

	err = tc.repo.WithTransaction(ctx, func(repo TeamRepository) error {
		if err := repo.CreateTeam(ctx, &team); err != nil {
			return err
		}
		return repo.ReplaceRoster(ctx, team.ID, rosterRows(team.ID, entries))
	})
	if err != nil {
		tc.discardImage(team.Image)
		responses.SendAppError(c, apperr.Storage(err, "create team"))
		return
	}
	tc.log.Info("team created", "team_id", team.ID, "players", len(entries))

	created, err := tc.repo.GetTeamByID(ctx, team.ID)
	if err != nil {
		responses.SendAppError(c, apperr.Storage(err, "reload team"))
		return
	}
	responses.SendSuccess(c, http.StatusCreated, "Team created successfully", created)
}

// GetTeamByID godoc
// @Summary Get a team by its ID
// @Description Retrieves a team with its roster.
// @Tags Teams
// @Produce json
// @Param id path uint true "Team ID"
// @Success 200 {object} responses.SuccessResponse{data=Team} "Team details"
// @Failure 404 {object} responses.ErrorResponse "Team not found"
// @Failure 500 {object} responses.ErrorResponse "Internal server error"
// @Router /teams/{id} [get]
func (tc *TeamController) GetTeamByID(c *gin.Context) {
	teamID, ok := parseTeamID(c)
	if !ok {
		return
	}
	team, err := tc.repo.GetTeamByID(c.Request.Context(), teamID)
	if err != nil {
		responses.SendAppError(c, apperr.Storage(err, "get team"))
		return
	}
	if team == nil {
		responses.NotFound(c, "Team")
		return
	}
	responses.SendSuccess(c, http.StatusOK, "Team retrieved successfully", team)
}

// GetAllTeams godoc
// @Summary Get all teams
// @Description Retrieves teams with their rosters, optionally filtered by name.
// @Tags Teams
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Items per page" default(50)
// @Param search query string false "Name contains"
// @Success 200 {object} responses.PaginatedResponse{data=[]Team} "List of teams"
// @Failure 500 {object} responses.ErrorResponse "Internal server error"
// @Router /teams [get]
func (tc *TeamController) GetAllTeams(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 200 {
		limit = 50
	}

	teams, total, err := tc.repo.GetAllTeams(c.Request.Context(), page, limit, c.Query("search"))
	if err != nil {
		responses.SendAppError(c, apperr.Storage(err, "list teams"))
		return
	}
	responses.SendPaginated(c, http.StatusOK, "Teams retrieved successfully", teams, total, page, limit)
}

// GetAvailablePlayers godoc
// @Summary Players without a team
// @Description Lists players not on any roster.
// @Tags Teams
// @Produce json
// @Success 200 {object} responses.SuccessResponse{data=[]player.Player}
// @Failure 500 {object} responses.ErrorResponse
// @Router /teams/available-players [get]
func (tc *TeamController) GetAvailablePlayers(c *gin.Context) {
	players, err := tc.repo.AvailablePlayers(c.Request.Context())
	if err != nil {
		responses.SendAppError(c, apperr.Storage(err, "list available players"))
		return
	}
	responses.SendSuccess(c, http.StatusOK, "Available players retrieved successfully", players)
}

// UpdateTeam godoc
// @Summary Update a team
// @Description Changes name, description, image or roster. A players field replaces the whole roster.
// @Tags Teams
// @Accept multipart/form-data
// @Produce json
// @Param id path uint true "Team ID"
// @Param name formData string false "Team name"
// @Param description formData string false "Description"
// @Param players formData string false "Roster as JSON"
// @Param image formData file false "New team image"
// @Success 200 {object} responses.SuccessResponse{data=Team} "Team updated successfully"
// @Failure 400 {object} responses.ErrorResponse "Invalid input"
// @Failure 404 {object} responses.ErrorResponse "Team not found"
// @Failure 409 {object} responses.ErrorResponse "Conflict"
// @Router /teams/{id} [put]
func (tc *TeamController) UpdateTeam(c *gin.Context) {
	teamID, ok := parseTeamID(c)
	if !ok {
		return
	}
	var form UpdateTeamForm
	if err := c.ShouldBind(&form); err != nil {
		responses.SendValidationError(c, err)
		return
	}
	ctx := c.Request.Context()

	team, err := tc.repo.GetTeamByID(ctx, teamID)
	if err != nil {
		responses.SendAppError(c, apperr.Storage(err, "get team"))
		return
	}
	if team == nil {
		responses.NotFound(c, "Team")
		return
	}

	if form.Name != nil {
		if err := tc.checkName(ctx, *form.Name, teamID); err != nil {
			responses.SendAppError(c, err)
			return
		}
		team.Name = strings.TrimSpace(*form.Name)
	}
	if form.Description != nil {
		team.Description = *form.Description
	}

	var entries []RosterEntry
	if form.Players != nil {
		if entries, err = ParseRoster(*form.Players); err != nil {
			responses.SendAppError(c, err)
			return
		}
		if err := tc.checkRoster(ctx, entries, teamID); err != nil {
			responses.SendAppError(c, err)
			return
		}
	}

	fh, err := imageFile(c)
	if err != nil {
		responses.SendAppError(c, err)
		return
	}
	oldImage := team.Image
	if fh != nil {
		if team.Image, err = tc.store.Save(fh); err != nil {
			responses.SendAppError(c, err)
			return
		}
	}

	err = tc.repo.WithTransaction(ctx, func(repo TeamRepository) error {
		if err := repo.UpdateTeam(ctx, team); err != nil {
			return err
		}
		if form.Players == nil {
			return nil
		}
		return repo.ReplaceRoster(ctx, teamID, rosterRows(teamID, entries))
	})
	if err != nil {
		if fh != nil {
			tc.discardImage(team.Image)
		}
		responses.SendAppError(c, apperr.Storage(err, "update team"))
		return
	}
	if fh != nil && oldImage != "" {
		tc.discardImage(oldImage)
	}

	updated, err := tc.repo.GetTeamByID(ctx, teamID)
	if err != nil {
		responses.SendAppError(c, apperr.Storage(err, "reload team"))
		return
	}
	responses.SendSuccess(c, http.StatusOK, "Team updated successfully", updated)
}

// DeleteTeam godoc
// @Summary Delete a team
// @Description Releases the roster and deletes the team. Teams that appear in matches cannot be deleted.
// @Tags Teams
// @Produce json
// @Param id path uint true "Team ID"
// @Success 200 {object} responses.SuccessResponse "Team deleted successfully"
// @Failure 404 {object} responses.ErrorResponse "Team not found"
// @Failure 409 {object} responses.ErrorResponse "Team has matches"
// @Router /teams/{id} [delete]
func (tc *TeamController) DeleteTeam(c *gin.Context) {
	teamID, ok := parseTeamID(c)
	if !ok {
		return
	}
	ctx := c.Request.Context()

	team, err := tc.repo.GetTeamByID(ctx, teamID)
	if err != nil {
		responses.SendAppError(c, apperr.Storage(err, "get team"))
		return
	}
	if team == nil {
		responses.NotFound(c, "Team")
		return
	}

	if tc.matches != nil {
		n, err := tc.matches.CountMatchesForTeam(ctx, teamID)
		if err != nil {
			responses.SendAppError(c, apperr.Storage(err, "count team matches"))
			return
		}
		if n > 0 {
			responses.SendAppError(c, apperr.Conflict("team %d is referenced by %d match(es)", teamID, n))
			return
		}
	}

	if err := tc.repo.DeleteTeam(ctx, teamID); err != nil {
		responses.SendAppError(c, apperr.Storage(err, "delete team"))
		return
	}
	tc.discardImage(team.Image)
	tc.log.Info("team deleted", "team_id", teamID)
	responses.SendSuccess(c, http.StatusOK, "Team deleted successfully", nil)
}
