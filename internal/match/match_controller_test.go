package match

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/DhavalSuthar-24/crickettourney/internal/standings"
	"github.com/bytedance/sonic"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMatchRouter(t *testing.T) (*gin.Engine, *serviceFixture) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	f := newServiceFixture(t)
	r := gin.New()
	api := r.Group("/api")
	MatchRoutes(api, NewMatchController(f.svc))
	standings.StandingsRoutes(api, standings.NewStandingsController(f.engine, f.svc))
	return r, f
}

func doJSON(r http.Handler, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

const completeBody = `{
	"first_innings": {"batting_team_id": 1, "runs": 180, "wickets": 6, "overs": 20},
	"second_innings": {"batting_team_id": 2, "runs": 150, "wickets": 8, "overs": 20},
	"outcome": "teamA_won"
}`

func TestMatchEndpointsLifecycle(t *testing.T) {
	t.Parallel()
	r, _ := newMatchRouter(t)

	rec := doJSON(r, http.MethodPost, "/api/matches", `{"team_a_id":1,"team_b_id":2,"date":"2025-03-01T14:00:00Z","venue":"Wankhede","stage":"Group"}`)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	rec = doJSON(r, http.MethodPost, "/api/matches/1/deliveries", `{"innings":1,"over":1,"ball":1,"runs":4}`)
	assert.Equal(t, http.StatusConflict, rec.Code)

	rec = doJSON(r, http.MethodPost, "/api/matches/1/start", "")
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	rec = doJSON(r, http.MethodPost, "/api/matches/1/deliveries", `{"innings":1,"over":1,"ball":1,"runs":4}`)
	assert.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	rec = doJSON(r, http.MethodPost, "/api/matches/1/complete", completeBody)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	var body struct {
		Data Completion `json:"data"`
	}
	require.NoError(t, sonic.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, StatusCompleted, body.Data.Match.Status)
	assert.Equal(t, "Alpha won by 30 runs", body.Data.Match.Result)
	assert.Equal(t, 2, body.Data.Standings.TeamA.Points)

	rec = doJSON(r, http.MethodPost, "/api/matches/1/complete", completeBody)
	assert.Equal(t, http.StatusConflict, rec.Code)

	rec = doJSON(r, http.MethodDelete, "/api/matches/1", "")
	assert.Equal(t, http.StatusConflict, rec.Code)

	rec = doJSON(r, http.MethodGet, "/api/points", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var table struct {
		Data []standings.Record `json:"data"`
	}
	require.NoError(t, sonic.Unmarshal(rec.Body.Bytes(), &table))
	require.Len(t, table.Data, 2)
	assert.Equal(t, uint(1), table.Data[0].TeamID)
	assert.Equal(t, 1, table.Data[0].MatchesPlayed)
	assert.Equal(t, 1.5, table.Data[0].NRR)
}

func TestMatchEndpointsRejectBadInput(t *testing.T) {
	t.Parallel()
	r, _ := newMatchRouter(t)

	rec := doJSON(r, http.MethodPost, "/api/matches", `{"team_a_id":1,"team_b_id":1,"date":"2025-03-01T14:00:00Z","stage":"Group"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = doJSON(r, http.MethodPost, "/api/matches", `{"team_a_id":1,"team_b_id":2,"date":"2025-03-01T14:00:00Z","stage":"League"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = doJSON(r, http.MethodPost, "/api/matches", `{"team_a_id":1,"team_b_id":9,"date":"2025-03-01T14:00:00Z","stage":"Group"}`)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = doJSON(r, http.MethodGet, "/api/matches/abc", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = doJSON(r, http.MethodGet, "/api/matches/7", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = doJSON(r, http.MethodPost, "/api/matches", `{"team_a_id":1,"team_b_id":2,"date":"2025-03-01T14:00:00Z","stage":"Group","overs_limit":10}`)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	rec = doJSON(r, http.MethodPost, "/api/matches/1/complete", completeBody)
	assert.Equal(t, http.StatusBadRequest, rec.Code, "20 overs do not fit a 10-over match")
}

func TestListMatchesFilters(t *testing.T) {
	t.Parallel()
	r, _ := newMatchRouter(t)

	for _, body := range []string{
		`{"team_a_id":1,"team_b_id":2,"date":"2025-03-01T14:00:00Z","stage":"Group"}`,
		`{"team_a_id":2,"team_b_id":3,"date":"2025-03-02T14:00:00Z","stage":"Group"}`,
		`{"team_a_id":1,"team_b_id":3,"date":"2025-03-05T14:00:00Z","stage":"Final"}`,
	} {
		rec := doJSON(r, http.MethodPost, "/api/matches", body)
		require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	}

	var page struct {
		Data       []Match `json:"data"`
		Pagination struct {
			TotalItems int64 `json:"total_items"`
		} `json:"pagination"`
	}

	rec := doJSON(r, http.MethodGet, "/api/matches?team_id=3", "")
	require.Equal(t, http.StatusOK, rec.Code)
	require.NoError(t, sonic.Unmarshal(rec.Body.Bytes(), &page))
	assert.EqualValues(t, 2, page.Pagination.TotalItems)

	rec = doJSON(r, http.MethodGet, "/api/matches?stage=Final", "")
	require.Equal(t, http.StatusOK, rec.Code)
	require.NoError(t, sonic.Unmarshal(rec.Body.Bytes(), &page))
	require.Len(t, page.Data, 1)
	assert.Equal(t, StageFinal, page.Data[0].Stage)
}

func TestPointsUpdateGoesThroughCompletion(t *testing.T) {
	t.Parallel()
	r, _ := newMatchRouter(t)

	rec := doJSON(r, http.MethodPost, "/api/matches", `{"team_a_id":1,"team_b_id":2,"date":"2025-03-01T14:00:00Z","stage":"Group"}`)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	update := `{"match_id":1,"teamA":1,"teamB":2,"winner":1,"teamARuns":180,"teamAOvers":20,"teamBRuns":150,"teamBOvers":20,"stage":"Group"}`
	rec = doJSON(r, http.MethodPost, "/api/points/update", update)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	rec = doJSON(r, http.MethodPost, "/api/points/update", update)
	assert.Equal(t, http.StatusConflict, rec.Code, "a match result is counted once")

	rec = doJSON(r, http.MethodPost, "/api/points/rebuild", "")
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	rec = doJSON(r, http.MethodGet, "/api/points/1", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var body struct {
		Data standings.Record `json:"data"`
	}
	require.NoError(t, sonic.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, 1, body.Data.MatchesPlayed)
	assert.Equal(t, 2, body.Data.Points)
	assert.Equal(t, 20.0, body.Data.OversPlayed)

	rec = doJSON(r, http.MethodGet, "/api/points/3", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
