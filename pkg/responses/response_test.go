package responses

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/DhavalSuthar-24/crickettourney/pkg/apperr"
	"github.com/bytedance/sonic"
	"github.com/cockroachdb/errors"
	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatusFor(t *testing.T) {
	t.Parallel()

	cases := map[string]struct {
		err  error
		want int
	}{
		"validation":  {apperr.Validation("bad overs"), http.StatusBadRequest},
		"not found":   {apperr.NotFound("team", 3), http.StatusNotFound},
		"conflict":    {apperr.Conflict("already completed"), http.StatusConflict},
		"consistency": {apperr.Consistency(errors.New("write failed"), "apply"), http.StatusInternalServerError},
		"storage":     {apperr.Storage(errors.New("conn reset"), "load"), http.StatusInternalServerError},
		"plain":       {errors.New("boom"), http.StatusInternalServerError},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tc.want, StatusFor(tc.err))
		})
	}
}

type result struct {
	Stage string `validate:"oneof=Group Final"`
}

func send(fn func(c *gin.Context)) (*httptest.ResponseRecorder, ErrorResponse) {
	gin.SetMode(gin.TestMode)
	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	fn(c)

	var body ErrorResponse
	_ = sonic.Unmarshal(rec.Body.Bytes(), &body)
	return rec, body
}

func TestSendAppError(t *testing.T) {
	t.Parallel()

	rec, body := send(func(c *gin.Context) {
		SendAppError(c, errors.Wrap(apperr.Conflict("match %d is already completed", 4), "complete match"))
	})
	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, "error", body.Status)
	assert.Equal(t, http.StatusConflict, body.Code)
	assert.Contains(t, body.Message, "match 4 is already completed")

	rec, body = send(func(c *gin.Context) {
		SendAppError(c, apperr.Storage(errors.New("conn reset"), "list teams"))
	})
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "fail", body.Status)
}

func TestSendAppErrorListsFields(t *testing.T) {
	t.Parallel()

	verr := validator.New().Struct(result{Stage: "League"})
	require.Error(t, verr)
	marked := errors.Mark(verr, apperr.ErrValidation)

	rec, body := send(func(c *gin.Context) { SendAppError(c, marked) })
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "The Stage field must be one of the following: Group, Final.", body.Errors["stage"])
}

func TestSendPaginated(t *testing.T) {
	t.Parallel()
	gin.SetMode(gin.TestMode)

	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	SendPaginated(c, http.StatusOK, "", []int{1, 2}, 5, 2, 2)

	var body PaginatedResponse
	require.NoError(t, sonic.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "Data retrieved successfully", body.Message)
	assert.Equal(t, 3, body.Pagination.TotalPages)
	require.NotNil(t, body.Pagination.NextPage)
	assert.Equal(t, 3, *body.Pagination.NextPage)
	require.NotNil(t, body.Pagination.PreviousPage)
	assert.Equal(t, 1, *body.Pagination.PreviousPage)
}

func TestNewPagination(t *testing.T) {
	t.Parallel()

	cases := map[string]struct {
		total      int64
		page, size int
		pages      int
		next, prev bool
	}{
		"empty":          {total: 0, page: 1, size: 20, pages: 0},
		"single page":    {total: 7, page: 1, size: 20, pages: 1},
		"exact fit":      {total: 40, page: 2, size: 20, pages: 2, prev: true},
		"middle":         {total: 41, page: 2, size: 20, pages: 3, next: true, prev: true},
		"default size":   {total: 25, page: 1, size: 0, pages: 3, next: true},
		"past last page": {total: 5, page: 4, size: 2, pages: 3, prev: true},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			p := NewPagination(tc.total, tc.page, tc.size)
			assert.Equal(t, tc.pages, p.TotalPages)
			assert.Equal(t, tc.next, p.HasNextPage)
			assert.Equal(t, tc.prev, p.HasPrevPage)
			assert.Equal(t, tc.next, p.NextPage != nil)
			assert.Equal(t, tc.prev, p.PreviousPage != nil)
		})
	}
}
