// Package responses writes the JSON envelopes every endpoint answers with and
// maps domain error kinds onto HTTP statuses.
package responses

import (
	"errors"
	"net/http"

	"github.com/DhavalSuthar-24/crickettourney/pkg/apperr"
	pkgvalidator "github.com/DhavalSuthar-24/crickettourney/pkg/validator"
	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

const validationMessage = "Validation failed. Please check your input."

type SuccessResponse struct {
	Status  string      `json:"status"`
	Message string      `json:"message"`
	Data    interface{} `json:"data"`
}

// ErrorResponse carries "error" for client mistakes and "fail" for server
// side failures. Errors lists per-field messages for validation failures.
type ErrorResponse struct {
	Status  string            `json:"status"`
	Message string            `json:"message"`
	Code    int               `json:"code"`
	Errors  map[string]string `json:"errors,omitempty"`
}

type PaginatedResponse struct {
	Status     string      `json:"status"`
	Message    string      `json:"message"`
	Data       interface{} `json:"data"`
	Pagination Pagination  `json:"pagination"`
}

type Pagination struct {
	TotalItems   int64 `json:"total_items"`
	TotalPages   int   `json:"total_pages"`
	CurrentPage  int   `json:"current_page"`
	PageSize     int   `json:"page_size"`
	HasNextPage  bool  `json:"has_next_page"`
	HasPrevPage  bool  `json:"has_prev_page"`
	NextPage     *int  `json:"next_page,omitempty"`
	PreviousPage *int  `json:"previous_page,omitempty"`
}

// NewPagination describes page of a listing with total items split into
// pages of size. A non-positive size falls back to 10.
func NewPagination(total int64, page, size int) Pagination {
	if size <= 0 {
		size = 10
	}
	pages := int((total + int64(size) - 1) / int64(size))
	p := Pagination{
		TotalItems:  total,
		TotalPages:  pages,
		CurrentPage: page,
		PageSize:    size,
		HasNextPage: page < pages,
		HasPrevPage: page > 1,
	}
	if p.HasNextPage {
		next := page + 1
		p.NextPage = &next
	}
	if p.HasPrevPage {
		prev := page - 1
		p.PreviousPage = &prev
	}
	return p
}

func SendSuccess(c *gin.Context, statusCode int, message string, data interface{}) {
	if message == "" {
		message = "Operation completed successfully"
	}
	c.JSON(statusCode, SuccessResponse{Status: "success", Message: message, Data: data})
}

func SendPaginated(c *gin.Context, statusCode int, message string, data interface{}, totalItems int64, currentPage int, pageSize int) {
	if message == "" {
		message = "Data retrieved successfully"
	}
	c.JSON(statusCode, PaginatedResponse{
		Status:     "success",
		Message:    message,
		Data:       data,
		Pagination: NewPagination(totalItems, currentPage, pageSize),
	})
}

func abort(c *gin.Context, status int, message string, fields map[string]string) {
	label := "error"
	if status >= http.StatusInternalServerError {
		label = "fail"
	}
	c.AbortWithStatusJSON(status, ErrorResponse{
		Status:  label,
		Message: message,
		Code:    status,
		Errors:  fields,
	})
}

func SendError(c *gin.Context, statusCode int, message string) {
	abort(c, statusCode, message, nil)
}

// SendValidationError answers 400 for a request that failed binding. Field
// errors are listed one by one; a malformed body is reported as is.
func SendValidationError(c *gin.Context, err error) {
	var ve validator.ValidationErrors
	if errors.As(err, &ve) {
		abort(c, http.StatusBadRequest, validationMessage, pkgvalidator.ParseError(ve))
		return
	}
	abort(c, http.StatusBadRequest, "Invalid request payload: "+err.Error(), nil)
}

// StatusFor maps an error kind onto the HTTP status the API layer reports.
func StatusFor(err error) int {
	switch apperr.Kind(err) {
	case "validation":
		return http.StatusBadRequest
	case "not_found":
		return http.StatusNotFound
	case "conflict":
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// SendAppError reports a domain error. The error is attached to the gin context
// so the request logger records it.
func SendAppError(c *gin.Context, err error) {
	_ = c.Error(err)
	status := StatusFor(err)
	var ve validator.ValidationErrors
	if status == http.StatusBadRequest && errors.As(err, &ve) {
		abort(c, status, validationMessage, pkgvalidator.ParseError(ve))
		return
	}
	abort(c, status, err.Error(), nil)
}

func NotFound(c *gin.Context, resourceName string) {
	abort(c, http.StatusNotFound, resourceName+" not found", nil)
}

func BadRequest(c *gin.Context, message string) {
	if message == "" {
		message = "Invalid request payload or parameters"
	}
	abort(c, http.StatusBadRequest, message, nil)
}
