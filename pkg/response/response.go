package response

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
)

// AppError is a structured application error carrying the HTTP status it
// should be rendered with. Validation errors additionally carry field-level
// messages.
type AppError struct {
	HTTPStatus int
	Message    string
	Fields     map[string][]string
}

func (e *AppError) Error() string {
	return e.Message
}

func NewNotFound(msg string) *AppError {
	return &AppError{HTTPStatus: http.StatusNotFound, Message: msg}
}

// NewValidation builds a 422 error with per-field messages.
func NewValidation(fields map[string][]string) *AppError {
	return &AppError{
		HTTPStatus: http.StatusUnprocessableEntity,
		Message:    "The given data was invalid.",
		Fields:     fields,
	}
}

func NewServerError(msg string) *AppError {
	return &AppError{HTTPStatus: http.StatusInternalServerError, Message: msg}
}

// --- Pagination envelope ---

// Links follows the common REST pagination shape: prev/next are null on the
// first/last page respectively.
type Links struct {
	First string  `json:"first"`
	Last  string  `json:"last"`
	Prev  *string `json:"prev"`
	Next  *string `json:"next"`
}

type Meta struct {
	CurrentPage int   `json:"current_page"`
	PerPage     int   `json:"per_page"`
	LastPage    int   `json:"last_page"`
	Total       int64 `json:"total"`
}

// Page is the list envelope: {data, links, meta}.
type Page struct {
	Data  interface{} `json:"data"`
	Links Links       `json:"links"`
	Meta  Meta        `json:"meta"`
}

func pageURL(path string, page int) string {
	return fmt.Sprintf("%s?page=%d", path, page)
}

// NewPage assembles the pagination envelope for one page of results.
func NewPage(data interface{}, path string, page, perPage int, total int64) Page {
	lastPage := int((total + int64(perPage) - 1) / int64(perPage))
	if lastPage < 1 {
		lastPage = 1
	}

	links := Links{
		First: pageURL(path, 1),
		Last:  pageURL(path, lastPage),
	}
	if page > 1 {
		prev := pageURL(path, page-1)
		links.Prev = &prev
	}
	if page < lastPage {
		next := pageURL(path, page+1)
		links.Next = &next
	}

	return Page{
		Data:  data,
		Links: links,
		Meta: Meta{
			CurrentPage: page,
			PerPage:     perPage,
			LastPage:    lastPage,
			Total:       total,
		},
	}
}

// --- Gin response helpers ---

// OK sends a 200 response with the given payload.
func OK(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, data)
}

// Paginated sends a 200 response with the {data, links, meta} envelope.
func Paginated(c *gin.Context, page Page) {
	c.JSON(http.StatusOK, page)
}

// Created sends a 201 with a message payload.
func Created(c *gin.Context, msg string) {
	c.JSON(http.StatusCreated, gin.H{"message": msg})
}

// Message sends a 200 with a message payload.
func Message(c *gin.Context, msg string) {
	c.JSON(http.StatusOK, gin.H{"message": msg})
}

// NoContent sends a 204 with an empty body. Used when a list query, filtered
// or not, yields zero rows.
func NoContent(c *gin.Context) {
	c.Status(http.StatusNoContent)
}

// NotFound sends a 404 with an empty body; the contract carries no detail.
func NotFound(c *gin.Context) {
	c.Status(http.StatusNotFound)
}

// ValidationError sends a 422 with field-level messages.
func ValidationError(c *gin.Context, fields map[string][]string) {
	c.JSON(http.StatusUnprocessableEntity, gin.H{
		"message": "The given data was invalid.",
		"errors":  fields,
	})
}

// BadRequest sends a 400 with a message payload.
func BadRequest(c *gin.Context, msg string) {
	c.JSON(http.StatusBadRequest, gin.H{"message": msg})
}

// ServerError sends a 500 with a message payload.
func ServerError(c *gin.Context, msg string) {
	c.JSON(http.StatusInternalServerError, gin.H{"message": msg})
}

// Error renders err according to its AppError status, falling back to a
// generic 500 for unknown error values.
func Error(c *gin.Context, err error) {
	var appErr *AppError
	if errors.As(err, &appErr) {
		switch appErr.HTTPStatus {
		case http.StatusNotFound:
			NotFound(c)
		case http.StatusUnprocessableEntity:
			ValidationError(c, appErr.Fields)
		default:
			c.JSON(appErr.HTTPStatus, gin.H{"message": appErr.Message})
		}
		return
	}
	ServerError(c, err.Error())
}
