package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Body is the wire shape every endpoint returns. Error carries the raw
// detail on failures; Data is omitted when empty.
type Body struct {
	Message string      `json:"message"`
	Error   string      `json:"error,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

// PageBody adds pagination to a list response.
type PageBody struct {
	Message    string      `json:"message"`
	Data       interface{} `json:"data"`
	Pagination Pagination  `json:"pagination"`
}

// Pagination describes one page of a list.
type Pagination struct {
	Page      int   `json:"page"`
	PageSize  int   `json:"page_size"`
	Total     int64 `json:"total"`
	TotalPage int64 `json:"total_page"`
}

// NewPagination computes the page count.
func NewPagination(page, pageSize int, total int64) Pagination {
	totalPage := int64(0)
	if pageSize > 0 {
		totalPage = (total + int64(pageSize) - 1) / int64(pageSize)
	}
	return Pagination{
		Page:      page,
		PageSize:  pageSize,
		Total:     total,
		TotalPage: totalPage,
	}
}

// Success writes a 200 with data.
func Success(c *gin.Context, message string, data interface{}) {
	c.JSON(http.StatusOK, Body{
		Message: message,
		Data:    data,
	})
}

// Created writes a 201 with data.
func Created(c *gin.Context, message string, data interface{}) {
	c.JSON(http.StatusCreated, Body{
		Message: message,
		Data:    data,
	})
}

// SuccessWithPage writes a 200 page.
func SuccessWithPage(c *gin.Context, message string, data interface{}, pagination Pagination) {
	c.JSON(http.StatusOK, PageBody{
		Message:    message,
		Data:       data,
		Pagination: pagination,
	})
}

// Error writes the failure status with the localized message and, when
// present, the underlying error detail.
func Error(c *gin.Context, status int, message string, err error) {
	body := Body{Message: message}
	if err != nil {
		body.Error = err.Error()
	}
	if requestID := requestIDFrom(c); requestID != "" {
		body.Data = gin.H{"request_id": requestID}
	}
	c.JSON(status, body)
}

func requestIDFrom(c *gin.Context) string {
	if c == nil {
		return ""
	}
	if value, ok := c.Get("request_id"); ok {
		if id, ok := value.(string); ok {
			return id
		}
	}
	return ""
}
