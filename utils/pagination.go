package utils

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// PageSize is fixed for every listing in the app.
const PageSize = 10

// Page mirrors the paginator envelope the front end already consumes.
type Page struct {
	Data        interface{} `json:"data"`
	CurrentPage int         `json:"current_page"`
	LastPage    int         `json:"last_page"`
	PerPage     int         `json:"per_page"`
	Total       int64       `json:"total"`
}

// PageParam reads the 1-based "page" query parameter. Absent or malformed
// values fall back to page 1, never to an error.
func PageParam(c *gin.Context) int {
	page, err := strconv.Atoi(c.Query("page"))
	if err != nil || page < 1 {
		return 1
	}
	return page
}

// Paginate runs query against dest with the fixed page size. A page past the
// end yields an empty slice while current_page still echoes the request.
func Paginate(query *gorm.DB, page int, dest interface{}) (*Page, error) {
	var total int64
	if err := query.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return nil, err
	}

	lastPage := int((total + PageSize - 1) / PageSize)
	if lastPage < 1 {
		lastPage = 1
	}

	offset := (page - 1) * PageSize
	if err := query.Offset(offset).Limit(PageSize).Find(dest).Error; err != nil {
		return nil, err
	}

	return &Page{
		Data:        dest,
		CurrentPage: page,
		LastPage:    lastPage,
		PerPage:     PageSize,
		Total:       total,
	}, nil
}
