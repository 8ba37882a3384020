// Package pagination computes offset based page windows and the metadata returned
// alongside every list response.
package pagination

import "gorm.io/gorm"

// Params are the paging query parameters of a list request. Pages are 1-based.
type Params struct {
	PageSize int `form:"pageSize" json:"pageSize"`
	PageNo   int `form:"pageNo" json:"pageNo"`
}

// Clamp caps the page size at max. A non-positive max leaves params unchanged.
func (p Params) Clamp(max int) Params {
	if max > 0 && p.PageSize > max {
		p.PageSize = max
	}
	return p
}

// Meta describes the page returned by a list request
type Meta struct {
	Total           int64 `json:"total"`
	PageSize        int   `json:"pageSize"`
	CurrentPage     int   `json:"currentPage"`
	TotalPages      int   `json:"totalPages"`
	HasNextPage     bool  `json:"hasNextPage"`
	HasPreviousPage bool  `json:"hasPreviousPage"`
}

// Window is the slice of rows selected for a page
type Window struct {
	Offset int
	Limit  int
	Empty  bool
}

// TotalPages returns ceil(count / pageSize), or 0 when pageSize is not positive
func TotalPages(count int64, pageSize int) int {
	if pageSize <= 0 || count <= 0 {
		return 0
	}
	return int((count + int64(pageSize) - 1) / int64(pageSize))
}

// NewWindow computes the rows a page covers. Out of range pages are empty.
func NewWindow(p Params, count int64) Window {
	totalPages := TotalPages(count, p.PageSize)
	if p.PageSize <= 0 || p.PageNo < 1 || p.PageNo > totalPages {
		return Window{Empty: true}
	}
	return Window{Offset: (p.PageNo - 1) * p.PageSize, Limit: p.PageSize}
}

// NewMeta builds the metadata for a page of a result set holding count rows
func NewMeta(p Params, count int64) Meta {
	totalPages := TotalPages(count, p.PageSize)
	return Meta{
		Total:           count,
		PageSize:        p.PageSize,
		CurrentPage:     p.PageNo,
		TotalPages:      totalPages,
		HasNextPage:     p.PageNo >= 1 && p.PageNo < totalPages,
		HasPreviousPage: p.PageNo > 1 && totalPages > 0,
	}
}

// Deferred pages qb with a deferred join: the ids of the page are selected in a
// subquery ordered by id, then the rows are fetched by id. qb must be a reusable
// session (db.Session(&gorm.Session{})) already scoped to the table, and count
// the number of rows it matches. The returned query is nil when the page is empty.
func Deferred(qb *gorm.DB, p Params, count int64) (*gorm.DB, Meta) {
	meta := NewMeta(p, count)
	window := NewWindow(p, count)
	if window.Empty {
		return nil, meta
	}
	ids := qb.Select("id").Order("id").Limit(window.Limit).Offset(window.Offset)
	return qb.Where("id IN (?)", ids).Order("id"), meta
}
