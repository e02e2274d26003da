package schemas

import (
	"fmt"
	"net/url"
	"strconv"
)

const (
	DefaultPage  = 1
	DefaultLimit = 10
	MaxLimit     = 100
)

// orderColumns maps the orderBy enum onto real column names. Only these
// values ever reach the sort clause, so the interpolation is safe.
var orderColumns = map[string]string{
	"name":        "name",
	"size":        "size",
	"uploaded_at": "uploaded_at",
}

var directions = map[string]bool{
	"ASC":  true,
	"DESC": true,
}

// Pagination is a validated, normalized query plan for a listing request.
type Pagination struct {
	Page      int
	Limit     int
	OrderBy   string
	Direction string
}

// ParsePagination coerces the listing query parameters. It returns nil
// when none of them are present (the unpaginated path). Out-of-range
// values are rejected, never clamped.
func ParsePagination(query url.Values) (*Pagination, error) {
	page := query.Get("page")
	limit := query.Get("limit")
	orderBy := query.Get("orderBy")
	direction := query.Get("direction")

	if page == "" && limit == "" && orderBy == "" && direction == "" {
		return nil, nil
	}

	p := &Pagination{
		Page:      DefaultPage,
		Limit:     DefaultLimit,
		OrderBy:   "uploaded_at",
		Direction: "DESC",
	}

	if page != "" {
		n, err := strconv.Atoi(page)
		if err != nil || n <= 0 {
			return nil, &ValidationError{Message: "page must be a positive integer"}
		}
		p.Page = n
	}

	if limit != "" {
		n, err := strconv.Atoi(limit)
		if err != nil || n < 1 || n > MaxLimit {
			return nil, &ValidationError{Message: fmt.Sprintf("limit must be an integer between 1 and %d", MaxLimit)}
		}
		p.Limit = n
	}

	if orderBy != "" {
		if _, ok := orderColumns[orderBy]; !ok {
			return nil, &ValidationError{Message: "orderBy must be one of name, size, uploaded_at"}
		}
		p.OrderBy = orderBy
	}

	if direction != "" {
		if !directions[direction] {
			return nil, &ValidationError{Message: "direction must be ASC or DESC"}
		}
		p.Direction = direction
	}

	return p, nil
}

func (p *Pagination) Offset() int {
	return (p.Page - 1) * p.Limit
}

// OrderClause renders the sort clause from the fixed enums.
func (p *Pagination) OrderClause() string {
	return orderColumns[p.OrderBy] + " " + p.Direction
}

// TotalPages is ceil(total / limit).
func (p *Pagination) TotalPages(total int64) int {
	if total == 0 {
		return 0
	}
	return int((total + int64(p.Limit) - 1) / int64(p.Limit))
}
