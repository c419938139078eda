package helper

import (
	"strconv"
	"strings"
)

const (
	DefaultPage  = 1
	DefaultLimit = 25
	MaxLimit     = 100
)

type PageRef struct {
	Page  int `json:"page"`
	Limit int `json:"limit"`
}

// Pagination serializes as {} when there is neither a next nor a prev page.
type Pagination struct {
	Next *PageRef `json:"next,omitempty"`
	Prev *PageRef `json:"prev,omitempty"`
}

type Paging struct {
	Page  int
	Limit int
}

func (p Paging) Offset() int { return (p.Page - 1) * p.Limit }

// ResolvePaging parses ?page= and ?limit=. Empty values take the defaults,
// limits above max are clamped, anything non-positive or non-numeric is
// rejected.
func ResolvePaging(pageRaw, limitRaw string, defaultLimit, maxLimit int) (Paging, error) {
	if defaultLimit <= 0 {
		defaultLimit = DefaultLimit
	}
	if maxLimit <= 0 {
		maxLimit = MaxLimit
	}
	p := Paging{Page: DefaultPage, Limit: defaultLimit}

	if s := strings.TrimSpace(pageRaw); s != "" {
		n, err := strconv.Atoi(s)
		if err != nil || n < 1 {
			return Paging{}, BadRequest("Invalid value for page")
		}
		p.Page = n
	}
	if s := strings.TrimSpace(limitRaw); s != "" {
		n, err := strconv.Atoi(s)
		if err != nil || n < 1 {
			return Paging{}, BadRequest("Invalid value for limit")
		}
		p.Limit = n
	}
	if p.Limit > maxLimit {
		p.Limit = maxLimit
	}
	return p, nil
}

func BuildPagination(total int64, p Paging) Pagination {
	var out Pagination
	if int64(p.Page)*int64(p.Limit) < total {
		out.Next = &PageRef{Page: p.Page + 1, Limit: p.Limit}
	}
	if p.Page > 1 {
		out.Prev = &PageRef{Page: p.Page - 1, Limit: p.Limit}
	}
	return out
}
