package pagination

import (
	"encoding/json"
	"net/url"
	"strconv"
)

const (
	DefaultLimit = 10
	MaxLimit     = 100
)

// Request selects a window of a collection.
type Request struct {
	Limit  int `json:"limit"`
	Offset int `json:"offset"`
}

// NewRequest returns a normalized Request.
func NewRequest(limit, offset int) Request {
	return Request{Limit: limit, Offset: offset}.Normalize()
}

// Normalize clamps Limit into 1..MaxLimit, using DefaultLimit below 1, and
// raises a negative Offset to zero.
func (r Request) Normalize() Request {
	switch {
	case r.Limit < 1:
		r.Limit = DefaultLimit
	case r.Limit > MaxLimit:
		r.Limit = MaxLimit
	}
	if r.Offset < 0 {
		r.Offset = 0
	}
	return r
}

// Links point at the current, next and previous pages. Next and Previous
// are nil when there is no such page.
type Links struct {
	Self     *url.URL `json:"self"`
	Next     *url.URL `json:"next,omitempty"`
	Previous *url.URL `json:"previous,omitempty"`
}

// MarshalJSON writes the links as plain URL strings.
func (l Links) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Self     string `json:"self,omitempty"`
		Next     string `json:"next,omitempty"`
		Previous string `json:"previous,omitempty"`
	}{
		Self:     urlString(l.Self),
		Next:     urlString(l.Next),
		Previous: urlString(l.Previous),
	})
}

func urlString(u *url.URL) string {
	if u == nil {
		return ""
	}
	return u.String()
}

type Response[T any] struct {
	Links   Links `json:"links"`
	Limit   int   `json:"limit"`
	Offset  int   `json:"offset"`
	Total   int   `json:"total"`
	Results []T   `json:"results"`
}

// BuildLinks derives the page links of req over total items from base.
// The limit and offset query parameters of base are replaced.
func BuildLinks(base *url.URL, req Request, total int) Links {
	req = req.Normalize()

	links := Links{Self: pageURL(base, req.Limit, req.Offset)}

	if req.Offset+req.Limit < total {
		links.Next = pageURL(base, req.Limit, req.Offset+req.Limit)
	}

	if req.Offset > 0 {
		var previous int
		switch {
		case req.Offset <= req.Limit:
			previous = 0
		case req.Offset > total:
			previous = max(total-req.Limit, 0)
		default:
			previous = req.Offset - req.Limit
		}
		links.Previous = pageURL(base, req.Limit, previous)
	}

	return links
}

// Paginate cuts the page selected by req out of items.
func Paginate[T any](base *url.URL, req Request, items []T) Response[T] {
	req = req.Normalize()
	total := len(items)

	start := min(req.Offset, total)
	end := min(start+req.Limit, total)

	return Response[T]{
		Links:   BuildLinks(base, req, total),
		Limit:   req.Limit,
		Offset:  req.Offset,
		Total:   total,
		Results: append([]T{}, items[start:end]...),
	}
}

func pageURL(base *url.URL, limit, offset int) *url.URL {
	u := *base
	q := u.Query()
	q.Set("limit", strconv.Itoa(limit))
	q.Set("offset", strconv.Itoa(offset))
	u.RawQuery = q.Encode()
	return &u
}
