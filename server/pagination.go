package server

import (
	"net/http"
	"strconv"

	"github.com/mindwell-app/mindwell/wellness"
)

// pageParams carries the validated page/page_size query parameters.
type pageParams struct {
	Page     int
	PageSize int
}

func (p pageParams) Offset() int {
	return (p.Page - 1) * p.PageSize
}

func parsePageParams(r *http.Request) pageParams {
	params := pageParams{Page: 1, PageSize: wellness.DefaultPageSize}

	if raw := r.URL.Query().Get("page"); raw != "" {
		if page, err := strconv.Atoi(raw); err == nil && page > 0 {
			params.Page = page
		}
	}
	if raw := r.URL.Query().Get("page_size"); raw != "" {
		if size, err := strconv.Atoi(raw); err == nil && size > 0 {
			params.PageSize = min(size, wellness.MaxPageSize)
		}
	}
	return params
}

// paginatedResponse is the list envelope: total count plus links to the
// neighbouring pages, nil when the page does not exist.
type paginatedResponse struct {
	Count    int     `json:"count"`
	Next     *string `json:"next"`
	Previous *string `json:"previous"`
	Results  any     `json:"results"`
}

func paginate(r *http.Request, params pageParams, count int, results any) paginatedResponse {
	resp := paginatedResponse{Count: count, Results: results}

	// Links carry the full query string so active filters survive
	// following them; only the page changes.
	pageURL := func(page int) *string {
		values := r.URL.Query()
		values.Set("page", strconv.Itoa(page))
		values.Set("page_size", strconv.Itoa(params.PageSize))
		url := r.URL.Path + "?" + values.Encode()
		return &url
	}
	if params.Offset()+params.PageSize < count {
		resp.Next = pageURL(params.Page + 1)
	}
	if params.Page > 1 {
		resp.Previous = pageURL(params.Page - 1)
	}
	return resp
}
