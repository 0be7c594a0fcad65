// Package query composes independent filter and sort selections into the
// flat query parameters the backend's project listing understands.
package query

import (
	"net/url"
	"strings"
)

// All is the sentinel meaning "do not filter on this field". It is
// translated to parameter omission, never sent to the backend.
const All = "all"

// Sort directions.
const (
	Ascending  SortDirection = "asc"
	Descending SortDirection = "desc"
)

// Default sort when the user has not picked one.
const (
	DefaultSortBy  = "created_at"
	DefaultSortDir = Descending
)

type SortDirection string

// ProjectFilter is the ephemeral, view-local filter state. It is never
// persisted; Reset restores every field at once.
type ProjectFilter struct {
	Status  string // project status value or All
	Type    string // project type value or All
	Company string // numeric company id or All
	Search  string // free text, trimmed before use
	SortBy  string
	SortDir SortDirection
}

// Default returns the documented initial filter state.
func Default() ProjectFilter {
	return ProjectFilter{
		Status:  All,
		Type:    All,
		Company: All,
		Search:  "",
		SortBy:  DefaultSortBy,
		SortDir: DefaultSortDir,
	}
}

// Reset restores every filter to its default atomically.
func (f *ProjectFilter) Reset() {
	*f = Default()
}

// Params translates the filter into query parameters. Any selection that
// is the All sentinel or blank after trimming is omitted. Sort is always
// present, falling back to the default key and direction, so composing
// the same state twice yields byte-identical encodings (url.Values
// encodes keys in sorted order).
func (f ProjectFilter) Params() url.Values {
	params := url.Values{}

	if v := strings.TrimSpace(f.Status); v != "" && v != All {
		params.Set("status", v)
	}
	if v := strings.TrimSpace(f.Type); v != "" && v != All {
		params.Set("project_type", v)
	}
	if v := strings.TrimSpace(f.Company); v != "" && v != All {
		params.Set("company_id", v)
	}
	if v := strings.TrimSpace(f.Search); v != "" {
		params.Set("search", v)
	}

	sortBy := strings.TrimSpace(f.SortBy)
	if sortBy == "" {
		sortBy = DefaultSortBy
	}
	sortDir := f.SortDir
	if sortDir != Ascending && sortDir != Descending {
		sortDir = DefaultSortDir
	}
	params.Set("sort_by", sortBy)
	params.Set("sort_dir", string(sortDir))

	return params
}
