// Package pagetoken provides opaque pagination cursors.
package pagetoken

import (
	"context"
	"fmt"
)

// Page size limits applied by NormalizeParams.
const (
	DefaultLimit = 20
	MaxLimit     = 1000
)

// Params holds the pagination parameters of a request.
type Params struct {
	Token string `json:"page_token,omitempty"`
	Limit int    `json:"limit,omitempty"`
}

// Result holds one page of items.
type Result[T any] struct {
	Items     []T    `json:"items"`
	NextToken string `json:"next_page_token,omitempty"`
	HasMore   bool   `json:"has_more"`
}

// NormalizeParams ensures that Limit is within an acceptable range.
func NormalizeParams(params Params) Params {
	if params.Limit <= 0 {
		params.Limit = DefaultLimit
	}
	if params.Limit > MaxLimit {
		params.Limit = MaxLimit
	}
	return params
}

// FetchFunc loads up to limit items positioned after the given payload.
// An empty payload means the first page.
type FetchFunc[T any] func(ctx context.Context, after Payload, limit int) ([]T, error)

// CursorFunc returns the sort-key position of an item.
type CursorFunc[T any] func(item T) Payload

// Paginate runs one page of keyset pagination.
//
// It parses params.Token with m, asks fetch for one item more than the limit
// to learn whether another page exists, and builds the next token from the
// last item kept. Checking that the resumed position fits the query is up to
// fetch.
func Paginate[T any](ctx context.Context, m *Manager, params Params, fetch FetchFunc[T], cursorOf CursorFunc[T]) (*Result[T], error) {
	params = NormalizeParams(params)

	var after Payload
	if params.Token != "" {
		p, err := m.ParseString(params.Token)
		if err != nil {
			return nil, err
		}
		after = p
	}

	items, err := fetch(ctx, after, params.Limit+1)
	if err != nil {
		return nil, fmt.Errorf("pagetoken: fetch page: %w", err)
	}

	result := &Result[T]{Items: items}
	if len(items) > params.Limit {
		result.HasMore = true
		result.Items = items[:params.Limit]

		next, err := m.CreateString(cursorOf(result.Items[len(result.Items)-1]))
		if err != nil {
			return nil, err
		}
		result.NextToken = next
	}

	if result.Items == nil {
		result.Items = make([]T, 0)
	}
	return result, nil
}
