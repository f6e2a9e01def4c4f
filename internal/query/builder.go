package query

import (
	"fmt"
	"math"
	"net/url"
	"slices"
	"strconv"
)

// Query parameter names understood by [Build].
const (
	ParamCategory  = "category"
	ParamSortField = "sortField"
	ParamSortOrder = "sortOrder"
	ParamPage      = "page"
	ParamSize      = "size"
)

const sortAscending = "asc"

type options struct {
	categoryContains bool
	caseInsensitive  bool
	sortFields       []string
}

// Option customises [Build].
type Option func(*options)

// WithCategoryContains turns the category filter into a substring match.
func WithCategoryContains() Option {
	return func(o *options) {
		o.categoryContains = true
	}
}

// WithCaseInsensitive makes the category filter ignore case.
func WithCaseInsensitive() Option {
	return func(o *options) {
		o.caseInsensitive = true
	}
}

// WithSortFields restricts sortField to the given field names.
func WithSortFields(fields ...string) Option {
	return func(o *options) {
		o.sortFields = append(o.sortFields, fields...)
	}
}

// Build derives a [Spec] from URL query parameters.
//
//   - category: equality filter, or substring with [WithCategoryContains];
//   - sortField and sortOrder: both required for a sort; "asc" sorts
//     ascending, any other order descending;
//   - page and size: non-negative integers; pagination is active when size
//     is present, page defaults to 0 and is rejected without size.
//
// Any malformed parameter yields [ErrInvalidParameter].
func Build(params url.Values, opts ...Option) (Spec, error) {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	var spec Spec

	if category := params.Get(ParamCategory); category != "" {
		c := Equals(category)
		if o.categoryContains {
			c = Contains(category)
		}
		c.CaseInsensitive = o.caseInsensitive
		spec = spec.WithFilter(ParamCategory, c)
	}

	sortField, sortOrder := params.Get(ParamSortField), params.Get(ParamSortOrder)
	if sortField != "" && sortOrder != "" {
		if len(o.sortFields) > 0 && !slices.Contains(o.sortFields, sortField) {
			return Spec{}, fmt.Errorf("%w: unknown sort field %q", ErrInvalidParameter, sortField)
		}
		direction := Descending
		if sortOrder == sortAscending {
			direction = Ascending
		}
		spec.Sort = &Sort{Field: sortField, Direction: direction}
	}

	page, hasPage, err := nonNegativeInt(params, ParamPage)
	if err != nil {
		return Spec{}, err
	}
	size, hasSize, err := nonNegativeInt(params, ParamSize)
	if err != nil {
		return Spec{}, err
	}
	switch {
	case hasSize && size > 0 && page > math.MaxInt/size:
		return Spec{}, fmt.Errorf("%w: %s=%d with %s=%d overflows the offset", ErrInvalidParameter, ParamPage, page, ParamSize, size)
	case hasSize:
		spec.Page = &Page{Index: page, Size: size}
	case hasPage:
		return Spec{}, fmt.Errorf("%w: %s requires %s", ErrInvalidParameter, ParamPage, ParamSize)
	}

	return spec, nil
}

func nonNegativeInt(params url.Values, name string) (int, bool, error) {
	if !params.Has(name) {
		return 0, false, nil
	}

	raw := params.Get(name)
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, true, fmt.Errorf("%w: %s=%q is not an integer", ErrInvalidParameter, name, raw)
	}
	if n < 0 {
		return 0, true, fmt.Errorf("%w: %s=%d is negative", ErrInvalidParameter, name, n)
	}

	return n, true, nil
}
