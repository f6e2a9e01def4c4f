package query

import (
	"math"
	"net/url"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuild(t *testing.T) {
	tests := []struct {
		name   string
		params url.Values
		opts   []Option
		want   Spec
	}{
		{
			name:   "no params",
			params: url.Values{},
			want:   Spec{},
		},
		{
			name:   "category equals",
			params: url.Values{"category": {"Dessert"}},
			want:   Spec{Filter: map[string]Criterion{"category": Equals("Dessert")}},
		},
		{
			name:   "category contains ignoring case",
			params: url.Values{"category": {"des"}},
			opts:   []Option{WithCategoryContains(), WithCaseInsensitive()},
			want: Spec{Filter: map[string]Criterion{
				"category": {Op: OpContains, Value: "des", CaseInsensitive: true},
			}},
		},
		{
			name:   "empty category ignored",
			params: url.Values{"category": {""}},
			want:   Spec{},
		},
		{
			name:   "sort ascending",
			params: url.Values{"sortField": {"price"}, "sortOrder": {"asc"}},
			want:   Spec{Sort: &Sort{Field: "price", Direction: Ascending}},
		},
		{
			name:   "sort anything else is descending",
			params: url.Values{"sortField": {"price"}, "sortOrder": {"up"}},
			want:   Spec{Sort: &Sort{Field: "price", Direction: Descending}},
		},
		{
			name:   "sort field without order",
			params: url.Values{"sortField": {"price"}},
			want:   Spec{},
		},
		{
			name:   "sort order without field",
			params: url.Values{"sortOrder": {"asc"}},
			want:   Spec{},
		},
		{
			name:   "page and size",
			params: url.Values{"page": {"2"}, "size": {"10"}},
			want:   Spec{Page: &Page{Index: 2, Size: 10}},
		},
		{
			name:   "size only defaults page to zero",
			params: url.Values{"size": {"5"}},
			want:   Spec{Page: &Page{Index: 0, Size: 5}},
		},
		{
			name:   "allowed sort field",
			params: url.Values{"sortField": {"orderCount"}, "sortOrder": {"desc"}},
			opts:   []Option{WithSortFields("price", "orderCount")},
			want:   Spec{Sort: &Sort{Field: "orderCount", Direction: Descending}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Build(tt.params, tt.opts...)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestBuild_InvalidParameter(t *testing.T) {
	tests := []struct {
		name   string
		params url.Values
		opts   []Option
	}{
		{name: "non-numeric page", params: url.Values{"page": {"x"}, "size": {"10"}}},
		{name: "non-numeric size", params: url.Values{"page": {"1"}, "size": {"ten"}}},
		{name: "empty size", params: url.Values{"size": {""}}},
		{name: "negative page", params: url.Values{"page": {"-1"}, "size": {"10"}}},
		{name: "negative size", params: url.Values{"size": {"-10"}}},
		{name: "page without size", params: url.Values{"page": {"3"}}},
		{name: "offset wraps to zero", params: url.Values{"page": {"4611686018427387904"}, "size": {"4"}}},
		{name: "offset wraps negative", params: url.Values{"page": {"4611686018427387904"}, "size": {"3"}}},
		{
			name:   "unknown sort field",
			params: url.Values{"sortField": {"password"}, "sortOrder": {"asc"}},
			opts:   []Option{WithSortFields("price")},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Build(tt.params, tt.opts...)
			assert.ErrorIs(t, err, ErrInvalidParameter)
			assert.Equal(t, Spec{}, got)
		})
	}
}

func TestSpec_OffsetLimit(t *testing.T) {
	spec, err := Build(url.Values{"page": {"2"}, "size": {"10"}})
	require.NoError(t, err)

	assert.True(t, spec.Paginated())
	assert.Equal(t, 20, spec.Offset())
	assert.Equal(t, 10, spec.Limit())

	var empty Spec
	assert.False(t, empty.Paginated())
	assert.Zero(t, empty.Offset())
	assert.Zero(t, empty.Limit())
}

func TestBuild_LargestPage(t *testing.T) {
	spec, err := Build(url.Values{"page": {strconv.Itoa(math.MaxInt / 10)}, "size": {"10"}})
	require.NoError(t, err)
	assert.Positive(t, spec.Offset())

	spec, err = Build(url.Values{"page": {strconv.Itoa(math.MaxInt)}, "size": {"0"}})
	require.NoError(t, err)
	assert.Zero(t, spec.Offset())
}

func TestSpec_WithFilter(t *testing.T) {
	base, err := Build(url.Values{"category": {"Drinks"}})
	require.NoError(t, err)

	scoped := base.WithFilter("email", Equals("a@x.com"))

	assert.Len(t, base.Filter, 1, "receiver must not be modified")
	assert.Equal(t, Equals("a@x.com"), scoped.Filter["email"])
	assert.Equal(t, Equals("Drinks"), scoped.Filter["category"])
}
