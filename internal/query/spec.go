package query

// Op is the comparison applied by a [Criterion].
type Op int

const (
	// OpEquals matches values equal to the criterion value.
	OpEquals Op = iota
	// OpContains matches values containing the criterion value.
	OpContains
)

// Direction is the ordering direction of a [Sort].
type Direction int

const (
	Ascending Direction = iota
	Descending
)

// Criterion constrains a single field.
type Criterion struct {
	Op              Op
	Value           string
	CaseInsensitive bool
}

// Equals returns a case-sensitive equality criterion.
func Equals(value string) Criterion {
	return Criterion{Op: OpEquals, Value: value}
}

// Contains returns a case-sensitive substring criterion.
func Contains(value string) Criterion {
	return Criterion{Op: OpContains, Value: value}
}

// Sort orders the result set by a single field.
type Sort struct {
	Field     string
	Direction Direction
}

// Page is a zero-based window over the result set.
type Page struct {
	Index int
	Size  int
}

// Spec is the backend-independent description of a list query.
// Filter keys are JSON field names; an absent key means no constraint.
type Spec struct {
	Filter map[string]Criterion
	Sort   *Sort
	Page   *Page
}

// WithFilter returns a copy of s with field constrained by c. The receiver
// is left untouched.
func (s Spec) WithFilter(field string, c Criterion) Spec {
	filter := make(map[string]Criterion, len(s.Filter)+1)
	for k, v := range s.Filter {
		filter[k] = v
	}
	filter[field] = c
	s.Filter = filter
	return s
}

// Offset returns the number of rows to skip, 0 without pagination.
func (s Spec) Offset() int {
	if s.Page == nil {
		return 0
	}
	return s.Page.Index * s.Page.Size
}

// Limit returns the maximum number of rows, 0 without pagination.
func (s Spec) Limit() int {
	if s.Page == nil {
		return 0
	}
	return s.Page.Size
}

// Paginated reports whether the spec carries a page window.
func (s Spec) Paginated() bool {
	return s.Page != nil
}
