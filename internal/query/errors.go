package query

import "errors"

// ErrInvalidParameter is returned by [Build] when a query parameter cannot
// be interpreted: a non-integer or negative page/size, page without size,
// or a sort field outside the accepted set.
var ErrInvalidParameter = errors.New("invalid query parameter")
