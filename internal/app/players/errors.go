package players

import "errors"

// ErrInvalidFilter flags query parameters rejected at the boundary
// (inverted ranges, negative bounds). The query methods themselves assume
// validated input.
var ErrInvalidFilter = errors.New("invalid filter parameters")

// ErrUnknownMetric flags a leaders query for a metric outside the whitelist.
var ErrUnknownMetric = errors.New("unknown metric")
