package stats

import "errors"

// ErrMissingIdentity flags a raw row without a player name or team. The
// loader is expected to drop such rows, so hitting this mid-pipeline is a
// data-integrity failure that aborts the whole load.
var ErrMissingIdentity = errors.New("player row missing name or team")
