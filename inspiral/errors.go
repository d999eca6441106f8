package inspiral

import "errors"

// Errors returned by inspiral functions.
var (
	ErrInvalidMass      = errors.New("inspiral: masses must be positive and finite")
	ErrInvalidDistance  = errors.New("inspiral: distance must be positive and finite")
	ErrInvalidConstants = errors.New("inspiral: physical constants must be positive and finite")
	ErrNonPositiveTime  = errors.New("inspiral: time before merger must be > 0")
	ErrNonFinite        = errors.New("inspiral: strain is not finite")
	ErrGridStart        = errors.New("inspiral: grid start must be > 0")
	ErrGridOrder        = errors.New("inspiral: grid stop must be greater than start")
	ErrGridSamples      = errors.New("inspiral: grid must have at least one sample")
	ErrInvalidWorkers   = errors.New("inspiral: worker count must be > 0")
)
