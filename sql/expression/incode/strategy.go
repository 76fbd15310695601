package incode

import "gopkg.in/src-d/go-sqlin.v0/sql"

// SwitchGenerationCase is the strategy used to test membership of a value
// among the constants of an IN list.
type SwitchGenerationCase byte

const (
	// DirectSwitch dispatches on the value itself through a table indexed
	// by the range-normalized value.
	DirectSwitch SwitchGenerationCase = iota
	// HashSwitch dispatches on a hash of the value and confirms the match
	// by equality against every constant in the bucket.
	HashSwitch
	// SetContains looks the value up in a set built once.
	SetContains
)

func (c SwitchGenerationCase) String() string {
	switch c {
	case DirectSwitch:
		return "DIRECT_SWITCH"
	case HashSwitch:
		return "HASH_SWITCH"
	case SetContains:
		return "SET_CONTAINS"
	default:
		return "UNKNOWN"
	}
}

const (
	// DefaultSwitchThreshold is the largest IN list, counting constants,
	// NULLs and residual expressions, for which a switch is generated.
	// Longer lists use SetContains.
	DefaultSwitchThreshold = 1000

	// DefaultDenseTableLimit is the largest span of keys, from the smallest
	// to the largest constant, that a direct switch stores in a dense table.
	// Wider spans use a compressed bitmap.
	DefaultDenseTableLimit = 4096
)

// Options to compile IN predicates. Zero values mean the defaults.
type Options struct {
	// SwitchThreshold is the list size above which SetContains is used.
	SwitchThreshold int
	// DenseTableLimit is the largest key span of a dense direct switch.
	DenseTableLimit int
}

// DefaultOptions returns the options with all the default values.
func DefaultOptions() Options {
	return Options{
		SwitchThreshold: DefaultSwitchThreshold,
		DenseTableLimit: DefaultDenseTableLimit,
	}
}

func (o Options) switchThreshold() int {
	if o.SwitchThreshold <= 0 {
		return DefaultSwitchThreshold
	}
	return o.SwitchThreshold
}

func (o Options) denseTableLimit() int {
	if o.DenseTableLimit <= 0 {
		return DefaultDenseTableLimit
	}
	return o.DenseTableLimit
}

// Select returns the strategy for an IN list of the given type with the
// default options.
func Select(t sql.Type, candidates []Candidate) SwitchGenerationCase {
	return DefaultOptions().Select(t, candidates)
}

// Select returns the strategy for an IN list of the given type. Only the
// number of candidates and the class of t matter: NULLs and residuals count
// towards the size, and the declared types of the candidates are ignored.
func (o Options) Select(t sql.Type, candidates []Candidate) SwitchGenerationCase {
	if len(candidates) > o.switchThreshold() {
		return SetContains
	}

	if Classify(t) == FixedWidthInteger {
		return DirectSwitch
	}

	return HashSwitch
}
