package objscene

// ResultState classifies the outcome of one Importer/Exporter call, mirroring
// original's acul::op_result pattern (make_op_success/make_op_failure) rather
// than Go's usual sole-error-return convention, so callers can distinguish
// "file missing" from "file present but unparsable" without string-matching
// an error.
type ResultState int

const (
	StateSuccess ResultState = iota
	StateNotFound
	StateReadError
	StateParseError
)

func (s ResultState) String() string {
	switch s {
	case StateSuccess:
		return "success"
	case StateNotFound:
		return "not_found"
	case StateReadError:
		return "read_error"
	case StateParseError:
		return "parse_error"
	default:
		return "unknown"
	}
}

// Result is the outcome of a Load call: a state plus the warnings
// and errors accumulated along the way. A non-success State means the whole
// call failed; Warnings can be non-empty even on StateSuccess, since
// per-line parse problems never abort a file per spec §7.
type Result struct {
	State    ResultState
	Err      error
	Warnings []error
}

// OK reports whether the call fully succeeded (State == StateSuccess),
// regardless of any accumulated Warnings.
func (r Result) OK() bool { return r.State == StateSuccess }
