package domain

// Outcome classifies a finished search.
type Outcome int

const (
	// OutcomeNotFound means the tree was exhausted without a match.
	OutcomeNotFound Outcome = iota
	// OutcomeFound means a matching path was found.
	OutcomeFound
	// OutcomeTraversalError means the search root could not be read.
	OutcomeTraversalError
)

// String returns a lower-case name for the outcome, used in log attributes.
func (o Outcome) String() string {
	switch o {
	case OutcomeFound:
		return "found"
	case OutcomeTraversalError:
		return "traversal error"
	default:
		return "not found"
	}
}

// SearchResult is produced by exactly one task and reported once.
type SearchResult struct {
	Task   TaskID
	Target string
	Path   string
	Err    error
}

// Found reports whether the search located the target.
func (r SearchResult) Found() bool {
	return r.Path != ""
}

// Outcome classifies the result.
func (r SearchResult) Outcome() Outcome {
	switch {
	case r.Path != "":
		return OutcomeFound
	case r.Err != nil:
		return OutcomeTraversalError
	default:
		return OutcomeNotFound
	}
}
