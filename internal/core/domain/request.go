package domain

// SearchRequest describes the lookup of a single file name below a root directory.
// It is passed by value so that every task owns an immutable copy.
type SearchRequest struct {
	Root            string
	Target          string
	Recursive       bool
	CaseInsensitive bool
}

// SearchConfig is the parsed invocation: one root, the names to look for, and the shared options.
type SearchConfig struct {
	Root  string
	Names []string
	Options
}

// Request derives the per-task request for the given name.
func (c SearchConfig) Request(name string) SearchRequest {
	return SearchRequest{
		Root:            c.Root,
		Target:          name,
		Recursive:       c.Recursive,
		CaseInsensitive: c.CaseInsensitive,
	}
}

// Requests returns one request per name, in input order.
func (c SearchConfig) Requests() []SearchRequest {
	reqs := make([]SearchRequest, 0, len(c.Names))
	for _, name := range c.Names {
		reqs = append(reqs, c.Request(name))
	}
	return reqs
}
