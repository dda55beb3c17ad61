package entities

// JobFilters narrows a listing query. A nil/empty field leaves that
// dimension unconstrained; all set fields compose with AND.
type JobFilters struct {
	Types    []JobType
	Location string
	Remote   *bool
	Search   string
}

func (f JobFilters) HasSecondary() bool {
	return f.Search != "" || f.Location != ""
}
