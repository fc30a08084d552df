package manager

// OutdatedRow is the result of one index lookup.
type OutdatedRow struct {
	Name       string
	Constraint string
	Latest     string
	Satisfied  bool
	Cached     bool
	Err        string
}

type OutdatedReporter interface {
	OnInit(names []string)
	OnResult(row OutdatedRow)
	OnDone(rows []OutdatedRow)
}

// VersionLookup resolves the current release version of a package.
type VersionLookup interface {
	LatestVersion(name string) (string, error)
}

// VersionCache remembers lookups between runs.
type VersionCache interface {
	Get(name string) (string, bool)
	Put(name, latest string) error
}
