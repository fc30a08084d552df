package manager

import (
	"sort"
	"sync"

	"github.com/reqfile/reqfile-cli/internal/logging"
	"github.com/reqfile/reqfile-cli/internal/requirement"
)

const lookupWorkers = 4

// Outdated looks up the current release of every manifest entry and
// reports whether the declared constraints still admit it. Lookups run
// concurrently; rows come back sorted by name.
func (m *Manager) Outdated(lookup VersionLookup, cache VersionCache, rep OutdatedReporter) []OutdatedRow {
	reqs := m.set.Requirements
	names := make([]string, 0, len(reqs))
	for _, r := range reqs {
		names = append(names, r.Name)
	}
	sort.Strings(names)
	if rep != nil {
		rep.OnInit(names)
	}

	rows := make([]OutdatedRow, len(reqs))
	var mu sync.Mutex
	var wg sync.WaitGroup
	sem := make(chan struct{}, lookupWorkers)
	for i, r := range reqs {
		wg.Add(1)
		go func(i int, r requirement.Requirement) {
			defer wg.Done()
			sem <- struct{}{}
			defer func() { <-sem }()
			row := m.checkOne(r, lookup, cache)
			mu.Lock()
			rows[i] = row
			mu.Unlock()
			if rep != nil {
				rep.OnResult(row)
			}
		}(i, r)
	}
	wg.Wait()

	sort.Slice(rows, func(i, j int) bool { return rows[i].Name < rows[j].Name })
	if rep != nil {
		rep.OnDone(rows)
	}
	return rows
}

func (m *Manager) checkOne(r requirement.Requirement, lookup VersionLookup, cache VersionCache) OutdatedRow {
	row := OutdatedRow{Name: r.Name, Constraint: constraintString(r)}
	key := r.Key()
	if cache != nil {
		if v, ok := cache.Get(key); ok {
			row.Latest = v
			row.Cached = true
			row.Satisfied = r.SatisfiedBy(v)
			return row
		}
	}
	v, err := lookup.LatestVersion(key)
	if err != nil {
		logging.Debug("lookup failed for " + key + ": " + err.Error())
		row.Err = err.Error()
		return row
	}
	row.Latest = v
	row.Satisfied = r.SatisfiedBy(v)
	if cache != nil {
		if err := cache.Put(key, v); err != nil {
			logging.Debug("cache write failed for " + key + ": " + err.Error())
		}
	}
	return row
}

func constraintString(r requirement.Requirement) string {
	out := ""
	for i, c := range r.Constraints {
		if i > 0 {
			out += ","
		}
		out += c.Op + c.Version
	}
	return out
}
