package console

import (
	"fmt"
	"sync"

	"github.com/reqfile/reqfile-cli/internal/manager"
)

type ConsoleUI struct {
	m *manager.Manager
}

func NewConsoleUI(m *manager.Manager) *ConsoleUI { return &ConsoleUI{m: m} }

// consoleReporter prints one progress line per lookup and leaves the
// final table to the outdated command.
type consoleReporter struct {
	mu    sync.Mutex
	total int
	done  int
}

func NewConsoleReporter() manager.OutdatedReporter {
	return &consoleReporter{}
}

func (r *consoleReporter) OnInit(names []string) {
	r.mu.Lock()
	r.total = len(names)
	r.mu.Unlock()
}

func (r *consoleReporter) OnResult(row manager.OutdatedRow) {
	r.mu.Lock()
	r.done++
	done, total := r.done, r.total
	r.mu.Unlock()
	mark := "ok"
	switch {
	case row.Err != "":
		mark = "error"
	case !row.Satisfied:
		mark = "outdated"
	}
	fmt.Printf("\r[%d/%d] %-30s %s", done, total, row.Name, mark)
}

func (r *consoleReporter) OnDone(rows []manager.OutdatedRow) {
	fmt.Print("\r\x1b[2K")
}
