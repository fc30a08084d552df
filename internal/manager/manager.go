package manager

import (
	"fmt"
	"sort"
	"strings"

	shellquote "github.com/kballard/go-shellquote"
	"github.com/reqfile/reqfile-cli/internal/config"
	"github.com/reqfile/reqfile-cli/internal/executil"
	"github.com/reqfile/reqfile-cli/internal/logging"
	"github.com/reqfile/reqfile-cli/internal/manifest"
	"github.com/reqfile/reqfile-cli/internal/requirement"
)

type Manager struct {
	cfg   config.Config
	set   *manifest.Set
	byKey map[string]int
	files []string
}

func New(cfg config.Config, set *manifest.Set, files []string) *Manager {
	m := &Manager{
		cfg:   cfg,
		set:   set,
		byKey: make(map[string]int, len(set.Requirements)),
		files: files,
	}
	for i, r := range set.Requirements {
		m.byKey[r.Key()] = i
	}
	return m
}

// Tracked groups requirement names by the manifest file declaring them.
func (m *Manager) Tracked() map[string][]string {
	res := map[string][]string{}
	for _, r := range m.set.Requirements {
		f := m.set.Origin(r.Name)
		res[f] = append(res[f], r.Name)
	}
	for k := range res {
		sort.Strings(res[k])
	}
	return res
}

func (m *Manager) Requirements() []requirement.Requirement {
	return m.set.Requirements
}

// Requirement returns the manifest entry for a (possibly unnormalized) name.
func (m *Manager) Requirement(name string) (requirement.Requirement, error) {
	return m.byName(name)
}

func (m *Manager) byName(name string) (requirement.Requirement, error) {
	i, ok := m.byKey[requirement.NormalizeName(name)]
	if !ok {
		return requirement.Requirement{}, fmt.Errorf("package not in manifest: %s", name)
	}
	return m.set.Requirements[i], nil
}

// InstallAll hands every manifest file to the installer in one run.
func (m *Manager) InstallAll() error {
	args := []string{"install"}
	for _, f := range m.files {
		args = append(args, "-r", f)
	}
	return m.runPip(args)
}

// InstallPackages installs only the named specifiers from the manifest.
func (m *Manager) InstallPackages(names []string) error {
	args := []string{"install"}
	for _, n := range names {
		r, err := m.byName(n)
		if err != nil {
			return err
		}
		args = append(args, r.String())
	}
	return m.runPip(args)
}

// InstalledVersion asks the installer what is currently installed.
// Empty means not installed (or pip itself is unavailable).
func (m *Manager) InstalledVersion(name string) string {
	pip := m.cfg.Pip
	if pip.Command == "" {
		pip = config.Default().Pip
	}
	cmdline := pip.Command + " show " + shellquote.Join(requirement.NormalizeName(name))
	res := executil.RunShell(config.Command{Command: cmdline})
	if res.Code != 0 {
		return ""
	}
	for _, line := range strings.Split(res.Stdout, "\n") {
		if strings.HasPrefix(line, "Version:") {
			return strings.TrimSpace(strings.TrimPrefix(line, "Version:"))
		}
	}
	return ""
}

func (m *Manager) runPip(args []string) error {
	pip := m.cfg.Pip
	if pip.Command == "" {
		pip = config.Default().Pip
	}
	cmdline := pip.Command + " " + shellquote.Join(args...)
	logging.Debug("run: " + cmdline)
	code := executil.RunShellStreaming(config.Command{Command: cmdline, RequireRoot: pip.RequireRoot})
	if code != 0 {
		return fmt.Errorf("installer failed: exit %d", code)
	}
	return nil
}
