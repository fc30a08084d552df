package console

import (
	"fmt"
	"sort"

	survey "github.com/AlecAivazis/survey/v2"
	"github.com/reqfile/reqfile-cli/internal/logging"
)

// RunInstallImperative installs either the whole manifest set or an
// interactively chosen subset.
func (c *ConsoleUI) RunInstallImperative(all bool, yes bool) error {
	if all && yes {
		if err := c.m.InstallAll(); err != nil {
			return err
		}
		logging.Success("install complete")
		return nil
	}

	labels := []string{}
	for _, r := range c.m.Requirements() {
		labels = append(labels, r.String())
	}
	sort.Strings(labels)
	if len(labels) == 0 {
		logging.Info("nothing to install")
		return nil
	}

	selected := labels
	if !all {
		ms := &survey.MultiSelect{Message: "Select packages to install", Options: labels, Default: labels}
		if err := survey.AskOne(ms, &selected); err != nil {
			return err
		}
		if len(selected) == 0 {
			logging.Info("nothing selected")
			return nil
		}
	}
	if !yes {
		ok := false
		if err := survey.AskOne(&survey.Confirm{Message: fmt.Sprintf("Install %d package(s)?", len(selected)), Default: true}, &ok); err != nil {
			return err
		}
		if !ok {
			logging.Info("aborted")
			return nil
		}
	}

	names := make([]string, 0, len(selected))
	for _, label := range selected {
		names = append(names, nameOfLabel(label))
	}
	if err := c.m.InstallPackages(names); err != nil {
		return err
	}
	logging.Success("install complete")
	return nil
}

// nameOfLabel recovers the package name from a rendered specifier label.
func nameOfLabel(label string) string {
	for i := 0; i < len(label); i++ {
		switch label[i] {
		case '[', '>', '<', '=', '!', '~', ' ', ';':
			return label[:i]
		}
	}
	return label
}
