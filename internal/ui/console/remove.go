package console

import (
	survey "github.com/AlecAivazis/survey/v2"
)

// ConfirmRemove asks before dropping a manifest entry.
func ConfirmRemove(name string) (bool, error) {
	ok := false
	if err := survey.AskOne(&survey.Confirm{Message: messageRemoveConfirm(name), Default: true}, &ok); err != nil {
		return false, err
	}
	return ok, nil
}

func messageRemoveConfirm(name string) string {
	return "Remove '" + name + "' from the manifest?"
}
