package ui

import "github.com/AlecAivazis/survey/v2"

// IconOption swaps the survey question mark for "-" so survey prompts line
// up with the huh forms used elsewhere.
func IconOption() survey.AskOpt {
	return survey.WithIcons(func(icons *survey.IconSet) {
		icons.Question.Text = "-"
	})
}

// ConfirmDestructive asks a yes/no question that defaults to no.
func ConfirmDestructive(message string) (bool, error) {
	confirmed := false
	prompt := &survey.Confirm{
		Message: message,
		Default: false,
	}
	if err := survey.AskOne(prompt, &confirmed, IconOption()); err != nil {
		return false, err
	}
	return confirmed, nil
}
