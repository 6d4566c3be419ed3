package wizard

import (
	"github.com/andyrewlee/mkbranch/internal/config"
	"github.com/andyrewlee/mkbranch/internal/prompt"
)

type questionSet struct {
	prefix    prompt.Question
	username  prompt.Question
	detail    prompt.Question
	separator prompt.Question
	date      prompt.Question

	manualLabel string
}

func questions(cfg *config.Config) questionSet {
	return questionSet{
		prefix: prompt.Question{
			Field:         "prefix",
			Message:       "Select a branch prefix",
			Choices:       cfg.Prefixes,
			AllowManual:   true,
			ManualLabel:   cfg.ManualLabel,
			ManualMessage: "Enter a prefix:",
		},
		username: prompt.Question{
			Field:         "username",
			Message:       "Select a username",
			Choices:       cfg.Usernames,
			AllowManual:   true,
			ManualLabel:   cfg.ManualLabel,
			ManualMessage: "Enter a username:",
		},
		detail: prompt.Question{
			Field:       "detail",
			Message:     "Describe the branch:",
			Placeholder: "login-page",
		},
		separator: prompt.Question{
			Field:   "separator",
			Message: "Select a separator",
			Choices: cfg.Separators,
		},
		date: prompt.Question{
			Field:   "date",
			Message: "Append today's date?",
		},
		manualLabel: cfg.ManualLabel,
	}
}

func (q questionSet) environment(choices []config.Choice) prompt.Question {
	return prompt.Question{
		Field:         "detail",
		Message:       "Select an environment",
		Choices:       choices,
		AllowManual:   true,
		ManualLabel:   q.manualLabel,
		ManualMessage: "Enter an environment:",
	}
}
