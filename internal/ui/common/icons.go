package common

// Icons used by the prompts and the summary.
var Icons = struct {
	Question string
	Cursor   string
	Check    string
	Cross    string
	Warning  string
}{
	Question: "?",
	Cursor:   "❯",
	Check:    "✓",
	Cross:    "✗",
	Warning:  "!",
}
