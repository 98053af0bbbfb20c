package common

// Icons used throughout the application
// Uses Unicode characters with fallbacks for broad terminal support
var Icons = struct {
	Dot         string
	Add         string
	Delete      string
	Cursor      string
	CursorEmpty string
	Grip        string
	Success     string
	Failure     string
}{
	Dot:         "●",
	Add:         "+",
	Delete:      "×",
	Cursor:      ">",
	CursorEmpty: " ",
	Grip:        "⣿",
	Success:     "✓",
	Failure:     "✗",
}
