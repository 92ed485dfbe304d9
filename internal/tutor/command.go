package tutor

import "strings"

// exitTokens end the session and reset the dialogue flow.
var exitTokens = map[string]bool{
	"종료": true,
	"exit": true,
	"quit": true,
}

// IsExitCommand reports whether the input requests session exit. The UI
// uses it to close the program after the farewell is shown.
func IsExitCommand(input string) bool {
	return exitTokens[strings.ToLower(strings.TrimSpace(input))]
}

// commandKeywords mark short inputs that look like shell commands or code
// pasted by accident rather than math questions.
var commandKeywords = []string{
	"pyenv", "python", ".py", "conda", "pip",
	"go run", "go build", ".go",
	"import ", "def ", "class ", "func ",
}

// isSystemCommand detects command or code fragments so they are ignored
// instead of routed to the LLM.
func isSystemCommand(input string) bool {
	if input == "" {
		return false
	}

	lower := strings.ToLower(input)
	if len(strings.Fields(input)) < 5 {
		for _, kw := range commandKeywords {
			if strings.Contains(lower, kw) {
				return true
			}
		}
	}

	if strings.ContainsAny(input, `/\`) {
		// Fractions like "3/4" are math, not paths.
		stripped := strings.ReplaceAll(strings.ReplaceAll(input, "/", ""), " ", "")
		if stripped != "" && isAllDigits(stripped) {
			return false
		}
		return true
	}
	return false
}

func isAllDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
