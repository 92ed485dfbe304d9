package cmd

import "testing"

// Every purpose label the engine tags its calls with must have a stage
// description, or the llm stats legend silently drops it.
func TestPurposeDescriptionsCoverPipeline(t *testing.T) {
	purposes := []string{
		"router",
		"concept-extract",
		"diagnostic-q",
		"assess",
		"intent",
		"explanation",
		"fallback",
		"chitchat",
		"problem-gen",
		"grading",
	}
	for _, p := range purposes {
		if purposeDescriptions[p] == "" {
			t.Errorf("no stage description for purpose %q", p)
		}
	}
}
