package tutor

import "testing"

func TestIsExitCommand(t *testing.T) {
	tests := []struct {
		input string
		want  bool
	}{
		{"종료", true},
		{"exit", true},
		{"QUIT", true},
		{"  exit  ", true},
		{"일차방정식이 뭐야?", false},
		{"", false},
		{"exit the building", false},
	}
	for _, tt := range tests {
		if got := IsExitCommand(tt.input); got != tt.want {
			t.Errorf("IsExitCommand(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

func TestIsSystemCommand(t *testing.T) {
	tests := []struct {
		input string
		want  bool
	}{
		{"pip install numpy", true},
		{"python main.py", true},
		{"go run .", true},
		{"def foo():", true},
		{"/usr/local/bin", true},
		{"", false},
		{"일차방정식이 뭐야?", false},
		{"3/4", false}, // fraction, not a path
		{"3 / 4", false},
		{"python이라는 단어가 들어간 아주 긴 수학 질문은 어떻게 되나요 선생님", false},
	}
	for _, tt := range tests {
		if got := isSystemCommand(tt.input); got != tt.want {
			t.Errorf("isSystemCommand(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}
