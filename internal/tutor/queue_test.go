package tutor

import "testing"

func boolPtr(b bool) *bool { return &b }

func assessmentOf(names []string, statuses map[string]*bool) *orderedAssessment {
	a := newOrderedAssessment(names)
	for name, st := range statuses {
		a.set(name, st)
	}
	return a
}

func TestBuildQueueScenario(t *testing.T) {
	// Learner knows 방정식, doesn't know 일차식; target 일차방정식.
	a := assessmentOf([]string{"방정식", "일차식"}, map[string]*bool{
		"방정식": boolPtr(true),
		"일차식": boolPtr(false),
	})

	queue, unmentioned := buildQueue(a, "일차방정식")

	want := []string{"일차식", "일차방정식"}
	if len(queue) != len(want) {
		t.Fatalf("queue = %v, want %v", queue, want)
	}
	for i := range want {
		if queue[i] != want[i] {
			t.Errorf("queue[%d] = %q, want %q", i, queue[i], want[i])
		}
	}
	if len(unmentioned) != 0 {
		t.Errorf("unmentioned = %v, want empty", unmentioned)
	}
}

func TestBuildQueueOrdering(t *testing.T) {
	// Unknown before unmentioned before target, preserving encounter order.
	a := assessmentOf([]string{"a", "b", "c", "d"}, map[string]*bool{
		"a": nil,
		"b": boolPtr(false),
		"c": boolPtr(true),
		"d": boolPtr(false),
	})

	queue, unmentioned := buildQueue(a, "t")

	want := []string{"b", "d", "a", "t"}
	if len(queue) != len(want) {
		t.Fatalf("queue = %v, want %v", queue, want)
	}
	for i := range want {
		if queue[i] != want[i] {
			t.Errorf("queue[%d] = %q, want %q", i, queue[i], want[i])
		}
	}
	if len(unmentioned) != 1 || unmentioned[0] != "a" {
		t.Errorf("unmentioned = %v, want [a]", unmentioned)
	}
}

func TestBuildQueueNeverEmpty(t *testing.T) {
	// All prerequisites known: the queue still holds the target.
	a := assessmentOf([]string{"x", "y"}, map[string]*bool{
		"x": boolPtr(true),
		"y": boolPtr(true),
	})

	queue, _ := buildQueue(a, "t")
	if len(queue) != 1 || queue[0] != "t" {
		t.Errorf("queue = %v, want [t]", queue)
	}
}

func TestBuildQueueTargetKnownStillQueued(t *testing.T) {
	// Even a "known" target falls back to itself when nothing else queues.
	a := assessmentOf([]string{"t"}, map[string]*bool{
		"t": boolPtr(true),
	})

	queue, _ := buildQueue(a, "t")
	if len(queue) != 1 || queue[0] != "t" {
		t.Errorf("queue = %v, want [t]", queue)
	}
}

func TestBuildQueueExcludesKnownAndDedups(t *testing.T) {
	a := assessmentOf([]string{"p", "q", "t"}, map[string]*bool{
		"p": boolPtr(false),
		"q": boolPtr(true),
		"t": boolPtr(false), // target also assessed unknown: appears once
	})

	queue, _ := buildQueue(a, "t")

	seen := make(map[string]int)
	for _, name := range queue {
		seen[name]++
	}
	for name, n := range seen {
		if n > 1 {
			t.Errorf("%q appears %d times", name, n)
		}
	}
	if seen["q"] != 0 {
		t.Errorf("known concept queued: %v", queue)
	}
	if seen["t"] != 1 {
		t.Errorf("target missing from queue: %v", queue)
	}
	if queue[len(queue)-1] != "t" {
		t.Errorf("target not last: %v", queue)
	}
}

func TestBuildQueueEmptyAssessment(t *testing.T) {
	a := newOrderedAssessment(nil)
	queue, unmentioned := buildQueue(a, "t")
	if len(queue) != 1 || queue[0] != "t" {
		t.Errorf("queue = %v, want [t]", queue)
	}
	if len(unmentioned) != 0 {
		t.Errorf("unmentioned = %v, want empty", unmentioned)
	}
}

func TestOrderedAssessmentPreservesOrder(t *testing.T) {
	a := newOrderedAssessment([]string{"c", "a", "b", "a"})
	if len(a.names) != 3 {
		t.Fatalf("names = %v, want deduplicated 3", a.names)
	}
	want := []string{"c", "a", "b"}
	for i := range want {
		if a.names[i] != want[i] {
			t.Errorf("names[%d] = %q, want %q", i, a.names[i], want[i])
		}
	}

	// Unknown names are ignored.
	a.set("z", boolPtr(true))
	if a.status("z") != nil {
		t.Error("unknown name should stay absent")
	}
}
