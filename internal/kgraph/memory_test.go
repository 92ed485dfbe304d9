package kgraph

import (
	"context"
	"errors"
	"testing"
)

func seededGraph() *MemoryGraph {
	g := NewMemoryGraph()
	Seed(g)
	return g
}

func TestLookup(t *testing.T) {
	g := seededGraph()
	ctx := context.Background()

	c, err := g.Lookup(ctx, "일차방정식")
	if err != nil {
		t.Fatalf("lookup: %v", err)
	}
	if c.Name != "일차방정식" {
		t.Errorf("name = %q", c.Name)
	}
	if c.Definition == "" {
		t.Error("expected non-empty definition")
	}
	if len(c.Examples) == 0 {
		t.Error("expected at least one example")
	}
}

func TestLookupNotFound(t *testing.T) {
	g := seededGraph()

	_, err := g.Lookup(context.Background(), "미적분")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}

func TestPrerequisitesDepthOrder(t *testing.T) {
	g := seededGraph()

	prereqs, err := g.Prerequisites(context.Background(), "일차방정식", 2)
	if err != nil {
		t.Fatalf("prerequisites: %v", err)
	}
	if len(prereqs) == 0 {
		t.Fatal("expected prerequisites")
	}

	// Ascending depth, never exceeding the bound.
	for i := 1; i < len(prereqs); i++ {
		if prereqs[i].Depth < prereqs[i-1].Depth {
			t.Errorf("depth order violated at %d: %v", i, prereqs)
		}
	}
	for _, p := range prereqs {
		if p.Depth < 1 || p.Depth > 2 {
			t.Errorf("%s depth = %d, outside [1,2]", p.Name, p.Depth)
		}
		if p.Name == "일차방정식" {
			t.Error("target must not appear in its own prerequisites")
		}
	}

	immediate := Immediate(prereqs)
	names := make(map[string]bool)
	for _, p := range immediate {
		names[p.Name] = true
	}
	for _, want := range []string{"방정식", "일차식", "이항"} {
		if !names[want] {
			t.Errorf("missing immediate prerequisite %q (got %v)", want, immediate)
		}
	}
}

func TestPrerequisitesMinDepth(t *testing.T) {
	// A concept reachable at multiple distances must report the minimum.
	g := NewMemoryGraph()
	g.AddConcept("a", "A")
	g.AddConcept("b", "B")
	g.AddConcept("c", "C")
	g.AddPrerequisite("a", "b")
	g.AddPrerequisite("b", "c")
	g.AddPrerequisite("a", "c") // a is both 1 and 2 steps from c

	prereqs, err := g.Prerequisites(context.Background(), "c", 3)
	if err != nil {
		t.Fatalf("prerequisites: %v", err)
	}
	for _, p := range prereqs {
		if p.Name == "a" && p.Depth != 1 {
			t.Errorf("a depth = %d, want 1 (minimum distance)", p.Depth)
		}
	}
}

func TestPrerequisitesIdempotent(t *testing.T) {
	g := seededGraph()
	ctx := context.Background()

	first, err := g.Prerequisites(ctx, "함수", 2)
	if err != nil {
		t.Fatalf("first: %v", err)
	}
	second, err := g.Prerequisites(ctx, "함수", 2)
	if err != nil {
		t.Fatalf("second: %v", err)
	}
	if len(first) != len(second) {
		t.Fatalf("lengths differ: %d vs %d", len(first), len(second))
	}
	for i := range first {
		if first[i] != second[i] {
			t.Errorf("result %d differs: %v vs %v", i, first[i], second[i])
		}
	}
}

func TestPrerequisitesUnknownConcept(t *testing.T) {
	g := seededGraph()

	prereqs, err := g.Prerequisites(context.Background(), "위상수학", 2)
	if err != nil {
		t.Fatalf("prerequisites: %v", err)
	}
	if len(prereqs) != 0 {
		t.Errorf("expected empty result for unknown concept, got %v", prereqs)
	}
}

func TestPath(t *testing.T) {
	g := seededGraph()

	path, err := g.Path(context.Background(), "일차방정식")
	if err != nil {
		t.Fatalf("path: %v", err)
	}

	hasNode := func(name string) bool {
		for _, n := range path.Nodes {
			if n.ID == name {
				return true
			}
		}
		return false
	}
	if !hasNode("일차방정식") {
		t.Error("path must include the target itself")
	}
	if !hasNode("방정식") {
		t.Error("path must include immediate prerequisite 방정식")
	}
	if !hasNode("연립방정식") {
		t.Error("path must include dependent 연립방정식")
	}

	for _, e := range path.Edges {
		if e.Source == "" || e.Target == "" {
			t.Errorf("edge with empty endpoint: %+v", e)
		}
	}
}

func TestPathUnknownConcept(t *testing.T) {
	g := seededGraph()

	path, err := g.Path(context.Background(), "위상수학")
	if err != nil {
		t.Fatalf("path: %v", err)
	}
	if len(path.Nodes) != 0 || len(path.Edges) != 0 {
		t.Errorf("expected empty path, got %+v", path)
	}
}
