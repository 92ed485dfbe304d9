// Package kgraph provides access to the prerequisite knowledge graph.
// Concepts are nodes; a directed IS_PREREQUISITE_OF edge from A to B means
// A must be understood before B.
package kgraph

import (
	"context"
	"errors"
)

// ErrNotFound is returned when a concept does not exist in the graph.
var ErrNotFound = errors.New("concept not found")

// Concept is a curriculum concept with its canonical definition and
// up to a few worked examples.
type Concept struct {
	Name       string
	Definition string
	Examples   []string
}

// Prerequisite is a concept reachable backwards along prerequisite edges.
// Depth is the minimum edge distance to the target (1 = immediate).
type Prerequisite struct {
	Name       string
	Definition string
	Depth      int
}

// PathNode and PathEdge describe the local learning path around a concept
// for display purposes.
type PathNode struct {
	ID    string
	Label string
}

type PathEdge struct {
	Source string
	Target string
}

// LearningPath is the local neighborhood of a concept: prerequisites up to
// two steps back and dependents one step forward.
type LearningPath struct {
	Nodes []PathNode
	Edges []PathEdge
}

// Graph answers prerequisite queries against the knowledge graph.
type Graph interface {
	// Lookup returns the concept with the given name, or ErrNotFound.
	Lookup(ctx context.Context, name string) (*Concept, error)

	// Prerequisites returns all prerequisites of the named concept within
	// maxDepth edges, ordered by ascending depth. A missing concept yields
	// an empty slice, not an error.
	Prerequisites(ctx context.Context, name string, maxDepth int) ([]Prerequisite, error)

	// Path returns the local learning path around the named concept.
	Path(ctx context.Context, name string) (*LearningPath, error)

	// Close releases graph resources.
	Close(ctx context.Context) error
}

// DefaultPrereqDepth is how far back prerequisite traversal reaches
// unless a caller asks otherwise.
const DefaultPrereqDepth = 2

// Immediate filters prerequisites down to depth 1, preserving order.
func Immediate(prereqs []Prerequisite) []Prerequisite {
	var out []Prerequisite
	for _, p := range prereqs {
		if p.Depth == 1 {
			out = append(out, p)
		}
	}
	return out
}
