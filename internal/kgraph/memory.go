package kgraph

import (
	"context"
	"sort"
	"sync"
)

// MemoryGraph is an in-process Graph used when no Neo4j instance is
// configured, and in tests. Traversal semantics match the Cypher queries:
// minimum-distance depth per prerequisite, ordered by ascending depth.
type MemoryGraph struct {
	mu       sync.RWMutex
	concepts map[string]*Concept
	order    map[string]int // insertion order, for stable tie-breaking
	// edges[a] lists b where a IS_PREREQUISITE_OF b.
	edges map[string][]string
	// reverse[b] lists a where a IS_PREREQUISITE_OF b.
	reverse map[string][]string
}

// NewMemoryGraph returns an empty in-memory graph.
func NewMemoryGraph() *MemoryGraph {
	return &MemoryGraph{
		concepts: make(map[string]*Concept),
		order:    make(map[string]int),
		edges:    make(map[string][]string),
		reverse:  make(map[string][]string),
	}
}

// AddConcept registers a concept. Re-adding replaces the definition.
func (g *MemoryGraph) AddConcept(name, definition string, examples ...string) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if _, ok := g.concepts[name]; !ok {
		g.order[name] = len(g.order)
	}
	g.concepts[name] = &Concept{Name: name, Definition: definition, Examples: examples}
}

// AddPrerequisite records that prereq must be learned before target.
// Both concepts must already be registered; unknown names are ignored.
func (g *MemoryGraph) AddPrerequisite(prereq, target string) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if _, ok := g.concepts[prereq]; !ok {
		return
	}
	if _, ok := g.concepts[target]; !ok {
		return
	}
	g.edges[prereq] = append(g.edges[prereq], target)
	g.reverse[target] = append(g.reverse[target], prereq)
}

func (g *MemoryGraph) Lookup(_ context.Context, name string) (*Concept, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	c, ok := g.concepts[name]
	if !ok {
		return nil, ErrNotFound
	}
	cp := *c
	return &cp, nil
}

func (g *MemoryGraph) Prerequisites(_ context.Context, name string, maxDepth int) ([]Prerequisite, error) {
	if maxDepth < 1 {
		maxDepth = DefaultPrereqDepth
	}
	g.mu.RLock()
	defer g.mu.RUnlock()

	if _, ok := g.concepts[name]; !ok {
		return nil, nil
	}

	// BFS backwards along prerequisite edges; first visit gives min depth.
	depths := make(map[string]int)
	frontier := []string{name}
	for d := 1; d <= maxDepth && len(frontier) > 0; d++ {
		var next []string
		for _, cur := range frontier {
			for _, p := range g.reverse[cur] {
				if p == name {
					continue
				}
				if _, seen := depths[p]; seen {
					continue
				}
				depths[p] = d
				next = append(next, p)
			}
		}
		frontier = next
	}

	prereqs := make([]Prerequisite, 0, len(depths))
	for pname, d := range depths {
		prereqs = append(prereqs, Prerequisite{
			Name:       pname,
			Definition: g.concepts[pname].Definition,
			Depth:      d,
		})
	}
	sort.Slice(prereqs, func(i, j int) bool {
		if prereqs[i].Depth != prereqs[j].Depth {
			return prereqs[i].Depth < prereqs[j].Depth
		}
		return g.order[prereqs[i].Name] < g.order[prereqs[j].Name]
	})
	return prereqs, nil
}

func (g *MemoryGraph) Path(ctx context.Context, name string) (*LearningPath, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if _, ok := g.concepts[name]; !ok {
		return &LearningPath{}, nil
	}

	path := &LearningPath{}
	seen := make(map[string]bool)
	addNode := func(n string) {
		if !seen[n] {
			seen[n] = true
			path.Nodes = append(path.Nodes, PathNode{ID: n, Label: n})
		}
	}
	addNode(name)

	// Prerequisites up to two steps back.
	for _, p1 := range g.reverse[name] {
		addNode(p1)
		path.Edges = append(path.Edges, PathEdge{Source: p1, Target: name})
		for _, p2 := range g.reverse[p1] {
			addNode(p2)
			path.Edges = append(path.Edges, PathEdge{Source: p2, Target: p1})
		}
	}
	// Dependents one step forward.
	for _, d := range g.edges[name] {
		addNode(d)
		path.Edges = append(path.Edges, PathEdge{Source: name, Target: d})
	}
	return path, nil
}

func (g *MemoryGraph) Close(context.Context) error { return nil }

// Seed populates a small middle-school algebra curriculum so the tutor
// works out of the box without a Neo4j instance.
func Seed(g *MemoryGraph) {
	g.AddConcept("등식", "등호(=)를 사용하여 두 수나 식이 같음을 나타낸 식",
		"3 + 4 = 7은 등식이다")
	g.AddConcept("방정식", "미지수의 값에 따라 참이 되기도 하고 거짓이 되기도 하는 등식",
		"x + 3 = 7은 x = 4일 때 참이 되는 방정식이다")
	g.AddConcept("문자와 식", "수 대신 문자를 사용하여 수량 사이의 관계를 나타낸 식",
		"한 개에 500원인 사과 x개의 값은 500x원이다")
	g.AddConcept("일차식", "차수가 1인 다항식",
		"2x + 1은 일차식이다")
	g.AddConcept("계수", "문자를 포함한 항에서 문자 앞에 곱해진 수",
		"3x에서 계수는 3이다")
	g.AddConcept("이항", "등식의 한 변에 있는 항을 부호를 바꾸어 다른 변으로 옮기는 것",
		"x + 3 = 7에서 +3을 이항하면 x = 7 - 3이 된다")
	g.AddConcept("일차방정식", "정리하여 (일차식) = 0 꼴이 되는 방정식",
		"2x + 3 = 11은 일차방정식이다")
	g.AddConcept("연립방정식", "두 개 이상의 방정식을 한 쌍으로 묶어 놓은 것",
		"x + y = 5, x - y = 1을 동시에 만족하는 해를 찾는다")
	g.AddConcept("정비례", "두 변수 x, y에서 x가 2배, 3배가 될 때 y도 2배, 3배가 되는 관계",
		"y = 2x에서 y는 x에 정비례한다")
	g.AddConcept("반비례", "두 변수 x, y에서 x가 2배, 3배가 될 때 y는 1/2배, 1/3배가 되는 관계",
		"y = 6/x에서 y는 x에 반비례한다")
	g.AddConcept("좌표평면", "두 수직선이 점 O에서 서로 수직으로 만나는 평면",
		"점 (2, 3)은 x좌표 2, y좌표 3인 점이다")
	g.AddConcept("함수", "두 변수 x, y에서 x의 값이 정해지면 y의 값이 하나로 정해지는 관계",
		"y = 3x는 함수이다")

	g.AddPrerequisite("등식", "방정식")
	g.AddPrerequisite("문자와 식", "일차식")
	g.AddPrerequisite("문자와 식", "계수")
	g.AddPrerequisite("계수", "일차식")
	g.AddPrerequisite("방정식", "일차방정식")
	g.AddPrerequisite("일차식", "일차방정식")
	g.AddPrerequisite("등식", "이항")
	g.AddPrerequisite("이항", "일차방정식")
	g.AddPrerequisite("일차방정식", "연립방정식")
	g.AddPrerequisite("정비례", "함수")
	g.AddPrerequisite("반비례", "함수")
	g.AddPrerequisite("좌표평면", "함수")
}
