package kgraph

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j"

	"github.com/seonho-dev/tutorgraph/internal/logging"
)

// Neo4jGraph reads the knowledge graph from a Neo4j instance.
type Neo4jGraph struct {
	driver   neo4j.DriverWithContext
	database string
	log      *logging.Logger
}

// NewNeo4jFromEnv connects using NEO4J_URI, NEO4J_USER, NEO4J_PASSWORD and
// NEO4J_DATABASE. Returns (nil, nil) when NEO4J_URI is unset so callers can
// fall back to the embedded graph.
func NewNeo4jFromEnv(log *logging.Logger) (*Neo4jGraph, error) {
	uri := strings.TrimSpace(os.Getenv("NEO4J_URI"))
	if uri == "" {
		return nil, nil
	}

	user := strings.TrimSpace(os.Getenv("NEO4J_USER"))
	if user == "" {
		user = "neo4j"
	}
	password := strings.TrimSpace(os.Getenv("NEO4J_PASSWORD"))
	database := strings.TrimSpace(os.Getenv("NEO4J_DATABASE"))

	timeoutSec := 10
	if v := strings.TrimSpace(os.Getenv("NEO4J_TIMEOUT_SECONDS")); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			timeoutSec = parsed
		}
	}

	auth := neo4j.BasicAuth(user, password, "")
	driver, err := neo4j.NewDriverWithContext(uri, auth, func(cfg *neo4j.Config) {
		cfg.SocketConnectTimeout = time.Duration(timeoutSec) * time.Second
	})
	if err != nil {
		return nil, fmt.Errorf("init neo4j driver: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(timeoutSec)*time.Second)
	defer cancel()
	if err := driver.VerifyConnectivity(ctx); err != nil {
		_ = driver.Close(ctx)
		return nil, fmt.Errorf("verify neo4j connectivity: %w", err)
	}

	return &Neo4jGraph{
		driver:   driver,
		database: database,
		log:      log.With("component", "kgraph"),
	}, nil
}

func (g *Neo4jGraph) session(ctx context.Context) neo4j.SessionWithContext {
	return g.driver.NewSession(ctx, neo4j.SessionConfig{
		AccessMode:   neo4j.AccessModeRead,
		DatabaseName: g.database,
	})
}

func (g *Neo4jGraph) Lookup(ctx context.Context, name string) (*Concept, error) {
	session := g.session(ctx)
	defer session.Close(ctx)

	result, err := session.ExecuteRead(ctx, func(tx neo4j.ManagedTransaction) (any, error) {
		res, err := tx.Run(ctx, `
MATCH (c:CoreConcept {name: $name})
RETURN c.name AS name, c.definition AS definition
`, map[string]any{"name": name})
		if err != nil {
			return nil, err
		}
		rec, err := res.Single(ctx)
		if err != nil {
			return nil, err
		}

		concept := &Concept{
			Name:       asString(rec.AsMap()["name"]),
			Definition: asString(rec.AsMap()["definition"]),
		}

		exRes, err := tx.Run(ctx, `
MATCH (concept:Concept)-[:IS_EXAMPLE_OF]->(core:CoreConcept {name: $name})
RETURN concept.definition AS example
LIMIT 3
`, map[string]any{"name": name})
		if err != nil {
			return nil, err
		}
		for exRes.Next(ctx) {
			if ex := asString(exRes.Record().AsMap()["example"]); ex != "" {
				concept.Examples = append(concept.Examples, ex)
			}
		}
		return concept, exRes.Err()
	})
	if err != nil {
		// Single() fails on zero rows; treat that as not found.
		if strings.Contains(err.Error(), "result contains no") ||
			strings.Contains(err.Error(), "no more records") {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("lookup concept %q: %w", name, err)
	}
	return result.(*Concept), nil
}

func (g *Neo4jGraph) Prerequisites(ctx context.Context, name string, maxDepth int) ([]Prerequisite, error) {
	if maxDepth < 1 {
		maxDepth = DefaultPrereqDepth
	}
	session := g.session(ctx)
	defer session.Close(ctx)

	// Variable-length patterns cannot take the bound as a parameter,
	// so the validated depth is interpolated directly.
	query := fmt.Sprintf(`
MATCH path = (prereq:CoreConcept)-[:IS_PREREQUISITE_OF*1..%d]->(target:CoreConcept {name: $concept})
WITH prereq, min(length(path)) AS dist
RETURN DISTINCT prereq.name AS name, prereq.definition AS definition, dist
ORDER BY dist
`, maxDepth)

	result, err := session.ExecuteRead(ctx, func(tx neo4j.ManagedTransaction) (any, error) {
		res, err := tx.Run(ctx, query, map[string]any{"concept": name})
		if err != nil {
			return nil, err
		}
		var prereqs []Prerequisite
		for res.Next(ctx) {
			m := res.Record().AsMap()
			prereqs = append(prereqs, Prerequisite{
				Name:       asString(m["name"]),
				Definition: asString(m["definition"]),
				Depth:      int(asInt64(m["dist"])),
			})
		}
		return prereqs, res.Err()
	})
	if err != nil {
		return nil, fmt.Errorf("prerequisites of %q: %w", name, err)
	}
	return result.([]Prerequisite), nil
}

func (g *Neo4jGraph) Path(ctx context.Context, name string) (*LearningPath, error) {
	session := g.session(ctx)
	defer session.Close(ctx)

	result, err := session.ExecuteRead(ctx, func(tx neo4j.ManagedTransaction) (any, error) {
		res, err := tx.Run(ctx, `
MATCH (target:CoreConcept {name: $concept})
OPTIONAL MATCH path_prereq = (prereq:CoreConcept)-[:IS_PREREQUISITE_OF*1..2]->(target)
OPTIONAL MATCH path_dep = (target)-[:IS_PREREQUISITE_OF*1..1]->(dependent:CoreConcept)
WITH target,
     collect(nodes(path_prereq)) + collect(nodes(path_dep)) AS node_lists,
     collect(relationships(path_prereq)) + collect(relationships(path_dep)) AS rel_lists
UNWIND node_lists AS node_list
UNWIND node_list AS n
WITH target, collect(DISTINCT n) AS all_nodes, rel_lists
UNWIND rel_lists AS rel_list
UNWIND rel_list AS r
WITH all_nodes + target AS final_nodes_list, collect(DISTINCT r) AS final_rels
WITH [n IN final_nodes_list | n.name] AS nodes,
     [r IN final_rels | {source: startNode(r).name, target: endNode(r).name}] AS edges
RETURN nodes, edges
`, map[string]any{"concept": name})
		if err != nil {
			return nil, err
		}

		path := &LearningPath{}
		if !res.Next(ctx) {
			return path, res.Err()
		}
		m := res.Record().AsMap()

		seen := make(map[string]bool)
		if nodes, ok := m["nodes"].([]any); ok {
			for _, n := range nodes {
				name := asString(n)
				if name == "" || seen[name] {
					continue
				}
				seen[name] = true
				path.Nodes = append(path.Nodes, PathNode{ID: name, Label: name})
			}
		}
		if edges, ok := m["edges"].([]any); ok {
			for _, e := range edges {
				em, ok := e.(map[string]any)
				if !ok {
					continue
				}
				path.Edges = append(path.Edges, PathEdge{
					Source: asString(em["source"]),
					Target: asString(em["target"]),
				})
			}
		}
		return path, nil
	})
	if err != nil {
		return nil, fmt.Errorf("learning path of %q: %w", name, err)
	}
	return result.(*LearningPath), nil
}

func (g *Neo4jGraph) Close(ctx context.Context) error {
	if g == nil || g.driver == nil {
		return nil
	}
	return g.driver.Close(ctx)
}

func asString(v any) string {
	s, _ := v.(string)
	return s
}

func asInt64(v any) int64 {
	n, _ := v.(int64)
	return n
}
