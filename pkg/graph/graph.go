// Package graph builds adjacency lists from pipeline edges and decides
// whether the resulting directed graph is acyclic.
package graph

import (
	"context"

	"github.com/pipecheck/pipecheck/pkg/types"
)

// Graph is the ephemeral adjacency view of one request's edge list. It maps
// each node identifier that appears as an edge source to its targets in input
// order. Identifiers that only ever appear as targets have no entry; a
// missing key means "no outgoing edges".
type Graph struct {
	adj map[string][]string
	// sources holds the source identifiers in first-seen edge order, so that
	// traversal roots are deterministic without sorting.
	sources []string
}

// Build constructs the adjacency view of an edge list. It is purely
// structural: duplicate edges appear twice, and endpoints are never checked
// against a node list.
func Build(edges []types.Edge) *Graph {
	g := &Graph{adj: make(map[string][]string, len(edges))}
	for _, e := range edges {
		if _, ok := g.adj[e.Source]; !ok {
			g.sources = append(g.sources, e.Source)
		}
		g.adj[e.Source] = append(g.adj[e.Source], e.Target)
	}
	return g
}

// Neighbors returns the ordered targets of one outgoing hop from id. The
// returned slice is shared with the graph and must not be mutated.
func (g *Graph) Neighbors(id string) []string {
	return g.adj[id]
}

// Analyze runs the whole core contract: count the input records and decide
// acyclicity. It is a pure function of its input; the only possible error is
// the context's, checked periodically so a pathologically large graph can be
// abandoned.
func Analyze(ctx context.Context, nodes []types.Node, edges []types.Edge) (types.PipelineStats, error) {
	g := Build(edges)

	roots := make([]string, 0, len(nodes)+len(g.sources))
	seen := make(map[string]struct{}, len(nodes))
	for _, n := range nodes {
		roots = append(roots, n.ID)
		seen[n.ID] = struct{}{}
	}
	// Edge sources outside the declared node list still start traversals, so
	// a cycle among undeclared identifiers is not missed.
	for _, s := range g.sources {
		if _, ok := seen[s]; !ok {
			roots = append(roots, s)
		}
	}

	acyclic, err := g.IsAcyclic(ctx, roots)
	if err != nil {
		return types.PipelineStats{}, err
	}

	return types.PipelineStats{
		NumNodes: len(nodes),
		NumEdges: len(edges),
		IsDAG:    acyclic,
	}, nil
}
