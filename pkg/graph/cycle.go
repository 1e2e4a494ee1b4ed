package graph

import "context"

// Node colors for the depth-first search. A gray node is on the active
// traversal path; reaching a gray node again is the one and only cycle
// signal. A black node's full subtree is already proven safe.
const (
	white = iota
	gray
	black
)

// frame is one level of the explicit traversal stack: a node plus the index
// of the next neighbor to visit. Using an explicit stack instead of recursion
// keeps adversarial deep chains from exhausting the goroutine stack while
// preserving the exact visit order of the recursive formulation.
type frame struct {
	id   string
	next int
}

// ctxCheckInterval is how many stack operations pass between context checks.
const ctxCheckInterval = 4096

// IsAcyclic reports whether the graph reachable from roots contains no
// cycle. Roots are visited in the given order; identifiers without an
// adjacency entry are terminal, so a dangling edge target is visitable and
// trivially safe. The context is consulted periodically and its error
// returned if the walk is cancelled mid-flight.
func (g *Graph) IsAcyclic(ctx context.Context, roots []string) (bool, error) {
	color := make(map[string]uint8, len(roots))
	var stack []frame
	steps := 0

	for _, root := range roots {
		if color[root] != white {
			continue
		}
		color[root] = gray
		stack = append(stack[:0], frame{id: root})

		for len(stack) > 0 {
			steps++
			if steps%ctxCheckInterval == 0 {
				if err := ctx.Err(); err != nil {
					return false, err
				}
			}

			top := &stack[len(stack)-1]
			targets := g.adj[top.id]
			if top.next < len(targets) {
				n := targets[top.next]
				top.next++
				switch color[n] {
				case gray:
					// Back edge: n is on the active path.
					return false, nil
				case white:
					color[n] = gray
					stack = append(stack, frame{id: n})
				}
			} else {
				color[top.id] = black
				stack = stack[:len(stack)-1]
			}
		}
	}

	return true, nil
}
