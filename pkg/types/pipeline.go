package types

// Node is a single step in a submitted pipeline. Type is a free-form tag and
// Data an opaque payload; neither is interpreted by the analysis.
type Node struct {
	ID   string         `json:"id"`
	Type string         `json:"type"`
	Data map[string]any `json:"data"`
}

// Edge is a directed connection between two node identifiers. The endpoints
// are not required to reference declared nodes.
type Edge struct {
	Source string `json:"source"`
	Target string `json:"target"`
}

// Pipeline is the request shape accepted by the parse endpoint.
type Pipeline struct {
	Nodes []Node `json:"nodes"`
	Edges []Edge `json:"edges"`
}

// PipelineStats is the analysis result: literal input record counts plus the
// acyclicity verdict. Counts are of input records, not of the deduplicated
// graph.
type PipelineStats struct {
	NumNodes int  `json:"num_nodes"`
	NumEdges int  `json:"num_edges"`
	IsDAG    bool `json:"is_dag"`
}
