package types

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestValidateAcceptsWellFormedPipeline(t *testing.T) {
	p := &Pipeline{
		Nodes: []Node{{ID: "a", Type: "source", Data: map[string]any{"label": "A"}}},
		Edges: []Edge{{Source: "a", Target: "b"}},
	}
	require.NoError(t, p.Validate())
}

func TestValidateMissingNodeFields(t *testing.T) {
	p := &Pipeline{Nodes: []Node{{ID: "a", Type: "step"}, {Type: "step"}}}
	err := p.Validate()
	require.Error(t, err)
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	require.Equal(t, "node", verr.Record)
	require.Equal(t, 1, verr.Index)
	require.Equal(t, "id", verr.Field)

	p = &Pipeline{Nodes: []Node{{ID: "a"}}}
	err = p.Validate()
	require.ErrorAs(t, err, &verr)
	require.Equal(t, "type", verr.Field)
}

func TestValidateMissingEdgeFields(t *testing.T) {
	p := &Pipeline{Edges: []Edge{{Target: "b"}}}
	err := p.Validate()
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	require.Equal(t, "edge", verr.Record)
	require.Equal(t, "source", verr.Field)

	p = &Pipeline{Edges: []Edge{{Source: "a"}}}
	err = p.Validate()
	require.ErrorAs(t, err, &verr)
	require.Equal(t, "target", verr.Field)
}

func TestValidateDanglingEdgeIsNotAnError(t *testing.T) {
	p := &Pipeline{
		Nodes: []Node{{ID: "a", Type: "step"}},
		Edges: []Edge{{Source: "a", Target: "never-declared"}},
	}
	require.NoError(t, p.Validate())
}
