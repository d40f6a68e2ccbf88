package search

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lexipath/feedback"
)

func step(parent *node, guess string, code feedback.Code, g float64) *node {
	depth := 0
	if parent != nil {
		depth = parent.depth
	}

	return &node{parent: parent, guess: guess, code: code, depth: depth + 1, g: g}
}

func TestChain_RootToLeaf(t *testing.T) {
	root := &node{}
	a := step(root, "SLATE", 9, 1)
	b := step(a, "CRANE", 242, 2)

	assert.Empty(t, root.chain())

	chain := b.chain()
	require.Len(t, chain, 2)
	assert.Equal(t, "SLATE", chain[0].guess)
	assert.Equal(t, "CRANE", chain[1].guess)
}

// Signatures must depend on the observation history alone: two paths with
// identical histories collapse in the visited set regardless of cost.
func TestSignature_HistoryOnly(t *testing.T) {
	root := &node{}
	cheap := step(step(root, "SLATE", 9, 1), "CRANE", 242, 2)
	dear := step(step(root, "SLATE", 9, 1.9), "CRANE", 242, 3.8)

	assert.Equal(t, cheap.signature(), dear.signature())
}

func TestSignature_DistinguishesHistories(t *testing.T) {
	root := &node{}
	sigs := map[string]string{}
	for _, h := range []struct {
		guess string
		code  feedback.Code
	}{
		{"SLATE", 9},
		{"SLATE", 10},
		{"CRANE", 9},
	} {
		n := step(root, h.guess, h.code, 1)
		sig := n.signature()
		for prev, owner := range sigs {
			assert.NotEqual(t, prev, sig, "collision with %s", owner)
		}
		sigs[sig] = h.guess
	}

	// Order matters: [SLATE, CRANE] is not [CRANE, SLATE].
	ab := step(step(root, "SLATE", 9, 1), "CRANE", 9, 2)
	ba := step(step(root, "CRANE", 9, 1), "SLATE", 9, 2)
	assert.NotEqual(t, ab.signature(), ba.signature())
}

func TestObservations_Materialize(t *testing.T) {
	p, err := feedback.Evaluate("SLATE", "CRANE")
	require.NoError(t, err)

	root := &node{}
	n := step(root, "SLATE", p.Code(), 1)

	obs, err := n.observations(5)
	require.NoError(t, err)
	require.Len(t, obs, 1)
	assert.Equal(t, "SLATE", obs[0].Guess)
	assert.Equal(t, p, obs[0].Pattern)
}
