// Package search - compact, immutable search-node representation.
//
// A node is never mutated after construction; its history is the shared
// tail of its parent chain plus one own observation, so extending a path
// costs O(1) instead of O(depth) copying. Equality for the visited set is
// defined purely over the history signature: two paths reaching the same
// observation sequence collapse regardless of cost bookkeeping.
package search

import (
	"encoding/binary"

	"github.com/katalvlaran/lexipath/feedback"
	"github.com/katalvlaran/lexipath/knowledge"
)

// node is the compact search state. Only the engine constructs nodes.
type node struct {
	// parent links the shared history tail; nil for the root.
	parent *node

	// guess and code are this node's own observation; empty for the root.
	guess string
	code  feedback.Code

	// depth equals the history length.
	depth int

	// g is the accumulated path cost.
	g float64

	// know is the knowledge implied by the full history.
	know *knowledge.Knowledge

	// remaining holds the candidate indices consistent with know, in
	// ascending (canonical dictionary) order.
	remaining []int
}

// chain returns the path nodes in root-to-leaf order, excluding the root.
func (n *node) chain() []*node {
	out := make([]*node, n.depth)
	for cur := n; cur.parent != nil; cur = cur.parent {
		out[cur.depth-1] = cur
	}

	return out
}

// signature keys the visited set. It depends on the history only: each
// observation contributes its guess bytes plus the pattern code, which is
// injective for fixed-length words.
func (n *node) signature() string {
	buf := make([]byte, 0, n.depth*(len(n.guess)+2))
	for _, step := range n.chain() {
		buf = append(buf, step.guess...)
		buf = binary.BigEndian.AppendUint16(buf, uint16(step.code))
	}

	return string(buf)
}

// observations materializes the history as (guess, pattern) pairs.
func (n *node) observations(wordLength int) ([]Observation, error) {
	steps := n.chain()
	out := make([]Observation, len(steps))
	for i, step := range steps {
		p, err := feedback.FromCode(step.code, wordLength)
		if err != nil {
			return nil, err
		}
		out[i] = Observation{Guess: step.guess, Pattern: p}
	}

	return out, nil
}
