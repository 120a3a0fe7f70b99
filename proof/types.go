package proof

import (
	"bytes"

	"github.com/arloliu/friproof/encoding"
)

// Proof is the complete proof object: the opened evaluations and the low-degree proof.
type Proof struct {
	Evaluations EvaluationBlock
	Degree      DegreeBlock
}

// EvaluationBlock holds the evaluation leaves opened against the trace commitment.
type EvaluationBlock struct {
	// Root is the Merkle root of the evaluation tree, exactly one digest wide.
	Root []byte
	// BranchingFactor (bpc) is the number of boundary values folded into each leaf value.
	BranchingFactor uint8
	// Depth is the depth of the evaluation tree.
	Depth uint8
	// Values are the opened leaf values, each ValueRecordWidth(BranchingFactor) bytes.
	Values [][]byte
	// Nodes are the sibling-hash paths of the opened leaves, one digest per node.
	Nodes [][][]byte
}

// DegreeBlock is the low-degree proof.
type DegreeBlock struct {
	Root       []byte               // root of the linear-combination tree
	LCProof    encoding.MerkleProof // linear-combination openings
	Components []Component          // one per folding round, at most 255
	Remainder  [][]byte             // unfolded tail, one digest-width record each
}

// Component is one folding round of the low-degree proof.
type Component struct {
	ColumnRoot  []byte
	ColumnProof encoding.MerkleProof
	PolyProof   encoding.MerkleProof
}

// Equal reports whether p and other are structurally identical.
// Nil and empty slices are considered equal.
func (p *Proof) Equal(other *Proof) bool {
	if p == nil || other == nil {
		return p == other
	}

	return p.Evaluations.Equal(other.Evaluations) && p.Degree.Equal(other.Degree)
}

// Equal reports whether b and other are structurally identical.
func (b EvaluationBlock) Equal(other EvaluationBlock) bool {
	return bytes.Equal(b.Root, other.Root) &&
		b.BranchingFactor == other.BranchingFactor &&
		b.Depth == other.Depth &&
		encoding.RecordsEqual(b.Values, other.Values) &&
		encoding.MatrixEqual(b.Nodes, other.Nodes)
}

// Equal reports whether b and other are structurally identical.
func (b DegreeBlock) Equal(other DegreeBlock) bool {
	if !bytes.Equal(b.Root, other.Root) || !b.LCProof.Equal(other.LCProof) {
		return false
	}
	if len(b.Components) != len(other.Components) {
		return false
	}
	for i := range b.Components {
		if !b.Components[i].Equal(other.Components[i]) {
			return false
		}
	}

	return encoding.RecordsEqual(b.Remainder, other.Remainder)
}

// Equal reports whether c and other are structurally identical.
func (c Component) Equal(other Component) bool {
	return bytes.Equal(c.ColumnRoot, other.ColumnRoot) &&
		c.ColumnProof.Equal(other.ColumnProof) &&
		c.PolyProof.Equal(other.PolyProof)
}
