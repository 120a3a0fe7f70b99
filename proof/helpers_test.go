package proof

import (
	"fmt"
	"testing"

	"github.com/arloliu/friproof/digest"
	"github.com/arloliu/friproof/encoding"
	"github.com/stretchr/testify/require"
)

const testDigestWidth = 32

// testDigest derives a distinct digest-width record from a label.
func testDigest(t *testing.T, label string) []byte {
	t.Helper()

	sum, err := digest.SHA256.Sum([]byte(label))
	require.NoError(t, err)
	require.Len(t, sum, testDigestWidth)

	return sum
}

func testRecords(t *testing.T, prefix string, n, width int) [][]byte {
	t.Helper()

	out := make([][]byte, n)
	for i := range out {
		rec := make([]byte, width)
		for j := range rec {
			rec[j] = byte(i*31 + j + len(prefix))
		}
		out[i] = rec
	}

	return out
}

func testMerkleProof(t *testing.T, label string, leaves int, valueWidth int, depths ...int) encoding.MerkleProof {
	t.Helper()

	nodes := make([][][]byte, len(depths))
	for i, depth := range depths {
		path := make([][]byte, depth)
		for j := range path {
			path[j] = testDigest(t, fmt.Sprintf("%s/node/%d/%d", label, i, j))
		}
		nodes[i] = path
	}

	return encoding.MerkleProof{
		Values: testRecords(t, label, leaves, valueWidth),
		Nodes:  nodes,
	}
}

func testCodec(t *testing.T) *Codec {
	t.Helper()

	cfg, err := NewConfig(
		WithFieldElementWidth(8),
		WithStateWidth(2),
		WithSecretInputCount(1),
		WithConstraintCount(1),
	)
	require.NoError(t, err)

	return NewCodec(cfg)
}

// testProof builds a proof with two folding rounds and uneven path depths.
func testProof(t *testing.T, c *Codec) *Proof {
	t.Helper()

	const bpc = 2
	valueWidth := c.Config().ValueRecordWidth(bpc)

	return &Proof{
		Evaluations: EvaluationBlock{
			Root:            testDigest(t, "evaluations/root"),
			BranchingFactor: bpc,
			Depth:           5,
			Values:          testRecords(t, "evaluations/values", 3, valueWidth),
			Nodes: [][][]byte{
				{testDigest(t, "e/0/0"), testDigest(t, "e/0/1"), testDigest(t, "e/0/2")},
				{testDigest(t, "e/1/0"), testDigest(t, "e/1/1")},
				{},
			},
		},
		Degree: DegreeBlock{
			Root:    testDigest(t, "degree/root"),
			LCProof: testMerkleProof(t, "lc", 3, testDigestWidth, 4, 4, 3),
			Components: []Component{
				{
					ColumnRoot:  testDigest(t, "c0/root"),
					ColumnProof: testMerkleProof(t, "c0/column", 2, testDigestWidth, 3, 3),
					PolyProof:   testMerkleProof(t, "c0/poly", 1, testDigestWidth, 5),
				},
				{
					ColumnRoot:  testDigest(t, "c1/root"),
					ColumnProof: testMerkleProof(t, "c1/column", 2, testDigestWidth, 2, 1),
					PolyProof:   testMerkleProof(t, "c1/poly", 0, testDigestWidth),
				},
			},
			Remainder: testRecords(t, "remainder", 4, testDigestWidth),
		},
	}
}

// emptyDegreeProof builds a proof with no folding rounds and an empty remainder.
func emptyDegreeProof(t *testing.T, c *Codec) *Proof {
	t.Helper()

	return &Proof{
		Evaluations: EvaluationBlock{
			Root:            testDigest(t, "root"),
			BranchingFactor: 0,
			Depth:           1,
			Values:          testRecords(t, "v", 2, c.Config().ValueRecordWidth(0)),
			Nodes:           [][][]byte{{testDigest(t, "n0")}, {testDigest(t, "n1")}},
		},
		Degree: DegreeBlock{
			Root:       testDigest(t, "droot"),
			LCProof:    testMerkleProof(t, "lc", 1, testDigestWidth, 1),
			Components: []Component{},
			Remainder:  [][]byte{},
		},
	}
}
