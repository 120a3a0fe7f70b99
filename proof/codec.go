package proof

import (
	"fmt"
	"math"

	"github.com/arloliu/friproof/encoding"
	"github.com/arloliu/friproof/errs"
	"github.com/arloliu/friproof/internal/hash"
	"github.com/arloliu/friproof/internal/pool"
)

// MaxComponentCount is the largest number of folding rounds a proof can carry.
const MaxComponentCount = math.MaxUint8

// Codec serializes and parses proofs and evaluation rows for one Config.
//
// A Codec holds no mutable state: every method is a pure function of its
// arguments, and a single Codec can be used from any number of goroutines.
type Codec struct {
	cfg Config
}

// NewCodec creates a codec bound to cfg.
func NewCodec(cfg Config) *Codec {
	return &Codec{cfg: cfg}
}

// Config returns the codec configuration.
func (c *Codec) Config() Config {
	return c.cfg
}

// Size is the encoded size of a proof, split by block.
type Size struct {
	Evaluations int
	Degree      int
	Total       int
}

// SizeOf computes the encoded size of p from its shape, without encoding it.
//
// Parameters:
//   - p: Proof to measure
//   - digestWidth: Width in bytes of Merkle roots and nodes
//
// Returns:
//   - Size: byte counts of the evaluation block, the degree block and their total
//   - error: ErrRecordWidth if digestWidth is not positive
func (c *Codec) SizeOf(p *Proof, digestWidth int) (Size, error) {
	if digestWidth <= 0 {
		return Size{}, fmt.Errorf("%w: digest width %d", errs.ErrRecordWidth, digestWidth)
	}

	ev := &p.Evaluations
	values := encoding.NewArrayCodec(c.cfg.ValueRecordWidth(ev.BranchingFactor))
	nodes := encoding.NewMatrixCodec(digestWidth)
	evalSize := digestWidth + 2 + values.Size(len(ev.Values)) + nodes.Size(ev.Nodes)

	deg := &p.Degree
	mp := encoding.NewMerkleProofCodec(digestWidth, digestWidth)
	remainder := encoding.NewArrayCodec(digestWidth)
	degreeSize := digestWidth + mp.Size(deg.LCProof) + 1
	for i := range deg.Components {
		comp := &deg.Components[i]
		degreeSize += digestWidth + mp.Size(comp.ColumnProof) + mp.Size(comp.PolyProof)
	}
	degreeSize += remainder.Size(len(deg.Remainder))

	return Size{Evaluations: evalSize, Degree: degreeSize, Total: evalSize + degreeSize}, nil
}

// SerializeProof encodes p into a newly allocated buffer sized exactly from p's shape.
//
// Byte layout:
//   - evaluations: root, bpc (1 byte), depth (1 byte), values array, nodes matrix
//   - degree: root, lcProof, component count (1 byte), components, remainder array
//
// Each component is its column root, column proof and poly proof. Evaluation
// values are ValueRecordWidth(bpc) bytes; every other record is digestWidth bytes.
//
// Returns:
//   - []byte: the encoded proof
//   - error: ErrRecordWidth for a root or record of the wrong width,
//     ErrCountOverflow for more than MaxComponentCount components
func (c *Codec) SerializeProof(p *Proof, digestWidth int) ([]byte, error) {
	size, err := c.SizeOf(p, digestWidth)
	if err != nil {
		return nil, err
	}

	bb := pool.NewByteBuffer(size.Total)
	if err := c.appendProof(bb, p, digestWidth); err != nil {
		return nil, err
	}

	return bb.Bytes(), nil
}

// Fingerprint returns the xxHash64 of p's encoding.
//
// Equal proofs always have equal fingerprints. The fingerprint is meant for
// de-duplication and cache keys and carries no cryptographic guarantee.
func (c *Codec) Fingerprint(p *Proof, digestWidth int) (uint64, error) {
	size, err := c.SizeOf(p, digestWidth)
	if err != nil {
		return 0, err
	}

	bb := pool.GetProofBuffer()
	defer pool.PutProofBuffer(bb)

	bb.Grow(size.Total)
	if err := c.appendProof(bb, p, digestWidth); err != nil {
		return 0, err
	}

	return hash.Fingerprint(bb.Bytes()), nil
}

func (c *Codec) appendProof(bb *pool.ByteBuffer, p *Proof, digestWidth int) error {
	var err error

	ev := &p.Evaluations
	if err = writeDigest(bb, "evaluations.root", ev.Root, digestWidth); err != nil {
		return err
	}
	_ = bb.WriteByte(ev.BranchingFactor)
	_ = bb.WriteByte(ev.Depth)

	values := encoding.NewArrayCodec(c.cfg.ValueRecordWidth(ev.BranchingFactor))
	if bb.B, err = values.Append(bb.B, ev.Values); err != nil {
		return fmt.Errorf("evaluations.values: %w", err)
	}
	if bb.B, err = encoding.NewMatrixCodec(digestWidth).Append(bb.B, ev.Nodes); err != nil {
		return fmt.Errorf("evaluations.nodes: %w", err)
	}

	deg := &p.Degree
	mp := encoding.NewMerkleProofCodec(digestWidth, digestWidth)
	if err = writeDigest(bb, "degree.root", deg.Root, digestWidth); err != nil {
		return err
	}
	if bb.B, err = mp.Append(bb.B, deg.LCProof); err != nil {
		return fmt.Errorf("degree.lcProof: %w", err)
	}

	if len(deg.Components) > MaxComponentCount {
		return fmt.Errorf("%w: %d components, max %d", errs.ErrCountOverflow, len(deg.Components), MaxComponentCount)
	}
	_ = bb.WriteByte(uint8(len(deg.Components))) //nolint:gosec

	for i := range deg.Components {
		comp := &deg.Components[i]
		if err = writeDigest(bb, fmt.Sprintf("degree.components[%d].columnRoot", i), comp.ColumnRoot, digestWidth); err != nil {
			return err
		}
		if bb.B, err = mp.Append(bb.B, comp.ColumnProof); err != nil {
			return fmt.Errorf("degree.components[%d].columnProof: %w", i, err)
		}
		if bb.B, err = mp.Append(bb.B, comp.PolyProof); err != nil {
			return fmt.Errorf("degree.components[%d].polyProof: %w", i, err)
		}
	}

	if bb.B, err = encoding.NewArrayCodec(digestWidth).Append(bb.B, deg.Remainder); err != nil {
		return fmt.Errorf("degree.remainder: %w", err)
	}

	return nil
}

func writeDigest(bb *pool.ByteBuffer, field string, d []byte, digestWidth int) error {
	if len(d) != digestWidth {
		return fmt.Errorf("%s: %w: %d bytes, want %d", field, errs.ErrRecordWidth, len(d), digestWidth)
	}
	bb.MustWrite(d)

	return nil
}

// ParseProof decodes a proof produced by SerializeProof with the same digestWidth.
//
// The evaluation value width is derived from the decoded bpc byte. Every
// declared count is checked against the remaining input before storage is
// allocated, and the input must end exactly after the remainder.
//
// Returns:
//   - *Proof: the decoded proof; it never aliases data
//   - error: *errs.DecodeError wrapping ErrShortBuffer or ErrInvalidCount naming
//     the field being read, or ErrTrailingData
func (c *Codec) ParseProof(data []byte, digestWidth int) (*Proof, error) {
	if digestWidth <= 0 {
		return nil, fmt.Errorf("%w: digest width %d", errs.ErrRecordWidth, digestWidth)
	}

	r := encoding.NewReader(data)
	p := &Proof{}
	var err error

	ev := &p.Evaluations
	if ev.Root, err = r.ReadBytes("evaluations.root", digestWidth); err != nil {
		return nil, err
	}
	if ev.BranchingFactor, err = r.ReadUint8("evaluations.bpc"); err != nil {
		return nil, err
	}
	if ev.Depth, err = r.ReadUint8("evaluations.depth"); err != nil {
		return nil, err
	}

	values := encoding.NewArrayCodec(c.cfg.ValueRecordWidth(ev.BranchingFactor))
	if ev.Values, err = r.ReadArray("evaluations.values", values); err != nil {
		return nil, err
	}
	if ev.Nodes, err = r.ReadMatrix("evaluations.nodes", encoding.NewMatrixCodec(digestWidth)); err != nil {
		return nil, err
	}

	deg := &p.Degree
	mp := encoding.NewMerkleProofCodec(digestWidth, digestWidth)
	if deg.Root, err = r.ReadBytes("degree.root", digestWidth); err != nil {
		return nil, err
	}
	if deg.LCProof, err = r.ReadMerkleProof("degree.lcProof", mp); err != nil {
		return nil, err
	}

	count, err := r.ReadUint8("degree.components.count")
	if err != nil {
		return nil, err
	}
	// smallest component: a column root plus two empty merkle proofs
	minComponent := digestWidth + 4*encoding.CountSize
	if err = r.EnsureCount("degree.components", int(count), minComponent); err != nil {
		return nil, err
	}

	deg.Components = make([]Component, count)
	for i := range deg.Components {
		comp := &deg.Components[i]
		field := fmt.Sprintf("degree.components[%d]", i)
		if comp.ColumnRoot, err = r.ReadBytes(field+".columnRoot", digestWidth); err != nil {
			return nil, err
		}
		if comp.ColumnProof, err = r.ReadMerkleProof(field+".columnProof", mp); err != nil {
			return nil, err
		}
		if comp.PolyProof, err = r.ReadMerkleProof(field+".polyProof", mp); err != nil {
			return nil, err
		}
	}

	if deg.Remainder, err = r.ReadArray("degree.remainder", encoding.NewArrayCodec(digestWidth)); err != nil {
		return nil, err
	}

	if n := r.Remaining(); n > 0 {
		return nil, fmt.Errorf("%w: %d bytes at offset %d", errs.ErrTrailingData, n, r.Offset())
	}

	return p, nil
}
