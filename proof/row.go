package proof

import (
	"fmt"
	"math/big"

	"github.com/arloliu/friproof/errs"
	"github.com/arloliu/friproof/field"
)

// Registers holds register traces as parallel arrays indexed [register][position].
type Registers struct {
	State      [][]*big.Int // execution trace registers
	Secret     [][]*big.Int // secret input registers
	Boundary   [][]*big.Int // boundary value registers
	Constraint [][]*big.Int // constraint evaluations
}

// Row is the set of values revealed at one queried position.
type Row struct {
	State      []*big.Int
	Secret     []*big.Int
	Boundary   []*big.Int
	Constraint []*big.Int
}

// Equal reports whether r and other hold numerically equal values in every group.
func (r Row) Equal(other Row) bool {
	return valuesEqual(r.State, other.State) &&
		valuesEqual(r.Secret, other.Secret) &&
		valuesEqual(r.Boundary, other.Boundary) &&
		valuesEqual(r.Constraint, other.Constraint)
}

func valuesEqual(a, b []*big.Int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] == nil || b[i] == nil {
			if a[i] != b[i] {
				return false
			}

			continue
		}
		if a[i].Cmp(b[i]) != 0 {
			return false
		}
	}

	return true
}

// RowAt selects the row at position from regs: the first StateWidth state
// registers, the first SecretInputCount secret registers, the first bCount
// boundary registers and the first ConstraintCount constraint registers.
//
// Returns:
//   - Row: the selected values; the big.Int pointers are shared with regs
//   - error: ErrRowShape if a register group is too short or position is out of range
func (c *Codec) RowAt(regs Registers, bCount, position int) (Row, error) {
	if bCount < 0 {
		return Row{}, fmt.Errorf("%w: negative boundary count %d", errs.ErrRowShape, bCount)
	}
	if position < 0 {
		return Row{}, fmt.Errorf("%w: negative position %d", errs.ErrRowShape, position)
	}

	var (
		row Row
		err error
	)
	if row.State, err = column("state", regs.State, c.cfg.stateWidth, position); err != nil {
		return Row{}, err
	}
	if row.Secret, err = column("secret", regs.Secret, c.cfg.secretInputCount, position); err != nil {
		return Row{}, err
	}
	if row.Boundary, err = column("boundary", regs.Boundary, bCount, position); err != nil {
		return Row{}, err
	}
	if row.Constraint, err = column("constraint", regs.Constraint, c.cfg.constraintCount, position); err != nil {
		return Row{}, err
	}

	return row, nil
}

func column(group string, regs [][]*big.Int, count, position int) ([]*big.Int, error) {
	if len(regs) < count {
		return nil, fmt.Errorf("%w: %d %s registers, need %d", errs.ErrRowShape, len(regs), group, count)
	}

	out := make([]*big.Int, count)
	for i := range out {
		if position >= len(regs[i]) {
			return nil, fmt.Errorf("%w: position %d out of range for %s register %d (length %d)",
				errs.ErrRowShape, position, group, i, len(regs[i]))
		}
		out[i] = regs[i][position]
	}

	return out, nil
}

// MergeRow encodes the row at position as one contiguous block of RowWidth(bCount)
// bytes: state values, then secret inputs, then bCount boundary values, then
// constraint values, each as a fixed-width big-endian field element.
//
// Returns:
//   - []byte: the encoded row
//   - error: ErrRowShape for missing registers, or a field error (ErrElementOverflow,
//     ErrNegativeElement, ErrNilElement) naming the offending register
func (c *Codec) MergeRow(regs Registers, bCount, position int) ([]byte, error) {
	row, err := c.RowAt(regs, bCount, position)
	if err != nil {
		return nil, err
	}

	return c.EncodeRow(row)
}

// EncodeRow encodes an already selected row. The group lengths must match the
// configuration; the boundary group may have any length.
func (c *Codec) EncodeRow(row Row) ([]byte, error) {
	if len(row.State) != c.cfg.stateWidth ||
		len(row.Secret) != c.cfg.secretInputCount ||
		len(row.Constraint) != c.cfg.constraintCount {
		return nil, fmt.Errorf("%w: row has %d/%d/%d state/secret/constraint values, want %d/%d/%d",
			errs.ErrRowShape, len(row.State), len(row.Secret), len(row.Constraint),
			c.cfg.stateWidth, c.cfg.secretInputCount, c.cfg.constraintCount)
	}

	width := c.cfg.fieldElementWidth
	buf := make([]byte, 0, c.cfg.RowWidth(len(row.Boundary)))

	groups := [...]struct {
		name   string
		values []*big.Int
	}{
		{"state", row.State},
		{"secret", row.Secret},
		{"boundary", row.Boundary},
		{"constraint", row.Constraint},
	}

	var err error
	for _, g := range groups {
		for i, v := range g.values {
			if buf, err = field.Append(buf, v, width); err != nil {
				return nil, fmt.Errorf("%s register %d: %w", g.name, i, err)
			}
		}
	}

	return buf, nil
}

// SplitRow decodes a row produced by MergeRow with the same bCount.
//
// Bytes past RowWidth(bCount) are ignored.
//
// Returns:
//   - Row: the four decoded value groups
//   - error: *errs.DecodeError wrapping ErrShortBuffer if data is shorter than RowWidth(bCount),
//     ErrRowShape for a negative bCount
func (c *Codec) SplitRow(data []byte, bCount int) (Row, error) {
	if bCount < 0 {
		return Row{}, fmt.Errorf("%w: negative boundary count %d", errs.ErrRowShape, bCount)
	}

	total := c.cfg.RowWidth(bCount)
	if len(data) < total {
		return Row{}, &errs.DecodeError{Field: "row", Offset: 0, Need: total, Have: len(data), Err: errs.ErrShortBuffer}
	}

	width := c.cfg.fieldElementWidth
	offset := 0
	next := func(n int) []*big.Int {
		out := make([]*big.Int, n)
		for i := range out {
			out[i] = field.Decode(data[offset : offset+width])
			offset += width
		}

		return out
	}

	var row Row
	row.State = next(c.cfg.stateWidth)
	row.Secret = next(c.cfg.secretInputCount)
	row.Boundary = next(bCount)
	row.Constraint = next(c.cfg.constraintCount)

	return row, nil
}
