// SPDX-License-Identifier: MIT

package vecops

// Seq is an ordered list of elements that is itself an Element.
// Typical use: the amputated vertices of one sample, indexed by gamma label.
type Seq[E Element[E]] []E

const (
	opSeqAdd = "Seq.Add"
	opSeqSub = "Seq.Sub"
)

// Zero returns a sequence of the receiver's length whose entries are the
// entries' own zeros, so inner shapes are preserved.
func (s Seq[E]) Zero() Seq[E] {
	out := make(Seq[E], len(s))
	for i := range s {
		out[i] = s[i].Zero()
	}

	return out
}

// Add returns s+o entry-wise.
func (s Seq[E]) Add(o Seq[E]) (Seq[E], error) {
	if len(s) != len(o) {
		return nil, mismatchf(opSeqAdd, len(s), len(o))
	}
	out, err := ZipWith(s, o, func(a, b E) (E, error) { return a.Add(b) })

	return Seq[E](out), err
}

// Sub returns s-o entry-wise.
func (s Seq[E]) Sub(o Seq[E]) (Seq[E], error) {
	if len(s) != len(o) {
		return nil, mismatchf(opSeqSub, len(s), len(o))
	}
	out, err := ZipWith(s, o, func(a, b E) (E, error) { return a.Sub(b) })

	return Seq[E](out), err
}

// Scale multiplies every entry by f.
func (s Seq[E]) Scale(f float64) Seq[E] {
	out := make(Seq[E], len(s))
	for i := range s {
		out[i] = s[i].Scale(f)
	}

	return out
}
