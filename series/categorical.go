package series

import (
	"fmt"

	"github.com/ivanovmg/plotly-resampler/errs"
	"github.com/ivanovmg/plotly-resampler/format"
)

// Categorical is a column of categorical labels stored as integer codes.
//
// The code of a label is its position in the category table. Algorithms only
// see the codes through Float and Less; the table is kept so results can be
// decoded back to labels.
type Categorical struct {
	codes      []int
	categories []string
	ordered    bool
}

var _ Numeric = (*Categorical)(nil)

// NewCategorical encodes labels against the given category order.
//
// When categories is nil the table is built in first-seen order and the
// result is unordered. When categories is given every label must appear in
// it, otherwise ErrUnknownCategory is returned.
//
// Example:
//
//	c, err := NewCategorical([]string{"a", "b", "c", "a"}, []string{"b", "c", "a"})
//	// c.Codes() == []int{2, 0, 1, 2}
func NewCategorical(labels []string, categories []string) (*Categorical, error) {
	c := &Categorical{
		codes:   make([]int, len(labels)),
		ordered: categories != nil,
	}

	lookup := make(map[string]int, len(categories))
	if c.ordered {
		c.categories = make([]string, len(categories))
		copy(c.categories, categories)
		for code, label := range c.categories {
			if _, dup := lookup[label]; dup {
				return nil, fmt.Errorf("%w: duplicate category %q", errs.ErrInvalidArgument, label)
			}
			lookup[label] = code
		}
	}

	for i, label := range labels {
		code, ok := lookup[label]
		if !ok {
			if c.ordered {
				return nil, fmt.Errorf("%w: %q at index %d", errs.ErrUnknownCategory, label, i)
			}
			code = len(c.categories)
			c.categories = append(c.categories, label)
			lookup[label] = code
		}
		c.codes[i] = code
	}

	return c, nil
}

// CategoricalFromCodes wraps precomputed codes with their category table.
// Every code must index into categories.
func CategoricalFromCodes(codes []int, categories []string, ordered bool) (*Categorical, error) {
	for i, code := range codes {
		if code < 0 || code >= len(categories) {
			return nil, fmt.Errorf("%w: code %d at index %d outside %d categories",
				errs.ErrUnknownCategory, code, i, len(categories))
		}
	}

	c := &Categorical{
		codes:      make([]int, len(codes)),
		categories: make([]string, len(categories)),
		ordered:    ordered,
	}
	copy(c.codes, codes)
	copy(c.categories, categories)

	return c, nil
}

func (c *Categorical) Len() int { return len(c.codes) }
func (c *Categorical) Dtype() format.Dtype { return format.DtypeCategory }
func (c *Categorical) Float(i int) float64 { return float64(c.codes[i]) }
func (c *Categorical) Less(i, j int) bool { return c.codes[i] < c.codes[j] }

// Ordered reports whether the category order was declared by the caller.
func (c *Categorical) Ordered() bool { return c.ordered }

// Code returns the code at i.
func (c *Categorical) Code(i int) int { return c.codes[i] }

// Label returns the label at i.
func (c *Categorical) Label(i int) string { return c.categories[c.codes[i]] }

// Codes returns a copy of the codes.
func (c *Categorical) Codes() []int {
	out := make([]int, len(c.codes))
	copy(out, c.codes)

	return out
}

// Categories returns a copy of the category table; index = code.
func (c *Categorical) Categories() []string {
	out := make([]string, len(c.categories))
	copy(out, c.categories)

	return out
}

// Decode returns the label for code.
func (c *Categorical) Decode(code int) (string, bool) {
	if code < 0 || code >= len(c.categories) {
		return "", false
	}

	return c.categories[code], true
}

// CodeColumn returns the codes as a plain integer column.
func (c *Categorical) CodeColumn() Ints[int] {
	return Ints[int](c.Codes())
}

// Slice returns a view of [lo, hi) sharing the category table.
func (c *Categorical) Slice(lo, hi int) Column {
	return &Categorical{
		codes:      c.codes[lo:hi:hi],
		categories: c.categories,
		ordered:    c.ordered,
	}
}

// Take gathers the codes at idx; the category table is shared.
func (c *Categorical) Take(idx []int) Column {
	codes := make([]int, len(idx))
	for k, i := range idx {
		codes[k] = c.codes[i]
	}

	return &Categorical{codes: codes, categories: c.categories, ordered: c.ordered}
}
