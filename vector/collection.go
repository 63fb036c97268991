package vector

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Collection is an ordered, mutable sequence of [Vector] values.
//
// Vectors are copied in and out; no caller ever holds a reference into the
// backing slice. Insertion order is preserved by every operation. A failed
// operation leaves the collection unchanged.
//
// The zero value is an empty collection ready to use. A Collection is not safe
// for concurrent use.
//
// # Creating a collection
//
//	c := vector.NewCollection()
//	c := vector.NewCollection(vector.New(3, 4), vector.New(5, 6))
//	c, err := vector.LoadCollection("vectors.json")
//
// The JSON encoding is an array of vector objects:
//
//	[{"x":3,"y":4},{"x":5,"y":6}]
type Collection struct {
	items []Vector
}

// NewCollection creates a Collection holding vs in order (the slice is copied).
func NewCollection(vs ...Vector) *Collection {
	items := make([]Vector, len(vs))
	copy(items, vs)
	return &Collection{items: items}
}

// ─────────────────────────────────────────────────────────────────────────────
// Mutation
// ─────────────────────────────────────────────────────────────────────────────

// Add appends v at the end of the collection.
func (c *Collection) Add(v Vector) {
	c.items = append(c.items, v)
}

// AddValue appends value if it is a Vector or a non-nil *Vector, and returns
// an error wrapping [ErrTypeMismatch] otherwise.
//
// It exists for callers holding untyped values, such as decoded interface{}
// data or reflection-driven input. Typed code should call [Collection.Add].
func (c *Collection) AddValue(value any) error {
	switch v := value.(type) {
	case Vector:
		c.Add(v)
	case *Vector:
		if v == nil {
			return fmt.Errorf("%w: nil *vector.Vector", ErrTypeMismatch)
		}
		c.Add(*v)
	default:
		return fmt.Errorf("%w: got %T", ErrTypeMismatch, value)
	}
	return nil
}

// RemoveAt removes the vector at index, shifting later vectors left by one.
// It returns an error wrapping [ErrIndexOutOfRange] if index < 0 or
// index >= Len().
func (c *Collection) RemoveAt(index int) error {
	if err := c.checkIndex(index); err != nil {
		return err
	}
	c.items = append(c.items[:index], c.items[index+1:]...)
	return nil
}

// Clear removes every vector.
func (c *Collection) Clear() {
	c.items = nil
}

// ─────────────────────────────────────────────────────────────────────────────
// Access
// ─────────────────────────────────────────────────────────────────────────────

// Get returns the vector at index.
// It returns an error wrapping [ErrIndexOutOfRange] if index < 0 or
// index >= Len().
func (c *Collection) Get(index int) (Vector, error) {
	if err := c.checkIndex(index); err != nil {
		return Vector{}, err
	}
	return c.items[index], nil
}

// At is like [Collection.Get] but a negative index counts from the end:
// At(-1) is the last vector.
func (c *Collection) At(index int) (Vector, error) {
	if index < 0 {
		return c.Get(len(c.items) + index)
	}
	return c.Get(index)
}

// Slice returns a new collection with the vectors in the half-open range
// [start, end). Negative bounds count from the end and out-of-range bounds are
// clamped, so Slice never fails:
//
//	c.Slice(0, 2)        // first two
//	c.Slice(-2, c.Len()) // last two
//	c.Slice(5, 1)        // empty
func (c *Collection) Slice(start, end int) *Collection {
	start = clampBound(start, len(c.items))
	end = clampBound(end, len(c.items))
	if start >= end {
		return NewCollection()
	}
	return NewCollection(c.items[start:end]...)
}

func clampBound(i, n int) int {
	if i < 0 {
		i += n
	}
	if i < 0 {
		return 0
	}
	if i > n {
		return n
	}
	return i
}

// Len returns the number of vectors.
func (c *Collection) Len() int { return len(c.items) }

// IsEmpty reports whether the collection holds no vectors.
func (c *Collection) IsEmpty() bool { return len(c.items) == 0 }

// All returns a copy of the vectors in order.
func (c *Collection) All() []Vector {
	out := make([]Vector, len(c.items))
	copy(out, c.items)
	return out
}

// Each calls fn(v, index) for every vector in order.
func (c *Collection) Each(fn func(Vector, int)) {
	for i, v := range c.items {
		fn(v, i)
	}
}

// Sum returns the vector sum of all elements, or the zero vector for an empty
// collection.
func (c *Collection) Sum() Vector {
	var sum Vector
	for _, v := range c.items {
		sum = sum.Add(v)
	}
	return sum
}

func (c *Collection) checkIndex(index int) error {
	if index < 0 || index >= len(c.items) {
		return fmt.Errorf("%w: index %d, length %d", ErrIndexOutOfRange, index, len(c.items))
	}
	return nil
}

// ─────────────────────────────────────────────────────────────────────────────
// Text & JSON
// ─────────────────────────────────────────────────────────────────────────────

// String renders each vector on its own line, in order, without a trailing
// newline. An empty collection renders as "".
func (c *Collection) String() string {
	var b strings.Builder
	for i, v := range c.items {
		if i > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(v.String())
	}
	return b.String()
}

// MarshalJSON encodes the collection as a JSON array of {"x","y"} objects.
// An empty collection encodes as [].
func (c *Collection) MarshalJSON() ([]byte, error) {
	items := c.items
	if items == nil {
		items = []Vector{}
	}
	return json.Marshal(items)
}

// UnmarshalJSON replaces the contents of c with the decoded array.
// c is left unchanged on error.
func (c *Collection) UnmarshalJSON(data []byte) error {
	decoded, err := UnmarshalCollection(data)
	if err != nil {
		return err
	}
	c.items = decoded.items
	return nil
}

// UnmarshalCollection decodes a JSON array of {"x","y"} objects into a new
// collection in array order. It returns an error wrapping [ErrDecode] if data
// is not an array or any element is not a valid vector object.
func UnmarshalCollection(data []byte) (*Collection, error) {
	if !hasPrefixByte(data, '[') {
		return nil, fmt.Errorf("%w: want a JSON array", ErrDecode)
	}
	var raw []json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecode, err)
	}
	items := make([]Vector, 0, len(raw))
	for i, elem := range raw {
		v, err := UnmarshalVector(elem)
		if err != nil {
			return nil, fmt.Errorf("element %d: %w", i, err)
		}
		items = append(items, v)
	}
	return &Collection{items: items}, nil
}
