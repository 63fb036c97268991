package vector

// Arithmetic is the capability set of a vector-like value type. [Vector]
// satisfies Arithmetic[Vector].
//
// Accept Arithmetic in generic code that only needs the operators, so that
// other value types (a 3D vector, a fixed-point vector) can be substituted.
type Arithmetic[T any] interface {
	// Add returns the componentwise sum of the receiver and other.
	Add(other T) T

	// Sub returns the componentwise difference receiver - other.
	Sub(other T) T

	// Scale returns the receiver with every component multiplied by k.
	Scale(k float64) T

	// Magnitude returns the Euclidean norm; it is never negative.
	Magnitude() float64

	// Dot returns the dot product of the receiver and other.
	Dot(other T) float64
}

// Persistable is satisfied by values that can write themselves to a file in
// this package's JSON format.
//
// Loading is done by the package-level functions [LoadVector] and
// [LoadCollection], since the loaded value does not exist yet.
type Persistable interface {
	// Save writes the JSON encoding of the value to path, creating or
	// truncating the file.
	Save(path string) error
}

// Sequence is the ordered-container surface of [*Collection].
type Sequence interface {
	// Add appends v at the end.
	Add(v Vector)

	// RemoveAt removes the element at index and shifts later elements left.
	RemoveAt(index int) error

	// Get returns the element at index.
	Get(index int) (Vector, error)

	// Len returns the number of elements.
	Len() int

	// String renders one element per line.
	String() string
}

var (
	_ Arithmetic[Vector] = Vector{}
	_ Persistable        = Vector{}
	_ Persistable        = (*Collection)(nil)
	_ Sequence           = (*Collection)(nil)
)
