// Package vector provides a 2D numeric [Vector] value type and an ordered,
// mutable [Collection] of vectors, both with JSON persistence.
//
// # Vectors
//
// A Vector is a plain pair of float64 components. Arithmetic never mutates its
// operands; every operation returns a new value:
//
//	a := vector.New(3, 4)
//	b := vector.New(1, 2)
//	a.Add(b)       // Vector(4, 6)
//	a.Scale(2)     // Vector(6, 8)
//	a.Magnitude()  // 5
//	a.Dot(b)       // 11
//
// Vectors can be parsed from "x,y" text with [Parse] and are encoded as the
// JSON object {"x": <number>, "y": <number>}.
//
// # Collections
//
// A Collection keeps vectors in insertion order:
//
//	c := vector.NewCollection(vector.New(3, 4), vector.New(1, 2), vector.New(5, 6))
//	_ = c.RemoveAt(1)
//	fmt.Println(c) // Vector(3, 4)\nVector(5, 6)
//
// A collection is encoded as a JSON array of vector objects. The same format is
// used by [Collection.Save] and [LoadCollection].
//
// # Errors
//
// All failures are reported with the sentinel errors in this package
// ([ErrFormat], [ErrDecode], [ErrIndexOutOfRange], [ErrTypeMismatch],
// [ErrEncode]); compare with errors.Is. Operating-system errors from the file
// helpers are returned as-is.
//
// Neither type is safe for concurrent mutation. A Collection belongs to the
// code that created it.
package vector
