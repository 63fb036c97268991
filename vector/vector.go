package vector

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Vector is a 2D vector with float64 components.
//
// Vector is a value type. Methods never modify the receiver; arithmetic
// returns a new Vector. The zero value is the null vector (0, 0).
//
// The JSON encoding is {"x": X, "y": Y}.
type Vector struct {
	X float64
	Y float64
}

// New returns the vector (x, y). Components are stored verbatim.
func New(x, y float64) Vector {
	return Vector{X: x, Y: y}
}

// ─────────────────────────────────────────────────────────────────────────────
// Arithmetic
// ─────────────────────────────────────────────────────────────────────────────

// Add returns the componentwise sum v + o.
func (v Vector) Add(o Vector) Vector {
	return Vector{X: v.X + o.X, Y: v.Y + o.Y}
}

// Sub returns the componentwise difference v - o.
func (v Vector) Sub(o Vector) Vector {
	return Vector{X: v.X - o.X, Y: v.Y - o.Y}
}

// Scale returns v with both components multiplied by k.
func (v Vector) Scale(k float64) Vector {
	return Vector{X: v.X * k, Y: v.Y * k}
}

// Neg returns -v.
func (v Vector) Neg() Vector {
	return Vector{X: -v.X, Y: -v.Y}
}

// Magnitude returns the Euclidean norm sqrt(x² + y²).
// math.Hypot avoids overflow for large components.
func (v Vector) Magnitude() float64 {
	return math.Hypot(v.X, v.Y)
}

// Dot returns the dot product v.X*o.X + v.Y*o.Y.
func (v Vector) Dot(o Vector) float64 {
	return v.X*o.X + v.Y*o.Y
}

// ─────────────────────────────────────────────────────────────────────────────
// Comparison
// ─────────────────────────────────────────────────────────────────────────────

// IsZero reports whether both components are exactly zero.
func (v Vector) IsZero() bool {
	return v.X == 0 && v.Y == 0
}

// Equal reports whether every component of v is within tol of the matching
// component of o. Equal(o, 0) is exact comparison.
func (v Vector) Equal(o Vector, tol float64) bool {
	return math.Abs(v.X-o.X) <= tol && math.Abs(v.Y-o.Y) <= tol
}

// ─────────────────────────────────────────────────────────────────────────────
// Text
// ─────────────────────────────────────────────────────────────────────────────

// String returns "Vector(x, y)" using the shortest decimal form of each
// component, e.g. "Vector(3, 4)" or "Vector(0.5, -1.25)".
// It implements [fmt.Stringer].
func (v Vector) String() string {
	return "Vector(" + formatComponent(v.X) + ", " + formatComponent(v.Y) + ")"
}

func formatComponent(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}

// Parse parses "x,y" into a Vector. Whitespace around each token is ignored.
//
// It returns an error wrapping [ErrFormat] when s does not contain exactly one
// comma, when a token is not a number, or when a component is NaN or infinite.
//
//	v, err := vector.Parse("3, 4") // Vector(3, 4)
//	_, err = vector.Parse("3")     // ErrFormat
func Parse(s string) (Vector, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 2 {
		return Vector{}, fmt.Errorf("%w: %q: want 2 comma-separated values, got %d", ErrFormat, s, len(parts))
	}
	x, err := parseComponent(parts[0])
	if err != nil {
		return Vector{}, fmt.Errorf("%w: %q: x: %v", ErrFormat, s, err)
	}
	y, err := parseComponent(parts[1])
	if err != nil {
		return Vector{}, fmt.Errorf("%w: %q: y: %v", ErrFormat, s, err)
	}
	return Vector{X: x, Y: y}, nil
}

func parseComponent(tok string) (float64, error) {
	f, err := strconv.ParseFloat(strings.TrimSpace(tok), 64)
	if err != nil {
		return 0, err
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, fmt.Errorf("%s is not a finite number", strings.TrimSpace(tok))
	}
	return f, nil
}

// ─────────────────────────────────────────────────────────────────────────────
// JSON
// ─────────────────────────────────────────────────────────────────────────────

// wireVector is the on-disk shape of a vector.
type wireVector struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// incomingVector uses pointers so that absent and null keys can be told apart
// from zero.
type incomingVector struct {
	X *float64 `json:"x"`
	Y *float64 `json:"y"`
}

// MarshalJSON encodes v as {"x":X,"y":Y}.
// It returns an error wrapping [ErrEncode] if a component is NaN or infinite.
func (v Vector) MarshalJSON() ([]byte, error) {
	if !finite(v.X) || !finite(v.Y) {
		return nil, fmt.Errorf("%w: %s", ErrEncode, v)
	}
	return json.Marshal(wireVector{X: v.X, Y: v.Y})
}

// UnmarshalJSON decodes a JSON object with numeric "x" and "y" keys into v.
// v is left unchanged on error.
func (v *Vector) UnmarshalJSON(data []byte) error {
	decoded, err := UnmarshalVector(data)
	if err != nil {
		return err
	}
	*v = decoded
	return nil
}

// UnmarshalVector decodes a JSON object with numeric "x" and "y" keys.
// Extra keys are ignored. It returns an error wrapping [ErrDecode] when data
// is not an object, a key is missing or null, or a value is not a number.
func UnmarshalVector(data []byte) (Vector, error) {
	if !hasPrefixByte(data, '{') {
		return Vector{}, fmt.Errorf("%w: want a JSON object", ErrDecode)
	}
	var in incomingVector
	if err := json.Unmarshal(data, &in); err != nil {
		return Vector{}, fmt.Errorf("%w: %v", ErrDecode, err)
	}
	if in.X == nil {
		return Vector{}, fmt.Errorf("%w: missing key \"x\"", ErrDecode)
	}
	if in.Y == nil {
		return Vector{}, fmt.Errorf("%w: missing key \"y\"", ErrDecode)
	}
	return Vector{X: *in.X, Y: *in.Y}, nil
}

// hasPrefixByte reports whether the first non-whitespace byte of data is b.
func hasPrefixByte(data []byte, b byte) bool {
	trimmed := bytes.TrimLeft(data, " \t\r\n")
	return len(trimmed) > 0 && trimmed[0] == b
}

func finite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
