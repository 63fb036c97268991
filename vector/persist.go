package vector

import (
	"encoding/json"
	"io"
	"os"
)

// Save writes the JSON encoding of v to path, creating or truncating it.
// Errors from the file system are returned unwrapped.
func (v Vector) Save(path string) error {
	return writeJSONFile(path, v)
}

// LoadVector reads a vector previously written by [Vector.Save].
// Errors from the file system are returned unwrapped; a malformed file yields
// an error wrapping [ErrDecode].
func LoadVector(path string) (Vector, error) {
	data, err := readFile(path)
	if err != nil {
		return Vector{}, err
	}
	return UnmarshalVector(data)
}

// Save writes the JSON array encoding of c to path, creating or truncating it.
// Errors from the file system are returned unwrapped.
func (c *Collection) Save(path string) error {
	return writeJSONFile(path, c)
}

// LoadCollection reads a collection previously written by [Collection.Save].
// Errors from the file system are returned unwrapped; a malformed file yields
// an error wrapping [ErrDecode].
func LoadCollection(path string) (*Collection, error) {
	data, err := readFile(path)
	if err != nil {
		return nil, err
	}
	return UnmarshalCollection(data)
}

// writeJSONFile encodes before touching the file, so an unencodable value
// never truncates an existing file.
func writeJSONFile(path string, v json.Marshaler) (err error) {
	data, err := v.MarshalJSON()
	if err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()
	_, err = f.Write(data)
	return err
}

func readFile(path string) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return io.ReadAll(f)
}
