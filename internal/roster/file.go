package roster

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"
)

// File is the on-disk shape of a roster file:
//
//	names = ["Han Solo", "Chewbacca"]
type File struct {
	Names []string `toml:"names"`
}

// ParseFile decodes roster TOML.
func ParseFile(data []byte) (File, error) {
	var f File
	if err := toml.Unmarshal(data, &f); err != nil {
		return File{}, fmt.Errorf("parse roster: %w", err)
	}
	return f, nil
}

// LoadFile reads and decodes the roster file at path.
func LoadFile(path string) (File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return File{}, fmt.Errorf("read roster %s: %w", path, err)
	}
	f, err := ParseFile(data)
	if err != nil {
		return File{}, fmt.Errorf("%s: %w", path, err)
	}
	return f, nil
}
