package harness

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// ParseFile parses a test suite from the given YAML file. A suite without an
// explicit name takes the file's base name.
func ParseFile(path string) (*TestSuite, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	suite, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	if suite.Name == "" {
		suite.Name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}
	suite.Path = path
	return suite, nil
}

// Parse decodes a suite from YAML bytes and validates it: every case needs a
// name and a program, and the error field only knows the two failure classes.
func Parse(data []byte) (*TestSuite, error) {
	var suite TestSuite
	if err := yaml.Unmarshal(data, &suite); err != nil {
		return nil, err
	}

	for i := range suite.Cases {
		tc := &suite.Cases[i]
		if tc.Name == "" {
			return nil, fmt.Errorf("test %d has no name", i+1)
		}
		if tc.Program == "" {
			return nil, fmt.Errorf("test %q has no program", tc.Name)
		}
		switch tc.Error {
		case "", "parse", "runtime":
		default:
			return nil, fmt.Errorf("test %q: unknown error class %q", tc.Name, tc.Error)
		}
	}
	return &suite, nil
}
