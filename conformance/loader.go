package conformance

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"gopkg.in/yaml.v3"
)

// LoadAll loads every '*.yaml' file in dir, in file name order.
func LoadAll(dir string) ([]Loaded, error) {
	files, err := filepath.Glob(filepath.Join(dir, "*.yaml"))
	if err != nil {
		return nil, err
	}
	sort.Strings(files)
	var loaded []Loaded
	for _, f := range files {
		suite, err := LoadFile(f)
		if err != nil {
			return nil, err
		}
		for _, c := range suite.Tests {
			loaded = append(loaded, Loaded{
				File:  filepath.Base(f),
				Suite: suite.Name,
				Case:  c,
			})
		}
	}
	tracer().Infof("loaded %d test cases from %d files", len(loaded), len(files))
	return loaded, nil
}

// LoadFile parses a single suite. Unknown keys are errors.
func LoadFile(path string) (*Suite, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)
	suite := &Suite{}
	if err := dec.Decode(suite); err != nil {
		return nil, fmt.Errorf("%s: %w", filepath.Base(path), err)
	}
	if suite.Name == "" {
		suite.Name = filepath.Base(path)
	}
	for i, c := range suite.Tests {
		if c.Name == "" {
			return nil, fmt.Errorf("%s: test #%d has no name", filepath.Base(path), i+1)
		}
	}
	return suite, nil
}
