// SPDX-License-Identifier: MIT

package commands

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// ErrInput is wrapped by every malformed-input failure.
var ErrInput = errors.New("invalid input")

// Entries is one matrix of an input file: rows of element literals parsed by
// the domain ("3", "1/3", "2.5e-3", "2+1i"). Set distinguishes an absent (or
// null) key from an explicit empty matrix.
type Entries struct {
	Set  bool
	Rows [][]string
}

// UnmarshalYAML records presence and decodes the rows. Numbers are read as
// their literal text, so `[[1, 2]]` and `[["1", "2"]]` are equivalent.
func (e *Entries) UnmarshalYAML(node *yaml.Node) error {
	e.Set = true
	if node.Kind != yaml.SequenceNode {
		return fmt.Errorf("line %d: matrix must be a list of rows: %w", node.Line, ErrInput)
	}
	for _, row := range node.Content {
		if row.Kind != yaml.SequenceNode {
			return fmt.Errorf("line %d: row must be a list of entries: %w", row.Line, ErrInput)
		}
	}

	return node.Decode(&e.Rows)
}

// Input is the document read by every matrix command.
//
//	domain: qq        # optional, overrides the configured domain
//	prime: 101        # zzp / gf only
//	a: [[1, 2], [3, 4]]
//	b: [[5], [6]]     # optional second operand
//	c: [[0]]          # optional accumulator of addmul
type Input struct {
	Domain string  `yaml:"domain"`
	Prime  string  `yaml:"prime"`
	A      Entries `yaml:"a"`
	B      Entries `yaml:"b"`
	C      Entries `yaml:"c"`
}

// ReadInput decodes one Input document; unknown keys are rejected.
func ReadInput(r io.Reader) (*Input, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var in Input
	if err := dec.Decode(&in); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("empty document: %w", ErrInput)
		}
		return nil, fmt.Errorf("decode: %w: %w", ErrInput, err)
	}

	return &in, nil
}

// readInputArg reads the input named by arg; "-" is stdin.
func readInputArg(stdin io.Reader, arg string) (*Input, error) {
	if arg == "-" {
		return ReadInput(stdin)
	}
	f, err := os.Open(arg)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	in, err := ReadInput(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", arg, err)
	}

	return in, nil
}
