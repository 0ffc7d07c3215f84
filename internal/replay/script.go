// Package replay runs scripted matches through the turn controller. Scripts
// are YAML documents listing square-to-square inputs and the expected result.
package replay

import (
	"bytes"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/errors"
)

// Script is a file of matches.
type Script struct {
	Matches []Match `yaml:"matches"`
}

// Match is one scripted game from the starting position.
type Match struct {
	Name   string  `yaml:"name"`
	Moves  []Move  `yaml:"moves"`
	Expect *Expect `yaml:"expect,omitempty"`
}

// Move is one select-then-target input pair, each square given as [rank, file].
type Move struct {
	From []int `yaml:"from"`
	To   []int `yaml:"to"`
}

// Expect is the result a match must end with.
type Expect struct {
	GameOver bool   `yaml:"game_over"`
	Winner   string `yaml:"winner,omitempty"`
}

// Squares returns the move's origin and target.
func (m Move) Squares() (from, to chess.Square, err error) {
	if len(m.From) != 2 || len(m.To) != 2 {
		return from, to, fmt.Errorf("move %v -> %v: squares need [rank, file]: %w", m.From, m.To, errors.ErrInvalidConfig)
	}
	return chess.Sq(m.From[0], m.From[1]), chess.Sq(m.To[0], m.To[1]), nil
}

func (m Move) String() string {
	from, to, err := m.Squares()
	if err != nil {
		return fmt.Sprintf("%v->%v", m.From, m.To)
	}
	return from.String() + "->" + to.String()
}

// LoadScript reads a script file.
func LoadScript(path string) (*Script, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "reading script %s", path)
	}
	s, err := ParseScript(data)
	if err != nil {
		return nil, errors.Wrapf(err, "script %s", path)
	}
	return s, nil
}

// ParseScript decodes a script and checks every move has two squares.
// Unknown keys are rejected.
func ParseScript(data []byte) (*Script, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	s := &Script{}
	if err := dec.Decode(s); err != nil {
		return nil, fmt.Errorf("%v: %w", err, errors.ErrInvalidConfig)
	}
	for i, m := range s.Matches {
		if m.Name == "" {
			s.Matches[i].Name = fmt.Sprintf("match %d", i+1)
		}
		for _, mv := range m.Moves {
			if _, _, err := mv.Squares(); err != nil {
				return nil, &errors.MatchError{Err: err, Match: s.Matches[i].Name, Index: i + 1}
			}
		}
		if m.Expect != nil && m.Expect.Winner != "" && m.Expect.Winner != "white" && m.Expect.Winner != "black" {
			return nil, &errors.MatchError{
				Err:   fmt.Errorf("winner %q: %w", m.Expect.Winner, errors.ErrInvalidConfig),
				Match: s.Matches[i].Name,
				Index: i + 1,
			}
		}
	}
	return s, nil
}
