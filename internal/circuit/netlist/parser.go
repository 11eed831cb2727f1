// Package netlist parses the line-oriented netlist format used by the
// circuitctl CLI:
//
//	# 6V battery across two resistors in series
//	V1 p n 6.0
//	R1 p m 3.0
//	R2 m n 3.0
//	S1 a b closed
//
// The leading letter of the component name selects the kind: V or B for
// a source, R for a resistor, L for a lamp, W for a wire, S for a
// switch. This is an input format only; circuits are never written back
// out.
package netlist

import (
	"fmt"
	"io"
	"os"

	"github.com/alecthomas/participle/v2"
)

// File is the parsed form of a netlist file.
type File struct {
	Statements []*Statement `parser:"( @@ | EOL )*"`
}

// Statement is one component line. Value carries the EMF or resistance
// for sources, resistors and lamps; State carries open/closed for
// switches.
type Statement struct {
	ID    string   `parser:"@Ident"`
	From  string   `parser:"@Ident"`
	To    string   `parser:"@Ident"`
	Value *float64 `parser:"( @Number"`
	State *string  `parser:"  | @Ident )? ( EOL | EOF )"`
}

// Parser parses netlist files.
type Parser struct {
	parser *participle.Parser[File]
}

// NewParser builds the netlist grammar.
func NewParser() (*Parser, error) {
	parser, err := participle.Build[File](
		participle.Lexer(Lexer),
		participle.Elide("Comment", "Whitespace"),
	)
	if err != nil {
		return nil, fmt.Errorf("netlist: build parser: %w", err)
	}
	return &Parser{parser: parser}, nil
}

// Parse parses a netlist from a reader.
func (p *Parser) Parse(r io.Reader) (*File, error) {
	file, err := p.parser.Parse("", r)
	if err != nil {
		return nil, fmt.Errorf("netlist: parse: %w", err)
	}
	return file, nil
}

// ParseString parses a netlist from a string.
func (p *Parser) ParseString(input string) (*File, error) {
	file, err := p.parser.ParseString("", input)
	if err != nil {
		return nil, fmt.Errorf("netlist: parse: %w", err)
	}
	return file, nil
}

// ParseFile parses a netlist from a file path.
func (p *Parser) ParseFile(filename string) (*File, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("netlist: open %s: %w", filename, err)
	}
	defer f.Close()
	return p.Parse(f)
}
