package netlist

import (
	"github.com/alecthomas/participle/v2/lexer"
)

// Lexer defines the lexical structure of the netlist format: one
// component per line, `#` comments, identifiers for component and node
// names, plain decimal values.
var Lexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Comment", Pattern: `#[^\n]*`},
	{Name: "EOL", Pattern: `\r?\n`},
	{Name: "Whitespace", Pattern: `[ \t]+`},
	{Name: "Number", Pattern: `[-+]?[0-9]*\.?[0-9]+([eE][-+]?[0-9]+)?`},
	{Name: "Ident", Pattern: `[a-zA-Z][a-zA-Z0-9_]*`},
})
