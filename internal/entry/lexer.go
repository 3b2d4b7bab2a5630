package entry

import (
	"github.com/alecthomas/participle/v2/lexer"
)

// entryLexer splits an entry into its four fields. Every state accepts any
// character, so tokenizing never fails and field validation is left to
// Parse, which reports it in the entry's own terms.
var entryLexer = lexer.MustStateful(lexer.Rules{
	"Root": {
		{Name: "Hash", Pattern: `#`, Action: lexer.Push("Color")},
		{Name: "Value", Pattern: `[^#]+`},
	},
	"Color": {
		{Name: "Sep", Pattern: `:`, Action: lexer.Push("Explode")},
		{Name: "Hex", Pattern: `[^:]+`},
	},
	"Explode": {
		{Name: "Sep", Pattern: `:`, Action: lexer.Push("Label")},
		{Name: "Number", Pattern: `[^:]+`},
	},
	// The label is the rest of the entry, colons included.
	"Label": {
		{Name: "Text", Pattern: `[\s\S]+`},
	},
})
