// Package ports defines the interfaces between the domain and infrastructure.
package ports

// Codec abstracts the underlying JSON engine. The domain trusts it as a
// black box: Check either accepts the text or returns a
// *entities.SyntaxError carrying the engine's message and, when the engine
// reports one, the offending byte offset as structured data. Pretty and
// Minify reserialize the raw text, preserving object key order and numeric
// literals exactly.
type Codec interface {
	// Check reports whether text is syntactically valid JSON.
	Check(text string) error

	// Pretty returns text reindented with indentWidth spaces per level.
	Pretty(text string, indentWidth int) (string, error)

	// Minify returns text with all insignificant whitespace removed.
	Minify(text string) (string, error)
}
