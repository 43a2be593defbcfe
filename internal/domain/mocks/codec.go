// Package mocks contains hand-rolled mock implementations of the domain ports.
package mocks

// Codec is a mock implementation of ports.Codec.
type Codec struct {
	Err          error
	PrettyResult string
	MinifyResult string

	CheckedText string
	IndentWidth int
}

// Check reports whether text is syntactically valid JSON.
func (m *Codec) Check(text string) error {
	m.CheckedText = text
	return m.Err
}

// Pretty returns text reindented with indentWidth spaces per level.
func (m *Codec) Pretty(text string, indentWidth int) (string, error) {
	if m.Err != nil {
		return "", m.Err
	}
	m.IndentWidth = indentWidth
	if m.PrettyResult != "" {
		return m.PrettyResult, nil
	}
	return text, nil
}

// Minify returns text with all insignificant whitespace removed.
func (m *Codec) Minify(text string) (string, error) {
	if m.Err != nil {
		return "", m.Err
	}
	if m.MinifyResult != "" {
		return m.MinifyResult, nil
	}
	return text, nil
}
