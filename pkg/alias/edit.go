package alias

import "fmt"

// Edit is a primitive text change on byte offsets. A deletion has an empty
// Text, an insertion has Start == End.
type Edit struct {
	Start int
	End   int
	Text  string
}

// Unquote strips one pair of surrounding quote characters. Values shorter
// than two bytes are returned untouched.
func Unquote(value string) string {
	if len(value) > 1 && (value[0] == '\'' || value[0] == '"') {
		return value[1 : len(value)-1]
	}
	return value
}

// BuildEdit returns the edits replacing the interior of a quoted specifier
// that starts at start (the opening quote) and has innerLength bytes between
// the quotes. The result is a deletion followed by an insertion at the same
// offset; the quotes are never touched.
func BuildEdit(start, innerLength int, canonical string) []Edit {
	at := start + 1
	return []Edit{
		{Start: at, End: at + innerLength},
		{Start: at, End: at, Text: canonical},
	}
}

// Message is the failure text for an import that should use canonical.
func Message(canonical string) string {
	return fmt.Sprintf("Should be imported using `%s`", canonical)
}
