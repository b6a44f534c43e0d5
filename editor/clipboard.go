package editor

// Clipboard is where copy and cut put text and paste reads it from.
// TextBox logs clipboard failures at warn level and carries on.
type Clipboard interface {
	ReadText() (string, error)
	WriteText(s string) error
}
