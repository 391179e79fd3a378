package editor

// Clipboard provides editor-level clipboard integration.
//
// Errors must not crash the UI; a failed read is logged and ignored.
type Clipboard interface {
	ReadText() (string, error)
}
