package tui

import "github.com/atotto/clipboard"

// Clipboard receives copied output
type Clipboard interface {
	WriteAll(text string) error
}

// SystemClipboard writes to the operating system clipboard
type SystemClipboard struct{}

func (SystemClipboard) WriteAll(text string) error {
	return clipboard.WriteAll(text)
}
