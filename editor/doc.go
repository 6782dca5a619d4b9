// Package editor provides a Bubble Tea text editor component backed by the
// buffer package.
//
// The package is responsible for input handling, viewport behavior,
// grapheme-aware rendering, and the extension surface used by behaviors such
// as autobold: a shared Handle per Model that answers cursor, token, and line
// queries, applies range replacements, and delivers key-down/key-up events.
package editor
