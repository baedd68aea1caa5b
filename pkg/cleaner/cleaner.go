// Package cleaner provides interfaces and implementations for stripping
// formatting from a text selection. Cleaners remove HTML tags or reduce
// Markdown to the text a reader would see.
package cleaner

// Cleaner transforms text into a cleaner form.
type Cleaner interface {
	// Clean transforms the input text.
	// The output format depends on the implementation (tag-free text, plain text, etc.).
	Clean(text string) (string, error)

	// Name returns the cleaner type for logging/debugging.
	Name() string
}
