package replyparser

import "fmt"

// Config controls quote header detection. The zero value of either
// limit means "use the default".
type Config struct {
	// QuoteHeaders holds additional quote header patterns. They are
	// compiled in multi-line, dot-all mode and tried after the built-in
	// patterns, in the order given; the first match wins.
	QuoteHeaders []string
	// MaxParagraphLines caps the paragraph size considered for quote
	// headers. Longer paragraphs are never classified as headers.
	MaxParagraphLines int
	// MaxNumCharsEachLine caps line length inside a candidate paragraph.
	// A paragraph containing a longer line is never a header.
	MaxNumCharsEachLine int
}

// DefaultConfig returns the configuration used by Read and ParseReply.
func DefaultConfig() Config {
	return Config{
		MaxParagraphLines:   DefaultMaxParagraphLines,
		MaxNumCharsEachLine: DefaultMaxNumCharsEachLine,
	}
}

// PatternError reports a caller-supplied quote header pattern that
// failed to compile. New returns it directly, so callers can match it
// with errors.As.
type PatternError struct {
	// Expr is the pattern as supplied, without the implicit flags.
	Expr string
	// Err is the underlying regexp compilation error.
	Err error
}

// Error implements the error interface.
func (e *PatternError) Error() string {
	return fmt.Sprintf("invalid quote header pattern %q: %v", e.Expr, e.Err)
}

// Unwrap returns the regexp compilation error.
func (e *PatternError) Unwrap() error {
	return e.Err
}
