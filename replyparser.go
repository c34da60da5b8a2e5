// Package replyparser extracts the visible reply from a plain-text
// email body, separating it from quoted prior messages, quote header
// lines ("On ... wrote:", From/To/Subject blocks) and trailing
// signatures.
//
// The body is split into fragments: maximal runs of consecutive lines
// sharing one quoting classification. Quoted fragments, signature
// fragments and blank fragments are hidden; everything else is the
// newly authored reply.
//
//	email := replyparser.Read(body)
//	reply := email.VisibleText()
//
// Parsing already-decoded plain text is the whole scope: HTML bodies,
// MIME structure and character encodings are the caller's problem.
package replyparser

// defaultParser backs Read and ParseReply. DefaultConfig always
// compiles, so construction cannot fail.
var defaultParser = func() *Parser {
	p, err := New(DefaultConfig())
	if err != nil {
		panic(err)
	}
	return p
}()

// Read parses text with the default configuration. The empty string
// yields an Email with no fragments.
func Read(text string) *Email {
	return defaultParser.Parse(text)
}

// ParseReply returns the visible reply of text. It is shorthand for
// Read(text).VisibleText().
func ParseReply(text string) string {
	return Read(text).VisibleText()
}
