package replyparser

import "regexp"

// Limits applied to candidate quote header paragraphs.
const (
	// DefaultMaxParagraphLines is the largest paragraph, in lines, that
	// can still be classified as a quote header.
	DefaultMaxParagraphLines = 6
	// DefaultMaxNumCharsEachLine is the longest line a quote header
	// paragraph may contain.
	DefaultMaxNumCharsEachLine = 200
)

var (
	// sigPattern matches signature openers: "Sent from my <device>" with
	// one to three device words, or a line starting with a dash-word,
	// "__", "--", or an en/em dash, optionally after a single space.
	sigPattern = regexp.MustCompile(`(^Sent from my (\s*\w+){1,3}$)|(^-\w|^\s?__|^\s?--|^\x{2013}|^\x{2014})`)

	// quoteMarkerPattern matches lines opening with '>' markers. Leading
	// whitespace is preserved by the scan, so indented quotes do not
	// count.
	quoteMarkerPattern = regexp.MustCompile(`^>+`)
)

// defaultQuoteHeaderPatterns are the built-in quote header patterns,
// tried in order before any caller-supplied ones. All run in
// multi-line, dot-all mode: clients break headers across lines, and
// the paragraph under test is a newline join.
var defaultQuoteHeaderPatterns = []*regexp.Regexp{
	// "On <date, author> wrote:", possibly spanning lines.
	regexp.MustCompile(`(?ms)^(On\s(.{1,500})wrote:)`),
	// Forwarded-style header block: From, To and Subject lines with up
	// to two extra lines (Date, Cc, ...) between each.
	regexp.MustCompile(`(?ms)From:[^\n]+\n?([^\n]+\n?){0,2}To:[^\n]+\n?([^\n]+\n?){0,2}Subject:[^\n]+`),
	// Same block with To before From.
	regexp.MustCompile(`(?ms)To:[^\n]+\n?([^\n]+\n?){0,2}From:[^\n]+\n?([^\n]+\n?){0,2}Subject:[^\n]+`),
}

// isSignature reports whether line opens a signature block.
func isSignature(line string) bool {
	return sigPattern.MatchString(line)
}

// isQuoteMarker reports whether line begins with one or more '>'.
func isQuoteMarker(line string) bool {
	return quoteMarkerPattern.MatchString(line)
}
