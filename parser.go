package replyparser

import (
	"regexp"
	"strings"
	"unicode"
)

// Parser splits plain-text email bodies into fragments. A Parser is
// immutable after New and safe for concurrent use; every Parse call
// owns its scan state.
type Parser struct {
	quoteHeaderPatterns []*regexp.Regexp
	maxParagraphLines   int
	maxNumCharsEachLine int
}

// New compiles cfg into a Parser. A caller-supplied quote header
// pattern that does not compile is reported as a *PatternError; the
// built-in patterns and limits cannot fail.
func New(cfg Config) (*Parser, error) {
	patterns := make([]*regexp.Regexp, 0, len(defaultQuoteHeaderPatterns)+len(cfg.QuoteHeaders))
	patterns = append(patterns, defaultQuoteHeaderPatterns...)
	for _, expr := range cfg.QuoteHeaders {
		re, err := regexp.Compile(`(?ms)` + expr)
		if err != nil {
			return nil, &PatternError{Expr: expr, Err: err}
		}
		patterns = append(patterns, re)
	}

	p := &Parser{
		quoteHeaderPatterns: patterns,
		maxParagraphLines:   cfg.MaxParagraphLines,
		maxNumCharsEachLine: cfg.MaxNumCharsEachLine,
	}
	if p.maxParagraphLines <= 0 {
		p.maxParagraphLines = DefaultMaxParagraphLines
	}
	if p.maxNumCharsEachLine <= 0 {
		p.maxNumCharsEachLine = DefaultMaxNumCharsEachLine
	}
	return p, nil
}

// MaxParagraphLines returns the paragraph size limit used when testing
// for quote headers.
func (p *Parser) MaxParagraphLines() int {
	return p.maxParagraphLines
}

// MaxNumCharsEachLine returns the line length limit used when testing
// for quote headers.
func (p *Parser) MaxNumCharsEachLine() int {
	return p.maxNumCharsEachLine
}

// fragment accumulates lines in reverse scan order during a parse.
type fragment struct {
	lines     []string
	quoted    bool
	signature bool
	hidden    bool
}

// blank reports whether every accumulated line is empty.
func (f *fragment) blank() bool {
	for _, line := range f.lines {
		if line != "" {
			return false
		}
	}
	return true
}

// Parse splits text into fragments and never fails: any input,
// including empty or pathological text, produces a well-formed Email.
//
// The scan runs from the last line to the first. Signature markers and
// quote headers annotate the content above them in document order, so
// in reverse order they arrive first and close out the fragment built
// so far without unbounded lookahead.
func (p *Parser) Parse(text string) *Email {
	text = strings.ReplaceAll(text, "\r\n", "\n")

	lines := strings.Split(text, "\n")
	// Trailing blank lines carry nothing; dropping them is also what
	// makes the empty input produce zero fragments.
	for len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}

	var (
		cur *fragment
		// paragraph collects the non-empty lines seen since the last
		// blank line, still in reverse order. Some clients split quote
		// headers across lines; the paragraph is what the header
		// patterns are tested against.
		paragraph []string
		done      []*fragment
	)

	for i := len(lines) - 1; i >= 0; i-- {
		line := strings.TrimRightFunc(lines[i], unicode.IsSpace)

		// A blank line ends a paragraph. If the fragment's most recently
		// added line opened a signature, or the finished paragraph is a
		// quote header, the fragment is complete.
		if cur != nil && line == "" {
			last := cur.lines[len(cur.lines)-1]
			switch {
			case isSignature(last):
				cur.signature = true
				done = emit(done, cur)
				cur = nil
			case p.isQuoteHeaderParagraph(paragraph):
				cur.quoted = true
				done = emit(done, cur)
				cur = nil
			}
			paragraph = paragraph[:0]
		}

		quoted := isQuoteMarker(line)

		if cur == nil || !p.continuesFragment(cur, line, quoted) {
			if cur != nil {
				done = emit(done, cur)
			}
			cur = &fragment{quoted: quoted}
		}

		cur.lines = append(cur.lines, line)
		if line != "" {
			paragraph = append(paragraph, line)
		}
	}
	if cur != nil {
		done = emit(done, cur)
	}

	return newEmail(done)
}

// continuesFragment reports whether line belongs to cur. A reply header
// line counts as part of a quoted fragment even though it doesn't
// start with '>'.
func (p *Parser) continuesFragment(cur *fragment, line string, quoted bool) bool {
	return cur.quoted == quoted ||
		(cur.quoted && (line == "" || p.isQuoteHeaderParagraph([]string{line})))
}

// isQuoteHeaderParagraph reports whether the paragraph, given in
// reverse scan order, is a quote header. Paragraphs over the configured
// line count, or containing a line over the configured length, never
// qualify.
func (p *Parser) isQuoteHeaderParagraph(paragraph []string) bool {
	if len(paragraph) > p.maxParagraphLines {
		return false
	}
	for _, line := range paragraph {
		if len(line) > p.maxNumCharsEachLine {
			return false
		}
	}
	content := joinReversed(paragraph)
	for _, re := range p.quoteHeaderPatterns {
		if re.MatchString(content) {
			return true
		}
	}
	return false
}

// emit derives the hidden flag and appends the completed fragment.
// Hidden is never set independently: it holds exactly for quoted,
// signature and blank fragments.
func emit(done []*fragment, f *fragment) []*fragment {
	f.hidden = f.quoted || f.signature || f.blank()
	return append(done, f)
}

// joinReversed joins lines back into natural top-to-bottom order.
func joinReversed(lines []string) string {
	var b strings.Builder
	for i := len(lines) - 1; i >= 0; i-- {
		b.WriteString(lines[i])
		if i > 0 {
			b.WriteByte('\n')
		}
	}
	return b.String()
}
