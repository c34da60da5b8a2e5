package replyparser

import (
	"strings"
	"unicode"
)

// Fragment is a maximal run of consecutive lines sharing one quoting
// classification. Fragments are immutable once parsed.
type Fragment struct {
	content   string
	hidden    bool
	signature bool
	quoted    bool
}

// Content returns the fragment text in natural top-to-bottom line
// order, each line stripped of trailing whitespace.
func (f *Fragment) Content() string {
	return f.content
}

// IsHidden reports whether the fragment is excluded from VisibleText.
// It holds exactly when the fragment is quoted, a signature, or blank.
func (f *Fragment) IsHidden() bool {
	return f.hidden
}

// IsSignature reports whether the fragment is a trailing signature.
func (f *Fragment) IsSignature() bool {
	return f.signature
}

// IsQuoted reports whether the fragment is quoted prior-message text.
func (f *Fragment) IsQuoted() bool {
	return f.quoted
}

// Email is a parsed body: the ordered fragment sequence covering the
// whole input top to bottom, with no gaps or overlaps.
type Email struct {
	fragments []*Fragment
}

// newEmail restores document order: the scan emits fragments bottom-up,
// each with its lines in reverse.
func newEmail(scanned []*fragment) *Email {
	fragments := make([]*Fragment, 0, len(scanned))
	for i := len(scanned) - 1; i >= 0; i-- {
		f := scanned[i]
		fragments = append(fragments, &Fragment{
			content:   joinReversed(f.lines),
			hidden:    f.hidden,
			signature: f.signature,
			quoted:    f.quoted,
		})
	}
	return &Email{fragments: fragments}
}

// Fragments returns the fragments in document order.
func (e *Email) Fragments() []*Fragment {
	return e.fragments
}

// VisibleText returns the newly authored reply: every non-hidden
// fragment joined by a newline, trailing whitespace trimmed.
func (e *Email) VisibleText() string {
	return e.join(false)
}

// HiddenText returns the complementary view: quoted material,
// signatures and blank fragments.
func (e *Email) HiddenText() string {
	return e.join(true)
}

func (e *Email) join(hidden bool) string {
	parts := make([]string, 0, len(e.fragments))
	for _, f := range e.fragments {
		if f.hidden == hidden {
			parts = append(parts, f.content)
		}
	}
	return strings.TrimRightFunc(strings.Join(parts, "\n"), unicode.IsSpace)
}
