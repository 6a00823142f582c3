// Package style turns help markup tags into text decoration and paragraph
// layout.
//
// Two variants share the Style interface: BaseStyle renders plain text and
// ANSIStyle emits SGR escape sequences when Options.DoANSI is set. Both
// write layout metadata into an injected document.Document. The variant is
// chosen once, by New, and stays fixed for the life of the instance.
//
// Every start operation accepts the tag attributes of the markup element;
// neither variant reads them, and nil is always valid.
package style

import (
	"github.com/arthur-debert/helpdoc/pkg/document"
)

// DefaultIndentWidth is the number of spaces per indentation level
const DefaultIndentWidth = 4

// Attrs are the attributes of a markup element
type Attrs map[string]string

// Options configures a style instance
type Options struct {
	// IndentWidth is the number of spaces per indentation level.
	// Zero selects DefaultIndentWidth.
	IndentWidth int
	// DoANSI enables terminal escape sequences in ANSIStyle
	DoANSI bool
	// Extra holds options no built-in variant reads
	Extra map[string]any
}

// Style is the operation table a markup walker drives
type Style interface {
	Spaces(indent int) string

	StartBold(attrs Attrs) string
	EndBold() string
	StartUnderline(attrs Attrs) string
	EndUnderline() string
	StartItalics(attrs Attrs) string
	EndItalics() string

	Bold(s string) string
	Underline(s string) string
	Italics(s string) string
	H2(s string) string

	StartP(attrs Attrs)
	EndP()
	StartCode(attrs Attrs)
	EndCode()
	StartA(attrs Attrs)
	EndA()
	StartI(attrs Attrs) error
	EndI() error
	StartLi(attrs Attrs)
	EndLi()
	StartExamples(attrs Attrs)
	EndExamples()

	Document() *document.Document
	Options() Options
}

// ItalicStyler is the singular italic capability that StartI and EndI
// delegate to. Neither built-in variant provides it.
type ItalicStyler interface {
	StartItalic(attrs Attrs) string
	EndItalic() string
}

// New returns an ANSIStyle when opts.DoANSI is set and a BaseStyle otherwise
func New(doc *document.Document, opts Options) Style {
	if opts.DoANSI {
		return NewANSIStyle(doc, opts)
	}
	return NewBaseStyle(doc, opts)
}
