package style

import (
	"strings"

	"github.com/arthur-debert/helpdoc/pkg/document"
	"github.com/arthur-debert/helpdoc/pkg/errors"
)

// BaseStyle renders help markup as plain text
type BaseStyle struct {
	// KeepData mirrors whether parsed text should be retained; the
	// examples operations act on the document's flag.
	KeepData bool

	doc  *document.Document
	opts Options
	// self is the outermost variant, so the composition helpers and the
	// structural operations reach overridden decorations.
	self Style
}

// NewBaseStyle creates a plain text style writing into doc
func NewBaseStyle(doc *document.Document, opts Options) *BaseStyle {
	s := newBaseStyle(doc, opts)
	s.self = s
	return s
}

func newBaseStyle(doc *document.Document, opts Options) *BaseStyle {
	if opts.IndentWidth == 0 {
		opts.IndentWidth = DefaultIndentWidth
	}
	return &BaseStyle{
		KeepData: true,
		doc:      doc,
		opts:     opts,
	}
}

// SetVariant makes inherited operations dispatch to v. Types that embed
// BaseStyle or ANSIStyle call it with themselves after construction.
func (s *BaseStyle) SetVariant(v Style) {
	s.self = v
}

// Document returns the document the style writes into
func (s *BaseStyle) Document() *document.Document { return s.doc }

// Options returns the options the style was built with
func (s *BaseStyle) Options() Options { return s.opts }

// Spaces returns indent*IndentWidth spaces
func (s *BaseStyle) Spaces(indent int) string {
	if indent <= 0 || s.opts.IndentWidth <= 0 {
		return ""
	}
	return strings.Repeat(" ", indent*s.opts.IndentWidth)
}

// Decorations are empty in plain text. Attributes are ignored.
func (s *BaseStyle) StartBold(attrs Attrs) string      { return "" }
func (s *BaseStyle) EndBold() string                   { return "" }
func (s *BaseStyle) StartUnderline(attrs Attrs) string { return "" }
func (s *BaseStyle) EndUnderline() string              { return "" }
func (s *BaseStyle) StartItalics(attrs Attrs) string   { return "" }
func (s *BaseStyle) EndItalics() string                { return "" }

// Bold wraps text in the active variant's bold sequences
func (s *BaseStyle) Bold(text string) string {
	return s.self.StartBold(nil) + text + s.self.EndBold()
}

// Underline wraps text in the active variant's underline sequences
func (s *BaseStyle) Underline(text string) string {
	return s.self.StartUnderline(nil) + text + s.self.EndUnderline()
}

// Italics wraps text in the active variant's italics sequences
func (s *BaseStyle) Italics(text string) string {
	return s.self.StartItalics(nil) + text + s.self.EndItalics()
}

// H2 renders a second level heading
func (s *BaseStyle) H2(text string) string {
	return s.self.Bold(text)
}

// StartP begins a new paragraph
func (s *BaseStyle) StartP(attrs Attrs) {
	s.doc.AddParagraph()
}

// EndP does nothing; paragraphs are only opened
func (s *BaseStyle) EndP() {}

// StartCode turns translation on for a code span. The bold sequence is
// computed but not emitted.
func (s *BaseStyle) StartCode(attrs Attrs) {
	s.doc.DoTranslation = true
	s.self.StartBold(attrs)
}

// EndCode turns translation back off
func (s *BaseStyle) EndCode() {
	s.doc.DoTranslation = false
	s.self.EndBold()
}

// StartA turns translation on for a link. The underline sequence is
// computed but not emitted.
func (s *BaseStyle) StartA(attrs Attrs) {
	s.doc.DoTranslation = true
	s.self.StartUnderline(nil)
}

// EndA turns translation back off
func (s *BaseStyle) EndA() {
	s.doc.DoTranslation = false
	s.self.EndUnderline()
}

// StartI turns translation on and delegates to the ItalicStyler capability.
// It fails with ErrUndefinedOperation when the active variant lacks it; the
// translation flag is left set in that case.
func (s *BaseStyle) StartI(attrs Attrs) error {
	s.doc.DoTranslation = true
	it, ok := s.self.(ItalicStyler)
	if !ok {
		return errors.Newf(errors.ErrUndefinedOperation, "%T has no StartItalic operation", s.self).
			WithDetail("tag", "i")
	}
	it.StartItalic(attrs)
	return nil
}

// EndI mirrors StartI
func (s *BaseStyle) EndI() error {
	s.doc.DoTranslation = false
	it, ok := s.self.(ItalicStyler)
	if !ok {
		return errors.Newf(errors.ErrUndefinedOperation, "%T has no EndItalic operation", s.self).
			WithDetail("tag", "i")
	}
	it.EndItalic()
	return nil
}

// List items have no plain text layout of their own.
func (s *BaseStyle) StartLi(attrs Attrs) {}
func (s *BaseStyle) EndLi()              {}

// StartExamples stops the document from capturing text
func (s *BaseStyle) StartExamples(attrs Attrs) {
	s.doc.KeepData = false
}

// EndExamples resumes text capture
func (s *BaseStyle) EndExamples() {
	s.doc.KeepData = true
}
