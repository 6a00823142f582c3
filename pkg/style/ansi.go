package style

import (
	"github.com/arthur-debert/helpdoc/pkg/document"
	"github.com/muesli/termenv"
)

// SGR sequences emitted by ANSIStyle
const (
	SeqBold      = termenv.CSI + termenv.BoldSeq + "m"
	SeqUnderline = termenv.CSI + termenv.UnderlineSeq + "m"
	SeqItalics   = termenv.CSI + termenv.ItalicSeq + "m"
	SeqReset     = termenv.CSI + termenv.ResetSeq + "m"
)

// bulletPrefix is written at the start of every list item paragraph
const bulletPrefix = "  * "

// ANSIStyle decorates help text for an interactive terminal
type ANSIStyle struct {
	*BaseStyle
}

// NewANSIStyle creates a terminal style writing into doc. Escape sequences
// are only produced when opts.DoANSI is set.
func NewANSIStyle(doc *document.Document, opts Options) *ANSIStyle {
	s := &ANSIStyle{BaseStyle: newBaseStyle(doc, opts)}
	s.self = s
	return s
}

func (s *ANSIStyle) sgr(seq string) string {
	if !s.opts.DoANSI {
		return ""
	}
	return seq
}

// Decorations are SGR sequences, empty unless DoANSI is set.
func (s *ANSIStyle) StartBold(attrs Attrs) string      { return s.sgr(SeqBold) }
func (s *ANSIStyle) EndBold() string                   { return s.sgr(SeqReset) }
func (s *ANSIStyle) StartUnderline(attrs Attrs) string { return s.sgr(SeqUnderline) }
func (s *ANSIStyle) EndUnderline() string              { return s.sgr(SeqReset) }
func (s *ANSIStyle) StartItalics(attrs Attrs) string   { return s.sgr(SeqItalics) }
func (s *ANSIStyle) EndItalics() string                { return s.sgr(SeqReset) }

// StartLi opens a bulleted paragraph whose continuation lines hang one
// level deeper than the bullet
func (s *ANSIStyle) StartLi(attrs Attrs) {
	para := s.doc.AddParagraph()
	para.SubsequentIndent = para.InitialIndent + 1
	s.doc.Write(bulletPrefix)
}

// EndLi does nothing; the next paragraph ends the item
func (s *ANSIStyle) EndLi() {}

// H2 puts a blank line above the current paragraph and bolds the heading
func (s *ANSIStyle) H2(text string) string {
	para := s.doc.CurrentParagraph()
	para.LinesBefore = 1
	return s.Bold(text)
}

// EndP leaves two blank lines after the current paragraph
func (s *ANSIStyle) EndP() {
	para := s.doc.CurrentParagraph()
	para.LinesAfter = 2
}
