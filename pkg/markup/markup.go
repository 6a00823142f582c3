// Package markup walks help documents written in an XML-like markup and
// drives a style.Style with the start and end events of each tag.
//
// Supported tags:
//
//	<p>           paragraph
//	<b> <strong>  bold (decoration written into the text)
//	<u>           underline
//	<em>          italics
//	<code>        code span (translated text)
//	<a>           link (translated text)
//	<i>           italic span, requires a style with the italic capability
//	<ul> <ol>     list, nested lists indent their items one level
//	<li>          list item
//	<h2>          section heading
//	<examples>    example block, its text is dropped
//	<br>          line break
//
// Unknown tags are transparent: their content is rendered as if the tag
// were absent.
package markup

import (
	"regexp"
	"strings"

	"github.com/arthur-debert/helpdoc/pkg/document"
	"github.com/arthur-debert/helpdoc/pkg/errors"
	"github.com/arthur-debert/helpdoc/pkg/logging"
	"github.com/arthur-debert/helpdoc/pkg/style"
	"github.com/beevik/etree"
	"github.com/rs/zerolog"
)

const rootTag = "helpdoc"

var xmlDecl = regexp.MustCompile(`^\s*<\?xml[^>]*\?>`)

// Walker feeds markup into a style and its document
type Walker struct {
	style  style.Style
	doc    *document.Document
	logger zerolog.Logger
	lists  int
}

// NewWalker creates a walker driving s
func NewWalker(s style.Style) *Walker {
	return &Walker{
		style:  s,
		doc:    s.Document(),
		logger: logging.GetLogger("markup"),
	}
}

// Feed parses input and replays it against the style. Input may be a
// fragment without a single root element.
func (w *Walker) Feed(input string) error {
	root, err := parse(input)
	if err != nil {
		return err
	}
	return w.children(root)
}

func parse(input string) (*etree.Element, error) {
	body := xmlDecl.ReplaceAllString(input, "")

	doc := etree.NewDocument()
	doc.ReadSettings.Entity = entities
	if err := doc.ReadFromString("<" + rootTag + ">" + body + "</" + rootTag + ">"); err != nil {
		return nil, errors.Wrap(err, errors.ErrParse, "failed to parse help markup")
	}
	return doc.Root(), nil
}

// entities covers the HTML entities help sources commonly carry
var entities = map[string]string{
	"nbsp":   " ",
	"mdash":  "—",
	"ndash":  "–",
	"hellip": "…",
}

func (w *Walker) children(el *etree.Element) error {
	for _, tok := range el.Child {
		switch t := tok.(type) {
		case *etree.Element:
			if err := w.element(t); err != nil {
				return err
			}
		case *etree.CharData:
			w.text(t.Data)
		}
	}
	return nil
}

func (w *Walker) element(el *etree.Element) error {
	attrs := attributes(el)

	switch strings.ToLower(el.Tag) {
	case "p":
		w.style.StartP(attrs)
		if err := w.children(el); err != nil {
			return err
		}
		w.style.EndP()
	case "b", "bold", "strong":
		return w.decorate(el, w.style.StartBold(attrs), w.style.EndBold)
	case "u", "underline":
		return w.decorate(el, w.style.StartUnderline(attrs), w.style.EndUnderline)
	case "em", "italics":
		return w.decorate(el, w.style.StartItalics(attrs), w.style.EndItalics)
	case "code":
		w.style.StartCode(attrs)
		if err := w.children(el); err != nil {
			return err
		}
		w.style.EndCode()
	case "a":
		w.style.StartA(attrs)
		if err := w.children(el); err != nil {
			return err
		}
		w.style.EndA()
	case "i":
		if err := w.style.StartI(attrs); err != nil {
			return err
		}
		if err := w.children(el); err != nil {
			return err
		}
		return w.style.EndI()
	case "ul", "ol":
		// only nested lists are indented
		if w.lists > 0 {
			w.doc.Indent()
			defer w.doc.Dedent()
		}
		w.lists++
		err := w.children(el)
		w.lists--
		if err != nil {
			return err
		}
		w.doc.AddParagraph()
	case "li":
		w.style.StartLi(attrs)
		if err := w.children(el); err != nil {
			return err
		}
		w.style.EndLi()
	case "h2":
		w.doc.AddParagraph()
		w.doc.Write(w.style.H2(collapseSpace(strings.TrimSpace(textOf(el)))))
		w.doc.AddParagraph()
	case "examples":
		w.style.StartExamples(attrs)
		if err := w.children(el); err != nil {
			return err
		}
		w.style.EndExamples()
	case "br":
		w.doc.Write("\n")
	default:
		w.logger.Debug().Str("tag", el.Tag).Msg("Unknown tag, rendering content only")
		return w.children(el)
	}
	return nil
}

func (w *Walker) decorate(el *etree.Element, start string, end func() string) error {
	w.doc.Write(start)
	if err := w.children(el); err != nil {
		return err
	}
	w.doc.Write(end())
	return nil
}

// text collapses whitespace like HTML does and drops a leading space at
// the start of a line
func (w *Walker) text(data string) {
	text := collapseSpace(data)
	if text == "" {
		return
	}
	if strings.HasPrefix(text, " ") {
		current := w.doc.CurrentParagraph().String()
		if current == "" || strings.HasSuffix(current, " ") || strings.HasSuffix(current, "\n") {
			text = text[1:]
		}
	}
	w.doc.HandleData(text)
}

func attributes(el *etree.Element) style.Attrs {
	if len(el.Attr) == 0 {
		return nil
	}
	attrs := make(style.Attrs, len(el.Attr))
	for _, a := range el.Attr {
		attrs[a.Key] = a.Value
	}
	return attrs
}

func textOf(el *etree.Element) string {
	var b strings.Builder
	for _, tok := range el.Child {
		switch t := tok.(type) {
		case *etree.Element:
			b.WriteString(textOf(t))
		case *etree.CharData:
			b.WriteString(t.Data)
		}
	}
	return b.String()
}

var spaceRun = regexp.MustCompile(`\s+`)

func collapseSpace(s string) string {
	return spaceRun.ReplaceAllString(s, " ")
}

// Render parses input with a walker over s and lays the document out for
// the given terminal width
func Render(input string, s style.Style, width int) (string, error) {
	w := NewWalker(s)
	if err := w.Feed(input); err != nil {
		return "", err
	}
	return s.Document().Render(width, s.Options().IndentWidth), nil
}
