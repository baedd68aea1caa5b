package cleaner

import (
	"bytes"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	extast "github.com/yuin/goldmark/extension/ast"
	"github.com/yuin/goldmark/text"
	"github.com/yuin/goldmark/util"
)

// PlainTextCleaner converts Markdown to the plain text a reader would see.
//
// Headings, emphasis, strikethrough and code span markers are removed.
// Links keep their label, images keep their alt text and raw HTML is
// dropped. Every block ends with a single newline and the result is
// trimmed, so "# Title\n*em*" becomes "Title\nem".
type PlainTextCleaner struct {
	md goldmark.Markdown
}

// NewPlainText creates a Markdown to plain text cleaner. GitHub flavoured
// extensions (tables, strikethrough, task lists, autolinks) are enabled.
func NewPlainText() *PlainTextCleaner {
	return &PlainTextCleaner{
		md: goldmark.New(goldmark.WithExtensions(extension.GFM)),
	}
}

// Clean renders markdown as plain text.
func (c *PlainTextCleaner) Clean(markdown string) (string, error) {
	source := []byte(markdown)
	doc := c.md.Parser().Parse(text.NewReader(source))

	w := &plainWriter{source: source}
	if err := ast.Walk(doc, w.walk); err != nil {
		return "", err
	}

	return strings.TrimSpace(w.buf.String()), nil
}

// Name returns the cleaner type.
func (c *PlainTextCleaner) Name() string {
	return "markdown"
}

// plainWriter accumulates visible text while walking a goldmark AST.
type plainWriter struct {
	source []byte
	buf    bytes.Buffer
}

func (w *plainWriter) walk(node ast.Node, entering bool) (ast.WalkStatus, error) {
	switch n := node.(type) {
	case *ast.Text:
		if entering {
			w.writeText(n.Segment.Value(w.source))
			if n.SoftLineBreak() || n.HardLineBreak() {
				w.buf.WriteByte('\n')
			}
		}

	case *ast.String:
		if entering {
			w.writeText(n.Value)
		}

	case *ast.CodeSpan:
		if entering {
			w.writeCodeSpan(n)
		}
		return ast.WalkSkipChildren, nil

	case *ast.AutoLink:
		if entering {
			w.buf.Write(n.Label(w.source))
		}
		return ast.WalkSkipChildren, nil

	case *ast.RawHTML, *ast.HTMLBlock, *extast.TaskCheckBox:
		return ast.WalkSkipChildren, nil

	case *ast.FencedCodeBlock, *ast.CodeBlock:
		if entering {
			lines := n.Lines()
			for i := 0; i < lines.Len(); i++ {
				seg := lines.At(i)
				w.buf.Write(seg.Value(w.source))
			}
			w.endBlock()
		}
		return ast.WalkSkipChildren, nil

	case *ast.ThematicBreak:
		if entering {
			w.endBlock()
			w.buf.WriteByte('\n')
		}

	case *extast.TableCell:
		if !entering {
			w.buf.WriteByte(' ')
		}

	case *extast.TableHeader, *extast.TableRow:
		if !entering {
			w.trimTrailingSpaces()
			w.endBlock()
		}

	case *ast.Heading, *ast.Paragraph, *ast.TextBlock:
		if !entering {
			w.endBlock()
		}
	}

	return ast.WalkContinue, nil
}

// writeText writes an inline text segment with backslash escapes and
// character references resolved in a single pass. An escaped character is
// written literally, so \&amp; stays &amp;.
func (w *plainWriter) writeText(value []byte) {
	start := 0
	for i := 0; i < len(value)-1; i++ {
		if value[i] != '\\' || !util.IsPunct(value[i+1]) {
			continue
		}
		w.writeReferences(value[start:i])
		w.buf.WriteByte(value[i+1])
		i++
		start = i + 1
	}
	w.writeReferences(value[start:])
}

// writeReferences writes value with entity and numeric references resolved.
func (w *plainWriter) writeReferences(value []byte) {
	value = util.ResolveNumericReferences(value)
	value = util.ResolveEntityNames(value)
	w.buf.Write(value)
}

// writeCodeSpan writes code span content verbatim. Line endings inside a
// code span are rendered as spaces.
func (w *plainWriter) writeCodeSpan(n *ast.CodeSpan) {
	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		var value []byte
		switch t := c.(type) {
		case *ast.Text:
			value = t.Segment.Value(w.source)
		case *ast.String:
			value = t.Value
		default:
			continue
		}
		w.buf.Write(bytes.ReplaceAll(value, []byte("\n"), []byte(" ")))
	}
}

func (w *plainWriter) endBlock() {
	if w.buf.Len() > 0 && !bytes.HasSuffix(w.buf.Bytes(), []byte("\n")) {
		w.buf.WriteByte('\n')
	}
}

func (w *plainWriter) trimTrailingSpaces() {
	w.buf.Truncate(len(bytes.TrimRight(w.buf.Bytes(), " ")))
}
