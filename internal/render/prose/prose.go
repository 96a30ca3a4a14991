package prose

import (
	"html"
	"regexp"
	"strings"
	"unicode"

	nethtml "golang.org/x/net/html"
)

var reANSICodes = regexp.MustCompile(`\x1b\[[0-9;]*m`)

var skippedElements = map[string]struct{}{
	"script":   {},
	"style":    {},
	"head":     {},
	"iframe":   {},
	"noscript": {},
	"template": {},
}

var blockElements = map[string]struct{}{
	"p":          {},
	"div":        {},
	"section":    {},
	"article":    {},
	"header":     {},
	"footer":     {},
	"blockquote": {},
	"pre":        {},
	"ul":         {},
	"ol":         {},
	"table":      {},
	"figure":     {},
	"h1":         {},
	"h2":         {},
	"h3":         {},
	"h4":         {},
	"h5":         {},
	"h6":         {},
}

var lineElements = map[string]struct{}{
	"li":         {},
	"tr":         {},
	"figcaption": {},
}

// Flatten reduces an untrusted HTML or plain-text fragment to displayable
// plain text. Tags are dropped, entities are decoded, script and style
// bodies are skipped, and terminal control sequences are stripped so feed
// content cannot smuggle escapes into the UI.
func Flatten(raw string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return ""
	}
	doc, err := nethtml.Parse(strings.NewReader("<html><body>" + raw + "</body></html>"))
	if err != nil {
		return tidy(html.UnescapeString(raw))
	}
	body := findBodyNode(doc)
	if body == nil {
		return tidy(html.UnescapeString(raw))
	}
	var b strings.Builder
	flattenNode(body, &b)
	return tidy(b.String())
}

// Sanitize is Flatten collapsed onto a single line, for titles and other
// fields that must never introduce line breaks.
func Sanitize(raw string) string {
	return strings.Join(strings.Fields(Flatten(raw)), " ")
}

// SanitizeURL strips terminal escape sequences and control bytes from a URL
// meant for display. Unlike Sanitize it never parses its input as HTML, so
// query strings come through untouched. Whitespace has no business in a URL
// either and is dropped with the rest.
func SanitizeURL(raw string) string {
	raw = reANSICodes.ReplaceAllString(raw, "")
	return strings.Map(func(r rune) rune {
		if r <= 0x20 || r == 0x7f {
			return -1
		}
		return r
	}, raw)
}

// Lines flattens a fragment and word-wraps it to the given width.
func Lines(raw string, width int) []string {
	flat := Flatten(raw)
	if flat == "" {
		return nil
	}
	return Wrap(flat, width)
}

func flattenNode(node *nethtml.Node, b *strings.Builder) {
	switch node.Type {
	case nethtml.TextNode:
		writeCollapsedText(node.Data, b)
		return
	case nethtml.ElementNode:
		tag := strings.ToLower(node.Data)
		if _, skip := skippedElements[tag]; skip {
			return
		}
		if tag == "br" {
			b.WriteString("\n")
			return
		}
	}
	for child := node.FirstChild; child != nil; child = child.NextSibling {
		flattenNode(child, b)
	}
	if node.Type == nethtml.ElementNode {
		tag := strings.ToLower(node.Data)
		if _, ok := blockElements[tag]; ok {
			b.WriteString("\n\n")
		} else if _, ok := lineElements[tag]; ok {
			b.WriteString("\n")
		}
	}
}

// writeCollapsedText appends a text node with its internal whitespace runs
// collapsed, preserving whether the node touched its neighbors with space.
func writeCollapsedText(text string, b *strings.Builder) {
	collapsed := strings.Join(strings.Fields(text), " ")
	if collapsed == "" {
		if text != "" {
			b.WriteString(" ")
		}
		return
	}
	if startsWithSpace(text) {
		b.WriteString(" ")
	}
	b.WriteString(collapsed)
	if endsWithSpace(text) {
		b.WriteString(" ")
	}
}

func startsWithSpace(s string) bool {
	for _, r := range s {
		return unicode.IsSpace(r)
	}
	return false
}

func endsWithSpace(s string) bool {
	var last rune
	for _, r := range s {
		last = r
	}
	return unicode.IsSpace(last)
}

// tidy strips control sequences and normalizes blank space: whitespace runs
// collapse within lines, runs of blank lines collapse to one, and leading
// and trailing blanks go away entirely.
func tidy(s string) string {
	s = reANSICodes.ReplaceAllString(s, "")
	s = stripControl(s)
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		lines[i] = strings.Join(strings.Fields(line), " ")
	}
	out := make([]string, 0, len(lines))
	prevBlank := true
	for _, line := range lines {
		blank := line == ""
		if blank && prevBlank {
			continue
		}
		out = append(out, line)
		prevBlank = blank
	}
	for len(out) > 0 && out[len(out)-1] == "" {
		out = out[:len(out)-1]
	}
	return strings.Join(out, "\n")
}

func stripControl(s string) string {
	return strings.Map(func(r rune) rune {
		if r == '\n' || r == '\t' {
			return r
		}
		if r < 0x20 || r == 0x7f {
			return -1
		}
		return r
	}, s)
}

func findBodyNode(node *nethtml.Node) *nethtml.Node {
	if node == nil {
		return nil
	}
	if node.Type == nethtml.ElementNode && strings.EqualFold(node.Data, "body") {
		return node
	}
	for child := node.FirstChild; child != nil; child = child.NextSibling {
		if found := findBodyNode(child); found != nil {
			return found
		}
	}
	return nil
}

// Wrap word-wraps text to the given width, keeping existing line breaks as
// paragraph boundaries. Words longer than the width are hard-split.
func Wrap(text string, width int) []string {
	if width < 1 {
		return []string{text}
	}
	paragraphs := strings.Split(text, "\n")
	out := make([]string, 0, len(paragraphs))

	for _, p := range paragraphs {
		if p == "" {
			out = append(out, "")
			continue
		}
		words := strings.Fields(p)
		if len(words) == 0 {
			out = append(out, "")
			continue
		}
		line := ""
		for _, word := range words {
			for len(word) > width {
				if line != "" {
					out = append(out, line)
					line = ""
				}
				out = append(out, word[:width])
				word = word[width:]
			}

			if line == "" {
				line = word
				continue
			}
			if len(line)+1+len(word) <= width {
				line += " " + word
				continue
			}
			out = append(out, line)
			line = word
		}
		if line != "" {
			out = append(out, line)
		}
	}

	return out
}
