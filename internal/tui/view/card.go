package view

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/PayTrain/NASA-Space-Explorer/internal/apod"
	"github.com/PayTrain/NASA-Space-Explorer/internal/render/prose"
	tuitheme "github.com/PayTrain/NASA-Space-Explorer/internal/tui/theme"
)

const (
	videoPlaceholder       = "Video — click to open"
	unsupportedPlaceholder = "Unsupported media"
)

// Visual describes the media fragment at the top of a gallery card: either
// an image source to preview or a textual placeholder.
type Visual struct {
	Kind        apod.MediaKind
	ImageSource string
	Placeholder string
}

// CardVisual picks the visual for an item. Images prefer the
// standard-resolution URL, videos fall back from thumbnail to placeholder,
// and anything else gets the unsupported placeholder.
func CardVisual(item apod.Item) Visual {
	switch item.Kind() {
	case apod.KindImage:
		return Visual{Kind: apod.KindImage, ImageSource: item.PreviewURL()}
	case apod.KindVideo:
		if item.ThumbnailURL != "" {
			return Visual{Kind: apod.KindVideo, ImageSource: item.ThumbnailURL}
		}
		return Visual{Kind: apod.KindVideo, Placeholder: videoPlaceholder}
	default:
		return Visual{Kind: apod.KindUnsupported, Placeholder: unsupportedPlaceholder}
	}
}

// Card carries everything needed to draw one gallery cell. Index is the
// item's position in the full list, so a card keeps pointing at the same
// item even when the grid shows a filtered subset.
type Card struct {
	Index     int
	Title     string
	DateLabel string
	Visual    Visual
}

func NewCard(item apod.Item, index int) Card {
	title := prose.Sanitize(item.Title)
	if title == "" {
		title = "Untitled"
	}
	return Card{
		Index:     index,
		Title:     title,
		DateLabel: apod.FormatDisplayDate(item.Date),
		Visual:    CardVisual(item),
	}
}

// RenderCard draws one bordered card at the given total width. The height is
// always CardHeight so grid geometry can stay arithmetic.
func RenderCard(card Card, width int, active bool, th tuitheme.Theme) string {
	contentW := width - 4
	if contentW < 1 {
		contentW = 1
	}

	number := th.CardNumber.Render(fmt.Sprintf("%d.", card.Index+1))
	titleW := contentW - lipgloss.Width(number) - 1
	if titleW < 1 {
		titleW = 1
	}
	titleLine := number + " " + th.CardTitle.Render(ansi.Truncate(card.Title, titleW, "…"))

	lines := []string{
		renderVisualLine(card.Visual, contentW, th),
		titleLine,
		th.CardDate.Render(ansi.Truncate(card.DateLabel, contentW, "…")),
	}
	return th.Frame(active).Width(width - 2).Render(strings.Join(lines, "\n"))
}

func renderVisualLine(v Visual, width int, th tuitheme.Theme) string {
	if v.Placeholder != "" {
		return th.Placeholder.Render(ansi.Truncate(v.Placeholder, width, "…"))
	}
	marker := "▣"
	if v.Kind == apod.KindVideo {
		marker = "▶"
	}
	label := marker
	if host := sourceHost(v.ImageSource); host != "" {
		label += " " + host
	}
	return th.StyleMediaLabel(v.Kind, ansi.Truncate(label, width, "…"))
}

func sourceHost(raw string) string {
	// Feed URLs are untrusted; strip escape bytes before the fallback path
	// can hand the raw string to the terminal.
	raw = prose.SanitizeURL(raw)
	if raw == "" {
		return ""
	}
	parsed, err := url.Parse(raw)
	if err != nil || parsed.Host == "" {
		return raw
	}
	return strings.TrimPrefix(parsed.Host, "www.")
}
