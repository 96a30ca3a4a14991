package view

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/PayTrain/NASA-Space-Explorer/internal/apod"
	"github.com/PayTrain/NASA-Space-Explorer/internal/render/prose"
	tuitheme "github.com/PayTrain/NASA-Space-Explorer/internal/tui/theme"
)

// Geometry is the screen rectangle of the detail modal, border included.
type Geometry struct {
	X, Y, W, H int
}

// ModalGeometry sizes the modal against the full frame: roughly 70% wide and
// 80% tall, clamped so it stays readable on small terminals and does not
// swallow huge ones.
func ModalGeometry(width, height int) Geometry {
	w := width * 7 / 10
	if w > 96 {
		w = 96
	}
	if w < 40 {
		w = 40
	}
	if w > width-2 {
		w = width - 2
	}
	if w < 20 {
		w = 20
	}

	h := height * 8 / 10
	if h < 12 {
		h = 12
	}
	if h > height-2 {
		h = height - 2
	}
	if h < 7 {
		h = 7
	}

	x := (width - w) / 2
	if x < 0 {
		x = 0
	}
	y := (height - h) / 2
	if y < 0 {
		y = 0
	}
	return Geometry{X: x, Y: y, W: w, H: h}
}

func (g Geometry) Contains(x, y int) bool {
	return x >= g.X && x < g.X+g.W && y >= g.Y && y < g.Y+g.H
}

// CloseRect is the clickable area around the ✕ mark in the header row.
func (g Geometry) CloseRect() (x, y, w, h int) {
	return g.X + g.W - 5, g.Y + 1, 3, 1
}

// ContentWidth is the usable text width inside border and padding.
func (g Geometry) ContentWidth() int {
	w := g.W - 6
	if w < 10 {
		w = 10
	}
	return w
}

// BodyHeight is how many content lines fit between the header block and the
// footer line.
func (g Geometry) BodyHeight() int {
	h := g.H - 5
	if h < 1 {
		h = 1
	}
	return h
}

// MaxTop returns the highest valid scroll offset for a body of the given
// length.
func MaxTop(totalLines, bodyHeight int) int {
	maxTop := totalLines - bodyHeight
	if maxTop < 0 {
		return 0
	}
	return maxTop
}

// ModalLines builds the scrollable modal body for an item: date, copyright,
// the media block for its kind, and the wrapped explanation.
func ModalLines(item apod.Item, width int, preview PreviewState) []string {
	lines := make([]string, 0, 32)

	if dateLabel := apod.FormatDisplayDate(item.Date); dateLabel != "" {
		lines = append(lines, "Date: "+dateLabel)
	}
	if c := prose.Sanitize(item.Copyright); c != "" {
		lines = append(lines, prose.Wrap("Copyright: "+c, width)...)
	}
	if len(lines) > 0 {
		lines = append(lines, "")
	}

	lines = append(lines, mediaLines(item, width, preview)...)

	if expl := prose.Lines(item.Explanation, width); len(expl) > 0 {
		lines = append(lines, "")
		lines = append(lines, expl...)
	}
	return lines
}

func mediaLines(item apod.Item, width int, preview PreviewState) []string {
	switch item.Kind() {
	case apod.KindImage:
		src := prose.SanitizeURL(item.DetailURL())
		if src == "" {
			return []string{"Image unavailable"}
		}
		out := prose.Wrap("Image: "+src, width)
		out = append(out, previewLines(preview, width)...)
		return out
	case apod.KindVideo:
		src := prose.SanitizeURL(item.URL)
		if src == "" {
			return []string{"Video unavailable"}
		}
		if apod.IsEmbedURL(src) {
			out := prose.Wrap("Player: "+src, width)
			out = append(out, prose.Wrap("Watch: "+apod.WatchURL(src), width)...)
			return out
		}
		return prose.Wrap("Watch: "+src, width)
	default:
		return []string{"Unsupported media type"}
	}
}

func previewLines(preview PreviewState, width int) []string {
	if !preview.Enabled {
		return nil
	}
	if preview.Loading {
		return []string{"", "Loading image preview..."}
	}
	if raw := strings.TrimRight(preview.Raw, "\r\n"); strings.TrimSpace(raw) != "" {
		return append([]string{""}, centerLines(strings.Split(raw, "\n"), width)...)
	}
	if errMsg := strings.TrimSpace(preview.Err); errMsg != "" {
		return []string{"", "Image preview unavailable: " + errMsg}
	}
	return nil
}

func centerLines(lines []string, width int) []string {
	if width <= 0 || len(lines) == 0 {
		return lines
	}
	out := make([]string, len(lines))
	for i, line := range lines {
		visible := lipgloss.Width(line)
		if visible >= width {
			out[i] = line
			continue
		}
		out[i] = strings.Repeat(" ", (width-visible)/2) + line
	}
	return out
}

// RenderModal draws the boxed detail view for the item at the given list
// position. top is the body scroll offset, already meaningful to the caller.
func RenderModal(item apod.Item, position, count int, geom Geometry, top int, preview PreviewState, th tuitheme.Theme) string {
	contentW := geom.ContentWidth()

	title := prose.Sanitize(item.Title)
	if title == "" {
		title = "Untitled"
	}
	closeMark := th.CloseMark.Render("✕")
	styledTitle := th.ModalTitle.Render(ansi.Truncate(title, contentW-2, "…"))
	gap := contentW - lipgloss.Width(styledTitle) - lipgloss.Width(closeMark)
	if gap < 1 {
		gap = 1
	}
	header := styledTitle + strings.Repeat(" ", gap) + closeMark
	sep := th.MetaLabel.Render(strings.Repeat("─", contentW))

	body := ModalLines(item, contentW, preview)
	bodyH := geom.BodyHeight()
	maxTop := MaxTop(len(body), bodyH)
	if top > maxTop {
		top = maxTop
	}
	if top < 0 {
		top = 0
	}
	end := top + bodyH
	if end > len(body) {
		end = len(body)
	}

	window := make([]string, 0, bodyH)
	for _, line := range body[top:end] {
		window = append(window, ansi.Truncate(line, contentW, "…"))
	}
	for len(window) < bodyH {
		window = append(window, "")
	}

	footerLeft := th.MetaLabel.Render(fmt.Sprintf("item %d of %d", position+1, count))
	footer := footerLeft
	if len(body) > bodyH {
		scroll := th.MetaValue.Render(fmt.Sprintf("%d-%d of %d", top+1, end, len(body)))
		fgap := contentW - lipgloss.Width(footerLeft) - lipgloss.Width(scroll)
		if fgap < 1 {
			fgap = 1
		}
		footer = footerLeft + strings.Repeat(" ", fgap) + scroll
	}

	content := make([]string, 0, bodyH+3)
	content = append(content, header, sep)
	content = append(content, window...)
	content = append(content, footer)
	return th.ModalFrame.Width(geom.W - 2).Render(strings.Join(content, "\n"))
}
