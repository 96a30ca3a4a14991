package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/sahilm/fuzzy"

	"github.com/PayTrain/NASA-Space-Explorer/internal/apod"
	"github.com/PayTrain/NASA-Space-Explorer/internal/render/prose"
	"github.com/PayTrain/NASA-Space-Explorer/internal/tui/actions"
	"github.com/PayTrain/NASA-Space-Explorer/internal/tui/mouse"
	"github.com/PayTrain/NASA-Space-Explorer/internal/tui/platform"
	"github.com/PayTrain/NASA-Space-Explorer/internal/tui/state"
	tuitheme "github.com/PayTrain/NASA-Space-Explorer/internal/tui/theme"
	"github.com/PayTrain/NASA-Space-Explorer/internal/tui/view"
)

const feedErrorPrefix = "Could not load the picture gallery"

const (
	regionCard       = "card"
	regionModal      = "modal"
	regionModalClose = "modal-close"
	regionBackdrop   = "backdrop"
)

// Model owns the whole gallery state: the fetched item list, the filtered
// view over it, the detail modal, and every transient flag the frame needs.
// There is no state outside of it.
type Model struct {
	service    actions.Service
	fetchCount int

	items   []apod.Item
	visible []int // display order over items, filter applied
	cursor  int   // display position within visible

	rowOffset int

	query       string
	searching   bool
	searchInput textinput.Model

	modalOpen  bool
	modalIndex int // position in items, not in visible
	modalTop   int

	showHelp bool
	loading  bool
	status   string
	statusID int
	err      error

	width  int
	height int

	spin spinner.Model
	hits *mouse.HitMap
	th   tuitheme.Theme

	openURLFn     func(string) error
	copyURLFn     func(string) error
	renderImageFn func(string, int) (string, error)

	previews       map[string]string
	previewErrs    map[string]string
	previewLoading map[string]bool

	cacheLoadDuration time.Duration
	cacheLoadedItems  int
}

// NewModel seeds the gallery with whatever the cache produced at startup.
// The seed list is replaced wholesale by the first successful fetch.
func NewModel(service actions.Service, items []apod.Item, fetchCount int) Model {
	seed := append([]apod.Item(nil), items...)

	ti := textinput.New()
	ti.Placeholder = "filter by title"
	ti.CharLimit = 64
	ti.Prompt = "/"

	sp := spinner.New()
	sp.Spinner = spinner.Dot

	m := Model{
		service:        service,
		fetchCount:     fetchCount,
		items:          seed,
		loading:        service != nil,
		searchInput:    ti,
		spin:           sp,
		hits:           mouse.NewHitMap(),
		th:             tuitheme.Default(),
		openURLFn:      platform.OpenURLInBrowser,
		copyURLFn:      platform.CopyURLToClipboard,
		renderImageFn:  view.RenderInlineImage,
		previews:       make(map[string]string),
		previewErrs:    make(map[string]string),
		previewLoading: make(map[string]bool),
	}
	m.recomputeVisible()
	return m
}

func (m Model) Init() tea.Cmd {
	if m.service == nil {
		return nil
	}
	return tea.Batch(m.spin.Tick, actions.FetchCmd(m.service, m.fetchCount, "init"))
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ensureCursorVisible()
		return m, nil
	case tea.KeyMsg:
		return m.updateKey(msg)
	case tea.MouseMsg:
		return m.updateMouse(msg)
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd
	case actions.FetchSuccessMsg:
		m.loading = false
		m.err = nil
		m.items = msg.Items
		m.recomputeVisible()
		if m.modalOpen && m.modalIndex >= len(m.items) {
			m.closeModal()
		}
		m.status = fmt.Sprintf("Loaded %d pictures in %dms", len(msg.Items), msg.Duration.Milliseconds())
		if msg.Warning != "" {
			m.status += " (" + msg.Warning + ")"
		}
		m.statusID++
		return m, actions.ClearStatusCmd(m.statusID, 3*time.Second)
	case actions.FetchErrorMsg:
		// The list keeps whatever it held before the failed fetch.
		m.loading = false
		m.status = ""
		m.err = msg.Err
		return m, nil
	case actions.OpenURLSuccessMsg:
		m.err = nil
		m.status = msg.Status
		m.statusID++
		return m, actions.ClearStatusCmd(m.statusID, 3*time.Second)
	case actions.OpenURLErrorMsg:
		m.err = nil
		m.status = msg.Err.Error()
		m.statusID++
		return m, actions.ClearStatusCmd(m.statusID, 4*time.Second)
	case actions.PreviewSuccessMsg:
		delete(m.previewLoading, msg.Source)
		delete(m.previewErrs, msg.Source)
		m.previews[msg.Source] = msg.Preview
		return m, nil
	case actions.PreviewErrorMsg:
		delete(m.previewLoading, msg.Source)
		m.previewErrs[msg.Source] = msg.Err.Error()
		return m, nil
	case actions.ClearStatusMsg:
		if msg.ID == m.statusID {
			m.status = ""
		}
		return m, nil
	}
	return m, nil
}

func (m Model) updateKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}

	if m.searching {
		return m.updateSearchKey(msg)
	}

	if msg.String() == "?" {
		m.showHelp = !m.showHelp
		return m, nil
	}
	if m.showHelp {
		switch msg.String() {
		case "esc":
			m.showHelp = false
		case "q":
			return m, tea.Quit
		}
		return m, nil
	}

	// Escape dismisses the modal no matter what else is going on; with the
	// modal already closed it falls through to clearing the filter.
	if msg.String() == "esc" {
		if m.modalOpen {
			m.closeModal()
			return m, nil
		}
		if m.query != "" {
			m.clearFilter()
		}
		return m, nil
	}

	if m.modalOpen {
		return m.updateModalKey(msg)
	}
	return m.updateGridKey(msg)
}

func (m Model) updateSearchKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.searching = false
		m.clearFilter()
		return m, nil
	case "enter":
		m.searching = false
		m.searchInput.Blur()
		return m, nil
	}
	var cmd tea.Cmd
	m.searchInput, cmd = m.searchInput.Update(msg)
	m.query = m.searchInput.Value()
	m.recomputeVisible()
	return m, cmd
}

func (m Model) updateModalKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "backspace":
		m.closeModal()
		return m, nil
	case "q":
		return m, tea.Quit
	case "up", "k":
		m.scrollModal(-1)
		return m, nil
	case "down", "j":
		m.scrollModal(1)
		return m, nil
	case "pgup", "ctrl+b":
		m.scrollModal(-state.PageStep(m.modalGeometry().BodyHeight()))
		return m, nil
	case "pgdown", "ctrl+f":
		m.scrollModal(state.PageStep(m.modalGeometry().BodyHeight()))
		return m, nil
	case "[":
		return m.stepModal(-1)
	case "]":
		return m.stepModal(1)
	case "o":
		return m.openCurrentURL()
	case "y":
		return m.copyCurrentURL()
	}
	return m, nil
}

func (m Model) updateGridKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	layout := m.gridLayout()
	switch msg.String() {
	case "q":
		return m, tea.Quit
	case "/":
		m.searching = true
		m.searchInput.Focus()
		return m, textinput.Blink
	case "r":
		if m.service == nil {
			return m, nil
		}
		m.loading = true
		m.status = ""
		m.err = nil
		return m, actions.FetchCmd(m.service, m.fetchCount, "manual")
	case "enter":
		return m.openModalAt(m.cursor)
	case "left", "h":
		m.cursor = state.MoveHorizontal(m.cursor, len(m.visible), -1)
	case "right", "l":
		m.cursor = state.MoveHorizontal(m.cursor, len(m.visible), 1)
	case "up", "k":
		m.cursor = state.MoveVertical(m.cursor, layout.Cols, len(m.visible), -1)
	case "down", "j":
		m.cursor = state.MoveVertical(m.cursor, layout.Cols, len(m.visible), 1)
	case "pgup", "ctrl+b":
		m.cursor = state.MoveVertical(m.cursor, layout.Cols, len(m.visible), -layout.VisibleRows)
	case "pgdown", "ctrl+f":
		m.cursor = state.MoveVertical(m.cursor, layout.Cols, len(m.visible), layout.VisibleRows)
	case "g":
		m.cursor = 0
	case "G":
		m.cursor = state.ClampCursor(len(m.visible)-1, len(m.visible))
	case "o":
		return m.openCurrentURL()
	case "y":
		return m.copyCurrentURL()
	default:
		return m, nil
	}
	m.ensureCursorVisible()
	return m, nil
}

func (m Model) updateMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	switch msg.Button {
	case tea.MouseButtonWheelUp:
		if m.modalOpen {
			m.scrollModal(-2)
		} else {
			m.rowOffset = state.ClampScroll(m.rowOffset-1, m.gridLayout().TotalRows(), m.gridLayout().VisibleRows)
		}
		return m, nil
	case tea.MouseButtonWheelDown:
		if m.modalOpen {
			m.scrollModal(2)
		} else {
			m.rowOffset = state.ClampScroll(m.rowOffset+1, m.gridLayout().TotalRows(), m.gridLayout().VisibleRows)
		}
		return m, nil
	case tea.MouseButtonLeft:
		if msg.Action != tea.MouseActionPress {
			return m, nil
		}
		hit := m.hits.Test(msg.X, msg.Y)
		if hit == nil {
			return m, nil
		}
		switch hit.ID {
		case regionCard:
			pos, ok := hit.Data.(int)
			if !ok {
				return m, nil
			}
			m.cursor = state.ClampCursor(pos, len(m.visible))
			return m.openModalAt(pos)
		case regionModalClose, regionBackdrop:
			m.closeModal()
			return m, nil
		}
		return m, nil
	}
	return m, nil
}

// openModalAt resolves a display position into the underlying item and opens
// the detail modal on it. A position that no longer maps to an item, for
// example after the list was replaced under a stale hit region, is ignored.
func (m Model) openModalAt(pos int) (tea.Model, tea.Cmd) {
	if pos < 0 || pos >= len(m.visible) {
		return m, nil
	}
	idx := m.visible[pos]
	if idx < 0 || idx >= len(m.items) {
		return m, nil
	}
	m.cursor = pos
	m.modalOpen = true
	m.modalIndex = idx
	m.modalTop = 0
	return m, m.ensurePreviewCmd()
}

// closeModal is safe to call however many times in a row; closing a closed
// modal does nothing.
func (m *Model) closeModal() {
	m.modalOpen = false
	m.modalTop = 0
}

func (m Model) stepModal(delta int) (tea.Model, tea.Cmd) {
	pos := m.displayPositionOf(m.modalIndex)
	if pos < 0 {
		return m, nil
	}
	next := pos + delta
	if next < 0 || next >= len(m.visible) {
		return m, nil
	}
	m.cursor = next
	m.modalIndex = m.visible[next]
	m.modalTop = 0
	m.ensureCursorVisible()
	return m, m.ensurePreviewCmd()
}

func (m Model) displayPositionOf(itemIndex int) int {
	for pos, idx := range m.visible {
		if idx == itemIndex {
			return pos
		}
	}
	return -1
}

func (m *Model) scrollModal(delta int) {
	if !m.modalOpen || m.modalIndex >= len(m.items) {
		return
	}
	geom := m.modalGeometry()
	item := m.items[m.modalIndex]
	lines := view.ModalLines(item, geom.ContentWidth(), m.previewState(item))
	m.modalTop = state.ClampScroll(m.modalTop+delta, len(lines), geom.BodyHeight())
}

func (m Model) openCurrentURL() (tea.Model, tea.Cmd) {
	item, ok := m.currentItem()
	if !ok {
		return m, nil
	}
	validURL, err := platform.ValidateItemURL(item.BrowseURL())
	if err != nil {
		m.status = err.Error()
		m.statusID++
		return m, actions.ClearStatusCmd(m.statusID, 4*time.Second)
	}
	return m, actions.OpenURLCmd(validURL, m.openURLFn, m.copyURLFn)
}

func (m Model) copyCurrentURL() (tea.Model, tea.Cmd) {
	item, ok := m.currentItem()
	if !ok {
		return m, nil
	}
	validURL, err := platform.ValidateItemURL(item.BrowseURL())
	if err != nil {
		m.status = err.Error()
		m.statusID++
		return m, actions.ClearStatusCmd(m.statusID, 4*time.Second)
	}
	return m, actions.CopyURLCmd(validURL, m.copyURLFn)
}

// currentItem is the item the next action applies to: the modal item when
// the modal is open, the card under the cursor otherwise.
func (m Model) currentItem() (apod.Item, bool) {
	if m.modalOpen {
		if m.modalIndex < 0 || m.modalIndex >= len(m.items) {
			return apod.Item{}, false
		}
		return m.items[m.modalIndex], true
	}
	if m.cursor < 0 || m.cursor >= len(m.visible) {
		return apod.Item{}, false
	}
	idx := m.visible[m.cursor]
	if idx < 0 || idx >= len(m.items) {
		return apod.Item{}, false
	}
	return m.items[idx], true
}

func (m *Model) clearFilter() {
	m.query = ""
	m.searchInput.SetValue("")
	m.recomputeVisible()
}

// recomputeVisible rebuilds the display order over the item list. Without a
// filter it is the list itself; with one it is the fuzzy matches in rank
// order. Item indices stay stable either way, only the projection changes.
func (m *Model) recomputeVisible() {
	if m.query == "" {
		m.visible = make([]int, len(m.items))
		for i := range m.items {
			m.visible[i] = i
		}
	} else {
		titles := make([]string, len(m.items))
		for i, item := range m.items {
			titles[i] = prose.Sanitize(item.Title)
		}
		matches := fuzzy.Find(m.query, titles)
		m.visible = make([]int, 0, len(matches))
		for _, match := range matches {
			m.visible = append(m.visible, match.Index)
		}
	}
	m.cursor = state.ClampCursor(m.cursor, len(m.visible))
	m.ensureCursorVisible()
}

func (m *Model) ensureCursorVisible() {
	layout := m.gridLayout()
	m.rowOffset = state.EnsureRowVisible(
		m.rowOffset,
		state.RowOf(m.cursor, layout.Cols),
		layout.VisibleRows,
		layout.TotalRows(),
	)
}

func (m Model) ensurePreviewCmd() tea.Cmd {
	if !m.modalOpen || m.renderImageFn == nil || m.modalIndex >= len(m.items) {
		return nil
	}
	item := m.items[m.modalIndex]
	if item.Kind() != apod.KindImage {
		return nil
	}
	src := item.DetailURL()
	if src == "" {
		return nil
	}
	if _, ok := m.previews[src]; ok {
		return nil
	}
	if m.previewLoading[src] {
		return nil
	}
	m.previewLoading[src] = true
	return actions.PreviewCmd(src, m.modalGeometry().ContentWidth(), m.renderImageFn)
}

func (m Model) previewState(item apod.Item) view.PreviewState {
	if m.renderImageFn == nil || item.Kind() != apod.KindImage {
		return view.PreviewState{}
	}
	src := item.DetailURL()
	return view.PreviewState{
		Enabled: true,
		Loading: m.previewLoading[src],
		Raw:     m.previews[src],
		Err:     m.previewErrs[src],
	}
}

const (
	headerLines = 3 // title row, toolbar, blank
	footerLines = 3 // blank, message panel, footer
)

func (m Model) frameWidth() int {
	if m.width > 0 {
		return m.width
	}
	return 100
}

func (m Model) frameHeight() int {
	if m.height > 0 {
		return m.height
	}
	return 30
}

func (m Model) gridOriginY() int {
	y := headerLines
	if m.searching {
		y++
	}
	return y
}

func (m Model) gridLayout() view.Layout {
	gridH := m.frameHeight() - m.gridOriginY() - footerLines
	if gridH < view.CardHeight {
		gridH = view.CardHeight
	}
	return view.ComputeLayout(m.frameWidth(), gridH, len(m.visible), m.rowOffset)
}

func (m Model) modalGeometry() view.Geometry {
	return view.ModalGeometry(m.frameWidth(), m.frameHeight())
}

func (m Model) View() string {
	m.hits.Clear()

	var b strings.Builder
	b.WriteString(m.th.Title.Render("NASA Space Explorer"))
	b.WriteString(" ")
	b.WriteString(m.th.CountPill.Render(fmt.Sprintf("%d pictures", len(m.items))))
	b.WriteString("\n")
	b.WriteString(view.Toolbar(m.modalOpen, m.searching))
	b.WriteString("\n")
	if m.searching {
		b.WriteString(m.th.SearchPrompt.Render(m.searchInput.View()))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	if m.showHelp {
		b.WriteString(strings.Join(view.HelpLines(m.th), "\n"))
		b.WriteString("\n")
	} else if m.modalOpen {
		b.WriteString(m.modalView())
	} else {
		b.WriteString(m.gridView())
	}

	b.WriteString("\n")
	b.WriteString(view.StatusMessage(m.loading, m.err != nil, m.status, m.warningText(), m.th))
	b.WriteString("\n")
	footer := view.Footer(len(m.items), len(m.visible), m.query, m.th)
	if m.cacheLoadedItems > 0 {
		footer += " • " + m.th.MetaLabel.Render("cache") + " " +
			m.th.MetaValue.Render(fmt.Sprintf("%d in %dms", m.cacheLoadedItems, m.cacheLoadDuration.Milliseconds()))
	}
	b.WriteString(footer)
	b.WriteString("\n")
	return b.String()
}

func (m Model) warningText() string {
	if m.err == nil {
		return ""
	}
	return feedErrorPrefix + ": " + m.err.Error()
}

func (m Model) gridView() string {
	if m.loading {
		return m.spin.View() + " Loading pictures...\n"
	}
	if m.err != nil {
		return m.th.StateWarn.Render(feedErrorPrefix+".") + "\n" + m.err.Error() + "\n"
	}
	if len(m.visible) == 0 {
		if m.query != "" {
			return fmt.Sprintf("No titles match %q.\n", m.query)
		}
		return "No pictures to show. Press r to fetch the gallery.\n"
	}

	layout := m.gridLayout()
	cards := make([]view.Card, len(m.visible))
	for pos, idx := range m.visible {
		cards[pos] = view.NewCard(m.items[idx], idx)
	}

	originY := m.gridOriginY()
	for pos := range m.visible {
		if x, y, w, h, ok := layout.CellRect(pos); ok {
			m.hits.AddRect(regionCard, x, originY+y, w, h, pos)
		}
	}

	return view.RenderGrid(cards, layout, m.cursor, m.th) + "\n"
}

func (m Model) modalView() string {
	if m.modalIndex < 0 || m.modalIndex >= len(m.items) {
		return "No item selected.\n"
	}
	item := m.items[m.modalIndex]
	geom := m.modalGeometry()
	pos := m.displayPositionOf(m.modalIndex)
	if pos < 0 {
		pos = 0
	}

	// The frame body starts below the header block, so a modal whose
	// geometric top falls above it gets drawn lower than geom.Y says. Clamp
	// once and register the hit rects where the box actually lands, or every
	// region would sit offset from the drawn modal on short terminals.
	effY := max(geom.Y, m.gridOriginY())

	// Everything under the modal counts as backdrop; the modal box and its
	// close mark sit on top of it in hit-test order.
	m.hits.AddRect(regionBackdrop, 0, 0, m.frameWidth(), m.frameHeight(), nil)
	m.hits.AddRect(regionModal, geom.X, effY, geom.W, geom.H, nil)
	cx, cy, cw, ch := geom.CloseRect()
	m.hits.AddRect(regionModalClose, cx, cy+(effY-geom.Y), cw, ch, nil)

	box := view.RenderModal(item, pos, len(m.visible), geom, m.modalTop, m.previewState(item), m.th)
	return placeAt(box, geom.X, effY-m.gridOriginY())
}

// placeAt offsets a rendered block so it lands at the wanted screen position
// relative to where the caller writes it.
func placeAt(block string, x, y int) string {
	pad := strings.Repeat(" ", max(0, x))
	lines := strings.Split(block, "\n")
	var b strings.Builder
	for i := 0; i < y; i++ {
		b.WriteString("\n")
	}
	for i, line := range lines {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(pad)
		b.WriteString(line)
	}
	b.WriteString("\n")
	return b.String()
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}

// SetStartupCacheStats records how the cache preload went for the footer
// diagnostics.
func (m *Model) SetStartupCacheStats(duration time.Duration, items int) {
	m.cacheLoadDuration = duration
	m.cacheLoadedItems = items
}
