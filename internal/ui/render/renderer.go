package render

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/gdamore/tcell/v2"
	statepkg "github.com/kk-code-lab/dirsplit/internal/state"
	textutil "github.com/kk-code-lab/dirsplit/internal/textutil"
)

const appTitle = "dirsplit"

// Frame is everything drawn in one pass: the workspace view plus the
// transient status owned by the application loop.
type Frame struct {
	View statepkg.View
	// Message replaces the key help in the footer when set.
	Message string
	IsError bool
	// Flash highlights the status line after a successful yank.
	Flash bool
	// SymlinkTarget is shown after the selected path when it is a link.
	SymlinkTarget string
}

// Renderer handles all UI rendering
type Renderer struct {
	screen         tcell.Screen
	theme          ColorTheme
	runeWidthCache [128]int // ASCII widths stored +1 so zero means unset
	runeWidthWide  map[rune]int
}

// NewRenderer creates a new renderer
func NewRenderer(screen tcell.Screen) *Renderer {
	return &Renderer{
		screen:        screen,
		theme:         GetColorTheme(),
		runeWidthWide: make(map[rune]int),
	}
}

// Render draws the entire UI for frame.
func (r *Renderer) Render(frame Frame) {
	r.screen.Clear()

	w, h := r.screen.Size()
	view := frame.View
	layout := computeLayout(w, h, len(view.Panes), len(view.Yanked))

	r.drawHeader(view, w)
	for i, pane := range panesToDraw(view, len(layout.panes)) {
		r.drawPane(pane, layout.panes[i], layout)
	}
	if layout.separatorX >= 0 {
		sepStyle := tcell.StyleDefault.Foreground(r.theme.SeparatorFg)
		for y := headerRows; y < layout.listTop+layout.listRows; y++ {
			r.screen.SetContent(layout.separatorX, y, '│', nil, sepStyle)
		}
	}
	if layout.yankedRows > 0 {
		r.drawYanked(view.Yanked, layout, w)
	}
	if layout.statusY >= headerRows {
		r.drawStatusLine(frame, w, layout.statusY)
	}
	if layout.footerY >= 0 {
		r.drawFooter(frame, w, layout.footerY)
	}

	r.screen.Show()
}

// panesToDraw picks the panes that fit into boxes slots. When the dual
// layout does not fit, only the active pane is drawn.
func panesToDraw(view statepkg.View, boxes int) []statepkg.PaneView {
	if boxes >= len(view.Panes) {
		return view.Panes
	}
	if boxes <= 0 {
		return nil
	}
	if pane, _, ok := activePane(view); ok {
		return []statepkg.PaneView{pane}
	}
	return view.Panes[:boxes]
}

func activePane(view statepkg.View) (statepkg.PaneView, int, bool) {
	for i, pane := range view.Panes {
		if pane.Active {
			return pane, i, true
		}
	}
	return statepkg.PaneView{}, -1, false
}

// drawHeader renders the top bar with the title, the active directory and
// the split/pane indicator.
func (r *Renderer) drawHeader(view statepkg.View, w int) {
	headerStyle := tcell.StyleDefault.Background(r.theme.HeaderBg).Foreground(r.theme.HeaderFg)
	r.fill(0, w, 0, headerStyle)

	endX := r.drawTextLine(0, 0, w, appTitle, headerStyle.Bold(true))

	indicator := ""
	pane, idx, ok := activePane(view)
	if ok {
		indicator = fmt.Sprintf("split %d/%d", view.SplitIndex+1, view.SplitCount)
		if len(view.Panes) > 1 {
			indicator += fmt.Sprintf(" · pane %d/%d", idx+1, len(view.Panes))
		}
	}
	indicatorWidth := textutil.DisplayWidth(indicator)

	available := w - endX - 1 - indicatorWidth - 1
	if ok && available > 0 {
		path := textutil.TruncateLeft(textutil.SanitizeName(pane.Path), available)
		r.drawTextLine(endX+1, 0, available, path, headerStyle)
	}
	if indicator != "" && indicatorWidth < w-endX {
		r.drawTextLine(w-indicatorWidth, 0, indicatorWidth, indicator, headerStyle)
	}
}

func (r *Renderer) drawPane(pane statepkg.PaneView, box paneBox, layout layoutMetrics) {
	if box.width <= 0 {
		return
	}
	baseStyle := tcell.StyleDefault.Background(r.theme.Background).Foreground(r.theme.Foreground)
	r.drawPaneTitle(pane, box, baseStyle)

	y := layout.listTop
	for _, row := range pane.Rows {
		if y >= layout.listTop+layout.listRows {
			break
		}
		r.drawRow(row, pane.Active, box, y, baseStyle)
		y++
	}
}

func (r *Renderer) drawPaneTitle(pane statepkg.PaneView, box paneBox, baseStyle tcell.Style) {
	y := headerRows
	titleStyle := baseStyle.Foreground(r.theme.TitleInactiveFg)
	if pane.Active {
		titleStyle = baseStyle.Foreground(r.theme.TitleActiveFg).Bold(true)
	}

	position := "0/0"
	if pane.Total > 0 && pane.Selected != nil {
		position = fmt.Sprintf("%d/%d", selectedIndex(pane)+1, pane.Total)
	}
	suffix := fmt.Sprintf(" [%s] %s ", pane.SortMode, position)

	labelWidth := box.width - 1 - textutil.DisplayWidth(suffix)
	label := ""
	if labelWidth > 0 {
		label = textutil.Truncate(textutil.SanitizeName(pane.Label), labelWidth)
	}
	text := textutil.Fit(" "+label+suffix, box.width)
	r.drawTextLine(box.x, y, box.width, text, titleStyle)
}

func selectedIndex(pane statepkg.PaneView) int {
	for _, row := range pane.Rows {
		if row.Selected {
			return row.Index
		}
	}
	return pane.Offset
}

func (r *Renderer) rowStyle(row statepkg.RowView, activePane bool, baseStyle tcell.Style) tcell.Style {
	f := row.Entry

	var style tcell.Style
	switch {
	case row.Selected && activePane:
		style = tcell.StyleDefault.Background(r.theme.SelectionBg).Foreground(r.theme.SelectionFg)
	case row.Selected:
		style = baseStyle.Background(r.theme.InactiveSelectionBg)
	default:
		style = baseStyle
	}

	if !(row.Selected && activePane) {
		switch {
		case f.IsSymlink:
			style = style.Foreground(r.theme.SymlinkFg)
		case f.IsDir:
			style = style.Foreground(r.theme.DirectoryFg)
		default:
			style = style.Foreground(r.theme.FileFg)
		}
		if row.Hidden {
			style = style.Foreground(r.theme.HiddenFg).Dim(true)
		}
	}
	return style
}

func (r *Renderer) drawRow(row statepkg.RowView, activePane bool, box paneBox, y int, baseStyle tcell.Style) {
	style := r.rowStyle(row, activePane, baseStyle)

	// Icon: @ for symlinks, / for directories, space for files
	icon := " "
	if row.Entry.IsSymlink {
		icon = "@"
	} else if row.Entry.IsDir {
		icon = "/"
	}

	text := textutil.Fit(" "+icon+" "+textutil.SanitizeName(row.Entry.Name), box.width)
	r.drawTextLine(box.x, y, box.width, text, style)
}

func (r *Renderer) drawYanked(yanked []string, layout layoutMetrics, w int) {
	titleStyle := tcell.StyleDefault.Foreground(r.theme.YankedFg).Bold(true)
	rowStyle := tcell.StyleDefault.Foreground(r.theme.YankedFg)

	title := fmt.Sprintf(" yanked (%d)", len(yanked))
	r.drawTextLine(0, layout.yankedTop, w, textutil.Fit(title, w), titleStyle)

	recent := yanked[len(yanked)-layout.yankedRows:]
	for i, path := range recent {
		text := "  " + textutil.TruncateLeft(textutil.SanitizeName(path), w-2)
		r.drawTextLine(0, layout.yankedTop+yankedTitleRows+i, w, textutil.Fit(text, w), rowStyle)
	}
}

func (r *Renderer) drawStatusLine(frame Frame, w, y int) {
	style := tcell.StyleDefault.Background(r.theme.FooterBg).Foreground(r.theme.FooterFg)
	if frame.Flash {
		style = tcell.StyleDefault.Background(r.theme.FlashBg).Foreground(r.theme.FlashFg)
	}
	r.fill(0, w, y, style)

	pane, _, ok := activePane(frame.View)
	if !ok {
		return
	}

	details := formatEntryDetails(pane)
	detailsWidth := textutil.DisplayWidth(details)

	pathText := selectedPath(pane)
	if frame.SymlinkTarget != "" {
		pathText += " → " + frame.SymlinkTarget
	}
	pathText = textutil.SanitizeName(pathText)

	available := w - detailsWidth - 1
	if available < 1 {
		available = w
		details = ""
		detailsWidth = 0
	}
	r.drawTextLine(0, y, available, textutil.TruncateLeft(pathText, available), style)
	if details != "" {
		r.drawTextLine(w-detailsWidth, y, detailsWidth, details, style)
	}
}

func selectedPath(pane statepkg.PaneView) string {
	if pane.Selected == nil {
		return pane.Path
	}
	if pane.Selected.FullPath != "" {
		return pane.Selected.FullPath
	}
	return filepath.Join(pane.Path, pane.Selected.Name)
}

// formatEntryDetails summarises the selected entry: size, age and sort mode.
func formatEntryDetails(pane statepkg.PaneView) string {
	var parts []string
	if entry := pane.Selected; entry != nil {
		switch {
		case entry.IsDir:
			parts = append(parts, "dir")
		default:
			parts = append(parts, humanize.Bytes(uint64(max(entry.Size, 0))))
		}
		if !entry.Modified.IsZero() {
			parts = append(parts, humanize.Time(entry.Modified))
		}
		if entry.Mode != 0 {
			parts = append(parts, entry.Mode.String())
		}
	} else {
		parts = append(parts, "empty")
	}
	parts = append(parts, pane.SortMode.String())
	return " " + strings.Join(parts, " · ") + " "
}

func (r *Renderer) drawFooter(frame Frame, w, y int) {
	style := tcell.StyleDefault.Background(r.theme.FooterBg).Foreground(r.theme.FooterFg)
	r.fill(0, w, y, style)

	text := buildFooterHelpText(len(frame.View.Panes) > 1)
	if frame.Message != "" {
		text = " " + frame.Message
		if frame.IsError {
			style = style.Foreground(r.theme.ErrorFg)
		}
	}
	r.drawTextLine(0, y, w, textutil.Truncate(textutil.SanitizeName(text), w), style)
}
