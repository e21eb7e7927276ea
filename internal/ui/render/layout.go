package render

// Row budget outside the entry lists: header, pane title, status, footer.
const (
	headerRows      = 1
	paneTitleRows   = 1
	statusRows      = 1
	footerRows      = 1
	maxYankedRows   = 3
	separatorWidth  = 1
	minDualWidth    = 2*4 + separatorWidth
	listStartRow    = headerRows + paneTitleRows
	chromeRows      = headerRows + paneTitleRows + statusRows + footerRows
	yankedTitleRows = 1
)

type paneBox struct {
	x     int
	width int
}

type layoutMetrics struct {
	panes      []paneBox
	separatorX int // -1 without a separator
	listTop    int
	listRows   int
	yankedTop  int
	yankedRows int // entry rows under the yanked title, 0 hides the panel
	statusY    int
	footerY    int
}

// yankedPanelRows returns the list rows kept for the yanked panel, leaving
// at least one entry row visible.
func yankedPanelRows(h, yankedCount int) int {
	if yankedCount <= 0 {
		return 0
	}
	rows := yankedCount
	if rows > maxYankedRows {
		rows = maxYankedRows
	}
	for rows > 0 && h-chromeRows-yankedTitleRows-rows < 1 {
		rows--
	}
	return rows
}

func computeLayout(w, h, paneCount, yankedCount int) layoutMetrics {
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}

	m := layoutMetrics{separatorX: -1, listTop: listStartRow}

	if paneCount >= 2 && w >= minDualWidth {
		left := (w - separatorWidth) / 2
		m.separatorX = left
		m.panes = []paneBox{
			{x: 0, width: left},
			{x: left + separatorWidth, width: w - left - separatorWidth},
		}
	} else if paneCount >= 1 {
		m.panes = []paneBox{{x: 0, width: w}}
	}

	m.yankedRows = yankedPanelRows(h, yankedCount)
	reserved := chromeRows
	if m.yankedRows > 0 {
		reserved += yankedTitleRows + m.yankedRows
	}
	m.listRows = h - reserved
	if m.listRows < 0 {
		m.listRows = 0
	}

	m.yankedTop = m.listTop + m.listRows
	m.statusY = h - statusRows - footerRows
	m.footerY = h - footerRows
	return m
}

// ListCapacity reports how many entries a pane shows on a screen h rows tall.
func ListCapacity(h, yankedCount int) int {
	return computeLayout(0, h, 1, yankedCount).listRows
}
