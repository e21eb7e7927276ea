package render

import (
	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

// cachedRuneWidth returns the cell width of ru. Combining marks report -1
// so drawTextLine can attach them to the previous cell.
func (r *Renderer) cachedRuneWidth(ru rune) int {
	if ru < 128 {
		if width := r.runeWidthCache[ru]; width != 0 {
			return width - 1
		}
		width := runewidth.RuneWidth(ru)
		r.runeWidthCache[ru] = width + 1
		return width
	}

	if width, ok := r.runeWidthWide[ru]; ok {
		return width
	}
	width := runewidth.RuneWidth(ru)
	if width == 0 {
		width = -1
	}
	r.runeWidthWide[ru] = width
	return width
}

// drawTextLine draws text from startX, never past maxWidth cells, and
// returns the first unused column.
func (r *Renderer) drawTextLine(startX, y, maxWidth int, text string, style tcell.Style) int {
	x := startX
	runes := []rune(text)
	i := 0

	for i < len(runes) {
		mainc := runes[i]
		w := r.cachedRuneWidth(mainc)
		if w < 0 {
			w = 0
		}
		if x-startX+w > maxWidth {
			break
		}
		i++

		var combc []rune
		for i < len(runes) && r.cachedRuneWidth(runes[i]) < 0 {
			combc = append(combc, runes[i])
			i++
		}

		r.screen.SetContent(x, y, mainc, combc, style)
		x += w
	}

	return x
}

// fill paints cells [startX, endX) of row y with blanks.
func (r *Renderer) fill(startX, endX, y int, style tcell.Style) {
	for x := startX; x < endX; x++ {
		r.screen.SetContent(x, y, ' ', nil, style)
	}
}
