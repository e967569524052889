package splitpanel

import (
	"github.com/charmbracelet/lipgloss"
)

const (
	ScrollThumbChar = "█"
	ScrollTrackChar = "│"
)

// BuildScrollbar returns one cell per visible row. The thumb is sized in
// proportion to viewHeight/totalItems and positioned by scrollOffset; when
// everything fits the column is blank.
func BuildScrollbar(viewHeight, totalItems, scrollOffset int, activeColor, trackColor lipgloss.Color, focused bool) []string {
	scrollbar := make([]string, viewHeight)

	if totalItems <= viewHeight {
		for i := range scrollbar {
			scrollbar[i] = " "
		}
		return scrollbar
	}

	thumbSize := thumbLength(viewHeight, totalItems)
	thumbPos := thumbOffset(viewHeight, totalItems, scrollOffset, thumbSize)

	thumbColor := trackColor
	if focused {
		thumbColor = activeColor
	}
	thumbStyle := lipgloss.NewStyle().Foreground(thumbColor)
	trackStyle := lipgloss.NewStyle().Foreground(trackColor)

	for i := range viewHeight {
		if i >= thumbPos && i < thumbPos+thumbSize {
			scrollbar[i] = thumbStyle.Render(ScrollThumbChar)
		} else {
			scrollbar[i] = trackStyle.Render(ScrollTrackChar)
		}
	}

	return scrollbar
}

// thumbLength keeps at least one row and leaves two rows of track.
func thumbLength(viewHeight, totalItems int) int {
	size := max((viewHeight*viewHeight)/totalItems, 1)
	return min(size, max(viewHeight-2, 1))
}

func thumbOffset(viewHeight, totalItems, scrollOffset, thumbSize int) int {
	maxScroll := max(totalItems-viewHeight, 1)
	trackSpace := max(viewHeight-thumbSize, 0)

	pos := 0
	if trackSpace > 0 {
		pos = (scrollOffset * trackSpace) / maxScroll
	}
	return min(max(pos, 0), trackSpace)
}
