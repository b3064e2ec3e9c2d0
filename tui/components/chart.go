package components

import (
	"fmt"
	"math"
	"strings"
)

// chartBlocks are eighth-height blocks; index 0 is empty, 8 is a full cell.
var chartBlocks = []rune{' ', '▁', '▂', '▃', '▄', '▅', '▆', '▇', '█'}

// lossMark is drawn on the baseline for a probe that got no reply.
const lossMark = '·'

const chartLabelWidth = 8 // "%7s " RTT label

// RenderLatencyChart draws round-trip times in milliseconds, oldest first,
// as a column chart scaled from zero to the largest RTT. A zero sample is a
// lost probe and shows only a dot on the baseline. width and height include
// the axis labels and the title row.
func RenderLatencyChart(data []float64, width, height int, title string) string {
	width = max(width, 10)
	height = max(height, 4)
	cols := max(width-chartLabelWidth, 2)
	rows := max(height-1, 2)

	if len(data) > cols {
		data = data[len(data)-cols:]
	}

	top := 0.0
	for _, v := range data {
		top = math.Max(top, v)
	}
	if top == 0 {
		top = 1
	}

	lines := make([]string, 0, rows+1)
	lines = append(lines, centerText(title, width))

	pad := strings.Repeat(" ", cols-len(data))
	for row := rows - 1; row >= 0; row-- {
		lo := top * float64(row) / float64(rows)
		hi := top * float64(row+1) / float64(rows)

		label := strings.Repeat(" ", chartLabelWidth)
		if len(data) > 0 && (row == rows-1 || row == 0) {
			label = fmt.Sprintf("%7s ", FormatRTT(hi))
		}

		var b strings.Builder
		b.WriteString(label)
		b.WriteString(pad)
		for _, v := range data {
			b.WriteRune(chartCell(v, lo, hi, row == 0))
		}
		lines = append(lines, b.String())
	}
	return strings.Join(lines, "\n")
}

// chartCell picks the glyph for value v in the cell spanning lo..hi.
func chartCell(v, lo, hi float64, baseline bool) rune {
	switch {
	case v <= 0:
		if baseline {
			return lossMark
		}
		return ' '
	case v <= lo:
		return ' '
	case v >= hi:
		return chartBlocks[8]
	}
	idx := int(math.Round((v - lo) / (hi - lo) * 8))
	return chartBlocks[min(max(idx, 1), 8)]
}

// centerText centers s within the given width, padding with spaces.
func centerText(s string, width int) string {
	if len(s) >= width {
		return s[:width]
	}
	left := (width - len(s)) / 2
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", width-len(s)-left)
}
