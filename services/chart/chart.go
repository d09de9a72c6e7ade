// Package chart renders series as proportional horizontal bars.
package chart

import (
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
	"unicode/utf8"
)

// MinWidth keeps zero and near-zero bars visible.
const MinWidth = 0.05

// Point is one labelled value of a series.
type Point struct {
	Label string  `json:"label"`
	Value float64 `json:"value"`
}

// Bar is a Point with its width as a fraction of the track, in [MinWidth, 1].
type Bar struct {
	Label string  `json:"label"`
	Value float64 `json:"value"`
	Width float64 `json:"width"`
}

// Bars scales each value against max(1, largest value).
func Bars(series []Point) []Bar {
	scale := 1.0
	for _, p := range series {
		if p.Value > scale {
			scale = p.Value
		}
	}

	bars := make([]Bar, 0, len(series))
	for _, p := range series {
		bars = append(bars, Bar{Label: p.Label, Value: p.Value, Width: width(p.Value, scale)})
	}
	return bars
}

func width(v, scale float64) float64 {
	w := v / scale
	// NaN fails both comparisons and falls back to the floor.
	if !(w >= MinWidth) {
		return MinWidth
	}
	if w > 1 || math.IsInf(w, 1) {
		return 1
	}
	return w
}

// RenderText writes one line per bar: the label, a bar of trackWidth cells
// scaled by the bar width, and the value.
func RenderText(w io.Writer, bars []Bar, trackWidth int) error {
	if trackWidth < 1 {
		trackWidth = 1
	}
	labelWidth := 0
	for _, b := range bars {
		if n := utf8.RuneCountInString(b.Label); n > labelWidth {
			labelWidth = n
		}
	}

	for _, b := range bars {
		cells := int(math.Round(b.Width * float64(trackWidth)))
		if cells < 1 {
			cells = 1
		}
		pad := strings.Repeat(" ", labelWidth-utf8.RuneCountInString(b.Label))
		line := fmt.Sprintf("%s%s │%s%s %s\n",
			b.Label, pad,
			strings.Repeat("█", cells), strings.Repeat(" ", trackWidth-cells),
			strconv.FormatFloat(b.Value, 'f', -1, 64),
		)
		if _, err := io.WriteString(w, line); err != nil {
			return err
		}
	}
	return nil
}
