// Package views holds the HTML pages served to browsers.
package views

import (
	"fmt"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/Ko-stant/spider-field/internal/protocol"
)

var printer = message.NewPrinter(language.English)

// cellSize is the SVG viewBox unit per lattice step.
const cellSize = 10

// StatusLine is the human readable progress summary.
func StatusLine(snap protocol.Snapshot) string {
	total := int64(snap.FieldWidth) * int64(snap.FieldHeight)
	return printer.Sprintf("%s: %.1f%% of %d cells claimed, target %.0f%%, tick %d",
		snap.Status, snap.ClaimedPercent, total, snap.ClaimTarget, snap.Tick)
}

// FieldSVG draws the field as an inline SVG element.
func FieldSVG(snap protocol.Snapshot) string {
	var b strings.Builder
	w := int64(snap.FieldWidth) * cellSize
	h := int64(snap.FieldHeight) * cellSize
	fmt.Fprintf(&b, `<svg id="field" viewBox="-5 -5 %d %d" xmlns="http://www.w3.org/2000/svg">`, w+10, h+10)

	for _, p := range snap.Claimed {
		fmt.Fprintf(&b, `<polygon class="claimed" points="%s"/>`, svgPoints(p.Vertices))
	}
	fmt.Fprintf(&b, `<polygon class="free" points="%s"/>`, svgPoints(snap.Free.Vertices))
	if len(snap.Spider.Trail) > 1 {
		fmt.Fprintf(&b, `<polyline class="trail" points="%s"/>`, svgPoints(snap.Spider.Trail))
	}
	fmt.Fprintf(&b, `<circle class="snake" cx="%d" cy="%d" r="4"/>`,
		int64(snap.Snake.Position.X)*cellSize, int64(snap.Snake.Position.Y)*cellSize)
	fmt.Fprintf(&b, `<circle class="spider" cx="%d" cy="%d" r="3"/>`,
		int64(snap.Spider.Position.X)*cellSize, int64(snap.Spider.Position.Y)*cellSize)

	b.WriteString(`</svg>`)
	return b.String()
}

func svgPoints(points []protocol.PointLite) string {
	parts := make([]string, len(points))
	for i, p := range points {
		parts[i] = fmt.Sprintf("%d,%d", int64(p.X)*cellSize, int64(p.Y)*cellSize)
	}
	return strings.Join(parts, " ")
}
