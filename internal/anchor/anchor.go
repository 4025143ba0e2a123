// Package anchor resolves marked regions of a rendered frame to cell-space
// rectangles.
//
// Marking happens while the host renders: Wrap brackets each line of a block
// with zero-width CSI sequences carrying the anchor ID. Once the whole frame
// is composed, Scan walks it line by line, measures the visible column of
// every marker and strips them again. Lipgloss and x/ansi treat the markers
// like any other escape sequence, so joins, padding and borders applied
// around a marked block do not disturb the measurement.
package anchor

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/charmbracelet/x/ansi"

	"github.com/alexisbeaulieu97/coachmark/internal/geometry"
)

// ID is an opaque handle tying a marked block to its resolved rectangle.
type ID uint32

const (
	kindStart = '1'
	kindEnd   = '2'
)

var markerPattern = regexp.MustCompile("\x1b\\[(\\d+);([12])z")

func startMarker(id ID) string { return fmt.Sprintf("\x1b[%d;%cz", id, kindStart) }
func endMarker(id ID) string   { return fmt.Sprintf("\x1b[%d;%cz", id, kindEnd) }

// Wrap marks every line of content with the anchor ID.
func Wrap(id ID, content string) string {
	if content == "" {
		return content
	}
	start, end := startMarker(id), endMarker(id)
	lines := strings.Split(content, "\n")
	for i, line := range lines {
		lines[i] = start + line + end
	}
	return strings.Join(lines, "\n")
}

// Strip removes all anchor markers from s.
func Strip(s string) string {
	if !strings.Contains(s, "\x1b[") {
		return s
	}
	return markerPattern.ReplaceAllString(s, "")
}

// Scan resolves every anchor present in frame and returns the frame with
// the markers removed. Anchors missing from the frame are absent from the
// map; callers treat that as "not laid out this pass".
func Scan(frame string) (string, map[ID]geometry.Rect) {
	rects := make(map[ID]geometry.Rect)
	if !strings.Contains(frame, "\x1b[") {
		return frame, rects
	}

	lines := strings.Split(frame, "\n")
	for row, line := range lines {
		matches := markerPattern.FindAllStringSubmatchIndex(line, -1)
		if len(matches) == 0 {
			continue
		}
		open := make(map[ID]int, len(matches)/2)
		for _, m := range matches {
			n, err := strconv.ParseUint(line[m[2]:m[3]], 10, 32)
			if err != nil {
				continue
			}
			id := ID(n)
			col := ansi.StringWidth(line[:m[0]])
			switch line[m[4]] {
			case kindStart:
				open[id] = col
			case kindEnd:
				startCol, ok := open[id]
				if !ok {
					continue
				}
				delete(open, id)
				seg := geometry.Rect{X: float64(startCol), Y: float64(row), W: float64(col - startCol), H: 1}
				rects[id] = rects[id].Union(seg)
			}
		}
		lines[row] = markerPattern.ReplaceAllString(line, "")
	}

	return strings.Join(lines, "\n"), rects
}
