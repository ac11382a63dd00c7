// Package render holds the differential half-block encoder that turns frame
// buffers into ANSI escape sequences.
package render

import (
	"bytes"
	"image"
	"strconv"
)

// quad is one straight-alpha RGBA pixel. The zero value doubles as the
// "no color set" sentinel tracked for SGR state.
type quad [4]uint8

const (
	sgrReset = "\x1b[0m"
	sgrFg    = "\x1b[38;2;"
	sgrBg    = "\x1b[48;2;"

	glyphUpper = "▀"
	glyphLower = "▄"
	glyphFull  = "█"

	// Worst case bytes for one painted cell (bg and fg SGR plus a glyph),
	// used with the per-row reset to size the output buffer up front.
	cellWorst = len(sgrFg+"255;255;255m"+sgrBg+"255;255;255m") + len(glyphLower)
)

func pixAt(img *image.NRGBA, x, y int) quad {
	i := img.PixOffset(img.Rect.Min.X+x, img.Rect.Min.Y+y)
	return quad{img.Pix[i], img.Pix[i+1], img.Pix[i+2], img.Pix[i+3]}
}

func writeColor(out *bytes.Buffer, intro string, q quad) {
	out.WriteString(intro)
	out.WriteString(strconv.Itoa(int(q[0])))
	out.WriteByte(';')
	out.WriteString(strconv.Itoa(int(q[1])))
	out.WriteByte(';')
	out.WriteString(strconv.Itoa(int(q[2])))
	out.WriteByte('m')
}

func writeMove(out *bytes.Buffer, n int, dir byte) {
	out.WriteString("\x1b[")
	if n != 1 {
		out.WriteString(strconv.Itoa(n))
	}
	out.WriteByte(dir)
}

// moveCursor emits the relative cursor movement from (currX, currLineY) to
// (x, lineY), omitting the count when it is 1.
func moveCursor(out *bytes.Buffer, currX, currLineY, x, lineY int) {
	if x != currX {
		if x > currX {
			writeMove(out, x-currX, 'C')
		} else {
			writeMove(out, currX-x, 'D')
		}
	}
	if lineY != currLineY {
		if lineY > currLineY {
			writeMove(out, lineY-currLineY, 'B')
		} else {
			writeMove(out, currLineY-lineY, 'A')
		}
	}
}

// FrameDelta writes into out the ANSI sequence that repaints a terminal
// currently showing prev so that it shows curr, assuming the cursor sits at
// the top-left of the image area. Both buffers must have identical
// dimensions. out is reset on entry. Cells whose two pixels are bytewise
// unchanged are skipped with cursor movement; SGR state is tracked across
// cells so runs of similar columns emit bare glyphs.
//
// When fullWidth is set the rightmost column is assumed to sit on the
// terminal's last column, where (with auto-wrap disabled) painting does not
// advance the cursor.
func FrameDelta(prev, curr *image.NRGBA, alphaThreshold uint8, fullWidth bool, out *bytes.Buffer) {
	width := curr.Rect.Dx()
	height := curr.Rect.Dy()
	rowCount := (height + 1) / 2

	out.Reset()
	if rowCount == 0 || width == 0 {
		return
	}
	out.Grow((width*cellWorst+len(sgrReset))*rowCount + len(sgrReset))

	currLineY := 0
	currX := 0

	advance := func(x, lineY int) {
		if fullWidth && x+1 == width {
			currX = x
		} else {
			currX = x + 1
		}
		currLineY = lineY
	}

	for lineY := 0; lineY < rowCount; lineY++ {
		y := lineY * 2
		if y+1 == height {
			// Final odd pixel row: upper half blocks only, one tracked color.
			var prevColor quad
			for x := 0; x < width; x++ {
				color := pixAt(curr, x, y)
				if color == pixAt(prev, x, y) {
					continue
				}
				moveCursor(out, currX, currLineY, x, lineY)
				if color[3] < alphaThreshold {
					if prevColor[3] < alphaThreshold {
						out.WriteByte(' ')
					} else {
						out.WriteString(sgrReset)
						out.WriteByte(' ')
					}
				} else if color == prevColor {
					out.WriteString(glyphUpper)
				} else {
					writeColor(out, sgrFg, color)
					out.WriteString(glyphUpper)
				}
				prevColor = color
				advance(x, lineY)
			}
		} else {
			var prevFg, prevBg quad
			for x := 0; x < width; x++ {
				top := pixAt(curr, x, y)
				bottom := pixAt(curr, x, y+1)

				if top == pixAt(prev, x, y) && bottom == pixAt(prev, x, y+1) {
					continue
				}
				moveCursor(out, currX, currLineY, x, lineY)

				switch {
				case top == bottom:
					if top[3] < alphaThreshold {
						if prevBg[3] < alphaThreshold && prevFg[3] < alphaThreshold {
							out.WriteByte(' ')
						} else {
							out.WriteString(sgrReset)
							out.WriteByte(' ')
						}
					} else {
						writeColor(out, sgrFg, top)
						out.WriteString(glyphFull)
					}
					prevFg = top
					prevBg = top

				case top[3] < alphaThreshold && bottom[3] < alphaThreshold:
					if prevBg[3] < alphaThreshold && prevFg[3] < alphaThreshold {
						out.WriteByte(' ')
					} else {
						out.WriteString(sgrReset)
						out.WriteByte(' ')
					}
					prevFg = top
					prevBg = bottom

				case top[3] < alphaThreshold:
					out.WriteString(sgrReset)
					writeColor(out, sgrFg, bottom)
					out.WriteString(glyphLower)
					prevFg = bottom
					prevBg = top

				case bottom[3] < alphaThreshold:
					out.WriteString(sgrReset)
					writeColor(out, sgrFg, top)
					out.WriteString(glyphUpper)
					prevFg = top
					prevBg = bottom

				default:
					switch {
					case prevFg == bottom && prevBg == top:
						out.WriteString(glyphLower)
					case prevFg == top && prevBg == bottom:
						out.WriteString(glyphUpper)
					case prevFg == bottom:
						writeColor(out, sgrBg, top)
						out.WriteString(glyphLower)
						prevBg = top
					case prevFg == top:
						writeColor(out, sgrBg, bottom)
						out.WriteString(glyphUpper)
						prevBg = bottom
					case prevBg == top:
						writeColor(out, sgrFg, bottom)
						out.WriteString(glyphLower)
						prevFg = bottom
					case prevBg == bottom:
						writeColor(out, sgrFg, top)
						out.WriteString(glyphUpper)
						prevFg = top
					default:
						writeColor(out, sgrBg, top)
						writeColor(out, sgrFg, bottom)
						out.WriteString(glyphLower)
						prevFg = bottom
						prevBg = top
					}
				}
				advance(x, lineY)
			}
		}

		// Close the row's SGR run, but only if the cursor reached this row.
		if currLineY == lineY {
			out.WriteString(sgrReset)
		}
	}

	// Park the cursor on the bottom-right corner of the image area so the
	// caller's line terminator and save/restore handling stay predictable.
	if dx := width - currX; dx > 0 {
		writeMove(out, dx, 'C')
	}
	if dy := rowCount - 1 - currLineY; dy > 0 {
		writeMove(out, dy, 'B')
	}
}
