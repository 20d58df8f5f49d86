package video

// barColor is a single color bar expressed in limited-range 8-bit YUV.
type barColor struct {
	y, u, v byte
}

// colorBars holds the classic 75% vertical bar colors in limited-range
// BT.601 YUV, left to right: white, yellow, cyan, green, magenta, red, blue.
var colorBars = []barColor{
	{180, 128, 128},
	{162, 44, 142},
	{131, 156, 44},
	{112, 72, 58},
	{84, 184, 198},
	{65, 100, 212},
	{35, 212, 114},
}

// ColorBars renders a vertical color bar test pattern into a new NV12 frame.
// The shift parameter rotates the bars horizontally by whole pixels, which
// gives animation loops a cheap way to produce visibly changing frames.
//
// Parameters:
//   - width: frame width in pixels (positive, even)
//   - height: frame height in pixels (positive, even)
//   - shift: horizontal rotation in pixels, any value (wrapped to width)
//
// Returns:
//   - *Frame: the generated frame with packed strides
func ColorBars(width, height, shift int) *Frame {
	f := NewFrame(width, height)

	shift %= width
	if shift < 0 {
		shift += width
	}

	barWidth := width / len(colorBars)
	if barWidth == 0 {
		barWidth = 1
	}

	for col := 0; col < width; col++ {
		bar := ((col + shift) / barWidth) % len(colorBars)
		c := colorBars[bar]

		for row := 0; row < height; row++ {
			f.Y[row*f.YStride+col] = c.y
		}
		if col%2 == 0 {
			for row := 0; row < f.ChromaHeight(); row++ {
				f.UV[row*f.UVStride+col] = c.u
				f.UV[row*f.UVStride+col+1] = c.v
			}
		}
	}

	return f
}
