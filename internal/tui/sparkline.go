package tui

// sparklineChars are the eight block heights of a sparkline.
var sparklineChars = [8]rune{'▁', '▂', '▃', '▄', '▅', '▆', '▇', '█'}

// RingBuffer is a fixed-capacity circular buffer for float64 samples.
type RingBuffer struct {
	data  []float64
	head  int
	count int
}

// NewRingBuffer creates a ring buffer with the given capacity.
func NewRingBuffer(capacity int) *RingBuffer {
	if capacity <= 0 {
		capacity = 1
	}
	return &RingBuffer{data: make([]float64, capacity)}
}

// Push adds a sample, overwriting the oldest if full.
func (r *RingBuffer) Push(v float64) {
	r.data[r.head] = v
	r.head = (r.head + 1) % len(r.data)
	if r.count < len(r.data) {
		r.count++
	}
}

// Len returns the number of valid samples.
func (r *RingBuffer) Len() int { return r.count }

// Cap returns the buffer capacity.
func (r *RingBuffer) Cap() int { return len(r.data) }

// Last returns the most recent sample, or 0 if empty.
func (r *RingBuffer) Last() float64 {
	if r.count == 0 {
		return 0
	}
	idx := r.head - 1
	if idx < 0 {
		idx = len(r.data) - 1
	}
	return r.data[idx]
}

// Slice returns samples in chronological order (oldest first).
func (r *RingBuffer) Slice() []float64 {
	if r.count == 0 {
		return nil
	}
	result := make([]float64, r.count)
	start := r.head - r.count
	if start < 0 {
		start += len(r.data)
	}
	for i := range r.count {
		result[i] = r.data[(start+i)%len(r.data)]
	}
	return result
}

// Resize changes the capacity, preserving the most recent samples that fit.
func (r *RingBuffer) Resize(newCap int) {
	if newCap <= 0 {
		newCap = 1
	}
	if newCap == len(r.data) {
		return
	}
	old := r.Slice()
	r.data = make([]float64, newCap)
	r.head = 0
	r.count = 0
	start := 0
	if len(old) > newCap {
		start = len(old) - newCap
	}
	for _, v := range old[start:] {
		r.Push(v)
	}
}

// Reset clears all samples.
func (r *RingBuffer) Reset() {
	r.head = 0
	r.count = 0
}

// scaleTo maps values onto 0..100 against ceiling. A ceiling <= 0 scales
// against the largest value.
func scaleTo(values []float64, ceiling float64) []float64 {
	if ceiling <= 0 {
		for _, v := range values {
			ceiling = max(ceiling, v)
		}
	}
	scaled := make([]float64, len(values))
	if ceiling <= 0 {
		return scaled
	}
	for i, v := range values {
		scaled[i] = min(max(v/ceiling*100, 0), 100)
	}
	return scaled
}

// RenderSparkline renders values as Unicode blocks scaled against ceiling
// (the largest value when ceiling <= 0).
func RenderSparkline(values []float64, ceiling float64) string {
	if len(values) == 0 {
		return ""
	}
	runes := make([]rune, len(values))
	for i, v := range scaleTo(values, ceiling) {
		runes[i] = sparklineChars[min(int(v/100*7), 7)]
	}
	return string(runes)
}

// brailleDots holds the dot bits of a braille cell by (column, row). The
// glyph is U+2800 plus the sum of its lit dots.
var brailleDots = [2][4]rune{
	{0x01, 0x02, 0x04, 0x40},
	{0x08, 0x10, 0x20, 0x80},
}

// RenderBrailleChart plots values as a braille dot chart of rows lines and
// width cells, newest sample on the right. Values are scaled as in
// RenderSparkline.
func RenderBrailleChart(values []float64, width, rows int, ceiling float64) []string {
	if width <= 0 || rows <= 0 || len(values) == 0 {
		return nil
	}

	dotRows, dotCols := rows*4, width*2
	grid := make([][]rune, rows)
	for r := range grid {
		grid[r] = make([]rune, width)
		for c := range grid[r] {
			grid[r][c] = 0x2800
		}
	}

	scaled := scaleTo(values, ceiling)
	if len(scaled) > dotCols {
		scaled = scaled[len(scaled)-dotCols:]
	}
	offset := dotCols - len(scaled)
	for i, v := range scaled {
		dotCol := offset + i
		dotRow := min(max(dotRows-1-int(v/100*float64(dotRows-1)), 0), dotRows-1)
		grid[dotRow/4][dotCol/2] |= brailleDots[dotCol%2][dotRow%4]
	}

	lines := make([]string, rows)
	for r := range grid {
		lines[r] = string(grid[r])
	}
	return lines
}
