package parallel

// minBandRows is the smallest band worth handing to another goroutine.
const minBandRows = 16

// Band is a half-open range of rows [Y0, Y1).
type Band struct {
	Y0, Y1 int
}

// SplitRows divides height rows into at most n contiguous bands of nearly
// equal size. Bands never have fewer than minBandRows rows unless height
// itself is smaller. The bands cover [0, height) exactly once, in order.
func SplitRows(height, n int) []Band {
	if height <= 0 {
		return nil
	}
	n = min(max(n, 1), max(height/minBandRows, 1))

	bands := make([]Band, 0, n)
	base, extra := height/n, height%n
	y := 0
	for i := range n {
		rows := base
		if i < extra {
			rows++
		}
		bands = append(bands, Band{Y0: y, Y1: y + rows})
		y += rows
	}
	return bands
}

// ForRows calls fn once per band of [0, height) and waits for completion.
// With a nil pool fn runs once over the whole range on the caller's
// goroutine.
func ForRows(p *WorkerPool, height int, fn func(y0, y1 int)) {
	if height <= 0 {
		return
	}
	if p.Workers() <= 1 {
		fn(0, height)
		return
	}

	bands := SplitRows(height, p.Workers())
	work := make([]func(), len(bands))
	for i, b := range bands {
		work[i] = func() { fn(b.Y0, b.Y1) }
	}
	p.ExecuteAll(work)
}
