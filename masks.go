package main

// rowSpan is the half-open vertex index range [start, end) of one grid row.
type rowSpan struct{ start, end int }

// workerRows collects the rows assigned to one worker goroutine.
type workerRows struct {
	rows []rowSpan
}

// assignRowSpans distributes grid rows across workers in round robin fashion.
func assignRowSpans(workerCount, rows, columns int) []workerRows {
	if workerCount < 1 {
		workerCount = 1
	}
	assigned := make([]workerRows, workerCount)
	for y := 0; y < rows; y++ {
		idx := y % workerCount
		assigned[idx].rows = append(assigned[idx].rows, rowSpan{start: y * columns, end: (y + 1) * columns})
	}
	return assigned
}
