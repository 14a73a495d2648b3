package texscale

// RowRange is a half-open span [Start, End) of target rows handled by one
// worker.
type RowRange struct {
	Start int
	End   int
}

// Len returns the number of rows in the range.
func (r RowRange) Len() int {
	return r.End - r.Start
}

// Partition splits height rows into contiguous ranges, one per worker.
//
// workers is clamped to [1, height]. Every range has height/workers rows,
// except the last which also takes the remainder. The result depends only
// on the two arguments.
// Returns nil if height is not positive.
func Partition(height, workers int) []RowRange {
	if height <= 0 {
		return nil
	}
	workers = max(1, min(workers, height))

	slice := height / workers
	ranges := make([]RowRange, workers)
	for i := 0; i < workers; i++ {
		ranges[i] = RowRange{Start: i * slice, End: (i + 1) * slice}
	}
	ranges[workers-1].End = height

	return ranges
}
