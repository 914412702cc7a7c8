package sorter

import (
	"image"
	"image/color"
	"sort"

	"github.com/remeh/sizedwaitgroup"

	"github.com/pixkit/pixsort/luma"
)

// lessFunc is a strict less-than over two pixels, produced once per
// run by luma.Mode.Comparator.
type lessFunc func(a, b color.NRGBA) bool

// Sort reorders the pixels of img in place: one pass stably sorts
// every column top-to-bottom, the other every row left-to-right, in
// the order chosen by dir. The mode decides the brightness key and
// whether light pixels collect at the start or the end of each line.
// Returns the same handle it was given.
//
// Validation is fail-fast: an invalid mode or direction returns
// luma.ErrInvalidMode or ErrInvalidDirection before any pixel moves.
// Empty and 1×1 images are returned unchanged.
//
// Complexity: O(W·H·(log W + log H)) time.
func Sort(img *image.NRGBA, mode luma.Mode, dir Direction, opts Options) (*image.NRGBA, error) {
	if img == nil {
		return nil, ErrNilImage
	}
	if !mode.Valid() {
		return nil, luma.ErrInvalidMode
	}
	if !dir.Valid() {
		return nil, ErrInvalidDirection
	}

	b := img.Bounds()
	if b.Dx() == 0 || b.Dy() == 0 || (b.Dx() == 1 && b.Dy() == 1) {
		return img, nil
	}

	workers := opts.Parallelism
	if workers < 1 {
		workers = 1
	}
	less := mode.Comparator()

	// The two passes are strictly sequential: the second must observe
	// the fully completed output of the first.
	for _, ax := range dir.passes() {
		switch ax {
		case axisColumns:
			sortColumns(img, less, workers)
		case axisRows:
			sortRows(img, less, workers)
		}
	}

	return img, nil
}

// sortRows stably sorts every row of img left-to-right, fanning the
// independent rows across at most workers goroutines.
func sortRows(img *image.NRGBA, less lessFunc, workers int) {
	b := img.Bounds()
	if b.Dx() < 2 {
		return // single-pixel lines are already sorted
	}

	swg := sizedwaitgroup.New(workers)
	for y := b.Min.Y; y < b.Max.Y; y++ {
		swg.Add()
		go func(y int) {
			defer swg.Done()
			sortRow(img, y, less)
		}(y)
	}
	swg.Wait()
}

// sortColumns stably sorts every column of img top-to-bottom, fanning
// the independent columns across at most workers goroutines.
func sortColumns(img *image.NRGBA, less lessFunc, workers int) {
	b := img.Bounds()
	if b.Dy() < 2 {
		return
	}

	swg := sizedwaitgroup.New(workers)
	for x := b.Min.X; x < b.Max.X; x++ {
		swg.Add()
		go func(x int) {
			defer swg.Done()
			sortColumn(img, x, less)
		}(x)
	}
	swg.Wait()
}

// sortRow gathers row y, stably sorts it, and scatters it back into
// the same positions.
func sortRow(img *image.NRGBA, y int, less lessFunc) {
	b := img.Bounds()
	line := make([]color.NRGBA, b.Dx())
	for i := range line {
		line[i] = img.NRGBAAt(b.Min.X+i, y)
	}

	sort.SliceStable(line, func(i, j int) bool { return less(line[i], line[j]) })

	for i, px := range line {
		img.SetNRGBA(b.Min.X+i, y, px)
	}
}

// sortColumn gathers column x, stably sorts it, and scatters it back.
func sortColumn(img *image.NRGBA, x int, less lessFunc) {
	b := img.Bounds()
	line := make([]color.NRGBA, b.Dy())
	for i := range line {
		line[i] = img.NRGBAAt(x, b.Min.Y+i)
	}

	sort.SliceStable(line, func(i, j int) bool { return less(line[i], line[j]) })

	for i, px := range line {
		img.SetNRGBA(x, b.Min.Y+i, px)
	}
}
