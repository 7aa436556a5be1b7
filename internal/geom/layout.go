package geom

import (
	"errors"
	"fmt"
)

// DefaultSceneViewScale splits the plotting area in halves.
const DefaultSceneViewScale = 0.5

// MaxViews is the largest number of views Layout can place.
const MaxViews = 4

var (
	// ErrUnsupportedViewCount is returned for view counts outside 1..MaxViews.
	ErrUnsupportedViewCount = errors.New("unsupported view count")
	// ErrInvalidSize is returned for negative widths or heights.
	ErrInvalidSize = errors.New("invalid size")
)

// Layout partitions a plotWidth x plotHeight area anchored at the origin
// among viewCount views using DefaultSceneViewScale.
//
//	1: [ 0 ]      2: [ 0 | 1 ]     3: [ 0 | 1 ]     4: [ 0 | 1 ]
//	                                  [   2   ]        [ 2 | 3 ]
func Layout(plotWidth, plotHeight, viewCount int) ([]Rect, error) {
	return Partition(plotWidth, plotHeight, viewCount, DefaultSceneViewScale)
}

// Partition is Layout with an explicit split scale in (0, 1].
// The split column and row are floor(scale*size); the second column or row
// takes the remainder so the rectangles tile the area with no gap.
func Partition(plotWidth, plotHeight, viewCount int, scale float64) ([]Rect, error) {
	if plotWidth < 0 || plotHeight < 0 {
		return nil, fmt.Errorf("layout %dx%d: %w", plotWidth, plotHeight, ErrInvalidSize)
	}
	if scale <= 0 || scale > 1 {
		return nil, fmt.Errorf("layout scale %v out of range (0, 1]", scale)
	}

	sw := int(scale * float64(plotWidth))
	sh := int(scale * float64(plotHeight))
	rw := plotWidth - sw
	rh := plotHeight - sh

	switch viewCount {
	case 1:
		return []Rect{{0, 0, plotWidth, plotHeight}}, nil
	case 2:
		return []Rect{
			{0, 0, sw, plotHeight},
			{sw, 0, rw, plotHeight},
		}, nil
	case 3:
		return []Rect{
			{0, 0, sw, sh},
			{sw, 0, rw, sh},
			{0, sh, plotWidth, rh},
		}, nil
	case 4:
		return []Rect{
			{0, 0, sw, sh},
			{sw, 0, rw, sh},
			{0, sh, sw, rh},
			{sw, sh, rw, rh},
		}, nil
	default:
		return nil, fmt.Errorf("layout %d views: %w", viewCount, ErrUnsupportedViewCount)
	}
}
