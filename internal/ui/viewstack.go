package ui

import (
	"errors"
	"fmt"
)

// ErrViewLimitExceeded is returned when adding a view past the configured cap.
var ErrViewLimitExceeded = errors.New("view limit exceeded")

// ViewSet is the ordered set of scene views. Order decides which layout
// slot a view gets. Views are only ever appended.
type ViewSet struct {
	views []SceneView
	limit int
}

// NewViewSet returns an empty set holding at most limit views.
func NewViewSet(limit int) *ViewSet {
	return &ViewSet{limit: limit}
}

// Add appends v. The set is unchanged when it is already full.
func (s *ViewSet) Add(v SceneView) error {
	if len(s.views) >= s.limit {
		return fmt.Errorf("add view %d: %w (max %d)", len(s.views)+1, ErrViewLimitExceeded, s.limit)
	}
	s.views = append(s.views, v)
	return nil
}

// Full reports whether Add would fail.
func (s *ViewSet) Full() bool {
	return len(s.views) >= s.limit
}

// At returns the i-th view, or nil when out of range.
func (s *ViewSet) At(i int) SceneView {
	if i < 0 || i >= len(s.views) {
		return nil
	}
	return s.views[i]
}

// All returns the views in order. The slice must not be modified.
func (s *ViewSet) All() []SceneView {
	return s.views
}

// Len returns the number of views.
func (s *ViewSet) Len() int {
	return len(s.views)
}
