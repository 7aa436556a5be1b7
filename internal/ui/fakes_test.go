package ui

import (
	"testing"

	"ordview/internal/attr"
	"ordview/internal/decomp"
	"ordview/internal/geom"
	"ordview/internal/surface"
)

type fakeView struct {
	name     string
	rect     geom.Rect
	resizes  int
	renders  int
	err      error
	onRender func()
	log      *[]string
}

func (f *fakeView) Resize(x, y, w, h int) {
	f.rect = geom.Rect{X: x, Y: y, W: w, H: h}
	f.resizes++
}

func (f *fakeView) Render() error {
	f.renders++
	if f.log != nil {
		*f.log = append(*f.log, f.name)
	}
	if f.onRender != nil {
		f.onRender()
	}
	return f.err
}

type fakeController struct {
	id, title string
	w, h      int
	resizes   int
}

func (f *fakeController) Identifier() string { return f.id }
func (f *fakeController) Title() string      { return f.title }
func (f *fakeController) Resize(w, h int) {
	f.w, f.h = w, h
	f.resizes++
}

func fakeFactory(title string) attr.Factory {
	return func(id string, _ decomp.Dict) (attr.Controller, error) {
		return &fakeController{id: id, title: title}, nil
	}
}

// newTestController returns a controller whose views are fakes, collected
// in creation order.
func newTestController(t *testing.T, cfg Config) (*Controller, *[]*fakeView) {
	t.Helper()
	var created []*fakeView
	c, err := NewController(cfg, decomp.Dict{}, WithViewFactory(func(*surface.Surface, decomp.Dict) SceneView {
		v := &fakeView{}
		created = append(created, v)
		return v
	}))
	if err != nil {
		t.Fatalf("NewController: %v", err)
	}
	return c, &created
}
