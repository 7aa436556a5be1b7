package ui

import (
	"context"
	"fmt"

	"ordview/internal/attr"
	"ordview/internal/decomp"
	"ordview/internal/geom"
	"ordview/internal/surface"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// Controller owns the plotting area and the menu beside it. It is the single
// entry point after a size change: Resize lays out the scene views and
// cascades the remaining menu height to every attribute controller.
//
// A Controller is driven from one goroutine (the Bubble Tea update loop)
// and does no locking.
type Controller struct {
	cfg      Config
	surface  *surface.Surface
	views    *ViewSet
	data     decomp.Dict
	registry *Registry
	loop     *RenderLoop
	newView  ViewFactory
	tracer   trace.Tracer

	width, height int
	plot, menu    geom.Rect
	viewports     []geom.Rect
	panelHeight   int
}

// Option customizes a Controller.
type Option func(*Controller)

// WithViewFactory replaces the scene view constructor used by AddView.
func WithViewFactory(f ViewFactory) Option {
	return func(c *Controller) { c.newView = f }
}

// NewController builds a controller over the shared data dictionary and
// adds the first scene view, which takes the whole plotting area.
func NewController(cfg Config, data decomp.Dict, opts ...Option) (*Controller, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("new controller: %w", err)
	}
	s := surface.New(0, 0)
	s.SetBackground(cfg.Background)
	c := &Controller{
		cfg:      cfg,
		surface:  s,
		views:    NewViewSet(cfg.MaxViews),
		data:     data,
		registry: NewRegistry(),
		loop:     NewRenderLoop(s),
		newView:  NewPlotView,
		tracer:   otel.Tracer("ordview/ui"),
	}
	for _, opt := range opts {
		opt(c)
	}
	if err := c.AddView(); err != nil {
		return nil, fmt.Errorf("new controller: %w", err)
	}
	return c, nil
}

// AddView appends a scene view bound to the shared surface and data, then
// re-runs Resize with the last known size so the view has geometry before
// the next frame. Fails with ErrViewLimitExceeded when the set is full.
func (c *Controller) AddView() error {
	if c.views.Full() {
		return fmt.Errorf("add view: %w", ErrViewLimitExceeded)
	}
	if err := c.views.Add(c.newView(c.surface, c.data)); err != nil {
		return err
	}
	return c.Resize(c.width, c.height)
}

// Resize lays out everything for a host of width x height cells.
// Calling it twice with the same size produces the same geometry.
func (c *Controller) Resize(width, height int) error {
	if width < 0 || height < 0 {
		return fmt.Errorf("resize %dx%d: %w", width, height, geom.ErrInvalidSize)
	}
	_, span := c.tracer.Start(context.Background(), "controller.resize",
		trace.WithAttributes(
			attribute.Int("width", width),
			attribute.Int("height", height),
			attribute.Int("views", c.views.Len()),
		))
	defer span.End()

	c.width, c.height = width, height

	menuWidth := min(c.cfg.MenuWidth, width)
	plotWidth := width - menuWidth
	c.plot = geom.Rect{W: plotWidth, H: height}
	c.menu = geom.Rect{X: plotWidth, W: menuWidth, H: height}

	rects, err := geom.Partition(plotWidth, height, c.views.Len(), c.cfg.SceneViewScale)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return fmt.Errorf("resize: %w", err)
	}
	for i, v := range c.views.All() {
		r := rects[i]
		v.Resize(r.X, r.Y, r.W, r.H)
	}
	c.viewports = rects
	c.surface.SetSize(plotWidth, height)

	// The tab bar sits above the panels and can wrap, so it is measured at
	// the current menu width before the panels get what is left.
	tabBar := TabBarHeight(c.registry.Tabs(), menuWidth)
	c.registry.SetMenu(menuWidth, height, tabBar)
	c.panelHeight = max(int(float64(height)*c.cfg.GridScale)-tabBar, 0)
	c.registry.ResizeAll(c.panelHeight)
	return nil
}

// Render draws one frame of every scene view.
func (c *Controller) Render() error {
	return c.loop.Render(c.views.All())
}

// RegisterControllerTab builds the controller for kind over the shared data
// and adds its tab.
func (c *Controller) RegisterControllerTab(kind attr.Kind, factory attr.Factory) (attr.Controller, error) {
	return c.registry.Register(kind, factory, c.data)
}

// RegisterDefaultTabs registers the built-in controller of every kind and
// activates the first tab.
func (c *Controller) RegisterDefaultTabs() error {
	for _, kind := range attr.Kinds {
		f, err := attr.DefaultFactory(kind)
		if err != nil {
			return err
		}
		if _, err := c.RegisterControllerTab(kind, f); err != nil {
			return err
		}
	}
	return c.ActivateTab(0)
}

// ActivateTab shows tab i and re-runs the full layout. Panels that were
// hidden during earlier passes only get a real width once visible.
func (c *Controller) ActivateTab(i int) error {
	if err := c.registry.Activate(i); err != nil {
		return err
	}
	return c.Resize(c.width, c.height)
}

// Size returns the last size passed to Resize.
func (c *Controller) Size() (width, height int) {
	return c.width, c.height
}

// PlotArea returns the region given to scene views.
func (c *Controller) PlotArea() geom.Rect { return c.plot }

// MenuArea returns the region given to the tab menu.
func (c *Controller) MenuArea() geom.Rect { return c.menu }

// PanelHeight returns the height last handed to controllers.
func (c *Controller) PanelHeight() int { return c.panelHeight }

// Viewports returns the rectangles applied by the last Resize, one per view.
func (c *Controller) Viewports() []geom.Rect { return c.viewports }

// Views returns the scene views in layout order.
func (c *Controller) Views() []SceneView { return c.views.All() }

// Registry returns the tab/controller registry.
func (c *Controller) Registry() *Registry { return c.registry }

// Surface returns the shared drawing surface.
func (c *Controller) Surface() *surface.Surface { return c.surface }

// Frames returns the number of frames rendered.
func (c *Controller) Frames() int { return c.loop.Frames() }

// Config returns the controller's configuration.
func (c *Controller) Config() Config { return c.cfg }
