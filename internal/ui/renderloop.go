package ui

import (
	"context"
	"errors"
	"fmt"

	"ordview/internal/surface"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// ErrRenderInProgress is returned when a frame starts before the previous one finished.
var ErrRenderInProgress = errors.New("render already in progress")

// RenderLoop draws one frame: clear the shared surface once, then render
// every view in order. The first failing view aborts the frame.
type RenderLoop struct {
	surface   *surface.Surface
	tracer    trace.Tracer
	rendering bool
	frames    int
}

// NewRenderLoop returns a loop drawing into s.
func NewRenderLoop(s *surface.Surface) *RenderLoop {
	return &RenderLoop{
		surface: s,
		tracer:  otel.Tracer("ordview/ui"),
	}
}

// Render draws a frame of views.
func (l *RenderLoop) Render(views []SceneView) error {
	if l.rendering {
		return ErrRenderInProgress
	}
	l.rendering = true
	defer func() { l.rendering = false }()

	_, span := l.tracer.Start(context.Background(), "render.frame",
		trace.WithAttributes(attribute.Int("views", len(views))))
	defer span.End()

	l.surface.SetViewport(l.surface.Bounds())
	l.surface.Clear()
	for i, v := range views {
		if err := v.Render(); err != nil {
			err = fmt.Errorf("render view %d: %w", i, err)
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
			return err
		}
	}
	l.frames++
	return nil
}

// Frames returns the number of frames completed without error.
func (l *RenderLoop) Frames() int {
	return l.frames
}
