// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package main

import (
	"errors"
	"fmt"
	"image"
	"image/draw"
	"os"
	"path/filepath"
	"sync"

	"github.com/gogpu/gg"
	"github.com/gogpu/xrframe/frame"
	"github.com/gogpu/xrframe/graphics"
	"github.com/gogpu/xrframe/xr/sim"
)

// metersToPixels scales the view's lateral offset into screen space so the
// two eyes see a visible parallax.
const metersToPixels = 2000

// scene draws one gg canvas per eye and copies it into the swapchain image.
type scene struct {
	mu   sync.Mutex
	eyes map[int]*gg.Context
}

func newScene() *scene {
	return &scene{eyes: make(map[int]*gg.Context)}
}

// canvas returns the eye's canvas, resized to the target.
func (s *scene) canvas(index, w, h int) *gg.Context {
	s.mu.Lock()
	defer s.mu.Unlock()
	dc := s.eyes[index]
	if dc == nil || dc.Width() != w || dc.Height() != h {
		if dc != nil {
			_ = dc.Close()
		}
		dc = gg.NewContext(w, h)
		s.eyes[index] = dc
	}
	return dc
}

func (s *scene) RenderView(v frame.ViewContext) error {
	t := v.Target
	w, h := t.Width(), t.Height()
	dc := s.canvas(v.Index, w, h)

	dc.ClearWithColor(gg.RGB(0.05, 0.07, 0.12))

	// Horizon follows the eye height above the stage floor.
	eyeHeight := float64(v.Pose.Position.Y - v.StagePose.Position.Y)
	horizon := float64(h)/2 + eyeHeight*40
	dc.SetRGB(0.12, 0.16, 0.1)
	dc.DrawRectangle(0, horizon, float64(w), float64(h)-horizon)
	if err := dc.Fill(); err != nil {
		return fmt.Errorf("draw ground: %w", err)
	}

	// A sphere straight ahead; each eye sees it shifted by its own offset.
	cx := float64(w)/2 - float64(v.Pose.Position.X)*metersToPixels
	cy := float64(h) / 2
	dc.SetRGB(0.9, 0.4, 0.2)
	dc.DrawCircle(cx, cy, float64(min(w, h))/8)
	if err := dc.Fill(); err != nil {
		return fmt.Errorf("draw sphere: %w", err)
	}

	dc.SetRGB(1, 1, 1)
	dc.SetLineWidth(2)
	dc.DrawLine(float64(w)/2, cy-20, float64(w)/2, cy+20)
	dc.DrawLine(float64(w)/2-20, cy, float64(w)/2+20, cy)
	if err := dc.Stroke(); err != nil {
		return fmt.Errorf("draw crosshair: %w", err)
	}

	if d, ok := t.Depth().(*graphics.SoftwareDepth); ok {
		d.Clear(1)
	}

	pix := sim.Pixmap(t.Color())
	if pix == nil {
		return errors.New("swapchain image is not CPU backed")
	}
	dst := pix.Image()
	draw.Draw(dst, dst.Bounds(), dc.Image(), image.Point{}, draw.Src)
	return nil
}

// SaveEyes writes the last rendered frame of every eye to dir.
func (s *scene) SaveEyes(dir string) error {
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, dc := range s.eyes {
		path := filepath.Join(dir, fmt.Sprintf("eye%d.png", i))
		if err := dc.SavePNG(path); err != nil {
			return fmt.Errorf("save eye %d: %w", i, err)
		}
	}
	return nil
}

// Close releases the canvases.
func (s *scene) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, dc := range s.eyes {
		_ = dc.Close()
		delete(s.eyes, i)
	}
}
