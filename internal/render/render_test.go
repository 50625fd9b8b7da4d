// Copyright (C) 2024 Markus L. Noga
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.


package render

import (
	"io"
	"testing"

	"github.com/mlnoga/littleplanet/internal/project"
	"github.com/mlnoga/littleplanet/internal/raster"
)

func testContext(maxThreads int) *Context {
	c := NewContext(io.Discard)
	c.MaxThreads = maxThreads
	return c
}

// Rendering must be byte identical no matter how the row workers are scheduled
func TestRenderDeterministic(t *testing.T) {
	src := raster.NewTestPattern(64, 32, 30, 7)
	rot := project.NewRotationFromEuler(0.3, 0.8, 1.4)
	proj, err := project.NewProjection(src.Width, src.Height, 48, 48, project.Vec2{X: 0.4, Y: 0.6}, rot, 1.5)
	if err != nil {
		t.Fatalf("NewProjection failed: %s", err.Error())
	}

	serial, err := Render(testContext(1), src, proj, 48, 48)
	if err != nil {
		t.Fatalf("serial render failed: %s", err.Error())
	}
	parallel, err := Render(testContext(8), src, proj, 48, 48)
	if err != nil {
		t.Fatalf("parallel render failed: %s", err.Error())
	}
	if !raster.EqualImage(serial, parallel) {
		t.Errorf("serial and parallel renders differ")
	}
}

// A uniform source must produce a uniform canvas, clamped sampling can only
// ever return the one color present
func TestRenderUniformSource(t *testing.T) {
	src := raster.NewImage(4, 4, nil)
	src.Fill(255, 0, 0)
	proj, err := project.NewProjection(4, 4, 4, 4, project.Vec2{X: 0.5, Y: 0.5}, project.IdentityRotation(), 20)
	if err != nil {
		t.Fatalf("NewProjection failed: %s", err.Error())
	}
	res, err := Render(testContext(4), src, proj, 4, 4)
	if err != nil {
		t.Fatalf("render failed: %s", err.Error())
	}
	for y := int32(0); y < 4; y++ {
		for x := int32(0); x < 4; x++ {
			if r, g, b := res.At(x, y); r != 255 || g != 0 || b != 0 {
				t.Errorf("canvas at (%d,%d)=(%d,%d,%d); want (255,0,0)", x, y, r, g, b)
			}
		}
	}
}

func TestRenderRejectsBadInput(t *testing.T) {
	src := raster.NewTestPattern(16, 16, 5, 1)
	proj, err := project.NewProjection(16, 16, 8, 8, project.Vec2{X: 0.5, Y: 0.5}, project.IdentityRotation(), 1)
	if err != nil {
		t.Fatalf("NewProjection failed: %s", err.Error())
	}
	if _, err := Render(testContext(1), nil, proj, 8, 8); err == nil {
		t.Errorf("nil source accepted; want error")
	}
	if _, err := Render(testContext(1), src, nil, 8, 8); err == nil {
		t.Errorf("nil projection accepted; want error")
	}
	if _, err := Render(testContext(1), src, proj, 0, 8); err == nil {
		t.Errorf("zero canvas width accepted; want error")
	}
	if _, err := Render(testContext(1), src, proj, 8, -1); err == nil {
		t.Errorf("negative canvas height accepted; want error")
	}
}

func TestParamsApply(t *testing.T) {
	src := raster.NewTestPattern(128, 64, 50, 3)
	params := NewParamsDefaults()
	params.Width, params.Height = 32, 24
	res, err := params.Apply(testContext(2), src)
	if err != nil {
		t.Fatalf("Apply failed: %s", err.Error())
	}
	if res.Width != 32 || res.Height != 24 {
		t.Errorf("canvas dimensions %dx%d; want 32x24", res.Width, res.Height)
	}
}

func TestParamsApplyRejectsBadScale(t *testing.T) {
	src := raster.NewTestPattern(16, 16, 5, 1)
	params := NewParamsDefaults()
	params.Scale = -2
	if _, err := params.Apply(testContext(1), src); err == nil {
		t.Errorf("negative scale accepted; want error")
	}
}
