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
	"errors"
	"fmt"
	"io"
	"runtime"

	"github.com/pbnjay/memory"

	"github.com/mlnoga/littleplanet/internal/project"
	"github.com/mlnoga/littleplanet/internal/raster"
)

// An execution context for render passes
type Context struct {
	Log        io.Writer // Log output target
	MaxThreads int       // Concurrency limit for row workers
	MemoryMB   int       // memory.TotalMemory()/1024/1024
}

func NewContext(log io.Writer) *Context {
	return &Context{
		Log:        log,
		MaxThreads: runtime.GOMAXPROCS(0),
		MemoryMB:   int(memory.TotalMemory() / 1024 / 1024),
	}
}

// Renders the source image through the given projection into a new canvas of
// the given dimensions. Canvas rows are computed by parallel goroutines,
// bounded by a semaphore; the source and the projection are shared read-only,
// and each worker writes only its own rows. Output is deterministic
// regardless of scheduling
func Render(c *Context, src *raster.Image, proj *project.Projection, width, height int32) (res *raster.Image, err error) {
	if src == nil || src.Width < 1 || src.Height < 1 {
		return nil, errors.New("missing or empty source image")
	}
	if proj == nil {
		return nil, errors.New("missing projection")
	}
	if width < 1 || height < 1 {
		return nil, fmt.Errorf("invalid canvas dimensions %dx%d", width, height)
	}

	res = raster.NewImage(width, height, nil)
	maxThreads := c.MaxThreads
	if maxThreads < 1 {
		maxThreads = 1
	}
	sem := make(chan bool, maxThreads)
	for y := int32(0); y < height; y++ {
		sem <- true
		go func(y int32) {
			defer func() { <-sem }()
			row := res.Row(y)
			for x := int32(0); x < width; x++ {
				p := proj.Project(project.Vec2{X: float32(x), Y: float32(y)})
				r, g, b := src.Sample(p.X, p.Y)
				row[3*x], row[3*x+1], row[3*x+2] = r, g, b
			}
		}(y)
	}
	for i := 0; i < cap(sem); i++ { // wait for goroutines to finish
		sem <- true
	}
	return res, nil
}

// User-facing parameters for one render pass
type Params struct {
	OffsetX float32 `json:"offsetX"` // Fractional canvas shift, 0.5 is neutral
	OffsetY float32 `json:"offsetY"`
	RotX    float32 `json:"rotX"` // Euler angles in radians
	RotY    float32 `json:"rotY"`
	RotZ    float32 `json:"rotZ"`
	Scale   float32 `json:"scale"`  // Projection sphere radius multiplier
	Width   int32   `json:"width"`  // Canvas width in pixels
	Height  int32   `json:"height"` // Canvas height in pixels
	Gamma   float32 `json:"gamma"`  // Lightness gamma for post adjustment, 1=no op
	Chroma  float32 `json:"chroma"` // Chroma multiplier for post adjustment, 1=no op
}

func NewParamsDefaults() *Params {
	return &Params{
		OffsetX: 0.5,
		OffsetY: 0.5,
		RotX:    0,
		RotY:    0,
		RotZ:    0,
		Scale:   1.5,
		Width:   600,
		Height:  600,
		Gamma:   1,
		Chroma:  1,
	}
}

// Runs a full render pass for the given parameters: build the projection
// model, rasterize, then apply the optional chroma adjustment
func (p *Params) Apply(c *Context, src *raster.Image) (res *raster.Image, err error) {
	if src == nil {
		return nil, errors.New("missing source image")
	}
	rot := project.NewRotationFromEuler(p.RotX, p.RotY, p.RotZ)
	proj, err := project.NewProjection(src.Width, src.Height, p.Width, p.Height,
		project.Vec2{X: p.OffsetX, Y: p.OffsetY}, rot, p.Scale)
	if err != nil {
		return nil, err
	}
	fmt.Fprintf(c.Log, "Rendering %dx%d canvas from %dx%d source with radius %.1f on %d threads\n",
		p.Width, p.Height, src.Width, src.Height, proj.Radius, c.MaxThreads)
	res, err = Render(c, src, proj, p.Width, p.Height)
	if err != nil {
		return nil, err
	}
	res.AdjustChroma(p.Gamma, p.Chroma)
	return res, nil
}
