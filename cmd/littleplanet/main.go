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


package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"runtime/pprof"
	"strings"
	"time"

	"github.com/klauspost/cpuid"
	"github.com/pbnjay/memory"

	"github.com/mlnoga/littleplanet/internal/raster"
	"github.com/mlnoga/littleplanet/internal/render"
	"github.com/mlnoga/littleplanet/internal/rest"
)

const version = "0.1.0"

var totalMiBs = memory.TotalMemory() / 1024 / 1024

var cpuprofile = flag.String("cpuprofile", "", "write cpu profile to `file`")
var memprofile = flag.String("memprofile", "", "write memory profile to `file`")

var out     = flag.String("out", "out.png", "save output PNG to `file`")
var jpg     = flag.String("jpg", "", "additionally save output as JPEG to `file`. `%auto` replaces suffix of output file with .jpg")
var quality = flag.Int("quality", 95, "JPEG quality in [1,100]")

var offX  = flag.Float64("offX", 0.5, "horizontal offset of the canvas center in the sampling window, 0.5=centered")
var offY  = flag.Float64("offY", 0.5, "vertical offset of the canvas center in the sampling window, 0.5=centered")
var rotX  = flag.Float64("rotX", 0, "rotation about the X axis in radians")
var rotY  = flag.Float64("rotY", 0, "rotation about the Y axis in radians")
var rotZ  = flag.Float64("rotZ", 0, "rotation about the Z axis in radians")
var scale = flag.Float64("scale", 1.5, "projection sphere radius as a multiple of min(canvas size)/10, must be positive")
var size  = flag.Int64("size", 600, "output canvas width and height in pixels")

var gamma  = flag.Float64("gamma", 1, "lightness gamma applied after rendering, 1=no op")
var chroma = flag.Float64("chroma", 1, "chroma multiplier applied after rendering, 1=no op")

var pattern = flag.Int64("pattern", 300, "number of stars in the synthetic test pattern used when no input image is given")

var httpAddr = flag.String("http", ":8080", "listen address for the serve command")

func main() {
	logWriter := os.Stdout
	start := time.Now()
	flag.Usage = func() {
		fmt.Fprintf(logWriter, `Littleplanet Copyright (c) 2024 Markus L. Noga
This program comes with ABSOLUTELY NO WARRANTY.
This is free software, and you are welcome to redistribute it under certain conditions.
Refer to https://www.gnu.org/licenses/gpl-3.0.en.html for details.

Usage: %s [-flag value] (render|serve|legal|version) [img.png]

Commands:
  render  Render the little planet projection of the input image (default).
          Renders the built-in test pattern if no input image is given
  serve   Start the HTTP rendering service
  legal   Show license and attribution information
  version Show version information

Flags:
`, os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	// Enable CPU profiling if flagged
	if *cpuprofile != "" {
		f, err := os.Create(*cpuprofile)
		if err != nil {
			fmt.Fprintf(logWriter, "Could not create CPU profile: %s\n", err.Error())
			os.Exit(-1)
		}
		defer f.Close()
		if err := pprof.StartCPUProfile(f); err != nil {
			fmt.Fprintf(logWriter, "Could not start CPU profile: %s\n", err.Error())
			os.Exit(-1)
		}
		defer pprof.StopCPUProfile()
	}

	// First positional argument selects the command; a bare image filename
	// implies the default render command
	args := flag.Args()
	cmd, renderArgs := "render", args
	if len(args) > 0 {
		switch args[0] {
		case "render", "serve", "legal", "version", "help", "?":
			cmd, renderArgs = args[0], args[1:]
		}
	}

	switch cmd {
	case "render":
		fmt.Fprintf(logWriter, "Littleplanet v%s on %s with %d threads and %d MiB physical memory\n",
			version, cpuid.CPU.BrandName, runtime.GOMAXPROCS(0), totalMiBs)
		if err := runRender(renderArgs, logWriter); err != nil {
			fmt.Fprintf(logWriter, "error: %s\n", err.Error())
			os.Exit(-1)
		}
		fmt.Fprintf(logWriter, "Done after %v\n", time.Since(start))

	case "serve":
		fmt.Fprintf(logWriter, "Littleplanet v%s serving on %s\n", version, *httpAddr)
		if err := rest.Serve(*httpAddr); err != nil {
			fmt.Fprintf(logWriter, "error: %s\n", err.Error())
			os.Exit(-1)
		}

	case "legal":
		fmt.Fprintf(logWriter, "%s\n", legal)

	case "version":
		fmt.Fprintf(logWriter, "Littleplanet v%s\n", version)

	case "help", "?":
		flag.Usage()
	}

	// Store memory profile if flagged
	if *memprofile != "" {
		f, err := os.Create(*memprofile)
		if err != nil {
			fmt.Fprintf(logWriter, "Could not create memory profile: %s\n", err.Error())
			os.Exit(-1)
		}
		defer f.Close()
		runtime.GC()
		if err := pprof.WriteHeapProfile(f); err != nil {
			fmt.Fprintf(logWriter, "Could not write memory profile: %s\n", err.Error())
			os.Exit(-1)
		}
	}
}

func runRender(args []string, logWriter *os.File) error {
	var src *raster.Image
	var err error
	if len(args) > 0 {
		fmt.Fprintf(logWriter, "Reading source image %s\n", args[0])
		src, err = raster.NewImageFromFile(args[0])
		if err != nil {
			return err
		}
	} else {
		fmt.Fprintf(logWriter, "No input image given, rendering test pattern with %d stars\n", *pattern)
		src = raster.NewTestPattern(1024, 512, int(*pattern), 42)
	}

	params := render.Params{
		OffsetX: float32(*offX),
		OffsetY: float32(*offY),
		RotX:    float32(*rotX),
		RotY:    float32(*rotY),
		RotZ:    float32(*rotZ),
		Scale:   float32(*scale),
		Width:   int32(*size),
		Height:  int32(*size),
		Gamma:   float32(*gamma),
		Chroma:  float32(*chroma),
	}
	res, err := params.Apply(render.NewContext(logWriter), src)
	if err != nil {
		return err
	}

	fmt.Fprintf(logWriter, "Writing %s\n", *out)
	if err := res.WritePNGToFile(*out); err != nil {
		return err
	}

	jpgName := *jpg
	if jpgName == "%auto" {
		jpgName = strings.TrimSuffix(*out, filepath.Ext(*out)) + ".jpg"
	}
	if jpgName != "" {
		fmt.Fprintf(logWriter, "Writing %s\n", jpgName)
		if err := res.WriteJPGToFile(jpgName, *quality); err != nil {
			return err
		}
	}
	return nil
}
