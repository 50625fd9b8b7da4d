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


package rest

import (
	"bytes"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mlnoga/littleplanet/internal/raster"
	"github.com/mlnoga/littleplanet/internal/render"
)

var inFlight = render.NewSingleFlight()

func Serve(addr string) error {
	r := gin.Default()
	api := r.Group("/api")
	{
		v1 := api.Group("/v1")
		{
			v1.GET("/ping", getPing)
			v1.POST("/render", postRender)
		}
	}
	return r.Run(addr)
}

func getPing(c *gin.Context) {
	c.JSON(200, gin.H{
		"message": "pong",
	})
}

type postRenderArgs struct {
	OffsetX float32 `form:"offsetX,default=0.5"`
	OffsetY float32 `form:"offsetY,default=0.5"`
	RotX    float32 `form:"rotX,default=0"`
	RotY    float32 `form:"rotY,default=0"`
	RotZ    float32 `form:"rotZ,default=0"`
	Scale   float32 `form:"scale,default=1.5"`
	Size    int32   `form:"size,default=600"`
	Gamma   float32 `form:"gamma,default=1"`
	Chroma  float32 `form:"chroma,default=1"`
	Quality int     `form:"quality,default=95"`
	Format  string  `form:"format,default=png"`
}

// Renders the uploaded image, or the built-in test pattern if none given,
// and responds with the encoded canvas. A second request arriving while a
// render is in flight is rejected with 429, not queued
func postRender(c *gin.Context) {
	var args postRenderArgs
	if err := c.ShouldBind(&args); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if args.Format != "png" && args.Format != "jpg" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "format must be png or jpg"})
		return
	}

	var src *raster.Image
	if fileHeader, err := c.FormFile("image"); err == nil {
		file, err := fileHeader.Open()
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		defer file.Close()
		src, err = raster.NewImageFromReader(file)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
	} else {
		src = raster.NewTestPattern(1024, 512, 300, 42)
	}

	if !inFlight.TryAcquire() {
		c.JSON(http.StatusTooManyRequests, gin.H{"error": "a render is already in flight"})
		return
	}
	defer inFlight.Release()

	params := render.Params{
		OffsetX: args.OffsetX,
		OffsetY: args.OffsetY,
		RotX:    args.RotX,
		RotY:    args.RotY,
		RotZ:    args.RotZ,
		Scale:   args.Scale,
		Width:   args.Size,
		Height:  args.Size,
		Gamma:   args.Gamma,
		Chroma:  args.Chroma,
	}
	ctx := render.NewContext(gin.DefaultWriter)
	res, err := params.Apply(ctx, src)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	buf := &bytes.Buffer{}
	if args.Format == "jpg" {
		err = res.WriteJPG(buf, args.Quality)
	} else {
		err = res.WritePNG(buf)
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	contentType := "image/png"
	if args.Format == "jpg" {
		contentType = "image/jpeg"
	}
	c.Data(http.StatusOK, contentType, buf.Bytes())
}
