package converters

import (
	"context"
	"fmt"
	"os/exec"
	"strconv"
)

//go:generate moq -rm -out raster_mock.go . RasterConverter

// Compression strategies for warped rasters. Large files are reduced to a
// single bit of depth and compressed with CCITT Group 4; everything else
// keeps its depth and uses PACKBITS.
const (
	CompressionPackbits = "PACKBITS"
	CompressionCCITT    = "CCITTFAX4"
)

// WarpParams controls one gdalwarp reprojection.
type WarpParams struct {
	SRS         string
	Compression string
	OneBit      bool
}

// RetileParams controls one gdal_retile pyramid build.
type RetileParams struct {
	Levels      int
	TileSize    int
	Compression string
	OneBit      bool
}

// RasterConverter reprojects and tiles raster sources into the image
// pyramids the map server reads from disk.
type RasterConverter interface {
	// Translate reduces a raster to single-byte depth.
	Translate(ctx context.Context, src, dst string) error
	// Warp reprojects a raster into a tiled GeoTIFF.
	Warp(ctx context.Context, src, dst string, params WarpParams) error
	// Retile splits a warped raster into a tile pyramid under targetDir.
	Retile(ctx context.Context, src, targetDir string, params RetileParams) error
}

// RasterTools names the external executables backing the raster converter.
type RasterTools struct {
	Translate string
	Warp      string
	Retile    string
}

func (t RasterTools) withDefaults() RasterTools {
	if t.Translate == "" {
		t.Translate = "gdal_translate"
	}
	if t.Warp == "" {
		t.Warp = "gdalwarp"
	}
	if t.Retile == "" {
		t.Retile = "gdal_retile.py"
	}
	return t
}

func NewRasterConverter(tools RasterTools) RasterConverter {
	return &gdalConverter{tools: tools.withDefaults()}
}

type gdalConverter struct {
	tools RasterTools
}

func (c *gdalConverter) Translate(ctx context.Context, src, dst string) error {
	return run(ctx, c.tools.Translate, "-ot", "Byte", src, dst)
}

func (c *gdalConverter) Warp(ctx context.Context, src, dst string, params WarpParams) error {
	args := []string{
		"--config", "GDAL_CACHEMAX", "500",
		"-wm", "500",
		"-multi",
		"-t_srs", params.SRS,
		"-of", "GTiff",
		"-co", "TILED=YES",
		"-co", "TFW=YES",
		"-co", "BIGTIFF=YES",
		"-co", "COMPRESS=" + params.Compression,
	}
	if params.OneBit {
		args = append(args, "-co", "NBITS=1")
	}
	args = append(args, src, dst)

	return run(ctx, c.tools.Warp, args...)
}

func (c *gdalConverter) Retile(ctx context.Context, src, targetDir string, params RetileParams) error {
	size := strconv.Itoa(params.TileSize)
	args := []string{
		"-v",
		"-r", "near",
		"-levels", strconv.Itoa(params.Levels),
		"-ps", size, size,
		"-co", "TILED=YES",
		"-co", "COMPRESS=" + params.Compression,
	}
	if params.OneBit {
		args = append(args, "-co", "NBITS=1")
	}
	args = append(args, "-targetDir", targetDir, src)

	return run(ctx, c.tools.Retile, args...)
}

func run(ctx context.Context, executable string, args ...string) error {
	output, err := exec.CommandContext(ctx, executable, args...).CombinedOutput()
	if err != nil {
		return fmt.Errorf("%s failed: %w: %s", executable, err, tail(output))
	}
	return nil
}
