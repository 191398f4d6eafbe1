package ingest

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"os/user"
	"path/filepath"
	"strconv"

	"github.com/datagovau/spatial-ingestor/internal/pkg/application/converters"
	"github.com/datagovau/spatial-ingestor/internal/pkg/application/crs"
	"github.com/datagovau/spatial-ingestor/internal/pkg/domain"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/logging"
)

// loadGeoTIFF downloads a GeoTIFF (bare or zipped), reprojects it and builds
// the tile pyramid the map server serves it from. Files over the configured
// threshold are reduced to a single bit of depth first so the pyramid stays
// manageable.
func (ing *Ingestor) loadGeoTIFF(ctx context.Context, res *domain.Resource, table, scratch string) (string, error) {
	log := logging.GetFromContext(ctx)
	log.Debug().Msgf("loading geotiff from %s", res.URL)

	if hasAnySuffix(res.URL, "tif", "tiff") {
		if err := ing.download(ctx, res.URL, filepath.Join(scratch, "input.tiff")); err != nil {
			return "", err
		}
	} else {
		archive := filepath.Join(scratch, "input.zip")
		if err := ing.download(ctx, res.URL, archive); err != nil {
			return "", err
		}
		if err := unzipFlat(archive, scratch); err != nil {
			return "", err
		}
	}

	src, ok := findFirst(scratch, ".tif", ".tiff")
	if !ok {
		return "", fmt.Errorf("no tiff file found in %s", res.URL)
	}

	large, err := fileLargerThan(src, ing.cfg.LargeFileThreshold)
	if err != nil {
		return "", err
	}

	if large {
		reduced := filepath.Join(scratch, table+"_temp.tiff")
		if err := ing.raster.Translate(ctx, src, reduced); err != nil {
			return "", err
		}
		src = reduced
	}

	warped := filepath.Join(scratch, table+".tiff")
	err = ing.raster.Warp(ctx, src, warped, converters.WarpParams{
		SRS:         crs.Default,
		Compression: compressionFor(large),
		OneBit:      large,
	})
	if err != nil {
		return "", err
	}

	if err := ing.buildPyramid(ctx, warped, table, large); err != nil {
		return "", err
	}

	return crs.Default, nil
}

// loadArcGrid downloads a zipped ArcGrid coverage and converts it to a tile
// pyramid. The grid directory is warped as a whole; the size check runs on
// the intermediate GeoTIFF since the grid itself has no single file size.
func (ing *Ingestor) loadArcGrid(ctx context.Context, res *domain.Resource, table, scratch string) (string, error) {
	log := logging.GetFromContext(ctx)
	log.Debug().Msgf("loading arcgrid from %s", res.URL)

	archive := filepath.Join(scratch, "input.zip")
	if err := ing.download(ctx, res.URL, archive); err != nil {
		return "", err
	}
	if err := unzipFlat(archive, scratch); err != nil {
		return "", err
	}

	intermediate := filepath.Join(scratch, table+"_temp1.tiff")
	err := ing.raster.Warp(ctx, scratch, intermediate, converters.WarpParams{
		SRS:         crs.Default,
		Compression: converters.CompressionPackbits,
	})
	if err != nil {
		return "", err
	}

	large, err := fileLargerThan(intermediate, ing.cfg.LargeFileThreshold)
	if err != nil {
		return "", err
	}

	src := intermediate
	if large {
		reduced := filepath.Join(scratch, table+"_temp2.tiff")
		if err := ing.raster.Translate(ctx, intermediate, reduced); err != nil {
			return "", err
		}
		src = reduced
	}

	warped := filepath.Join(scratch, table+".tiff")
	err = ing.raster.Warp(ctx, src, warped, converters.WarpParams{
		SRS:         crs.Default,
		Compression: compressionFor(large),
		OneBit:      large,
	})
	if err != nil {
		return "", err
	}

	if err := ing.buildPyramid(ctx, warped, table, large); err != nil {
		return "", err
	}

	return crs.Default, nil
}

func compressionFor(oneBit bool) string {
	if oneBit {
		return converters.CompressionCCITT
	}
	return converters.CompressionPackbits
}

// buildPyramid retiles the warped raster into the map server's data
// directory and hands ownership of the tiles to the map server's OS user.
func (ing *Ingestor) buildPyramid(ctx context.Context, warped, table string, oneBit bool) error {
	dir := ing.cfg.RasterDir(table)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}

	err := ing.raster.Retile(ctx, warped, dir, converters.RetileParams{
		Levels:      3,
		TileSize:    1024,
		Compression: compressionFor(oneBit),
		OneBit:      oneBit,
	})
	if err != nil {
		return err
	}

	return ing.publishTiles(ctx, dir)
}

// publishTiles chowns the pyramid to the configured raster owner. An empty
// owner skips the handoff, which is the norm when the map server runs in a
// container and reads the tiles over a shared volume.
func (ing *Ingestor) publishTiles(ctx context.Context, dir string) error {
	if ing.cfg.RasterOwner == "" {
		return nil
	}

	owner, err := user.Lookup(ing.cfg.RasterOwner)
	if err != nil {
		return fmt.Errorf("unknown raster owner %s: %w", ing.cfg.RasterOwner, err)
	}

	uid, err := strconv.Atoi(owner.Uid)
	if err != nil {
		return err
	}
	gid, err := strconv.Atoi(owner.Gid)
	if err != nil {
		return err
	}

	logger := logging.GetFromContext(ctx)
	logger.Debug().Msgf("handing %s over to %s", dir, ing.cfg.RasterOwner)

	return filepath.WalkDir(dir, func(path string, _ fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		return os.Chown(path, uid, gid)
	})
}
