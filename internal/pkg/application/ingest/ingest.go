// Package ingest orchestrates the pipeline that turns a catalog dataset's
// spatial source file into a geometry table or tile pyramid, a published map
// server layer and a set of companion resources on the dataset.
package ingest

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/datagovau/spatial-ingestor/internal/pkg/application/converters"
	"github.com/datagovau/spatial-ingestor/internal/pkg/application/formats"
	"github.com/datagovau/spatial-ingestor/internal/pkg/domain"
	"github.com/datagovau/spatial-ingestor/internal/pkg/infrastructure/catalog"
	"github.com/datagovau/spatial-ingestor/internal/pkg/infrastructure/config"
	"github.com/datagovau/spatial-ingestor/internal/pkg/infrastructure/geoserver"
	"github.com/datagovau/spatial-ingestor/internal/pkg/infrastructure/repositories/database"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/logging"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/tracing"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.opentelemetry.io/otel"
	"golang.org/x/exp/slices"
)

var tracer = otel.Tracer("spatial-ingestor/ingest")

// ErrSkipped marks a dataset that was deliberately left alone. Callers that
// sweep the whole catalog count these separately from failures.
var ErrSkipped = errors.New("dataset skipped")

type Ingestor struct {
	catalog   catalog.Catalog
	mapserver geoserver.Client
	store     database.SpatialStore
	vector    converters.GeometryConverter
	raster    converters.RasterConverter
	cfg       *config.Config

	httpClient http.Client
}

func New(
	cat catalog.Catalog, mapserver geoserver.Client, store database.SpatialStore,
	vector converters.GeometryConverter, raster converters.RasterConverter,
	cfg *config.Config,
) *Ingestor {
	return &Ingestor{
		catalog:   cat,
		mapserver: mapserver,
		store:     store,
		vector:    vector,
		raster:    raster,
		cfg:       cfg,
		httpClient: http.Client{
			Transport: otelhttp.NewTransport(http.DefaultTransport),
			Timeout:   15 * time.Minute,
		},
	}
}

// tableName derives the geometry table for a dataset. The table survives
// across runs so the name must be a pure function of the dataset id.
func tableName(datasetID string) string {
	return "ckan_" + strings.ReplaceAll(datasetID, "-", "_")
}

// MaySkip decides whether a dataset is eligible for ingestion. It returns
// the dataset together with a human readable reason when it should be
// skipped; an empty reason means go ahead. With force set, the final check
// (no edits since the ingestor's own last update) is bypassed.
func (ing *Ingestor) MaySkip(ctx context.Context, datasetID string, force bool) (*domain.Dataset, string, error) {
	ds, err := ing.catalog.PackageShow(ctx, datasetID)
	if err != nil {
		if errors.Is(err, catalog.ErrNotFound) {
			return nil, "dataset does not exist", nil
		}
		return nil, "", err
	}

	if ds.Organisation == nil || ds.Organisation.Name == "" {
		return ds, "dataset has no organisation", nil
	}
	if slices.Contains(ing.cfg.OrgBlacklist, ds.Organisation.Name) {
		return ds, fmt.Sprintf("organisation %s is blacklisted", ds.Organisation.Name), nil
	}
	if slices.Contains(ing.cfg.PkgBlacklist, ds.Name) {
		return ds, "dataset is blacklisted", nil
	}
	if ds.HarvestSourceID != "" || ds.SpatialHarvester {
		return ds, "harvested datasets are not eligible", nil
	}
	if ds.Private {
		return ds, "private datasets are not eligible", nil
	}
	if ds.State != "active" {
		return ds, fmt.Sprintf("dataset state is %s", ds.State), nil
	}

	grouped := formats.Group(ds, ing.cfg.SourceFormats)
	if grouped.Empty() {
		return ds, "no spatial source files detected", nil
	}
	if grouped.Ambiguous() {
		return ds, "multiple candidate files of the same format", nil
	}

	if !force {
		activities, err := ing.catalog.PackageActivityList(ctx, ds.ID)
		if err != nil {
			return ds, "", err
		}
		if len(activities) > 0 {
			bot, err := ing.catalog.UserShow(ctx, ing.cfg.BotName)
			if err != nil {
				return ds, "", err
			}
			if activities[0].UserID == bot.ID {
				return ds, "not updated since last ingestion", nil
			}
		}
	}

	return ds, "", nil
}

// Ingest runs the full pipeline for one dataset. Ineligible datasets return
// an error wrapping ErrSkipped. Failures after the old assets have been
// cleared trigger a best effort cleanup so no half-published layer remains.
func (ing *Ingestor) Ingest(ctx context.Context, datasetID string, force bool) error {
	var err error
	ctx, span := tracer.Start(ctx, "ingest-dataset")
	defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

	log := logging.GetFromContext(ctx)

	ds, reason, err := ing.MaySkip(ctx, datasetID, force)
	if err != nil {
		return err
	}
	if reason != "" {
		log.Info().Msgf("skipping %s: %s", datasetID, reason)
		err = fmt.Errorf("%w: %s", ErrSkipped, reason)
		return err
	}

	log.Info().Msgf("ingesting %s", ds.ID)

	grouped := formats.Group(ds, ing.cfg.SourceFormats)
	format, source := grouped.Source()
	table := tableName(ds.ID)

	scratch, err := os.MkdirTemp("", "spatial-ingest-")
	if err != nil {
		return err
	}
	defer os.RemoveAll(scratch)

	if err = ing.store.ClearTable(ctx, table); err != nil {
		return err
	}
	os.RemoveAll(ing.cfg.RasterDir(table))

	var srs string

	switch format {
	case formats.Shapefile:
		srs, err = ing.loadShapefile(ctx, source, table, scratch)
	case formats.KML:
		srs, err = ing.loadKML(ctx, source, table, scratch)
	case formats.Tab:
		srs, err = ing.loadTab(ctx, source, table, scratch)
	case formats.GeoTIFF:
		srs, err = ing.loadGeoTIFF(ctx, source, table, scratch)
	case formats.ArcGrid:
		srs, err = ing.loadArcGrid(ctx, source, table, scratch)
	default:
		err = fmt.Errorf("no loader for format %s", format)
	}
	if err != nil {
		ing.cleanupAfterFailure(ctx, ds)
		return err
	}

	workspace := geoserver.IntoWorkspace(ds.Name)

	bbox, err := ing.publishLayer(ctx, ds, grouped, workspace, table, scratch, srs, format)
	if err != nil {
		ing.cleanupAfterFailure(ctx, ds)
		return err
	}

	if err = ing.deleteMapServerResources(ctx, ds); err != nil {
		return err
	}

	// re-read so the companion resource check sees the current formats
	if ds, err = ing.catalog.PackageShow(ctx, ds.ID); err != nil {
		return err
	}

	err = ing.createResourcesFromFormats(ctx, ds, workspace, table, bbox, format.IsRaster())
	return err
}

// publishLayer recreates the dataset's workspace on the map server and
// publishes the freshly loaded table or pyramid as a layer. For vector
// layers it returns the native bounding box, used later when building the
// companion resource URLs.
func (ing *Ingestor) publishLayer(
	ctx context.Context, ds *domain.Dataset, grouped formats.GroupedResources,
	workspace, table, scratch, srs string, format formats.Format,
) (*domain.BoundingBox, error) {
	isRaster := format.IsRaster()

	exists, err := ing.mapserver.CheckWorkspace(ctx, workspace)
	if err != nil {
		return nil, err
	}
	if exists {
		if err := ing.mapserver.DropWorkspace(ctx, workspace); err != nil {
			return nil, err
		}
	}
	if err := ing.mapserver.CreateWorkspace(ctx, workspace); err != nil {
		return nil, err
	}

	storeName := workspace + "ds"
	if isRaster {
		storeName = workspace + "cs"
	}

	storeCfg := geoserver.StoreConfig{IsCoverage: isRaster, PyramidName: table}
	if err := ing.mapserver.CreateStore(ctx, workspace, storeName, storeCfg); err != nil {
		return nil, err
	}

	layer := geoserver.Layer{
		Name:       table,
		NativeName: table,
		Title:      ds.Title,
		SRS:        srs,
		IsCoverage: isRaster,
	}

	var bbox *domain.BoundingBox

	if !isRaster {
		if format == formats.KML {
			ing.store.DropKMLAttributes(ctx, table)
		}

		extent, err := ing.store.Extent(ctx, table)
		if err != nil {
			return nil, err
		}

		if extent.LatLon.MinX < -180 || extent.LatLon.MaxX > 180 {
			return nil, fmt.Errorf("%s has invalid automatic projection %s", ds.Title, srs)
		}

		native := extent.Native
		native.CRS = srs
		latlon := extent.LatLon
		latlon.CRS = "EPSG:4326"
		layer.NativeBBox = &native
		layer.LatLonBBox = &latlon
		bbox = &native

		if ds.Spatial != extent.GeoJSON {
			ds.Spatial = extent.GeoJSON
			if err := ing.catalog.PackageUpdate(ctx, ds); err != nil {
				return nil, err
			}
		}
	}

	if err := ing.mapserver.CreateLayer(ctx, workspace, storeName, layer); err != nil {
		return nil, err
	}

	ing.applyStyles(ctx, grouped.SLD, scratch, workspace, table)

	return bbox, nil
}

// CleanAssets removes everything a previous ingestion of the dataset left
// behind: the geometry table, the tile pyramid, the map server workspace and
// the companion resources. With skipGrids set, datasets that carry a raster
// source are left untouched, protecting manually ingested grids.
func (ing *Ingestor) CleanAssets(ctx context.Context, datasetID string, skipGrids bool) error {
	var err error
	ctx, span := tracer.Start(ctx, "clean-assets")
	defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

	ds, err := ing.catalog.PackageShow(ctx, datasetID)
	if err != nil {
		if errors.Is(err, catalog.ErrNotFound) {
			err = nil
			return nil
		}
		return err
	}

	if skipGrids && hasGridSource(ds) {
		return nil
	}

	table := tableName(ds.ID)
	if err = ing.store.ClearTable(ctx, table); err != nil {
		return err
	}
	os.RemoveAll(ing.cfg.RasterDir(table))

	workspace := geoserver.IntoWorkspace(ds.Name)
	exists, err := ing.mapserver.CheckWorkspace(ctx, workspace)
	if err != nil {
		return err
	}
	if exists {
		if err = ing.mapserver.DropWorkspace(ctx, workspace); err != nil {
			return err
		}
	}

	err = ing.deleteMapServerResources(ctx, ds)
	return err
}

func hasGridSource(ds *domain.Dataset) bool {
	for _, res := range ds.Resources {
		f := strings.ToLower(res.Format)
		if f == "grid" || f == "geotif" {
			return true
		}
	}
	return false
}

func (ing *Ingestor) cleanupAfterFailure(ctx context.Context, ds *domain.Dataset) {
	if err := ing.CleanAssets(ctx, ds.ID, false); err != nil {
		logger := logging.GetFromContext(ctx)
		logger.Error().Err(err).Msgf("cleanup of %s failed", ds.ID)
	}
}
