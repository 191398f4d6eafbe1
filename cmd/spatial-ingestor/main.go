package main

import (
	"context"
	"errors"
	"flag"
	"os"

	"github.com/datagovau/spatial-ingestor/internal/pkg/application/converters"
	"github.com/datagovau/spatial-ingestor/internal/pkg/application/ingest"
	"github.com/datagovau/spatial-ingestor/internal/pkg/infrastructure/catalog"
	"github.com/datagovau/spatial-ingestor/internal/pkg/infrastructure/config"
	"github.com/datagovau/spatial-ingestor/internal/pkg/infrastructure/geoserver"
	"github.com/datagovau/spatial-ingestor/internal/pkg/infrastructure/repositories/database"
	"github.com/diwise/service-chassis/pkg/infrastructure/buildinfo"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y"
	"github.com/rs/zerolog"
)

var settingsFileName string
var force bool
var skipGrids bool

func main() {
	serviceName := "spatial-ingestor"
	serviceVersion := buildinfo.SourceVersion()

	ctx, log, cleanup := o11y.Init(context.Background(), serviceName, serviceVersion)
	defer cleanup()

	log.Info().Msgf("Starting up %s ...", serviceName)

	flag.StringVar(&settingsFileName, "settings", "/opt/spatial-ingestor/settings.yaml", "The ingestor settings file")
	flag.BoolVar(&force, "force", false, "Ingest datasets even when they were last edited by the ingestor")
	flag.BoolVar(&skipGrids, "skip-grids", false, "Leave datasets with raster sources untouched when purging")
	flag.Parse()

	command := flag.Arg(0)
	scope := flag.Arg(1)
	if scope == "" {
		scope = "updated"
	}

	cfg, err := config.Load(ctx, settingsFileName)
	if err != nil {
		log.Fatal().Err(err).Msg("invalid configuration, shutting down...")
	}

	cat := catalog.New(cfg.CatalogURL, cfg.CatalogAPIKey)

	mapserver, err := geoserver.New(cfg.GeoserverAdminURL, cfg.GeoserverPublicURL)
	if err != nil {
		log.Fatal().Err(err).Msg("invalid map server configuration, shutting down...")
	}

	store, err := database.Connect(ctx, cfg.DatastoreURL)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to the geometry database, shutting down...")
	}
	defer store.Close()

	connection, _ := cfg.PGConnection()
	vector := converters.NewGeometryConverter(cfg.Tools.Ogr2ogr, connection)
	raster := converters.NewRasterConverter(converters.RasterTools{
		Translate: cfg.Tools.GdalTranslate,
		Warp:      cfg.Tools.GdalWarp,
		Retile:    cfg.Tools.GdalRetile,
	})

	ingestor := ingest.New(cat, mapserver, store, vector, raster, cfg)

	switch command {
	case "ingest":
		ids, err := ingestScope(ctx, cat, cfg, scope)
		if err != nil {
			log.Fatal().Err(err).Msgf("failed to resolve scope %q", scope)
		}
		// a full sweep reprocesses everything, including datasets whose last
		// edit was the ingestor's own
		runIngest(ctx, log, ingestor, ids, force || scope == "all")
	case "purge":
		ids, err := purgeScope(ctx, cat, ingestor, scope)
		if err != nil {
			log.Fatal().Err(err).Msgf("failed to resolve scope %q", scope)
		}
		runPurge(ctx, log, ingestor, ids, skipGrids || scope == "all")
	default:
		log.Fatal().Msgf("unknown command %q, expected ingest or purge", command)
	}
}

// ingestScope expands the scope argument into dataset ids. "all" and
// "updated" walk the whole catalog ("updated" leans on the activity guard to
// skip untouched datasets), "updated-orgs" restricts to the organisations
// configured as recently updated, anything else is a single dataset id.
func ingestScope(ctx context.Context, cat catalog.Catalog, cfg *config.Config, scope string) ([]string, error) {
	switch scope {
	case "all", "updated":
		return cat.PackageList(ctx)
	case "updated-orgs":
		ids := []string{}
		for _, org := range cfg.UpdatedOrgs {
			found, err := cat.PackageSearch(ctx, "owner_org:"+org)
			if err != nil {
				return nil, err
			}
			ids = append(ids, found...)
		}
		return ids, nil
	default:
		return []string{scope}, nil
	}
}

// purgeScope expands the scope argument for purging. "erroneous" selects the
// datasets the eligibility gate currently rejects, so their leftover assets
// can be reclaimed.
func purgeScope(ctx context.Context, cat catalog.Catalog, ingestor *ingest.Ingestor, scope string) ([]string, error) {
	switch scope {
	case "all":
		return cat.PackageList(ctx)
	case "erroneous":
		all, err := cat.PackageList(ctx)
		if err != nil {
			return nil, err
		}

		ids := []string{}
		for _, id := range all {
			_, reason, err := ingestor.MaySkip(ctx, id, false)
			if err != nil {
				return nil, err
			}
			if reason != "" {
				ids = append(ids, id)
			}
		}
		return ids, nil
	default:
		return []string{scope}, nil
	}
}

func runIngest(ctx context.Context, log zerolog.Logger, ingestor *ingest.Ingestor, ids []string, force bool) {
	ingested, skipped, failed := 0, 0, 0

	for i, id := range ids {
		log.Info().Msgf("processing %s (%d of %d)", id, i+1, len(ids))

		err := ingestor.Ingest(ctx, id, force)
		switch {
		case err == nil:
			ingested++
		case errors.Is(err, ingest.ErrSkipped):
			skipped++
		default:
			failed++
			log.Error().Err(err).Msgf("ingestion of %s failed", id)
		}
	}

	log.Info().Msgf("done: %d ingested, %d skipped, %d failed", ingested, skipped, failed)

	if failed > 0 {
		os.Exit(1)
	}
}

func runPurge(ctx context.Context, log zerolog.Logger, ingestor *ingest.Ingestor, ids []string, skipGrids bool) {
	purged, failed := 0, 0

	for i, id := range ids {
		log.Info().Msgf("purging %s (%d of %d)", id, i+1, len(ids))

		if err := ingestor.CleanAssets(ctx, id, skipGrids); err != nil {
			failed++
			log.Error().Err(err).Msgf("purge of %s failed", id)
			continue
		}
		purged++
	}

	log.Info().Msgf("done: %d purged, %d failed", purged, failed)

	if failed > 0 {
		os.Exit(1)
	}
}
