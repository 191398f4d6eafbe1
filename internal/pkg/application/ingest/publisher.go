package ingest

import (
	"context"
	"net/url"
	"strings"
	"time"

	"github.com/datagovau/spatial-ingestor/internal/pkg/domain"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/logging"
)

// deleteMapServerResources removes companion resources created by earlier
// ingestion runs, recognised by a map server path on one of the known hosts.
// Rebuilding them from scratch keeps the update logic simple.
func (ing *Ingestor) deleteMapServerResources(ctx context.Context, ds *domain.Dataset) error {
	log := logging.GetFromContext(ctx)

	for _, res := range ds.Resources {
		if !strings.Contains(res.URL, "/geoserver") {
			continue
		}
		if !containsAnyOf(res.URL, ing.cfg.LegacyHosts) {
			continue
		}

		if err := ing.catalog.ResourceDelete(ctx, res.ID); err != nil {
			return err
		}
		log.Info().Msgf("deleted stale map server resource %s", res.ID)
	}

	return nil
}

func containsAnyOf(value string, parts []string) bool {
	for _, part := range parts {
		if part != "" && strings.Contains(value, part) {
			return true
		}
	}
	return false
}

// createResourcesFromFormats adds one companion resource per configured
// target format, unless the dataset already offers that format. GeoJSON is
// served through WFS and therefore only exists for vector layers.
func (ing *Ingestor) createResourcesFromFormats(
	ctx context.Context, ds *domain.Dataset, workspace, layer string,
	bbox *domain.BoundingBox, isRaster bool,
) error {
	log := logging.GetFromContext(ctx)

	wsAddr := ing.mapserver.PublicURL() + "/" + workspace + "/"

	bboxParam := ""
	if bbox != nil {
		bboxParam = "&bbox=" + bbox.QueryParam()
	}

	now := time.Now().Format("2006-01-02T15:04:05")

	for _, target := range ing.cfg.TargetFormats {
		format := strings.ToLower(target)

		// the slash in mime type formats like image/png must stay literal
		getMapURL := wsAddr + "wms?request=GetMap&layers=" + layer + bboxParam +
			"&width=512&height=512&format=" + (&url.URL{Path: format}).EscapedPath()

		var res domain.Resource

		switch {
		case format == "image/png":
			res = domain.Resource{
				Name:        ds.Title + " Preview Image",
				Description: "View overview image of this dataset",
				Format:      format,
				URL:         getMapURL,
			}
		case format == "kml":
			res = domain.Resource{
				Name:        ds.Title + " KML",
				Description: "View a map of this dataset in web and desktop spatial data tools including Google Earth",
				Format:      format,
				URL:         getMapURL,
			}
		case format == "wms":
			res = domain.Resource{
				Name:        ds.Title + " - Preview this Dataset (WMS)",
				Description: "View the data in this dataset online via an online map",
				Format:      "wms",
				URL:         wsAddr + "wms?request=GetCapabilities",
				WMSLayer:    layer,
			}
		case format == "wfs":
			res = domain.Resource{
				Name:        ds.Title + " Web Feature Service API Link",
				Description: "WFS API Link for use in Desktop GIS tools",
				Format:      "wfs",
				URL:         wsAddr + "wfs",
				WFSLayer:    layer,
			}
		case format == "json" || format == "geojson":
			if isRaster {
				continue
			}
			if ds.HasFormat("json") || ds.HasFormat("geojson") {
				continue
			}
			res = domain.Resource{
				Name:        ds.Title + " GeoJSON",
				Description: "For use in web-based data visualisation of this collection",
				Format:      "geojson",
				URL:         wsAddr + "wfs?request=GetFeature&typeName=" + layer + "&outputFormat=json",
			}
		default:
			continue
		}

		if res.Format != "geojson" && ds.HasFormat(format) {
			continue
		}

		res.PackageID = ds.ID
		res.LastModified = now

		if err := ing.catalog.ResourceCreate(ctx, res); err != nil {
			return err
		}
		log.Info().Msgf("created %s resource for %s", res.Format, ds.ID)
	}

	return nil
}
