package ingest

import (
	"context"
	"strings"
	"testing"

	"github.com/datagovau/spatial-ingestor/internal/pkg/application/converters"
	"github.com/datagovau/spatial-ingestor/internal/pkg/domain"
	"github.com/datagovau/spatial-ingestor/internal/pkg/infrastructure/catalog"
	"github.com/datagovau/spatial-ingestor/internal/pkg/infrastructure/geoserver"
	"github.com/datagovau/spatial-ingestor/internal/pkg/infrastructure/repositories/database"
	"github.com/matryer/is"
)

func publisherSetup(t *testing.T, ds *domain.Dataset) (*catalog.CatalogMock, *Ingestor) {
	cat := &catalog.CatalogMock{
		ResourceCreateFunc: func(ctx context.Context, resource domain.Resource) error { return nil },
		ResourceDeleteFunc: func(ctx context.Context, id string) error { return nil },
	}

	gs := &geoserver.ClientMock{
		PublicURLFunc: func() string { return "https://data.example.org/geoserver" },
	}

	ing := New(cat, gs, &database.SpatialStoreMock{},
		&converters.GeometryConverterMock{}, &converters.RasterConverterMock{}, testConfig(t))

	return cat, ing
}

func TestCompanionResourcesSkipExistingFormats(t *testing.T) {
	is := is.New(t)

	ds := testDataset(
		domain.Resource{ID: "r1", Format: "shapefile", URL: "https://example.org/wetlands.zip"},
		domain.Resource{ID: "r2", Format: "wms", URL: "https://example.org/existing-wms"},
		domain.Resource{ID: "r3", Format: "KML", URL: "https://example.org/existing-kml"},
	)

	cat, ing := publisherSetup(t, ds)

	bbox := &domain.BoundingBox{MinX: 1, MinY: 2, MaxX: 3, MaxY: 4}
	is.NoErr(ing.createResourcesFromFormats(context.Background(), ds, "vic-wetlands", "ckan_abc_123", bbox, false))

	created := cat.ResourceCreateCalls()
	is.Equal(len(created), 3)

	formats := map[string]domain.Resource{}
	for _, call := range created {
		formats[call.Resource.Format] = call.Resource
	}

	png, ok := formats["image/png"]
	is.True(ok)
	is.True(strings.Contains(png.URL, "/vic-wetlands/wms?request=GetMap&layers=ckan_abc_123"))
	is.True(strings.HasSuffix(png.URL, "&bbox=1,2,3,4&width=512&height=512&format=image/png"))
	is.Equal(png.Name, "Victorian Wetlands Preview Image")
	is.Equal(png.PackageID, "abc-123")

	wfs, ok := formats["wfs"]
	is.True(ok)
	is.Equal(wfs.URL, "https://data.example.org/geoserver/vic-wetlands/wfs")
	is.Equal(wfs.WFSLayer, "ckan_abc_123")

	geojson, ok := formats["geojson"]
	is.True(ok)
	is.Equal(geojson.URL, "https://data.example.org/geoserver/vic-wetlands/wfs?request=GetFeature&typeName=ckan_abc_123&outputFormat=json")
}

func TestCompanionGeoJSONSkippedForRasters(t *testing.T) {
	is := is.New(t)

	ds := testDataset(domain.Resource{ID: "r1", Format: "geotiff", URL: "https://example.org/ortho.zip"})

	cat, ing := publisherSetup(t, ds)

	is.NoErr(ing.createResourcesFromFormats(context.Background(), ds, "vic-wetlands", "ckan_abc_123", nil, true))

	for _, call := range cat.ResourceCreateCalls() {
		is.True(call.Resource.Format != "geojson")
		is.True(!strings.Contains(call.Resource.URL, "&bbox="))
	}
	is.Equal(len(cat.ResourceCreateCalls()), 4)
}

func TestDeleteMapServerResourcesMatchesLegacyHostsOnly(t *testing.T) {
	is := is.New(t)

	ds := testDataset(
		domain.Resource{ID: "stale", Format: "wms", URL: "https://data.gov.au/geoserver/vic-wetlands/wms"},
		domain.Resource{ID: "foreign", Format: "wms", URL: "https://elsewhere.org/geoserver/other/wms"},
		domain.Resource{ID: "unrelated", Format: "csv", URL: "https://data.gov.au/dataset/abc/download.csv"},
	)

	cat, ing := publisherSetup(t, ds)

	is.NoErr(ing.deleteMapServerResources(context.Background(), ds))

	deleted := cat.ResourceDeleteCalls()
	is.Equal(len(deleted), 1)
	is.Equal(deleted[0].ID, "stale")
}
