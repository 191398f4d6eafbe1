package ingest

import (
	"archive/zip"
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/datagovau/spatial-ingestor/internal/pkg/application/converters"
	"github.com/datagovau/spatial-ingestor/internal/pkg/domain"
	"github.com/datagovau/spatial-ingestor/internal/pkg/infrastructure/catalog"
	"github.com/datagovau/spatial-ingestor/internal/pkg/infrastructure/config"
	"github.com/datagovau/spatial-ingestor/internal/pkg/infrastructure/geoserver"
	"github.com/datagovau/spatial-ingestor/internal/pkg/infrastructure/repositories/database"
	testutils "github.com/diwise/service-chassis/pkg/test/http"
	"github.com/diwise/service-chassis/pkg/test/http/expects"
	"github.com/diwise/service-chassis/pkg/test/http/response"
	"github.com/matryer/is"
)

var Expects = testutils.Expects
var Returns = testutils.Returns
var anyInput = expects.AnyInput

func testConfig(t *testing.T) *config.Config {
	return &config.Config{
		Settings: config.Settings{
			LargeFileThreshold: 100 * 1024 * 1024,
			SourceFormats: []string{
				"kml", "kmz", "shp", "shapefile", "shz", "tab", "mapinfo",
				"grid", "geotif", "geotiff",
			},
			TargetFormats: []string{"image/png", "kml", "wms", "wfs", "geojson"},
			LegacyHosts:   []string{"data.gov.au", "dga.links.com.au"},
		},
		BotName:       "spatialingestor",
		RasterBaseDir: t.TempDir(),
	}
}

func testDataset(resources ...domain.Resource) *domain.Dataset {
	return &domain.Dataset{
		ID:           "abc-123",
		Name:         "vic-wetlands",
		Title:        "Victorian Wetlands",
		State:        "active",
		Organisation: &domain.Organisation{ID: "org-1", Name: "vic-env"},
		Resources:    resources,
	}
}

func catalogFor(ds *domain.Dataset) *catalog.CatalogMock {
	return &catalog.CatalogMock{
		PackageShowFunc: func(ctx context.Context, id string) (*domain.Dataset, error) {
			copied := *ds
			return &copied, nil
		},
		PackageActivityListFunc: func(ctx context.Context, id string) ([]domain.Activity, error) {
			return []domain.Activity{{ID: "a1", UserID: "user-7"}}, nil
		},
		UserShowFunc: func(ctx context.Context, id string) (*domain.User, error) {
			return &domain.User{ID: "bot-1", Name: "spatialingestor"}, nil
		},
	}
}

func TestMaySkipReasons(t *testing.T) {
	shp := domain.Resource{ID: "r1", Format: "shapefile", URL: "https://example.org/wetlands.zip"}

	testcases := []struct {
		name   string
		mutate func(ds *domain.Dataset)
		reason string
	}{
		{
			"no organisation",
			func(ds *domain.Dataset) { ds.Organisation = nil },
			"dataset has no organisation",
		},
		{
			"harvest source",
			func(ds *domain.Dataset) { ds.HarvestSourceID = "h1" },
			"harvested datasets are not eligible",
		},
		{
			"spatial harvester",
			func(ds *domain.Dataset) { ds.SpatialHarvester = true },
			"harvested datasets are not eligible",
		},
		{
			"private",
			func(ds *domain.Dataset) { ds.Private = true },
			"private datasets are not eligible",
		},
		{
			"not active",
			func(ds *domain.Dataset) { ds.State = "deleted" },
			"dataset state is deleted",
		},
		{
			"no spatial sources",
			func(ds *domain.Dataset) {
				ds.Resources = []domain.Resource{{Format: "csv", URL: "https://example.org/data.csv"}}
			},
			"no spatial source files detected",
		},
		{
			"ambiguous sources",
			func(ds *domain.Dataset) {
				ds.Resources = append(ds.Resources, domain.Resource{ID: "r2", Format: "shp", URL: "https://example.org/other.zip"})
			},
			"multiple candidate files of the same format",
		},
		{
			"eligible",
			func(ds *domain.Dataset) {},
			"",
		},
	}

	for _, tc := range testcases {
		t.Run(tc.name, func(t *testing.T) {
			is := is.New(t)

			ds := testDataset(shp)
			tc.mutate(ds)

			ing := New(catalogFor(ds), &geoserver.ClientMock{}, &database.SpatialStoreMock{},
				&converters.GeometryConverterMock{}, &converters.RasterConverterMock{}, testConfig(t))

			_, reason, err := ing.MaySkip(context.Background(), ds.ID, false)
			is.NoErr(err)
			is.Equal(reason, tc.reason)
		})
	}
}

func TestMaySkipMissingDataset(t *testing.T) {
	is := is.New(t)

	cat := &catalog.CatalogMock{
		PackageShowFunc: func(ctx context.Context, id string) (*domain.Dataset, error) {
			return nil, catalog.ErrNotFound
		},
	}

	ing := New(cat, &geoserver.ClientMock{}, &database.SpatialStoreMock{},
		&converters.GeometryConverterMock{}, &converters.RasterConverterMock{}, testConfig(t))

	ds, reason, err := ing.MaySkip(context.Background(), "missing", false)
	is.NoErr(err)
	is.Equal(ds, nil)
	is.Equal(reason, "dataset does not exist")
}

func TestMaySkipBlacklists(t *testing.T) {
	is := is.New(t)

	shp := domain.Resource{ID: "r1", Format: "shapefile", URL: "https://example.org/wetlands.zip"}
	ds := testDataset(shp)

	cfg := testConfig(t)
	cfg.OrgBlacklist = []string{"vic-env"}

	ing := New(catalogFor(ds), &geoserver.ClientMock{}, &database.SpatialStoreMock{},
		&converters.GeometryConverterMock{}, &converters.RasterConverterMock{}, cfg)

	_, reason, err := ing.MaySkip(context.Background(), ds.ID, false)
	is.NoErr(err)
	is.True(strings.Contains(reason, "blacklisted"))

	cfg = testConfig(t)
	cfg.PkgBlacklist = []string{"vic-wetlands"}

	ing = New(catalogFor(ds), &geoserver.ClientMock{}, &database.SpatialStoreMock{},
		&converters.GeometryConverterMock{}, &converters.RasterConverterMock{}, cfg)

	_, reason, err = ing.MaySkip(context.Background(), ds.ID, false)
	is.NoErr(err)
	is.Equal(reason, "dataset is blacklisted")
}

func TestMaySkipBotActivityUnlessForced(t *testing.T) {
	is := is.New(t)

	shp := domain.Resource{ID: "r1", Format: "shapefile", URL: "https://example.org/wetlands.zip"}
	ds := testDataset(shp)

	cat := catalogFor(ds)
	cat.PackageActivityListFunc = func(ctx context.Context, id string) ([]domain.Activity, error) {
		return []domain.Activity{{ID: "a1", UserID: "bot-1"}}, nil
	}

	ing := New(cat, &geoserver.ClientMock{}, &database.SpatialStoreMock{},
		&converters.GeometryConverterMock{}, &converters.RasterConverterMock{}, testConfig(t))

	_, reason, err := ing.MaySkip(context.Background(), ds.ID, false)
	is.NoErr(err)
	is.Equal(reason, "not updated since last ingestion")

	_, reason, err = ing.MaySkip(context.Background(), ds.ID, true)
	is.NoErr(err)
	is.Equal(reason, "")
}

func buildZip(t *testing.T, files map[string][]byte) []byte {
	t.Helper()

	buf := &bytes.Buffer{}
	w := zip.NewWriter(buf)
	for name, contents := range files {
		f, err := w.Create(name)
		if err != nil {
			t.Fatal(err)
		}
		if _, err := f.Write(contents); err != nil {
			t.Fatal(err)
		}
	}
	if err := w.Close(); err != nil {
		t.Fatal(err)
	}

	return buf.Bytes()
}

func TestIngestShapefileEndToEnd(t *testing.T) {
	is := is.New(t)

	archive := buildZip(t, map[string][]byte{
		"wetlands.shp": []byte("geometry payload"),
		"wetlands.prj": []byte(`PROJCS["GDA_1994_MGA_Zone_56",GEOGCS["GCS_GDA_1994"]]`),
	})

	ms := testutils.NewMockServiceThat(
		Expects(is, anyInput()),
		Returns(
			response.Code(200),
			response.ContentType("application/zip"),
			response.Body(archive),
		),
	)

	ds := testDataset(domain.Resource{ID: "r1", Format: "shapefile", URL: ms.URL()})

	cat := catalogFor(ds)
	cat.PackageUpdateFunc = func(ctx context.Context, dataset *domain.Dataset) error { return nil }
	cat.ResourceCreateFunc = func(ctx context.Context, resource domain.Resource) error { return nil }

	gs := &geoserver.ClientMock{
		PublicURLFunc:       func() string { return "https://data.example.org/geoserver" },
		CheckWorkspaceFunc:  func(ctx context.Context, workspace string) (bool, error) { return false, nil },
		CreateWorkspaceFunc: func(ctx context.Context, workspace string) error { return nil },
		CreateStoreFunc: func(ctx context.Context, workspace, store string, cfg geoserver.StoreConfig) error {
			return nil
		},
		CreateLayerFunc: func(ctx context.Context, workspace, store string, layer geoserver.Layer) error {
			return nil
		},
	}

	store := &database.SpatialStoreMock{
		ClearTableFunc: func(ctx context.Context, table string) error { return nil },
		ExtentFunc: func(ctx context.Context, table string) (database.TableExtent, error) {
			return database.TableExtent{
				Native:  domain.BoundingBox{MinX: 300000, MinY: 5660000, MaxX: 350000, MaxY: 5690000},
				LatLon:  domain.BoundingBox{MinX: 140.9, MinY: -39.2, MaxX: 150.0, MaxY: -33.9},
				GeoJSON: `{"type":"Polygon","coordinates":[]}`,
			}, nil
		},
	}

	vector := &converters.GeometryConverterMock{
		ToPostGISFunc: func(ctx context.Context, params converters.VectorLoadParams) error { return nil },
	}

	ing := New(cat, gs, store, vector, &converters.RasterConverterMock{}, testConfig(t))

	err := ing.Ingest(context.Background(), ds.ID, false)
	is.NoErr(err)

	is.Equal(len(vector.ToPostGISCalls()), 1)
	load := vector.ToPostGISCalls()[0]
	is.Equal(load.Params.TableName, "ckan_abc_123")
	is.Equal(load.Params.SRS, "EPSG:28356")

	is.Equal(len(gs.CreateWorkspaceCalls()), 1)
	is.Equal(gs.CreateWorkspaceCalls()[0].Workspace, "vic-wetlands")
	is.Equal(gs.CreateStoreCalls()[0].Store, "vic-wetlandsds")

	layer := gs.CreateLayerCalls()[0].Layer
	is.Equal(layer.Name, "ckan_abc_123")
	is.Equal(layer.SRS, "EPSG:28356")
	is.True(layer.NativeBBox != nil)
	is.Equal(layer.NativeBBox.CRS, "EPSG:28356")
	is.Equal(layer.LatLonBBox.CRS, "EPSG:4326")

	is.Equal(len(cat.PackageUpdateCalls()), 1)
	is.Equal(cat.PackageUpdateCalls()[0].Dataset.Spatial, `{"type":"Polygon","coordinates":[]}`)

	is.Equal(len(cat.ResourceCreateCalls()), 5)
}

func TestLoadTabConvertsTwiceWithEncodingOverride(t *testing.T) {
	is := is.New(t)

	archive := buildZip(t, map[string][]byte{"wetlands.tab": []byte("mapinfo payload")})

	ms := testutils.NewMockServiceThat(
		Expects(is, anyInput()),
		Returns(
			response.Code(200),
			response.ContentType("application/zip"),
			response.Body(archive),
		),
	)

	vector := &converters.GeometryConverterMock{
		ToPostGISFunc: func(ctx context.Context, params converters.VectorLoadParams) error { return nil },
	}

	ing := New(catalogFor(testDataset()), &geoserver.ClientMock{}, &database.SpatialStoreMock{},
		vector, &converters.RasterConverterMock{}, testConfig(t))

	res := &domain.Resource{ID: "r1", Format: "tab", URL: ms.URL()}

	srs, err := ing.loadTab(context.Background(), res, "ckan_abc_123", t.TempDir())
	is.NoErr(err)
	is.Equal(srs, "EPSG:4326")

	calls := vector.ToPostGISCalls()
	is.Equal(len(calls), 2)
	is.Equal(calls[0].Params.ClientEncoding, "")
	is.Equal(calls[1].Params.ClientEncoding, "windows-1252")
	is.Equal(calls[0].Params.Source, calls[1].Params.Source)
	is.Equal(calls[1].Params.TableName, "ckan_abc_123")
}

func TestLoadTabAbortsWhenFirstPassFails(t *testing.T) {
	is := is.New(t)

	archive := buildZip(t, map[string][]byte{"wetlands.tab": []byte("mapinfo payload")})

	ms := testutils.NewMockServiceThat(
		Expects(is, anyInput()),
		Returns(
			response.Code(200),
			response.ContentType("application/zip"),
			response.Body(archive),
		),
	)

	vector := &converters.GeometryConverterMock{
		ToPostGISFunc: func(ctx context.Context, params converters.VectorLoadParams) error {
			return errors.New("ogr2ogr failed to convert")
		},
	}

	ing := New(catalogFor(testDataset()), &geoserver.ClientMock{}, &database.SpatialStoreMock{},
		vector, &converters.RasterConverterMock{}, testConfig(t))

	res := &domain.Resource{ID: "r1", Format: "tab", URL: ms.URL()}

	_, err := ing.loadTab(context.Background(), res, "ckan_abc_123", t.TempDir())
	is.True(err != nil)
	is.Equal(len(vector.ToPostGISCalls()), 1)
}

func TestIngestCleansUpWhenConversionFails(t *testing.T) {
	is := is.New(t)

	archive := buildZip(t, map[string][]byte{"wetlands.shp": []byte("geometry payload")})

	ms := testutils.NewMockServiceThat(
		Expects(is, anyInput()),
		Returns(
			response.Code(200),
			response.ContentType("application/zip"),
			response.Body(archive),
		),
	)

	ds := testDataset(domain.Resource{ID: "r1", Format: "shapefile", URL: ms.URL()})

	gs := &geoserver.ClientMock{
		CheckWorkspaceFunc: func(ctx context.Context, workspace string) (bool, error) { return true, nil },
		DropWorkspaceFunc:  func(ctx context.Context, workspace string) error { return nil },
	}

	store := &database.SpatialStoreMock{
		ClearTableFunc: func(ctx context.Context, table string) error { return nil },
	}

	vector := &converters.GeometryConverterMock{
		ToPostGISFunc: func(ctx context.Context, params converters.VectorLoadParams) error {
			return errors.New("ogr2ogr failed to convert")
		},
	}

	ing := New(catalogFor(ds), gs, store, vector, &converters.RasterConverterMock{}, testConfig(t))

	err := ing.Ingest(context.Background(), ds.ID, false)
	is.True(err != nil)
	is.True(!errors.Is(err, ErrSkipped))

	is.True(len(store.ClearTableCalls()) >= 2)
	is.Equal(len(gs.DropWorkspaceCalls()), 1)
}

func TestIngestFailsOnInvalidProjection(t *testing.T) {
	is := is.New(t)

	archive := buildZip(t, map[string][]byte{"wetlands.shp": []byte("geometry payload")})

	ms := testutils.NewMockServiceThat(
		Expects(is, anyInput()),
		Returns(
			response.Code(200),
			response.ContentType("application/zip"),
			response.Body(archive),
		),
	)

	ds := testDataset(domain.Resource{ID: "r1", Format: "shapefile", URL: ms.URL()})

	gs := &geoserver.ClientMock{
		CheckWorkspaceFunc:  func(ctx context.Context, workspace string) (bool, error) { return false, nil },
		CreateWorkspaceFunc: func(ctx context.Context, workspace string) error { return nil },
		CreateStoreFunc: func(ctx context.Context, workspace, store string, cfg geoserver.StoreConfig) error {
			return nil
		},
	}

	store := &database.SpatialStoreMock{
		ClearTableFunc: func(ctx context.Context, table string) error { return nil },
		ExtentFunc: func(ctx context.Context, table string) (database.TableExtent, error) {
			return database.TableExtent{
				Native:  domain.BoundingBox{MinX: 300000, MinY: 5660000, MaxX: 350000, MaxY: 5690000},
				LatLon:  domain.BoundingBox{MinX: 140.9, MinY: -39.2, MaxX: 15069839, MaxY: -33.9},
				GeoJSON: `{"type":"Polygon","coordinates":[]}`,
			}, nil
		},
	}

	vector := &converters.GeometryConverterMock{
		ToPostGISFunc: func(ctx context.Context, params converters.VectorLoadParams) error { return nil },
	}

	ing := New(catalogFor(ds), gs, store, vector, &converters.RasterConverterMock{}, testConfig(t))

	err := ing.Ingest(context.Background(), ds.ID, false)
	is.True(err != nil)
	is.True(strings.Contains(err.Error(), "invalid automatic projection"))

	is.True(len(store.ClearTableCalls()) >= 2)
}

func TestIngestKeepsLayerWhenResourceCreationFails(t *testing.T) {
	is := is.New(t)

	archive := buildZip(t, map[string][]byte{"wetlands.shp": []byte("geometry payload")})

	ms := testutils.NewMockServiceThat(
		Expects(is, anyInput()),
		Returns(
			response.Code(200),
			response.ContentType("application/zip"),
			response.Body(archive),
		),
	)

	ds := testDataset(domain.Resource{ID: "r1", Format: "shapefile", URL: ms.URL()})

	cat := catalogFor(ds)
	cat.PackageUpdateFunc = func(ctx context.Context, dataset *domain.Dataset) error { return nil }
	cat.ResourceCreateFunc = func(ctx context.Context, resource domain.Resource) error {
		return errors.New("resource_create failed")
	}

	gs := &geoserver.ClientMock{
		PublicURLFunc:       func() string { return "https://data.example.org/geoserver" },
		CheckWorkspaceFunc:  func(ctx context.Context, workspace string) (bool, error) { return false, nil },
		CreateWorkspaceFunc: func(ctx context.Context, workspace string) error { return nil },
		CreateStoreFunc: func(ctx context.Context, workspace, store string, cfg geoserver.StoreConfig) error {
			return nil
		},
		CreateLayerFunc: func(ctx context.Context, workspace, store string, layer geoserver.Layer) error {
			return nil
		},
	}

	store := &database.SpatialStoreMock{
		ClearTableFunc: func(ctx context.Context, table string) error { return nil },
		ExtentFunc: func(ctx context.Context, table string) (database.TableExtent, error) {
			return database.TableExtent{
				Native:  domain.BoundingBox{MinX: 300000, MinY: 5660000, MaxX: 350000, MaxY: 5690000},
				LatLon:  domain.BoundingBox{MinX: 140.9, MinY: -39.2, MaxX: 150.0, MaxY: -33.9},
				GeoJSON: `{"type":"Polygon","coordinates":[]}`,
			}, nil
		},
	}

	vector := &converters.GeometryConverterMock{
		ToPostGISFunc: func(ctx context.Context, params converters.VectorLoadParams) error { return nil },
	}

	ing := New(cat, gs, store, vector, &converters.RasterConverterMock{}, testConfig(t))

	err := ing.Ingest(context.Background(), ds.ID, false)
	is.True(err != nil)
	is.True(!errors.Is(err, ErrSkipped))

	// the published layer stays: only the initial clear ran, nothing was dropped
	is.Equal(len(store.ClearTableCalls()), 1)
	is.Equal(len(gs.DropWorkspaceCalls()), 0)
}

func TestTableNameIsStableForDataset(t *testing.T) {
	is := is.New(t)

	is.Equal(tableName("abc-123"), "ckan_abc_123")
	is.Equal(tableName("no-dashes-at-all"), "ckan_no_dashes_at_all")
}
