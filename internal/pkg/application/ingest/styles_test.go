package ingest

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/datagovau/spatial-ingestor/internal/pkg/application/converters"
	"github.com/datagovau/spatial-ingestor/internal/pkg/infrastructure/geoserver"
	"github.com/datagovau/spatial-ingestor/internal/pkg/infrastructure/repositories/database"
	"github.com/matryer/is"
)

func styleClient(updateStyle func(raw bool) error) *geoserver.ClientMock {
	return &geoserver.ClientMock{
		GetStyleFunc: func(ctx context.Context, workspace, style string) ([]byte, error) {
			return nil, geoserver.ErrNotFound
		},
		CreateStyleFunc: func(ctx context.Context, workspace, style string) error { return nil },
		DeleteStyleFunc: func(ctx context.Context, workspace, style string) error { return nil },
		UpdateStyleFunc: func(ctx context.Context, workspace, style string, sld []byte, contentType string, raw bool) error {
			return updateStyle(raw)
		},
		SetDefaultStyleFunc: func(ctx context.Context, layer, workspace, style string) error { return nil },
	}
}

func writeStyleFile(t *testing.T, contents string) string {
	t.Helper()

	file := filepath.Join(t.TempDir(), "wetlands.sld")
	if err := os.WriteFile(file, []byte(contents), 0o644); err != nil {
		t.Fatal(err)
	}
	return file
}

func TestApplySLDUploadsRawAndSetsDefault(t *testing.T) {
	is := is.New(t)

	file := writeStyleFile(t, `<StyledLayerDescriptor xmlns="http://www.opengis.net/sld"/>`)
	gs := styleClient(func(raw bool) error { return nil })

	ing := New(catalogFor(testDataset()), gs, &database.SpatialStoreMock{},
		&converters.GeometryConverterMock{}, &converters.RasterConverterMock{}, testConfig(t))

	is.NoErr(ing.applySLD(context.Background(), "vic-wetlands", "ckan_abc_123", "wetlands", file))

	updates := gs.UpdateStyleCalls()
	is.Equal(len(updates), 1)
	is.True(updates[0].Raw)
	is.Equal(updates[0].ContentType, "application/vnd.ogc.sld+xml")

	is.Equal(len(gs.DeleteStyleCalls()), 0)
	is.Equal(len(gs.SetDefaultStyleCalls()), 1)
	is.Equal(gs.SetDefaultStyleCalls()[0].Layer, "ckan_abc_123")
	is.Equal(gs.SetDefaultStyleCalls()[0].Style, "wetlands")
}

func TestApplySLDRecreatesStyleWhenRawUploadIsRejected(t *testing.T) {
	is := is.New(t)

	file := writeStyleFile(t, `<StyledLayerDescriptor xmlns="http://www.opengis.net/sld"/>`)
	gs := styleClient(func(raw bool) error {
		if raw {
			return geoserver.ErrBadRequest
		}
		return nil
	})

	ing := New(catalogFor(testDataset()), gs, &database.SpatialStoreMock{},
		&converters.GeometryConverterMock{}, &converters.RasterConverterMock{}, testConfig(t))

	is.NoErr(ing.applySLD(context.Background(), "vic-wetlands", "ckan_abc_123", "wetlands", file))

	updates := gs.UpdateStyleCalls()
	is.Equal(len(updates), 2)
	is.True(updates[0].Raw)
	is.True(!updates[1].Raw)

	is.Equal(len(gs.DeleteStyleCalls()), 1)
	is.Equal(gs.DeleteStyleCalls()[0].Style, "wetlands")
	is.Equal(len(gs.SetDefaultStyleCalls()), 1)
}

func TestApplySLDRejectsUnknownDocuments(t *testing.T) {
	is := is.New(t)

	file := writeStyleFile(t, `<NotAStyle/>`)
	gs := &geoserver.ClientMock{}

	ing := New(catalogFor(testDataset()), gs, &database.SpatialStoreMock{},
		&converters.GeometryConverterMock{}, &converters.RasterConverterMock{}, testConfig(t))

	err := ing.applySLD(context.Background(), "vic-wetlands", "ckan_abc_123", "wetlands", file)
	is.True(err != nil)
}

func TestSniffSLDContentType(t *testing.T) {
	is := is.New(t)

	is.Equal(sniffSLDContentType([]byte(`<sld xmlns="http://www.opengis.net/sld"/>`)), "application/vnd.ogc.sld+xml")
	is.Equal(sniffSLDContentType([]byte(`<se xmlns="http://www.opengis.net/se"/>`)), "application/vnd.ogc.se+xml")
	is.Equal(sniffSLDContentType([]byte(`<kml/>`)), "")
}
