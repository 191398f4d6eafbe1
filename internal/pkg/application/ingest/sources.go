package ingest

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/beevik/etree"
	"github.com/datagovau/spatial-ingestor/internal/pkg/application/converters"
	"github.com/datagovau/spatial-ingestor/internal/pkg/application/crs"
	"github.com/datagovau/spatial-ingestor/internal/pkg/domain"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/logging"
)

// loadShapefile downloads a shapefile (bare or zipped), resolves the CRS
// from the bundled projection file and bulk-loads the geometries.
func (ing *Ingestor) loadShapefile(ctx context.Context, res *domain.Resource, table, scratch string) (string, error) {
	log := logging.GetFromContext(ctx)
	log.Debug().Msgf("loading shapefile from %s", res.URL)

	if hasAnySuffix(res.URL, "shp", "shapefile") {
		if err := ing.download(ctx, res.URL, filepath.Join(scratch, "input.shp")); err != nil {
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

	if _, ok := findFirst(scratch, ".shp"); !ok {
		return "", fmt.Errorf("no shapefile found in %s", res.URL)
	}

	srs := crs.Default
	if prj, ok := findFirst(scratch, ".prj"); ok {
		projection, err := os.ReadFile(prj)
		if err != nil {
			return "", err
		}
		srs = crs.Resolve(string(projection))
	}

	err := ing.vector.ToPostGIS(ctx, converters.VectorLoadParams{
		Source:    scratch,
		TableName: table,
		SRS:       srs,
	})
	if err != nil {
		return "", err
	}

	return srs, nil
}

// loadKML downloads a KML or KMZ resource, renames its folders to the table
// name so the conversion yields a single predictably named layer, and
// bulk-loads the geometries. KML is always lat/lon.
func (ing *Ingestor) loadKML(ctx context.Context, res *domain.Resource, table, scratch string) (string, error) {
	log := logging.GetFromContext(ctx)
	log.Debug().Msgf("loading kml from %s", res.URL)

	kmlFile := filepath.Join(scratch, "input.kml")

	if strings.EqualFold(res.Format, "kmz") || strings.Contains(strings.ToLower(res.URL), "kmz") {
		archive := filepath.Join(scratch, "input.zip")
		if err := ing.download(ctx, res.URL, archive); err != nil {
			return "", err
		}
		if err := unzipFlat(archive, scratch); err != nil {
			return "", err
		}

		extracted, ok := findFirst(scratch, ".kml")
		if !ok {
			return "", fmt.Errorf("no kml file found in %s", res.URL)
		}
		kmlFile = extracted
	} else {
		if err := ing.download(ctx, res.URL, kmlFile); err != nil {
			return "", err
		}
	}

	patched := filepath.Join(scratch, table+".kml")
	if err := patchKMLFolderNames(kmlFile, patched, table); err != nil {
		return "", err
	}

	err := ing.vector.ToPostGIS(ctx, converters.VectorLoadParams{
		Source:    patched,
		TableName: table,
		SRS:       crs.Default,
	})
	if err != nil {
		return "", err
	}

	return crs.Default, nil
}

// patchKMLFolderNames rewrites every Folder name in the document to the
// table name, regardless of which KML namespace the document declares.
func patchKMLFolderNames(src, dst, table string) error {
	doc := etree.NewDocument()
	if err := doc.ReadFromFile(src); err != nil {
		return fmt.Errorf("failed to parse kml: %w", err)
	}

	var rename func(el *etree.Element)
	rename = func(el *etree.Element) {
		if el.Tag == "Folder" {
			if name := el.SelectElement("name"); name != nil {
				name.SetText(table)
			}
		}
		for _, child := range el.ChildElements() {
			rename(child)
		}
	}

	if root := doc.Root(); root != nil {
		rename(root)
	}

	return doc.WriteToFile(dst)
}

// loadTab downloads a zipped MapInfo TAB source and bulk-loads it. The load
// runs twice, the second time forcing a windows-1252 client encoding, which
// historically recovers TAB exports with broken attribute encodings.
func (ing *Ingestor) loadTab(ctx context.Context, res *domain.Resource, table, scratch string) (string, error) {
	log := logging.GetFromContext(ctx)
	log.Debug().Msgf("loading tab file from %s", res.URL)

	archive := filepath.Join(scratch, "input.zip")
	if err := ing.download(ctx, res.URL, archive); err != nil {
		return "", err
	}
	if err := unzipFlat(archive, scratch); err != nil {
		return "", err
	}

	tabFile, ok := findFirst(scratch, ".tab")
	if !ok {
		return "", fmt.Errorf("no mapinfo tab file found in %s", res.URL)
	}

	params := converters.VectorLoadParams{
		Source:    tabFile,
		TableName: table,
		SRS:       crs.Default,
	}

	if err := ing.vector.ToPostGIS(ctx, params); err != nil {
		return "", err
	}

	params.ClientEncoding = "windows-1252"
	if err := ing.vector.ToPostGIS(ctx, params); err != nil {
		return "", err
	}

	return crs.Default, nil
}
