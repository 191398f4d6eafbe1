package formats

import (
	"strings"

	"github.com/datagovau/spatial-ingestor/internal/pkg/domain"
)

// Format enumerates the spatial file formats the ingestor knows how to load,
// plus SLD styling documents.
type Format int

const (
	Unknown Format = iota
	Shapefile
	KML
	Tab
	GeoTIFF
	ArcGrid
	SLD
)

func (f Format) String() string {
	switch f {
	case Shapefile:
		return "shapefile"
	case KML:
		return "kml"
	case Tab:
		return "tab"
	case GeoTIFF:
		return "geotiff"
	case ArcGrid:
		return "arcgrid"
	case SLD:
		return "sld"
	}
	return "unknown"
}

// IsRaster reports whether the format is loaded as a tiled image pyramid
// rather than a geometry table.
func (f Format) IsRaster() bool {
	return f == GeoTIFF || f == ArcGrid
}

// Classify maps a free-text resource format onto the closed Format set. The
// matching is deliberately lenient: any substring hit counts, so values such
// as "SHP (zipped)" or "Google KMZ" classify the way an operator would
// expect them to.
func Classify(raw string) (Format, bool) {
	f := strings.ToLower(raw)

	switch {
	case containsAny(f, "sld"):
		return SLD, true
	case containsAny(f, "kml", "kmz"):
		return KML, true
	case containsAny(f, "shp", "shapefile", "shz"):
		return Shapefile, true
	case containsAny(f, "tab", "mapinfo"):
		return Tab, true
	case containsAny(f, "grid"):
		return ArcGrid, true
	case containsAny(f, "geotif", "geotiff"):
		return GeoTIFF, true
	}

	return Unknown, false
}

// GroupedResources holds a dataset's resources bucketed by spatial format.
// It is a transient per-run value: the grouping is recomputed from the
// catalog on every ingestion attempt.
type GroupedResources struct {
	Shapefile []domain.Resource
	KML       []domain.Resource
	Tab       []domain.Resource
	GeoTIFF   []domain.Resource
	ArcGrid   []domain.Resource
	SLD       []domain.Resource
}

// Group buckets the dataset's resources by format. Resources whose URL
// already points at the map server are derived artifacts of a previous run
// and are excluded, so the ingestor never re-ingests its own output.
// Non-style resources only land in a bucket when their format also matches
// one of the configured source formats.
func Group(dataset *domain.Dataset, sourceFormats []string) GroupedResources {
	grouped := GroupedResources{}

	lowered := make([]string, 0, len(sourceFormats))
	for _, sf := range sourceFormats {
		lowered = append(lowered, strings.ToLower(sf))
	}

	for _, res := range dataset.Resources {
		if strings.Contains(res.URL, "/geoserver") {
			continue
		}

		format := strings.ToLower(res.Format)
		isSource := containsAny(format, lowered...)

		classified, ok := Classify(format)
		if !ok {
			continue
		}

		if classified == SLD {
			grouped.SLD = append(grouped.SLD, res)
			continue
		}

		if !isSource {
			continue
		}

		switch classified {
		case Shapefile:
			grouped.Shapefile = append(grouped.Shapefile, res)
		case KML:
			grouped.KML = append(grouped.KML, res)
		case Tab:
			grouped.Tab = append(grouped.Tab, res)
		case GeoTIFF:
			grouped.GeoTIFF = append(grouped.GeoTIFF, res)
		case ArcGrid:
			grouped.ArcGrid = append(grouped.ArcGrid, res)
		}
	}

	return grouped
}

// Empty reports whether no source bucket holds any resource. Style resources
// do not count: an SLD without geodata is nothing to ingest.
func (g GroupedResources) Empty() bool {
	return len(g.Shapefile)+len(g.KML)+len(g.Tab)+len(g.GeoTIFF)+len(g.ArcGrid) == 0
}

// Ambiguous reports whether any source bucket holds more than one resource,
// in which case the authoritative spatial source cannot be determined and
// the dataset must be skipped rather than guessed at.
func (g GroupedResources) Ambiguous() bool {
	for _, bucket := range [][]domain.Resource{g.Shapefile, g.KML, g.Tab, g.GeoTIFF, g.ArcGrid} {
		if len(bucket) > 1 {
			return true
		}
	}
	return false
}

// Source returns the single resource to ingest, honouring the historical
// bucket precedence: shapefile, then KML, TAB, GeoTIFF, ArcGrid.
func (g GroupedResources) Source() (Format, *domain.Resource) {
	switch {
	case len(g.Shapefile) > 0:
		return Shapefile, &g.Shapefile[0]
	case len(g.KML) > 0:
		return KML, &g.KML[0]
	case len(g.Tab) > 0:
		return Tab, &g.Tab[0]
	case len(g.GeoTIFF) > 0:
		return GeoTIFF, &g.GeoTIFF[0]
	case len(g.ArcGrid) > 0:
		return ArcGrid, &g.ArcGrid[0]
	}
	return Unknown, nil
}

func containsAny(value string, parts ...string) bool {
	for _, part := range parts {
		if part != "" && strings.Contains(value, part) {
			return true
		}
	}
	return false
}
