// Package database manages the PostGIS tables that hold ingested geometries.
package database

import (
	"context"
	"database/sql"
	"fmt"
	"strconv"
	"strings"

	"github.com/datagovau/spatial-ingestor/internal/pkg/domain"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/logging"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/tracing"
	"github.com/lib/pq"
	"go.opentelemetry.io/otel"
)

//go:generate moq -rm -out database_mock.go . SpatialStore

var tracer = otel.Tracer("spatial-ingestor/database")

// TableExtent holds the bounding box of a geometry table in its native
// projection and in lat/lon, plus the lat/lon box as GeoJSON.
type TableExtent struct {
	Native  domain.BoundingBox
	LatLon  domain.BoundingBox
	GeoJSON string
}

type SpatialStore interface {
	// ClearTable drops the geometry table if it exists.
	ClearTable(ctx context.Context, table string) error
	// DropKMLAttributes removes the presentational columns that KML
	// conversions leave behind. Columns that do not exist are skipped.
	DropKMLAttributes(ctx context.Context, table string)
	// Extent computes the bounding box of all geometries in the table.
	Extent(ctx context.Context, table string) (TableExtent, error)
	Close()
}

// Connect opens a connection pool against the spatial datastore. The URL is
// a regular postgres:// connection string.
func Connect(ctx context.Context, datastoreURL string) (SpatialStore, error) {
	db, err := sql.Open("postgres", datastoreURL)
	if err != nil {
		return nil, fmt.Errorf("failed to open datastore connection: %w", err)
	}

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to connect to datastore: %w", err)
	}

	return &store{db: db}, nil
}

type store struct {
	db *sql.DB
}

func (s *store) Close() {
	s.db.Close()
}

func (s *store) ClearTable(ctx context.Context, table string) error {
	var err error
	ctx, span := tracer.Start(ctx, "drop-table")
	defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

	_, err = s.db.ExecContext(ctx, fmt.Sprintf(`DROP TABLE IF EXISTS %s`, pq.QuoteIdentifier(table)))
	if err != nil {
		err = fmt.Errorf("failed to drop table %s: %w", table, err)
	}

	return err
}

// Columns carried over from KML placemark metadata. They hold styling hints
// rather than data, and some confuse the map server's renderer.
var kmlAttributes = []string{
	"description", "timestamp", "begin", "end", "altitudemode",
	"tessellate", "extrude", "visibility", "draworder", "icon",
}

func (s *store) DropKMLAttributes(ctx context.Context, table string) {
	log := logging.GetFromContext(ctx)

	for _, column := range kmlAttributes {
		query := fmt.Sprintf(`ALTER TABLE %s DROP COLUMN IF EXISTS %s`,
			pq.QuoteIdentifier(table), pq.QuoteIdentifier(column),
		)
		if _, err := s.db.ExecContext(ctx, query); err != nil {
			log.Warn().Err(err).Msgf("could not drop column %s from %s", column, table)
		}
	}
}

func (s *store) Extent(ctx context.Context, table string) (TableExtent, error) {
	var err error
	ctx, span := tracer.Start(ctx, "table-extent")
	defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

	query := fmt.Sprintf(
		`SELECT ST_Extent(geom), ST_Extent(ST_Transform(geom, 4326)), ST_AsGeoJSON(ST_Extent(ST_Transform(geom, 4326))) FROM %s`,
		pq.QuoteIdentifier(table),
	)

	var native, latlon, geojson sql.NullString
	err = s.db.QueryRowContext(ctx, query).Scan(&native, &latlon, &geojson)
	if err != nil {
		err = fmt.Errorf("failed to compute extent of %s: %w", table, err)
		return TableExtent{}, err
	}

	if !native.Valid || !latlon.Valid {
		err = fmt.Errorf("table %s contains no geometries", table)
		return TableExtent{}, err
	}

	extent := TableExtent{GeoJSON: geojson.String}

	if extent.Native, err = ParseBox(native.String); err != nil {
		return TableExtent{}, err
	}
	if extent.LatLon, err = ParseBox(latlon.String); err != nil {
		return TableExtent{}, err
	}

	return extent, nil
}

// ParseBox parses the text form that ST_Extent produces, for instance
// BOX(140.9 -39.2,150.0 -33.9).
func ParseBox(box string) (domain.BoundingBox, error) {
	inner := strings.TrimSuffix(strings.TrimPrefix(strings.TrimSpace(box), "BOX("), ")")
	corners := strings.Split(inner, ",")
	if len(corners) != 2 || !strings.HasPrefix(box, "BOX(") {
		return domain.BoundingBox{}, fmt.Errorf("malformed extent %q", box)
	}

	lower := strings.Fields(corners[0])
	upper := strings.Fields(corners[1])
	if len(lower) != 2 || len(upper) != 2 {
		return domain.BoundingBox{}, fmt.Errorf("malformed extent %q", box)
	}

	var bbox domain.BoundingBox
	var err error

	if bbox.MinX, err = strconv.ParseFloat(lower[0], 64); err != nil {
		return domain.BoundingBox{}, fmt.Errorf("malformed extent %q: %w", box, err)
	}
	if bbox.MinY, err = strconv.ParseFloat(lower[1], 64); err != nil {
		return domain.BoundingBox{}, fmt.Errorf("malformed extent %q: %w", box, err)
	}
	if bbox.MaxX, err = strconv.ParseFloat(upper[0], 64); err != nil {
		return domain.BoundingBox{}, fmt.Errorf("malformed extent %q: %w", box, err)
	}
	if bbox.MaxY, err = strconv.ParseFloat(upper[1], 64); err != nil {
		return domain.BoundingBox{}, fmt.Errorf("malformed extent %q: %w", box, err)
	}

	return bbox, nil
}
