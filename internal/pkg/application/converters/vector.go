// Package converters wraps the external geospatial conversion tools behind
// capability interfaces, so the rest of the pipeline treats them as black
// boxes that either succeed or fail with an exit code.
package converters

import (
	"context"
	"fmt"
	"os"
	"os/exec"
)

//go:generate moq -rm -out vector_mock.go . GeometryConverter

// VectorLoadParams describes one bulk copy of a vector source into PostGIS.
type VectorLoadParams struct {
	// Source is the file or directory ogr2ogr should read.
	Source string
	// TableName is the target relation, replaced if it exists.
	TableName string
	// SRS is the CRS identifier the geometry is reprojected to.
	SRS string
	// ClientEncoding, when set, overrides PGCLIENTENCODING for the run.
	ClientEncoding string
}

// GeometryConverter bulk-loads vector sources into the geometry database.
type GeometryConverter interface {
	ToPostGIS(ctx context.Context, params VectorLoadParams) error
}

// NewGeometryConverter returns a converter that shells out to ogr2ogr with
// the given PostGIS connection string ("PG:dbname=... host=...").
func NewGeometryConverter(executable, connection string) GeometryConverter {
	if executable == "" {
		executable = "ogr2ogr"
	}
	return &ogrConverter{executable: executable, connection: connection}
}

type ogrConverter struct {
	executable string
	connection string
}

func (c *ogrConverter) ToPostGIS(ctx context.Context, params VectorLoadParams) error {
	cmd := exec.CommandContext(ctx, c.executable, ogrArgs(c.connection, params)...)
	cmd.Env = os.Environ()
	if params.ClientEncoding != "" {
		cmd.Env = append(cmd.Env, "PGCLIENTENCODING="+params.ClientEncoding)
	}

	output, err := cmd.CombinedOutput()
	if err != nil {
		return fmt.Errorf("ogr2ogr failed to convert %s: %w: %s", params.Source, err, tail(output))
	}

	return nil
}

func ogrArgs(connection string, params VectorLoadParams) []string {
	return []string{
		"-f", "PostgreSQL",
		"--config", "PG_USE_COPY", "YES",
		connection,
		params.Source,
		"-lco", "GEOMETRY_NAME=geom",
		"-lco", "PRECISION=NO",
		"-nln", params.TableName,
		"-t_srs", params.SRS,
		"-nlt", "PROMOTE_TO_MULTI",
		"-overwrite",
	}
}

// tail keeps error messages readable when a tool dumps pages of output.
func tail(output []byte) string {
	const keep = 512
	if len(output) > keep {
		output = output[len(output)-keep:]
	}
	return string(output)
}
