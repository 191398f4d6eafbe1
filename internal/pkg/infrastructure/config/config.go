// Package config assembles the process-wide ingestor configuration from the
// environment and a yaml settings file. The resulting struct is built once
// in main and passed into every component; nothing reads ambient state at
// call time.
package config

import (
	"context"
	"fmt"
	"net/url"
	"os"
	"strings"

	"github.com/diwise/service-chassis/pkg/infrastructure/env"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/logging"
	"gopkg.in/yaml.v2"
)

type Tools struct {
	Ogr2ogr       string `yaml:"ogr2ogr"`
	GdalTranslate string `yaml:"gdal_translate"`
	GdalWarp      string `yaml:"gdalwarp"`
	GdalRetile    string `yaml:"gdal_retile"`
}

// Settings holds the file-backed part of the configuration: everything an
// operator tunes per deployment without touching the environment.
type Settings struct {
	LargeFileThreshold int64    `yaml:"large_file_threshold"`
	OrgBlacklist       []string `yaml:"org_blacklist"`
	PkgBlacklist       []string `yaml:"pkg_blacklist"`
	SourceFormats      []string `yaml:"source_formats"`
	TargetFormats      []string `yaml:"target_formats"`
	UpdatedOrgs        []string `yaml:"updated_orgs"`
	LegacyHosts        []string `yaml:"legacy_hosts"`
	RasterOwner        string   `yaml:"raster_owner"`
	Tools              Tools    `yaml:"tools"`
}

type Config struct {
	Settings

	// BotName is the catalog service account the ingestor acts as. Companion
	// resources are written under this identity and the eligibility gate uses
	// it to recognise its own edits.
	BotName string

	CatalogURL    string
	CatalogAPIKey string

	// DatastoreURL is the postgres:// connection URL of the geometry database.
	DatastoreURL string

	GeoserverAdminURL  string
	GeoserverPublicURL string

	// RasterBaseDir is the map server's raster data root. Tile pyramids are
	// written to <RasterBaseDir>/<table name>.
	RasterBaseDir string
}

func defaultSettings() Settings {
	return Settings{
		LargeFileThreshold: 100 * 1024 * 1024,
		SourceFormats: []string{
			"kml", "kmz", "shp", "shapefile", "shz", "tab", "mapinfo",
			"grid", "geotif", "geotiff",
		},
		TargetFormats: []string{"image/png", "kml", "wms", "wfs", "geojson"},
		LegacyHosts:   []string{"data.gov.au", "dga.links.com.au"},
	}
}

// Load builds the configuration from the environment and, when the file
// exists, the yaml settings at settingsFile. A missing settings file is not
// an error; the defaults cover a standard deployment.
func Load(ctx context.Context, settingsFile string) (*Config, error) {
	log := logging.GetFromContext(ctx)

	settings := defaultSettings()

	if contents, err := os.ReadFile(settingsFile); err == nil {
		if err := yaml.Unmarshal(contents, &settings); err != nil {
			return nil, fmt.Errorf("failed to parse settings file %s: %w", settingsFile, err)
		}
		log.Info().Msgf("loaded ingestor settings from %s", settingsFile)
	} else {
		log.Info().Msgf("no settings file at %s, using defaults", settingsFile)
	}

	cfg := &Config{
		Settings:           settings,
		BotName:            env.GetVariableOrDefault(log, "SPATIAL_INGESTOR_USERNAME", "spatialingestor"),
		CatalogURL:         env.GetVariableOrDie(log, "CKAN_URL", "catalog API base URL"),
		CatalogAPIKey:      env.GetVariableOrDie(log, "CKAN_API_KEY", "catalog API key for the ingestor account"),
		DatastoreURL:       env.GetVariableOrDie(log, "SPATIAL_DATASTORE_URL", "postgres URL of the geometry database"),
		GeoserverAdminURL:  env.GetVariableOrDie(log, "GEOSERVER_ADMIN_URL", "map server admin URL with credentials"),
		GeoserverPublicURL: env.GetVariableOrDefault(log, "GEOSERVER_PUBLIC_URL", ""),
		RasterBaseDir:      env.GetVariableOrDefault(log, "GEOSERVER_DATA_DIR", "/var/lib/geoserver/data"),
	}

	if cfg.GeoserverPublicURL == "" {
		siteURL := env.GetVariableOrDie(log, "CKAN_SITE_URL", "public catalog site URL")
		cfg.GeoserverPublicURL = strings.TrimRight(siteURL, "/") + "/geoserver"
	}

	if _, err := cfg.PGConnection(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// PGConnection renders the datastore URL as the PG: connection string the
// vector conversion tool expects.
func (c *Config) PGConnection() (string, error) {
	u, err := url.Parse(c.DatastoreURL)
	if err != nil || u.Host == "" || u.User == nil {
		return "", fmt.Errorf("invalid datastore URL %q", c.DatastoreURL)
	}

	password, _ := u.User.Password()
	parts := []string{
		fmt.Sprintf("dbname='%s'", strings.TrimPrefix(u.Path, "/")),
		fmt.Sprintf("host='%s'", u.Hostname()),
		fmt.Sprintf("user='%s'", u.User.Username()),
		fmt.Sprintf("password='%s'", password),
	}
	if u.Port() != "" {
		parts = append(parts, fmt.Sprintf("port='%s'", u.Port()))
	}

	return "PG:" + strings.Join(parts, " "), nil
}

// RasterDir returns the pyramid directory for a geometry table name.
func (c *Config) RasterDir(tableName string) string {
	return strings.TrimRight(c.RasterBaseDir, "/") + "/" + tableName
}
