// Package crs resolves a coordinate reference system identifier from the
// projection definition shipped alongside a spatial source file.
package crs

import (
	"regexp"
	"strings"
)

// Default is assumed whenever nothing better can be derived from the source.
const Default = "EPSG:4326"

// Projection definitions exported by desktop GIS tools frequently omit the
// authority code. This table maps well-known fragments of such historical
// definitions onto their codes. The fragments are disjoint in practice, so
// lookup order does not matter.
var knownProjections = []struct {
	code    string
	markers []string
}{
	{"EPSG:28356", []string{"GDA_1994_MGA_Zone_56", "GDA94_MGA_zone_56"}},
	{"EPSG:28355", []string{"GDA_1994_MGA_Zone_55", "GDA94_MGA_zone_55"}},
	{"EPSG:28354", []string{"GDA_1994_MGA_Zone_54", "GDA94_MGA_zone_54"}},
	{"EPSG:4283", []string{
		"GCS_GDA_1994",
		`GEOGCS["GDA94",DATUM["D_GDA_1994",SPHEROID["GRS_1980"`,
	}},
	{"ESRI:102029", []string{"Asia_South_Equidistant_Conic"}},
	{"EPSG:3577", []string{"Australian_Albers_Equal_Area_Conic_WGS_1984"}},
	{"EPSG:3857", []string{"WGS_1984_Web_Mercator_Auxiliary_Sphere"}},
	{"EPSG:4326", []string{
		"MapInfo Generic Lat/Long",
		`GEOGCS["GCS_WGS_1984",DATUM["D_WGS_1984",SPHEROID["WGS_1984"`,
	}},
}

var authorityExp = regexp.MustCompile(`AUTHORITY\[\s*"([A-Za-z]+)"\s*,\s*"?(\d+)"?\s*\]`)

// Resolve determines the CRS for a projection definition in WKT or ESRI
// format. It tries the definition's own authority declaration first, then
// the known-projection table, and finally falls back to WGS84 rather than
// failing. The fallback is deliberately lenient: a wrong guess surfaces
// later as an invalid reprojected bounding box.
func Resolve(projectionText string) string {
	if code, ok := authorityCode(projectionText); ok {
		return code
	}

	for _, known := range knownProjections {
		for _, marker := range known.markers {
			if strings.Contains(projectionText, marker) {
				return known.code
			}
		}
	}

	return Default
}

// authorityCode extracts the root AUTHORITY declaration from a WKT
// definition. WKT nests authority nodes per element and closes with the
// root's, so the last match names the full CRS.
func authorityCode(wkt string) (string, bool) {
	matches := authorityExp.FindAllStringSubmatch(wkt, -1)
	if len(matches) == 0 {
		return "", false
	}

	last := matches[len(matches)-1]
	return strings.ToUpper(last[1]) + ":" + last[2], true
}
