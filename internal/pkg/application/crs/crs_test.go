package crs

import (
	"testing"

	"github.com/matryer/is"
)

const gda94WKT = `GEOGCS["GDA94",DATUM["Geocentric_Datum_of_Australia_1994",SPHEROID["GRS 1980",6378137,298.257222101,AUTHORITY["EPSG","7019"]],AUTHORITY["EPSG","6283"]],PRIMEM["Greenwich",0,AUTHORITY["EPSG","8901"]],UNIT["degree",0.0174532925199433,AUTHORITY["EPSG","9122"]],AUTHORITY["EPSG","4283"]]`

func TestResolveReadsRootAuthority(t *testing.T) {
	is := is.New(t)
	is.Equal(Resolve(gda94WKT), "EPSG:4283")
}

func TestResolveFallsBackToKnownProjectionTable(t *testing.T) {
	is := is.New(t)

	// ESRI-style definitions carry no AUTHORITY nodes at all.
	is.Equal(Resolve(`PROJCS["GDA_1994_MGA_Zone_56",GEOGCS["GCS_GDA_1994",...]]`), "EPSG:28356")
	is.Equal(Resolve(`PROJCS["Asia_South_Equidistant_Conic",...]`), "ESRI:102029")
	is.Equal(Resolve(`PROJCS["WGS_1984_Web_Mercator_Auxiliary_Sphere",...]`), "EPSG:3857")
}

func TestResolveNeverFails(t *testing.T) {
	is := is.New(t)

	for _, input := range []string{"", "garbage", `PROJCS["Totally_Custom_Projection"]`} {
		is.Equal(Resolve(input), Default) // unresolvable input defaults to WGS84
	}
}
