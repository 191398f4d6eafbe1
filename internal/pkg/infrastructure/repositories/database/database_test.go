package database

import (
	"testing"

	"github.com/matryer/is"
)

func TestParseBox(t *testing.T) {
	is := is.New(t)

	bbox, err := ParseBox("BOX(10 20,30 40)")
	is.NoErr(err)
	is.Equal(bbox.MinX, 10.0)
	is.Equal(bbox.MinY, 20.0)
	is.Equal(bbox.MaxX, 30.0)
	is.Equal(bbox.MaxY, 40.0)
}

func TestParseBoxNegativeCoordinates(t *testing.T) {
	is := is.New(t)

	bbox, err := ParseBox("BOX(140.961682 -39.159192,150.024329 -33.980426)")
	is.NoErr(err)
	is.Equal(bbox.MinY, -39.159192)
	is.Equal(bbox.MaxX, 150.024329)
}

func TestParseBoxRejectsMalformedInput(t *testing.T) {
	is := is.New(t)

	for _, input := range []string{"", "BOX()", "BOX(1 2)", "POLYGON(1 2,3 4)", "BOX(a b,c d)"} {
		_, err := ParseBox(input)
		is.True(err != nil)
	}
}

func TestBoxQueryParamOrder(t *testing.T) {
	is := is.New(t)

	bbox, err := ParseBox("BOX(10 20,30 40)")
	is.NoErr(err)
	is.Equal(bbox.QueryParam(), "10,20,30,40")
}
