package domain

import (
	"fmt"
	"strings"
)

type Organisation struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type Resource struct {
	ID           string `json:"id,omitempty"`
	PackageID    string `json:"package_id,omitempty"`
	Name         string `json:"name,omitempty"`
	Description  string `json:"description,omitempty"`
	Format       string `json:"format"`
	URL          string `json:"url"`
	WMSLayer     string `json:"wms_layer,omitempty"`
	WFSLayer     string `json:"wfs_layer,omitempty"`
	LastModified string `json:"last_modified,omitempty"`
}

type Dataset struct {
	ID               string        `json:"id"`
	Name             string        `json:"name"`
	Title            string        `json:"title"`
	Private          bool          `json:"private"`
	State            string        `json:"state"`
	Spatial          string        `json:"spatial,omitempty"`
	HarvestSourceID  string        `json:"harvest_source_id,omitempty"`
	SpatialHarvester bool          `json:"spatial_harvester,omitempty"`
	OwnerOrg         string        `json:"owner_org,omitempty"`
	Organisation     *Organisation `json:"organization,omitempty"`
	Resources        []Resource    `json:"resources"`
}

// HasFormat reports whether any resource on the dataset carries the given
// format (case-insensitive).
func (d *Dataset) HasFormat(format string) bool {
	for _, r := range d.Resources {
		if strings.EqualFold(r.Format, format) {
			return true
		}
	}
	return false
}

type Activity struct {
	ID        string `json:"id"`
	UserID    string `json:"user_id"`
	Timestamp string `json:"timestamp,omitempty"`
}

type User struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// BoundingBox is an axis-aligned extent in the coordinate reference system
// named by CRS.
type BoundingBox struct {
	MinX float64 `json:"minx"`
	MaxX float64 `json:"maxx"`
	MinY float64 `json:"miny"`
	MaxY float64 `json:"maxy"`
	CRS  string  `json:"crs,omitempty"`
}

// QueryParam renders the box the way WMS/WFS query strings expect it.
func (b BoundingBox) QueryParam() string {
	return fmt.Sprintf("%s,%s,%s,%s",
		trimFloat(b.MinX), trimFloat(b.MinY), trimFloat(b.MaxX), trimFloat(b.MaxY))
}

func trimFloat(f float64) string {
	s := strings.TrimRight(fmt.Sprintf("%f", f), "0")
	return strings.TrimRight(s, ".")
}
