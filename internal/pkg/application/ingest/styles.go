package ingest

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/datagovau/spatial-ingestor/internal/pkg/domain"
	"github.com/datagovau/spatial-ingestor/internal/pkg/infrastructure/geoserver"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/logging"
)

// applyStyles installs any styling found alongside the dataset: first an SLD
// bundled inside the source archive, then the dataset's first SLD resource.
// Styling failures never abort an ingestion; the layer stays published with
// the map server's default style.
func (ing *Ingestor) applyStyles(ctx context.Context, slds []domain.Resource, scratch, workspace, layer string) {
	log := logging.GetFromContext(ctx)

	if bundled, ok := findFirst(scratch, ".sld"); ok {
		name := styleName(bundled)
		if err := ing.applySLD(ctx, workspace, layer, name, bundled); err != nil {
			log.Warn().Err(err).Msgf("could not apply bundled style %s", name)
		}
	}

	if len(slds) == 0 {
		log.Info().Msg("no style resources on dataset")
		return
	}

	res := slds[0]
	if res.URL == "" {
		log.Info().Msg("style resource has no url")
		return
	}

	downloaded := filepath.Join(scratch, "resource.sld")
	if err := ing.download(ctx, res.URL, downloaded); err != nil {
		log.Warn().Err(err).Msg("could not download style resource")
		return
	}

	name := styleName(res.URL)
	if err := ing.applySLD(ctx, workspace, layer, name, downloaded); err != nil {
		log.Warn().Err(err).Msgf("could not apply style %s", name)
	}
}

func styleName(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// applySLD uploads one style document and makes it the layer's default. A
// 400 on the raw upload means the server could not parse the document as-is,
// in which case the style is recreated and uploaded with server-side
// normalisation enabled.
func (ing *Ingestor) applySLD(ctx context.Context, workspace, layer, name, file string) error {
	sld, err := os.ReadFile(file)
	if err != nil {
		return err
	}

	contentType := sniffSLDContentType(sld)
	if contentType == "" {
		return fmt.Errorf("could not determine content type of style %s", name)
	}

	if _, err := ing.mapserver.GetStyle(ctx, workspace, name); err == nil {
		if err := ing.mapserver.DeleteStyle(ctx, workspace, name); err != nil {
			return err
		}
	}

	if err := ing.mapserver.CreateStyle(ctx, workspace, name); err != nil {
		return err
	}

	if err := ing.mapserver.UpdateStyle(ctx, workspace, name, sld, contentType, true); err != nil {
		if !errors.Is(err, geoserver.ErrBadRequest) {
			return err
		}

		if err := ing.mapserver.DeleteStyle(ctx, workspace, name); err != nil {
			return err
		}
		if err := ing.mapserver.UpdateStyle(ctx, workspace, name, sld, contentType, false); err != nil {
			return err
		}
	}

	return ing.mapserver.SetDefaultStyle(ctx, layer, workspace, name)
}

func sniffSLDContentType(sld []byte) string {
	text := string(sld)
	if strings.Contains(text, "www.opengis.net/sld") {
		return "application/vnd.ogc.sld+xml"
	}
	if strings.Contains(text, "www.opengis.net/se") {
		return "application/vnd.ogc.se+xml"
	}
	return ""
}
