package ingest

import (
	"archive/zip"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/http/httputil"
	"os"
	"path/filepath"
	"strings"

	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/logging"
)

func (ing *Ingestor) download(ctx context.Context, rawURL, dest string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := ing.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to download %s: %w", rawURL, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		respbytes, _ := httputil.DumpResponse(resp, false)

		log := logging.GetFromContext(ctx)
		log.Error().Str("response", string(respbytes)).Msgf("download of %s failed", rawURL)
		return fmt.Errorf("download of %s returned status %d", rawURL, resp.StatusCode)
	}

	out, err := os.Create(dest)
	if err != nil {
		return err
	}
	defer out.Close()

	if _, err := io.Copy(out, resp.Body); err != nil {
		return fmt.Errorf("failed to save %s: %w", rawURL, err)
	}

	return nil
}

// unzipFlat extracts all files from the archive directly into dir, ignoring
// the directory structure inside the zip. Source archives nest their payload
// arbitrarily deep and the conversion tools expect a flat directory.
func unzipFlat(archive, dir string) error {
	r, err := zip.OpenReader(archive)
	if err != nil {
		return fmt.Errorf("failed to open archive %s: %w", archive, err)
	}
	defer r.Close()

	for _, f := range r.File {
		if f.FileInfo().IsDir() {
			continue
		}

		name := filepath.Base(filepath.Clean(f.Name))
		if name == "." || name == string(filepath.Separator) {
			continue
		}

		if err := extractOne(f, filepath.Join(dir, name)); err != nil {
			return err
		}
	}

	return nil
}

func extractOne(f *zip.File, dest string) error {
	in, err := f.Open()
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.Create(dest)
	if err != nil {
		return err
	}
	defer out.Close()

	_, err = io.Copy(out, in)
	return err
}

// findFirst returns the lexicographically first file in dir carrying one of
// the extensions, compared case insensitively.
func findFirst(dir string, exts ...string) (string, bool) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return "", false
	}

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		ext := strings.ToLower(filepath.Ext(entry.Name()))
		for _, want := range exts {
			if ext == want {
				return filepath.Join(dir, entry.Name()), true
			}
		}
	}

	return "", false
}

func hasAnySuffix(value string, suffixes ...string) bool {
	lowered := strings.ToLower(value)
	for _, suffix := range suffixes {
		if strings.HasSuffix(lowered, suffix) {
			return true
		}
	}
	return false
}

func fileLargerThan(path string, threshold int64) (bool, error) {
	info, err := os.Stat(path)
	if err != nil {
		return false, err
	}
	return info.Size() > threshold, nil
}
