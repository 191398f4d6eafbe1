// Package catalog is a thin client for the publishing platform's action API.
// The catalog owns datasets and resources; the ingestor only reads them and
// writes back the spatial footprint and companion resources.
package catalog

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httputil"

	"github.com/datagovau/spatial-ingestor/internal/pkg/domain"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/logging"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

//go:generate moq -rm -out catalog_mock.go . Catalog

// ErrNotFound is returned when the catalog reports that the requested
// object does not exist.
var ErrNotFound = fmt.Errorf("not found")

type Catalog interface {
	PackageShow(ctx context.Context, id string) (*domain.Dataset, error)
	PackageUpdate(ctx context.Context, dataset *domain.Dataset) error
	PackageList(ctx context.Context) ([]string, error)
	PackageSearch(ctx context.Context, filterQuery string) ([]string, error)
	PackageActivityList(ctx context.Context, id string) ([]domain.Activity, error)
	UserShow(ctx context.Context, id string) (*domain.User, error)
	ResourceCreate(ctx context.Context, resource domain.Resource) error
	ResourceDelete(ctx context.Context, id string) error
}

func New(baseURL, apiKey string) Catalog {
	return &actionAPI{
		baseURL: baseURL,
		apiKey:  apiKey,
		httpClient: http.Client{
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		},
	}
}

type actionAPI struct {
	baseURL    string
	apiKey     string
	httpClient http.Client
}

func (c *actionAPI) PackageShow(ctx context.Context, id string) (*domain.Dataset, error) {
	dataset := &domain.Dataset{}
	err := c.call(ctx, "package_show", map[string]any{"id": id}, dataset)
	if err != nil {
		return nil, err
	}
	return dataset, nil
}

func (c *actionAPI) PackageUpdate(ctx context.Context, dataset *domain.Dataset) error {
	return c.call(ctx, "package_update", dataset, nil)
}

func (c *actionAPI) PackageList(ctx context.Context) ([]string, error) {
	names := []string{}
	err := c.call(ctx, "package_list", map[string]any{}, &names)
	return names, err
}

func (c *actionAPI) PackageSearch(ctx context.Context, filterQuery string) ([]string, error) {
	result := struct {
		Results []struct {
			ID string `json:"id"`
		} `json:"results"`
	}{}

	err := c.call(ctx, "package_search", map[string]any{"fq": filterQuery, "rows": 1000}, &result)
	if err != nil {
		return nil, err
	}

	ids := make([]string, 0, len(result.Results))
	for _, r := range result.Results {
		ids = append(ids, r.ID)
	}
	return ids, nil
}

func (c *actionAPI) PackageActivityList(ctx context.Context, id string) ([]domain.Activity, error) {
	activities := []domain.Activity{}
	err := c.call(ctx, "package_activity_list", map[string]any{"id": id}, &activities)
	return activities, err
}

func (c *actionAPI) UserShow(ctx context.Context, id string) (*domain.User, error) {
	user := &domain.User{}
	err := c.call(ctx, "user_show", map[string]any{"id": id}, user)
	if err != nil {
		return nil, err
	}
	return user, nil
}

func (c *actionAPI) ResourceCreate(ctx context.Context, resource domain.Resource) error {
	return c.call(ctx, "resource_create", resource, nil)
}

func (c *actionAPI) ResourceDelete(ctx context.Context, id string) error {
	return c.call(ctx, "resource_delete", map[string]any{"id": id}, nil)
}

// call posts an action request and unwraps the platform's response envelope
// into result, when a result is wanted.
func (c *actionAPI) call(ctx context.Context, action string, payload any, result any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal %s payload: %w", action, err)
	}

	requestURL := fmt.Sprintf("%s/api/3/action/%s", c.baseURL, action)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, requestURL, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Add("Content-Type", "application/json")
	req.Header.Add("Authorization", c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode == http.StatusNotFound {
		return ErrNotFound
	}

	if resp.StatusCode >= http.StatusBadRequest {
		reqbytes, _ := httputil.DumpRequest(req, false)
		respbytes, _ := httputil.DumpResponse(resp, false)

		log := logging.GetFromContext(ctx)
		log.Error().Str("request", string(reqbytes)).Str("response", string(respbytes)).Msgf("%s failed", action)
		return fmt.Errorf("%s returned status %d", action, resp.StatusCode)
	}

	envelope := struct {
		Success bool            `json:"success"`
		Result  json.RawMessage `json:"result"`
		Error   struct {
			Message string `json:"message"`
			Type    string `json:"__type"`
		} `json:"error"`
	}{}

	if err := json.Unmarshal(respBody, &envelope); err != nil {
		return fmt.Errorf("failed to unmarshal %s response: %w", action, err)
	}

	if !envelope.Success {
		if envelope.Error.Type == "Not Found Error" {
			return ErrNotFound
		}
		return fmt.Errorf("%s failed: %s", action, envelope.Error.Message)
	}

	if result != nil {
		if err := json.Unmarshal(envelope.Result, result); err != nil {
			return fmt.Errorf("failed to unmarshal %s result: %w", action, err)
		}
	}

	return nil
}
