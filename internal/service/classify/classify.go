// Package classify defines the image-classifier collaborator. The classifier
// itself runs elsewhere; this package only speaks its interface.
package classify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/adarsh8081/e-waste-management/internal/config"
)

// Result is what the classifier reports for one image.
type Result struct {
	Label      string   `json:"label"`
	Confidence float64  `json:"confidence"`
	Guidelines []string `json:"guidelines"`
}

// Classifier is the collaborator contract.
type Classifier interface {
	Classify(ctx context.Context, image []byte) (Result, error)
	DatasetInfo(ctx context.Context) (map[string]any, error)
}

// Remote is the HTTP implementation of Classifier.
type Remote struct {
	endpoint string
	client   *http.Client
}

// NewRemote returns the remote classifier, or nil when no endpoint is
// configured.
func NewRemote(cfg config.ClassifierConfig) *Remote {
	if cfg.Endpoint == "" {
		return nil
	}
	return &Remote{
		endpoint: cfg.Endpoint,
		client:   &http.Client{Timeout: cfg.Timeout},
	}
}

// Classify submits image bytes and returns the classification.
func (r *Remote) Classify(ctx context.Context, image []byte) (Result, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, r.endpoint+"/classify", bytes.NewReader(image))
	if err != nil {
		return Result{}, fmt.Errorf("build classify request: %w", err)
	}
	req.Header.Set("Content-Type", "application/octet-stream")

	resp, err := r.client.Do(req)
	if err != nil {
		return Result{}, fmt.Errorf("call classifier: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return Result{}, fmt.Errorf("classifier returned %d", resp.StatusCode)
	}

	var result Result
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return Result{}, fmt.Errorf("decode classify response: %w", err)
	}
	return result, nil
}

// DatasetInfo fetches the classifier's category/dataset description.
func (r *Remote) DatasetInfo(ctx context.Context) (map[string]any, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, r.endpoint+"/dataset-info", nil)
	if err != nil {
		return nil, fmt.Errorf("build dataset-info request: %w", err)
	}

	resp, err := r.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("call classifier: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("classifier returned %d", resp.StatusCode)
	}

	var info map[string]any
	if err := json.NewDecoder(resp.Body).Decode(&info); err != nil {
		return nil, fmt.Errorf("decode dataset-info response: %w", err)
	}
	return info, nil
}
