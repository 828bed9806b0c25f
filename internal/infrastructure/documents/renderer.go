package documents

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"construtora_xyz/internal/usecase/interfaces"
)

var ErrRendererNotConfigured = errors.New("document renderer url not configured")

// HTTPRenderer hands filled contract text to an external document service and
// returns the URL of the rendered file. The engine only depends on the
// interfaces.IDocumentRenderer boundary; this adapter is optional and the
// routes wire it nil-tolerantly.
type HTTPRenderer struct {
	baseURL string
	client  *http.Client
}

var _ interfaces.IDocumentRenderer = (*HTTPRenderer)(nil)

func NewHTTPRenderer(baseURL string) (*HTTPRenderer, error) {
	if baseURL == "" {
		return nil, ErrRendererNotConfigured
	}
	return &HTTPRenderer{
		baseURL: baseURL,
		client:  &http.Client{Timeout: 30 * time.Second},
	}, nil
}

func (r *HTTPRenderer) Render(ctx context.Context, conteudo string) (string, error) {
	body, err := json.Marshal(map[string]string{"conteudo": conteudo})
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, r.baseURL+"/render", bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := r.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return "", fmt.Errorf("document renderer returned %d: %s", resp.StatusCode, string(raw))
	}

	var out struct {
		URL string `json:"url"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", err
	}
	return out.URL, nil
}
