package classifier

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"strings"
	"time"

	"github.com/ds124wfegd/tomato-gateway/config"
	"github.com/ds124wfegd/tomato-gateway/internal/entity"
)

const (
	imageField      = "image"
	maxResponseSize = 1 << 20
	maxErrorBody    = 512
)

// Client forwards uploaded images to the remote classification service.
type Client struct {
	endpoints  map[entity.Kind]string
	healthURL  string
	httpClient *http.Client
}

func NewClient(cfg *config.ClassifierConfig) *Client {
	return NewClientWithHTTP(cfg, &http.Client{Timeout: cfg.Timeout})
}

func NewClientWithHTTP(cfg *config.ClassifierConfig, httpClient *http.Client) *Client {
	return &Client{
		endpoints: map[entity.Kind]string{
			entity.KindDisease: cfg.DiseaseURL,
			entity.KindQuality: cfg.QualityURL,
		},
		healthURL:  cfg.HealthURL,
		httpClient: httpClient,
	}
}

// Forward sends one multipart POST to the endpoint of kind. Every transport, status or
// decoding failure is wrapped with entity.ErrRemoteUnavailable.
func (c *Client) Forward(ctx context.Context, kind entity.Kind, payload entity.ImagePayload) (*entity.ClassificationResult, error) {
	endpoint, ok := c.endpoints[kind]
	if !ok {
		return nil, fmt.Errorf("forward: %w: %q", entity.ErrUnknownKind, kind)
	}

	body, contentType, err := encodeImage(payload)
	if err != nil {
		return nil, fmt.Errorf("%w: encode multipart: %w", entity.ErrRemoteUnavailable, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, body)
	if err != nil {
		return nil, fmt.Errorf("%w: create request: %w", entity.ErrRemoteUnavailable, err)
	}
	req.Header.Set("Content-Type", contentType)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: send request: %w", entity.ErrRemoteUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return nil, fmt.Errorf("%w: status %d: %s", entity.ErrRemoteUnavailable, resp.StatusCode, strings.TrimSpace(string(snippet)))
	}

	result, err := decodeResult(kind, io.LimitReader(resp.Body, maxResponseSize))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", entity.ErrRemoteUnavailable, err)
	}
	return result, nil
}

// encodeImage builds a body with exactly one part named "image".
func encodeImage(payload entity.ImagePayload) (*bytes.Buffer, string, error) {
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)

	filename := payload.Filename
	if filename == "" {
		filename = imageField
	}
	mediaType := payload.MediaType
	if mediaType == "" {
		mediaType = entity.DefaultMediaType
	}

	header := make(textproto.MIMEHeader)
	header.Set("Content-Disposition",
		fmt.Sprintf(`form-data; name="%s"; filename="%s"`, imageField, escapeQuotes(filename)))
	header.Set("Content-Type", mediaType)

	part, err := writer.CreatePart(header)
	if err != nil {
		return nil, "", err
	}
	if _, err := part.Write(payload.Data); err != nil {
		return nil, "", err
	}
	if err := writer.Close(); err != nil {
		return nil, "", err
	}
	return body, writer.FormDataContentType(), nil
}

var quoteEscaper = strings.NewReplacer("\\", "\\\\", `"`, "\\\"")

func escapeQuotes(s string) string {
	return quoteEscaper.Replace(s)
}

// HealthStatus mirrors the classifier's /health document.
type HealthStatus struct {
	Reachable    bool `json:"reachable"`
	DiseaseModel bool `json:"disease_model"`
	QualityModel bool `json:"quality_model"`
}

// CheckHealth проверяет доступность ML-сервиса
func (c *Client) CheckHealth(ctx context.Context) (HealthStatus, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout())
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.healthURL, nil)
	if err != nil {
		return HealthStatus{}, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return HealthStatus{}, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return HealthStatus{}, fmt.Errorf("ml service unhealthy: %d", resp.StatusCode)
	}

	status := HealthStatus{Reachable: true}
	// тело необязательно: старые версии сервиса отдают пустой ответ
	_ = json.NewDecoder(io.LimitReader(resp.Body, maxErrorBody)).Decode(&status)
	status.Reachable = true
	return status, nil
}

func (c *Client) timeout() time.Duration {
	if c.httpClient.Timeout > 0 {
		return c.httpClient.Timeout
	}
	return 5 * time.Second
}
