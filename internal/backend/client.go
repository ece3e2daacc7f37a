package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/shenikar/sentinel_monitoring_system/internal/config"
	"github.com/shenikar/sentinel_monitoring_system/internal/models"
	"github.com/sirupsen/logrus"
)

// Client - HTTP-клиент командного бэкенда. Бэкенд - внешний источник
// истины: клиент только забирает снапшоты и историю и пересылает
// действия над тревогами, ничего не вычисляя сам.
type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     *logrus.Logger
}

func NewClient(cfg *config.Config, logger *logrus.Logger) *Client {
	return &Client{
		baseURL: strings.TrimRight(cfg.BackendBaseURL, "/"),
		httpClient: &http.Client{
			Timeout: cfg.BackendTimeout,
		},
		logger: logger,
	}
}

// FetchPositions забирает полный снапшот позиций
func (c *Client) FetchPositions(ctx context.Context) ([]models.PositionRecord, error) {
	var positions []models.PositionRecord
	if err := c.getJSON(ctx, "/map/positions", &positions); err != nil {
		return nil, fmt.Errorf("backend: could not fetch positions: %w", err)
	}
	return positions, nil
}

// FetchAlerts забирает полный снапшот тревог
func (c *Client) FetchAlerts(ctx context.Context) ([]models.AlertRecord, error) {
	var alerts []models.AlertRecord
	if err := c.getJSON(ctx, "/alerts", &alerts); err != nil {
		return nil, fmt.Errorf("backend: could not fetch alerts: %w", err)
	}
	return alerts, nil
}

// FetchHistory забирает окно исторической телеметрии устройства.
// Бэкенд не гарантирует порядок, сортировка на вызывающей стороне.
func (c *Client) FetchHistory(ctx context.Context, deviceID string, hours int) ([]models.ReplayFrame, error) {
	path := fmt.Sprintf("/telemetry/history/%s?hours=%d", url.PathEscape(deviceID), hours)
	var frames []models.ReplayFrame
	if err := c.getJSON(ctx, path, &frames); err != nil {
		return nil, fmt.Errorf("backend: could not fetch history for %s: %w", deviceID, err)
	}
	return frames, nil
}

// AcknowledgeAlert подтверждает тревогу на бэкенде
func (c *Client) AcknowledgeAlert(ctx context.Context, alertID string) error {
	path := fmt.Sprintf("/alerts/%s/acknowledge", url.PathEscape(alertID))
	if err := c.do(ctx, http.MethodPatch, path, nil); err != nil {
		return fmt.Errorf("backend: could not acknowledge alert %s: %w", alertID, err)
	}
	return nil
}

// ResolveAlert закрывает тревогу на бэкенде
func (c *Client) ResolveAlert(ctx context.Context, alertID string) error {
	path := fmt.Sprintf("/alerts/%s/resolve", url.PathEscape(alertID))
	if err := c.do(ctx, http.MethodPatch, path, nil); err != nil {
		return fmt.Errorf("backend: could not resolve alert %s: %w", alertID, err)
	}
	return nil
}

// ClaimIncident назначает владельца инцидента
func (c *Client) ClaimIncident(ctx context.Context, alertID, ownerID string) error {
	path := fmt.Sprintf("/incident/claim/%s", url.PathEscape(alertID))
	body := map[string]string{"owner_id": ownerID}
	if err := c.do(ctx, http.MethodPost, path, body); err != nil {
		return fmt.Errorf("backend: could not claim incident %s: %w", alertID, err)
	}
	return nil
}

// AttestAlert запрашивает аттестацию тревоги. Результат непрозрачен,
// сервис его не проверяет.
func (c *Client) AttestAlert(ctx context.Context, alertID string) error {
	path := fmt.Sprintf("/alert/attest/%s", url.PathEscape(alertID))
	if err := c.do(ctx, http.MethodPost, path, nil); err != nil {
		return fmt.Errorf("backend: could not attest alert %s: %w", alertID, err)
	}
	return nil
}

func (c *Client) getJSON(ctx context.Context, path string, dst any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("unexpected status code %d", resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(dst); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

func (c *Client) do(ctx context.Context, method, path string, body any) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request body: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()
	// Тело ответа не требуется, вычитываем для переиспользования соединения
	_, _ = io.Copy(io.Discard, resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("unexpected status code %d", resp.StatusCode)
	}
	return nil
}
