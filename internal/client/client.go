package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"cpu-scheduler/internal/requests"
	"cpu-scheduler/internal/responses"
)

var ErrServer = errors.New("scheduler server error")

// Client submits process lists to a scheduler server's /api/v1 endpoints.
type Client struct {
	BaseURL    string
	HTTPClient *http.Client
	Log        *slog.Logger
}

func New(baseURL string, log *slog.Logger) *Client {
	if log == nil {
		log = slog.Default()
	}
	return &Client{
		BaseURL:    strings.TrimRight(baseURL, "/"),
		HTTPClient: &http.Client{},
		Log:        log,
	}
}

// Simulate runs one algorithm remotely.
func (c *Client) Simulate(ctx context.Context, algorithm string, request *requests.ScheduleRequests) (responses.ScheduleResponse, error) {
	var response responses.ScheduleResponse
	err := c.post(ctx, "/api/v1/"+algorithm, request, &response)
	return response, err
}

// SimulateAll runs every algorithm remotely, keyed by algorithm name.
func (c *Client) SimulateAll(ctx context.Context, request *requests.ScheduleRequests) (map[string]responses.ScheduleResponse, error) {
	response := map[string]responses.ScheduleResponse{}
	err := c.post(ctx, "/api/v1/all", request, &response)
	return response, err
}

func (c *Client) post(ctx context.Context, path string, body any, out any) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("encoding request: %w", err)
	}
	url := c.BaseURL + path
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	c.Log.Debug("sending schedule request", slog.String("url", url))
	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return fmt.Errorf("POST %s: %w", url, err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("reading response from %s: %w", url, err)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var serverErr struct {
			Error string `json:"error"`
		}
		if json.Unmarshal(data, &serverErr) == nil && serverErr.Error != "" {
			return fmt.Errorf("%w: %d %s", ErrServer, resp.StatusCode, serverErr.Error)
		}
		return fmt.Errorf("%w: %d", ErrServer, resp.StatusCode)
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("decoding response from %s: %w", url, err)
	}
	return nil
}
