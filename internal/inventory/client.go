// Package inventory talks to the external dealership inventory API and the
// sentiment analyzer. Every call is a single attempt; failures are logged and
// reported as "no data", never as errors.
package inventory

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"dealership/internal/config"
	"dealership/internal/metrics"
	"dealership/internal/models"

	"github.com/go-resty/resty/v2"
)

const (
	targetBackend   = "backend"
	targetSentiment = "sentiment"

	DefaultSentiment = models.DefaultSentiment
)

type Client struct {
	http         *resty.Client
	backendURL   string
	sentimentURL string
	log          *slog.Logger
	metrics      *metrics.Metrics
}

func New(cfg *config.Config, log *slog.Logger, m *metrics.Metrics) *Client {
	return &Client{
		http:         resty.New(),
		backendURL:   strings.TrimRight(cfg.BackendURL, "/"),
		sentimentURL: cfg.SentimentURL,
		log:          log.With("component", "inventory"),
		metrics:      m,
	}
}

// Get выполняет GET к внешнему API. Возвращает тело ответа только при 200
// и валидном JSON, иначе nil.
func (c *Client) Get(ctx context.Context, endpoint string, params map[string]string) json.RawMessage {
	url := c.backendURL + endpoint
	c.log.Debug("GET", "url", url, "params", params)

	resp, err := c.http.R().
		SetContext(ctx).
		SetQueryParams(params).
		Get(url)
	if err != nil {
		c.log.Error("network exception occurred", "url", url, "error", err)
		c.metrics.Upstream(targetBackend, "transport")
		return nil
	}
	if resp.StatusCode() != http.StatusOK {
		c.log.Warn("request failed", "url", url, "status", resp.StatusCode())
		c.metrics.Upstream(targetBackend, "status")
		return nil
	}
	body := resp.Body()
	if !json.Valid(body) {
		c.log.Warn("failed to decode JSON response", "url", url)
		c.metrics.Upstream(targetBackend, "decode")
		return nil
	}

	c.metrics.Upstream(targetBackend, "ok")
	return json.RawMessage(body)
}

const (
	PostSuccess = "success"
	PostError   = "error"
)

type PostResult struct {
	Status  string
	Data    json.RawMessage
	Message string
}

func (r PostResult) OK() bool { return r.Status == PostSuccess }

// Post отправляет JSON во внешний API; успехом считаются только 201 и 202.
func (c *Client) Post(ctx context.Context, endpoint string, body json.RawMessage) PostResult {
	url := c.backendURL + endpoint
	c.log.Debug("POST", "url", url)

	resp, err := c.http.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody([]byte(body)).
		Post(url)
	if err != nil {
		c.log.Error("network exception occurred during POST", "url", url, "error", err)
		c.metrics.Upstream(targetBackend, "transport")
		return PostResult{Status: PostError, Message: "Network connection failed"}
	}

	status := resp.StatusCode()
	respBody := resp.Body()
	if status == http.StatusCreated || status == http.StatusAccepted {
		c.metrics.Upstream(targetBackend, "ok")
		res := PostResult{Status: PostSuccess}
		if json.Valid(respBody) {
			res.Data = json.RawMessage(respBody)
		}
		return res
	}

	c.log.Warn("POST failed", "url", url, "status", status, "response", string(respBody))
	c.metrics.Upstream(targetBackend, "status")
	if len(respBody) > 0 && json.Valid(respBody) {
		return PostResult{Status: PostError, Message: string(respBody)}
	}
	return PostResult{Status: PostError, Message: fmt.Sprintf("Failed with status code %d", status)}
}

// Analyze спрашивает у сервиса тональность текста. Текст подставляется в путь
// как есть, без экранирования. Любая ошибка даёт DefaultSentiment.
func (c *Client) Analyze(ctx context.Context, text string) string {
	url := c.sentimentURL + "analyze/" + text
	c.log.Debug("GET", "url", url)

	resp, err := c.http.R().SetContext(ctx).Get(url)
	if err != nil {
		c.log.Error("sentiment analyzer unreachable", "error", err)
		c.metrics.Upstream(targetSentiment, "transport")
		return DefaultSentiment
	}
	if resp.StatusCode() != http.StatusOK {
		c.log.Warn("sentiment analyzer request failed", "status", resp.StatusCode())
		c.metrics.Upstream(targetSentiment, "status")
		return DefaultSentiment
	}

	var out struct {
		Sentiment *string `json:"sentiment"`
	}
	if err := json.Unmarshal(resp.Body(), &out); err != nil {
		c.log.Warn("failed to decode sentiment response", "error", err)
		c.metrics.Upstream(targetSentiment, "decode")
		return DefaultSentiment
	}
	c.metrics.Upstream(targetSentiment, "ok")
	if out.Sentiment == nil {
		return DefaultSentiment
	}
	return *out.Sentiment
}
