// Package dealers proxies dealer and review queries to the inventory API and
// labels reviews with the sentiment analyzer.
package dealers

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"dealership/internal/inventory"
	"dealership/internal/models"

	"golang.org/x/sync/errgroup"
)

const AllStates = "All"

type Upstream interface {
	Get(ctx context.Context, endpoint string, params map[string]string) json.RawMessage
	Post(ctx context.Context, endpoint string, body json.RawMessage) inventory.PostResult
}

// SentimentFunc возвращает метку тональности; при ошибке — "N/A".
type SentimentFunc func(ctx context.Context, text string) string

// Result — бизнес-результат операции. В JSON превращается только на границе HTTP.
type Result struct {
	Status  int
	Message string
	Key     string
	Payload any
}

func (r Result) Body() map[string]any {
	body := map[string]any{"status": r.Status}
	if r.Message != "" {
		body["message"] = r.Message
	}
	if r.Key != "" {
		body[r.Key] = r.Payload
	}
	return body
}

type Service struct {
	upstream  Upstream
	sentiment SentimentFunc
	workers   int
	log       *slog.Logger
}

// NewService: workers <= 1 — отзывы размечаются строго по одному.
func NewService(upstream Upstream, sentiment SentimentFunc, workers int, log *slog.Logger) *Service {
	return &Service{
		upstream:  upstream,
		sentiment: sentiment,
		workers:   workers,
		log:       log.With("component", "dealers"),
	}
}

func (s *Service) ListDealers(ctx context.Context, state string) Result {
	endpoint := "/fetchDealers"
	if state != "" && state != AllStates {
		endpoint = "/fetchDealers/" + url.PathEscape(state)
	}
	s.log.Debug("fetching dealers", "endpoint", endpoint)

	raw := s.upstream.Get(ctx, endpoint, nil)
	dealers, ok := decodeDealers(raw)
	if !ok {
		if kindOf(raw) != kindNone {
			s.log.Warn("unexpected dealers payload, forwarding as is", "endpoint", endpoint)
		}
		return Result{Status: http.StatusOK, Key: "dealers", Payload: raw}
	}
	return Result{Status: http.StatusOK, Key: "dealers", Payload: dealers}
}

func (s *Service) GetDealer(ctx context.Context, id string) Result {
	if strings.TrimSpace(id) == "" {
		return Result{Status: http.StatusBadRequest, Message: "Bad Request"}
	}

	dealer := s.upstream.Get(ctx, "/fetchDealer/"+url.PathEscape(id), nil)
	return Result{Status: http.StatusOK, Key: "dealer", Payload: dealer}
}

func (s *Service) GetDealerReviews(ctx context.Context, id string) Result {
	if strings.TrimSpace(id) == "" {
		return Result{Status: http.StatusBadRequest, Message: "Bad Request: Missing dealer ID"}
	}

	raw := s.upstream.Get(ctx, "/fetchReviews/dealer/"+url.PathEscape(id), nil)
	reviews, skipped, ok := decodeReviews(raw)
	if !ok {
		return Result{Status: http.StatusNotFound, Message: "Reviews not found for this dealer."}
	}
	for _, err := range skipped {
		s.log.Warn("skipping malformed review", "dealer_id", id, "error", err)
	}

	s.enrich(ctx, reviews)
	return Result{Status: http.StatusOK, Key: "reviews", Payload: reviews}
}

// enrich размечает отзывы на месте; горутины пишут в разные элементы среза.
func (s *Service) enrich(ctx context.Context, reviews []models.DealerReview) {
	if s.workers <= 1 {
		for i := range reviews {
			s.label(ctx, &reviews[i])
		}
		return
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.workers)
	for i := range reviews {
		i := i
		g.Go(func() error {
			s.label(gctx, &reviews[i])
			return nil
		})
	}
	_ = g.Wait()
}

func (s *Service) label(ctx context.Context, r *models.DealerReview) {
	r.Sentiment = s.sentiment(ctx, r.Review)
	*r = r.WithDefaults()
	s.log.Debug("review sentiment", "review_id", r.ID, "sentiment", r.Sentiment)
}

// AddReview пересылает отзыв во внешний API. Проверка авторизации делается
// раньше, в middleware.
func (s *Service) AddReview(ctx context.Context, method string, body []byte) (res Result) {
	if method != http.MethodPost {
		return Result{Status: http.StatusMethodNotAllowed, Message: "Method not allowed"}
	}

	defer func() {
		if rec := recover(); rec != nil {
			s.log.Error("error posting review", "panic", rec)
			res = Result{Status: http.StatusInternalServerError, Message: fmt.Sprintf("An unexpected error occurred: %v", rec)}
		}
	}()

	if !json.Valid(body) {
		return Result{Status: http.StatusBadRequest, Message: "Invalid JSON format in request body"}
	}

	posted := s.upstream.Post(ctx, "/api/review", json.RawMessage(body))
	if posted.OK() {
		return Result{Status: http.StatusCreated, Message: "Review posted successfully"}
	}
	return Result{Status: http.StatusInternalServerError, Message: "Failed to post review: " + posted.Message}
}
