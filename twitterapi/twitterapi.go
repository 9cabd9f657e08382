package twitterapi

import (
	"context"
	"crypto/tls"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/google/go-querystring/query"
)

const DefaultBaseURL = "https://api.twitter.com/2"

// RequestRecorder receives one record per finished lookup. Recording
// failures are logged and never fail the lookup.
type RequestRecorder interface {
	RecordRequest(ctx context.Context, record RequestRecord) error
}

// TwitterAPIService issues lookups against the v2 API. It holds no mutable
// state after construction and can be shared between goroutines.
type TwitterAPIService struct {
	bearerToken string
	baseUrl     string
	httpClient  *http.Client
	logger      *slog.Logger
	recorder    RequestRecorder
}

type Option func(*TwitterAPIService)

// WithHTTPClient replaces the transport, including any proxy set up from
// proxyDSN.
func WithHTTPClient(client *http.Client) Option {
	return func(s *TwitterAPIService) {
		s.httpClient = client
	}
}

func WithLogger(logger *slog.Logger) Option {
	return func(s *TwitterAPIService) {
		s.logger = logger
	}
}

func WithRecorder(recorder RequestRecorder) Option {
	return func(s *TwitterAPIService) {
		s.recorder = recorder
	}
}

func NewTwitterAPIService(bearerToken string, baseUrl string, proxyDSN string, opts ...Option) (*TwitterAPIService, error) {
	if bearerToken == "" {
		return nil, fmt.Errorf("bearer token is required")
	}
	if baseUrl == "" {
		baseUrl = DefaultBaseURL
	}

	transport := &http.Transport{}
	if proxyDSN != "" {
		proxyURL, err := url.Parse(proxyDSN)
		if err != nil {
			return nil, fmt.Errorf("error parse proxy dsn: %w", err)
		}

		transport = &http.Transport{
			Proxy: http.ProxyURL(proxyURL),
			TLSClientConfig: &tls.Config{
				InsecureSkipVerify: false,
			},
		}
	}

	s := &TwitterAPIService{
		bearerToken: bearerToken,
		baseUrl:     strings.TrimRight(baseUrl, "/"),
		httpClient:  &http.Client{Transport: transport},
		logger:      slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

func (s *TwitterAPIService) makeRequest(ctx context.Context, endpoint, resourceID string, params any) (*APIResponse, error) {
	uri := s.baseUrl + "/" + endpoint + "/" + url.PathEscape(resourceID)

	values, err := query.Values(params)
	if err != nil {
		return nil, fmt.Errorf("error encode params: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, uri, nil)
	if err != nil {
		return nil, fmt.Errorf("error create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+s.bearerToken)
	req.URL.RawQuery = values.Encode()

	s.logger.Debug("twitter api request", "endpoint", endpoint, "id", resourceID, "query", req.URL.RawQuery)

	started := time.Now()
	response, err := s.do(req)
	elapsed := time.Since(started)

	status := 0
	if response != nil {
		status = response.StatusCode
	}
	requestsTotal.WithLabelValues(endpoint, strconv.Itoa(status)).Inc()
	requestDuration.WithLabelValues(endpoint).Observe(elapsed.Seconds())

	if err == nil && !response.IsSuccess() {
		err = &RequestFailedError{StatusCode: response.StatusCode, Body: response.RawBody}
	}
	s.record(ctx, RequestRecord{
		Endpoint:   endpoint,
		ResourceID: resourceID,
		URL:        req.URL.String(),
		StatusCode: status,
		Duration:   elapsed,
		Err:        err,
		StartedAt:  started,
	})
	if err != nil {
		return nil, err
	}

	s.logger.Debug("twitter api response", "endpoint", endpoint, "id", resourceID, "status", status, "bytes", len(response.RawBody), "elapsed", elapsed)
	return response, nil
}

func (s *TwitterAPIService) do(req *http.Request) (*APIResponse, error) {
	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("error send request: %w", err)
	}
	defer resp.Body.Close()

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("error read response: %w", err)
	}

	return &APIResponse{
		StatusCode: resp.StatusCode,
		Headers:    resp.Header,
		RawBody:    bodyBytes,
	}, nil
}

func (s *TwitterAPIService) record(ctx context.Context, record RequestRecord) {
	if s.recorder == nil {
		return
	}
	if err := s.recorder.RecordRequest(ctx, record); err != nil {
		s.logger.Warn("failed to record request", "endpoint", record.Endpoint, "id", record.ResourceID, "error", err)
	}
}

// GetTweet fetches GET /tweets/{id}.
func (s *TwitterAPIService) GetTweet(ctx context.Context, id string, lookup TweetLookup) (*Tweet, error) {
	response, err := s.makeRequest(ctx, EndpointTweet, id, lookup)
	if err != nil {
		return nil, fmt.Errorf("error tweet lookup: %w", err)
	}

	tweet, err := ParseTweetResponse(response.RawBody)
	if err != nil {
		return nil, fmt.Errorf("error tweet lookup: %w", err)
	}
	if entities, ok := tweet.Entities.Get(); ok {
		s.warnSpans("tweet", tweet.ID, entities.CheckSpans(tweet.Text))
	}
	return tweet, nil
}

// GetUser fetches GET /users/{id}.
func (s *TwitterAPIService) GetUser(ctx context.Context, id string, lookup UserLookup) (*User, error) {
	return s.getUser(ctx, EndpointUser, id, lookup)
}

// GetUserByUsername fetches GET /users/by/username/{username}.
func (s *TwitterAPIService) GetUserByUsername(ctx context.Context, username string, lookup UserLookup) (*User, error) {
	return s.getUser(ctx, EndpointUserByUsername, strings.TrimPrefix(username, "@"), lookup)
}

func (s *TwitterAPIService) getUser(ctx context.Context, endpoint, resourceID string, lookup UserLookup) (*User, error) {
	response, err := s.makeRequest(ctx, endpoint, resourceID, lookup)
	if err != nil {
		return nil, fmt.Errorf("error user lookup: %w", err)
	}

	user, err := ParseUserResponse(response.RawBody)
	if err != nil {
		return nil, fmt.Errorf("error user lookup: %w", err)
	}
	if description, ok := user.Description.Get(); ok {
		s.warnSpans("user", user.ID, description.Entities.CheckSpans(description.Text))
	}
	return user, nil
}

func (s *TwitterAPIService) warnSpans(kind, id string, spanErrs []SpanError) {
	for _, spanErr := range spanErrs {
		s.logger.Warn("entity span outside text", "kind", kind, "id", id, "error", spanErr.Error())
	}
}
