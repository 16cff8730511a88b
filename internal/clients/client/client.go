package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/avast/retry-go/v4"
	"github.com/rs/zerolog/log"

	"github.com/nymtech/nym-explorer-indexer/internal/observability/metrics"
	"github.com/nymtech/nym-explorer-indexer/internal/types"
)

const maxErrorBodyBytes = 512

type HttpClient interface {
	GetBaseURL() string
	GetDefaultRequestTimeout() time.Duration
	GetHttpClient() *http.Client
}

type HttpClientOptions struct {
	Timeout time.Duration
	Path    string
	// TemplatePath is the path without parameters, used as a metrics label
	TemplatePath string
	Headers      map[string]string
}

func isAllowedMethod(method string) bool {
	return method == http.MethodGet || method == http.MethodPost
}

func sendRequest[I any, R any](
	ctx context.Context, client HttpClient, method string, opts *HttpClientOptions, input *I,
) (*R, *types.Error) {
	if !isAllowedMethod(method) {
		return nil, types.NewInternalServiceError(fmt.Errorf("method %s is not allowed", method))
	}
	url := fmt.Sprintf("%s%s", client.GetBaseURL(), opts.Path)

	var body io.Reader
	if input != nil && method == http.MethodPost {
		payload, err := json.Marshal(input)
		if err != nil {
			return nil, types.NewErrorWithMsg(
				http.StatusInternalServerError,
				types.InternalServiceError,
				"failed to marshal request body",
			)
		}
		body = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, body)
	if err != nil {
		return nil, types.NewError(http.StatusInternalServerError, types.InternalServiceError, err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for k, v := range opts.Headers {
		req.Header.Set(k, v)
	}

	metricsRecorder := metrics.StartClientRequestDurationTimer(
		client.GetBaseURL(), method, opts.TemplatePath,
	)

	resp, err := client.GetHttpClient().Do(req)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
			metricsRecorder(http.StatusRequestTimeout)
			return nil, types.NewError(http.StatusRequestTimeout, types.FetchFailure,
				fmt.Errorf("request to %s timed out or was cancelled: %w", opts.TemplatePath, err))
		}
		metricsRecorder(0)
		return nil, types.NewError(http.StatusBadGateway, types.FetchFailure,
			fmt.Errorf("failed to send request to %s: %w", opts.TemplatePath, err))
	}
	defer resp.Body.Close()
	metricsRecorder(resp.StatusCode)

	if resp.StatusCode == http.StatusTooManyRequests {
		return nil, types.NewErrorWithMsg(http.StatusTooManyRequests, types.RateLimited,
			fmt.Sprintf("rate limit exceeded when calling %s", opts.TemplatePath))
	}

	if resp.StatusCode == http.StatusNotFound {
		return nil, types.NewErrorWithMsg(http.StatusNotFound, types.NotFound,
			fmt.Sprintf("%s returned not found", opts.Path))
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodyBytes))
		return nil, types.NewError(http.StatusBadGateway, types.FetchFailure,
			fmt.Errorf("%s returned status %d: %s", opts.TemplatePath, resp.StatusCode, bytes.TrimSpace(snippet)))
	}

	var output R
	if err := json.NewDecoder(resp.Body).Decode(&output); err != nil {
		return nil, types.NewError(http.StatusBadGateway, types.FetchFailure,
			fmt.Errorf("failed to decode response from %s: %w", opts.TemplatePath, err))
	}

	return &output, nil
}

// SendRequest performs a json request against the client's base url. The
// request is bounded by opts.Timeout, or the client's default timeout.
func SendRequest[I any, R any](
	ctx context.Context, client HttpClient, method string, opts *HttpClientOptions, input *I,
) (*R, *types.Error) {
	timeout := client.GetDefaultRequestTimeout()
	if opts.Timeout > 0 {
		timeout = opts.Timeout
	}

	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	return sendRequest[I, R](ctx, client, method, opts, input)
}

// IsRetryable reports whether an error from SendRequest may succeed when the
// request is repeated.
func IsRetryable(err error) bool {
	var e *types.Error
	if !errors.As(err, &e) {
		return false
	}
	switch e.ErrorCode {
	case types.RateLimited:
		return true
	case types.FetchFailure:
		return e.StatusCode == http.StatusBadGateway
	default:
		return false
	}
}

// IsNotFound reports whether the upstream answered 404.
func IsNotFound(err error) bool {
	var e *types.Error
	return errors.As(err, &e) && e.ErrorCode == types.NotFound
}

// CallWithRetry runs call up to attempts times with exponential backoff,
// retrying only errors IsRetryable accepts. It stops early when ctx is done.
func CallWithRetry[T any](
	ctx context.Context,
	call retry.RetryableFuncWithData[T],
	attempts uint,
	interval time.Duration,
) (T, error) {
	if attempts == 0 {
		attempts = 1
	}
	result, err := retry.DoWithData(call,
		retry.Context(ctx),
		retry.Attempts(attempts),
		retry.Delay(interval),
		retry.DelayType(retry.BackOffDelay),
		retry.LastErrorOnly(true),
		retry.RetryIf(IsRetryable),
		retry.OnRetry(func(n uint, err error) {
			log.Ctx(ctx).Debug().
				Uint("attempt", n+1).
				Uint("max_attempts", attempts).
				Err(err).
				Msg("failed to call upstream, retrying")
		}))
	if err != nil {
		var zero T
		return zero, err
	}
	return result, nil
}
