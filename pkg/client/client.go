// Package client performs the REST round-trips for the Shopfront admin API:
// one HTTP call per operation, with failures classified into the transport,
// status, and decode error kinds before they reach a store.
package client

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/shopfront-io/shopfront/pkg/types"
)

// Client is a thin wrapper around one resty client bound to the API base URL.
// Safe for concurrent use.
type Client struct {
	rest *resty.Client
	log  *zap.Logger
}

// New creates a Client from the given config. The config is validated; the
// token, when set, is sent as a bearer Authorization header on every request.
// A nil logger disables logging.
func New(cfg types.Config, logger *zap.Logger) (*Client, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	rest := resty.New().
		SetBaseURL(strings.TrimRight(cfg.BaseURL, "/")).
		SetTimeout(cfg.EffectiveTimeout()).
		SetHeader("Accept", "application/json")
	if cfg.Token != "" {
		rest.SetAuthToken(cfg.Token)
	}

	return &Client{rest: rest, log: logger}, nil
}

// do performs one round-trip and classifies the failure modes. The returned
// body is nil on any error.
func (c *Client) do(ctx context.Context, method, path string, body any, headers map[string]string) ([]byte, int, error) {
	req := c.rest.R().SetContext(ctx)
	if body != nil {
		req.SetHeader("Content-Type", "application/json")
		req.SetBody(body)
	}
	for k, v := range headers {
		req.SetHeader(k, v)
	}

	resp, err := req.Execute(method, path)
	if err != nil {
		c.log.Debug("request failed",
			zap.String("method", method),
			zap.String("path", path),
			zap.Error(err))
		return nil, 0, &TransportError{URL: c.rest.BaseURL + "/" + path, Err: err}
	}

	c.log.Debug("request done",
		zap.String("method", method),
		zap.String("path", path),
		zap.Int("status", resp.StatusCode()),
		zap.Duration("elapsed", resp.Time()))

	if resp.IsError() {
		return nil, resp.StatusCode(), &StatusError{
			Code:    resp.StatusCode(),
			Message: serverMessage(resp.Body()),
		}
	}
	return resp.Body(), resp.StatusCode(), nil
}

// serverMessage pulls the conventional {"message": ...} (or {"error": ...})
// out of an error body. Returns "" when the body is not that shape.
func serverMessage(body []byte) string {
	var payload struct {
		Message string `json:"message"`
		ErrMsg  string `json:"error"`
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		return ""
	}
	if payload.Message != "" {
		return payload.Message
	}
	return payload.ErrMsg
}

// listWrapKeys are the conventional wrapper keys for list responses that are
// not bare arrays, tried in order before the endpoint's own name.
var listWrapKeys = []string{"data", "items", "results"}

// FetchAll issues GET /{path} and decodes the full collection. The response
// may be a bare JSON array or an object wrapping one under a conventional key
// or the endpoint name.
func FetchAll[T any](ctx context.Context, c *Client, path string) ([]T, error) {
	body, _, err := c.do(ctx, http.MethodGet, path, nil, nil)
	if err != nil {
		return nil, err
	}
	return decodeList[T](body, path)
}

// decodeList decodes a list response, unwrapping one level of object nesting
// when needed.
func decodeList[T any](body []byte, path string) ([]T, error) {
	var records []T
	if err := json.Unmarshal(body, &records); err == nil {
		return records, nil
	}

	var wrapped map[string]json.RawMessage
	if err := json.Unmarshal(body, &wrapped); err != nil {
		return nil, &DecodeError{Reason: "list response is neither array nor object", Err: err}
	}
	keys := append([]string{}, listWrapKeys...)
	keys = append(keys, lastSegment(path))
	for _, key := range keys {
		raw, ok := wrapped[key]
		if !ok {
			continue
		}
		if err := json.Unmarshal(raw, &records); err != nil {
			return nil, &DecodeError{Reason: "list value under " + key + " is not an array", Err: err}
		}
		return records, nil
	}
	return nil, &DecodeError{Reason: "no list found in response object"}
}

// lastSegment returns the final path segment, used as a wrapper key guess
// (e.g. "gift-cards" for the gift card endpoint).
func lastSegment(path string) string {
	path = strings.Trim(path, "/")
	if i := strings.LastIndexByte(path, '/'); i >= 0 {
		return path[i+1:]
	}
	return path
}

// Create issues POST /{path} with payload as the JSON body and decodes the
// created record. An Idempotency-Key header makes retried creates safe to
// replay on the backend.
func Create[T any](ctx context.Context, c *Client, path string, payload any) (T, error) {
	var record T
	headers := map[string]string{"Idempotency-Key": uuid.Must(uuid.NewV7()).String()}
	body, _, err := c.do(ctx, http.MethodPost, path, payload, headers)
	if err != nil {
		return record, err
	}
	if err := json.Unmarshal(body, &record); err != nil {
		return record, &DecodeError{Reason: "created record", Err: err}
	}
	return record, nil
}

// Update issues PUT /{path}/{id} with payload as the JSON body. When the
// backend returns the updated record it is decoded and returned with ok=true;
// a 204 or empty body returns ok=false and the caller falls back to its own
// patch.
func Update[T any](ctx context.Context, c *Client, path, id string, payload any) (record T, ok bool, err error) {
	body, status, err := c.do(ctx, http.MethodPut, path+"/"+id, payload, nil)
	if err != nil {
		return record, false, err
	}
	if status == http.StatusNoContent || len(body) == 0 {
		return record, false, nil
	}
	if err := json.Unmarshal(body, &record); err != nil {
		return record, false, &DecodeError{Reason: "updated record", Err: err}
	}
	return record, true, nil
}

// Remove issues DELETE /{path}/{id}. Any 2xx is success; the body, empty or
// {id}, is discarded.
func Remove(ctx context.Context, c *Client, path, id string) error {
	_, _, err := c.do(ctx, http.MethodDelete, path+"/"+id, nil, nil)
	return err
}
