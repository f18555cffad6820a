// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/go-resty/resty/v2"

	"github.com/MKhiriev/go-psyche-vault/internal/config"
	"github.com/MKhiriev/go-psyche-vault/internal/logger"
)

const (
	headerPrefer       = "Prefer"
	headerContentRange = "Content-Range"

	preferRepresentation = "return=representation"
	preferMinimal        = "return=minimal"
	preferUpsert         = "resolution=merge-duplicates,return=representation"
	preferCountExact     = "count=exact"
)

// Client is an authenticated PostgREST client.
type Client struct {
	client *resty.Client
	logger *logger.Logger
}

// NewPostgRESTClient builds a client for the API at cfg.URL that
// authenticates with the anon key and the user's access token.
func NewPostgRESTClient(cfg config.Adapter, accessToken string, log *logger.Logger) (*Client, error) {
	baseURL, err := normalizeBaseURL(cfg.URL)
	if err != nil {
		return nil, err
	}

	client := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(cfg.RequestTimeout).
		SetHeader("apikey", cfg.APIKey).
		SetHeader("Accept", "application/json").
		SetHeader("Content-Type", "application/json")
	if token := strings.TrimSpace(accessToken); token != "" {
		client.SetAuthToken(token)
	}

	return &Client{client: client, logger: log}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("%w: empty address", ErrInvalidBaseURL)
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrInvalidBaseURL, err)
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("%w: address must include host and scheme", ErrInvalidBaseURL)
	}

	return strings.TrimRight(u.String(), "/"), nil
}

func (c *Client) request(ctx context.Context) *resty.Request {
	return c.client.R().SetContext(ctx)
}

// do sends req and decodes a JSON array response into out when out is not nil.
func (c *Client) do(req *resty.Request, method, path string, out any) (*resty.Response, error) {
	resp, err := req.Execute(method, path)
	if err != nil {
		return nil, fmt.Errorf("%s %s request: %w", method, path, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	if out != nil {
		if err = json.Unmarshal(resp.Body(), out); err != nil {
			return nil, fmt.Errorf("%w: decode %s %s: %w", ErrUnexpectedResponse, method, path, err)
		}
	}
	return resp, nil
}

func eq(value string) string {
	return "eq." + value
}

func in(values []string) string {
	return "in.(" + strings.Join(values, ",") + ")"
}

// totalFromContentRange extracts the total of a "0-0/51" or "*/0" header.
func totalFromContentRange(header string) (int, error) {
	idx := strings.LastIndex(header, "/")
	if idx < 0 || idx == len(header)-1 {
		return 0, fmt.Errorf("%w: content range %q", ErrUnexpectedResponse, header)
	}

	total, err := strconv.Atoi(header[idx+1:])
	if err != nil {
		return 0, fmt.Errorf("%w: content range %q", ErrUnexpectedResponse, header)
	}
	return total, nil
}
