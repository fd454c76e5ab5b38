package notification

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/gojektech/heimdall/v6"
	"github.com/gojektech/heimdall/v6/httpclient"
	"github.com/google/uuid"
)

const (
	znsSendPath  = "/v1/zns/template/send"
	maxJitter    = 5 * time.Millisecond
	maxErrorBody = 512
)

type ZNSConfig struct {
	BaseURL      string
	APIKey       string
	Timeout      time.Duration
	Retries      int
	RetryBackoff time.Duration
}

// ZNSClient sends Zalo Notification Service template messages through the
// Omni gateway.
type ZNSClient struct {
	client  *httpclient.Client
	baseURL string
	apiKey  string
}

func NewZNSClient(cfg ZNSConfig) *ZNSClient {
	backoff := heimdall.NewConstantBackoff(cfg.RetryBackoff, maxJitter)
	retrier := heimdall.NewRetrier(backoff)

	client := httpclient.NewClient(
		httpclient.WithHTTPTimeout(cfg.Timeout),
		httpclient.WithRetrier(retrier),
		httpclient.WithRetryCount(cfg.Retries),
	)

	return &ZNSClient{
		client:  client,
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		apiKey:  cfg.APIKey,
	}
}

// Enabled reports whether a gateway is configured.
func (z *ZNSClient) Enabled() bool {
	return z.baseURL != ""
}

type znsRequest struct {
	Phone        string            `json:"phone"`
	TemplateID   string            `json:"template_id"`
	TemplateData map[string]string `json:"template_data"`
	TrackingID   string            `json:"tracking_id"`
}

func (z *ZNSClient) Send(ctx context.Context, templateID, phone string, params map[string]string) error {
	body, err := json.Marshal(znsRequest{
		Phone:        NormalizePhone(phone),
		TemplateID:   templateID,
		TemplateData: params,
		TrackingID:   uuid.New().String(),
	})
	if err != nil {
		return fmt.Errorf("marshal zns request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, z.baseURL+znsSendPath, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("build zns request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+z.apiKey)

	resp, err := z.client.Do(req)
	if err != nil {
		return fmt.Errorf("send zns request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return fmt.Errorf("zns gateway returned %s: %s", resp.Status, strings.TrimSpace(string(snippet)))
	}
	return nil
}

// NormalizePhone converts a local 0xxx or +84xxx number to the 84xxx form ZNS expects.
func NormalizePhone(phone string) string {
	phone = strings.ReplaceAll(strings.TrimSpace(phone), " ", "")
	switch {
	case strings.HasPrefix(phone, "+84"):
		return phone[1:]
	case strings.HasPrefix(phone, "0"):
		return "84" + phone[1:]
	}
	return phone
}
