package gemini

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/obaid/banana-cli/pkg/domain"
)

const (
	// DefaultTimeout は HTTP 呼び出しの既定タイムアウトです。
	// 画像生成は応答まで数十秒かかることがあります。
	DefaultTimeout = 120 * time.Second

	// 応答ボディの読み込み上限。画像 4 枚分の Base64 を十分に収容できるサイズです。
	maxResponseBytes = 256 << 20
)

// Client は generateContent エンドポイントへの REST クライアントです。
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// ClientOption は Client の設定オプションです。
type ClientOption func(*Client)

// WithBaseURL はベース URL を差し替えます。テストのモックエンドポイント向けです。
func WithBaseURL(baseURL string) ClientOption {
	return func(c *Client) {
		c.baseURL = baseURL
	}
}

// WithTimeout はリクエストのタイムアウトを設定します。
func WithTimeout(timeout time.Duration) ClientOption {
	return func(c *Client) {
		c.httpClient.Timeout = timeout
	}
}

// WithHTTPClient は HTTP クライアント自体を差し替えます。
func WithHTTPClient(httpClient *http.Client) ClientOption {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

// NewClient は Client を初期化します。
func NewClient(opts ...ClientOption) *Client {
	c := &Client{
		baseURL: DefaultBaseURL,
		httpClient: &http.Client{
			Timeout: DefaultTimeout,
		},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Generate は 1 回の画像生成リクエストを実行し、応答を解釈して返します。
// トランスポート層の失敗は "Request failed: ..." の失敗結果に変換され、
// 呼び出し元へ例外的に伝播することはありません。
func (c *Client) Generate(ctx context.Context, req domain.GenerationRequest) domain.GenerationResult {
	body := buildRequestBody(req)

	payload, err := json.Marshal(body)
	if err != nil {
		return domain.Failure(fmt.Sprintf("Request failed: %v", err))
	}

	url := endpointURL(c.baseURL, req.Model)

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return domain.Failure(fmt.Sprintf("Request failed: %v", err))
	}
	httpReq.Header.Set("Content-Type", "application/json")
	// 認証情報はヘッダでのみ渡します。URL やボディには決して埋め込みません。
	httpReq.Header.Set("x-goog-api-key", req.Credential)

	slog.Debug("Gemini へ生成リクエストを送信します",
		"model", req.Model,
		"count", req.Count,
		"image_to_image", req.InputImage != nil,
	)

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return domain.Failure(fmt.Sprintf("Request failed: %v", err))
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return domain.Failure(fmt.Sprintf("Request failed: %v", err))
	}

	return interpretResponse(resp.StatusCode, respBody)
}
