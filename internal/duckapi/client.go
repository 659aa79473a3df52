// File: internal/duckapi/client.go
package duckapi

import (
	"context"
	"encoding/json"
	"fmt"
	"math/rand"
	"net/http"
	"net/url"
	"time"

	"ducks/internal/worker"
)

// 預設的上游端點，可由環境變數覆寫（見 cmd/service）
const (
	DefaultRandomDuckURL = "https://random-d.uk/api/v2/quack"
	DefaultFreesoundURL  = "https://freesound.org/apiv2"
)

// randIntn 用於從搜尋結果中隨機挑選，測試可覆寫此變數。
var randIntn = rand.Intn

// API 定義上游鴨子媒體來源的操作介面，便於測試時替換 FakeAPI
type API interface {
	// RandomDuck 回傳一張隨機鴨子圖片的 URL
	RandomDuck(ctx context.Context) (string, error)
	// RandomQuack 回傳一段隨機鴨叫聲的 URL
	RandomQuack(ctx context.Context) (string, error)
}

type FakeAPI struct {
	RandomDuckFn  func(ctx context.Context) (string, error)
	RandomQuackFn func(ctx context.Context) (string, error)
}

// RandomDuck 執行 Fake 設定或 panic
func (f *FakeAPI) RandomDuck(ctx context.Context) (string, error) {
	if f.RandomDuckFn != nil {
		return f.RandomDuckFn(ctx)
	}
	panic("unexpected RandomDuck")
}

// RandomQuack 執行 Fake 設定或 panic
func (f *FakeAPI) RandomQuack(ctx context.Context) (string, error) {
	if f.RandomQuackFn != nil {
		return f.RandomQuackFn(ctx)
	}
	panic("unexpected RandomQuack")
}

// Client 透過 HTTP 存取 random-d.uk 與 Freesound 兩個上游服務
// pool 非 nil 時所有上游呼叫會經由 worker pool 執行，
// 同時進行的上游請求數因此受 worker 數量限制
type Client struct {
	randomDuckURL string
	freesoundURL  string
	freesoundKey  string
	httpClient    *http.Client
	pool          worker.Pool
}

// NewClient 建立上游客戶端；randomDuckURL 或 freesoundURL 為空時採用預設端點
func NewClient(randomDuckURL, freesoundURL, freesoundKey string, pool worker.Pool) *Client {
	if randomDuckURL == "" {
		randomDuckURL = DefaultRandomDuckURL
	}
	if freesoundURL == "" {
		freesoundURL = DefaultFreesoundURL
	}
	return &Client{
		randomDuckURL: randomDuckURL,
		freesoundURL:  freesoundURL,
		freesoundKey:  freesoundKey,
		httpClient:    &http.Client{Timeout: 5 * time.Second},
		pool:          pool,
	}
}

// getJSON 取得並解碼上游回應，非 2xx 狀態碼視為錯誤
func (c *Client) getJSON(ctx context.Context, rawURL string, out any) error {
	run := func() error {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
		if err != nil {
			return err
		}
		resp, err := c.httpClient.Do(req)
		if err != nil {
			return err
		}
		defer resp.Body.Close()
		if resp.StatusCode < 200 || resp.StatusCode > 299 {
			return fmt.Errorf("unexpected status %d", resp.StatusCode)
		}
		return json.NewDecoder(resp.Body).Decode(out)
	}
	if c.pool == nil {
		return run()
	}
	var err error
	c.pool.Do(func() { err = run() })
	return err
}

// RandomDuck 呼叫 random-d.uk 取得一張隨機鴨子圖片的 URL
func (c *Client) RandomDuck(ctx context.Context) (string, error) {
	var payload struct {
		URL string `json:"url"`
	}
	if err := c.getJSON(ctx, c.randomDuckURL, &payload); err != nil {
		return "", fmt.Errorf("RandomDuck: %w", err)
	}
	if payload.URL == "" {
		return "", fmt.Errorf("RandomDuck: empty url in response")
	}
	return payload.URL, nil
}

// RandomQuack 以兩段式查詢 Freesound：
// 先搜尋 duck quack 音效，隨機挑一筆結果，再取該音效的 preview-hq-mp3 URL
func (c *Client) RandomQuack(ctx context.Context) (string, error) {
	searchURL := fmt.Sprintf("%s/search/text/?query=%s&format=json&token=%s",
		c.freesoundURL, url.QueryEscape("duck quack"), c.freesoundKey)

	var search struct {
		Results []struct {
			ID int `json:"id"`
		} `json:"results"`
	}
	if err := c.getJSON(ctx, searchURL, &search); err != nil {
		return "", fmt.Errorf("RandomQuack: %w", err)
	}
	if len(search.Results) == 0 {
		return "", fmt.Errorf("RandomQuack: no results in response")
	}
	soundID := search.Results[randIntn(len(search.Results))].ID

	detailURL := fmt.Sprintf("%s/sounds/%d?format=json&token=%s",
		c.freesoundURL, soundID, c.freesoundKey)

	var sound struct {
		Previews struct {
			HQMP3 string `json:"preview-hq-mp3"`
		} `json:"previews"`
	}
	if err := c.getJSON(ctx, detailURL, &sound); err != nil {
		return "", fmt.Errorf("RandomQuack: %w", err)
	}
	if sound.Previews.HQMP3 == "" {
		return "", fmt.Errorf("RandomQuack: empty preview url in response")
	}
	return sound.Previews.HQMP3, nil
}
