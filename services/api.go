package services

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"
)

// TokenSource คืน bearer credential ที่ persist ไว้ ถ้ามี
// ไม่มี token ก็ยิง request แบบไม่ auth ไปเลย ให้ server เป็นคน reject
type TokenSource interface {
	Token() (string, bool)
}

// Client ยิง request ไปหา food-ordering API ตรงๆ ไม่ retry ไม่ cache
type Client struct {
	baseURL string
	http    *http.Client
	tokens  TokenSource
}

func NewClient(baseURL string, timeout time.Duration, tokens TokenSource) *Client {
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: timeout},
		tokens:  tokens,
	}
}

// envelope: API ห่อ payload เป็น {"data": ...} และ error เป็น
// {"message": ...} หรือ {"error": ...}
type envelope struct {
	Data    json.RawMessage `json:"data"`
	Message string          `json:"message"`
	Error   string          `json:"error"`
}

func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	if tok, ok := c.tokens.Token(); ok && tok != "" {
		req.Header.Set("Authorization", "Bearer "+tok)
	}

	res, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer res.Body.Close()

	raw, err := io.ReadAll(res.Body)
	if err != nil {
		return err
	}

	if res.StatusCode < 200 || res.StatusCode >= 300 {
		return errors.New(serverMessage(raw, res.Status))
	}
	if out == nil {
		return nil
	}

	var env envelope
	if err := json.Unmarshal(raw, &env); err == nil && len(env.Data) > 0 {
		return json.Unmarshal(env.Data, out)
	}
	// บาง endpoint ตอบ payload เปล่าๆ ไม่ห่อ envelope
	return json.Unmarshal(raw, out)
}

// serverMessage ดึงข้อความ error ของ server ถ้าไม่มีใช้ HTTP status แทน
func serverMessage(raw []byte, status string) string {
	var env envelope
	if err := json.Unmarshal(raw, &env); err == nil {
		if env.Message != "" {
			return env.Message
		}
		if env.Error != "" {
			return env.Error
		}
	}
	return fmt.Sprintf("request failed with status %s", status)
}
