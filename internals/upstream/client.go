// file: internals/upstream/client.go
package upstream

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/bytedance/sonic"
)

// ErrPageCapExceeded: walk pagination melewati batas halaman yang
// dikonfigurasi. Diperlakukan sekelas kegagalan transport.
var ErrPageCapExceeded = errors.New("pagination walk melewati batas halaman upstream")

// APIError adalah error non-2xx dari backend marketplace. Message diteruskan
// apa adanya ke layar admin.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("upstream %d: %s", e.Status, e.Message)
}

// RequestOptions: opsi satu panggilan; Method default GET.
type RequestOptions struct {
	Method string
	Query  map[string]string
	Body   any
	Header map[string]string
}

// Client adalah satu-satunya pintu ke backend marketplace.
type Client struct {
	baseURL string
	http    *http.Client
}

func NewClient(baseURL string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
	}
}

// Request mengeksekusi satu panggilan dan mengembalikan body mentah.
// Non-2xx menjadi *APIError dengan pesan dari backend.
func (c *Client) Request(ctx context.Context, path string, opts RequestOptions) (json.RawMessage, error) {
	method := opts.Method
	if method == "" {
		method = http.MethodGet
	}

	endpoint := c.baseURL + "/" + strings.TrimLeft(path, "/")
	if len(opts.Query) > 0 {
		q := url.Values{}
		for k, v := range opts.Query {
			q.Set(k, v)
		}
		endpoint += "?" + q.Encode()
	}

	var body io.Reader
	if opts.Body != nil {
		payload, err := sonic.Marshal(opts.Body)
		if err != nil {
			return nil, fmt.Errorf("encode body: %w", err)
		}
		body = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, body)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")
	if opts.Body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if id := RequestIDFromContext(ctx); id != "" {
		req.Header.Set("X-Request-ID", id)
	}
	for k, v := range opts.Header {
		req.Header.Set(k, v)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &APIError{Status: resp.StatusCode, Message: upstreamMessage(raw, resp.StatusCode)}
	}
	return raw, nil
}

// upstreamMessage mengambil field pesan dari body error; fallback ke status text.
func upstreamMessage(raw []byte, status int) string {
	var body struct {
		Message string `json:"message"`
		Error   string `json:"error"`
	}
	if err := sonic.Unmarshal(raw, &body); err == nil {
		if strings.TrimSpace(body.Message) != "" {
			return body.Message
		}
		if strings.TrimSpace(body.Error) != "" {
			return body.Error
		}
	}
	return http.StatusText(status)
}
