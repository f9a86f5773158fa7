package httpx

import (
	"bytes"
	"context"
	"io"
	"net/http"

	"github.com/goccy/go-json"
)

// NewJSONRequest builds a request with a JSON body and, when token is not
// empty, a bearer authorization header. A nil body sends no payload.
func NewJSONRequest(ctx context.Context, method, url string, body any, token string) (*http.Request, error) {
	var payload io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return nil, err
		}
		payload = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, payload)
	if err != nil {
		return nil, err
	}
	if body != nil {
		req.Header.Set("content-type", "application/json")
	}
	if token != "" {
		req.Header.Set("authorization", "Bearer "+token)
	}
	return req, nil
}

// DoJSON executes the request, enforces a 2xx status, and decodes the
// response body into out (skipped when out is nil). Failures come back as
// NetworkError tagged with code.
func DoJSON(client *http.Client, req *http.Request, code string, out any) error {
	resp, err := client.Do(req)
	if err != nil {
		return LogTransportError(code, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return LogStatusError(code, resp.StatusCode)
	}
	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return LogTransportError(code+".decode", err)
	}
	return nil
}

// DoBlob executes the request and returns the raw response body, for
// binary downloads such as exports.
func DoBlob(client *http.Client, req *http.Request, code string) ([]byte, error) {
	resp, err := client.Do(req)
	if err != nil {
		return nil, LogTransportError(code, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, LogStatusError(code, resp.StatusCode)
	}

	blob, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, LogTransportError(code+".read", err)
	}
	return blob, nil
}
