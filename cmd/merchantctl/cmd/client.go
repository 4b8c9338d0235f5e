package cmd

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"serviceability/internal/errors"
)

const apiPrefix = "/api/v1"

// APIError is an error envelope returned by the server.
type APIError struct {
	StatusCode int             `json:"-"`
	Code       string          `json:"code"`
	Message    string          `json:"message"`
	Details    json.RawMessage `json:"details,omitempty"`
	RequestID  string          `json:"-"`
}

func (e *APIError) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s: %s", e.Code, e.Message)
	if len(e.Details) > 0 && string(e.Details) != "null" {
		fmt.Fprintf(&b, " (%s)", strings.Trim(string(e.Details), `"`))
	}
	fmt.Fprintf(&b, " [status %d", e.StatusCode)
	if e.RequestID != "" {
		fmt.Fprintf(&b, ", request %s", e.RequestID)
	}
	b.WriteString("]")

	return b.String()
}

type envelope struct {
	Data  json.RawMessage `json:"data"`
	Error *APIError       `json:"error"`
	Meta  struct {
		RequestID string `json:"request_id"`
	} `json:"meta"`
}

type apiClient struct {
	baseURL    string
	httpClient *http.Client
}

func newAPIClient(baseURL string, timeout time.Duration) *apiClient {
	return &apiClient{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
	}
}

// do sends one request and decodes the data member of the envelope into out.
// The raw data is returned as well so callers can print it untouched.
func (c *apiClient) do(ctx context.Context, method, path string, query url.Values, contentType string, body io.Reader, out any) (json.RawMessage, error) {
	target := c.baseURL + apiPrefix + path
	if len(query) > 0 {
		target += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, target, body)
	if err != nil {
		return nil, errors.Wrap(err, "failed to build request")
	}
	req.Header.Set("Accept", "application/json")
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to reach %s", c.baseURL)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read response")
	}

	var env envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return nil, errors.Errorf("unexpected %d response from %s %s", resp.StatusCode, method, path)
	}

	if env.Error != nil {
		env.Error.StatusCode = resp.StatusCode
		env.Error.RequestID = env.Meta.RequestID

		return nil, env.Error
	}
	if resp.StatusCode >= http.StatusBadRequest {
		return nil, errors.Errorf("unexpected %d response from %s %s", resp.StatusCode, method, path)
	}

	if out != nil {
		if err := json.Unmarshal(env.Data, out); err != nil {
			return nil, errors.Wrap(err, "failed to decode response data")
		}
	}

	return env.Data, nil
}

// printJSON indents raw JSON onto w.
func printJSON(w io.Writer, raw json.RawMessage) error {
	var buf bytes.Buffer
	if err := json.Indent(&buf, raw, "", "  "); err != nil {
		return errors.Wrap(err, "failed to format response")
	}
	buf.WriteByte('\n')

	_, err := w.Write(buf.Bytes())

	return err
}
