package cloudstack

import (
	"context"
	"crypto/hmac"
	"crypto/sha1" // #nosec G505 -- CloudStack mandates HMAC-SHA1 request signatures
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/imamik/csgroup/internal/util/retry"
)

// maxBodySize bounds how much of a response body is read.
const maxBodySize = 16 << 20

// encodeValues renders v the way CloudStack expects it for signing: keys
// sorted, spaces as %20.
func encodeValues(v url.Values) string {
	return strings.ReplaceAll(v.Encode(), "+", "%20")
}

// sign computes the request signature over every parameter in values.
func sign(values url.Values, secret string) string {
	mac := hmac.New(sha1.New, []byte(secret))
	_, _ = mac.Write([]byte(strings.ToLower(encodeValues(values))))
	return base64.StdEncoding.EncodeToString(mac.Sum(nil))
}

// signedValues returns a copy of args with command, apikey, response and
// signature set.
func (c *RealClient) signedValues(command string, args url.Values) url.Values {
	values := url.Values{}
	for k, vs := range args {
		values[k] = append([]string(nil), vs...)
	}
	values.Set("command", command)
	values.Set("apikey", c.apiKey)
	values.Set("response", "json")
	values.Set("signature", sign(values, c.secret))
	return values
}

// do issues one request and decodes the command's response object into out.
func (c *RealClient) do(ctx context.Context, command string, args url.Values, out any) error {
	start := time.Now()
	err := c.roundTrip(ctx, command, args, out)
	observeRequest(command, err, time.Since(start))
	if err != nil {
		c.log.V(1).Info("CloudStack API call failed", "command", command, "error", err.Error())
	}
	return err
}

// read issues a read-only request, retrying retryable transport failures.
func (c *RealClient) read(ctx context.Context, command string, args url.Values, out any) error {
	retries := c.retry.MaxAttempts - 1
	if retries < 0 {
		retries = 0
	}
	return retry.WithExponentialBackoff(ctx, func() error {
		return c.do(ctx, command, args, out)
	},
		retry.WithMaxRetries(retries),
		retry.WithInitialDelay(c.retry.InitialDelay),
		retry.WithRetryable(isRetryable))
}

func (c *RealClient) roundTrip(ctx context.Context, command string, args url.Values, out any) error {
	values := c.signedValues(command, args)

	var (
		req *http.Request
		err error
	)
	if c.method == http.MethodPost {
		req, err = http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, strings.NewReader(encodeValues(values)))
		if err == nil {
			req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
		}
	} else {
		req, err = http.NewRequestWithContext(ctx, http.MethodGet, c.endpoint+"?"+encodeValues(values), nil)
	}
	if err != nil {
		return &TransportError{Command: command, Err: err}
	}
	req.Header.Set("Accept", "application/json")

	c.log.V(2).Info("calling CloudStack API", "command", command, "method", req.Method)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return &TransportError{Command: command, Err: err}
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		return &TransportError{Command: command, StatusCode: resp.StatusCode, Err: err}
	}
	return decodeEnvelope(command, resp.StatusCode, body, out)
}

// envelopeError is the error shape CloudStack embeds in a command response.
type envelopeError struct {
	ErrorCode   int    `json:"errorcode"`
	CSErrorCode int    `json:"cserrorcode"`
	ErrorText   string `json:"errortext"`
}

// decodeEnvelope unwraps {"<command>response": {...}}. An errortext inside the
// envelope is an APIError whatever the HTTP status was.
func decodeEnvelope(command string, status int, body []byte, out any) error {
	var envelope map[string]json.RawMessage
	if err := json.Unmarshal(body, &envelope); err != nil {
		if status >= http.StatusMultipleChoices {
			return &TransportError{Command: command, StatusCode: status, Err: fmt.Errorf("unexpected response: %s", snippet(body))}
		}
		return &TransportError{Command: command, StatusCode: status, Err: fmt.Errorf("malformed response: %w", err)}
	}

	inner, ok := envelope[strings.ToLower(command)+"response"]
	if !ok {
		inner, ok = envelope["errorresponse"]
	}
	if !ok {
		return &TransportError{Command: command, StatusCode: status, Err: errors.New("response envelope missing")}
	}

	var failure envelopeError
	if err := json.Unmarshal(inner, &failure); err != nil {
		return &TransportError{Command: command, StatusCode: status, Err: fmt.Errorf("malformed response: %w", err)}
	}
	if failure.ErrorText != "" {
		return &APIError{
			Command:     command,
			ErrorCode:   failure.ErrorCode,
			CSErrorCode: failure.CSErrorCode,
			ErrorText:   failure.ErrorText,
		}
	}
	if status >= http.StatusMultipleChoices {
		return &TransportError{Command: command, StatusCode: status, Err: fmt.Errorf("unexpected response: %s", snippet(body))}
	}

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(inner, out); err != nil {
		return &TransportError{Command: command, StatusCode: status, Err: fmt.Errorf("malformed response: %w", err)}
	}
	return nil
}

// listAll pages through a list command and collects the entries stored under key.
func listAll[T any](ctx context.Context, c *RealClient, command, key string, args url.Values) ([]T, error) {
	var all []T
	for page := 1; ; page++ {
		pageArgs := url.Values{}
		for k, vs := range args {
			pageArgs[k] = vs
		}
		pageArgs.Set("page", strconv.Itoa(page))
		pageArgs.Set("pagesize", strconv.Itoa(c.pageSize))

		var resp map[string]json.RawMessage
		if err := c.read(ctx, command, pageArgs, &resp); err != nil {
			return nil, err
		}

		var count int
		if raw, ok := resp["count"]; ok {
			if err := json.Unmarshal(raw, &count); err != nil {
				return nil, &TransportError{Command: command, Err: fmt.Errorf("malformed count: %w", err)}
			}
		}

		var items []T
		if raw, ok := resp[key]; ok {
			if err := json.Unmarshal(raw, &items); err != nil {
				return nil, &TransportError{Command: command, Err: fmt.Errorf("malformed %s list: %w", key, err)}
			}
		}
		all = append(all, items...)

		if len(items) < c.pageSize || len(all) >= count {
			return all, nil
		}
	}
}

func snippet(body []byte) string {
	const limit = 200
	s := strings.TrimSpace(string(body))
	if len(s) > limit {
		return s[:limit] + "..."
	}
	return s
}
