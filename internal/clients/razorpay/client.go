package razorpay

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"golang.org/x/time/rate"
)

type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// Client talks to the hosted checkout gateway. Charge is a foreground
// round-trip: the gateway presents its own UI to the payer and the request
// blocks until the payer completes, cancels, or the processor declines.
type Client struct {
	baseURL     string
	keyID       string
	httpClient  HTTPClient
	rateLimiter *rate.Limiter
}

func NewClient(baseURL, keyID string) *Client {
	return &Client{
		baseURL:    baseURL,
		keyID:      keyID,
		httpClient: &http.Client{},
	}
}

func (c *Client) SetHTTPClient(client HTTPClient) {
	c.httpClient = client
}

func (c *Client) SetRateLimit(maxRequestsPerSecond float32) {
	c.rateLimiter = rate.NewLimiter(rate.Limit(maxRequestsPerSecond), 1)
}

type chargeResponse struct {
	Status    string `json:"status"`
	Reference string `json:"payment_id"`
	ErrorCode string `json:"error_code"`
	Reason    string `json:"error_description"`
}

func (c *Client) Charge(ctx context.Context, request ChargeRequest) (Outcome, error) {

	if err := request.Validate(); err != nil {
		return Outcome{}, fmt.Errorf("invalid charge request: %w", err)
	}

	payload, err := json.Marshal(request.toWire(c.keyID))
	if err != nil {
		return Outcome{}, err
	}

	body, err := c.sendRequest(ctx, "POST", c.baseURL+"/v1/checkout", bytes.NewReader(payload))
	if err != nil {
		return Outcome{}, err
	}

	var response chargeResponse
	if err := json.NewDecoder(bytes.NewReader(body)).Decode(&response); err != nil {
		return Outcome{}, fmt.Errorf("error decoding JSON response: %v", err)
	}

	return response.toOutcome()
}

func (r chargeResponse) toOutcome() (Outcome, error) {
	switch r.Status {
	case "captured":
		return Outcome{Status: Approved, Reference: r.Reference}, nil
	default:
		if r.ErrorCode == ErrorCodeCancelled {
			return Outcome{Status: Cancelled}, nil
		}
		return Outcome{Status: Declined, Reason: r.Reason}, nil
	}
}

func (c *Client) sendRequest(ctx context.Context, method string, url string, body io.Reader) ([]byte, error) {

	if c.rateLimiter != nil {
		err := c.rateLimiter.Wait(ctx)
		if err != nil {
			return nil, err
		}
	}

	req, err := http.NewRequestWithContext(ctx, method, url, body)
	if err != nil {
		return nil, fmt.Errorf("error creating request: %v", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("error sending request: %v", err)
	}
	defer resp.Body.Close()

	responseBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("error reading response: %v", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status code %v: %s", resp.StatusCode, string(responseBody))
	}

	return responseBody, nil
}
