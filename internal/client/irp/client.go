package irp

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"time"

	httpclient "gstdesk-api/internal/client/http"
	"gstdesk-api/internal/logger"

	"go.uber.org/zap"
)

const (
	generatePath = "/einv/v1.03/Invoice/Generate"
	lookupPath   = "/einv/v1.03/Invoice/IRN"
	cancelPath   = "/einv/v1.03/Invoice/Cancel"
)

// Client talks to the NIC e-invoice gateway. Registration is not retried
// automatically: a duplicate Generate for the same document is rejected by
// the gateway, so retry decisions belong to the caller.
type Client struct {
	config     Config
	httpClient *httpclient.HTTPClient
	auth       *Authenticator
}

// NewClient creates a gateway client from the given configuration. The token
// exchange is idempotent and runs on a client with backoff retries; document
// calls never retry.
func NewClient(config Config) *Client {
	hc := httpclient.NewHTTPClient(
		httpclient.WithBaseURL(config.BaseURL),
		httpclient.WithTimeout(30*time.Second),
	)
	authClient := httpclient.NewHTTPClient(
		httpclient.WithBaseURL(config.BaseURL),
		httpclient.WithTimeout(30*time.Second),
		httpclient.WithRetryConfig(httpclient.DefaultRetryConfig()),
	)
	return &Client{
		config:     config,
		httpClient: hc,
		auth:       NewAuthenticator(config, authClient),
	}
}

// Configured reports whether the client has credentials to reach the gateway
func (c *Client) Configured() bool {
	return c.config.Configured()
}

// Generate registers an invoice with the gateway and returns the IRN grant
func (c *Client) Generate(ctx context.Context, payload *InvoicePayload) (*GenerateResponse, error) {
	token, err := c.auth.Token(ctx)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Post(ctx, generatePath, payload, httpclient.WithBearerToken(token))
	if err != nil {
		return nil, c.classify(err)
	}

	var result GenerateResponse
	if err := c.httpClient.ProcessJSONResponse(resp, &result); err != nil {
		return nil, &UnavailableError{Message: "malformed generate response", Err: err}
	}

	logger.Info("IRN generated",
		zap.String("irn", result.Irn),
		zap.String("ack_no", result.AckNo.String()))

	return &result, nil
}

// GetByIRN fetches the registered invoice details for an IRN
func (c *Client) GetByIRN(ctx context.Context, irn string) (*GenerateResponse, error) {
	token, err := c.auth.Token(ctx)
	if err != nil {
		return nil, err
	}

	path := fmt.Sprintf("%s/%s", lookupPath, url.PathEscape(irn))
	resp, err := c.httpClient.Get(ctx, path, httpclient.WithBearerToken(token))
	if err != nil {
		return nil, c.classify(err)
	}

	var result GenerateResponse
	if err := c.httpClient.ProcessJSONResponse(resp, &result); err != nil {
		return nil, &UnavailableError{Message: "malformed lookup response", Err: err}
	}
	return &result, nil
}

// Cancel revokes an IRN at the gateway. reason is the gateway's numeric
// cancellation reason code, remarks a free-text note.
func (c *Client) Cancel(ctx context.Context, irn, reason, remarks string) (*CancelResponse, error) {
	token, err := c.auth.Token(ctx)
	if err != nil {
		return nil, err
	}

	body := map[string]string{
		"Irn":    irn,
		"CnlRsn": reason,
		"CnlRem": remarks,
	}
	resp, err := c.httpClient.Post(ctx, cancelPath, body, httpclient.WithBearerToken(token))
	if err != nil {
		return nil, c.classify(err)
	}

	var result CancelResponse
	if err := c.httpClient.ProcessJSONResponse(resp, &result); err != nil {
		return nil, &UnavailableError{Message: "malformed cancel response", Err: err}
	}

	logger.Info("IRN cancelled", zap.String("irn", irn))

	return &result, nil
}

// classify maps a transport level error to the gateway error taxonomy. An
// HTTP error whose body parses as a structured gateway rejection becomes a
// RejectedError; everything else means the gateway gave no usable answer.
func (c *Client) classify(err error) error {
	var httpErr *httpclient.HTTPError
	if errors.As(err, &httpErr) {
		var body errorBody
		if jsonErr := json.Unmarshal([]byte(httpErr.Body), &body); jsonErr == nil && body.Message != "" {
			return &RejectedError{
				Message: body.Message,
				Code:    body.ErrorCode,
				Source:  body.ErrorSource,
			}
		}
		return &UnavailableError{
			Message: fmt.Sprintf("gateway returned status %d", httpErr.StatusCode),
			Err:     err,
		}
	}
	return &UnavailableError{Message: "gateway unreachable", Err: err}
}
