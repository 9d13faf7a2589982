package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"

	"example.poc/messenger-client/internal/util"
	"github.com/samber/lo"
)

const retrievePath = "get_message"

// RESTMessageSender posts messages to a messenger node over HTTP/JSON.
// Every request goes out on a fresh connection.
type RESTMessageSender struct {
	client  *http.Client
	sendURL string
}

type HTTPClientOptions func(*http.Client)

func NewRESTMessageSender(sendURL string, opts ...HTTPClientOptions) *RESTMessageSender {
	transport := http.DefaultTransport.(*http.Transport).Clone()
	transport.DisableKeepAlives = true

	c := &http.Client{Transport: transport}
	for _, opt := range opts {
		opt(c)
	}
	return &RESTMessageSender{client: c, sendURL: sendURL}
}

func (r *RESTMessageSender) SendMessage(ctx context.Context, req SendMessageRequest) (*SendMessageResult, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	if _, err := url.Parse(r.sendURL); err != nil {
		return nil, fmt.Errorf("failed to parse send url '%s': %w", r.sendURL, err)
	}

	header := http.Header{}
	header.Set("Connection", "close")
	resp, err := util.SendHttpRequest[any](ctx, r.client, util.HTTPRequestParams{
		Method:       http.MethodPost,
		RequestURL:   r.sendURL,
		Header:       header,
		RequestBody:  req,
		EncodeSchema: lo.ToPtr(util.JSON),
	})
	if err != nil {
		var hErr util.HTTPResponseError
		if errors.As(err, &hErr) {
			return nil, hErr
		}
		return nil, fmt.Errorf("failed to send message: %w", err)
	}

	if resp.Code != http.StatusOK {
		return nil, util.HTTPResponseError{
			Code:   resp.Code,
			Header: resp.Header,
			Body:   resp.Body,
			Cause:  ErrUnexpectedStatus,
		}
	}

	return &SendMessageResult{
		Code:   resp.Code,
		Status: resp.Status,
	}, nil
}

// RetrieveMessages asks the node for every unexpired message stored for
// pubKey. The endpoint lives next to the send endpoint.
func (r *RESTMessageSender) RetrieveMessages(ctx context.Context, pubKey string) (*RetrieveMessagesResponse, error) {
	if pubKey == "" {
		return nil, fmt.Errorf("%w: pub_key cannot be empty", ErrInvalidRequest)
	}

	base, err := url.Parse(r.sendURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse send url '%s': %w", r.sendURL, err)
	}
	reqURL := base.ResolveReference(&url.URL{Path: retrievePath})

	header := http.Header{}
	header.Set("Accept", "application/json")
	header.Set("Connection", "close")
	resp, err := util.SendHttpRequest[RetrieveMessagesResponse](ctx, r.client, util.HTTPRequestParams{
		Method:       http.MethodPost,
		RequestURL:   reqURL.String(),
		Header:       header,
		RequestBody:  RetrieveMessagesRequest{PubKey: pubKey},
		EncodeSchema: lo.ToPtr(util.JSON),
		DecodeSchema: lo.ToPtr(util.JSON),
	})
	if err != nil {
		return nil, err
	}

	v := resp.DecodedValue
	return &v, nil
}
