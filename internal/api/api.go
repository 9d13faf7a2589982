package api

import (
	"context"
	"fmt"

	"example.poc/messenger-client/internal/keygen"
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

var _ IMessageSender = (*RESTMessageSender)(nil)

const (
	DefaultMessage = "test message"
	// DefaultTTL is one minute, in milliseconds.
	DefaultTTL = 60000
)

var (
	ErrInvalidRequest   = fmt.Errorf("invalid request")
	ErrUnexpectedStatus = fmt.Errorf("unexpected response status")
)

type IMessageSender interface {
	SendMessage(context.Context, SendMessageRequest) (*SendMessageResult, error)
}

type SendMessageRequest struct {
	PubKey  string `json:"pub_key"`
	Message string `json:"message"`
	TTL     int64  `json:"ttl"`
}

// SendMessageResult is only produced for a 200 answer.
type SendMessageResult struct {
	Code   int    `json:"code"`
	Status string `json:"status"`
}

type RetrieveMessagesRequest struct {
	PubKey string `json:"pub_key"`
}

type RetrievedMessage struct {
	Message   string `json:"message"`
	ExpiresAt int64  `json:"expires_at"`
}

type RetrieveMessagesResponse struct {
	Status   string             `json:"status"`
	Messages []RetrievedMessage `json:"messages"`
}

func NewSendMessageRequest(pubKey, message string) SendMessageRequest {
	return SendMessageRequest{
		PubKey:  pubKey,
		Message: message,
		TTL:     DefaultTTL,
	}
}

func (req *SendMessageRequest) Validate() error {
	if err := validation.ValidateStruct(req,
		validation.Field(&req.PubKey, validation.Required),
		validation.Field(&req.Message, validation.Required),
		validation.Field(&req.TTL, validation.Required, validation.Min(int64(1))),
	); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidRequest, err)
	}
	return nil
}

// ValidateStrict additionally checks the key against the generator alphabet.
func (req *SendMessageRequest) ValidateStrict() error {
	if err := req.Validate(); err != nil {
		return err
	}
	if err := keygen.ValidateKey(req.PubKey); err != nil {
		return fmt.Errorf("%w: pub_key: %v", ErrInvalidRequest, err)
	}
	return nil
}
