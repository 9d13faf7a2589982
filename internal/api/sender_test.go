package api_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"example.poc/messenger-client/internal/api"
	"example.poc/messenger-client/internal/keygen"
	"example.poc/messenger-client/internal/util"
	"example.poc/messenger-client/test/helper"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/suite"
	"pgregory.net/rapid"
)

type restMessageSenderTestSuite struct {
	suite.Suite
	helper *helper.Helper
}

func TestRESTMessageSender(t *testing.T) {
	suite.Run(t, new(restMessageSenderTestSuite))
}

func (s *restMessageSenderTestSuite) SetupTest() {
	s.helper = helper.NewHelper(s.T())
}

func (s *restMessageSenderTestSuite) TestSendOK() {
	endpoint := helper.NewStubEndpoint(http.StatusOK, `{"status":"saved"}`)
	defer endpoint.Close()

	key := keygen.GenerateKey()
	sender := api.NewRESTMessageSender(endpoint.SendURL())
	res, err := sender.SendMessage(context.Background(), api.NewSendMessageRequest(key, api.DefaultMessage))
	s.Require().NoError(err)
	s.Equal(http.StatusOK, res.Code)
	s.Equal("200 OK", res.Status)

	reqs := endpoint.Requests()
	s.Require().Len(reqs, 1)
	s.Equal(http.MethodPost, reqs[0].Method)
	s.Equal("/send_message", reqs[0].Path)
	s.Equal("close", reqs[0].Header.Get("Connection"))
	s.Equal("application/json", reqs[0].Header.Get("Content-Type"))

	var body map[string]any
	s.helper.MustDecodeJSON(reqs[0].Body, &body)
	s.Len(body, 3)
	s.Equal(key, body["pub_key"])
	s.Equal("test message", body["message"])
	s.EqualValues(60000, body["ttl"])
}

func (s *restMessageSenderTestSuite) TestSendNon200() {
	for _, code := range []int{http.StatusCreated, http.StatusBadRequest, http.StatusNotFound, http.StatusInternalServerError} {
		endpoint := helper.NewStubEndpoint(code, `{"status":"error"}`)

		sender := api.NewRESTMessageSender(endpoint.SendURL())
		_, err := sender.SendMessage(context.Background(), api.NewSendMessageRequest(keygen.GenerateKey(), api.DefaultMessage))
		var hErr util.HTTPResponseError
		s.Require().ErrorAs(err, &hErr, "code %d", code)
		s.Equal(code, hErr.Code)
		endpoint.Close()
	}
}

func (s *restMessageSenderTestSuite) TestSend201IsUnexpected() {
	endpoint := helper.NewStubEndpoint(http.StatusCreated, "")
	defer endpoint.Close()

	sender := api.NewRESTMessageSender(endpoint.SendURL())
	_, err := sender.SendMessage(context.Background(), api.NewSendMessageRequest(keygen.GenerateKey(), api.DefaultMessage))
	s.ErrorIs(err, api.ErrUnexpectedStatus)
}

func (s *restMessageSenderTestSuite) TestConnectionRefused() {
	sender := api.NewRESTMessageSender("http://" + helper.RefusedAddress(s.T()) + "/send_message")
	_, err := sender.SendMessage(context.Background(), api.NewSendMessageRequest(keygen.GenerateKey(), api.DefaultMessage))
	s.Require().Error(err)
	var hErr util.HTTPResponseError
	s.False(errors.As(err, &hErr))
	s.Equal("ECONNREFUSED", api.ErrorCode(err))
}

func (s *restMessageSenderTestSuite) TestContextDeadline() {
	h := chi.NewRouter()
	h.Post("/send_message", func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-time.After(2 * time.Second):
		case <-r.Context().Done():
		}
	})
	server := httptest.NewServer(h)
	defer server.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	sender := api.NewRESTMessageSender(server.URL + "/send_message")
	_, err := sender.SendMessage(ctx, api.NewSendMessageRequest(keygen.GenerateKey(), api.DefaultMessage))
	s.Require().Error(err)
	s.ErrorIs(err, context.DeadlineExceeded)
	s.Equal("ETIMEDOUT", api.ErrorCode(err))
}

func (s *restMessageSenderTestSuite) TestInvalidRequest() {
	sender := api.NewRESTMessageSender("http://127.0.0.1:1/send_message")
	_, err := sender.SendMessage(context.Background(), api.SendMessageRequest{Message: "x", TTL: 1})
	s.ErrorIs(err, api.ErrInvalidRequest)

	_, err = sender.SendMessage(context.Background(), api.SendMessageRequest{PubKey: "k", Message: "x"})
	s.ErrorIs(err, api.ErrInvalidRequest)
}

func (s *restMessageSenderTestSuite) TestValidateStrict() {
	req := api.NewSendMessageRequest(keygen.GenerateKey(), api.DefaultMessage)
	s.NoError(req.ValidateStrict())

	req.PubKey = "too-short"
	s.ErrorIs(req.ValidateStrict(), api.ErrInvalidRequest)
}

func (s *restMessageSenderTestSuite) TestRetrieveMessages() {
	h := chi.NewRouter()
	h.Post("/get_message", func(w http.ResponseWriter, r *http.Request) {
		var req api.RetrieveMessagesRequest
		s.NoError(json.NewDecoder(r.Body).Decode(&req))
		util.ResponseAsJSON(w, http.StatusOK, api.RetrieveMessagesResponse{
			Status:   "Ok",
			Messages: []api.RetrievedMessage{{Message: "hello " + req.PubKey, ExpiresAt: 42}},
		})
	})
	server := httptest.NewServer(h)
	defer server.Close()

	sender := api.NewRESTMessageSender(server.URL + "/send_message")
	resp, err := sender.RetrieveMessages(context.Background(), "abc")
	s.Require().NoError(err)
	s.Equal("Ok", resp.Status)
	s.Require().Len(resp.Messages, 1)
	s.Equal("hello abc", resp.Messages[0].Message)

	_, err = sender.RetrieveMessages(context.Background(), "")
	s.ErrorIs(err, api.ErrInvalidRequest)
}

func TestRequestBodyShape(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		key := rapid.StringOfN(rapid.RuneFrom([]rune(keygen.Alphabet)), keygen.KeyLength, keygen.KeyLength, -1).Draw(t, "key")
		req := api.NewSendMessageRequest(key, api.DefaultMessage)

		var decoded map[string]any
		if err := json.Unmarshal(util.JSONMarshalIgnoreErr(req), &decoded); err != nil {
			t.Fatalf("failed to decode request body: %v", err)
		}
		if decoded["ttl"] != float64(60000) {
			t.Fatalf("ttl = %v, want 60000", decoded["ttl"])
		}
		if decoded["message"] != "test message" {
			t.Fatalf("message = %v, want %q", decoded["message"], "test message")
		}
		if decoded["pub_key"] != key {
			t.Fatalf("pub_key = %v, want %q", decoded["pub_key"], key)
		}
	})
}
