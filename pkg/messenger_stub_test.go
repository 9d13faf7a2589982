package pkg

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"testing"
	"time"

	"example.poc/messenger-client/internal/api"
	"example.poc/messenger-client/internal/keygen"
	"example.poc/messenger-client/internal/util"
	"example.poc/messenger-client/test/helper"
	"github.com/stretchr/testify/suite"
)

type messengerStubTestSuite struct {
	suite.Suite
	tl *helper.TestLogger
}

func TestMessengerStub(t *testing.T) {
	suite.Run(t, new(messengerStubTestSuite))
}

func (s *messengerStubTestSuite) SetupTest() {
	s.tl = helper.NewTestLogger()
}

func (s *messengerStubTestSuite) serve(opts ...MessengerStubOption) (*MessengerStub, string, context.CancelFunc, <-chan error) {
	ms, err := NewMessengerStub(opts...)
	s.Require().NoError(err)

	lis, err := net.Listen("tcp", "127.0.0.1:0")
	s.Require().NoError(err)

	ctx, cancel := context.WithCancel(s.tl.ZeroLogger().WithContext(context.Background()))
	done := make(chan error, 1)
	go func() {
		done <- ms.Serve(ctx, lis)
	}()

	return ms, fmt.Sprintf("http://%s/send_message", lis.Addr()), cancel, done
}

func (s *messengerStubTestSuite) waitStopped(done <-chan error) {
	select {
	case err := <-done:
		s.NoError(err)
	case <-time.After(5 * time.Second):
		s.T().Fatal("messenger stub did not stop")
	}
}

func (s *messengerStubTestSuite) TestStoresAndReturnsMessages() {
	ms, sendURL, cancel, done := s.serve()
	defer cancel()

	sender := api.NewRESTMessageSender(sendURL)
	key := keygen.GenerateKey()

	res, err := sender.SendMessage(context.Background(), api.NewSendMessageRequest(key, api.DefaultMessage))
	s.Require().NoError(err)
	s.Equal(http.StatusOK, res.Code)
	s.Equal(1, ms.Stored())

	got, err := sender.RetrieveMessages(context.Background(), key)
	s.Require().NoError(err)
	s.Equal("Ok", got.Status)
	s.Require().Len(got.Messages, 1)
	s.Equal(api.DefaultMessage, got.Messages[0].Message)

	cancel()
	s.waitStopped(done)
}

func (s *messengerStubTestSuite) TestForcedStatus() {
	ms, sendURL, cancel, done := s.serve(WithForcedStatus(http.StatusInternalServerError))
	defer cancel()

	sender := api.NewRESTMessageSender(sendURL)
	_, err := sender.SendMessage(context.Background(), api.NewSendMessageRequest(keygen.GenerateKey(), api.DefaultMessage))

	var hErr util.HTTPResponseError
	s.Require().True(errors.As(err, &hErr))
	s.Equal(http.StatusInternalServerError, hErr.Code)
	s.Equal(0, ms.Stored())

	cancel()
	s.waitStopped(done)
}

func (s *messengerStubTestSuite) TestStartOnBusyPort() {
	lis, err := net.Listen("tcp", "127.0.0.1:0")
	s.Require().NoError(err)
	defer lis.Close()

	ms, err := NewMessengerStub(WithPort(lis.Addr().(*net.TCPAddr).Port))
	s.Require().NoError(err)

	err = ms.Start(context.Background())
	s.Error(err)
}
