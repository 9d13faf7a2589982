package web

import (
	"fmt"
	"strings"

	"example.poc/messenger-client/internal/api"
	"example.poc/messenger-client/internal/repository"
	"github.com/samber/lo"
)

const (
	statusSaved = "saved"
	statusOk    = "Ok"
	statusError = "error"
)

type statusResponse struct {
	Status string `json:"status"`
	Error  string `json:"error,omitempty"`
}

func normalizeRetrieveRequest(req *api.RetrieveMessagesRequest) error {
	req.PubKey = strings.TrimSpace(req.PubKey)
	if req.PubKey == "" {
		return fmt.Errorf("pub_key cannot be empty")
	}
	return nil
}

func toRetrievedMessages(msgs []repository.StoredMessage) []api.RetrievedMessage {
	return lo.Map(msgs, func(m repository.StoredMessage, _ int) api.RetrievedMessage {
		return api.RetrievedMessage{
			Message:   m.Data,
			ExpiresAt: m.ExpiresAt.UnixMilli(),
		}
	})
}
