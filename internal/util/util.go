package util

import (
	"encoding/json"

	"github.com/rs/zerolog/log"
)

func JSONMarshalIgnoreErr(v any) []byte {
	if v == nil {
		return []byte("null")
	}

	bs, err := json.Marshal(v)
	if err != nil {
		log.Err(err).Msg("json marshal error")
		return []byte("{}")
	}

	return bs
}

// MaskKey shortens a recipient key for log output.
func MaskKey(key string) string {
	if len(key) <= 12 {
		return key
	}
	return key[:6] + "..." + key[len(key)-6:]
}
