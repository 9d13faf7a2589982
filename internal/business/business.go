package business

import (
	"context"
	"errors"
	"io"

	"example.poc/messenger-client/internal/api"
	"example.poc/messenger-client/internal/keygen"
	"example.poc/messenger-client/internal/util"
	"github.com/rs/zerolog"
)

type OutcomeKind string

const (
	Delivered       OutcomeKind = "delivered"
	Rejected        OutcomeKind = "rejected"
	TransportFailed OutcomeKind = "transport_failed"
)

// Outcome is the terminal state of a single send.
type Outcome struct {
	Kind      OutcomeKind
	Code      int
	Status    string
	ErrorCode string
	Err       error
}

// SendOne performs exactly one send attempt.
func SendOne(ctx context.Context, sender api.IMessageSender, pubKey, text string) Outcome {
	res, err := sender.SendMessage(ctx, api.NewSendMessageRequest(pubKey, text))
	if err == nil {
		return Outcome{
			Kind:   Delivered,
			Code:   res.Code,
			Status: res.Status,
		}
	}

	var hErr util.HTTPResponseError
	if errors.As(err, &hErr) {
		return Outcome{
			Kind: Rejected,
			Code: hErr.Code,
			Err:  err,
		}
	}

	return Outcome{
		Kind:      TransportFailed,
		ErrorCode: api.ErrorCode(err),
		Err:       err,
	}
}

// Reporter prints the user facing line for an outcome. Lines are written at
// no level so they survive any LOG_LEVEL.
type Reporter struct {
	out    zerolog.Logger
	errOut zerolog.Logger
}

func NewReporter(stdout, stderr io.Writer) *Reporter {
	return &Reporter{
		out:    plainLogger(stdout),
		errOut: plainLogger(stderr),
	}
}

func plainLogger(w io.Writer) zerolog.Logger {
	return zerolog.New(zerolog.ConsoleWriter{
		Out:        w,
		NoColor:    true,
		PartsOrder: []string{zerolog.MessageFieldName},
	})
}

func (r *Reporter) Report(ctx context.Context, o Outcome) {
	switch o.Kind {
	case Delivered:
		r.out.Log().Msgf("response status: %s", o.Status)
	case TransportFailed:
		r.errOut.Log().Msgf("ERROR: %s", o.ErrorCode)
		zerolog.Ctx(ctx).Debug().Err(o.Err).Msg("transport failure")
	case Rejected:
		// a non-200 answer stays silent for the user
		zerolog.Ctx(ctx).Debug().Err(o.Err).Int("code", o.Code).Msg("message rejected by node")
	}
}

// Run generates a key, sends the fixed test message to it once and reports.
func Run(ctx context.Context, sender api.IMessageSender, reporter *Reporter) Outcome {
	pubKey := keygen.GenerateKey()
	ctx = zerolog.Ctx(ctx).With().
		Str("component", "send_one").
		Str("pub_key", util.MaskKey(pubKey)).
		Logger().WithContext(ctx)

	o := SendOne(ctx, sender, pubKey, api.DefaultMessage)
	reporter.Report(ctx, o)
	return o
}
