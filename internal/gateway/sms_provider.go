package gateway

import (
	"context"
	"errors"

	"github.com/rs/zerolog"
	"github.com/twilio/twilio-go"
	twilioclient "github.com/twilio/twilio-go/client"
	openapi "github.com/twilio/twilio-go/rest/api/v2010"
)

// subset of the twilio v2010 api service we call
type messageCreator interface {
	CreateMessage(params *openapi.CreateMessageParams) (*openapi.ApiV2010Message, error)
}

func newTwilioAPI(creds Credentials) messageCreator {
	client := twilio.NewRestClientWithParams(twilio.ClientParams{
		Username: creds.AccountSID,
		Password: creds.AuthToken,
	})
	return client.Api
}

type twilioSMSProvider struct {
	api messageCreator
}

func newSMSProvider(api messageCreator) Sender {
	return &twilioSMSProvider{api: api}
}

// Send makes exactly one CreateMessage call. Errors from twilio are returned untouched.
func (p twilioSMSProvider) Send(ctx context.Context, from, to, content string) (string, error) {
	zlog := zerolog.Ctx(ctx).With().Str("from", from).Str("to", to).Logger()
	zlog.Debug().Int("body_len", len(content)).Msg("Sending SMS")

	params := &openapi.CreateMessageParams{}
	params.SetFrom(from)
	params.SetTo(to)
	params.SetBody(content)

	msg, err := p.api.CreateMessage(params)
	if err != nil {
		e := zlog.Error().Err(err)
		var restErr *twilioclient.TwilioRestError
		if errors.As(err, &restErr) {
			e = e.Int("twilio_code", restErr.Code).Int("http_status", restErr.Status).Str("more_info", restErr.MoreInfo)
		}
		e.Msg("Twilio did not accept the SMS")
		return "", err
	}

	var sid string
	if msg != nil && msg.Sid != nil {
		sid = *msg.Sid
	}

	status := ""
	if msg != nil && msg.Status != nil {
		status = *msg.Status
	}
	zlog.Info().Str("sid", sid).Str("status", status).Msg("SMS accepted by Twilio")

	return sid, nil
}
