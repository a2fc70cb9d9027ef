package gateway

import (
	"context"
)

type Credentials struct {
	AccountSID string
	AuthToken  string
}

type Sender interface {
	// Send submits one message and returns the identifier the provider assigned to it.
	Send(ctx context.Context, from, to, content string) (sid string, err error)
}

type Provider interface {
	NewSMSProvider(ctx context.Context, creds Credentials, countryCode int) Sender
}

func NewGatewaysProvider(ctx context.Context) Provider {
	return &providerImpl{newAPI: newTwilioAPI}
}

type providerImpl struct {
	newAPI func(creds Credentials) messageCreator
}

// Twilio delivers to every country we send to, so countryCode does not pick another provider yet.
func (p providerImpl) NewSMSProvider(ctx context.Context, creds Credentials, countryCode int) Sender {
	return newSMSProvider(p.newAPI(creds))
}
