package notifier

import (
	"context"
	"fmt"
	"io"

	"github.com/Nidal-Bakir/go-sms-notifier/internal/gateway"
	"github.com/Nidal-Bakir/go-sms-notifier/internal/utils/phonenumber"
	"github.com/rs/zerolog"
)

const successLineFormat = "SMS sent successfully! Message SID: %s\n"

type Credentials = gateway.Credentials

type MessageRequest struct {
	Body string
	From string
	To   string
}

type MessageReceipt struct {
	SID string
}

type Config struct {
	Credentials Credentials

	// used by SendMessage
	DefaultRequest MessageRequest
}

type Notifier struct {
	config   Config
	provider gateway.Provider
	out      io.Writer
}

func New(config Config, provider gateway.Provider, out io.Writer) *Notifier {
	return &Notifier{config: config, provider: provider, out: out}
}

// SendMessage sends the configured default message.
func (n *Notifier) SendMessage(ctx context.Context) (MessageReceipt, error) {
	return n.Send(ctx, n.config.DefaultRequest)
}

// Send submits req once and prints the success line with the provider SID.
// Nothing is printed when the provider fails, and its error is returned as is.
func (n *Notifier) Send(ctx context.Context, req MessageRequest) (MessageReceipt, error) {
	var countryCode int
	if num := phonenumber.MayParse(req.To); num != nil {
		countryCode = num.CountryCode()
	}

	zlog := zerolog.Ctx(ctx).With().Int("country_code", countryCode).Logger()
	ctx = zlog.WithContext(ctx)

	sid, err := n.provider.NewSMSProvider(ctx, n.config.Credentials, countryCode).Send(ctx, req.From, req.To, req.Body)
	if err != nil {
		return MessageReceipt{}, err
	}

	if _, err := fmt.Fprintf(n.out, successLineFormat, sid); err != nil {
		zlog.Error().Err(err).Str("sid", sid).Msg("SMS sent but could not write the success line")
		return MessageReceipt{SID: sid}, err
	}

	return MessageReceipt{SID: sid}, nil
}
