package notifier

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/Nidal-Bakir/go-sms-notifier/internal/gateway"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sentMessage struct {
	from, to, content string
}

type fakeSender struct {
	sent []sentMessage
	sids []string
	err  error
}

func (f *fakeSender) Send(ctx context.Context, from, to, content string) (string, error) {
	f.sent = append(f.sent, sentMessage{from: from, to: to, content: content})
	if f.err != nil {
		return "", f.err
	}
	return f.sids[len(f.sent)-1], nil
}

type fakeProvider struct {
	sender       *fakeSender
	creds        []Credentials
	countryCodes []int
}

func (f *fakeProvider) NewSMSProvider(ctx context.Context, creds Credentials, countryCode int) gateway.Sender {
	f.creds = append(f.creds, creds)
	f.countryCodes = append(f.countryCodes, countryCode)
	return f.sender
}

func scenarioConfig() Config {
	return Config{
		Credentials: Credentials{AccountSID: "ACxxxx", AuthToken: "tokenYYY"},
		DefaultRequest: MessageRequest{
			Body: "Hello! This is a test SMS from Twilio.",
			From: "+15550000000",
			To:   "+15551111111",
		},
	}
}

func TestSendMessageScenario(t *testing.T) {
	sender := &fakeSender{sids: []string{"SMxxxxxxxx"}}
	provider := &fakeProvider{sender: sender}
	var out bytes.Buffer

	receipt, err := New(scenarioConfig(), provider, &out).SendMessage(context.Background())
	require.NoError(t, err)

	assert.Equal(t, MessageReceipt{SID: "SMxxxxxxxx"}, receipt)
	assert.Equal(t, "SMS sent successfully! Message SID: SMxxxxxxxx\n", out.String())
	assert.Equal(t, []sentMessage{{
		from:    "+15550000000",
		to:      "+15551111111",
		content: "Hello! This is a test SMS from Twilio.",
	}}, sender.sent)
	assert.Equal(t, []int{1}, provider.countryCodes)
	assert.Equal(t, []Credentials{{AccountSID: "ACxxxx", AuthToken: "tokenYYY"}}, provider.creds)
}

func TestSendMessageProviderError(t *testing.T) {
	authErr := errors.New("Authenticate")
	sender := &fakeSender{err: authErr}
	var out bytes.Buffer

	receipt, err := New(scenarioConfig(), &fakeProvider{sender: sender}, &out).SendMessage(context.Background())
	assert.Same(t, authErr, err)
	assert.Empty(t, receipt.SID)
	assert.Empty(t, out.String())
	assert.Len(t, sender.sent, 1)
}

func TestSendMessageTwiceSendsTwoMessages(t *testing.T) {
	sender := &fakeSender{sids: []string{"SM1", "SM2"}}
	var out bytes.Buffer
	n := New(scenarioConfig(), &fakeProvider{sender: sender}, &out)

	r1, err := n.SendMessage(context.Background())
	require.NoError(t, err)
	r2, err := n.SendMessage(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "SM1", r1.SID)
	assert.Equal(t, "SM2", r2.SID)
	assert.Len(t, sender.sent, 2)
	assert.Equal(t,
		"SMS sent successfully! Message SID: SM1\nSMS sent successfully! Message SID: SM2\n",
		out.String(),
	)
}

func TestSendWithExplicitRequest(t *testing.T) {
	sender := &fakeSender{sids: []string{"SMabc"}}
	provider := &fakeProvider{sender: sender}
	var out bytes.Buffer

	req := MessageRequest{Body: "custom", From: "+15550000000", To: "+963912345678"}
	receipt, err := New(scenarioConfig(), provider, &out).Send(context.Background(), req)
	require.NoError(t, err)

	assert.Equal(t, "SMabc", receipt.SID)
	assert.Equal(t, []sentMessage{{from: "+15550000000", to: "+963912345678", content: "custom"}}, sender.sent)
	assert.Equal(t, []int{963}, provider.countryCodes)
}

func TestSendDoesNotValidateAddresses(t *testing.T) {
	sender := &fakeSender{sids: []string{"SMzzz"}}
	provider := &fakeProvider{sender: sender}
	var out bytes.Buffer

	req := MessageRequest{Body: "", From: "nope", To: "also nope"}
	_, err := New(scenarioConfig(), provider, &out).Send(context.Background(), req)
	require.NoError(t, err)

	assert.Len(t, sender.sent, 1)
	assert.Equal(t, []int{0}, provider.countryCodes)
}

type failingWriter struct{}

func (failingWriter) Write(p []byte) (int, error) { return 0, errors.New("stdout closed") }

func TestSendOutputWriteError(t *testing.T) {
	sender := &fakeSender{sids: []string{"SMxxxxxxxx"}}

	receipt, err := New(scenarioConfig(), &fakeProvider{sender: sender}, failingWriter{}).SendMessage(context.Background())
	require.Error(t, err)
	assert.Equal(t, "SMxxxxxxxx", receipt.SID)
}
