package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/Nidal-Bakir/go-sms-notifier/internal/appenv"
	"github.com/Nidal-Bakir/go-sms-notifier/internal/apperr"
	"github.com/Nidal-Bakir/go-sms-notifier/internal/gateway"
	"github.com/Nidal-Bakir/go-sms-notifier/internal/logger"
	"github.com/Nidal-Bakir/go-sms-notifier/internal/notifier"
	"github.com/Nidal-Bakir/go-sms-notifier/internal/tracker"
)

func main() {
	if err := run(context.Background(), ".env", os.Stdout); err != nil {
		if appErr := apperr.UnwrapAppErr(err); appErr != nil && appErr.ErrorCode() != "" {
			fmt.Fprintf(os.Stderr, "error [%s]: %v\n", appErr.ErrorCode(), err)
		} else {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
		}
		os.Exit(1)
	}
}

func run(ctx context.Context, envFile string, out io.Writer) error {
	env, err := appenv.Load(envFile)
	if err != nil {
		return err
	}

	log, logCloser, err := logger.NewLogger(env.IsLocal(), env.LogFile)
	if err != nil {
		return err
	}
	defer logCloser.Close()

	ctx = tracker.StartRun(ctx, log)

	n := notifier.New(
		notifier.Config{
			Credentials: notifier.Credentials{
				AccountSID: env.AccountSID,
				AuthToken:  env.AuthToken,
			},
			DefaultRequest: notifier.MessageRequest{
				Body: env.SMSBody,
				From: env.SenderPhone,
				To:   env.ReceiverPhone,
			},
		},
		gateway.NewGatewaysProvider(ctx),
		out,
	)

	_, err = n.SendMessage(ctx)
	return err
}
