package appenv

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/Nidal-Bakir/go-sms-notifier/internal/apperr"
	"github.com/joho/godotenv"
)

const (
	EnvLocal = "local"
	EnvStag  = "stag"
	EnvProd  = "prod"

	DefaultSMSBody = "Hello! This is a test SMS from Twilio."
	DefaultLogFile = "/var/log/sms_notifier/sms_notifier.log"
)

type Env struct {
	Name string

	AccountSID    string
	AuthToken     string
	SenderPhone   string
	ReceiverPhone string
	SMSBody       string

	LogFile string
}

func (e Env) IsProd() bool  { return e.Name == EnvProd }
func (e Env) IsStag() bool  { return e.Name == EnvStag }
func (e Env) IsLocal() bool { return e.Name == EnvLocal }

func (e Env) IsStagOrLocal() bool {
	return e.IsStag() || e.IsLocal()
}

type LookupFunc func(key string) (string, bool)

// Load reads the environment of the process, falling back to the values in envFile.
// A missing envFile is not an error.
//
// Process env vars always win over the ones in the file.
func Load(envFile string) (Env, error) {
	fileVals, err := godotenv.Read(envFile)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			return Env{}, apperr.NewAppErrWithErrorCode(fmt.Errorf("can not read %s file: %w", envFile, err), apperr.CodeUnreadableEnvFile)
		}
		fileVals = map[string]string{}
	}

	return FromLookup(func(key string) (string, bool) {
		if v, ok := os.LookupEnv(key); ok {
			return v, true
		}
		v, ok := fileVals[key]
		return v, ok
	})
}

func FromLookup(lookup LookupFunc) (Env, error) {
	get := func(key, fallback string) string {
		v, ok := lookup(key)
		v = strings.TrimSpace(v)
		if !ok || v == "" {
			return fallback
		}
		return v
	}

	env := Env{
		Name:          get("APP_ENV", EnvLocal),
		AccountSID:    get("TWILIO_ACCOUNT_SID", ""),
		AuthToken:     get("TWILIO_AUTH_TOKEN", ""),
		SenderPhone:   get("TWILIO_PHONE_NUMBER", ""),
		ReceiverPhone: get("RECEIVER_PHONE_NUMBER", ""),
		SMSBody:       get("SMS_BODY", DefaultSMSBody),
		LogFile:       get("LOG_FILE", DefaultLogFile),
	}

	switch env.Name {
	case EnvLocal, EnvStag, EnvProd:
	default:
		return Env{}, apperr.NewAppErrWithErrorCode(
			fmt.Errorf("the value %q for APP_ENV is not one of local, stag or prod", env.Name),
			apperr.CodeInvalidAppEnv,
		)
	}

	var missing []string
	for _, kv := range []struct{ key, val string }{
		{"TWILIO_ACCOUNT_SID", env.AccountSID},
		{"TWILIO_AUTH_TOKEN", env.AuthToken},
		{"TWILIO_PHONE_NUMBER", env.SenderPhone},
		{"RECEIVER_PHONE_NUMBER", env.ReceiverPhone},
	} {
		if kv.val == "" {
			missing = append(missing, kv.key)
		}
	}
	if len(missing) != 0 {
		return Env{}, apperr.NewAppErrWithErrorCode(
			fmt.Errorf("missing required env vars: %s", strings.Join(missing, ", ")),
			apperr.CodeMissingEnvVar,
		)
	}

	return env, nil
}
