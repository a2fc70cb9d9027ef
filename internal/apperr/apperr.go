package apperr

import (
	"encoding/json"
)

const (
	CodeMissingEnvVar     = "cfg_1"
	CodeInvalidAppEnv     = "cfg_2"
	CodeUnreadableEnvFile = "cfg_3"
	CodeLogOutput         = "log_1"
)

func IsAppErr(err error) bool {
	return UnwrapAppErr(err) != nil
}

func UnwrapAppErr(err error) *AppErr {
	for {
		appErr, ok := err.(*AppErr)
		if ok {
			return appErr
		}
		switch x := err.(type) {
		case interface{ Unwrap() error }:
			err = x.Unwrap()
			if err == nil {
				return nil
			}
		case interface{ Unwrap() []error }:
			for _, err := range x.Unwrap() {
				e := UnwrapAppErr(err)
				if e != nil {
					return e
				}
			}
			return nil
		default:
			return nil
		}
	}
}

// AppErr marks errors raised by this program itself (config, log output).
// Errors coming back from the SMS provider are never wrapped in it.
type AppErr struct {
	err       error
	errorCode string
}

func (err AppErr) Error() string {
	return err.err.Error()
}

func (err AppErr) Unwrap() error { return err.err }

func (err AppErr) ErrorCode() string { return err.errorCode }

func (e AppErr) MarshalJSON() ([]byte, error) {
	m := make(map[string]any, 2)

	m["error"] = e.Error()

	if len(e.ErrorCode()) != 0 {
		m["code"] = e.ErrorCode()
	}

	return json.Marshal(m)
}

func NewAppErr(err error) error {
	return &AppErr{
		err: err,
	}
}

func NewAppErrWithErrorCode(err error, errorCode string) error {
	return &AppErr{
		err:       err,
		errorCode: errorCode,
	}
}
