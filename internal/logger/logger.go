package logger

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/Nidal-Bakir/go-sms-notifier/internal/apperr"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// NewLogger builds the process logger. On the console (local env) it writes to stderr,
// stdout belongs to the program output. Everywhere else it appends JSON lines to logFile.
//
// The returned closer must be called before the process exits.
func NewLogger(shouldOutputToConcole bool, logFile string) (zerolog.Logger, io.Closer, error) {
	var output io.Writer
	var closer io.Closer = io.NopCloser(nil)

	if shouldOutputToConcole {
		output = zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.TimeOnly}
	} else {
		file, err := os.OpenFile(
			logFile,
			os.O_APPEND|os.O_CREATE|os.O_WRONLY,
			0664,
		)
		if err != nil {
			return zerolog.Nop(), nil, apperr.NewAppErrWithErrorCode(
				fmt.Errorf("error opening the log file %s for write: %w", logFile, err),
				apperr.CodeLogOutput,
			)
		}
		output = file
		closer = file
	}

	return New(output), closer, nil
}

func New(output io.Writer) zerolog.Logger {
	zerolog.DurationFieldUnit = time.Millisecond
	zerolog.DefaultContextLogger = nil
	zerolog.CallerMarshalFunc = func(pc uintptr, file string, line int) string {
		return filepath.Base(file) + ":" + strconv.Itoa(line)
	}

	log.Logger = zerolog.New(output).With().Caller().Timestamp().Logger()

	return log.Logger
}
