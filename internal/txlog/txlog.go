package txlog

import (
	"fmt"
	"os"
	"time"

	"github.com/shopspring/decimal"
)

const timestampLayout = "2006-01-02 15:04:05.000000"

// Logger records one line per payment attempt.
type Logger interface {
	LogTransaction(method string, amount decimal.Decimal, success bool) error
}

// FileLogger appends to a plain text file, one line per attempt. No
// rotation, no read API.
type FileLogger struct {
	filename string
}

func NewFileLogger(filename string) *FileLogger {
	return &FileLogger{filename: filename}
}

func (l *FileLogger) LogTransaction(method string, amount decimal.Decimal, success bool) error {
	status := "Failure"
	if success {
		status = "Success"
	}

	f, err := os.OpenFile(l.filename, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return err
	}
	defer f.Close()

	_, err = fmt.Fprintf(f, "%s: %s payment of $%s - %s\n",
		time.Now().Format(timestampLayout), method, amount.StringFixed(2), status)
	return err
}
