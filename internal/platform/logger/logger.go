package logger

import (
	"log"
	"os"
)

// New returns the process logger. Stores and services log structured
// key=value lines through it before surfacing classified errors.
func New() *log.Logger {
	return log.New(os.Stdout, "", log.LstdFlags)
}
