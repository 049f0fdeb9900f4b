// Package logger writes ccbar diagnostics to a rotating file. The status
// line owns stdout, so nothing here may print there.
package logger

import (
	"fmt"
	"io"
	"os"
	"time"

	"gopkg.in/natefinch/lumberjack.v2"
)

var (
	debugMode bool
	writer    io.Writer
)

// Init points the logger at a rotating log file.
func Init(logPath string, debug bool) {
	debugMode = debug
	writer = &lumberjack.Logger{
		Filename:   logPath,
		MaxSize:    5, // MB
		MaxBackups: 2,
		Compress:   false,
	}
}

func formatEntry(level, message string) string {
	ts := time.Now().Format(time.RFC3339)
	pid := os.Getpid()
	return fmt.Sprintf("[%s] [PID=%d] [%s] %s", ts, pid, level, message)
}

func writeLog(entry string) {
	if writer == nil {
		return
	}
	writer.Write([]byte(entry + "\n"))
}

// Debug logs only when debug mode is on.
func Debug(message string) {
	if !debugMode {
		return
	}
	writeLog(formatEntry("DEBUG", message))
}

// Error logs to stderr and, when initialized, the log file.
func Error(message string) {
	entry := formatEntry("ERROR", message)
	fmt.Fprintln(os.Stderr, entry)
	writeLog(entry)
}
