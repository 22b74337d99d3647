package utils

import (
	"bufio"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"strings"
	"sync"

	"github.com/alantheprice/ideaforge/pkg/ui"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Logger is the workspace logger. Messages go to a rotating log file under
// .ideaforge/; user-facing output additionally goes through the ui sink.
type Logger struct {
	logger                 *log.Logger
	userInteractionEnabled bool
	jsonMode               bool
	correlationID          string
}

var (
	globalLogger *Logger
	once         sync.Once
)

// GetLogger returns the singleton Logger, backed by a rotating file handler.
// The skipPrompts parameter controls whether user interaction is enabled and
// may be overridden on subsequent calls.
func GetLogger(skipPrompts bool) *Logger {
	once.Do(func() {
		logFile := &lumberjack.Logger{
			Filename:   ".ideaforge/workspace.log",
			MaxSize:    15, // megabytes
			MaxBackups: 3,
			MaxAge:     28, // days
			Compress:   true,
		}
		globalLogger = &Logger{
			logger: log.New(logFile, "", log.LstdFlags),
		}
	})
	globalLogger.userInteractionEnabled = !skipPrompts
	if os.Getenv("IDEAFORGE_JSON_LOGS") == "1" {
		globalLogger.jsonMode = true
	}
	return globalLogger
}

// SetCorrelationID tags all subsequent log entries with a run identifier.
func (w *Logger) SetCorrelationID(id string) {
	w.correlationID = id
}

// Close closes the logger resources.
func (w *Logger) Close() error {
	if logFile, ok := w.logger.Writer().(*lumberjack.Logger); ok {
		return logFile.Close()
	}
	return nil
}

// Log logs a general message only to the log file.
func (w *Logger) Log(message string) {
	if w.jsonMode {
		_ = json.NewEncoder(w.logger.Writer()).Encode(map[string]any{"level": "info", "msg": message, "cid": w.correlationID})
		return
	}
	if w.correlationID != "" {
		message = "[" + w.correlationID + "] " + message
	}
	w.logger.Print(message)
}

// Logf logs a formatted general message only to the log file.
func (w *Logger) Logf(format string, v ...interface{}) {
	w.Log(fmt.Sprintf(format, v...))
}

// LogError logs an error to the log file.
func (w *Logger) LogError(err error) {
	if w.jsonMode {
		_ = json.NewEncoder(w.logger.Writer()).Encode(map[string]any{"level": "error", "error": err.Error(), "cid": w.correlationID})
		return
	}
	w.logger.Printf("Error: %s", err)
}

// LogProcessStep logs the current step in a pipeline run and shows it to the user.
func (w *Logger) LogProcessStep(step string) {
	w.Logf("Process Step: %s", step)
	ui.Out().Print(step + "\n")
}

// LogUserInteraction logs a message that is also printed for the user.
func (w *Logger) LogUserInteraction(message string) {
	w.Logf("User Interaction: %s", message)
	ui.Out().Print(message + "\n")
}

// AskForConfirmation prompts the user with a yes/no question. When user
// interaction is disabled the default response is returned and the skipped
// prompt is logged.
func (w *Logger) AskForConfirmation(prompt string, defaultResponse bool) bool {
	if !w.userInteractionEnabled {
		w.Logf("Skipping prompt (interaction disabled): %s -> default %v", prompt, defaultResponse)
		return defaultResponse
	}
	ui.Out().Print(prompt + " [y/n]: ")
	reader := bufio.NewReader(os.Stdin)
	answer, err := reader.ReadString('\n')
	if err != nil {
		return defaultResponse
	}
	answer = strings.ToLower(strings.TrimSpace(answer))
	switch answer {
	case "y", "yes":
		return true
	case "n", "no":
		return false
	default:
		return defaultResponse
	}
}
