package server

import (
	"fmt"
	"log"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/df07/go-pathtracer/pkg/core"
)

const defaultConsoleCapacity = 200

// ConsoleMessage represents a console message with timestamp
type ConsoleMessage struct {
	RenderID  string    `json:"renderId"`
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`
	Level     string    `json:"level"` // "info", "warning"
}

// Console keeps the most recent render log messages for the web UI
type Console struct {
	mu       sync.Mutex
	messages []ConsoleMessage
	capacity int
}

// NewConsole creates a console holding at most capacity messages
func NewConsole(capacity int) *Console {
	return &Console{capacity: capacity}
}

// Logger returns a core.Logger that records messages for one render
func (c *Console) Logger(renderID string) core.Logger {
	return &WebLogger{renderID: renderID, console: c}
}

// Recent returns the retained messages, oldest first
func (c *Console) Recent() []ConsoleMessage {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]ConsoleMessage(nil), c.messages...)
}

func (c *Console) add(msg ConsoleMessage) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.messages = append(c.messages, msg)
	if over := len(c.messages) - c.capacity; over > 0 {
		c.messages = append(c.messages[:0], c.messages[over:]...)
	}
}

// WebLogger implements core.Logger by writing to the server log and the console
type WebLogger struct {
	renderID string
	console  *Console
}

// Printf implements core.Logger interface
func (wl *WebLogger) Printf(format string, args ...interface{}) {
	message := fmt.Sprintf(format, args...)

	// Also write to the process log for server operators
	log.Printf("[%s] %s", wl.renderID, strings.TrimRight(message, "\n"))

	level := "info"
	if strings.HasPrefix(message, "Warning") {
		level = "warning"
	}
	wl.console.add(ConsoleMessage{
		RenderID:  wl.renderID,
		Message:   message,
		Timestamp: time.Now(),
		Level:     level,
	})
}

// handleConsole returns recent render log messages
func (s *Server) handleConsole(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.console.Recent())
}
