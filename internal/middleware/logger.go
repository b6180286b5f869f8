package middleware

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"regexp"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
)

// sensitiveHeaderPatterns contains regex patterns for headers that must not
// end up in logs.
var sensitiveHeaderPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)authorization`),
	regexp.MustCompile(`(?i)api[-_]?key`),
	regexp.MustCompile(`(?i)token`),
	regexp.MustCompile(`(?i)secret`),
	regexp.MustCompile(`(?i)cookie`),
	regexp.MustCompile(`(?i)session`),
}

// responseWriter is a custom response writer to capture response body
type responseWriter struct {
	gin.ResponseWriter
	body *bytes.Buffer
}

func (w *responseWriter) Write(b []byte) (int, error) {
	w.body.Write(b)
	return w.ResponseWriter.Write(b)
}

// LoggerConfig holds configuration for the logger middleware
type LoggerConfig struct {
	Format string // "json" or "pretty"
	Level  string // "debug", "info", "warn", "error"
}

// RequestResponseLogger creates a middleware that logs all API requests and
// responses. Request and response bodies are included only at debug level;
// non-JSON bodies (printable invoice pages) are truncated.
func RequestResponseLogger(config LoggerConfig) gin.HandlerFunc {
	logBodies := config.Level == "debug"

	return func(c *gin.Context) {
		startTime := time.Now()

		var requestBody []byte
		if logBodies && c.Request.Body != nil {
			requestBody, _ = io.ReadAll(c.Request.Body)
			c.Request.Body = io.NopCloser(bytes.NewBuffer(requestBody))
		}

		var bodyWriter *responseWriter
		if logBodies {
			bodyWriter = &responseWriter{
				ResponseWriter: c.Writer,
				body:           bytes.NewBufferString(""),
			}
			c.Writer = bodyWriter
		}

		c.Next()

		latency := time.Since(startTime)

		var responseBody []byte
		if bodyWriter != nil {
			responseBody = bodyWriter.body.Bytes()
		}
		entry := buildLogEntry(c, requestBody, responseBody, latency)

		if config.Format == "pretty" {
			printPrettyLog(entry)
		} else {
			printJSONLog(entry)
		}
	}
}

// LogEntry represents a structured log entry
type LogEntry struct {
	Timestamp    string              `json:"timestamp"`
	Method       string              `json:"method"`
	Path         string              `json:"path"`
	StatusCode   int                 `json:"status_code"`
	Latency      string              `json:"latency"`
	ClientIP     string              `json:"client_ip"`
	UserAgent    string              `json:"user_agent"`
	Headers      map[string]string   `json:"headers"`
	QueryParams  map[string][]string `json:"query_params,omitempty"`
	RequestBody  interface{}         `json:"request_body,omitempty"`
	ResponseBody interface{}         `json:"response_body,omitempty"`
	Error        string              `json:"error,omitempty"`
}

// buildLogEntry constructs a log entry from request and response data
func buildLogEntry(c *gin.Context, requestBody, responseBody []byte, latency time.Duration) LogEntry {
	entry := LogEntry{
		Timestamp:   time.Now().Format(time.RFC3339),
		Method:      c.Request.Method,
		Path:        c.Request.URL.Path,
		StatusCode:  c.Writer.Status(),
		Latency:     latency.String(),
		ClientIP:    c.ClientIP(),
		UserAgent:   c.Request.UserAgent(),
		Headers:     redactHeaders(c.Request.Header),
		QueryParams: c.Request.URL.Query(),
	}

	if len(requestBody) > 0 {
		entry.RequestBody = parseBody(requestBody)
	}
	if len(responseBody) > 0 {
		entry.ResponseBody = parseBody(responseBody)
	}

	if len(c.Errors) > 0 {
		entry.Error = c.Errors.String()
	}

	return entry
}

// redactHeaders redacts sensitive headers
func redactHeaders(headers map[string][]string) map[string]string {
	redacted := make(map[string]string)
	for key, values := range headers {
		if isSensitiveHeader(key) {
			redacted[key] = "[REDACTED]"
		} else {
			redacted[key] = strings.Join(values, ", ")
		}
	}
	return redacted
}

// isSensitiveHeader checks if a header name is sensitive
func isSensitiveHeader(headerName string) bool {
	for _, pattern := range sensitiveHeaderPatterns {
		if pattern.MatchString(headerName) {
			return true
		}
	}
	return false
}

// parseBody decodes a JSON body for structured logging; anything else is
// logged as a truncated string.
func parseBody(body []byte) interface{} {
	var jsonBody interface{}
	if err := json.Unmarshal(body, &jsonBody); err != nil {
		bodyStr := string(body)
		if len(bodyStr) > 1000 {
			bodyStr = bodyStr[:1000] + "... (truncated)"
		}
		return bodyStr
	}
	return jsonBody
}

// printJSONLog outputs the log entry as JSON
func printJSONLog(entry LogEntry) {
	jsonBytes, err := json.Marshal(entry)
	if err != nil {
		fmt.Printf(`{"error": "failed to marshal log entry: %v"}%s`, err, "\n")
		return
	}
	fmt.Println(string(jsonBytes))
}

// printPrettyLog outputs the log entry in a human-readable format
func printPrettyLog(entry LogEntry) {
	fmt.Println("\n" + strings.Repeat("=", 80))
	fmt.Printf("%s | %s %s\n", entry.Timestamp, entry.Method, entry.Path)
	fmt.Printf("status: %d | latency: %s | client: %s\n", entry.StatusCode, entry.Latency, entry.ClientIP)

	if len(entry.QueryParams) > 0 {
		fmt.Println("query:")
		for key, values := range entry.QueryParams {
			fmt.Printf("  %s: %v\n", key, values)
		}
	}

	if entry.RequestBody != nil {
		fmt.Println("request body:")
		prettyPrintJSON(entry.RequestBody)
	}
	if entry.ResponseBody != nil {
		fmt.Println("response body:")
		prettyPrintJSON(entry.ResponseBody)
	}

	if entry.Error != "" {
		fmt.Printf("error: %s\n", entry.Error)
	}

	fmt.Println(strings.Repeat("=", 80))
}

// prettyPrintJSON prints JSON data in a formatted way
func prettyPrintJSON(data interface{}) {
	jsonBytes, err := json.MarshalIndent(data, "  ", "  ")
	if err != nil {
		fmt.Printf("  %v\n", data)
		return
	}
	fmt.Printf("  %s\n", string(jsonBytes))
}
