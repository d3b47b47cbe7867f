package utils

import (
	"encoding/json"
	"regexp"
	"strings"
	"time"

	"museum-booking/types"

	"github.com/gofiber/fiber/v2"
)

// redactedHeaders are never written to the request log.
var redactedHeaders = regexp.MustCompile(`(?im)^(authorization|cookie|set-cookie):[^\r\n]*`)

// sanitizeRequestBody sanitizes request body for file uploads and large content
func sanitizeRequestBody(c *fiber.Ctx) string {
	// Check if this is a multipart form (file upload)
	contentType := c.Get("Content-Type")
	if strings.Contains(contentType, "multipart/form-data") {
		formData := make(map[string]interface{})

		if form, err := c.MultipartForm(); err == nil {
			for key, values := range form.Value {
				if len(values) > 0 {
					formData[key] = values[0]
				}
			}

			// Add file field information without content
			for key, files := range form.File {
				fileInfo := make([]map[string]interface{}, len(files))
				for i, file := range files {
					fileInfo[i] = map[string]interface{}{
						"filename": file.Filename,
						"size":     file.Size,
						"content":  "[FILE_CONTENT_REMOVED]",
					}
				}
				formData[key] = fileInfo
			}
		}

		if jsonBytes, err := json.Marshal(formData); err == nil {
			return string(jsonBytes)
		}
		return "[MULTIPART_FORM_DATA]"
	}

	body := string(c.Body())
	if len(body) > 1000 && (strings.Contains(body, "data:image/") ||
		strings.Contains(body, "base64") ||
		isLikelyBase64(body)) {
		return "[LARGE_REQUEST_BODY_WITH_POSSIBLE_FILE_CONTENT]"
	}

	return body
}

// isLikelyBase64 detects if content looks like base64
func isLikelyBase64(content string) bool {
	if len(content) < 100 {
		return false
	}

	base64Chars := 0
	for _, char := range content {
		if (char >= 'A' && char <= 'Z') ||
			(char >= 'a' && char <= 'z') ||
			(char >= '0' && char <= '9') ||
			char == '+' || char == '/' || char == '=' {
			base64Chars++
		}
	}

	return float64(base64Chars)/float64(len(content)) > 0.8
}

// SanitizeHeaders drops credentials from a raw header block.
func SanitizeHeaders(raw []byte) string {
	return redactedHeaders.ReplaceAllString(string(raw), "$1: [REDACTED]")
}

// CreateSanitizedLogEntry creates a deep copied and sanitized log entry for
// logging. The copies outlive the fiber context, which reuses its buffers.
func CreateSanitizedLogEntry(c *fiber.Ctx, latency time.Duration) types.LogEntry {
	method := string([]byte(c.Method()))
	url := string([]byte(c.OriginalURL()))
	requestBody := sanitizeRequestBody(c)
	responseBody := string(append([]byte(nil), c.Response().Body()...))

	return types.LogEntry{
		Method:          method,
		URL:             url,
		RequestBody:     requestBody,
		ResponseBody:    responseBody,
		RequestHeaders:  SanitizeHeaders(c.Request().Header.Header()),
		ResponseHeaders: SanitizeHeaders(c.Response().Header.Header()),
		StatusCode:      c.Response().StatusCode(),
		LatencyMs:       latency.Milliseconds(),
		CreatedAt:       time.Now(),
	}
}
