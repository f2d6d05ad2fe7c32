package utils

import (
	"encoding/json"
	"strings"
	"time"

	"logistics-requests/types"

	"github.com/gofiber/fiber/v2"
)

const (
	maskedValue     = "[MASKED]"
	maxAuditedBody  = 4096
	largeBodyMarker = "[LARGE_REQUEST_BODY_REMOVED]"
)

var sensitiveKeys = map[string]bool{
	"password":      true,
	"password_hash": true,
	"token":         true,
	"access_token":  true,
	"refresh_token": true,
}

// SanitizeBody masks credentials in a JSON body and drops oversized or
// binary payloads.
func SanitizeBody(contentType string, body []byte) string {
	if len(body) == 0 {
		return ""
	}
	if strings.Contains(contentType, "multipart/form-data") {
		return "[MULTIPART_FORM_DATA]"
	}
	if len(body) > maxAuditedBody {
		return largeBodyMarker
	}

	var parsed any
	if err := json.Unmarshal(body, &parsed); err != nil {
		return string(body)
	}
	out, err := json.Marshal(mask(parsed))
	if err != nil {
		return largeBodyMarker
	}
	return string(out)
}

func mask(v any) any {
	switch t := v.(type) {
	case map[string]any:
		for k, inner := range t {
			if sensitiveKeys[strings.ToLower(k)] {
				t[k] = maskedValue
				continue
			}
			t[k] = mask(inner)
		}
		return t
	case []any:
		for i := range t {
			t[i] = mask(t[i])
		}
		return t
	default:
		return v
	}
}

// CreateSanitizedLogEntry copies everything the audit log needs out of c,
// since fiber reuses the context's buffers after the handler returns.
// status is passed in because an error returned by the handler has not
// been written to the response yet.
func CreateSanitizedLogEntry(c *fiber.Ctx, requestID string, userID *uint, status int, started time.Time) types.LogEntry {
	return types.LogEntry{
		RequestID:   strings.Clone(requestID),
		Method:      strings.Clone(c.Method()),
		URL:         strings.Clone(c.OriginalURL()),
		UserID:      userID,
		IP:          strings.Clone(c.IP()),
		RequestBody: SanitizeBody(c.Get(fiber.HeaderContentType), c.Body()),
		StatusCode:  status,
		DurationMs:  time.Since(started).Milliseconds(),
		CreatedAt:   started,
	}
}
