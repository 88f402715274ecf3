package logger

import (
	"encoding/json"
	"io"
	"strings"

	"github.com/sirupsen/logrus"
)

type Fields map[string]any

var sensitiveKeys = map[string]struct{}{
	"name":        {},
	"holdername":  {},
	"holder_name": {},
}

var base = newBase()

func newBase() *logrus.Logger {
	l := logrus.New()
	l.SetFormatter(&logrus.JSONFormatter{})
	return l
}

// Configure points the package logger at out and sets the minimum level.
// An empty level keeps the current one.
func Configure(level string, out io.Writer) error {
	if out != nil {
		base.SetOutput(out)
	}

	level = strings.TrimSpace(level)
	if level == "" {
		return nil
	}

	parsed, err := logrus.ParseLevel(level)
	if err != nil {
		return err
	}
	base.SetLevel(parsed)
	return nil
}

func Debug(message string, fields Fields) {
	base.WithFields(sanitizedFields(fields)).Debug(message)
}

func Info(message string, fields Fields) {
	base.WithFields(sanitizedFields(fields)).Info(message)
}

func Error(message string, err error, fields Fields) {
	entry := base.WithFields(sanitizedFields(fields))
	if err != nil {
		entry = entry.WithError(err)
	}
	entry.Error(message)
}

// SanitizePayload flattens a request struct through its JSON form and masks
// holder names. Use it for payloads; plain Fields are masked on the way out.
func SanitizePayload(payload any) any {
	raw, err := json.Marshal(payload)
	if err != nil {
		return "<unavailable>"
	}

	var data any
	if err := json.Unmarshal(raw, &data); err != nil {
		return "<unavailable>"
	}

	return mask(data)
}

// sanitizedFields copies fields into a logrus.Fields, masking sensitive keys
// at any depth. Values are handed to logrus as-is otherwise, so errors and
// decimals keep their own formatting.
func sanitizedFields(fields Fields) logrus.Fields {
	out := make(logrus.Fields, len(fields))
	for key, value := range fields {
		if isSensitiveKey(key) {
			out[key] = maskedValue
			continue
		}
		out[key] = mask(value)
	}
	return out
}

const maskedValue = "******"

func mask(value any) any {
	switch typed := value.(type) {
	case Fields:
		return map[string]any(sanitizedFields(typed))
	case map[string]any:
		return map[string]any(sanitizedFields(Fields(typed)))
	case []any:
		out := make([]any, 0, len(typed))
		for _, item := range typed {
			out = append(out, mask(item))
		}
		return out
	default:
		return value
	}
}

func isSensitiveKey(key string) bool {
	normalized := strings.ToLower(strings.ReplaceAll(strings.TrimSpace(key), "-", ""))
	_, ok := sensitiveKeys[normalized]
	return ok
}
