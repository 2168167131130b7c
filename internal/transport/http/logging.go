package http

import (
	"bytes"
	"io"
	"mime"
	"mime/multipart"
	"net/url"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/goccy/go-json"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"
)

const (
	requestBodyLogKey  = "http.request.body.summary"
	responseBodyLogKey = "http.response.body.summary"
	handlerErrorKey    = "http.handler.error"
	maxLoggedBody      = 2048
	redacted           = "redacted"
	binaryPlaceholder  = "binary"
)

func registerLogging(e *echo.Echo, logger zerolog.Logger) {
	logger = logger.With().Str("component", "http").Logger()

	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogURI:      true,
		LogStatus:   true,
		LogMethod:   true,
		LogLatency:  true,
		LogError:    true,
		HandleError: true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			userID := "anonymous"
			if user, ok := CurrentUser(c); ok {
				userID = user.ID.String()
			}

			event := logger.Info()
			if v.Status >= 500 {
				event = logger.Error()
			} else if v.Status >= 400 {
				event = logger.Warn()
			}
			event = event.
				Str("user_id", userID).
				Str("method", v.Method).
				Str("uri", v.URI).
				Int("status", v.Status).
				Dur("latency", v.Latency)

			if summary := c.Get(requestBodyLogKey); summary != nil {
				event = event.Interface("request_body", summary)
			}
			if summary := c.Get(responseBodyLogKey); summary != nil {
				event = event.Interface("response_body", summary)
			}
			if v.Error != nil {
				event = event.Err(v.Error)
			} else if err, ok := c.Get(handlerErrorKey).(error); ok {
				event = event.Err(err)
			}
			event.Msg("request")
			return nil
		},
	}))

	e.Use(middleware.BodyDump(func(c echo.Context, reqBody, resBody []byte) {
		if summary := sanitizeBody(reqBody, c.Request().Header.Get(echo.HeaderContentType)); summary != nil {
			c.Set(requestBodyLogKey, summary)
		}
		if summary := sanitizeBody(resBody, c.Response().Header().Get(echo.HeaderContentType)); summary != nil {
			c.Set(responseBodyLogKey, summary)
		}
	}))
}

// sanitizeBody turns a raw body into something safe to log: passwords are
// redacted, files and binary payloads are replaced by a placeholder, and long
// bodies are clamped.
func sanitizeBody(body []byte, contentType string) any {
	if len(body) == 0 {
		return nil
	}
	lowered := strings.ToLower(strings.TrimSpace(contentType))

	switch {
	case strings.HasPrefix(lowered, "multipart/form-data"):
		return sanitizeMultipart(body, contentType)
	case strings.HasPrefix(lowered, "application/json") || json.Valid(body):
		var data any
		if err := json.Unmarshal(body, &data); err == nil {
			return limitJSONSize(sanitizeJSON(data, ""))
		}
	case strings.HasPrefix(lowered, "application/x-www-form-urlencoded"):
		if values, err := url.ParseQuery(string(body)); err == nil && len(values) > 0 {
			fields := make(map[string]any, len(values))
			for key, vals := range values {
				for _, v := range vals {
					addFormField(fields, key, sanitizeStringValue(v, strings.ToLower(key)))
				}
			}
			return limitJSONSize(fields)
		}
	}

	if containsBinaryBytes(body) {
		return binaryPlaceholder
	}
	text := string(body)
	if strings.Contains(strings.ToLower(text), "password") {
		return redacted
	}
	return clampString(text)
}

func limitJSONSize(value any) any {
	buf, err := json.Marshal(value)
	if err != nil || len(buf) <= maxLoggedBody {
		return value
	}
	return map[string]any{
		"_truncated": true,
		"_preview":   clampString(string(buf)),
	}
}

func sanitizeJSON(value any, keyHint string) any {
	switch v := value.(type) {
	case map[string]any:
		result := make(map[string]any, len(v))
		for key, val := range v {
			lowerKey := strings.ToLower(key)
			if strings.Contains(lowerKey, "password") {
				result[key] = redacted
				continue
			}
			result[key] = sanitizeJSON(val, lowerKey)
		}
		return result
	case []any:
		result := make([]any, len(v))
		for i, item := range v {
			result[i] = sanitizeJSON(item, keyHint)
		}
		return result
	case string:
		return sanitizeStringValue(v, keyHint)
	default:
		return v
	}
}

func sanitizeStringValue(value, keyHint string) string {
	if strings.Contains(keyHint, "password") || strings.Contains(keyHint, "token") {
		return redacted
	}
	if containsBinaryBytes([]byte(value)) {
		return binaryPlaceholder
	}
	return clampString(value)
}

func sanitizeMultipart(body []byte, contentType string) any {
	mediaType, params, err := mime.ParseMediaType(contentType)
	if err != nil || !strings.HasPrefix(mediaType, "multipart/") || params["boundary"] == "" {
		return binaryPlaceholder
	}

	reader := multipart.NewReader(bytes.NewReader(body), params["boundary"])
	fields := make(map[string]any)
	for {
		part, err := reader.NextPart()
		if err == io.EOF {
			break
		}
		if err != nil {
			return binaryPlaceholder
		}
		name := part.FormName()
		if name == "" {
			_ = part.Close()
			continue
		}

		var value any = binaryPlaceholder
		if part.FileName() == "" {
			if data, err := io.ReadAll(part); err == nil {
				value = sanitizeStringValue(string(data), strings.ToLower(name))
			}
		}
		_ = part.Close()
		addFormField(fields, name, value)
	}
	if len(fields) == 0 {
		return binaryPlaceholder
	}
	return limitJSONSize(fields)
}

func containsBinaryBytes(data []byte) bool {
	for len(data) > 0 {
		r, size := utf8.DecodeRune(data)
		if r == utf8.RuneError && size == 1 {
			return true
		}
		if !unicode.IsPrint(r) && !unicode.IsSpace(r) {
			return true
		}
		data = data[size:]
	}
	return false
}

func clampString(value string) string {
	if len(value) <= maxLoggedBody {
		return value
	}
	truncated := value[:maxLoggedBody]
	for !utf8.ValidString(truncated) && len(truncated) > 0 {
		truncated = truncated[:len(truncated)-1]
	}
	return truncated + "...(truncated)"
}

func addFormField(fields map[string]any, key string, value any) {
	existing, ok := fields[key]
	if !ok {
		fields[key] = value
		return
	}
	if items, isSlice := existing.([]any); isSlice {
		fields[key] = append(items, value)
		return
	}
	fields[key] = []any{existing, value}
}
