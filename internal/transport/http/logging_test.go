package http

import (
	"bytes"
	"mime/multipart"
	"strings"
	"testing"
)

func TestSanitizeBodyRedactsPasswords(t *testing.T) {
	summary := sanitizeBody([]byte(`{"email":"a@b.c","password":"Durian2024","nested":{"new_password":"x"}}`), "application/json")
	m, ok := summary.(map[string]any)
	if !ok {
		t.Fatalf("expected map summary, got %T", summary)
	}
	if m["password"] != redacted {
		t.Fatalf("expected password to be redacted, got %v", m["password"])
	}
	nested := m["nested"].(map[string]any)
	if nested["new_password"] != redacted {
		t.Fatalf("expected nested password to be redacted, got %v", nested["new_password"])
	}
	if m["email"] != "a@b.c" {
		t.Fatalf("expected email to be kept, got %v", m["email"])
	}
}

func TestSanitizeBodyRedactsTokens(t *testing.T) {
	summary := sanitizeBody([]byte(`{"id_token":"eyJhbGciOi"}`), "application/json")
	if summary.(map[string]any)["id_token"] != redacted {
		t.Fatalf("expected token to be redacted, got %v", summary)
	}
}

func TestSanitizeBodyMultipartReplacesFiles(t *testing.T) {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	_ = writer.WriteField("notes", "Lovely sunset at Samal")
	part, _ := writer.CreateFormFile("photos", "sunset.jpg")
	_, _ = part.Write([]byte{0xff, 0xd8, 0xff, 0x00})
	_ = writer.Close()

	summary := sanitizeBody(buf.Bytes(), writer.FormDataContentType())
	m, ok := summary.(map[string]any)
	if !ok {
		t.Fatalf("expected map summary, got %T", summary)
	}
	if m["photos"] != binaryPlaceholder {
		t.Fatalf("expected file to be replaced, got %v", m["photos"])
	}
	if m["notes"] != "Lovely sunset at Samal" {
		t.Fatalf("expected notes to be kept, got %v", m["notes"])
	}
}

func TestSanitizeBodyClampsLongText(t *testing.T) {
	summary := sanitizeBody([]byte(strings.Repeat("a", maxLoggedBody+10)), "text/plain")
	text, ok := summary.(string)
	if !ok || !strings.HasSuffix(text, "...(truncated)") {
		t.Fatalf("expected truncated text, got %v", summary)
	}
	if sanitizeBody([]byte{0x00, 0x01, 0xff}, "application/octet-stream") != binaryPlaceholder {
		t.Fatalf("expected binary placeholder")
	}
	if sanitizeBody(nil, "application/json") != nil {
		t.Fatalf("expected nil summary for empty body")
	}
}
