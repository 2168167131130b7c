package util

type Envelope map[string]any

func Error(message string) Envelope {
	return Envelope{"error": message}
}

// FieldErrors renders a validation failure with one message per field.
func FieldErrors(message string, fields map[string]string) Envelope {
	return Envelope{"error": message, "fields": fields}
}
