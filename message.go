package formkit

// Severity ranks a validation finding. Only SeverityError blocks Save;
// warnings and infos are advisory.
type Severity int

const (
	SeverityInfo Severity = iota
	SeverityWarning
	SeverityError
)

func (s Severity) String() string {
	switch s {
	case SeverityInfo:
		return "info"
	case SeverityWarning:
		return "warning"
	case SeverityError:
		return "error"
	default:
		return "unknown"
	}
}

// Message is a single validation finding. Text may contain named placeholders
// in the %{name} form; Form.Format resolves them from Values and from the
// form's field labels at render time, so the stored text stays a template.
type Message struct {
	Field    string
	Severity Severity
	Text     string
	Code     string
	Values   map[string]any
}

// NewError builds an error-severity message.
func NewError(text string) *Message {
	return &Message{Severity: SeverityError, Text: text}
}

// NewWarning builds a warning-severity message.
func NewWarning(text string) *Message {
	return &Message{Severity: SeverityWarning, Text: text}
}

// NewInfo builds an info-severity message.
func NewInfo(text string) *Message {
	return &Message{Severity: SeverityInfo, Text: text}
}

// WithCode attaches a machine-readable code and returns the message.
func (m *Message) WithCode(code string) *Message {
	m.Code = code
	return m
}

// WithValues attaches placeholder values used by Form.Format and returns the
// message.
func (m *Message) WithValues(values map[string]any) *Message {
	m.Values = values
	return m
}

// WithField pins the message to a field and returns the message. Validators
// may leave Field empty; the form stamps the owning field during Validate.
func (m *Message) WithField(field string) *Message {
	m.Field = field
	return m
}

// Messages is an ordered collection of validation findings. It is plain data,
// not an error: validation outcomes are reported, never thrown.
type Messages []Message

// Add appends a message. Nil messages are ignored so direct validators can
// hand over their result unconditionally.
func (ms *Messages) Add(m *Message) {
	if m == nil {
		return
	}
	*ms = append(*ms, *m)
}

// ForField returns the messages attached to the given field, preserving order.
func (ms Messages) ForField(field string) Messages {
	var out Messages
	for _, m := range ms {
		if m.Field == field {
			out = append(out, m)
		}
	}
	return out
}

// Filter returns the messages carrying the given severity, preserving order.
func (ms Messages) Filter(severity Severity) Messages {
	var out Messages
	for _, m := range ms {
		if m.Severity == severity {
			out = append(out, m)
		}
	}
	return out
}

func (ms Messages) hasSeverity(severity Severity) bool {
	for _, m := range ms {
		if m.Severity == severity {
			return true
		}
	}
	return false
}

// HasErrors reports whether any message carries SeverityError.
func (ms Messages) HasErrors() bool {
	return ms.hasSeverity(SeverityError)
}

// HasWarnings reports whether any message carries SeverityWarning.
func (ms Messages) HasWarnings() bool {
	return ms.hasSeverity(SeverityWarning)
}

// HasInfos reports whether any message carries SeverityInfo.
func (ms Messages) HasInfos() bool {
	return ms.hasSeverity(SeverityInfo)
}

// Fields returns the distinct fields that have messages, in first-appearance
// order. Form-level messages contribute an empty field name.
func (ms Messages) Fields() []string {
	var fields []string
	seen := make(map[string]bool)
	for _, m := range ms {
		if !seen[m.Field] {
			fields = append(fields, m.Field)
			seen[m.Field] = true
		}
	}
	return fields
}

// IsEmpty reports whether the collection holds no messages.
func (ms Messages) IsEmpty() bool {
	return len(ms) == 0
}
