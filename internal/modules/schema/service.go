package schema

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"
	"sync"

	"tripdesk/internal/domain"
	"tripdesk/internal/pkg/validator"
)

// Group names the three form sections the field list is sliced into.
type Group string

const (
	GroupContact Group = "contact"
	GroupTrip    Group = "trip"
	GroupPricing Group = "pricing"
)

// Positional slice boundaries inherited from the original schema layout:
// the first contactFieldCount fields are the contact section, the next
// tripFieldCount the trip section, the rest pricing.
const (
	contactFieldCount = 3
	tripFieldCount    = 7
)

// Service loads the form schema document from disk and answers field-level
// questions about it. The document is parsed once and cached; a service
// restart picks up schema edits.
type Service struct {
	path string

	mu     sync.Mutex
	cached *domain.SchemaDocument
}

func NewService(path string) *Service {
	return &Service{path: path}
}

// Load returns the schema document, reading it from disk on first use.
// Any failure to produce a well-formed document maps to ErrSchemaUnavailable:
// without a schema there is no authoring flow.
func (s *Service) Load() (*domain.SchemaDocument, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.cached != nil {
		return s.cached, nil
	}

	raw, err := os.ReadFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSchemaUnavailable, err)
	}

	var doc domain.SchemaDocument
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSchemaUnavailable, err)
	}

	for _, f := range doc.Fields {
		if !domain.KnownFieldKind(f.Kind) {
			return nil, fmt.Errorf("%w: field %q has kind %q", ErrUnknownFieldKind, f.Name, f.Kind)
		}
	}

	s.cached = &doc
	return s.cached, nil
}

// Groups partitions the field list into its three sections by position.
func Groups(fields []domain.FieldDescriptor) map[Group][]domain.FieldDescriptor {
	contactEnd := min(contactFieldCount, len(fields))
	tripEnd := min(contactFieldCount+tripFieldCount, len(fields))

	return map[Group][]domain.FieldDescriptor{
		GroupContact: fields[:contactEnd],
		GroupTrip:    fields[contactEnd:tripEnd],
		GroupPricing: fields[tripEnd:],
	}
}

// ApplyLabelOverrides returns a copy of fields with labels replaced where
// the override table has an entry. Overrides are keyed by field name only.
func ApplyLabelOverrides(fields []domain.FieldDescriptor, overrides map[string]string) []domain.FieldDescriptor {
	out := append([]domain.FieldDescriptor(nil), fields...)
	for i := range out {
		if label, ok := overrides[out[i].Name]; ok {
			out[i].Label = label
		}
	}
	return out
}

// FieldError is an advisory, per-field finding. It never blocks the draft
// rules run at submit time.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// CheckField evaluates one submitted value against its descriptor. A nil
// return means the value is acceptable.
func CheckField(desc domain.FieldDescriptor, value any) *FieldError {
	str := stringValue(value)

	if desc.Required && strings.TrimSpace(str) == "" {
		return &FieldError{Field: desc.Name, Message: desc.Label + " is required"}
	}
	if strings.TrimSpace(str) == "" {
		return nil
	}

	switch desc.Kind {
	case domain.FieldEmail:
		if !validator.IsEmail(str) {
			return &FieldError{Field: desc.Name, Message: "Invalid email address"}
		}
	case domain.FieldNumber:
		n, err := numberValue(value)
		if err != nil {
			return &FieldError{Field: desc.Name, Message: desc.Label + " must be a number"}
		}
		if desc.Min != nil && n < *desc.Min {
			return &FieldError{Field: desc.Name, Message: fmt.Sprintf("%s must be at least %v", desc.Label, *desc.Min)}
		}
		if desc.Max != nil && n > *desc.Max {
			return &FieldError{Field: desc.Name, Message: fmt.Sprintf("%s must be at most %v", desc.Label, *desc.Max)}
		}
	case domain.FieldSelect:
		if len(desc.Options) > 0 && !hasOption(desc.Options, str) {
			return &FieldError{Field: desc.Name, Message: desc.Label + " has an invalid option"}
		}
	}

	return nil
}

// CheckFields runs CheckField over a submitted value map. Values for names
// absent from the schema are ignored.
func CheckFields(fields []domain.FieldDescriptor, values map[string]any) []FieldError {
	var out []FieldError
	for _, desc := range fields {
		if fe := CheckField(desc, values[desc.Name]); fe != nil {
			out = append(out, *fe)
		}
	}
	return out
}

func hasOption(options []domain.FieldOption, value string) bool {
	for _, o := range options {
		if o.Value == value {
			return true
		}
	}
	return false
}

func stringValue(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case bool:
		return strconv.FormatBool(t)
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	default:
		return fmt.Sprintf("%v", t)
	}
}

func numberValue(v any) (float64, error) {
	switch t := v.(type) {
	case float64:
		return t, nil
	case int:
		return float64(t), nil
	case string:
		return strconv.ParseFloat(strings.TrimSpace(t), 64)
	default:
		return 0, fmt.Errorf("not a number: %T", v)
	}
}
