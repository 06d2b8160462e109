package domain

// FieldKind is the closed set of form control types the schema may use.
// Rendering and validation dispatch on it exhaustively; an unknown kind is
// a schema document error, not a runtime fallthrough.
type FieldKind string

const (
	FieldText     FieldKind = "text"
	FieldEmail    FieldKind = "email"
	FieldNumber   FieldKind = "number"
	FieldDate     FieldKind = "date"
	FieldSelect   FieldKind = "select"
	FieldCheckbox FieldKind = "checkbox"
	FieldTextarea FieldKind = "textarea"
)

// KnownFieldKind reports whether k is one of the supported field kinds.
func KnownFieldKind(k FieldKind) bool {
	switch k {
	case FieldText, FieldEmail, FieldNumber, FieldDate, FieldSelect, FieldCheckbox, FieldTextarea:
		return true
	}
	return false
}

type FieldOption struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

// FieldDescriptor describes one form field. Descriptors are immutable once
// loaded; Name is the unique key a submitted value is stored under.
type FieldDescriptor struct {
	Name        string        `json:"name"`
	Kind        FieldKind     `json:"type"`
	Label       string        `json:"label"`
	Placeholder string        `json:"placeholder,omitempty"`
	Required    bool          `json:"required"`
	Min         *float64      `json:"min,omitempty"`
	Max         *float64      `json:"max,omitempty"`
	Options     []FieldOption `json:"options,omitempty"`
}

// SchemaMetadata travels alongside the field list: the predefined
// inclusion/exclusion catalogs and the agency booking policy text.
type SchemaMetadata struct {
	InclusionsList []string       `json:"inclusionsList"`
	ExclusionsList []string       `json:"exclusionsList"`
	BookingPolicy  *BookingPolicy `json:"bookingPolicy,omitempty"`
}

type BookingPolicy struct {
	PaymentTerms      []string `json:"paymentTerms"`
	CancellationTerms []string `json:"cancellationTerms"`
}

// SchemaDocument is the wire shape of GET /schema.
type SchemaDocument struct {
	Fields   []FieldDescriptor `json:"fields"`
	Metadata SchemaMetadata    `json:"metadata"`
}
