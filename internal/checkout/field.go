package checkout

// FieldState tracks a single input's validation lifecycle. Fields start
// untouched and flip between valid and invalid as their value changes;
// there is no terminal state.
type FieldState string

const (
	FieldUntouched FieldState = "untouched"
	FieldValid     FieldState = "valid"
	FieldInvalid   FieldState = "invalid"
)

// Field is one card input: its display value plus the state and message
// derived from the last edit.
type Field struct {
	Value   string     `json:"value"`
	State   FieldState `json:"state"`
	Message string     `json:"message,omitempty"`
}

func (f *Field) set(value string, err error) {
	f.Value = value
	if err != nil {
		f.State = FieldInvalid
		f.Message = err.Error()
		return
	}
	f.State = FieldValid
	f.Message = ""
}

// Valid reports whether the field has been edited and passed validation.
func (f Field) Valid() bool {
	return f.State == FieldValid
}
