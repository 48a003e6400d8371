package ldap

// Well known extended operations.
const (
	ExtendedOperationStartTLS       = "1.3.6.1.4.1.1466.20037"
	ExtendedOperationPasswordModify = "1.3.6.1.4.1.4203.1.11.1"
	ExtendedOperationWhoAmI         = "1.3.6.1.4.1.4203.1.11.3"
	ExtendedOperationCancel         = "1.3.6.1.1.8"
)

var ExtendedOperationMap = map[string]string{
	ExtendedOperationStartTLS:       "Start TLS",
	ExtendedOperationPasswordModify: "Password Modify",
	ExtendedOperationWhoAmI:         "Who Am I",
	ExtendedOperationCancel:         "Cancel",
}

// ExtendedRequest is a named operation with an opaque value. The zero value
// is an extended request with no name and no value.
//
// The value is owned by the request: SetValue stores a copy and Value
// returns a copy, so callers may modify either buffer freely.
type ExtendedRequest struct {
	requestControls

	Name  string
	value []byte
}

func NewExtendedRequest(name string) *ExtendedRequest {
	return &ExtendedRequest{
		requestControls: newRequestControls(),
		Name:            name,
	}
}

func NewExtendedRequestWithValue(name string, value []byte) *ExtendedRequest {
	ext := NewExtendedRequest(name)
	ext.SetValue(value)
	return ext
}

// Value returns a new copy of the request value. It is never nil; an unset
// value is an empty slice.
func (ext *ExtendedRequest) Value() []byte {
	value := make([]byte, len(ext.value))
	copy(value, ext.value)
	return value
}

func (ext *ExtendedRequest) SetValue(value []byte) {
	if value == nil {
		ext.value = nil
		return
	}
	ext.value = append([]byte{}, value...)
}

// HasValue reports whether a value was set, which decides if the optional
// requestValue field goes on the wire.
func (ext *ExtendedRequest) HasValue() bool {
	return ext.value != nil
}

func (ext *ExtendedRequest) OperationName() string {
	return "Extended"
}
