package ldap

// CompareRequest asks the server whether the entry named by Entry.DN holds
// the value given by the entry's first attribute.
type CompareRequest struct {
	requestControls

	Entry *Entry
}

// NewCompareRequest compares the first attribute of entry. Build the entry
// with AddAttribute rather than NewEntry when it has more than one attribute,
// since NewEntry does not keep map order.
func NewCompareRequest(entry *Entry) *CompareRequest {
	return &CompareRequest{
		requestControls: newRequestControls(),
		Entry:           entry,
	}
}

func (cmp *CompareRequest) DN() string {
	if cmp.Entry == nil {
		return ""
	}
	return cmp.Entry.DN
}

// Assertion returns the attribute/value pair to compare. ok is false when the
// entry has no attribute with at least one value.
func (cmp *CompareRequest) Assertion() (ava AttributeValueAssertion, ok bool) {
	if cmp.Entry == nil || len(cmp.Entry.Attributes) == 0 {
		return ava, false
	}
	attr := cmp.Entry.Attributes[0]
	if attr == nil || len(attr.Values) == 0 {
		return ava, false
	}
	return AttributeValueAssertion{AttributeDesc: attr.Name, AssertionValue: attr.Values[0]}, true
}

func (cmp *CompareRequest) OperationName() string {
	return "Compare"
}
