package ldap

// AddRequest creates Entry on the server. The entry is shared with the
// caller, not copied.
type AddRequest struct {
	requestControls

	Entry *Entry
}

func NewAddRequest(entry *Entry) *AddRequest {
	return &AddRequest{
		requestControls: newRequestControls(),
		Entry:           entry,
	}
}

func (add *AddRequest) DN() string {
	if add.Entry == nil {
		return ""
	}
	return add.Entry.DN
}

func (add *AddRequest) OperationName() string {
	return "Add"
}
