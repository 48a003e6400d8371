package ldap

// DeleteRequest removes a single leaf entry.
type DeleteRequest struct {
	requestControls

	// DistinguishedName is passed through as given; the server decides
	// whether it is well formed.
	DistinguishedName string
}

func NewDeleteRequest(dn string) *DeleteRequest {
	return &DeleteRequest{
		requestControls:   newRequestControls(),
		DistinguishedName: dn,
	}
}

func (del *DeleteRequest) DN() string {
	return del.DistinguishedName
}

func (del *DeleteRequest) OperationName() string {
	return "Delete"
}
