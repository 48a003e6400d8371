// Package ldap describes the operations an LDAP client can send to a
// directory server. Each request type checks its own fields when it is built
// and whenever a checked field is changed, so an Executor only ever sees
// requests that are safe to put on the wire.
package ldap

// Request is one of AddRequest, DeleteRequest, ModifyRequest,
// ModifyDNRequest, SearchRequest, CompareRequest or ExtendedRequest.
// The set is closed; other packages cannot add to it.
type Request interface {
	// Controls returns the attached controls in the order they were added.
	Controls() []Control
	// AddControl appends controls to the request.
	AddControl(controls ...Control)
	// OperationName is the protocol operation, e.g. "Search".
	OperationName() string

	request()
}

// DNRequest is implemented by the requests that target a single entry (or
// the base of a search).
type DNRequest interface {
	Request
	DN() string
}

// requestControls holds the controls shared by every request type.
type requestControls struct {
	controls []Control
}

func newRequestControls() requestControls {
	return requestControls{controls: []Control{}}
}

func (r *requestControls) Controls() []Control {
	if r.controls == nil {
		return []Control{}
	}
	return r.controls
}

func (r *requestControls) AddControl(controls ...Control) {
	for _, control := range controls {
		if control == nil {
			continue
		}
		r.controls = append(r.controls, control)
	}
}

func (r *requestControls) request() {}
