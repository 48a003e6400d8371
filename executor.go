package ldap

import (
	"context"
	"errors"
	"fmt"
)

// Executor sends a request to a directory server and returns its result.
// Implementations own the connection, the wire encoding and any session
// state. They must send Controls and SearchRequest.Attributes in order.
type Executor interface {
	Execute(ctx context.Context, req Request) (*Result, error)
}

// ExecutorFunc adapts a function to the Executor interface.
type ExecutorFunc func(ctx context.Context, req Request) (*Result, error)

func (f ExecutorFunc) Execute(ctx context.Context, req Request) (*Result, error) {
	return f(ctx, req)
}

// Result is what an Executor hands back for a completed operation. Only the
// fields that apply to the operation are set.
type Result struct {
	Code      LDAPResultCode
	MatchedDN string
	Message   string
	Referrals []string
	Controls  []Control

	// Search
	Entries []*Entry

	// Extended
	ResponseName string
	Value        []byte
}

// Err converts a non-success result code into an *Error. Compare results
// are not failures.
func (r *Result) Err() error {
	switch r.Code {
	case LDAPResultSuccess, LDAPResultCompareTrue, LDAPResultCompareFalse:
		return nil
	}
	var err error
	if r.Message != "" {
		err = errors.New(r.Message)
	}
	return &Error{ResultCode: r.Code, MatchedDN: r.MatchedDN, Err: err}
}

// Validate checks what the request types cannot check by themselves: a nil
// request and a missing entry on Add, Modify and Compare.
func Validate(req Request) error {
	switch r := req.(type) {
	case nil:
		return &ArgumentError{Param: "Request", Reason: "is nil", Err: ErrInvalidArgument}
	case *AddRequest:
		if r == nil || r.Entry == nil {
			return &ArgumentError{Param: "Entry", Reason: "is nil", Err: ErrInvalidArgument}
		}
	case *ModifyRequest:
		if r == nil || r.Entry == nil {
			return &ArgumentError{Param: "Entry", Reason: "is nil", Err: ErrInvalidArgument}
		}
		for _, change := range r.Entry.Changes {
			if _, ok := ModifyOperationMap[change.Operation]; !ok {
				return &InvalidEnumError{Value: int(change.Operation), Enum: "ModifyOperation"}
			}
		}
	case *CompareRequest:
		if r == nil || r.Entry == nil {
			return &ArgumentError{Param: "Entry", Reason: "is nil", Err: ErrInvalidArgument}
		}
		if _, ok := r.Assertion(); !ok {
			return &ArgumentError{Param: "Entry", Reason: "has no attribute value to compare", Err: ErrInvalidArgument}
		}
	case *DeleteRequest:
		if r == nil {
			return nilRequest(req)
		}
	case *ModifyDNRequest:
		if r == nil {
			return nilRequest(req)
		}
	case *SearchRequest:
		if r == nil {
			return nilRequest(req)
		}
	case *ExtendedRequest:
		if r == nil {
			return nilRequest(req)
		}
	}
	return nil
}

func nilRequest(req Request) error {
	return &ArgumentError{Param: fmt.Sprintf("%T", req), Reason: "is nil", Err: ErrInvalidArgument}
}
