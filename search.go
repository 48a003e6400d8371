package ldap

import (
	"fmt"
	"math"
	"time"
)

// Scope is how far below the base DN a search reaches.
type Scope int

const (
	// ScopeBaseObject searches the base entry only.
	ScopeBaseObject Scope = 0
	// ScopeSingleLevel searches the immediate children of the base entry.
	ScopeSingleLevel Scope = 1
	// ScopeWholeSubtree searches the base entry and everything below it.
	ScopeWholeSubtree Scope = 2
)

var ScopeMap = map[Scope]string{
	ScopeBaseObject:   "Base Object",
	ScopeSingleLevel:  "Single Level",
	ScopeWholeSubtree: "Whole Subtree",
}

// Valid reports whether s is one of the three defined scopes.
func (s Scope) Valid() bool {
	switch s {
	case ScopeBaseObject, ScopeSingleLevel, ScopeWholeSubtree:
		return true
	}
	return false
}

func (s Scope) String() string {
	if name, ok := ScopeMap[s]; ok {
		return name
	}
	return fmt.Sprintf("Scope(%d)", int(s))
}

type DerefAliases int

const (
	NeverDerefAliases   DerefAliases = 0
	DerefInSearching    DerefAliases = 1
	DerefFindingBaseObj DerefAliases = 2
	DerefAlways         DerefAliases = 3
)

var DerefMap = map[DerefAliases]string{
	NeverDerefAliases:   "NeverDerefAliases",
	DerefInSearching:    "DerefInSearching",
	DerefFindingBaseObj: "DerefFindingBaseObj",
	DerefAlways:         "DerefAlways",
}

func (d DerefAliases) Valid() bool {
	_, ok := DerefMap[d]
	return ok
}

func (d DerefAliases) String() string {
	if name, ok := DerefMap[d]; ok {
		return name
	}
	return fmt.Sprintf("DerefAliases(%d)", int(d))
}

// SearchRequest describes a search. Scope, size limit, time limit and alias
// dereferencing are checked on every change and are only reachable through
// their accessors; a rejected value leaves the previous one in place.
//
// A zero size or time limit means the client asks for no limit; the server
// may still enforce its own.
//
// Build requests with NewSearchRequest. The zero value is valid but searches
// with ScopeBaseObject, not ScopeWholeSubtree.
type SearchRequest struct {
	requestControls

	BaseDN string
	Filter string
	// Attributes lists the attributes to return, in order. Never nil for a
	// request built by NewSearchRequest.
	Attributes     []string
	AttributesOnly bool

	scope        Scope
	derefAliases DerefAliases
	sizeLimit    int
	timeLimit    time.Duration
}

// NewSearchRequest validates scope and copies attributes in order.
func NewSearchRequest(baseDN, filter string, scope Scope, attributes ...string) (*SearchRequest, error) {
	search := &SearchRequest{
		requestControls: newRequestControls(),
		BaseDN:          baseDN,
		Filter:          filter,
		Attributes:      make([]string, 0, len(attributes)),
	}
	if err := search.SetScope(scope); err != nil {
		return nil, err
	}
	search.Attributes = append(search.Attributes, attributes...)
	return search, nil
}

func (search *SearchRequest) DN() string {
	return search.BaseDN
}

func (search *SearchRequest) OperationName() string {
	return "Search"
}

func (search *SearchRequest) Scope() Scope {
	return search.scope
}

func (search *SearchRequest) SetScope(scope Scope) error {
	if !scope.Valid() {
		return &InvalidEnumError{Value: int(scope), Enum: "Scope"}
	}
	search.scope = scope
	return nil
}

func (search *SearchRequest) DerefAliases() DerefAliases {
	return search.derefAliases
}

func (search *SearchRequest) SetDerefAliases(deref DerefAliases) error {
	if !deref.Valid() {
		return &InvalidEnumError{Value: int(deref), Enum: "DerefAliases"}
	}
	search.derefAliases = deref
	return nil
}

// SizeLimit is the maximum number of entries to return; 0 is unlimited.
func (search *SearchRequest) SizeLimit() int {
	return search.sizeLimit
}

func (search *SearchRequest) SetSizeLimit(limit int) error {
	if limit < 0 {
		return &ArgumentError{Param: "SizeLimit", Reason: "could not be a negative number", Err: ErrInvalidArgument}
	}
	search.sizeLimit = limit
	return nil
}

// TimeLimit is how long the server may spend on the search; 0 is unlimited.
func (search *SearchRequest) TimeLimit() time.Duration {
	return search.timeLimit
}

// SetTimeLimit rejects negative durations and durations whose length in
// seconds does not fit the 32-bit integer the protocol carries.
func (search *SearchRequest) SetTimeLimit(limit time.Duration) error {
	if limit < 0 {
		return &ArgumentError{Param: "TimeLimit", Reason: "could not be a negative number", Err: ErrInvalidArgument}
	}
	if limit.Seconds() > math.MaxInt32 {
		return &ArgumentError{Param: "TimeLimit", Err: ErrTimeLimitOverflow}
	}
	search.timeLimit = limit
	return nil
}

// TimeLimitSeconds is the time limit in whole seconds, as sent on the wire.
func (search *SearchRequest) TimeLimitSeconds() int32 {
	return int32(search.timeLimit / time.Second)
}
