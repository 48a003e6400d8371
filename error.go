package ldap

import (
	"errors"
	"fmt"
)

// Validation failures. Requests return these wrapped in *InvalidEnumError or
// *ArgumentError; test for them with errors.Is.
var (
	ErrInvalidEnumValue  = errors.New("ldap: invalid enum value")
	ErrInvalidArgument   = errors.New("ldap: invalid argument")
	ErrTimeLimitOverflow = errors.New("ldap: time span overflow")
)

// InvalidEnumError reports a value outside the members of an enumeration.
type InvalidEnumError struct {
	Value int
	Enum  string
}

func (e *InvalidEnumError) Error() string {
	return fmt.Sprintf("ldap: value %d is invalid for enum type %s", e.Value, e.Enum)
}

func (e *InvalidEnumError) Unwrap() error {
	return ErrInvalidEnumValue
}

// ArgumentError reports a rejected value for a request field. Err is
// ErrInvalidArgument or ErrTimeLimitOverflow.
type ArgumentError struct {
	Param  string
	Reason string
	Err    error
}

func (e *ArgumentError) Error() string {
	if e.Reason == "" {
		return fmt.Sprintf("%s: %s", e.Err, e.Param)
	}
	return fmt.Sprintf("%s: %s %s", e.Err, e.Param, e.Reason)
}

func (e *ArgumentError) Unwrap() error {
	return e.Err
}

type LDAPResultCode uint16

// LDAP result codes (RFC 4511 section 4.1.9)
const (
	LDAPResultSuccess                      LDAPResultCode = 0
	LDAPResultOperationsError              LDAPResultCode = 1
	LDAPResultProtocolError                LDAPResultCode = 2
	LDAPResultTimeLimitExceeded            LDAPResultCode = 3
	LDAPResultSizeLimitExceeded            LDAPResultCode = 4
	LDAPResultCompareFalse                 LDAPResultCode = 5
	LDAPResultCompareTrue                  LDAPResultCode = 6
	LDAPResultAuthMethodNotSupported       LDAPResultCode = 7
	LDAPResultStrongAuthRequired           LDAPResultCode = 8
	LDAPResultReferral                     LDAPResultCode = 10
	LDAPResultAdminLimitExceeded           LDAPResultCode = 11
	LDAPResultUnavailableCriticalExtension LDAPResultCode = 12
	LDAPResultConfidentialityRequired      LDAPResultCode = 13
	LDAPResultSaslBindInProgress           LDAPResultCode = 14
	LDAPResultNoSuchAttribute              LDAPResultCode = 16
	LDAPResultUndefinedAttributeType       LDAPResultCode = 17
	LDAPResultInappropriateMatching        LDAPResultCode = 18
	LDAPResultConstraintViolation          LDAPResultCode = 19
	LDAPResultAttributeOrValueExists       LDAPResultCode = 20
	LDAPResultInvalidAttributeSyntax       LDAPResultCode = 21
	LDAPResultNoSuchObject                 LDAPResultCode = 32
	LDAPResultAliasProblem                 LDAPResultCode = 33
	LDAPResultInvalidDNSyntax              LDAPResultCode = 34
	LDAPResultAliasDereferencingProblem    LDAPResultCode = 36
	LDAPResultInappropriateAuthentication  LDAPResultCode = 48
	LDAPResultInvalidCredentials           LDAPResultCode = 49
	LDAPResultInsufficientAccessRights     LDAPResultCode = 50
	LDAPResultBusy                         LDAPResultCode = 51
	LDAPResultUnavailable                  LDAPResultCode = 52
	LDAPResultUnwillingToPerform           LDAPResultCode = 53
	LDAPResultLoopDetect                   LDAPResultCode = 54
	LDAPResultNamingViolation              LDAPResultCode = 64
	LDAPResultObjectClassViolation         LDAPResultCode = 65
	LDAPResultNotAllowedOnNonLeaf          LDAPResultCode = 66
	LDAPResultNotAllowedOnRDN              LDAPResultCode = 67
	LDAPResultEntryAlreadyExists           LDAPResultCode = 68
	LDAPResultObjectClassModsProhibited    LDAPResultCode = 69
	LDAPResultAffectsMultipleDSAs          LDAPResultCode = 71
	LDAPResultOther                        LDAPResultCode = 80
	LDAPResultCanceled                     LDAPResultCode = 118

	// Reported by executors, never sent by a server.
	ErrorNetwork           LDAPResultCode = 200
	ErrorUnexpectedMessage LDAPResultCode = 204
)

var LDAPResultCodeMap = map[LDAPResultCode]string{
	LDAPResultSuccess:                      "Success",
	LDAPResultOperationsError:              "Operations Error",
	LDAPResultProtocolError:                "Protocol Error",
	LDAPResultTimeLimitExceeded:            "Time Limit Exceeded",
	LDAPResultSizeLimitExceeded:            "Size Limit Exceeded",
	LDAPResultCompareFalse:                 "Compare False",
	LDAPResultCompareTrue:                  "Compare True",
	LDAPResultAuthMethodNotSupported:       "Auth Method Not Supported",
	LDAPResultStrongAuthRequired:           "Strong Auth Required",
	LDAPResultReferral:                     "Referral",
	LDAPResultAdminLimitExceeded:           "Admin Limit Exceeded",
	LDAPResultUnavailableCriticalExtension: "Unavailable Critical Extension",
	LDAPResultConfidentialityRequired:      "Confidentiality Required",
	LDAPResultSaslBindInProgress:           "Sasl Bind In Progress",
	LDAPResultNoSuchAttribute:              "No Such Attribute",
	LDAPResultUndefinedAttributeType:       "Undefined Attribute Type",
	LDAPResultInappropriateMatching:        "Inappropriate Matching",
	LDAPResultConstraintViolation:          "Constraint Violation",
	LDAPResultAttributeOrValueExists:       "Attribute Or Value Exists",
	LDAPResultInvalidAttributeSyntax:       "Invalid Attribute Syntax",
	LDAPResultNoSuchObject:                 "No Such Object",
	LDAPResultAliasProblem:                 "Alias Problem",
	LDAPResultInvalidDNSyntax:              "Invalid DN Syntax",
	LDAPResultAliasDereferencingProblem:    "Alias Dereferencing Problem",
	LDAPResultInappropriateAuthentication:  "Inappropriate Authentication",
	LDAPResultInvalidCredentials:           "Invalid Credentials",
	LDAPResultInsufficientAccessRights:     "Insufficient Access Rights",
	LDAPResultBusy:                         "Busy",
	LDAPResultUnavailable:                  "Unavailable",
	LDAPResultUnwillingToPerform:           "Unwilling To Perform",
	LDAPResultLoopDetect:                   "Loop Detect",
	LDAPResultNamingViolation:              "Naming Violation",
	LDAPResultObjectClassViolation:         "Object Class Violation",
	LDAPResultNotAllowedOnNonLeaf:          "Not Allowed On Non Leaf",
	LDAPResultNotAllowedOnRDN:              "Not Allowed On RDN",
	LDAPResultEntryAlreadyExists:           "Entry Already Exists",
	LDAPResultObjectClassModsProhibited:    "Object Class Mods Prohibited",
	LDAPResultAffectsMultipleDSAs:          "Affects Multiple DSAs",
	LDAPResultOther:                        "Other",
	LDAPResultCanceled:                     "Canceled",

	ErrorNetwork:           "Network Error",
	ErrorUnexpectedMessage: "Unexpected Message",
}

func (code LDAPResultCode) String() string {
	if name, ok := LDAPResultCodeMap[code]; ok {
		return name
	}
	return fmt.Sprintf("LDAPResultCode(%d)", uint16(code))
}

// Error is a failure reported by the server or the executor.
type Error struct {
	Err        error
	ResultCode LDAPResultCode
	MatchedDN  string
}

func (e *Error) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("LDAP Result Code %d %q", e.ResultCode, e.ResultCode.String())
	}
	return fmt.Sprintf("LDAP Result Code %d %q: %s", e.ResultCode, e.ResultCode.String(), e.Err.Error())
}

func (e *Error) Unwrap() error {
	return e.Err
}

func NewError(resultCode LDAPResultCode, err error) error {
	return &Error{ResultCode: resultCode, Err: err}
}

// IsErrorWithCode reports whether err is an *Error carrying code.
func IsErrorWithCode(err error, code LDAPResultCode) bool {
	var e *Error
	if !errors.As(err, &e) {
		return false
	}
	return e.ResultCode == code
}
