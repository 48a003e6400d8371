package ldap

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidationErrorMessages(t *testing.T) {
	err := &InvalidEnumError{Value: 5, Enum: "Scope"}
	assert.Equal(t, "ldap: value 5 is invalid for enum type Scope", err.Error())

	assert.Equal(t, "ldap: invalid argument: SizeLimit could not be a negative number",
		(&ArgumentError{Param: "SizeLimit", Reason: "could not be a negative number", Err: ErrInvalidArgument}).Error())
	assert.Equal(t, "ldap: time span overflow: TimeLimit",
		(&ArgumentError{Param: "TimeLimit", Err: ErrTimeLimitOverflow}).Error())
}

func TestError(t *testing.T) {
	err := NewError(LDAPResultNoSuchObject, errors.New("no entry"))
	assert.Equal(t, `LDAP Result Code 32 "No Such Object": no entry`, err.Error())
	assert.True(t, IsErrorWithCode(err, LDAPResultNoSuchObject))
	assert.False(t, IsErrorWithCode(err, LDAPResultBusy))
	assert.False(t, IsErrorWithCode(errors.New("plain"), LDAPResultNoSuchObject))

	assert.Equal(t, "LDAPResultCode(999)", LDAPResultCode(999).String())
}

func TestResultErr(t *testing.T) {
	for _, code := range []LDAPResultCode{LDAPResultSuccess, LDAPResultCompareTrue, LDAPResultCompareFalse} {
		assert.NoError(t, (&Result{Code: code}).Err())
	}

	err := (&Result{Code: LDAPResultEntryAlreadyExists, MatchedDN: "dc=example,dc=com", Message: "exists"}).Err()
	var ldapErr *Error
	assert.ErrorAs(t, err, &ldapErr)
	assert.Equal(t, LDAPResultEntryAlreadyExists, ldapErr.ResultCode)
	assert.Equal(t, "dc=example,dc=com", ldapErr.MatchedDN)
	assert.EqualError(t, ldapErr.Err, "exists")
}
