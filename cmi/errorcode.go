package cmi

import (
	"strconv"
	"strings"
)

// ErrorCode is a host runtime error code as reported by GetLastError.
type ErrorCode int

const (
	// NoError is reported by the host when the previous call succeeded.
	NoError ErrorCode = 0

	// Unparseable marks a last-error response that did not start with an
	// integer. It is never produced by a host and is never equal to NoError.
	Unparseable ErrorCode = -1
)

// Codes shared by both versions.
const (
	CodeGeneralException ErrorCode = 101
	CodeGeneralArgument  ErrorCode = 201
)

// 2004 codes.
const (
	CodeGeneralInitializationFailure ErrorCode = 102
	CodeAlreadyInitialized           ErrorCode = 103
	CodeContentInstanceTerminated    ErrorCode = 104
	CodeGeneralTerminationFailure    ErrorCode = 111
	CodeTerminationBeforeInit        ErrorCode = 112
	CodeTerminationAfterTermination  ErrorCode = 113
	CodeRetrieveBeforeInit           ErrorCode = 122
	CodeRetrieveAfterTermination     ErrorCode = 123
	CodeStoreBeforeInit              ErrorCode = 132
	CodeStoreAfterTermination        ErrorCode = 133
	CodeCommitBeforeInit             ErrorCode = 142
	CodeCommitAfterTermination       ErrorCode = 143
	CodeGeneralGetFailure            ErrorCode = 301
	CodeGeneralSetFailure            ErrorCode = 351
	CodeGeneralCommitFailure         ErrorCode = 391
	CodeUndefinedElement             ErrorCode = 401
	CodeUnimplementedElement         ErrorCode = 402
	CodeValueNotInitialized          ErrorCode = 403
	CodeElementReadOnly              ErrorCode = 404
	CodeElementWriteOnly             ErrorCode = 405
	CodeTypeMismatch                 ErrorCode = 406
	CodeValueOutOfRange              ErrorCode = 407
	CodeDependencyNotEstablished     ErrorCode = 408
)

var names2004 = map[ErrorCode]string{
	NoError:                          "No Error",
	CodeGeneralException:             "General Exception",
	CodeGeneralInitializationFailure: "General Initialization Failure",
	CodeAlreadyInitialized:           "Already Initialized",
	CodeContentInstanceTerminated:    "Content Instance Terminated",
	CodeGeneralTerminationFailure:    "General Termination Failure",
	CodeTerminationBeforeInit:        "Termination Before Initialization",
	CodeTerminationAfterTermination:  "Termination After Termination",
	CodeRetrieveBeforeInit:           "Retrieve Data Before Initialization",
	CodeRetrieveAfterTermination:     "Retrieve Data After Termination",
	CodeStoreBeforeInit:              "Store Data Before Initialization",
	CodeStoreAfterTermination:        "Store Data After Termination",
	CodeCommitBeforeInit:             "Commit Before Initialization",
	CodeCommitAfterTermination:       "Commit After Termination",
	CodeGeneralArgument:              "General Argument Error",
	CodeGeneralGetFailure:            "General Get Failure",
	CodeGeneralSetFailure:            "General Set Failure",
	CodeGeneralCommitFailure:         "General Commit Failure",
	CodeUndefinedElement:             "Undefined Data Model Element",
	CodeUnimplementedElement:         "Unimplemented Data Model Element",
	CodeValueNotInitialized:          "Data Model Element Value Not Initialized",
	CodeElementReadOnly:              "Data Model Element Is Read Only",
	CodeElementWriteOnly:             "Data Model Element Is Write Only",
	CodeTypeMismatch:                 "Data Model Element Type Mismatch",
	CodeValueOutOfRange:              "Data Model Element Value Out Of Range",
	CodeDependencyNotEstablished:     "Data Model Dependency Not Established",
}

var names12 = map[ErrorCode]string{
	NoError:              "No error",
	CodeGeneralException: "General Exception",
	CodeGeneralArgument:  "Invalid argument error",
	202:                  "Element cannot have children",
	203:                  "Element not an array. Cannot have count",
	301:                  "Not initialized",
	401:                  "Not implemented error",
	402:                  "Invalid set value, element is a keyword",
	403:                  "Element is read only",
	404:                  "Element is write only",
	405:                  "Incorrect Data Type",
}

// Name returns the standard name of c under version v, or "" when the code
// is not part of that version's taxonomy.
func (c ErrorCode) Name(v Version) string {
	if c == Unparseable {
		return "Unparseable Error Code"
	}
	switch v {
	case Version12:
		return names12[c]
	case Version2004:
		return names2004[c]
	}
	return ""
}

func (c ErrorCode) String() string { return strconv.Itoa(int(c)) }

// ParseErrorCode reads the leading base-10 integer of s, ignoring
// surrounding whitespace and any trailing text, the way browser hosts
// format codes. Input without a leading integer yields Unparseable.
func ParseErrorCode(s string) ErrorCode {
	s = strings.TrimSpace(s)
	end := 0
	if end < len(s) && (s[end] == '+' || s[end] == '-') {
		end++
	}
	digits := end
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == digits {
		return Unparseable
	}
	n, err := strconv.Atoi(s[:end])
	if err != nil {
		return Unparseable
	}
	return ErrorCode(n)
}
