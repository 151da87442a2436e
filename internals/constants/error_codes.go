package constants

// Numeric codes carried in the "code" field of every error body.
const (
	// Authentication
	CodeAccessDenied       = 1001
	CodeInvalidToken       = 1002
	CodeWrongPassword      = 1003
	CodeUserNotFound       = 1004
	CodeMissingCredentials = 1005

	// Validation / conflict
	CodeInvalidPassword = 2001
	CodeInvalidEmail    = 2002
	CodeEmailExists     = 2003
	CodeCodeExists      = 2004
	CodeMissingData     = 2005
	CodeMissingFields   = CodeMissingData
	CodeNotEvaluator    = 2006
	CodeDuplicateRecord = 2007

	CodeServerError = 5001
)
