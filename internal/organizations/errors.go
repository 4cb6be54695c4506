package organizations

import "errors"

var (
	// ErrorInvalidInput is returned when input fails validation before
	// any store access happens
	ErrorInvalidInput = errors.New("invalid_input")

	// ErrorOrgExists is returned when an organization with the same
	// normalized name already exists
	ErrorOrgExists = errors.New("org_exists")

	// ErrorEmailExists is returned when an admin with the same email
	// address already exists
	ErrorEmailExists = errors.New("email_exists")

	// ErrorOrgNotFound is returned when the named organization does not
	// exist in the catalog
	ErrorOrgNotFound = errors.New("org_not_found")

	// ErrorNotAuthorized is returned when the caller's organization id
	// does not match the target organization
	ErrorNotAuthorized = errors.New("not_authorized")

	// ErrorAccountSuspended is returned on login when the admin account
	// has been deactivated
	ErrorAccountSuspended = errors.New("account_suspended")

	// ErrorInvalidCredentials is returned on login when either the email
	// is unknown or the password doesn't verify, the two cases are kept
	// indistinguishable to avoid user enumeration
	ErrorInvalidCredentials = errors.New("invalid_credentials")
)

var (
	// ErrorDocumentNotFound is returned by DocumentStore implementations
	// when a FindOne matches nothing
	ErrorDocumentNotFound = errors.New("document_not_found")

	// ErrorDuplicateEntry is returned by DocumentStore implementations
	// when an insert violates a unique index
	ErrorDuplicateEntry = errors.New("duplicate_entry")
)
