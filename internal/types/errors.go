package types

import "errors"

var (
	ErrorAccountSuspended        = errors.New("account_suspended")
	ErrorAuthRequired            = errors.New("auth_required")
	ErrorEmailExists             = errors.New("email_exists")
	ErrorGeneric                 = errors.New("generic_error")
	ErrorHealthcheckFailed       = errors.New("healthcheck_failed")
	ErrorInvalidCredentials      = errors.New("invalid_credentials")
	ErrorInvalidEndpoint         = errors.New("invalid_endpoint")
	ErrorInvalidInput            = errors.New("invalid_input")
	ErrorInsufficientPermissions = errors.New("insufficient_permissions")
	ErrorNotFound                = errors.New("not_found")
	ErrorOrgExists               = errors.New("org_exists")

	ErrorClientMarshalInput              = errors.New("__client_marshal_input")
	ErrorClientRequestCreation           = errors.New("__client_request_creation")
	ErrorClientRequestExecution          = errors.New("__client_request_execution")
	ErrorClientResponseNotFromController = errors.New("__client_response_not_from_controller")
	ErrorClientResponseReading           = errors.New("__client_response_reading")
	ErrorClientUnmarshalResponse         = errors.New("__client_unmarshal_response")
	ErrorClientMarshalResponseData       = errors.New("__client_marshal_response_data")
	ErrorClientUnmarshalOutput           = errors.New("__client_unmarshal_output")
	ErrorClientUnsuccessfulResponse      = errors.New("__client_unsuccessful_response")

	// ErrorJwtTokenExpired indicates the token has expired
	ErrorJwtTokenExpired = errors.New("jwt_token_expired")
	// ErrorJwtTokenSignature indicates token signature validation failed
	ErrorJwtTokenSignature = errors.New("jwt_token_signature")
	// ErrorJwtClaimsInvalid indicates that the claim data couldn't be parsed
	ErrorJwtClaimsInvalid = errors.New("jwt_claims_invalid")

	ErrorUnknown = errors.New("unknown_error")

	ErrorOutputNil        = errors.New("__output_nil")
	ErrorOutputNotPointer = errors.New("__output_not_pointer")

	ErrorConnectionRefused  = errors.New("__connection_refused")
	ErrorConnectionTimedOut = errors.New("__connection_timed_out")
)
