package controller

import "errors"

var (
	ErrorMissingDatabaseConnection = errors.New("missing_database_connection")
	ErrorMissingDatabaseName       = errors.New("missing_database_name")
	ErrorMissingJwtSecret          = errors.New("missing_jwt_secret")
	ErrorMissingServiceLog         = errors.New("missing_service_log")
)
