package store

import "errors"

var (
	// ErrNotFound reports that the requested record does not exist.
	ErrNotFound = errors.New("record not found")

	// ErrVaultRecordExists reports a second CreateVaultRecord for an account
	// that already has one. At most one master vault record exists per account.
	ErrVaultRecordExists = errors.New("vault record already exists for account")

	ErrBuildingQuery  = errors.New("error building query")
	ErrExecutingQuery = errors.New("error executing query")
	ErrScanningRow    = errors.New("error scanning row")
	ErrScanningRows   = errors.New("error during rows iteration")
)
