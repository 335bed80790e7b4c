package store

import "errors"

// Sentinel errors returned by the vault reader to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrIdentityNotFound is returned when the vault's Identity table is
	// empty. Without the identity row no record key can be derived, so the
	// session aborts.
	ErrIdentityNotFound = errors.New("identity row not found")

	// ErrMultipleIdentities is returned when the Identity table holds more
	// than one row. The format defines exactly one; anything else means a
	// corrupt or tampered vault.
	ErrMultipleIdentities = errors.New("multiple identity rows found")

	// ErrWrongMasterPassword is returned when the container key check
	// fails after applying PRAGMA key, i.e. SQLCipher cannot read the
	// database pages with the supplied password.
	ErrWrongMasterPassword = errors.New("cannot unlock vault: wrong master password or not an Enpass 5 database")
)

// Low-level database operation errors wrapped by reader methods when a
// SQL-level operation fails before any domain logic can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT against the
	// vault fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrScanningRow is returned when scanning column values from a result
	// row fails.
	ErrScanningRow = errors.New("failed to scan vault row")
)
