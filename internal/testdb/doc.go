// Package testdb provides database setup for tests.
//
// By default every call to Open creates a fresh SQLite database in the
// test's temporary directory and applies the embedded migrations, so tests
// need no external services and can run in parallel. Setting
// PARKY_TEST_DB_URL points the same helpers at a PostgreSQL database
// instead; that database is shared, so Open empties the tables before and
// after each test and such tests must not run in parallel.
//
// Basic usage:
//
//	func TestMyFeature(t *testing.T) {
//	    db := testdb.Open(t)
//	    gw := database.NewGateway(db, nil)
//	    parks := database.NewGormParkStore(gw, nil)
//	    ...
//	}
//
// WithTx runs a function inside a transaction that is always rolled back,
// for tests that only need to observe their own writes.
package testdb
