// Package store defines interfaces for data persistence operations.
// These interfaces abstract the underlying data storage mechanism from
// the API handlers, allowing request handling to remain independent of
// the database engine behind the ORM.
//
// Mutations report success as a boolean; the implementation logs the
// underlying cause. Reads return errors for infrastructure failures and a
// nil entity with no error when the requested row does not exist.
package store
