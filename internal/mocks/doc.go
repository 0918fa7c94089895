// Package mocks provides test doubles for the store interfaces.
//
// MockParkStore and MockTrailStore keep entities in memory and behave like
// the real repositories (name ordering, case-insensitive name checks,
// generated ids). Any method can be overridden through its Fn field, and
// every call is recorded for verification.
package mocks
