// Package webclient implements the remote side of the repository pattern:
// a generic Repository[T] that reads and writes API resources over HTTP.
//
// Status codes are the contract. Reads yield nil when the API does not
// answer 200; Create reports success on 201, Update and Delete on 204.
// Transport failures are returned as errors and are never retried.
package webclient
