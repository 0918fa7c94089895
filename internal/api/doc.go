// Package api handles incoming HTTP requests for parks and trails: request
// decoding and validation, existence checks, status-code selection and
// response formatting. Persistence is delegated to the store interfaces.
package api
