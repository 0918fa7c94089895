// Package dto defines the JSON transfer shapes of the API and the explicit
// conversions between them and the domain entities.
//
// Each entity has a read shape (Park, Trail) returned by the API and used by
// the web client, a create shape and an update shape. Conversions are written
// out field by field.
package dto
