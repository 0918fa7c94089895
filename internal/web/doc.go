// Package web implements the Parky web client: server-rendered HTML pages
// for browsing and editing parks and trails.
//
// The web client never touches the database. Every read and write goes
// through the remote repositories in package webclient, so the API is the
// single owner of the data.
package web
