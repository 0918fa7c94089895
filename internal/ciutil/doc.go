// Package ciutil locates the repository on disk for tooling that writes
// source files, such as the migrate create command. It honors an explicit
// PARKY_PROJECT_ROOT, the workspace variables of common CI providers, and
// otherwise walks up from the working directory looking for go.mod.
package ciutil
