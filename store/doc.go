// SPDX-License-Identifier: MIT

// Package store persists named numeric datasets in SQLite files.
//
// Each file holds one table of datasets addressed by (group, name); a
// dataset is a shape plus a flat little-endian float64 payload (complex
// values are stored as interleaved real/imaginary pairs). The measurement
// layout follows the usual one-file-per-configuration convention:
//
//	<stem>.<cfg>.db   per-configuration propagators and vertices (group "data")
//	<dir>/<name>.db   one analysis result per file (group "results")
//
// The driver is the pure-Go modernc.org/sqlite, so no cgo is required.
package store
