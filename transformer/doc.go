// Package transformer converts ULIDs to and from the values a database column
// stores.
//
// Three representations are provided, each as a process-wide singleton:
//   - String: the 26-character canonical text, for CHAR(26)/TEXT columns.
//   - Bytes: the 16-byte big-endian form, for BINARY(16)/BLOB columns.
//   - PassThrough: the ULID value itself, for drivers that accept it directly.
//
// Column adapts any of them to database/sql so a ULID can be passed as a query
// argument or used as a Scan destination.
package transformer
