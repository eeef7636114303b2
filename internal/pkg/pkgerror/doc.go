// Package pkgerror defines the error classification used by the ulidgen tool.
//
// It keeps error handling consistent by:
//   - Providing sentinel errors that can be checked with errors.Is.
//   - Providing a structured Error type that carries a message, type, and code,
//     which the command layer maps to process exit codes.
//   - Translating errors returned by the ulid packages into that structure.
package pkgerror
