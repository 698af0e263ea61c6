// Package audit keeps a local JSON Lines journal of pixelock operations.
//
// Each encode or decode appends one entry with a random ID, a UTC
// timestamp, the operation name, sizes and dimensions, and an outcome.
// The journal is purely informational: writes are best-effort and an
// operation never fails because its journal entry could not be recorded.
//
// Failed decryptions are journaled with the "crypto" category and nothing
// more specific. The journal deliberately cannot answer whether a failure
// was a wrong passphrase or a damaged image.
package audit
