// Package utils provides small shared helpers for the CLI layer:
// hidden passphrase prompts (with a /dev/tty fallback for piped stdin),
// stdin reading, and byte scrubbing.
package utils
