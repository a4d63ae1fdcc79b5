// Package debug provides optional file-based debug logging.
//
// When the SHIMMER_DEBUG environment variable is set to a file path, records
// are appended to that file through a log/slog text handler. Otherwise,
// logging is a no-op, since stdout belongs to the terminal UI.
package debug
