// Package debug provides optional file-based debug logging.
//
// When the LAZYGRID_DEBUG environment variable is set to a file path, grid
// debug records are appended to that file as JSON lines. Otherwise, logging
// is a no-op.
package debug
