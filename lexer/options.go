package lexer

import (
	"log/slog"

	"GoLex/input"
)

// Options configures a Lexer.
type Options struct {
	// Decoding selects the input strategy: Unicode scalars (default) or
	// raw bytes. It must match the alphabet the transition table was
	// generated over.
	Decoding input.Decoding

	// ChunkSize is the refill request size in bytes.
	// If <= 0, input.DefaultChunkSize is used.
	ChunkSize int

	// Logger for fatal lexing events. If nil, slog.Default() is used.
	Logger *slog.Logger
}

// DefaultOptions returns Options with sensible defaults.
func DefaultOptions() Options {
	return Options{
		Decoding:  input.ScalarDecoding,
		ChunkSize: input.DefaultChunkSize,
	}
}
