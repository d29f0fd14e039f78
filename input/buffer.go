package input

import (
	"fmt"
	"io"
)

// Buffer limits.
const (
	DefaultChunkSize = 4096

	// maxEmptyReads bounds consecutive (0, nil) reads before the buffer
	// gives up with io.ErrNoProgress, as bufio does.
	maxEmptyReads = 100
)

// Buffer owns a growable byte window over a reader plus a read cursor.
// The window is append-only and never compacted for the life of the buffer,
// so byte offsets are stable indices: a lexeme is a sub-slice of the window,
// extracted without copying.
//
// A Buffer is exclusively owned by one lexer instance; nothing about it is
// safe for concurrent use.
type Buffer struct {
	src   io.Reader
	buf   []byte
	pos   int
	chunk int

	// err is sticky: io.EOF once the source is exhausted, or the first
	// read failure. Buffered bytes before the error are still served.
	err error
}

// NewBuffer creates a buffer reading from src in chunkSize-byte requests.
// chunkSize <= 0 selects DefaultChunkSize.
func NewBuffer(src io.Reader, chunkSize int) *Buffer {
	if chunkSize <= 0 {
		chunkSize = DefaultChunkSize
	}
	return &Buffer{src: src, chunk: chunkSize}
}

// Next returns the byte at the cursor and advances it, refilling from the
// source when the buffered window is exhausted. Returns io.EOF at clean end
// of stream, or the wrapped read failure.
func (b *Buffer) Next() (byte, error) {
	if b.pos == len(b.buf) {
		if err := b.fill(); err != nil {
			return 0, err
		}
	}
	c := b.buf[b.pos]
	b.pos++
	return c, nil
}

// fill issues one read request for up to one chunk and appends whatever
// came back. Short reads are accepted without retrying to fill the request;
// only a zero-byte read with no error is retried (bounded), since it is
// neither data nor EOF.
func (b *Buffer) fill() error {
	if b.err != nil {
		return b.err
	}

	for i := 0; i < maxEmptyReads; i++ {
		start := len(b.buf)
		b.buf = append(b.buf, make([]byte, b.chunk)...)
		n, err := b.src.Read(b.buf[start : start+b.chunk])
		b.buf = b.buf[:start+n]

		if err != nil {
			if err == io.EOF {
				b.err = io.EOF
			} else {
				b.err = fmt.Errorf("read input: %w", err)
			}
			// Bytes delivered alongside the error are served first;
			// the error resurfaces on the next refill.
			if n > 0 {
				return nil
			}
			return b.err
		}
		if n > 0 {
			return nil
		}
	}

	b.err = io.ErrNoProgress
	return b.err
}

// Pos returns the cursor's byte offset into the window.
func (b *Buffer) Pos() int {
	return b.pos
}

// SetPos moves the cursor to a previously observed offset. Used to backtrack
// to the longest accepting boundary; pos must satisfy 0 <= pos <= Len().
func (b *Buffer) SetPos(pos int) {
	b.pos = pos
}

// Window returns the bytes in [start, end) as a view into the buffer.
// The slice stays valid for the life of the buffer; callers that outlive it
// must copy.
func (b *Buffer) Window(start, end int) []byte {
	return b.buf[start:end]
}

// Len returns the number of bytes buffered so far.
func (b *Buffer) Len() int {
	return len(b.buf)
}
