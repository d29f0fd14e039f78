package input

import (
	"io"
	"unicode/utf8"

	"GoLex/automaton"
)

// Decoding selects how buffered bytes become automaton input symbols.
type Decoding int

const (
	// ScalarDecoding decodes UTF-8 sequences into Unicode scalar values.
	ScalarDecoding Decoding = iota

	// ByteDecoding passes each raw byte through as one symbol.
	ByteDecoding
)

// Decoder converts buffered bytes into the automaton's input alphabet.
// Next returns io.EOF only when zero bytes could be obtained for the next
// symbol; a truncated-but-nonzero sequence is decoded and may then fail
// with a *DecodeError.
type Decoder interface {
	Next() (automaton.Symbol, error)
}

// NewDecoder creates the decoder for the given strategy over buf.
func NewDecoder(buf *Buffer, mode Decoding) Decoder {
	if mode == ByteDecoding {
		return &ByteDecoder{buf: buf}
	}
	return &ScalarDecoder{buf: buf}
}

// ByteDecoder consumes exactly one byte per symbol, with no multi-byte
// awareness. Suits tables generated over the byte alphabet.
type ByteDecoder struct {
	buf *Buffer
}

// NewByteDecoder creates a raw-byte decoder over buf.
func NewByteDecoder(buf *Buffer) *ByteDecoder {
	return &ByteDecoder{buf: buf}
}

func (d *ByteDecoder) Next() (automaton.Symbol, error) {
	c, err := d.buf.Next()
	if err != nil {
		return 0, err
	}
	return automaton.Symbol(c), nil
}

// seqLen maps a UTF-8 lead byte's top five bits to its sequence length.
// Continuation bytes and 0xF8..0xFF are not valid lead bytes; they map to
// length 1 and are rejected by validation.
var seqLen = [32]int{
	1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, // 0xxxxxxx
	1, 1, 1, 1, 1, 1, 1, 1, // 10xxxxxx
	2, 2, 2, 2, // 110xxxxx
	3, 3, // 1110xxxx
	4, // 11110xxx
	1, // 11111xxx
}

// ScalarDecoder decodes UTF-8 sequences into Unicode scalar values.
// The lead byte determines how many bytes to consume; if end of stream
// truncates the sequence, whatever was collected is validated on its own.
type ScalarDecoder struct {
	buf *Buffer
	seq [utf8.UTFMax]byte
}

// NewScalarDecoder creates a UTF-8 decoder over buf.
func NewScalarDecoder(buf *Buffer) *ScalarDecoder {
	return &ScalarDecoder{buf: buf}
}

func (d *ScalarDecoder) Next() (automaton.Symbol, error) {
	c, err := d.buf.Next()
	if err != nil {
		return 0, err
	}

	n := seqLen[c>>3]
	seq := d.seq[:1]
	seq[0] = c

	for len(seq) < n {
		c, err = d.buf.Next()
		if err == io.EOF {
			break // truncated sequence: validate what we have
		}
		if err != nil {
			return 0, err
		}
		seq = append(seq, c)
	}

	r, size := utf8.DecodeRune(seq)
	if size != len(seq) || (r == utf8.RuneError && size == 1) {
		return 0, &DecodeError{Offset: d.buf.Pos() - len(seq)}
	}
	return automaton.Symbol(r), nil
}
