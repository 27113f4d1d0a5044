package utils

import (
	"io"
)

type ReaderAndByteReader interface {
	io.Reader
	io.ByteReader
}

// Serializable Fixed-width encodings whose element count is known by the reader, like ring signatures bound to a ring.
type Serializable interface {
	AppendBinary(preAllocatedBuf []byte) (data []byte, err error)
	FromReader(reader ReaderAndByteReader, count int) (err error)
	BufferLength() (n int)
}

// ReadFullNoEscape Reads exactly len(buf) bytes, failing with io.ErrUnexpectedEOF on short input
func ReadFullNoEscape(r io.Reader, buf []byte) (n int, err error) {
	return io.ReadFull(r, buf)
}
