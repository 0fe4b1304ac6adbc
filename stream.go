package amqpcodec

import "io"

// Stream is the byte stream a codec is bound to. Reads must block until the
// requested bytes are available or the stream is exhausted.
type Stream interface {
	io.Reader
	io.Writer
}

// Flusher is implemented by streams that buffer writes, such as *bufio.Writer
// or a *bufio.ReadWriter.
type Flusher interface {
	Flush() error
}
