package translate

import "fmt"

// FailKind classifies a per-chunk translation failure.
type FailKind int

const (
	// FailNetwork: the request or stream could not be established.
	FailNetwork FailKind = iota
	// FailStream: the stream broke while events were being consumed.
	FailStream
	// FailDecode: the accumulated response could not be decoded into a
	// dataset matching the request.
	FailDecode
)

func (k FailKind) String() string {
	switch k {
	case FailNetwork:
		return "network"
	case FailStream:
		return "stream"
	case FailDecode:
		return "decode"
	default:
		return "unknown"
	}
}

// ChunkError is a failed translation outcome for one chunk. It is returned,
// never panicked: the orchestrator decides what to do with it.
type ChunkError struct {
	// Chunk is the 1-based chunk index; Total the chunk count.
	Chunk, Total int
	Kind         FailKind
	Err          error
}

func (e *ChunkError) Error() string {
	return fmt.Sprintf("chunk %d/%d: %s error: %v", e.Chunk, e.Total, e.Kind, e.Err)
}

func (e *ChunkError) Unwrap() error { return e.Err }

// InputError reports a source file that could not be used at all: missing,
// empty, unreadable, or not a JSON object. It fails the file before any
// chunking happens.
type InputError struct {
	Path string
	Err  error
}

func (e *InputError) Error() string {
	return fmt.Sprintf("input %s: %v", e.Path, e.Err)
}

func (e *InputError) Unwrap() error { return e.Err }

// DecodeError reports that a provider response could not be parsed as the
// expected structured payload. Raw carries the (truncated) response text
// for diagnostics.
type DecodeError struct {
	Raw string
	Err error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("decoding response: %v (raw: %s)", e.Err, e.Raw)
}

func (e *DecodeError) Unwrap() error { return e.Err }
