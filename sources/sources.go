// Package sources reads external annotation streams (RTTM spans, ASR chunk
// dumps, per-segment transcription tables) into normalized interval tables.
package sources

import "errors"

// ErrMalformedSource marks a stream that fails shape or required-column
// validation. It aborts compilation of the document the stream belongs to.
var ErrMalformedSource = errors.New("malformed interval source")
