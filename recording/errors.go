package recording

import "errors"

var (
	// ErrUnknownBackend is returned by NewBackend for unregistered names.
	ErrUnknownBackend = errors.New("recording: unknown backend")

	// ErrNotWritable is returned by WriteTo helpers when a backend cannot
	// encode its output to a writer.
	ErrNotWritable = errors.New("recording: backend does not implement WriterBackend")
)
