package recio

const (
	// ScannerInitialBufferSize is the scanner's starting token buffer.
	ScannerInitialBufferSize = 64 * 1024

	// ScannerMaxTokenSize caps a single token. The longest valid token is a
	// 20-digit uint64, so anything near this size is malformed anyway.
	ScannerMaxTokenSize = 1024 * 1024

	// WriterBufferSize is the output buffer size.
	WriterBufferSize = 256 * 1024

	// FieldSeparator separates key and value on an output line.
	FieldSeparator = '\t'

	// LineTerminator ends every output line.
	LineTerminator = '\n'
)
