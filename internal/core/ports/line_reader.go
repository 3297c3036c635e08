package ports

// LineReader supplies input lines. ReadLine returns io.EOF when input ends.
type LineReader interface {
	ReadLine() (string, error)
	Close() error
}
