package lsag

// DefaultMaxRingSize Rings larger than this are refused unless Options.MaxRingSize says otherwise
const DefaultMaxRingSize = 1024

type Options struct {
	// MaxRingSize Largest accepted ring. 0 disables the limit
	MaxRingSize int

	// Routines Goroutines used by Scheme.VerifyBatch. <= 0 derives it from the CPU count
	Routines int
}

func DefaultOptions() Options {
	return Options{
		MaxRingSize: DefaultMaxRingSize,
	}
}
