package lsag

import (
	"fmt"

	"git.gammaspectra.live/P2Pool/lsag/crypto/curve25519"
	"git.gammaspectra.live/P2Pool/lsag/utils"
)

// BatchEntry One independent verification
type BatchEntry[T curve25519.PointOperations] struct {
	Message   []byte
	Signature *Signature[T]
	Ring      Ring[T]
}

// VerifyBatch Verifies every entry concurrently, spread over Options.Routines goroutines.
// results[i] holds the outcome of entries[i]. The first shape error aborts the batch.
func (s *Scheme[T]) VerifyBatch(entries []BatchEntry[T]) (results []bool, err error) {
	results = make([]bool, len(entries))

	err = utils.SplitWork(s.options.Routines, uint64(len(entries)), func(workIndex uint64, _ int) error {
		entry := &entries[workIndex]
		ok, err := s.Verify(entry.Message, entry.Signature, entry.Ring)
		if err != nil {
			return fmt.Errorf("entry %d: %w", workIndex, err)
		}
		results[workIndex] = ok
		return nil
	})
	if err != nil {
		return nil, err
	}
	return results, nil
}
