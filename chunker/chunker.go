// Package chunker partitions a localization dataset into provider-safe
// request units bounded by a byte budget.
package chunker

import "github.com/locflow/locflow/store"

// DefaultBudget is the default maximum serialized size of one chunk.
// 4 MiB keeps requests safely under the provider's 8 MiB ceiling.
const DefaultBudget = 4 * 1024 * 1024

// Split partitions a store into an ordered sequence of chunks whose
// serialized size stays within budget. Entries are visited in store order
// and never split; an entry whose standalone size already exceeds the
// budget is dropped and reported through onSkip.
//
// The disjoint union of the returned chunks (over non-skipped keys) equals
// the input. A store that fits the budget whole yields exactly one chunk.
func Split(s *store.Store, budget int, onSkip func(key string, size int)) []*store.Store {
	if budget <= 0 {
		budget = DefaultBudget
	}

	var chunks []*store.Store
	current := store.New()
	currentSize := 0

	for _, key := range s.Keys() {
		value, _ := s.Get(key)
		entrySize := store.EntrySize(key, value)

		if entrySize > budget {
			if onSkip != nil {
				onSkip(key, entrySize)
			}
			continue
		}

		if currentSize+entrySize > budget && current.Len() > 0 {
			chunks = append(chunks, current)
			current = store.New()
			currentSize = 0
		}

		current.Set(key, value)
		currentSize += entrySize
	}

	if current.Len() > 0 {
		chunks = append(chunks, current)
	}

	return chunks
}
