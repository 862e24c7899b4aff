package collector

// Deduplicate merges two candidate lists into one, keyed by
// (company_name, url). On a key collision the record with strictly more
// populated fields wins; ties keep the first-seen record. Field-level merging
// across duplicates is not performed, one whole record is kept.
//
// Output preserves first-insertion order so repeated runs over the same input
// are deterministic.
func Deduplicate(listA, listB []FundingEvent) []FundingEvent {
	merged := make(map[string]FundingEvent, len(listA)+len(listB))
	order := make([]string, 0, len(listA)+len(listB))

	insert := func(event FundingEvent) {
		key := event.Key()
		existing, ok := merged[key]
		if !ok {
			merged[key] = event
			order = append(order, key)
			return
		}
		if event.PopulatedFields() > existing.PopulatedFields() {
			merged[key] = event
		}
	}

	for _, event := range listA {
		insert(event)
	}
	for _, event := range listB {
		insert(event)
	}

	result := make([]FundingEvent, 0, len(order))
	for _, key := range order {
		result = append(result, merged[key])
	}
	return result
}
