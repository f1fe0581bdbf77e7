package animdata

// FindDuplicateCofNames - Returns every repeat occurrence of a COF name in records, in
// encounter order. A name stored n times contributes n-1 entries. Duplicates are legal
// in the binary form but only the first record in a bucket is ever found by the game's
// lookup, so callers typically surface these as warnings. The input is not modified.
func FindDuplicateCofNames(records []Record) (duplicates []string) {
	seen := make(map[string]bool, len(records))
	for _, record := range records {
		if seen[record.cofName] {
			duplicates = append(duplicates, record.cofName)
		} else {
			seen[record.cofName] = true
		}
	}

	return
}

// FindOutOfBoundsTriggers - Returns the trigger frames of record that are same or
// greater than its frames per direction, ascending. Playback never reaches such frames,
// so the triggers can never fire. This is a diagnostic, not a validity check; the codec
// accepts such records in both directions.
func FindOutOfBoundsTriggers(record Record) (frames []int) {
	for _, trigger := range record.triggers.triggers {
		if uint32(trigger.frame) >= record.framesPerDirection {
			frames = append(frames, trigger.frame)
		}
	}

	return
}
