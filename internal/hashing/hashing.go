package hashing

// DuplicateDetector tracks seen digests for duplicate content detection.
type DuplicateDetector struct {
	// seen maps each digest to the sources that produced it, first one first
	seen map[Digest][]string
	// maxCapacity limits distinct digests tracked (0 = unlimited)
	maxCapacity int
	// duplicateCount tracks number of duplicates found
	duplicateCount int
}

// NewDuplicateDetector creates a new duplicate detector.
// maxCapacity of 0 means unlimited capacity.
func NewDuplicateDetector(maxCapacity int) *DuplicateDetector {
	if maxCapacity < 0 {
		maxCapacity = 0
	}
	return &DuplicateDetector{
		seen:        make(map[Digest][]string),
		maxCapacity: maxCapacity,
	}
}

// CheckAndAdd records that source has digest d.
// Returns the source that first produced d and true if d was already seen.
// When the detector is full, unseen digests are not recorded.
func (d *DuplicateDetector) CheckAndAdd(digest Digest, source string) (string, bool) {
	if sources, ok := d.seen[digest]; ok {
		d.seen[digest] = append(sources, source)
		d.duplicateCount++
		return sources[0], true
	}
	if d.IsFull() {
		return "", false
	}
	d.seen[digest] = []string{source}
	return "", false
}

// Duplicates returns the digests that were seen more than once.
func (d *DuplicateDetector) Duplicates() map[Digest][]string {
	out := make(map[Digest][]string)
	for digest, src := range d.seen {
		if len(src) > 1 {
			out[digest] = append([]string(nil), src...)
		}
	}
	return out
}

// DuplicateCount returns the number of duplicates detected.
func (d *DuplicateDetector) DuplicateCount() int {
	return d.duplicateCount
}

// UniqueCount returns the number of distinct digests recorded.
func (d *DuplicateDetector) UniqueCount() int {
	return len(d.seen)
}

// IsFull returns true if the detector has reached its capacity limit.
// Always returns false for unlimited capacity (maxCapacity = 0).
func (d *DuplicateDetector) IsFull() bool {
	return d.maxCapacity > 0 && len(d.seen) >= d.maxCapacity
}
