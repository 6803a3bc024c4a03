package count

// Monotonicity predicates over integer sequences. These are the public face
// of the classification the counters aggregate: a sequence is monotone when
// it never steps down OR never steps up, and non-monotone exactly when both
// predicates below are false (De Morgan over "neither").
//
// All three treat empty and single-element sequences as vacuously monotone:
// there is no adjacent pair to violate either order.

// IsNonDecreasing reports whether seq never steps down, i.e.
// seq[i] <= seq[i+1] for every adjacent pair.
//
// Complexity: O(len(seq)) time, O(1) space.
func IsNonDecreasing(seq []int) bool {
	for i := 1; i < len(seq); i++ {
		if seq[i-1] > seq[i] {
			return false
		}
	}

	return true
}

// IsNonIncreasing reports whether seq never steps up, i.e.
// seq[i] >= seq[i+1] for every adjacent pair.
//
// Complexity: O(len(seq)) time, O(1) space.
func IsNonIncreasing(seq []int) bool {
	for i := 1; i < len(seq); i++ {
		if seq[i-1] < seq[i] {
			return false
		}
	}

	return true
}

// IsMonotone reports whether seq is non-decreasing or non-increasing.
// Constant sequences satisfy both; sequences of length <= 1 are monotone.
//
// Complexity: O(len(seq)) time, O(1) space.
func IsMonotone(seq []int) bool {
	return IsNonDecreasing(seq) || IsNonIncreasing(seq)
}
