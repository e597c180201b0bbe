// SPDX-License-Identifier: MIT

package dfs

// Reverse returns a new slice containing the elements of s in reverse order.
// Time Complexity: O(n).
func Reverse[T any](s []T) []T {
	out := make([]T, len(s))
	for i := range s {
		out[i] = s[len(s)-1-i]
	}

	return out
}
