package utils

import "strings"

// FindFold returns the index of the option equal to s under Unicode case
// folding, ignoring surrounding whitespace, or -1.
func FindFold(options []string, s string) int {
	s = strings.TrimSpace(s)
	for i, option := range options {
		if strings.EqualFold(option, s) {
			return i
		}
	}
	return -1
}
