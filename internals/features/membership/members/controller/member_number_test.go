package controller

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNextNumberAfter(t *testing.T) {
	cases := []struct {
		last string
		want string
	}{
		{"", "AJB-0001"},
		{"AJB-0042", "AJB-0043"},
		{"AJB-9999", "AJB-10000"},
		// Cinq chiffres : la séquence continue au lieu de retomber sur 10000
		{"AJB-10000", "AJB-10001"},
		{"AJB-10041", "AJB-10042"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, nextNumberAfter(tc.last), "last=%q", tc.last)
	}
}
