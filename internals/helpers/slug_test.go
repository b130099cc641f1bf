package helper

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerateSlug(t *testing.T) {
	assert.Equal(t, "fête-des-ignames-2026", GenerateSlug("Fête des ignames 2026"))
	assert.Equal(t, "réunion-du-bureau", GenerateSlug("  Réunion   du bureau !! "))
	assert.Equal(t, "", GenerateSlug("???"))
}

func TestGenerateSlug_TruncatesLongTitles(t *testing.T) {
	long := ""
	for i := 0; i < 40; i++ {
		long += "actualite "
	}
	slug := GenerateSlug(long)
	assert.LessOrEqual(t, len(slug), DefaultSlugMaxLen)
	assert.NotEqual(t, "-", slug[len(slug)-1:])
}
