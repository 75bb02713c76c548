package utils

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestThumbnailIsDeterministic(t *testing.T) {
	first := ThumbnailURL("Complete JavaScript Course")
	second := ThumbnailURL("Complete JavaScript Course")
	assert.Equal(t, first, second)
}

func TestThumbnailPaletteIndexFollowsTitleLength(t *testing.T) {
	// len("Complete JavaScript Course") = 26, 26 mod 6 = 2.
	url := ThumbnailURL("Complete JavaScript Course")
	assert.Equal(t, "https://placehold.co/600x400/0e7490/ecfeff?text=Complete+JavaScript+Course", url)

	// len("React for Beginners") = 19, 19 mod 6 = 1.
	url = ThumbnailURL("React for Beginners")
	assert.Equal(t, "https://placehold.co/600x400/7c3aed/ede9fe?text=React+for+Beginners", url)
}

func TestThumbnailDropsShortWordsAndCapsAtThree(t *testing.T) {
	// "in" и "Go" короче трёх символов и в подпись не попадают.
	url := ThumbnailURL("Data Structures in Go")
	assert.Contains(t, url, "text=Data+Structures")

	// Из пяти длинных слов остаются первые три.
	url = ThumbnailURL("Advanced Data Structures And Algorithms")
	assert.Contains(t, url, "text=Advanced+Data+Structures")
}

func TestThumbnailTitlesWithSameLengthShareColors(t *testing.T) {
	a := ThumbnailURL("aaaaaa")
	b := ThumbnailURL("bbbbbb")

	var aBg, aFg, bBg, bFg, rest string
	_, err := fmt.Sscanf(a, "https://placehold.co/600x400/%6s/%6s?%s", &aBg, &aFg, &rest)
	assert.NoError(t, err)
	_, err = fmt.Sscanf(b, "https://placehold.co/600x400/%6s/%6s?%s", &bBg, &bFg, &rest)
	assert.NoError(t, err)

	assert.Equal(t, aBg, bBg)
	assert.Equal(t, aFg, bFg)
}
