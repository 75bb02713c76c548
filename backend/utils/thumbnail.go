package utils

import (
	"fmt"
	"strings"
)

// thumbnailPalette — фиксированная палитра (фон, текст). Порядок пар
// менять нельзя: индекс зависит только от длины названия курса, и уже
// сохранённые обложки должны воспроизводиться байт в байт.
var thumbnailPalette = []struct{ bg, fg string }{
	{"1e293b", "f8fafc"},
	{"7c3aed", "ede9fe"},
	{"0e7490", "ecfeff"},
	{"b45309", "fffbeb"},
	{"15803d", "f0fdf4"},
	{"be123c", "fff1f2"},
}

// ThumbnailURL builds the placeholder cover image for a course. It is a
// pure function of the title: the palette pair is picked by
// len(title) mod palette size, and the caption is the first three words
// of the title longer than two characters, joined with "+".
func ThumbnailURL(title string) string {
	pair := thumbnailPalette[len(title)%len(thumbnailPalette)]

	var words []string
	for _, word := range strings.Fields(title) {
		if len(word) <= 2 {
			continue
		}
		words = append(words, word)
		if len(words) == 3 {
			break
		}
	}

	return fmt.Sprintf("https://placehold.co/600x400/%s/%s?text=%s",
		pair.bg, pair.fg, strings.Join(words, "+"))
}
