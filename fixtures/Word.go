package fixtures

import (
	"strings"

	"github.com/Pallinder/go-randomdata"
)

// Word returns a single random word that is made of letters only.
func Word() string {
	mutex.Lock()
	defer mutex.Unlock()
	return randomdata.SillyName()
}

// Words returns the requested amount of random words.
func Words(count int) []string {
	ws := make([]string, 0, count)
	for i := 0; i < count; i++ {
		ws = append(ws, Word())
	}
	return ws
}

// Sentence joins the requested amount of random words with single spaces.
func Sentence(wordCount int) string {
	return strings.Join(Words(wordCount), ` `)
}

// Paragraph returns a multi sentence long random text.
func Paragraph() string {
	mutex.Lock()
	defer mutex.Unlock()
	return randomdata.Paragraph()
}
