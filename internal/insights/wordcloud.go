package insights

import (
	"sort"
	"strings"
	"unicode"

	"moodmatrix/internal/constants"
	"moodmatrix/internal/models"
)

// WordCount is one ranked word-cloud token.
type WordCount struct {
	Text  string
	Count int
}

// stopWords are tokens excluded from the word cloud regardless of frequency.
var stopWords = map[string]bool{
	"this": true, "that": true, "with": true, "from": true,
	"have": true, "were": true, "they": true, "their": true,
}

// minWordLength excludes short filler tokens; only words strictly longer than
// this survive.
const minWordLength = 3

// WordCloud extracts the most frequent words across all journal notes and
// mood tags. Notes are lower-cased, stripped of punctuation, and split on
// whitespace; tokens of length three or less and stop words are dropped. Each
// mood tag counts as a token with a fixed weight bonus, since a chosen tag is
// a stronger signal than free text. Returns at most the top 20 tokens by
// descending count; ties keep first-encountered order.
func WordCloud(entries []models.MoodEntry) []WordCount {
	counts := make(map[string]int)
	var order []string

	bump := func(token string, weight int) {
		if _, seen := counts[token]; !seen {
			order = append(order, token)
		}
		counts[token] += weight
	}

	for _, entry := range entries {
		for _, word := range tokenize(entry.JournalNote) {
			bump(word, 1)
		}
		for _, tag := range entry.MoodTags {
			bump(strings.ToLower(tag), constants.TagWeightBonus)
		}
	}

	cloud := make([]WordCount, 0, len(order))
	for _, token := range order {
		cloud = append(cloud, WordCount{Text: token, Count: counts[token]})
	}
	sort.SliceStable(cloud, func(i, j int) bool {
		return cloud[i].Count > cloud[j].Count
	})

	if len(cloud) > constants.WordCloudLimit {
		cloud = cloud[:constants.WordCloudLimit]
	}
	return cloud
}

func tokenize(text string) []string {
	if text == "" {
		return nil
	}

	var b strings.Builder
	for _, r := range strings.ToLower(text) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_' || unicode.IsSpace(r) {
			b.WriteRune(r)
		}
	}

	var words []string
	for _, word := range strings.Fields(b.String()) {
		if len(word) > minWordLength && !stopWords[word] {
			words = append(words, word)
		}
	}
	return words
}
