package service

import (
	"math/rand"
	"sort"

	"github.com/aliskhannn/football-quiz-bot/internal/domain/entities"
)

// shuffleQuestions returns a freshly shuffled copy of questions; the input is
// never modified. Each element gets a uniform random key and the copy is
// sorted by key.
func shuffleQuestions(questions []entities.Question) []entities.Question {
	type keyed struct {
		question entities.Question
		key      float64
	}

	keys := make([]keyed, len(questions))
	for i, q := range questions {
		keys[i] = keyed{question: q, key: rand.Float64()}
	}

	sort.Slice(keys, func(i, j int) bool {
		return keys[i].key < keys[j].key
	})

	shuffled := make([]entities.Question, len(keys))
	for i, k := range keys {
		shuffled[i] = k.question
	}
	return shuffled
}
