package repository

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/aliskhannn/football-quiz-bot/internal/domain/entities"
)

var (
	ErrUnknownCategory = errors.New("unknown category")
	ErrNoCategories    = errors.New("no categories in questions file")
)

// QuestionRepository provides read-only access to the categorized question
// data. The whole dataset is loaded from a JSON file once at startup and kept
// in memory for the process lifetime.
type QuestionRepository struct {
	order      []string
	categories map[string][]entities.Question
}

// NewQuestionRepository loads and validates the questions file at path.
func NewQuestionRepository(path string) (*QuestionRepository, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read questions file: %w", err)
	}

	var wrapper struct {
		Categories []struct {
			Name      string              `json:"name"`
			Questions []entities.Question `json:"questions"`
		} `json:"categories"`
	}
	if err := json.Unmarshal(data, &wrapper); err != nil {
		return nil, fmt.Errorf("failed to unmarshal questions JSON: %w", err)
	}

	if len(wrapper.Categories) == 0 {
		return nil, ErrNoCategories
	}

	r := &QuestionRepository{
		categories: make(map[string][]entities.Question, len(wrapper.Categories)),
	}

	for _, c := range wrapper.Categories {
		if c.Name == "" {
			return nil, fmt.Errorf("category without a name in %s", path)
		}
		if _, ok := r.categories[c.Name]; ok {
			return nil, fmt.Errorf("duplicate category %q", c.Name)
		}
		if len(c.Questions) == 0 {
			return nil, fmt.Errorf("category %q has no questions", c.Name)
		}

		for i, q := range c.Questions {
			if err := validateQuestion(q); err != nil {
				return nil, fmt.Errorf("category %q, question %d: %w", c.Name, i+1, err)
			}
		}

		r.order = append(r.order, c.Name)
		r.categories[c.Name] = c.Questions
	}

	return r, nil
}

func validateQuestion(q entities.Question) error {
	if q.Text == "" {
		return errors.New("empty question text")
	}
	if len(q.Options) < 2 {
		return fmt.Errorf("need at least 2 options, got %d", len(q.Options))
	}
	if q.CorrectIndex < 0 || q.CorrectIndex >= len(q.Options) {
		return fmt.Errorf("correct index %d out of range [0, %d)", q.CorrectIndex, len(q.Options))
	}
	return nil
}

// Get returns the ordered question list for a category, or ErrUnknownCategory.
// Callers must treat the returned slice as read-only.
func (r *QuestionRepository) Get(category string) ([]entities.Question, error) {
	questions, ok := r.categories[category]
	if !ok {
		return nil, ErrUnknownCategory
	}
	return questions, nil
}

// Categories returns the category keys in file order.
func (r *QuestionRepository) Categories() []string {
	return r.order
}
