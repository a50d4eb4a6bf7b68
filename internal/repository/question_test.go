package repository

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

const validQuestions = `{
  "categories": [
    {
      "name": "players",
      "questions": [
        {"text": "Q1", "options": ["a", "b", "c"], "correct": 1},
        {"text": "Q2", "options": ["a", "b"], "correct": 0, "image": "https://example.com/p.png"}
      ]
    },
    {
      "name": "coaches",
      "questions": [
        {"text": "Q3", "options": ["x", "y"], "correct": 1}
      ]
    }
  ]
}`

func writeQuestions(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "questions.json")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write questions file: %v", err)
	}
	return path
}

func TestNewQuestionRepository(t *testing.T) {
	t.Run("ValidFile", func(t *testing.T) {
		repo, err := NewQuestionRepository(writeQuestions(t, validQuestions))
		if err != nil {
			t.Fatalf("NewQuestionRepository: %v", err)
		}

		got := repo.Categories()
		want := []string{"players", "coaches"}
		if len(got) != len(want) {
			t.Fatalf("Categories() = %v, want %v", got, want)
		}
		for i := range want {
			if got[i] != want[i] {
				t.Errorf("Categories()[%d] = %q, want %q (file order must be preserved)", i, got[i], want[i])
			}
		}

		questions, err := repo.Get("players")
		if err != nil {
			t.Fatalf("Get(players): %v", err)
		}
		if len(questions) != 2 {
			t.Fatalf("Get(players) returned %d questions, want 2", len(questions))
		}
		if questions[0].Text != "Q1" || questions[0].CorrectIndex != 1 {
			t.Errorf("first question = %+v", questions[0])
		}
		if !questions[1].HasImage() {
			t.Error("second question should carry an image")
		}
	})

	t.Run("MissingFile", func(t *testing.T) {
		if _, err := NewQuestionRepository(filepath.Join(t.TempDir(), "absent.json")); err == nil {
			t.Fatal("expected error for missing file")
		}
	})

	t.Run("InvalidJSON", func(t *testing.T) {
		if _, err := NewQuestionRepository(writeQuestions(t, "{not json")); err == nil {
			t.Fatal("expected error for invalid JSON")
		}
	})

	t.Run("NoCategories", func(t *testing.T) {
		_, err := NewQuestionRepository(writeQuestions(t, `{"categories": []}`))
		if !errors.Is(err, ErrNoCategories) {
			t.Fatalf("got %v, want ErrNoCategories", err)
		}
	})

	t.Run("TooFewOptions", func(t *testing.T) {
		content := `{"categories": [{"name": "c", "questions": [{"text": "Q", "options": ["only"], "correct": 0}]}]}`
		if _, err := NewQuestionRepository(writeQuestions(t, content)); err == nil {
			t.Fatal("expected error for a single-option question")
		}
	})

	t.Run("CorrectIndexOutOfRange", func(t *testing.T) {
		content := `{"categories": [{"name": "c", "questions": [{"text": "Q", "options": ["a", "b"], "correct": 2}]}]}`
		if _, err := NewQuestionRepository(writeQuestions(t, content)); err == nil {
			t.Fatal("expected error for out-of-range correct index")
		}
	})

	t.Run("DuplicateCategory", func(t *testing.T) {
		content := `{"categories": [
			{"name": "c", "questions": [{"text": "Q", "options": ["a", "b"], "correct": 0}]},
			{"name": "c", "questions": [{"text": "Q2", "options": ["a", "b"], "correct": 0}]}
		]}`
		if _, err := NewQuestionRepository(writeQuestions(t, content)); err == nil {
			t.Fatal("expected error for duplicate category name")
		}
	})
}

func TestQuestionRepositoryGetUnknown(t *testing.T) {
	repo, err := NewQuestionRepository(writeQuestions(t, validQuestions))
	if err != nil {
		t.Fatalf("NewQuestionRepository: %v", err)
	}

	if _, err := repo.Get("referees"); !errors.Is(err, ErrUnknownCategory) {
		t.Fatalf("Get(referees) = %v, want ErrUnknownCategory", err)
	}
}
