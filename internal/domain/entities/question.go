package entities

// Question is a single multiple-choice quiz question. Questions are loaded
// once at startup and never mutated afterwards.
type Question struct {
	Text         string   `json:"text"`            // question text shown to the user
	Options      []string `json:"options"`         // answer options, at least two
	CorrectIndex int      `json:"correct"`         // index into Options of the correct answer
	Image        string   `json:"image,omitempty"` // optional photo URL shown with the question
}

// HasImage reports whether the question carries a photo.
func (q Question) HasImage() bool {
	return q.Image != ""
}
