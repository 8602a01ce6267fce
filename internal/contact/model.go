package contact

// Submission is one contact-form message. Newest submissions sit at
// the front of the persisted collection.
type Submission struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Email       string `json:"email"`
	Message     string `json:"message"`
	SubmittedAt string `json:"submittedAt"`
}
