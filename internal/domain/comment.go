package domain

import "time"

type Comment struct {
	ID             string    `json:"id"`
	RegistrationID string    `json:"registration_id"`
	Content        string    `json:"content"`
	AuthorEmail    string    `json:"author_email"`
	AuthorName     string    `json:"author_name"`
	CreatedAt      time.Time `json:"created_at"`
}
