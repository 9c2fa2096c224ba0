package domain

import "time"

// Review is a customer review shown on the landing page once approved.
type Review struct {
	ID        int32     `json:"id"`
	UserID    *int32    `json:"user_id,omitempty"`
	Author    string    `json:"author"`
	Rating    int32     `json:"rating"`
	Comment   string    `json:"comment"`
	Approved  bool      `json:"approved"`
	CreatedOn time.Time `json:"created_on"`
}
