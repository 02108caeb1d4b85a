// internal/models/newsletter.go
package models

import "time"

// NewsletterSubscriber uses the email address as its natural key:
// re-subscribing an unsubscribed address reactivates the same record.
type NewsletterSubscriber struct {
	BaseModel
	Email          string     `json:"email" gorm:"size:255;uniqueIndex;not null" firestore:"email"`
	Active         bool       `json:"active" gorm:"default:true;index" firestore:"active"`
	SubscribedAt   time.Time  `json:"subscribedAt" firestore:"subscribedAt"`
	UnsubscribedAt *time.Time `json:"unsubscribedAt,omitempty" firestore:"unsubscribedAt,omitempty"`
}
