// internal/models/review.go
package models

import "time"

// Review is always keyed by its owning product. Rating is an integer 1-5;
// the product's rating/reviewsCount are recomputed from the full review set
// on every insert.
type Review struct {
	ID        string    `json:"id" gorm:"type:uuid;primaryKey" firestore:"id"`
	ProductID string    `json:"productId" gorm:"type:uuid;not null;index" firestore:"-"`
	Author    string    `json:"author" gorm:"size:255" firestore:"author"`
	Rating    int       `json:"rating" gorm:"not null" firestore:"rating"`
	Comment   string    `json:"comment" gorm:"type:text" firestore:"comment"`
	CreatedAt time.Time `json:"createdAt" firestore:"createdAt"`
}
