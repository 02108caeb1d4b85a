// internal/models/user.go
package models

type UserPreferences struct {
	Newsletter bool     `json:"newsletter" firestore:"newsletter"`
	Categories []string `json:"categories,omitempty" firestore:"categories,omitempty"`
	Language   string   `json:"language,omitempty" firestore:"language,omitempty"`
}

// User is a plain profile record; credentials and sessions belong to the
// external auth collaborator.
type User struct {
	BaseModel
	Name        string          `json:"name" gorm:"size:255;not null" firestore:"name"`
	Email       string          `json:"email" gorm:"size:255;uniqueIndex;not null" firestore:"email"`
	Phone       string          `json:"phone,omitempty" gorm:"size:50" firestore:"phone,omitempty"`
	Preferences UserPreferences `json:"preferences" gorm:"type:jsonb;serializer:json" firestore:"preferences"`
}
