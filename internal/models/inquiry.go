// internal/models/inquiry.go
package models

type Inquiry struct {
	BaseModel
	Name    string        `json:"name" gorm:"size:255;not null" firestore:"name"`
	Email   string        `json:"email" gorm:"size:255;not null" firestore:"email"`
	Phone   string        `json:"phone,omitempty" gorm:"size:50" firestore:"phone,omitempty"`
	Subject string        `json:"subject" gorm:"size:255" firestore:"subject"`
	Message string        `json:"message" gorm:"type:text;not null" firestore:"message"`
	Status  InquiryStatus `json:"status" gorm:"type:varchar(20);default:'new';index" firestore:"status"`
}
