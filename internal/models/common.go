// internal/models/common.go
package models

import (
	"time"
)

// BaseModel carries the backend-assigned identifier and timestamps shared by
// every entity. The identifier is a UUID string so records stay plain and
// backend-agnostic: postgres keeps it in a uuid column, firestore uses it as
// the document ID (hence the "-" tag).
type BaseModel struct {
	ID        string    `json:"id" gorm:"type:uuid;primaryKey" firestore:"-"`
	CreatedAt time.Time `json:"createdAt" gorm:"index" firestore:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt" firestore:"updatedAt"`
}

type InquiryStatus string

const (
	InquiryStatusNew       InquiryStatus = "new"
	InquiryStatusRead      InquiryStatus = "read"
	InquiryStatusResponded InquiryStatus = "responded"
)
