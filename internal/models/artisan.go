// internal/models/artisan.go
package models

import (
	"time"

	"github.com/lib/pq"
)

type ContactInfo struct {
	Phone    string `json:"phone,omitempty" firestore:"phone,omitempty"`
	Email    string `json:"email,omitempty" firestore:"email,omitempty"`
	WhatsApp string `json:"whatsapp,omitempty" firestore:"whatsapp,omitempty"`
}

type WorkshopOffer struct {
	Title     string  `json:"title" firestore:"title"`
	Duration  string  `json:"duration" firestore:"duration"`
	Price     float64 `json:"price" firestore:"price"`
	Capacity  int     `json:"capacity" firestore:"capacity"`
	Available bool    `json:"available" firestore:"available"`
}

type SocialImpact struct {
	FamiliesSupported int `json:"familiesSupported" firestore:"familiesSupported"`
	StudentsTrained   int `json:"studentsTrained" firestore:"studentsTrained"`
	WomenEmpowered    int `json:"womenEmpowered" firestore:"womenEmpowered"`
}

type Testimonial struct {
	Author    string    `json:"author" firestore:"author"`
	Text      string    `json:"text" firestore:"text"`
	CreatedAt time.Time `json:"createdAt" firestore:"createdAt"`
}

type GeoLocation struct {
	Lat float64 `json:"lat" firestore:"lat"`
	Lng float64 `json:"lng" firestore:"lng"`
}

type Artisan struct {
	BaseModel
	Name            string          `json:"name" gorm:"size:255;not null;index" firestore:"name"`
	Village         string          `json:"village" gorm:"size:100" firestore:"village"`
	District        string          `json:"district" gorm:"size:100" firestore:"district"`
	Region          string          `json:"region" gorm:"size:100;index" firestore:"region"`
	Specialization  string          `json:"specialization" gorm:"size:255;index" firestore:"specialization"`
	ExperienceYears int             `json:"experienceYears" gorm:"default:0" firestore:"experienceYears"`
	Bio             string          `json:"bio" gorm:"type:text" firestore:"bio"`
	Image           string          `json:"image" gorm:"size:512" firestore:"image"`
	Products        pq.StringArray  `json:"products" gorm:"type:text[]" firestore:"products"`
	Skills          pq.StringArray  `json:"skills" gorm:"type:text[]" firestore:"skills"`
	Achievements    pq.StringArray  `json:"achievements" gorm:"type:text[]" firestore:"achievements"`
	Contact         ContactInfo     `json:"contact" gorm:"type:jsonb;serializer:json" firestore:"contact"`
	Workshops       []WorkshopOffer `json:"workshops" gorm:"type:jsonb;serializer:json" firestore:"workshops"`
	Impact          SocialImpact    `json:"impact" gorm:"type:jsonb;serializer:json" firestore:"impact"`
	Testimonials    []Testimonial   `json:"testimonials" gorm:"type:jsonb;serializer:json" firestore:"testimonials"`
	Gallery         pq.StringArray  `json:"gallery" gorm:"type:text[]" firestore:"gallery"`
	Location        *GeoLocation    `json:"location,omitempty" gorm:"type:jsonb;serializer:json" firestore:"location,omitempty"`
	Keywords        pq.StringArray  `json:"keywords" gorm:"type:text[]" firestore:"keywords"`
}
