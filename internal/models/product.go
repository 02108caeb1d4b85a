// internal/models/product.go
package models

import (
	"github.com/lib/pq"
)

// ArtisanSummary is the denormalized artisan block embedded in a Product.
// It mirrors a subset of Artisan; callers keep the two sides in sync.
type ArtisanSummary struct {
	ID             string `json:"id" firestore:"id"`
	Name           string `json:"name" firestore:"name"`
	Location       string `json:"location" firestore:"location"`
	Specialization string `json:"specialization" firestore:"specialization"`
	Contact        string `json:"contact,omitempty" firestore:"contact,omitempty"`
	Bio            string `json:"bio,omitempty" firestore:"bio,omitempty"`
}

// NutritionInfo holds the optional nutrition facts of food products.
type NutritionInfo struct {
	Calories string `json:"calories,omitempty" firestore:"calories,omitempty"`
	Protein  string `json:"protein,omitempty" firestore:"protein,omitempty"`
	Fiber    string `json:"fiber,omitempty" firestore:"fiber,omitempty"`
	Minerals string `json:"minerals,omitempty" firestore:"minerals,omitempty"`
}

type Product struct {
	BaseModel
	Name          string         `json:"name" gorm:"size:255;not null;index" firestore:"name"`
	Category      string         `json:"category" gorm:"size:100;index" firestore:"category"`
	Region        string         `json:"region" gorm:"size:100;index" firestore:"region"`
	Description   string         `json:"description" gorm:"type:text" firestore:"description"`
	Significance  string         `json:"significance" gorm:"type:text" firestore:"significance"`
	Images        pq.StringArray `json:"images" gorm:"type:text[]" firestore:"images"`
	Rating        float64        `json:"rating" gorm:"type:decimal(3,2);default:0" firestore:"rating"`
	ReviewsCount  int            `json:"reviewsCount" gorm:"default:0" firestore:"reviewsCount"`
	Artisan       ArtisanSummary `json:"artisan" gorm:"type:jsonb;serializer:json" firestore:"artisan"`
	Nutrition     *NutritionInfo `json:"nutrition,omitempty" gorm:"type:jsonb;serializer:json" firestore:"nutrition,omitempty"`
	HarvestSeason string         `json:"harvestSeason,omitempty" gorm:"size:100" firestore:"harvestSeason,omitempty"`
	ShelfLife     string         `json:"shelfLife,omitempty" gorm:"size:100" firestore:"shelfLife,omitempty"`
	Material      string         `json:"material,omitempty" gorm:"size:100" firestore:"material,omitempty"`
	Dimensions    string         `json:"dimensions,omitempty" gorm:"size:100" firestore:"dimensions,omitempty"`
	Keywords      pq.StringArray `json:"keywords" gorm:"type:text[]" firestore:"keywords"`
	Available     bool           `json:"available" gorm:"default:true" firestore:"available"`
	GICertified   bool           `json:"giCertified" gorm:"default:false" firestore:"giCertified"`

	// Reviews live as rows on postgres and as an embedded list on
	// firestore; the repository reconciles the two representations.
	Reviews []Review `json:"reviews" gorm:"foreignKey:ProductID" firestore:"reviews"`
}
