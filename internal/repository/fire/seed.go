// internal/repository/fire/seed.go
package fire

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"github.com/projectgichatbot-max/gitag-backend/internal/models"
)

// seed loads the fixed placeholder dataset served in demo mode: a small
// slice of Uttarakhand GI-tagged products and the artisans behind them.
func seed(d *Demo) {
	base := time.Date(2024, time.March, 1, 9, 0, 0, 0, time.UTC)

	kamla := &models.Artisan{
		BaseModel:       models.BaseModel{ID: uuid.NewString(), CreatedAt: base, UpdatedAt: base},
		Name:            "Kamla Devi",
		Village:         "Chitai",
		District:        "Almora",
		Region:          "Kumaon",
		Specialization:  "Aipan folk art",
		ExperienceYears: 22,
		Bio:             "Third-generation Aipan artist painting geru and biswar motifs for temples and households across Almora.",
		Image:           "/images/artisans/kamla-devi.jpg",
		Skills:          pq.StringArray{"aipan", "natural pigments", "mural painting"},
		Achievements:    pq.StringArray{"State Handicraft Award 2019"},
		Contact:         models.ContactInfo{Phone: "+91-9411100001", Email: "kamla@example.org"},
		Workshops: []models.WorkshopOffer{
			{Title: "Aipan motifs for beginners", Duration: "2 days", Price: 1500, Capacity: 8, Available: true},
		},
		Impact:   models.SocialImpact{FamiliesSupported: 12, StudentsTrained: 40, WomenEmpowered: 25},
		Gallery:  pq.StringArray{"/images/gallery/aipan-1.jpg", "/images/gallery/aipan-2.jpg"},
		Location: &models.GeoLocation{Lat: 29.5971, Lng: 79.6591},
		Keywords: pq.StringArray{"aipan", "almora", "folk art"},
	}

	prem := &models.Artisan{
		BaseModel:       models.BaseModel{ID: uuid.NewString(), CreatedAt: base.Add(24 * time.Hour), UpdatedAt: base.Add(24 * time.Hour)},
		Name:            "Prem Ram",
		Village:         "Jakhera",
		District:        "Bageshwar",
		Region:          "Kumaon",
		Specialization:  "Ringaal bamboo weaving",
		ExperienceYears: 30,
		Bio:             "Weaves baskets, mats and lamp shades from ringaal, the high-altitude dwarf bamboo of the Kumaon hills.",
		Image:           "/images/artisans/prem-ram.jpg",
		Skills:          pq.StringArray{"ringaal weaving", "basketry", "cane work"},
		Contact:         models.ContactInfo{Phone: "+91-9411100002", WhatsApp: "+91-9411100002"},
		Workshops: []models.WorkshopOffer{
			{Title: "Ringaal basket weaving", Duration: "3 days", Price: 2200, Capacity: 6, Available: true},
		},
		Impact:   models.SocialImpact{FamiliesSupported: 8, StudentsTrained: 15},
		Gallery:  pq.StringArray{"/images/gallery/ringaal-1.jpg"},
		Location: &models.GeoLocation{Lat: 29.8380, Lng: 79.7710},
		Keywords: pq.StringArray{"ringaal", "bamboo", "bageshwar"},
	}
	d.artisans[kamla.ID] = kamla
	d.artisans[prem.ID] = prem

	products := []*models.Product{
		{
			BaseModel:    models.BaseModel{ID: uuid.NewString(), CreatedAt: base.Add(48 * time.Hour), UpdatedAt: base.Add(48 * time.Hour)},
			Name:         "Munsiyari Rajma",
			Category:     "food",
			Region:       "Munsiyari, Pithoragarh",
			Description:  "Small, sweet-flavoured kidney beans grown above 2200m in the Johar valley.",
			Significance: "GI-tagged hill pulse prized for its quick cooking time and creamy texture.",
			Images:       pq.StringArray{"/images/products/munsiyari-rajma.jpg"},
			Artisan: models.ArtisanSummary{
				ID:             prem.ID,
				Name:           prem.Name,
				Location:       "Munsiyari, Pithoragarh",
				Specialization: "Hill farming collective",
			},
			Nutrition:     &models.NutritionInfo{Calories: "333 kcal/100g", Protein: "24g", Fiber: "15g", Minerals: "iron, potassium"},
			HarvestSeason: "September-October",
			ShelfLife:     "12 months",
			Keywords:      pq.StringArray{"rajma", "kidney beans", "munsiyari", "pulses"},
			Available:     true,
			GICertified:   true,
			Reviews:       []models.Review{},
		},
		{
			BaseModel:    models.BaseModel{ID: uuid.NewString(), CreatedAt: base.Add(72 * time.Hour), UpdatedAt: base.Add(72 * time.Hour)},
			Name:         "Aipan Wall Hanging",
			Category:     "handicraft",
			Region:       "Almora",
			Description:  "Hand-painted Aipan panel on handmade paper, geru base with white rice-paste motifs.",
			Significance: "Aipan is the ritual floor and wall art of Kumaon, painted for festivals and ceremonies.",
			Images:       pq.StringArray{"/images/products/aipan-wall-hanging.jpg"},
			Artisan: models.ArtisanSummary{
				ID:             kamla.ID,
				Name:           kamla.Name,
				Location:       "Chitai, Almora",
				Specialization: kamla.Specialization,
			},
			Material:    "handmade paper, natural pigments",
			Dimensions:  "45cm x 30cm",
			Keywords:    pq.StringArray{"aipan", "wall art", "kumaon", "folk art"},
			Available:   true,
			GICertified: true,
			Reviews:     []models.Review{},
		},
		{
			BaseModel:    models.BaseModel{ID: uuid.NewString(), CreatedAt: base.Add(96 * time.Hour), UpdatedAt: base.Add(96 * time.Hour)},
			Name:         "Ringaal Storage Basket",
			Category:     "handicraft",
			Region:       "Bageshwar",
			Description:  "Tightly woven ringaal bamboo basket with lid, traditionally used for storing grain.",
			Significance: "Ringaal craft sustains hill households through winter months when fields lie fallow.",
			Images:       pq.StringArray{"/images/products/ringaal-basket.jpg"},
			Artisan: models.ArtisanSummary{
				ID:             prem.ID,
				Name:           prem.Name,
				Location:       "Jakhera, Bageshwar",
				Specialization: prem.Specialization,
			},
			Material:    "ringaal bamboo",
			Dimensions:  "30cm diameter, 35cm height",
			Keywords:    pq.StringArray{"ringaal", "basket", "bamboo", "storage"},
			Available:   true,
			GICertified: false,
			Reviews:     []models.Review{},
		},
		{
			BaseModel:    models.BaseModel{ID: uuid.NewString(), CreatedAt: base.Add(120 * time.Hour), UpdatedAt: base.Add(120 * time.Hour)},
			Name:         "Berinag Tea",
			Category:     "food",
			Region:       "Berinag, Pithoragarh",
			Description:  "Orthodox black tea from century-old high-altitude gardens of Berinag.",
			Significance: "Once served in the royal houses of Kumaon, revived by local grower cooperatives.",
			Images:       pq.StringArray{"/images/products/berinag-tea.jpg"},
			Artisan: models.ArtisanSummary{
				ID:             kamla.ID,
				Name:           "Berinag Growers Collective",
				Location:       "Berinag, Pithoragarh",
				Specialization: "Tea cultivation",
			},
			HarvestSeason: "April-June",
			ShelfLife:     "18 months",
			Keywords:      pq.StringArray{"tea", "berinag", "orthodox", "beverage"},
			Available:     true,
			GICertified:   false,
			Reviews:       []models.Review{},
		},
	}

	for _, p := range products {
		d.products[p.ID] = p
	}
	kamla.Products = pq.StringArray{products[1].ID, products[3].ID}
	prem.Products = pq.StringArray{products[0].ID, products[2].ID}
}
