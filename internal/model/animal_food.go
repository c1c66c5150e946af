package model

import (
	"strconv"
	"strings"

	"pawcare-admin/internal/consts"
)

type NutritionalInfo struct {
	Protein  *float64 `json:"protein,omitempty"`
	Fat      *float64 `json:"fat,omitempty"`
	Fiber    *float64 `json:"fiber,omitempty"`
	Moisture *float64 `json:"moisture,omitempty"`
}

type AnimalFood struct {
	Audit
	FoodName        string          `json:"foodName" gorm:"size:100;not null" validate:"required,max=100"`
	Price           string          `json:"price" gorm:"size:50;not null" validate:"required,max=50"`
	PriceNumeric    float64         `json:"priceNumeric" gorm:"index" validate:"gte=0"`
	Currency        string          `json:"currency" gorm:"size:3" validate:"max=3"`
	Category        string          `json:"category" gorm:"size:30;index" validate:"enum=food_category"`
	Brand           string          `json:"brand" gorm:"size:50" validate:"max=50"`
	Weight          string          `json:"weight" gorm:"size:50"`
	Ingredients     []string        `json:"ingredients" gorm:"serializer:json"`
	NutritionalInfo NutritionalInfo `json:"nutritionalInfo" gorm:"embedded;embeddedPrefix:nutrition_"`
	AgeGroup        string          `json:"ageGroup" gorm:"size:20" validate:"enum=age_group"`
	InStock         bool            `json:"inStock"`
	StockQuantity   int             `json:"stockQuantity" validate:"gte=0"`
	Image           Image           `json:"image" gorm:"embedded;embeddedPrefix:image_"`
	Creator         *UserSummary    `json:"creator,omitempty" gorm:"foreignKey:CreatedBy"`
	Updater         *UserSummary    `json:"updater,omitempty" gorm:"foreignKey:UpdatedBy"`
}

func (AnimalFood) TableName() string {
	return "animal_foods"
}

// Normalize applies defaults and derives PriceNumeric from the display price.
func (f *AnimalFood) Normalize() {
	f.FoodName = strings.TrimSpace(f.FoodName)
	f.Price = strings.TrimSpace(f.Price)
	f.Brand = strings.TrimSpace(f.Brand)
	f.Weight = strings.TrimSpace(f.Weight)
	f.Ingredients = trimAll(f.Ingredients)
	if f.Currency == "" {
		f.Currency = consts.DefaultCurrency
	}
	if f.Category == "" {
		f.Category = consts.FoodCategoryDog
	}
	if f.AgeGroup == "" {
		f.AgeGroup = consts.AgeGroupAll
	}
	if n, ok := ParsePrice(f.Price); ok {
		f.PriceNumeric = n
	}
}

func (f *AnimalFood) AttachImages(images []Image) []Image {
	return replaceImage(&f.Image, images)
}

// ParsePrice keeps digits and dots from a display price such as "$12.99"
// and parses the longest numeric prefix.
func ParsePrice(display string) (float64, bool) {
	var b strings.Builder
	seenDot := false
scan:
	for _, r := range display {
		switch {
		case r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == '.':
			if seenDot {
				break scan
			}
			seenDot = true
			b.WriteRune(r)
		}
	}
	s := strings.TrimSuffix(b.String(), ".")
	if s == "" {
		return 0, false
	}
	n, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return n, true
}

func (f *AnimalFood) Images() []Image {
	return singleImage(f.Image)
}
