package dto

import (
	"pawcare-admin/internal/model"
	"pawcare-admin/internal/modules/resource"
)

type NutritionalInfoInput struct {
	Protein  *float64 `json:"protein"`
	Fat      *float64 `json:"fat"`
	Fiber    *float64 `json:"fiber"`
	Moisture *float64 `json:"moisture"`
}

type FoodInput struct {
	FoodName        *string               `json:"foodName"`
	Price           *string               `json:"price"`
	Currency        *string               `json:"currency"`
	Category        *string               `json:"category"`
	Brand           *string               `json:"brand"`
	Weight          *string               `json:"weight"`
	Ingredients     *[]string             `json:"ingredients"`
	NutritionalInfo *NutritionalInfoInput `json:"nutritionalInfo"`
	AgeGroup        *string               `json:"ageGroup"`
	InStock         *bool                 `json:"inStock"`
	StockQuantity   *int                  `json:"stockQuantity"`
	IsActive        *bool                 `json:"isActive"`
}

func (in *FoodInput) Apply(f *model.AnimalFood) {
	if in.FoodName != nil {
		f.FoodName = *in.FoodName
	}
	if in.Price != nil {
		f.Price = *in.Price
	}
	if in.Currency != nil {
		f.Currency = *in.Currency
	}
	if in.Category != nil {
		f.Category = *in.Category
	}
	if in.Brand != nil {
		f.Brand = *in.Brand
	}
	if in.Weight != nil {
		f.Weight = *in.Weight
	}
	if in.Ingredients != nil {
		f.Ingredients = *in.Ingredients
	}
	if n := in.NutritionalInfo; n != nil {
		if n.Protein != nil {
			f.NutritionalInfo.Protein = n.Protein
		}
		if n.Fat != nil {
			f.NutritionalInfo.Fat = n.Fat
		}
		if n.Fiber != nil {
			f.NutritionalInfo.Fiber = n.Fiber
		}
		if n.Moisture != nil {
			f.NutritionalInfo.Moisture = n.Moisture
		}
	}
	if in.AgeGroup != nil {
		f.AgeGroup = *in.AgeGroup
	}
	if in.InStock != nil {
		f.InStock = *in.InStock
	}
	if in.StockQuantity != nil {
		f.StockQuantity = *in.StockQuantity
	}
	if in.IsActive != nil {
		f.IsActive = *in.IsActive
	}
}

// FoodFilter bounds are inclusive and compare against the parsed price.
type FoodFilter struct {
	Category string   `form:"category"`
	MinPrice *float64 `form:"minPrice"`
	MaxPrice *float64 `form:"maxPrice"`
	InStock  *bool    `form:"inStock"`
	IsActive *bool    `form:"isActive"`
}

func (f *FoodFilter) Clauses() []resource.Clause {
	var clauses []resource.Clause
	if f.Category != "" {
		clauses = append(clauses, resource.Eq("category", f.Category))
	}
	if f.MinPrice != nil {
		clauses = append(clauses, resource.Gte("price_numeric", *f.MinPrice))
	}
	if f.MaxPrice != nil {
		clauses = append(clauses, resource.Lte("price_numeric", *f.MaxPrice))
	}
	if f.InStock != nil {
		clauses = append(clauses, resource.Eq("in_stock", *f.InStock))
	}
	if f.IsActive != nil {
		clauses = append(clauses, resource.Eq("is_active", *f.IsActive))
	}
	return clauses
}
