package dto

import (
	"testing"

	"pawcare-admin/internal/modules/resource"

	"github.com/stretchr/testify/assert"
)

func TestFoodFilter_PriceRange(t *testing.T) {
	minPrice, maxPrice := 5.0, 20.5
	f := &FoodFilter{Category: "Dog Food", MinPrice: &minPrice, MaxPrice: &maxPrice}

	assert.Equal(t, []resource.Clause{
		resource.Eq("category", "Dog Food"),
		resource.Gte("price_numeric", 5.0),
		resource.Lte("price_numeric", 20.5),
	}, f.Clauses())
}
