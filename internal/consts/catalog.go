package consts

const (
	AvailabilityAlways        = "24/7"
	AvailabilityBusinessHours = "Business Hours"
	AvailabilityEmergencyOnly = "Emergency Only"
)

var (
	Specializations = []string{"Wildlife", "Domestic Animals", "Marine Life", "Birds", "Emergency Response"}
	Availabilities  = []string{AvailabilityAlways, AvailabilityBusinessHours, AvailabilityEmergencyOnly}
)

const (
	FoodCategoryDog = "Dog Food"
	AgeGroupAll     = "All Ages"
	DefaultCurrency = "USD"
)

var (
	FoodCategories = []string{FoodCategoryDog, "Cat Food", "Bird Food", "Fish Food", "Small Animal Food", "Treats", "Supplements"}
	AgeGroups      = []string{"Puppy/Kitten", "Adult", "Senior", AgeGroupAll}
)

const (
	EducationCategoryGeneral = "General"
	DifficultyBeginner       = "Beginner"
)

var (
	EducationCategories = []string{"Pet Care", "Training", "Health", "Nutrition", "Behavior", "Emergency Care", EducationCategoryGeneral}
	Difficulties        = []string{DifficultyBeginner, "Intermediate", "Advanced"}
)

// Upload ceilings, in bytes.
const (
	MaxImageSize       = 5 << 20
	MaxReportPhotoSize = 10 << 20
)
