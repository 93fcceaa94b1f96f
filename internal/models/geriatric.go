package models

import "strings"

// Therapy is an in-house rehabilitation service a residence can offer.
type Therapy string

const (
	TherapyKinesiology   Therapy = "KINESIOLOGY"
	TherapyOccupational  Therapy = "OCCUPATIONAL"
	TherapyPsychological Therapy = "PSYCHOLOGICAL"
	TherapyNutritionist  Therapy = "NUTRITIONIST"
)

// ParseTherapy maps a query-string value to a Therapy, case-insensitively.
// Unknown values return ("", false) and are silently dropped by callers.
func ParseTherapy(value string) (Therapy, bool) {
	switch strings.ToLower(value) {
	case "kinesiology":
		return TherapyKinesiology, true
	case "occupational":
		return TherapyOccupational, true
	case "psychological":
		return TherapyPsychological, true
	case "nutritionist":
		return TherapyNutritionist, true
	}
	return "", false
}

// GeriatricModel is a care-residence listing.
//
// Capability flags are tri-state (NULL = the residence never answered);
// a true-facet search filter only matches explicit true.
type GeriatricModel struct {
	Base
	Name        string `json:"name"        gorm:"not null;index"`
	Description string `json:"description" gorm:"type:text"`

	Address      string   `json:"address"`
	Street       string   `json:"street"`
	StreetNumber string   `json:"streetNumber"`
	City         string   `json:"city"     gorm:"index"`
	Province     string   `json:"province" gorm:"index"`
	Country      string   `json:"country"`
	Latitude     *float64 `json:"latitude"`
	Longitude    *float64 `json:"longitude"`

	// Nullable bounds: nil means the residence did not publish that bound.
	PriceRangeMin *int `json:"priceRangeMin"`
	PriceRangeMax *int `json:"priceRangeMax"`

	// Stay type
	HasDayCare       TriState `json:"hasDayCare"`
	HasPermanentStay TriState `json:"hasPermanentStay"`

	// Room and bath
	HasPrivateRoom TriState `json:"hasPrivateRoom"`
	HasDoubleRoom  TriState `json:"hasDoubleRoom"`
	HasSharedRoom  TriState `json:"hasSharedRoom"`
	HasPrivateBath TriState `json:"hasPrivateBath"`
	HasSharedBath  TriState `json:"hasSharedBath"`

	// Dependency level
	HasIndependentCare TriState `json:"hasIndependentCare"`
	HasSemiDependent   TriState `json:"hasSemiDependent"`
	HasDependent       TriState `json:"hasDependent"`
	HasHighComplexity  TriState `json:"hasHighComplexity"`

	// Medical coverage
	Has24hMedical                       TriState `json:"has24hMedical" gorm:"column:has_24h_medical"`
	Has24hNursing                       TriState `json:"has24hNursing" gorm:"column:has_24h_nursing"`
	HasPresentialDoctor                 TriState `json:"hasPresentialDoctor"`
	HasMedicationSupply                 TriState `json:"hasMedicationSupply"`
	HasAttentionForNeurologicalDiseases TriState `json:"hasAttentionForNeurologicalDiseases"`

	// Denormalized review aggregate, kept in sync on review create.
	// Rating is on the 0-10 scale.
	Rating      float64 `json:"rating"      gorm:"default:0;index"`
	ReviewCount int     `json:"reviewCount" gorm:"default:0"`

	MainImage string `json:"mainImage"`

	Images    []GeriatricImage   `json:"images,omitempty"    gorm:"foreignKey:GeriatricID"`
	Therapies []GeriatricTherapy `json:"therapies,omitempty" gorm:"foreignKey:GeriatricID"`
	Reviews   []ReviewModel      `json:"reviews,omitempty"   gorm:"foreignKey:GeriatricID"`
}

func (GeriatricModel) TableName() string { return "geriatrics" }

// GeriatricImage is one hosted image URL of a residence.
type GeriatricImage struct {
	Base
	GeriatricID string `json:"-"   gorm:"index;not null"`
	URL         string `json:"url" gorm:"not null"`
}

func (GeriatricImage) TableName() string { return "geriatric_images" }

// GeriatricTherapy is a join row marking a therapy a residence offers.
type GeriatricTherapy struct {
	Base
	GeriatricID string  `json:"-"       gorm:"index;not null;uniqueIndex:uniq_geriatric_therapy"`
	Therapy     Therapy `json:"therapy" gorm:"type:varchar(32);not null;uniqueIndex:uniq_geriatric_therapy"`
}

func (GeriatricTherapy) TableName() string { return "geriatric_therapies" }
