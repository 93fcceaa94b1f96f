package geriatric

// CapabilityFlags carries the tri-state capability fields of a listing
// payload. A nil field leaves the stored value untouched on update and
// unknown on create.
type CapabilityFlags struct {
	HasDayCare       *bool `json:"hasDayCare"`
	HasPermanentStay *bool `json:"hasPermanentStay"`

	HasPrivateRoom *bool `json:"hasPrivateRoom"`
	HasDoubleRoom  *bool `json:"hasDoubleRoom"`
	HasSharedRoom  *bool `json:"hasSharedRoom"`
	HasPrivateBath *bool `json:"hasPrivateBath"`
	HasSharedBath  *bool `json:"hasSharedBath"`

	HasIndependentCare *bool `json:"hasIndependentCare"`
	HasSemiDependent   *bool `json:"hasSemiDependent"`
	HasDependent       *bool `json:"hasDependent"`
	HasHighComplexity  *bool `json:"hasHighComplexity"`

	Has24hMedical                       *bool `json:"has24hMedical"`
	Has24hNursing                       *bool `json:"has24hNursing"`
	HasPresentialDoctor                 *bool `json:"hasPresentialDoctor"`
	HasMedicationSupply                 *bool `json:"hasMedicationSupply"`
	HasAttentionForNeurologicalDiseases *bool `json:"hasAttentionForNeurologicalDiseases"`
}

// CreateGeriatricDTO is the create-listing payload. Images arrive as
// hosted URLs; the first becomes the main image unless one is named.
type CreateGeriatricDTO struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`

	Address      string   `json:"address"`
	Street       string   `json:"street"`
	StreetNumber string   `json:"streetNumber"`
	City         string   `json:"city"`
	Province     string   `json:"province"`
	Country      string   `json:"country"`
	Latitude     *float64 `json:"latitude"`
	Longitude    *float64 `json:"longitude"`

	PriceRangeMin *int `json:"priceRangeMin"`
	PriceRangeMax *int `json:"priceRangeMax"`

	CapabilityFlags

	MainImage string   `json:"mainImage"`
	ImageURLs []string `json:"imageUrls"`
	Therapies []string `json:"therapies"`
}

// UpdateGeriatricDTO is the update-listing payload. Nil fields are left
// unchanged; a non-nil Therapies or ImageURLs list replaces the stored
// associations wholesale.
type UpdateGeriatricDTO struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`

	Address      *string  `json:"address"`
	Street       *string  `json:"street"`
	StreetNumber *string  `json:"streetNumber"`
	City         *string  `json:"city"`
	Province     *string  `json:"province"`
	Country      *string  `json:"country"`
	Latitude     *float64 `json:"latitude"`
	Longitude    *float64 `json:"longitude"`

	PriceRangeMin *int `json:"priceRangeMin"`
	PriceRangeMax *int `json:"priceRangeMax"`

	CapabilityFlags

	MainImage *string   `json:"mainImage"`
	ImageURLs *[]string `json:"imageUrls"`
	Therapies *[]string `json:"therapies"`
}
