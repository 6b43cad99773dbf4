package guitars

// ManufacturerStatus represents a manufacturer's operational status.
type ManufacturerStatus string

// String returns the string representation of a ManufacturerStatus.
func (s ManufacturerStatus) String() string {
	return string(s)
}

// Manufacturer statuses.
const (
	ManufacturerStatusActive   ManufacturerStatus = "active"
	ManufacturerStatusDefunct  ManufacturerStatus = "defunct"
	ManufacturerStatusAcquired ManufacturerStatus = "acquired"
)

// Valid reports whether the status is a known value.
func (s ManufacturerStatus) Valid() bool {
	switch s {
	case ManufacturerStatusActive, ManufacturerStatusDefunct, ManufacturerStatusAcquired:
		return true
	}
	return false
}

// ProductionType represents a model's production volume type.
type ProductionType string

// String returns the string representation of a ProductionType.
func (p ProductionType) String() string {
	return string(p)
}

// Production types.
const (
	ProductionTypeMass      ProductionType = "mass"
	ProductionTypeLimited   ProductionType = "limited"
	ProductionTypeCustom    ProductionType = "custom"
	ProductionTypePrototype ProductionType = "prototype"
	ProductionTypeOneOff    ProductionType = "one-off"
)

// Valid reports whether the production type is a known value.
func (p ProductionType) Valid() bool {
	switch p {
	case ProductionTypeMass, ProductionTypeLimited, ProductionTypeCustom,
		ProductionTypePrototype, ProductionTypeOneOff:
		return true
	}
	return false
}

// SignificanceLevel represents the historical significance of an instrument.
type SignificanceLevel string

// String returns the string representation of a SignificanceLevel.
func (s SignificanceLevel) String() string {
	return string(s)
}

// Significance levels.
const (
	SignificanceHistoric SignificanceLevel = "historic"
	SignificanceNotable  SignificanceLevel = "notable"
	SignificanceRare     SignificanceLevel = "rare"
	SignificanceCustom   SignificanceLevel = "custom"
)

// Valid reports whether the significance level is a known value.
func (s SignificanceLevel) Valid() bool {
	switch s {
	case SignificanceHistoric, SignificanceNotable, SignificanceRare, SignificanceCustom:
		return true
	}
	return false
}

// ConditionRating represents an instrument's condition.
type ConditionRating string

// String returns the string representation of a ConditionRating.
func (c ConditionRating) String() string {
	return string(c)
}

// Condition ratings.
const (
	ConditionMint      ConditionRating = "mint"
	ConditionExcellent ConditionRating = "excellent"
	ConditionVeryGood  ConditionRating = "very_good"
	ConditionGood      ConditionRating = "good"
	ConditionFair      ConditionRating = "fair"
	ConditionPoor      ConditionRating = "poor"
	ConditionRelic     ConditionRating = "relic"
)

// Valid reports whether the condition rating is a known value.
func (c ConditionRating) Valid() bool {
	switch c {
	case ConditionMint, ConditionExcellent, ConditionVeryGood,
		ConditionGood, ConditionFair, ConditionPoor, ConditionRelic:
		return true
	}
	return false
}

// SourceType represents the type of a data source.
type SourceType string

// String returns the string representation of a SourceType.
func (s SourceType) String() string {
	return string(s)
}

// Source types.
const (
	SourceTypeManufacturerCatalog SourceType = "manufacturer_catalog"
	SourceTypeAuctionRecord       SourceType = "auction_record"
	SourceTypeMuseum              SourceType = "museum"
	SourceTypeBook                SourceType = "book"
	SourceTypeWebsite             SourceType = "website"
	SourceTypeManualEntry         SourceType = "manual_entry"
	SourceTypePriceGuide          SourceType = "price_guide"
)

// Valid reports whether the source type is a known value.
func (s SourceType) Valid() bool {
	switch s {
	case SourceTypeManufacturerCatalog, SourceTypeAuctionRecord, SourceTypeMuseum,
		SourceTypeBook, SourceTypeWebsite, SourceTypeManualEntry, SourceTypePriceGuide:
		return true
	}
	return false
}
