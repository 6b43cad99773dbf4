package guitars

// Model represents a guitar model as it appears in manufacturer catalogs.
type Model struct {
	ManufacturerName  string         `json:"manufacturer_name" yaml:"manufacturer_name"`                               // Manufacturer name, resolved to a manufacturer id during processing
	ProductLine       *string        `json:"product_line_name,omitempty" yaml:"product_line_name,omitempty"`           // Product series or line name
	Name              string         `json:"name" yaml:"name"`                                                         // Model name (required, 1-150 chars)
	Year              *int           `json:"year,omitempty" yaml:"year,omitempty"`                                     // Year the model was introduced
	ProductionType    ProductionType `json:"production_type,omitempty" yaml:"production_type,omitempty"`               // Production volume type (defaults to mass)
	EstimatedQuantity *int           `json:"estimated_production_quantity,omitempty" yaml:"estimated_production_quantity,omitempty"` // Total units produced
	MSRPOriginal      *float64       `json:"msrp_original,omitempty" yaml:"msrp_original,omitempty"`                   // Original retail price
	Currency          string         `json:"currency,omitempty" yaml:"currency,omitempty"`                             // ISO currency code (defaults to USD)
	Description       *string        `json:"description,omitempty" yaml:"description,omitempty"`                       // Detailed description of the model
}

// Kind returns the entity kind.
func (Model) Kind() EntityKind {
	return KindModel
}
