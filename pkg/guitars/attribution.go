package guitars

// SourceAttribution records the provenance of a submission. Attributions are
// never deduplicated; every accepted submission appends its attribution as
// evidence.
type SourceAttribution struct {
	SourceName       string      `json:"source_name" yaml:"source_name"`                                   // Name of the source (required, 1-100 chars)
	SourceType       *SourceType `json:"source_type,omitempty" yaml:"source_type,omitempty"`               // Type of source
	URL              *string     `json:"url,omitempty" yaml:"url,omitempty"`                               // URL to the source if available online (max 500 chars)
	ISBN             *string     `json:"isbn,omitempty" yaml:"isbn,omitempty"`                             // ISBN for books (max 20 chars)
	PublicationDate  *string     `json:"publication_date,omitempty" yaml:"publication_date,omitempty"`     // Date the source was published (YYYY-MM-DD)
	ReliabilityScore *int        `json:"reliability_score,omitempty" yaml:"reliability_score,omitempty"`   // 1 = least reliable, 10 = most reliable
	Notes            *string     `json:"notes,omitempty" yaml:"notes,omitempty"`                           // Additional information about the source
}

// Kind returns the entity kind.
func (SourceAttribution) Kind() EntityKind {
	return KindSourceAttribution
}
