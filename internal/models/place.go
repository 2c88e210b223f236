package models

import "strings"

// Place holds the administrative place names resolved for a coordinate pair.
// Which fields are filled depends entirely on the geocoding provider; fields
// the provider did not return stay empty.
type Place struct {
	Country          string `json:"country,omitempty"`
	AdminArea1       string `json:"administrative_area_level_1,omitempty"`
	AdminArea2       string `json:"administrative_area_level_2,omitempty"`
	Locality         string `json:"locality,omitempty"`
	Sublocality      string `json:"sublocality,omitempty"`
	FormattedAddress string `json:"formatted_address,omitempty"`
}

// Key returns a stable identity for the place built from its administrative
// fields, used to count distinct places across a run.
func (p Place) Key() string {
	return strings.Join([]string{p.Country, p.AdminArea1, p.AdminArea2, p.Locality, p.Sublocality}, "|")
}

// IsZero reports whether the provider returned no usable place fields.
func (p Place) IsZero() bool {
	return p == Place{}
}
