package swapi

import "time"

// Person is one entry of the people/ endpoint. Numeric attributes are kept as
// served because the API uses strings such as "unknown" and "1,358".
type Person struct {
	Name      string    `json:"name"`
	Height    string    `json:"height"`
	Mass      string    `json:"mass"`
	HairColor string    `json:"hair_color"`
	SkinColor string    `json:"skin_color"`
	EyeColor  string    `json:"eye_color"`
	Gender    string    `json:"gender"`
	BirthYear string    `json:"birth_year"`
	Created   time.Time `json:"created"`
	Edited    time.Time `json:"edited"`
	Films     []string  `json:"films"`
	Species   []string  `json:"species"`
	Vehicles  []string  `json:"vehicles"`
	Starships []string  `json:"starships"`
	URL       string    `json:"url"`
}

// Refs returns the person's reference list for kind.
func (p Person) Refs(kind Kind) []string {
	switch kind {
	case KindFilm:
		return p.Films
	case KindSpecies:
		return p.Species
	case KindVehicle:
		return p.Vehicles
	case KindStarship:
		return p.Starships
	}
	return nil
}

// Kind identifies the type of record a reference points at.
type Kind string

const (
	KindFilm     Kind = "film"
	KindSpecies  Kind = "species"
	KindVehicle  Kind = "vehicle"
	KindStarship Kind = "starship"
)

// Kinds lists every reference kind in display order.
var Kinds = []Kind{KindFilm, KindSpecies, KindVehicle, KindStarship}

// LabelField is the JSON field that holds the display label for kind.
func (k Kind) LabelField() string {
	if k == KindFilm {
		return "title"
	}
	return "name"
}
