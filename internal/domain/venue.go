package domain

// Media is an image with accessible alt text, used for venue galleries and avatars.
type Media struct {
	URL string `json:"url"`
	Alt string `json:"alt"`
}

// Location holds the venue's place information.
type Location struct {
	City    string `json:"city"`
	Country string `json:"country"`
}

// Amenities holds the venue amenity flags.
type Amenities struct {
	Wifi      bool `json:"wifi"`
	Parking   bool `json:"parking"`
	Breakfast bool `json:"breakfast"`
	Pets      bool `json:"pets"`
}

// Venue represents a bookable listing. Ownership and persistence live with the
// remote API; a Venue held here is a snapshot owned by whichever call fetched it.
type Venue struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Price       float64   `json:"price"`
	MaxGuests   int       `json:"maxGuests"`
	Rating      float64   `json:"rating"`
	Location    Location  `json:"location"`
	Meta        Amenities `json:"meta"`
	Media       []Media   `json:"media"`
	Owner       *Profile  `json:"owner,omitempty"`
	Bookings    []Booking `json:"bookings,omitempty"`
}

// Validate validates all venue fields.
func (v *Venue) Validate() error {
	if err := v.ValidateName(); err != nil {
		return err
	}
	if err := v.ValidatePrice(); err != nil {
		return err
	}
	if err := v.ValidateMaxGuests(); err != nil {
		return err
	}
	if err := v.ValidateRating(); err != nil {
		return err
	}
	return nil
}

// ValidateName validates the venue name.
func (v *Venue) ValidateName() error {
	if v.Name == "" {
		return ErrInvalidVenueName
	}
	return nil
}

// ValidatePrice validates the nightly price.
func (v *Venue) ValidatePrice() error {
	if v.Price < 0 {
		return ErrInvalidVenuePrice
	}
	return nil
}

// ValidateMaxGuests validates the guest capacity.
func (v *Venue) ValidateMaxGuests() error {
	if v.MaxGuests <= 0 {
		return ErrInvalidMaxGuests
	}
	return nil
}

// ValidateRating validates the rating range.
func (v *Venue) ValidateRating() error {
	if v.Rating < 0 || v.Rating > 5 {
		return ErrInvalidRating
	}
	return nil
}

// IsOwnedBy reports whether the venue belongs to the manager with the given handle.
func (v *Venue) IsOwnedBy(name string) bool {
	return v.Owner != nil && name != "" && v.Owner.Name == name
}
