package dto

import (
	"github.com/AnnaAaBrekke/PE2-holidaze/internal/domain"
	"github.com/AnnaAaBrekke/PE2-holidaze/internal/holidaze"
)

// VenueRequest is the create/update payload for a venue listing.
type VenueRequest struct {
	Name        string       `json:"name" binding:"required,min=1,max=100"`
	Description string       `json:"description" binding:"required"`
	Price       float64      `json:"price" binding:"required,gt=0"`
	MaxGuests   int          `json:"maxGuests" binding:"required,gte=1"`
	Rating      float64      `json:"rating" binding:"gte=0,lte=5"`
	City        string       `json:"city,omitempty"`
	Country     string       `json:"country,omitempty"`
	Media       []MediaInput `json:"media,omitempty" binding:"omitempty,max=8,dive"`
	Wifi        bool         `json:"wifi"`
	Parking     bool         `json:"parking"`
	Breakfast   bool         `json:"breakfast"`
	Pets        bool         `json:"pets"`
}

type MediaInput struct {
	URL string `json:"url" binding:"required,url"`
	Alt string `json:"alt,omitempty" binding:"omitempty,max=120"`
}

// ToUpstream converts the request into the remote API's venue payload.
func (r *VenueRequest) ToUpstream() *holidaze.VenueRequest {
	req := &holidaze.VenueRequest{
		Name:        r.Name,
		Description: r.Description,
		Price:       r.Price,
		MaxGuests:   r.MaxGuests,
		Rating:      r.Rating,
		Location:    domain.Location{City: r.City, Country: r.Country},
		Meta: domain.Amenities{
			Wifi:      r.Wifi,
			Parking:   r.Parking,
			Breakfast: r.Breakfast,
			Pets:      r.Pets,
		},
	}
	for _, m := range r.Media {
		req.Media = append(req.Media, domain.Media{URL: m.URL, Alt: m.Alt})
	}
	return req
}

func mediaFrom(url, alt string) *domain.Media {
	return &domain.Media{URL: url, Alt: alt}
}
