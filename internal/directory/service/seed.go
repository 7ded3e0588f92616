package service

import "github.com/GoSim-25-26J-441/profile-directory/internal/directory/domain"

// Photo paths for the seed records; the browser page serves them as assets.
const (
	seedPhotoKartik = "/assets/kartik.webp"
	seedPhotoVirat  = "/assets/virat.jpg"
)

// DefaultProfiles is the directory a fresh session starts with.
func DefaultProfiles() []domain.Profile {
	return []domain.Profile{
		{
			ID:          1,
			Name:        "Kartik Aaryan",
			Photo:       seedPhotoKartik,
			Description: "Frontend Developer",
			City:        "Mumbai",
			Location:    domain.Location{Lat: 19.0760, Lng: 72.8777},
		},
		{
			ID:          2,
			Name:        "Virat Kohli",
			Photo:       seedPhotoVirat,
			Description: "Backend Engineer",
			City:        "pune",
			Location:    domain.Location{Lat: 18.516726, Lng: 73.856255},
		},
	}
}
