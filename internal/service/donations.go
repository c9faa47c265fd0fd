package service

import "github.com/moramnavadeep/FreshNCook/internal/types"

// donationLocations is the curated directory shown when a user wants to
// donate surplus food instead of letting it expire.
var donationLocations = []types.DonationLocation{
	{
		Name:    "The Akshaya Patra Foundation",
		Address: "Vasanthapura, Bengaluru, Karnataka",
		Phone:   "+91 80 3014 3400",
		Type:    "charity",
	},
	{
		Name:    "Goonj - Head Office",
		Address: "Sarita Vihar, New Delhi, Delhi",
		Phone:   "+91 11 4140 1216",
		Type:    "charity",
	},
	{
		Name:    "Roti Bank by Dabbawala",
		Address: "Lower Parel, Mumbai, Maharashtra",
		Phone:   "+91 98672 21310",
		Type:    "charity",
	},
	{
		Name:    "Annapoorna Food Bank",
		Address: "Banjara Hills, Hyderabad, Telangana",
		Phone:   "+91 40 2335 5555",
		Type:    "charity",
	},
}

// DonationLocations returns the donation directory.
func DonationLocations() []types.DonationLocation {
	return donationLocations
}
