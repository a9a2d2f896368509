package catalog

import "github.com/shopspring/decimal"

// Seed returns the static product set used when no snapshot exists. Prices
// are currency-agnostic magnitudes (the storefront renders them as PHP).
func Seed() []Product {
	return []Product{
		{
			ID:          "cam-1",
			Name:        "Pixora A7 Mirrorless Body",
			Category:    "Cameras",
			Price:       decimal.NewFromInt(10000),
			Image:       "/images/cam-1.jpg",
			Description: "Compact full-frame body tuned for hybrid shooters, with dual card slots and in-body stabilization.",
			Highlights:  []string{"24MP full-frame sensor", "5-axis stabilization", "Dual UHS-II slots"},
		},
		{
			ID:          "cam-2",
			Name:        "Pixora S1 Street Compact",
			Category:    "Cameras",
			Price:       decimal.NewFromInt(64990),
			Image:       "/images/cam-2.jpg",
			Description: "Pocketable APS-C compact with a fixed 28mm lens for everyday documentary work.",
			Highlights:  []string{"APS-C sensor", "Leaf shutter", "Weather sealed"},
		},
		{
			ID:          "lens-1",
			Name:        "35mm f/1.8 Prime",
			Category:    "Lenses",
			Price:       decimal.NewFromInt(18990),
			Image:       "/images/lens-1.jpg",
			Description: "Lightweight wide prime with fast, silent autofocus. The do-everything focal length.",
			Highlights:  []string{"f/1.8 aperture", "Silent stepping motor", "290g"},
		},
		{
			ID:          "lens-2",
			Name:        "24-70mm f/2.8 Zoom",
			Category:    "Lenses",
			Price:       decimal.NewFromInt(52990),
			Image:       "/images/lens-2.jpg",
			Description: "Constant-aperture workhorse zoom for events and commercial shoots.",
			Highlights:  []string{"Constant f/2.8", "Nano coating", "Dust and moisture resistant"},
		},
		{
			ID:          "acc-1",
			Name:        "Pro Leather Camera Strap",
			Category:    "Accessories",
			Price:       decimal.NewFromInt(1490),
			Image:       "/images/acc-1.jpg",
			Description: "Full-grain leather strap with quick-release anchors.",
			Highlights:  []string{"Full-grain leather", "Quick release"},
		},
		{
			ID:          "acc-2",
			Name:        "128GB UHS-II SD Card",
			Category:    "Accessories",
			Price:       decimal.NewFromInt(3490),
			Image:       "/images/acc-2.jpg",
			Description: "V90-rated card for 4K and burst shooting.",
			Highlights:  []string{"300MB/s read", "V90 rated"},
		},
		{
			ID:          "audio-1",
			Name:        "Shotgun Microphone Kit",
			Category:    "Audio",
			Price:       decimal.NewFromInt(8990),
			Image:       "/images/audio-1.jpg",
			Description: "On-camera shotgun mic with windshield and shock mount.",
			Highlights:  []string{"Supercardioid pickup", "Battery-free operation", "Includes deadcat"},
		},
		{
			ID:          "light-1",
			Name:        "LED Panel Duo",
			Category:    "Lighting",
			Price:       decimal.NewFromInt(12990),
			Image:       "/images/light-1.jpg",
			Description: "Two bi-color LED panels with stands and soft diffusion.",
			Highlights:  []string{"Bi-color 3200-5600K", "CRI 96+", "Includes stands"},
		},
	}
}

// SeedImage is the image used when an external record carries none.
func SeedImage() string {
	return Seed()[0].Image
}

// SeedCategory is the default category for admin-created products.
func SeedCategory() string {
	return Seed()[0].Category
}
