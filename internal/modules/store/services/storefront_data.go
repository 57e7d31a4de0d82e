package services

import (
	"fmt"

	"github.com/dukkaniai/dukkani-ai-be/internal/modules/store/models"
)

// themePresets is the fixed niche catalog. Tokens are opaque styling values
// consumed by the dashboard renderer.
var themePresets = []models.ThemePreset{
	{
		ID:          "modern",
		Niche:       "General",
		Name:        "Casablanca Clean",
		Description: "Minimalist white styling for general stores.",
		Colors: models.ThemeColors{
			Bg:          "#f8fafc",
			Card:        "#ffffff",
			Text:        "#0f172a",
			Primary:     "#0f172a",
			PrimaryText: "#ffffff",
			InputBg:     "#ffffff",
			InputBorder: "#cbd5e1",
			Price:       "#0f172a",
		},
		Font:   "sans",
		Radius: "xl",
	},
	{
		ID:          "cosmetic",
		Niche:       "Cosmetics",
		Name:        "Rose Gold Glow",
		Description: "Elegant soft pinks and serif fonts for beauty.",
		Colors: models.ThemeColors{
			Bg:          "#faf7f5",
			Card:        "#ffffff",
			Text:        "#4a4a4a",
			Primary:     "#d4a5a5",
			PrimaryText: "#ffffff",
			InputBg:     "#ffffff",
			InputBorder: "#ebd4d4",
			Price:       "#d4a5a5",
		},
		Font:   "serif",
		Radius: "2xl",
	},
	{
		ID:          "fitness",
		Niche:       "Fitness",
		Name:        "Iron Gym Dark",
		Description: "High energy dark mode with neon accents.",
		Colors: models.ThemeColors{
			Bg:          "#1a1a1a",
			Card:        "#252525",
			Text:        "#ffffff",
			Primary:     "#ccff00",
			PrimaryText: "#000000",
			InputBg:     "#ffffff",
			InputBorder: "#cbd5e1",
			Price:       "#ccff00",
		},
		Font:   "sans",
		Radius: "sm",
	},
	{
		ID:          "gaming",
		Niche:       "Gaming",
		Name:        "Cyberpunk Neon",
		Description: "Futuristic purple/blue vibes for tech & gaming.",
		Colors: models.ThemeColors{
			Bg:          "#0f0f16",
			Card:        "#181824",
			Text:        "#ffffff",
			Primary:     "#7000ff",
			PrimaryText: "#ffffff",
			InputBg:     "#ffffff",
			InputBorder: "#7000ff",
			Price:       "#00ffe1",
		},
		Font:   "mono",
		Radius: "none",
	},
	{
		ID:          "health",
		Niche:       "Health",
		Name:        "MediCare Pure",
		Description: "Trustworthy blues and greens for health products.",
		Colors: models.ThemeColors{
			Bg:          "#f0f9ff",
			Card:        "#ffffff",
			Text:        "#0f172a",
			Primary:     "#0ea5e9",
			PrimaryText: "#ffffff",
			InputBg:     "#ffffff",
			InputBorder: "#bae6fd",
			Price:       "#0284c7",
		},
		Font:   "sans",
		Radius: "lg",
	},
	{
		ID:          "car",
		Niche:       "Automotive",
		Name:        "Turbo Carbon",
		Description: "Aggressive blacks and reds for car accessories.",
		Colors: models.ThemeColors{
			Bg:          "#111111",
			Card:        "#1c1c1c",
			Text:        "#ffffff",
			Primary:     "#ef4444",
			PrimaryText: "#ffffff",
			InputBg:     "#ffffff",
			InputBorder: "#ef4444",
			Price:       "#ef4444",
		},
		Font:   "sans",
		Radius: "md",
	},
	{
		ID:          "animals",
		Niche:       "Pets",
		Name:        "Happy Paws",
		Description: "Warm playful tones for pet shops.",
		Colors: models.ThemeColors{
			Bg:          "#fffbeb",
			Card:        "#ffffff",
			Text:        "#44403c",
			Primary:     "#d97706",
			PrimaryText: "#ffffff",
			InputBg:     "#ffffff",
			InputBorder: "#fde68a",
			Price:       "#d97706",
		},
		Font:   "sans",
		Radius: "xl",
	},
}

// buyerNotices is the static "recent purchase" pool.
var buyerNotices = []models.BuyerNotice{
	{Name: "Salma", City: "Casablanca", Time: "1 min ago"},
	{Name: "Omar", City: "Rabat", Time: "Just now"},
	{Name: "Fatima", City: "Marrakech", Time: "2 mins ago"},
	{Name: "Youssef", City: "Tanger", Time: "5 mins ago"},
	{Name: "Hajar", City: "Agadir", Time: "Just now"},
}

var reviewerNames = []string{
	"Ahmed B.", "Fatima Z.", "Karim M.", "Sara L.",
	"Omar K.", "Yasmine R.", "Mehdi T.", "Khadija S.",
}

var genericReviews = []string{
	"Excellent quality, delivered fast to Casa.",
	"Exactement comme sur la photo. Merci!",
	"Good product for the price. Recommended.",
	"Service client top, j'ai reçu ma commande en 24h.",
	"J'adore! Je vais commander encore.",
	"Produit magnifique, merci pour le cadeau.",
	"Top quality, very satisfied.",
}

var nicheReviews = map[string][]string{
	"Fitness": {
		"Solid grip, great for workouts.",
		"The material is sweat resistant. Love it.",
		"Best gym gear I've bought in Morocco.",
		"Perfect fit.",
	},
	"Cosmetics": {
		"Texture incroyable, ça sent très bon.",
		"Ma peau est plus douce après une semaine.",
		"Le packaging est magnifique.",
		"Couleur parfaite.",
	},
	"Gaming": {
		"RGB lights are insane!",
		"Improved my aim significantly.",
		"Very responsive click feel.",
		"Works great with PS5.",
	},
	"Automotive": {
		"Fits my car perfectly.",
		"Very shiny finish, easy to apply.",
		"Makes the interior look brand new.",
		"High quality material.",
	},
	"Pets": {
		"My cat loves it!",
		"Durable toy, my dog can't destroy it.",
		"Super cute design.",
		"Easy to clean.",
	},
}

// mockProducts builds the static ten-entry preview catalog.
func mockProducts() []models.MockProduct {
	products := make([]models.MockProduct, 10)
	for i := range products {
		name := fmt.Sprintf("Trending Item %d", i+1)
		if i == 0 {
			name = "Premium Ultra Product X"
		}

		thumbnails := make([]string, 5)
		for j := range thumbnails {
			thumbnails[j] = fmt.Sprintf("https://picsum.photos/seed/%d/800/800", i+400+j)
		}

		products[i] = models.MockProduct{
			ID:         i,
			Name:       name,
			Price:      float64(199 + i*20),
			Image:      thumbnails[0],
			Thumbnails: thumbnails,
		}
	}
	return products
}
