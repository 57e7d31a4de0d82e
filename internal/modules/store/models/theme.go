package models

// ThemeColors is the color token bundle of a preset.
type ThemeColors struct {
	Bg          string `json:"bg"`
	Card        string `json:"card"`
	Text        string `json:"text"`
	Primary     string `json:"primary"`
	PrimaryText string `json:"primary_text"`
	InputBg     string `json:"input_bg"`
	InputBorder string `json:"input_border"`
	Price       string `json:"price"`
}

// ThemePreset is an immutable compile-time bundle of visual styling tokens
// for a merchant niche. Presets are selected, never mutated.
type ThemePreset struct {
	ID          string      `json:"id"`
	Niche       string      `json:"niche"`
	Name        string      `json:"name"`
	Description string      `json:"description"`
	Colors      ThemeColors `json:"colors"`
	Font        string      `json:"font"`
	Radius      string      `json:"radius"`
}

// MockProduct is a static storefront-preview catalog entry.
type MockProduct struct {
	ID         int      `json:"id"`
	Name       string   `json:"name"`
	Price      float64  `json:"price"`
	Image      string   `json:"image"`
	Thumbnails []string `json:"thumbnails"`
}

// MockReview is a generated storefront-preview review.
type MockReview struct {
	ID    int    `json:"id"`
	Name  string `json:"name"`
	Text  string `json:"text"`
	Stars int    `json:"stars"`
	Date  string `json:"date"`
}

// BuyerNotice is one entry of the static "recent purchase" pool.
type BuyerNotice struct {
	Name string `json:"name"`
	City string `json:"city"`
	Time string `json:"time"`
}

// CartItem is an ephemeral preview-cart line.
type CartItem struct {
	Product  MockProduct `json:"product"`
	Quantity int         `json:"quantity"`
}

// AddToCartRequest adds a mock product to a preview session cart.
type AddToCartRequest struct {
	ProductID int `json:"product_id"`
	Quantity  int `json:"quantity"`
}

// SelectThemeRequest switches the active preset of a preview session.
type SelectThemeRequest struct {
	ThemeID string `json:"theme_id"`
}
