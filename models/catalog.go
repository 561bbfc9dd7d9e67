package models

import "time"

// BookableService is a service that can be selected in the booking flow.
type BookableService struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Duration string  `json:"duration"`
	Price    float64 `json:"price"`
}

// MenuItem is a single priced entry on the studio's service menu.
// Prices are kept as display strings, the menu is render-only.
type MenuItem struct {
	Name     string `json:"name"`
	Price    string `json:"price"`
	Duration string `json:"duration"`
}

// MenuSection groups menu items under a heading (e.g. "Haircuts").
type MenuSection struct {
	Name  string     `json:"name"`
	Items []MenuItem `json:"items"`
}

// MenuCategory is a top-level block of the service menu.
type MenuCategory struct {
	Category string        `json:"category"`
	Sections []MenuSection `json:"sections"`
}

// MembershipTier is a render-only membership plan.
type MembershipTier struct {
	Name     string   `json:"name"`
	Price    string   `json:"price"`
	Duration string   `json:"duration"`
	Features []string `json:"features"`
	Popular  bool     `json:"popular"`
}

// GalleryImage is a render-only gallery entry.
type GalleryImage struct {
	URL         string `json:"url"`
	Client      string `json:"client,omitempty"`
	Orientation string `json:"orientation"`
}

// BlogPost is a read-only catalog article. Likes and Comments are the base
// counts; per-viewer like state is layered on top and never written back here.
type BlogPost struct {
	ID       string    `json:"id"`
	Title    string    `json:"title"`
	Excerpt  string    `json:"excerpt"`
	Content  string    `json:"content"`
	Image    string    `json:"image"`
	Category string    `json:"category"`
	Date     time.Time `json:"date"`
	ReadTime string    `json:"read_time"`
	Likes    int       `json:"likes"`
	Comments int       `json:"comments"`
	Tags     []string  `json:"tags"`
}

// SearchResult is an entry in the static search index.
type SearchResult struct {
	ID          string  `json:"id"`
	Type        string  `json:"type"` // service, product or blog
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Price       float64 `json:"price,omitempty"`
	Image       string  `json:"image"`
}
