// Package catalog holds the studio's static, read-only records: bookable
// services, the full service menu, membership tiers, blog posts, gallery
// images and the search index. Nothing here is ever mutated at runtime.
package catalog

import (
	"time"

	"studio-service/models"
)

// TimeSlots are the bookable appointment slots for any day.
var TimeSlots = []string{
	"09:00 AM", "10:00 AM", "11:00 AM", "12:00 PM",
	"01:00 PM", "02:00 PM", "03:00 PM", "04:00 PM",
	"05:00 PM", "06:00 PM", "07:00 PM",
}

// BookableServices are the services selectable in the booking flow.
var BookableServices = []models.BookableService{
	{ID: "haircut", Name: "Luxury Haircut", Duration: "1h", Price: 2999},
	{ID: "facial", Name: "Premium Facial", Duration: "1.5h", Price: 3999},
	{ID: "massage", Name: "Relaxation Massage", Duration: "1h", Price: 4999},
	{ID: "bridal", Name: "Bridal Package", Duration: "4h", Price: 24999},
}

// ServiceByID looks up a bookable service. The second return is false when
// the id is unknown.
func ServiceByID(id string) (models.BookableService, bool) {
	for _, svc := range BookableServices {
		if svc.ID == id {
			return svc, true
		}
	}
	return models.BookableService{}, false
}

// ValidTimeSlot reports whether the slot is one of the bookable slots.
func ValidTimeSlot(slot string) bool {
	for _, s := range TimeSlots {
		if s == slot {
			return true
		}
	}
	return false
}

// Menu is the full display-only service menu.
var Menu = []models.MenuCategory{
	{
		Category: "Hair Services",
		Sections: []models.MenuSection{
			{Name: "Haircuts", Items: []models.MenuItem{
				{Name: "Little Miss Princess", Price: "₹800", Duration: "30 mins"},
				{Name: "Creative Cut", Price: "₹2,200", Duration: "45 mins"},
				{Name: "Cut and Finish", Price: "₹1,500", Duration: "60 mins"},
				{Name: "Fringes", Price: "₹700", Duration: "15 mins"},
			}},
			{Name: "Hair Wash & Styling", Items: []models.MenuItem{
				{Name: "Loreal Hair Wash", Price: "₹600", Duration: "30 mins"},
				{Name: "Kerastase Hair Wash", Price: "₹900", Duration: "45 mins"},
				{Name: "Wash & Blow Dry (Loreal)", Price: "₹800", Duration: "45 mins"},
				{Name: "Wash & Blow Dry (Kerastase)", Price: "₹1,200", Duration: "60 mins"},
			}},
			{Name: "Hair Treatments", Items: []models.MenuItem{
				{Name: "Olaplex Treatment", Price: "₹3,000", Duration: "90 mins"},
				{Name: "Keratin Treatment", Price: "₹9,000", Duration: "2-3 hours"},
				{Name: "Smoothening", Price: "₹4,500", Duration: "2 hours"},
				{Name: "Hair Botox", Price: "₹10,000", Duration: "2 hours"},
			}},
			{Name: "Color Services", Items: []models.MenuItem{
				{Name: "Root Touch Up", Price: "₹2,200", Duration: "60 mins"},
				{Name: "Global Color", Price: "₹4,000", Duration: "90 mins"},
				{Name: "Partial Highlights", Price: "₹3,000", Duration: "75 mins"},
				{Name: "Global Highlights", Price: "₹5,000", Duration: "120 mins"},
			}},
		},
	},
	{
		Category: "Skin & Beauty",
		Sections: []models.MenuSection{
			{Name: "Cleanup Services", Items: []models.MenuItem{
				{Name: "Simple Rejuvenating", Price: "₹800", Duration: "30 mins"},
				{Name: "Hydrating Cleanup", Price: "₹900", Duration: "45 mins"},
				{Name: "Insta Glow Cleanup", Price: "₹1,800", Duration: "60 mins"},
			}},
			{Name: "Facial Treatments", Items: []models.MenuItem{
				{Name: "Hydra Facial", Price: "₹1,900", Duration: "60 mins"},
				{Name: "Skin Lightening Facial", Price: "₹2,000", Duration: "75 mins"},
				{Name: "Regenerating Facial", Price: "₹2,500", Duration: "90 mins"},
				{Name: "Age Revival Facial", Price: "₹3,000", Duration: "90 mins"},
				{Name: "Bridal Brightening Facial", Price: "₹6,500", Duration: "120 mins"},
			}},
			{Name: "Body Treatments", Items: []models.MenuItem{
				{Name: "Classic Body Polishing", Price: "₹6,000", Duration: "60 mins"},
				{Name: "Signature Body Polishing", Price: "₹8,000", Duration: "90 mins"},
				{Name: "Classic Scrub & Steam", Price: "₹3,000", Duration: "45 mins"},
			}},
			{Name: "Massage Services", Items: []models.MenuItem{
				{Name: "Head Massage", Price: "₹1,700", Duration: "30 mins"},
				{Name: "Neck & Shoulder Massage", Price: "₹800", Duration: "30 mins"},
				{Name: "Body Massage", Price: "₹3,000", Duration: "60 mins"},
			}},
		},
	},
	{
		Category: "Bridal & Special Packages",
		Sections: []models.MenuSection{
			{Name: "Bridal Packages", Items: []models.MenuItem{
				{Name: "Bride Package", Price: "₹15,000", Duration: "4-5 hours"},
				{Name: "Wedding Set Go Package", Price: "₹25,000", Duration: "6-7 hours"},
				{Name: "Can Knot Wait Package", Price: "₹30,000", Duration: "Full Day"},
			}},
			{Name: "Maternity Packages", Items: []models.MenuItem{
				{Name: "Mom-to-Be Glow Package", Price: "₹3,000", Duration: "90 mins"},
				{Name: "Mom to be Serenity Package", Price: "₹6,000", Duration: "2 hours"},
				{Name: "Baby Moon Bliss Package", Price: "₹9,000", Duration: "2.5 hours"},
			}},
			{Name: "New Mama Packages", Items: []models.MenuItem{
				{Name: "Rejuvenation Package", Price: "₹8,000", Duration: "2 hours"},
				{Name: "Post-baby Bliss Package", Price: "₹12,000", Duration: "3 hours"},
				{Name: "Mom Glow Package", Price: "₹5,000", Duration: "1.5 hours"},
			}},
		},
	},
	{
		Category: "Additional Services",
		Sections: []models.MenuSection{
			{Name: "Makeup Services", Items: []models.MenuItem{
				{Name: "Trail Makeup", Price: "₹3,000", Duration: "60 mins"},
				{Name: "Party Makeup", Price: "₹6,000", Duration: "90 mins"},
				{Name: "Royal Bash Makeup", Price: "₹25,000", Duration: "3 hours"},
				{Name: "Kids Makeover", Price: "₹3,000", Duration: "45 mins"},
			}},
		},
	},
}

// MembershipTiers are the studio's membership plans.
var MembershipTiers = []models.MembershipTier{
	{
		Name: "Silver", Price: "4,999", Duration: "3 months",
		Features: []string{
			"10% off on all services",
			"Priority booking",
			"Complimentary hair spa",
			"Birthday special offers",
		},
	},
	{
		Name: "Gold", Price: "9,999", Duration: "6 months", Popular: true,
		Features: []string{
			"20% off on all services",
			"VIP priority booking",
			"Monthly hair spa",
			"Quarterly facial",
			"Birthday month free service",
		},
	},
	{
		Name: "Platinum", Price: "19,999", Duration: "12 months",
		Features: []string{
			"30% off on all services",
			"Exclusive VIP booking",
			"Unlimited hair spa",
			"Monthly facial",
			"Quarterly makeover",
			"Birthday month luxury package",
		},
	},
}

// GalleryImages are the render-only gallery entries.
var GalleryImages = []models.GalleryImage{
	{URL: "1-2.png", Orientation: "portrait"},
	{URL: "1-1.png", Client: "Sarah Parker", Orientation: "portrait"},
	{URL: "3.jpeg", Client: "Lisa Anderson", Orientation: "landscape"},
	{URL: "3.png", Client: "Lisa Anderson", Orientation: "portrait"},
	{URL: "5.jpeg", Client: "Lisa Anderson", Orientation: "landscape"},
	{URL: "2-1.png", Client: "Lisa Anderson", Orientation: "landscape"},
	{URL: "52.png", Client: "Lisa Anderson", Orientation: "landscape"},
	{URL: "4-2.png", Client: "Lisa Anderson", Orientation: "landscape"},
	{URL: "32.png", Client: "Lisa Anderson", Orientation: "portrait"},
	{URL: "2.png", Client: "Lisa Anderson", Orientation: "portrait"},
}

// BlogCategories are the fixed filter buttons, "All" included.
var BlogCategories = []string{"All", "Hair Care", "Skincare", "Makeup", "Bridal", "Wellness"}

// BlogPosts is the article catalog.
var BlogPosts = []models.BlogPost{
	{
		ID:       "1",
		Title:    "Top 10 Hair Care Tips for Summer",
		Excerpt:  "Protect your hair from the summer heat with these expert tips...",
		Content:  "Full detailed article content about summer hair care...",
		Image:    "https://images.unsplash.com/photo-1562322140-8baeececf3df?auto=format&fit=crop&q=80",
		Category: "Hair Care",
		Date:     mustDate("Mar 15, 2024"),
		ReadTime: "5 min read",
		Likes:    245,
		Comments: 18,
		Tags:     []string{"summer", "hair", "care"},
	},
	{
		ID:       "2",
		Title:    "The Ultimate Bridal Beauty Timeline",
		Excerpt:  "Plan your perfect bridal look with our month-by-month guide...",
		Content:  "Comprehensive guide to bridal beauty preparation...",
		Image:    "https://images.unsplash.com/photo-1560066984-138dadb4c035?auto=format&fit=crop&q=80",
		Category: "Bridal",
		Date:     mustDate("Mar 12, 2024"),
		ReadTime: "8 min read",
		Likes:    189,
		Comments: 24,
		Tags:     []string{"wedding", "beauty", "preparation"},
	},
	{
		ID:       "3",
		Title:    "Natural Skincare Secrets Revealed",
		Excerpt:  "Discover ancient beauty secrets for radiant skin...",
		Content:  "In-depth exploration of natural skincare techniques...",
		Image:    "https://images.unsplash.com/photo-1487412720507-e7ab37603c6f?auto=format&fit=crop&q=80",
		Category: "Skincare",
		Date:     mustDate("Mar 10, 2024"),
		ReadTime: "6 min read",
		Likes:    312,
		Comments: 29,
		Tags:     []string{"skincare", "natural", "beauty"},
	},
}

// PostByID looks up a catalog post.
func PostByID(id string) (models.BlogPost, bool) {
	for _, post := range BlogPosts {
		if post.ID == id {
			return post, true
		}
	}
	return models.BlogPost{}, false
}

// SearchIndex is the static index behind the mocked search.
var SearchIndex = []models.SearchResult{
	{
		ID: "1", Type: "service",
		Title:       "Luxury Hair Treatment",
		Description: "Premium hair care service with organic products",
		Price:       2999,
		Image:       "https://images.unsplash.com/photo-1560066984-138dadb4c035?auto=format&fit=crop&q=80",
	},
	{
		ID: "2", Type: "product",
		Title:       "Organic Hair Oil",
		Description: "Natural hair oil for healthy growth",
		Price:       999,
		Image:       "https://images.unsplash.com/photo-1527799820374-dcf8d9d4a388?auto=format&fit=crop&q=80",
	},
	{
		ID: "3", Type: "blog",
		Title:       "Top 10 Hair Care Tips",
		Description: "Expert advice for maintaining healthy hair",
		Image:       "https://images.unsplash.com/photo-1487412720507-e7ab37603c6f?auto=format&fit=crop&q=80",
	},
}

// SeedCartItems is the cart every new session starts with.
func SeedCartItems() []models.CartItem {
	return []models.CartItem{
		{ID: "1", Name: "Hair Treatment Package", Price: 2999, Quantity: 1},
		{ID: "2", Name: "Facial Package", Price: 1999, Quantity: 1},
	}
}

func mustDate(s string) time.Time {
	t, err := time.Parse("Jan 2, 2006", s)
	if err != nil {
		panic(err)
	}
	return t
}
