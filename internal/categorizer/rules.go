package categorizer

import "fjacquet/expense-tracker/internal/models"

// DefaultRules returns the built-in category rule table. It is used when no
// rules file is configured and serves as the reference rule set for tests.
// Declaration order matters: when two rules score equally, the earlier one
// wins.
func DefaultRules() []models.CategoryRule {
	return []models.CategoryRule{
		{
			Category:     models.CategoryFood,
			MinimumScore: 1.0,
			Keywords: []models.CategoryKeyword{
				// Eating out
				{Keyword: "restaurant", Weight: 2.0},
				{Keyword: "cafe", Weight: 2.0},
				{Keyword: "bakery", Weight: 2.0},
				{Keyword: "deli", Weight: 2.0},
				{Keyword: "pizza", Weight: 2.0},
				{Keyword: "burger", Weight: 2.0},
				{Keyword: "coffee", Weight: 1.8},
				{Keyword: "lunch", Weight: 1.8},
				{Keyword: "dinner", Weight: 1.8},
				{Keyword: "breakfast", Weight: 1.8},

				// Broad food language
				{Keyword: "food", Weight: 1.5, Mode: models.MatchContains},
				{Keyword: "eat", Weight: 1.5, Mode: models.MatchContains},
				{Keyword: "meal", Weight: 1.5, Mode: models.MatchContains},
				{Keyword: "kitchen", Weight: 1.2, Mode: models.MatchContains},
				{Keyword: "dining", Weight: 1.2, Mode: models.MatchContains},

				// Dishes
				{Keyword: "sandwich", Weight: 1.0},
				{Keyword: "pasta", Weight: 1.0},
				{Keyword: "rice", Weight: 1.0},
				{Keyword: "chicken", Weight: 1.0},
				{Keyword: "beef", Weight: 1.0},
				{Keyword: "fish", Weight: 1.0},
				{Keyword: "salad", Weight: 1.0},
				{Keyword: "soup", Weight: 1.0},

				// Beverages
				{Keyword: "tea", Weight: 0.8},
				{Keyword: "juice", Weight: 0.8},
				{Keyword: "soda", Weight: 0.8},
				{Keyword: "beer", Weight: 0.8},
				{Keyword: "wine", Weight: 0.8},
				{Keyword: "water", Weight: 0.5},

				// Groceries
				{Keyword: "grocery", Weight: 1.5},
				{Keyword: "groceries", Weight: 1.5},
				{Keyword: "supermarket", Weight: 1.5},
				{Keyword: "fresh", Weight: 0.8, Mode: models.MatchContains},
				{Keyword: "produce", Weight: 1.0},
			},
		},
		{
			Category:     models.CategoryTransport,
			MinimumScore: 1.0,
			Keywords: []models.CategoryKeyword{
				// Services
				{Keyword: "uber", Weight: 2.0},
				{Keyword: "lyft", Weight: 2.0},
				{Keyword: "taxi", Weight: 2.0},
				{Keyword: "cab", Weight: 2.0},
				{Keyword: "bus", Weight: 1.8},
				{Keyword: "train", Weight: 1.8},
				{Keyword: "flight", Weight: 2.0},
				{Keyword: "airline", Weight: 2.0},
				{Keyword: "metro", Weight: 1.8},
				{Keyword: "subway", Weight: 1.8},

				// Vehicle
				{Keyword: "gas", Weight: 1.5},
				{Keyword: "fuel", Weight: 1.5},
				{Keyword: "petrol", Weight: 1.5},
				{Keyword: "diesel", Weight: 1.5},
				{Keyword: "parking", Weight: 1.8},
				{Keyword: "toll", Weight: 1.5},

				// Movement verbs
				{Keyword: "ride", Weight: 1.0, Mode: models.MatchContains},
				{Keyword: "trip", Weight: 1.0, Mode: models.MatchContains},
				{Keyword: "travel", Weight: 1.0, Mode: models.MatchContains},
				{Keyword: "drive", Weight: 1.0, Mode: models.MatchContains},
				{Keyword: "commute", Weight: 1.5, Mode: models.MatchContains},

				// Hubs
				{Keyword: "airport", Weight: 1.5},
				{Keyword: "station", Weight: 1.2},
				{Keyword: "terminal", Weight: 1.0},
				{Keyword: "garage", Weight: 0.8},
			},
		},
		{
			Category:     models.CategoryShopping,
			MinimumScore: 1.0,
			Keywords: []models.CategoryKeyword{
				// Actions
				{Keyword: "buy", Weight: 1.0, Mode: models.MatchContains},
				{Keyword: "bought", Weight: 1.0, Mode: models.MatchContains},
				{Keyword: "purchase", Weight: 1.5, Mode: models.MatchContains},
				{Keyword: "shop", Weight: 1.5, Mode: models.MatchContains},
				{Keyword: "shopping", Weight: 2.0},
				{Keyword: "order", Weight: 1.0, Mode: models.MatchContains},
				{Keyword: "ordered", Weight: 1.0, Mode: models.MatchContains},

				// Places
				{Keyword: "amazon", Weight: 2.0},
				{Keyword: "ebay", Weight: 2.0},
				{Keyword: "store", Weight: 1.5},
				{Keyword: "mall", Weight: 2.0},
				{Keyword: "market", Weight: 1.2},
				{Keyword: "outlet", Weight: 1.5},
				{Keyword: "retail", Weight: 1.5},

				// Clothing
				{Keyword: "clothes", Weight: 1.8},
				{Keyword: "clothing", Weight: 1.8},
				{Keyword: "shirt", Weight: 1.5},
				{Keyword: "shoes", Weight: 1.5},
				{Keyword: "dress", Weight: 1.5},
				{Keyword: "pants", Weight: 1.5},
				{Keyword: "jacket", Weight: 1.5},
				{Keyword: "hat", Weight: 1.2},
				{Keyword: "bag", Weight: 1.2},
				{Keyword: "wallet", Weight: 1.5},

				// Personal care
				{Keyword: "makeup", Weight: 1.5},
				{Keyword: "cosmetics", Weight: 1.5},
				{Keyword: "shampoo", Weight: 1.5},
				{Keyword: "soap", Weight: 1.2},
				{Keyword: "perfume", Weight: 1.5},
				{Keyword: "skincare", Weight: 1.5},
			},
		},
		{
			Category:     models.CategoryEntertainment,
			MinimumScore: 1.0,
			Keywords: []models.CategoryKeyword{
				// Actions
				{Keyword: "watch", Weight: 1.0, Mode: models.MatchContains},
				{Keyword: "watching", Weight: 1.0, Mode: models.MatchContains},
				{Keyword: "play", Weight: 1.0, Mode: models.MatchContains},
				{Keyword: "playing", Weight: 1.0, Mode: models.MatchContains},
				{Keyword: "listen", Weight: 1.0, Mode: models.MatchContains},
				{Keyword: "listening", Weight: 1.0, Mode: models.MatchContains},

				// Venues and services
				{Keyword: "movie", Weight: 2.0},
				{Keyword: "cinema", Weight: 2.0},
				{Keyword: "theater", Weight: 2.0},
				{Keyword: "theatre", Weight: 2.0},
				{Keyword: "netflix", Weight: 2.0},
				{Keyword: "spotify", Weight: 2.0},
				{Keyword: "youtube", Weight: 1.5},
				{Keyword: "gaming", Weight: 1.8},
				{Keyword: "concert", Weight: 2.0},
				{Keyword: "show", Weight: 1.5},

				// Social leisure
				{Keyword: "party", Weight: 1.5},
				{Keyword: "club", Weight: 1.5},
				{Keyword: "bar", Weight: 1.8},
				{Keyword: "pub", Weight: 1.8},
				{Keyword: "entertainment", Weight: 2.0},
				{Keyword: "leisure", Weight: 1.5},
				{Keyword: "fun", Weight: 1.0},
				{Keyword: "hobby", Weight: 1.5},

				// Subscriptions
				{Keyword: "subscription", Weight: 1.8},
				{Keyword: "streaming", Weight: 1.8},
				{Keyword: "membership", Weight: 1.5},
			},
		},
		{
			Category:     models.CategoryHealth,
			MinimumScore: 1.0,
			Keywords: []models.CategoryKeyword{
				// Providers
				{Keyword: "doctor", Weight: 2.0},
				{Keyword: "hospital", Weight: 2.0},
				{Keyword: "clinic", Weight: 2.0},
				{Keyword: "pharmacy", Weight: 2.0},
				{Keyword: "dentist", Weight: 2.0},
				{Keyword: "dental", Weight: 2.0},
				{Keyword: "medical", Weight: 1.8},

				// Conditions
				{Keyword: "sick", Weight: 1.5},
				{Keyword: "pain", Weight: 1.2},
				{Keyword: "hurt", Weight: 1.2},
				{Keyword: "ache", Weight: 1.2},
				{Keyword: "appointment", Weight: 1.5},
				{Keyword: "checkup", Weight: 2.0},
				{Keyword: "prescription", Weight: 2.0},
				{Keyword: "medicine", Weight: 1.8},
				{Keyword: "medication", Weight: 1.8},

				// General
				{Keyword: "health", Weight: 1.5, Mode: models.MatchContains},
				{Keyword: "healthcare", Weight: 2.0},
				{Keyword: "treatment", Weight: 1.8},
				{Keyword: "therapy", Weight: 1.8},
				{Keyword: "surgery", Weight: 2.0},
				{Keyword: "vision", Weight: 1.5},
				{Keyword: "eye", Weight: 1.2, Mode: models.MatchContains},
			},
		},
		{
			Category:     models.CategoryEducation,
			MinimumScore: 1.0,
			Keywords: []models.CategoryKeyword{
				// Actions
				{Keyword: "study", Weight: 1.5, Mode: models.MatchContains},
				{Keyword: "learn", Weight: 1.5, Mode: models.MatchContains},
				{Keyword: "learning", Weight: 1.5, Mode: models.MatchContains},
				{Keyword: "education", Weight: 2.0},
				{Keyword: "academic", Weight: 1.8},

				// Institutions
				{Keyword: "school", Weight: 2.0},
				{Keyword: "university", Weight: 2.0},
				{Keyword: "college", Weight: 2.0},
				{Keyword: "academy", Weight: 1.8},
				{Keyword: "course", Weight: 1.8},
				{Keyword: "class", Weight: 1.5},
				{Keyword: "tuition", Weight: 2.0},

				// Materials
				{Keyword: "book", Weight: 1.2},
				{Keyword: "textbook", Weight: 2.0},
				{Keyword: "notebook", Weight: 1.5},
				{Keyword: "supplies", Weight: 1.2, Mode: models.MatchContains},
				{Keyword: "pen", Weight: 1.0},
				{Keyword: "pencil", Weight: 1.0},

				// Platforms
				{Keyword: "udemy", Weight: 2.0},
				{Keyword: "coursera", Weight: 2.0},
				{Keyword: "training", Weight: 1.8},
				{Keyword: "workshop", Weight: 1.8},
				{Keyword: "seminar", Weight: 1.8},
				{Keyword: "certification", Weight: 1.8},
			},
		},
	}
}
