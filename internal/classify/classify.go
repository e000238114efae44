// Package classify maps free keywords found in a transcript to the closed
// sets of business and product category labels. Both fallback extractors use
// it; the keyword tables are matched in a fixed order so results are stable.
package classify

import "strings"

type categoryEntry struct {
	Label    string
	Keywords []string
}

// Business category table. Matched in order; the first category with any
// keyword present in the transcript wins.
var businessCategories = []categoryEntry{
	{"Retail", []string{"retail", "shop", "store", "grocery", "market", "supermarket"}},
	{"Food & Restaurant", []string{"food", "restaurant", "cafe", "hotel", "eatery", "sweet", "treat", "bakery"}},
	{"Services", []string{"service", "consulting", "repair", "maintenance"}},
	{"Manufacturing", []string{"manufacturing", "factory", "production"}},
	{"Healthcare", []string{"health", "medical", "hospital", "clinic", "pharmacy"}},
	{"Education", []string{"education", "school", "college", "tuition", "institute"}},
	{"Technology", []string{"tech", "software", "computer", "it"}},
	{"Agriculture", []string{"agriculture", "farming", "crops", "seeds"}},
	{"Textile", []string{"textile", "clothing", "garments", "fashion"}},
	{"Automotive", []string{"automotive", "car", "vehicle", "motor"}},
}

// Product category table, keyed the same way but matched against a single
// product name rather than the whole transcript.
var productCategories = []categoryEntry{
	{"Food", []string{"tomato", "potato", "onion", "vegetable", "fruit", "rice", "wheat", "flour", "milk", "bread", "egg", "chicken", "meat", "fish", "sugar", "salt", "oil", "tea", "coffee", "butter", "cheese", "curd", "sweet", "snack", "chocolate", "biscuit"}},
	{"Electronics", []string{"phone", "laptop", "computer", "tablet", "camera", "tv", "headphone", "speaker"}},
	{"Clothing", []string{"shirt", "pants", "dress", "jeans", "t-shirt", "jacket", "shoes", "socks"}},
	{"Home & Kitchen", []string{"soap", "shampoo", "toothpaste", "detergent", "paper", "pen", "plate", "cup", "bowl"}},
	{"Books", []string{"book", "notebook", "pen", "paper"}},
	{"Toys", []string{"toy", "game", "puzzle", "doll"}},
	{"Sports", []string{"ball", "bat", "racket", "shoes", "equipment"}},
	{"Beauty", []string{"lipstick", "cream", "makeup", "perfume", "shampoo", "soap"}},
	{"Health", []string{"medicine", "tablet", "vitamin", "cream", "oil"}},
}

// BusinessCategory returns the first business category whose keyword list has
// a substring match in the transcript, or "" if none match.
func BusinessCategory(transcript string) string {
	lower := strings.ToLower(transcript)
	for _, entry := range businessCategories {
		for _, kw := range entry.Keywords {
			if strings.Contains(lower, kw) {
				return entry.Label
			}
		}
	}
	return ""
}

// ProductCategory classifies one product name, defaulting to "General".
func ProductCategory(name string) string {
	lower := strings.ToLower(name)
	for _, entry := range productCategories {
		for _, kw := range entry.Keywords {
			if strings.Contains(lower, kw) {
				return entry.Label
			}
		}
	}
	return "General"
}
