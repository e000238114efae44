package fallback

import (
	"regexp"
	"strconv"
	"strings"

	"voice-catalog-go/internal/classify"
	"voice-catalog-go/internal/record"
)

const (
	unitAlt  = `kg|grams|pcs|pieces|liter|litre|dozen|packet|bottle|box`
	priceCue = `(?:at|@|for|rupees?|rs\.?|₹)`
)

// Each pattern family matches one spoken word order of
// {quantity, unit, product-name, price}. Families are tried in order from
// richest to the bare-name catch-all; a name claimed by an earlier family is
// never re-added by a later one.
type productPattern struct {
	re    *regexp.Regexp
	build func(m []string) record.ProductRecord
}

var productPatterns = []productPattern{
	// quantity + unit + name + price: "2 kg tomatoes at 50 rupees"
	{
		re: regexp.MustCompile(`(\d+)\s+(` + unitAlt + `)\s+(\w+)\s+` + priceCue + `\s*(\d+)`),
		build: func(m []string) record.ProductRecord {
			return record.ProductRecord{Name: m[3], Quantity: atoi(m[1], 1), Unit: m[2], Price: atof(m[4])}
		},
	},
	// name + unit + price: "tomatoes kg 50 rupees"
	{
		re: regexp.MustCompile(`(\w+)\s+(` + unitAlt + `)\s+` + priceCue + `\s*(\d+)`),
		build: func(m []string) record.ProductRecord {
			return record.ProductRecord{Name: m[1], Quantity: 1, Unit: m[2], Price: atof(m[3])}
		},
	},
	// name + price + unit: "tomatoes at 50 rupees per kg"
	{
		re: regexp.MustCompile(`(\w+)\s+` + priceCue + `\s*(\d+)\s+(?:per\s+)?(` + unitAlt + `)`),
		build: func(m []string) record.ProductRecord {
			return record.ProductRecord{Name: m[1], Quantity: 1, Unit: m[3], Price: atof(m[2])}
		},
	},
	// name + price: "tomatoes at 50 rupees"
	{
		re: regexp.MustCompile(`(\w+)\s+` + priceCue + `\s*(\d+)`),
		build: func(m []string) record.ProductRecord {
			return record.ProductRecord{Name: m[1], Quantity: 1, Unit: "pcs", Price: atof(m[2])}
		},
	},
	// quantity + unit + name, no price: "2 kg tomatoes"
	{
		re: regexp.MustCompile(`(\d+)\s+(` + unitAlt + `)\s+(\w+)`),
		build: func(m []string) record.ProductRecord {
			return record.ProductRecord{Name: m[3], Quantity: atoi(m[1], 1), Unit: m[2], Price: 0}
		},
	},
	// catch-all bare name token
	{
		re: regexp.MustCompile(`(\w+)`),
		build: func(m []string) record.ProductRecord {
			return record.ProductRecord{Name: m[1], Quantity: 1, Unit: "pcs", Price: 0}
		},
	},
}

// Common product nouns scanned directly after the pattern families.
var productKeywords = []string{
	"tomato", "potato", "onion", "vegetable", "fruit", "rice", "wheat", "flour",
	"milk", "bread", "egg", "chicken", "meat", "fish", "sugar", "salt", "oil",
	"tea", "coffee", "butter", "cheese", "curd", "sweet", "snack", "chocolate",
	"biscuit", "soap", "shampoo", "toothpaste", "detergent", "paper", "pen",
}

const maxFallbackProducts = 5

func atoi(s string, def int) int {
	n, err := strconv.Atoi(s)
	if err != nil {
		return def
	}
	return n
}

func atof(s string) float64 {
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return f
}

// ExtractProducts recovers structured product records from a transcript. It
// never fails: when nothing matches, the result is an empty (non-nil) list.
func ExtractProducts(transcript string) []record.ProductRecord {
	lower := strings.ToLower(transcript)

	var products []record.ProductRecord
	seen := map[string]bool{}

	add := func(p record.ProductRecord) {
		name := strings.TrimSpace(p.Name)
		if seen[name] {
			return
		}
		seen[name] = true
		p.Name = titleCase(name)
		p.Category = classify.ProductCategory(name)
		p.Description = "Fresh " + p.Name
		products = append(products, p)
	}

	for i, pat := range productPatterns {
		catchAll := i == len(productPatterns)-1
		for _, m := range pat.re.FindAllStringSubmatch(lower, -1) {
			p := pat.build(m)
			if catchAll && len(strings.TrimSpace(p.Name)) <= 2 {
				continue
			}
			add(p)
		}
	}

	// Direct keyword scan picks up nouns the patterns missed.
	for _, kw := range productKeywords {
		if strings.Contains(lower, kw) && !seen[kw] {
			add(record.ProductRecord{Name: kw, Quantity: 1, Unit: "pcs", Price: 0})
		}
	}

	// Second dedup keyed on (name, unit), then truncate.
	unique := make([]record.ProductRecord, 0, len(products))
	byNameUnit := map[[2]string]bool{}
	for _, p := range products {
		key := [2]string{p.Name, p.Unit}
		if byNameUnit[key] {
			continue
		}
		byNameUnit[key] = true
		unique = append(unique, p)
	}
	if len(unique) > maxFallbackProducts {
		unique = unique[:maxFallbackProducts]
	}
	return record.NormalizeProducts(unique)
}
