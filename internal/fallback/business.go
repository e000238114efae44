package fallback

import (
	"regexp"
	"strconv"
	"strings"

	"voice-catalog-go/internal/classify"
	"voice-catalog-go/internal/record"
)

// Enumerated regional and city names tested by membership, in list order.
var states = []string{
	"andhra pradesh", "arunachal pradesh", "assam", "bihar", "chhattisgarh",
	"goa", "gujarat", "haryana", "himachal pradesh", "jammu & kashmir",
	"jharkhand", "karnataka", "kerala", "madhya pradesh", "maharashtra",
	"manipur", "meghalaya", "mizoram", "nagaland", "odisha", "punjab",
	"rajasthan", "sikkim", "tamil nadu", "telangana", "tripura",
	"uttar pradesh", "uttarakhand", "west bengal", "chandigarh", "delhi",
	"hyderabad", "bangalore", "mumbai", "chennai", "kolkata", "pune",
	"jaipur", "lucknow",
}

var cities = []string{
	"chandigarh", "hyderabad", "bangalore", "delhi", "mumbai", "chennai",
	"kolkata", "pune", "jaipur", "lucknow", "ahmedabad", "surat", "nagpur",
	"indore", "thane", "bhopal", "visakhapatnam", "pimpri", "patna",
	"vadodara", "ghaziabad", "ludhiana", "agra", "nashik", "faridabad",
	"meerut", "rajkot", "kalyan", "vasai", "varanasi", "srinagar",
	"aurangabad", "dhanbad", "amritsar", "navi mumbai", "allahabad",
	"ranchi", "howrah", "coimbatore", "jabalpur", "gwalior", "vijayawada",
	"jodhpur", "madurai", "raipur", "kota", "guwahati", "hubli", "dharwad",
	"mysore",
}

var (
	pincodeRe = regexp.MustCompile(`\b(\d{6})\b`)
	gstRe     = regexp.MustCompile(`\b(\d{2}[A-Z]{5}\d{4}[A-Z][A-Z0-9]Z\d)\b`)
	emailRe   = regexp.MustCompile(`\b([a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,})\b`)
	websiteRe = regexp.MustCompile(`\b((?:https?://|www\.)[a-zA-Z0-9.-]+\.[a-zA-Z]{2,})\b`)
	yearRe    = regexp.MustCompile(`\b(\d{4})\b`)
	phoneRe   = regexp.MustCompile(`\b(\d{10})\b`)
)

// An establishment-year candidate is only accepted when one of these words
// appears anywhere in the transcript, not necessarily near the number.
var yearContextWords = []string{"established", "founded", "started", "since", "year"}

// Capture patterns anchored on spoken lead-in phrases. Every capture must be
// followed by a boundary word so the greedy span stops at a sensible place.
var personNameRes = []*regexp.Regexp{
	regexp.MustCompile(`(?:my name is|i am|this is)\s+([a-zA-Z\s]+?)(?:\s+(?:and|so|feed|my|i))`),
	regexp.MustCompile(`(?:i'm|i am)\s+([a-zA-Z\s]+?)(?:\s+(?:and|so|feed|my))`),
}

var businessNameRes = []*regexp.Regexp{
	regexp.MustCompile(`(?:my name is|my business is|i own|we are|this is)\s+([a-zA-Z\s]+?)(?:\s+(?:in|at|and|located|so|feed))`),
	regexp.MustCompile(`business\s+name\s+is\s+([a-zA-Z\s]+?)(?:\s+(?:and|we|located))`),
	regexp.MustCompile(`we\s+are\s+([a-zA-Z\s]+?)(?:\s+(?:and|we|located|in))`),
	regexp.MustCompile(`name\s+is\s+([a-zA-Z\s]+?)(?:\s+(?:and|so|feed))`),
}

var addressRes = []*regexp.Regexp{
	regexp.MustCompile(`(?:located|address|at|in)\s+([a-zA-Z0-9\s,]+?)(?:\s+(?:city|and|we|phone|state))`),
	regexp.MustCompile(`address\s+is\s+([a-zA-Z0-9\s,]+?)(?:\s+(?:city|and|we|phone|state))`),
}

// Keywords scanned for the phase-1 product hint list, capped at 3 entries.
var businessProductKeywords = []string{
	"vegetable", "fruit", "rice", "milk", "bread", "sweet", "snack", "food", "grocery",
}

// firstCapture returns the first pattern whose captured, trimmed, title-cased
// span has a length strictly between min and max characters.
func firstCapture(lower string, patterns []*regexp.Regexp, min, max int) string {
	for _, re := range patterns {
		m := re.FindStringSubmatch(lower)
		if m == nil {
			continue
		}
		captured := titleCase(strings.TrimSpace(m[1]))
		if len(captured) > min && len(captured) < max {
			return captured
		}
	}
	return ""
}

type businessRule struct {
	field string
	apply func(lower, upper string, rec *record.BusinessRecord)
}

// businessRules is the full ordered rule list. Each field is set by the
// first rule that matches; later rules never overwrite an earlier result
// because each rule owns exactly one field.
var businessRules = []businessRule{
	{"state", func(lower, _ string, rec *record.BusinessRecord) {
		for _, s := range states {
			if strings.Contains(lower, s) {
				rec.State = titleCase(s)
				return
			}
		}
	}},
	{"pincode", func(lower, _ string, rec *record.BusinessRecord) {
		if m := pincodeRe.FindStringSubmatch(lower); m != nil {
			rec.Pincode = m[1]
		}
	}},
	{"gstNumber", func(_, upper string, rec *record.BusinessRecord) {
		if m := gstRe.FindStringSubmatch(upper); m != nil {
			rec.GSTNumber = m[1]
		}
	}},
	{"email", func(lower, _ string, rec *record.BusinessRecord) {
		if m := emailRe.FindStringSubmatch(lower); m != nil {
			rec.Email = m[1]
		}
	}},
	{"website", func(lower, _ string, rec *record.BusinessRecord) {
		if m := websiteRe.FindStringSubmatch(lower); m != nil {
			rec.Website = m[1]
		}
	}},
	{"establishedYear", func(lower, _ string, rec *record.BusinessRecord) {
		hasContext := false
		for _, w := range yearContextWords {
			if strings.Contains(lower, w) {
				hasContext = true
				break
			}
		}
		if !hasContext {
			return
		}
		for _, m := range yearRe.FindAllStringSubmatch(lower, -1) {
			year, err := strconv.Atoi(m[1])
			if err != nil || year < 1900 || year > 2024 {
				continue
			}
			rec.EstablishedYear = m[1]
			return
		}
	}},
	{"city", func(lower, _ string, rec *record.BusinessRecord) {
		for _, c := range cities {
			if strings.Contains(lower, c) {
				rec.City = titleCase(c)
				return
			}
		}
	}},
	{"phone", func(lower, _ string, rec *record.BusinessRecord) {
		if m := phoneRe.FindStringSubmatch(lower); m != nil {
			rec.Phone = m[1]
		}
	}},
	{"personName", func(lower, _ string, rec *record.BusinessRecord) {
		rec.PersonName = firstCapture(lower, personNameRes, 2, 50)
	}},
	{"name", func(lower, _ string, rec *record.BusinessRecord) {
		rec.Name = firstCapture(lower, businessNameRes, 2, 50)
	}},
	{"address", func(lower, _ string, rec *record.BusinessRecord) {
		rec.Address = firstCapture(lower, addressRes, 3, 100)
	}},
	{"category", func(lower, _ string, rec *record.BusinessRecord) {
		rec.Category = classify.BusinessCategory(lower)
	}},
	{"products", func(lower, _ string, rec *record.BusinessRecord) {
		for _, kw := range businessProductKeywords {
			if len(rec.Products) >= 3 {
				break
			}
			plural := kw + "s"
			if strings.HasSuffix(kw, "y") {
				plural = strings.TrimSuffix(kw, "y") + "ies"
			}
			switch {
			case strings.Contains(lower, kw):
				rec.Products = append(rec.Products, record.BareProduct(titleCase(kw)))
			case strings.Contains(lower, plural):
				rec.Products = append(rec.Products, record.BareProduct(titleCase(plural)))
			}
		}
	}},
}

// ExtractBusiness parses a transcript into a BusinessRecord using the ordered
// rule list above. Fields with no matching rule stay empty; the result is
// always structurally valid.
func ExtractBusiness(transcript string) record.BusinessRecord {
	rec := record.EmptyBusiness()
	lower := strings.ToLower(transcript)
	upper := strings.ToUpper(transcript)
	for _, rule := range businessRules {
		rule.apply(lower, upper, &rec)
	}
	return record.NormalizeBusiness(rec)
}
