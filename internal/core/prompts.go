package core

import "fmt"

// The prompts pin the model to the exact record schema and spell out the
// extraction rules, because the parsed output is trusted as-is once the JSON
// boundary recovery succeeds.

const businessPromptTemplate = `
Extract comprehensive business details from this English speech:

"%s"

Return ONLY JSON:
{
  "personName": "",
  "name": "",
  "address": "",
  "city": "",
  "state": "",
  "pincode": "",
  "gstNumber": "",
  "category": "",
  "subcategory": "",
  "email": "",
  "phone": "",
  "website": "",
  "establishedYear": "",
  "products": []
}
Rules:
- Extract person name, business name, address, city, state, pincode, GST number, category, subcategory, email, phone, website, established year
- Categories: Retail, Food & Restaurant, Services, Manufacturing, Healthcare, Education, Technology, Agriculture, Textile, Automotive, Electronics, Real Estate, Construction, Tourism, Logistics, Finance, Consulting
- If any field is not mentioned, leave it empty
- Extract phone numbers as 10-digit numbers (remove country codes if present)
- Extract email addresses with @ symbol
- Extract GST numbers (15-digit alphanumeric starting with digits)
- Extract pincode as 6-digit numbers
- Extract website URLs (with http/https or www)
- Extract established year (4-digit numbers between 1900-2024)
- If products are mentioned, include them as simple strings in the products array
- Focus on clear English business information only
- Make sure the response is valid JSON format only, without any extra text before or after the JSON
`

const productPromptTemplate = `
Extract comprehensive product list from this English speech:

"%s"

Return ONLY JSON ARRAY:
[
  {"name":"","price":0,"category":"","description":"","unit":"","quantity":0}
]
Rules:
- English only speech processing
- Listen carefully for quantities like "2 kg", "1 kg", "500 grams", "5 pcs", "3 liters" and extract the unit and quantity
- Listen VERY carefully for prices like "250 rupees", "120 rupees per kg", "50 rupees each", "at 100", "costs 50", "price 30" and extract the NUMERIC price only
- Extract product categories (Food, Electronics, Clothing, Books, Toys, Home & Kitchen, Sports, Beauty, Health, etc.)
- Extract product descriptions (quality, features, specifications, brand details)
- Listen for quantity numbers (2, 5, 10, etc.) and separate from unit
- Common units: kg, grams, pcs, pieces, liters, ml, dozen, packet, bottle, box, set, meter, cm, inch
- If no unit is mentioned, use "pcs"
- If no price is mentioned, use 0
- If no quantity is mentioned, use 1
- Convert spoken numbers to digits (two -> 2, five -> 5, ten -> 10, twenty -> 20, fifty -> 50, hundred -> 100)
- "per kg" = unit kg, "each" = unit pcs, "per piece" = unit pcs, "per liter" = unit liters
- Focus on clear English product names and information only
- Handle multiple products in the same speech
- Extract product names exactly as spoken (brand names, variations, etc)
- IMPORTANT: Extract actual price numbers, don't default to 1 or 0 unless no price is mentioned
`

func buildBusinessPrompt(transcript string) string {
	return fmt.Sprintf(businessPromptTemplate, transcript)
}

func buildProductPrompt(transcript string) string {
	return fmt.Sprintf(productPromptTemplate, transcript)
}
