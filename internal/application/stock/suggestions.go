package stock

import (
	"sort"
	"strings"

	"github.com/aryaman2519/My-Bussiness-Manager/internal/application/dto"
	"github.com/aryaman2519/My-Bussiness-Manager/internal/domain/entity"
)

// seedCatalog is built-in product knowledge per business type, merged with
// the owner's own stock for autocomplete.
var seedCatalog = map[string][]dto.ProductSuggestion{
	"pharmacy": {
		{ProductName: "Paracetamol", CompanyName: "Cipla", Category: "Medicine"},
		{ProductName: "Panadol", CompanyName: "GSK", Category: "Medicine"},
		{ProductName: "Ibuprofen", CompanyName: "Abbott", Category: "Medicine"},
		{ProductName: "Cough Syrup", CompanyName: "Benadryl", Category: "Medicine"},
		{ProductName: "Vitamin C", CompanyName: "Nature's Way", Category: "Supplement"},
		{ProductName: "Bandages", CompanyName: "Johnson & Johnson", Category: "First Aid"},
	},
	"grocery": {
		{ProductName: "Rice", CompanyName: "Daawat", Category: "Grains"},
		{ProductName: "Wheat Flour", CompanyName: "Aashirvaad", Category: "Flour"},
		{ProductName: "Sugar", CompanyName: "Madhur", Category: "Sweets"},
		{ProductName: "Salt", CompanyName: "Tata", Category: "Spices"},
		{ProductName: "Milk", CompanyName: "Amul", Category: "Dairy"},
		{ProductName: "Butter", CompanyName: "Amul", Category: "Dairy"},
	},
	"electronics": {
		{ProductName: "Smartphone", CompanyName: "Samsung", Category: "Mobile"},
		{ProductName: "Laptop", CompanyName: "Dell", Category: "Computer"},
		{ProductName: "Headphones", CompanyName: "Sony", Category: "Audio"},
		{ProductName: "Charger", CompanyName: "Apple", Category: "Accessories"},
		{ProductName: "Smart Watch", CompanyName: "Fitbit", Category: "Wearable"},
	},
	"default": {
		{ProductName: "Pen", CompanyName: "Reynolds", Category: "Stationery"},
		{ProductName: "Notebook", CompanyName: "Classmate", Category: "Stationery"},
	},
}

var seedKeys = []string{"pharmacy", "grocery", "electronics"}

// seedForBusinessType picks the catalog whose key overlaps the business type
// ("medical pharmacy" matches "pharmacy"), falling back to the default set.
func seedForBusinessType(businessType string) []dto.ProductSuggestion {
	bt := strings.ToLower(strings.TrimSpace(businessType))
	if bt != "" {
		for _, key := range seedKeys {
			if strings.Contains(bt, key) || strings.Contains(key, bt) {
				return seedCatalog[key]
			}
		}
	}
	return seedCatalog["default"]
}

// mergeSuggestions joins seed knowledge with the owner's stock, optionally
// filters by company and dedupes by lowercased product name (seed entries
// lose to the owner's own data).
func mergeSuggestions(seed []dto.ProductSuggestion, own []*entity.Stock, companyFilter string) []dto.ProductSuggestion {
	all := make([]dto.ProductSuggestion, 0, len(seed)+len(own))
	all = append(all, seed...)
	for _, s := range own {
		all = append(all, dto.ProductSuggestion{
			ProductName: s.ProductName,
			CompanyName: s.CompanyName,
			Category:    s.Category,
		})
	}

	if companyFilter != "" {
		want := strings.ToLower(strings.TrimSpace(companyFilter))
		filtered := all[:0]
		for _, s := range all {
			if strings.ToLower(strings.TrimSpace(s.CompanyName)) == want {
				filtered = append(filtered, s)
			}
		}
		all = filtered
	}

	seen := make(map[string]int, len(all))
	out := make([]dto.ProductSuggestion, 0, len(all))
	for _, s := range all {
		key := strings.ToLower(s.ProductName)
		if i, ok := seen[key]; ok {
			out[i] = s // later (owner) entries win
			continue
		}
		seen[key] = len(out)
		out = append(out, s)
	}
	return out
}

// mergeCompanies joins seed companies with the owner's distinct companies,
// deduped and sorted.
func mergeCompanies(seed []dto.ProductSuggestion, own []string) []string {
	set := make(map[string]struct{})
	for _, s := range seed {
		set[s.CompanyName] = struct{}{}
	}
	for _, c := range own {
		set[c] = struct{}{}
	}
	out := make([]string, 0, len(set))
	for c := range set {
		out = append(out, c)
	}
	sort.Strings(out)
	return out
}
