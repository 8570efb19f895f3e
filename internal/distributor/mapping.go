// Package distributor extracts the distributor intelligence workbook:
// three module sheets sharing one row layout, each tier adding
// columns over the previous one.
package distributor

import (
	"strings"

	"cmicli/pkg/contracts/domain"
)

// Module sheet names, in tier order.
const (
	ModuleStandard = "Module 1 - Standard"
	ModuleAdvance  = "Module 2 - Advance"
	ModulePremium  = "Module 3 - Premium"
)

// Modules lists the module sheets every distributor workbook carries.
var Modules = []string{ModuleStandard, ModuleAdvance, ModulePremium}

// standardMapping covers the 14 Standard columns. Columns 8-9 hold
// contact fields here but are reassigned to turnover/contact in the
// higher tiers; the renumbering is an intentional workbook convention,
// not an error.
var standardMapping = map[int]string{
	0:  "s_no",
	1:  "company_name",
	2:  "year_established",
	3:  "headquarters_emirate",
	4:  "cities_regions_covered",
	5:  "ownership_type",
	6:  "business_type",
	7:  "no_of_employees",
	8:  "key_contact_person",
	9:  "designation_role",
	10: "email_address",
	11: "phone_whatsapp",
	12: "linkedin_profile",
	13: "website_url",
}

// advanceOverlay extends (and partially renumbers) the Standard
// mapping for the Advance tier.
var advanceOverlay = map[int]string{
	8:  "turnover_scale",
	9:  "key_contact_person",
	10: "designation_role",
	11: "email_address",
	12: "phone_whatsapp",
	13: "linkedin_profile",
	14: "website_url",
	15: "core_product_categories",
	16: "specialty_focus",
	17: "price_segment",
}

// premiumOverlay extends the Advance mapping for the Premium tier.
var premiumOverlay = map[int]string{
	18: "key_brands_represented",
	19: "exclusive_partnerships",
	20: "duration_partnerships",
	21: "retail_chains",
	22: "pharmacies",
	23: "spas_salons_clinics",
	24: "ecommerce_platforms",
	25: "channel_strength",
	26: "distribution_type",
	27: "emirates_served",
	28: "regional_extensions",
	29: "warehouse_logistics",
	30: "delivery_storage",
	31: "competitive_benchmarking",
	32: "additional_comments",
}

// FieldMapping returns the column-index to field-name table for a
// module sheet. Unknown names fall back to the Standard mapping.
func FieldMapping(moduleName string) map[int]string {
	mapping := make(map[int]string, len(standardMapping)+len(advanceOverlay)+len(premiumOverlay))
	for col, field := range standardMapping {
		mapping[col] = field
	}
	if strings.Contains(moduleName, "Advance") || strings.Contains(moduleName, "Premium") {
		for col, field := range advanceOverlay {
			mapping[col] = field
		}
	}
	if strings.Contains(moduleName, "Premium") {
		for col, field := range premiumOverlay {
			mapping[col] = field
		}
	}
	return mapping
}

// Sections returns the named field groups of a module sheet, used as
// output metadata for UI consumption only.
func Sections(moduleName string) map[string][]string {
	sections := map[string][]string{
		"company_information": {
			"company_name", "year_established", "headquarters_emirate",
			"cities_regions_covered", "ownership_type", "business_type",
			"no_of_employees",
		},
		"contact_details": {
			"key_contact_person", "designation_role", "email_address",
			"phone_whatsapp", "linkedin_profile", "website_url",
		},
	}

	advance := strings.Contains(moduleName, "Advance")
	premium := strings.Contains(moduleName, "Premium")

	if advance || premium {
		sections["company_information"] = append(sections["company_information"], "turnover_scale")
		sections["product_portfolio"] = []string{
			"core_product_categories", "specialty_focus", "price_segment",
		}
	}

	if premium {
		sections["brands_distributed"] = []string{
			"key_brands_represented", "exclusive_partnerships", "duration_partnerships",
		}
		sections["distribution_channels"] = []string{
			"retail_chains", "pharmacies", "spas_salons_clinics",
			"ecommerce_platforms", "channel_strength", "distribution_type",
		}
		sections["regional_operational_coverage"] = []string{
			"emirates_served", "regional_extensions", "warehouse_logistics",
			"delivery_storage",
		}
		sections["cmi_insights"] = []string{
			"competitive_benchmarking", "additional_comments",
		}
	}

	return sections
}

// moduleInfo summarises the section layout per tier for the output
// metadata block.
var moduleInfo = map[string]domain.ModuleInfo{
	ModuleStandard: {
		Sections:    []string{"Company Information", "Contact Details"},
		TotalFields: 14,
	},
	ModuleAdvance: {
		Sections:    []string{"Company Information", "Contact Details", "Product Portfolio"},
		TotalFields: 18,
	},
	ModulePremium: {
		Sections: []string{
			"Company Information", "Contact Details", "Product Portfolio",
			"Brands Distributed", "Distribution Channels",
			"Regional & Operational Coverage", "CMI Insights",
		},
		TotalFields: 33,
	},
}
