package distributor

import (
	"context"
	"fmt"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"cmicli/internal/sheet"
)

func TestFieldMapping(t *testing.T) {
	t.Run("standard", func(t *testing.T) {
		mapping := FieldMapping(ModuleStandard)

		assert.Len(t, mapping, 14)
		assert.Equal(t, "key_contact_person", mapping[8])
		assert.Equal(t, "website_url", mapping[13])
	})

	t.Run("advance renumbers the contact block", func(t *testing.T) {
		mapping := FieldMapping(ModuleAdvance)

		assert.Len(t, mapping, 18)
		assert.Equal(t, "turnover_scale", mapping[8])
		assert.Equal(t, "key_contact_person", mapping[9])
		assert.Equal(t, "website_url", mapping[14])
		assert.Equal(t, "price_segment", mapping[17])
	})

	t.Run("premium extends advance", func(t *testing.T) {
		mapping := FieldMapping(ModulePremium)

		assert.Len(t, mapping, 33)
		assert.Equal(t, "turnover_scale", mapping[8])
		assert.Equal(t, "key_brands_represented", mapping[18])
		assert.Equal(t, "additional_comments", mapping[32])
	})

	t.Run("unknown name falls back to standard", func(t *testing.T) {
		assert.Equal(t, FieldMapping(ModuleStandard), FieldMapping("Module 4 - Mystery"))
	})
}

func TestSections(t *testing.T) {
	t.Run("standard", func(t *testing.T) {
		sections := Sections(ModuleStandard)

		assert.Len(t, sections, 2)
		assert.Contains(t, sections, "company_information")
		assert.Contains(t, sections, "contact_details")
		assert.NotContains(t, sections["company_information"], "turnover_scale")
	})

	t.Run("advance", func(t *testing.T) {
		sections := Sections(ModuleAdvance)

		assert.Len(t, sections, 3)
		assert.Contains(t, sections["company_information"], "turnover_scale")
		assert.Equal(t, []string{"core_product_categories", "specialty_focus", "price_segment"},
			sections["product_portfolio"])
	})

	t.Run("premium", func(t *testing.T) {
		sections := Sections(ModulePremium)

		assert.Len(t, sections, 6)
		assert.Contains(t, sections, "brands_distributed")
		assert.Contains(t, sections, "distribution_channels")
		assert.Contains(t, sections, "regional_operational_coverage")
		assert.Equal(t, []string{"competitive_benchmarking", "additional_comments"},
			sections["cmi_insights"])
	})
}

func TestExtractSheet(t *testing.T) {
	grid := sheet.NewGrid([][]string{
		{"Distributor Intelligence"},
		{},
		{},
		{},
		{"S.No", "Company Name", "Year Established", "HQ Emirate", "Cities", "Ownership", "Business Type", "Employees", "Contact", "Designation", "Email", "Phone", "LinkedIn", "Website"},
		{"1", "Acme Traders", "1995", "Dubai", "", "Private", "Distributor", "50", "Ali", "Manager", "ali@acme.ae", "+971", "", "acme.ae"},
		{"2", ""},
		{"", "Ghost Co"},
		{"A7", "Beta LLC"},
	})

	records := ExtractSheet(grid, ModuleStandard)
	require.Len(t, records, 2)

	acme := records[0]
	assert.Equal(t, ModuleStandard, acme["module"])
	assert.Equal(t, 1, acme["s_no"])
	assert.Equal(t, "module_1_-_standard_1", acme["id"])
	assert.Equal(t, "Acme Traders", acme["company_name"])
	assert.Equal(t, "1995", acme["year_established"])
	assert.Equal(t, "acme.ae", acme["website_url"])

	// Blank cells are kept as explicit nulls.
	assert.Contains(t, acme, "cities_regions_covered")
	assert.Nil(t, acme["cities_regions_covered"])
	assert.Nil(t, acme["linkedin_profile"])

	// A non-numeric serial keeps the record but falls back to the
	// row index for the identifier.
	beta := records[1]
	assert.Nil(t, beta["s_no"])
	assert.Equal(t, fmt.Sprintf("module_1_-_standard_%d", 8), beta["id"])
	assert.Equal(t, "Beta LLC", beta["company_name"])
}

func TestGenerator_Generate(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()
	require.NoError(t, f.SetSheetName("Sheet1", ModuleStandard))

	rows := [][]any{
		{"Distributor Intelligence"},
		{},
		{},
		{},
		{"S.No", "Company Name"},
		{1, "Acme Traders"},
		{2, "Beta LLC"},
	}
	for i, row := range rows {
		require.NoError(t, f.SetSheetRow(ModuleStandard, fmt.Sprintf("A%d", i+1), &row))
	}

	path := filepath.Join(t.TempDir(), "distributors.xlsx")
	require.NoError(t, f.SaveAs(path))

	doc, err := NewGenerator(nil).Generate(context.Background(), path)
	require.NoError(t, err)

	assert.Equal(t, "distributors.xlsx", doc.Metadata.SourceFile)
	assert.Equal(t, Modules, doc.Metadata.Modules)
	assert.NotEmpty(t, doc.Metadata.GeneratedAt)
	assert.Equal(t, 14, doc.Metadata.ModuleInfo[ModuleStandard].TotalFields)
	assert.Equal(t, 33, doc.Metadata.ModuleInfo[ModulePremium].TotalFields)

	require.Len(t, doc.Data[ModuleStandard], 2)
	assert.Equal(t, "Acme Traders", doc.Data[ModuleStandard][0]["company_name"])
	assert.Contains(t, doc.Sections[ModuleStandard], "contact_details")

	// Missing module sheets degrade to empty record lists.
	assert.Empty(t, doc.Data[ModuleAdvance])
	assert.Empty(t, doc.Data[ModulePremium])
	assert.Empty(t, doc.Sections[ModulePremium])
}

func TestGenerator_Generate_MissingWorkbook(t *testing.T) {
	_, err := NewGenerator(nil).Generate(context.Background(), filepath.Join(t.TempDir(), "absent.xlsx"))
	require.Error(t, err)
}
