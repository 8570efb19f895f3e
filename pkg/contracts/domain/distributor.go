package domain

// DistributorRecord is one flat row extracted from a distributor
// module sheet. Keys depend on the module tier; blank cells are
// carried as explicit nulls so every mapped field is present.
type DistributorRecord map[string]any

// ModuleInfo summarises the shape of one module tier for output metadata.
type ModuleInfo struct {
	Sections    []string `json:"sections"`
	TotalFields int      `json:"total_fields"`
}

// DistributorMetadata is the metadata section of a distributor document.
type DistributorMetadata struct {
	SourceFile  string                `json:"source_file"`
	Modules     []string              `json:"modules"`
	ModuleInfo  map[string]ModuleInfo `json:"module_info"`
	GeneratedAt string                `json:"generated_at"`
}

// DistributorDocument is the assembled distributor-intelligence output.
// Data and Sections are keyed by module sheet name.
type DistributorDocument struct {
	Metadata DistributorMetadata            `json:"metadata"`
	Data     map[string][]DistributorRecord `json:"data"`
	Sections map[string]map[string][]string `json:"sections"`
}
