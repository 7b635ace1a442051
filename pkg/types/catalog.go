package types

// CatalogEntry is one file of a catalog listing.
type CatalogEntry struct {
	Name      string `json:"name"`
	RelPath   string `json:"rel_path"`
	Extension string `json:"extension"`
}

// ExtensionCount pairs an extension with the number of files carrying it.
type ExtensionCount struct {
	Extension string `json:"extension"`
	Count     int    `json:"count"`
}

// CatalogSummary is the aggregate view of an unfiltered scan.
type CatalogSummary struct {
	Root            string         `json:"root"`
	ExtensionCounts map[string]int `json:"extension_counts"`
	DirectoryCount  int            `json:"directory_count"`
	Files           []CatalogEntry `json:"files"`
	FileCount       int            `json:"file_count"`
	Warnings        []ScanWarning  `json:"warnings,omitempty"`
}
