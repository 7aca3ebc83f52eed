package search

// fieldColumns is the closed mapping from caller-facing field names to
// asset columns. Lookups are case-sensitive and exact; unmapped names are
// rejected rather than silently lower-cased into a column reference.
var fieldColumns = map[string]string{
	"Registration Date": "registration_date",
	"Asset ID":          "asset_id",
	"Asset Type":        "asset_type",
	"Make":              "make",
	"Model":             "model",
	"Serial Number":     "serial_number",
	"Operating System":  "operating_system",
	"Processor":         "processor",
	"RAM":               "ram",
	"Storage":           "storage",
	"Location":          "location",
	"Status":            "status",
	"Assignee":          "assignee",
	"Condition":         "condition",
	"Notes":             "notes",
}

// columnSet allows internal snake_case names to pass through unchanged.
var columnSet = func() map[string]bool {
	set := make(map[string]bool, len(fieldColumns))
	for _, col := range fieldColumns {
		set[col] = true
	}
	return set
}()

// ColumnForField resolves a caller-facing field name ("Asset Type") or an
// internal column name ("asset_type") to the asset column it addresses.
func ColumnForField(field string) (string, bool) {
	if col, ok := fieldColumns[field]; ok {
		return col, true
	}
	if columnSet[field] {
		return field, true
	}
	return "", false
}

// Fields lists the caller-facing field names accepted by the search and
// export endpoints.
func Fields() []string {
	fields := make([]string, 0, len(fieldColumns))
	for f := range fieldColumns {
		fields = append(fields, f)
	}
	return fields
}
