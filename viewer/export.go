package viewer

import (
	"fmt"

	"github.com/geodatos/geoforms/model"
)

// Export formats accepted by the backend.
const (
	FormatXLSX = "xlsx"
	FormatCSV  = "csv"
	FormatJSON = "json"
)

// DateFilter bounds the submission list and exports. Empty strings mean
// unbounded; dates travel as YYYY-MM-DD.
type DateFilter struct {
	From string
	To   string
}

// ExportRequest is the body of the backend export call. Metadata is always
// requested; the backend decides what that includes per format.
type ExportRequest struct {
	Format          string  `json:"format"`
	IncludeMetadata bool    `json:"include_metadata"`
	DateFrom        *string `json:"date_from"`
	DateTo          *string `json:"date_to"`
}

// BuildExportRequest assembles the export call parameters for a format and
// date filter. Unset bounds are sent as JSON null.
func BuildExportRequest(format string, filter DateFilter) ExportRequest {
	req := ExportRequest{
		Format:          format,
		IncludeMetadata: true,
	}
	if filter.From != "" {
		from := filter.From
		req.DateFrom = &from
	}
	if filter.To != "" {
		to := filter.To
		req.DateTo = &to
	}
	return req
}

// ExportFilename names the downloaded blob after the form title.
func ExportFilename(form model.FormDocument, format string) string {
	return fmt.Sprintf("%s_export.%s", form.Title, format)
}
