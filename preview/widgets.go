package preview

// Widget is the input control a question renders as. The mapping from
// question type to widget is fixed; unknown types degrade to a plain text
// input instead of erroring.
type Widget int

const (
	WidgetText Widget = iota
	WidgetTextarea
	WidgetNumber
	WidgetDate
	WidgetTime
	WidgetDateTime
	WidgetRadio
	WidgetCheckbox
	WidgetRating
	WidgetScale
	WidgetFile
	WidgetGeopoint
	WidgetNote
)

var widgetByType = map[string]Widget{
	"text":            WidgetText,
	"email":           WidgetText,
	"phone":           WidgetText,
	"url":             WidgetText,
	"barcode":         WidgetText,
	"hidden":          WidgetText,
	"calculate":       WidgetText,
	"textarea":        WidgetTextarea,
	"integer":         WidgetNumber,
	"decimal":         WidgetNumber,
	"date":            WidgetDate,
	"time":            WidgetTime,
	"datetime":        WidgetDateTime,
	"select_one":      WidgetRadio,
	"select_multiple": WidgetCheckbox,
	"rating":          WidgetRating,
	"range":           WidgetScale,
	"image":           WidgetFile,
	"audio":           WidgetFile,
	"video":           WidgetFile,
	"file":            WidgetFile,
	"geopoint":        WidgetGeopoint,
	"note":            WidgetNote,
}

// WidgetFor maps a question type to its input widget, falling back to a
// text input for unmapped types.
func WidgetFor(questionType string) Widget {
	if w, ok := widgetByType[questionType]; ok {
		return w
	}
	return WidgetText
}

// Placeholder returns the hint text of a file/media or GPS widget; it is
// empty for interactive widgets.
func Placeholder(questionType string) string {
	switch questionType {
	case "image":
		return "Haz clic para subir una imagen"
	case "audio":
		return "Grabar audio"
	case "video":
		return "Grabar video"
	case "file":
		return "Adjuntar archivo"
	case "geopoint":
		return "Obtener ubicación"
	}
	return ""
}
