// Package registry holds the static catalog of supported question types.
// The catalog is fixed at compile time; lookups are pure and fail soft so
// that callers can fall back to a generic text rendering for unknown types.
package registry

// Category groups question types in the builder's type picker.
type Category string

const (
	CategoryBasic    Category = "basic"
	CategoryNumber   Category = "number"
	CategoryChoice   Category = "choice"
	CategoryDatetime Category = "datetime"
	CategoryLocation Category = "location"
	CategoryMedia    Category = "media"
	CategoryAdvanced Category = "advanced"
)

// Capabilities declares which builder/preview features apply to a question
// type, replacing scattered type-string comparisons.
type Capabilities struct {
	Options           bool // renders an option list (select, rating, ranking)
	OptionsOptional   bool // the option list may be empty (rating renders from its range)
	Range             bool // min/max bounds on the value itself
	LengthValidation  bool // min_length/max_length constraints
	NumericValidation bool // min/max constraints
}

// Descriptor is one immutable catalog entry.
type Descriptor struct {
	Type         string
	Label        string
	Category     Category
	Capabilities Capabilities
}

var catalog = []Descriptor{
	{Type: "text", Label: "Texto corto", Category: CategoryBasic, Capabilities: Capabilities{LengthValidation: true}},
	{Type: "textarea", Label: "Texto largo", Category: CategoryBasic, Capabilities: Capabilities{LengthValidation: true}},
	{Type: "email", Label: "Email", Category: CategoryBasic, Capabilities: Capabilities{LengthValidation: true}},
	{Type: "phone", Label: "Teléfono", Category: CategoryBasic, Capabilities: Capabilities{LengthValidation: true}},
	{Type: "url", Label: "URL", Category: CategoryBasic},
	{Type: "integer", Label: "Número entero", Category: CategoryNumber, Capabilities: Capabilities{NumericValidation: true}},
	{Type: "decimal", Label: "Decimal", Category: CategoryNumber, Capabilities: Capabilities{NumericValidation: true}},
	{Type: "range", Label: "Rango/Slider", Category: CategoryNumber, Capabilities: Capabilities{Range: true}},
	{Type: "select_one", Label: "Selección única", Category: CategoryChoice, Capabilities: Capabilities{Options: true}},
	{Type: "select_multiple", Label: "Selección múltiple", Category: CategoryChoice, Capabilities: Capabilities{Options: true}},
	{Type: "rating", Label: "Calificación", Category: CategoryChoice, Capabilities: Capabilities{Options: true, OptionsOptional: true, Range: true}},
	{Type: "date", Label: "Fecha", Category: CategoryDatetime},
	{Type: "time", Label: "Hora", Category: CategoryDatetime},
	{Type: "datetime", Label: "Fecha y hora", Category: CategoryDatetime},
	{Type: "geopoint", Label: "Ubicación GPS", Category: CategoryLocation},
	{Type: "image", Label: "Imagen", Category: CategoryMedia},
	{Type: "audio", Label: "Audio", Category: CategoryMedia},
	{Type: "video", Label: "Video", Category: CategoryMedia},
	{Type: "file", Label: "Archivo", Category: CategoryMedia},
	{Type: "barcode", Label: "Código QR/Barras", Category: CategoryMedia},
	{Type: "calculate", Label: "Calculado", Category: CategoryAdvanced},
	{Type: "note", Label: "Nota informativa", Category: CategoryAdvanced},
	{Type: "hidden", Label: "Campo oculto", Category: CategoryAdvanced},
}

var categories = []struct {
	Key   Category
	Label string
}{
	{CategoryBasic, "Básicos"},
	{CategoryNumber, "Números"},
	{CategoryChoice, "Selección"},
	{CategoryDatetime, "Fecha/Hora"},
	{CategoryLocation, "Ubicación"},
	{CategoryMedia, "Multimedia"},
	{CategoryAdvanced, "Avanzados"},
}

// Lookup returns the descriptor for a question type. The second return is
// false for unregistered types; callers must treat those as text-like
// rather than erroring.
func Lookup(questionType string) (Descriptor, bool) {
	for _, d := range catalog {
		if d.Type == questionType {
			return d, true
		}
	}
	return Descriptor{}, false
}

// ListByCategory returns descriptors of one category in registration order.
func ListByCategory(c Category) []Descriptor {
	var out []Descriptor
	for _, d := range catalog {
		if d.Category == c {
			out = append(out, d)
		}
	}
	return out
}

// All returns the full catalog in registration order.
func All() []Descriptor {
	out := make([]Descriptor, len(catalog))
	copy(out, catalog)
	return out
}

// CategoryLabel returns the display label of a picker category.
func CategoryLabel(c Category) string {
	for _, cat := range categories {
		if cat.Key == c {
			return cat.Label
		}
	}
	return string(c)
}

// Categories returns the picker categories in display order.
func Categories() []Category {
	out := make([]Category, len(categories))
	for i, c := range categories {
		out[i] = c.Key
	}
	return out
}
