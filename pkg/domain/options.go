package domain

// All is the inactive value shared by every filter dimension.
const All = "all"

type Category string

const (
	CategoryGastronomia     Category = "gastronomia"
	CategoryDeportes        Category = "deportes"
	CategoryEntretenimiento Category = "entretenimiento"
	CategoryArteCultura     Category = "arte-cultura"
	CategoryOutdoor         Category = "outdoor"
	CategoryBienestar       Category = "bienestar"
)

var categoryLabels = map[Category]string{
	CategoryGastronomia:     "Gastronomía",
	CategoryDeportes:        "Deportes",
	CategoryEntretenimiento: "Entretenimiento",
	CategoryArteCultura:     "Arte & Cultura",
	CategoryOutdoor:         "Outdoor",
	CategoryBienestar:       "Bienestar",
}

var categoryOrder = []Category{
	CategoryGastronomia,
	CategoryDeportes,
	CategoryEntretenimiento,
	CategoryArteCultura,
	CategoryOutdoor,
	CategoryBienestar,
}

func (c Category) Valid() bool {
	_, ok := categoryLabels[c]
	return ok
}

// Label returns the display label, or the raw value when unknown.
func (c Category) Label() string {
	if l, ok := categoryLabels[c]; ok {
		return l
	}
	return string(c)
}

// Zone is the coarse region tag of an event.
type Zone string

const (
	ZoneCentro Zone = "centro"
	ZoneNorte  Zone = "norte"
	ZoneSur    Zone = "sur"
	ZoneEste   Zone = "este"
	ZoneOeste  Zone = "oeste"
)

var zoneLabels = map[Zone]string{
	ZoneCentro: "Centro",
	ZoneNorte:  "Zona Norte",
	ZoneSur:    "Zona Sur",
	ZoneEste:   "Zona Este",
	ZoneOeste:  "Zona Oeste",
}

var zoneOrder = []Zone{ZoneCentro, ZoneNorte, ZoneSur, ZoneEste, ZoneOeste}

func (z Zone) Valid() bool {
	_, ok := zoneLabels[z]
	return ok
}

func (z Zone) Label() string {
	if l, ok := zoneLabels[z]; ok {
		return l
	}
	return string(z)
}

type DateRange string

const (
	DateRangeToday    DateRange = "today"
	DateRangeTomorrow DateRange = "tomorrow"
	DateRangeWeek     DateRange = "week"
	DateRangeMonth    DateRange = "month"
	DateRangeFuture   DateRange = "future"
)

var dateRangeLabels = map[DateRange]string{
	DateRangeToday:    "Hoy",
	DateRangeTomorrow: "Mañana",
	DateRangeWeek:     "Esta semana",
	DateRangeMonth:    "Este mes",
	DateRangeFuture:   "Próximos",
}

var dateRangeOrder = []DateRange{
	DateRangeToday,
	DateRangeTomorrow,
	DateRangeWeek,
	DateRangeMonth,
	DateRangeFuture,
}

func (d DateRange) Valid() bool {
	_, ok := dateRangeLabels[d]
	return ok
}

func (d DateRange) Label() string {
	if l, ok := dateRangeLabels[d]; ok {
		return l
	}
	return string(d)
}

type PriceRange string

const (
	PriceRangeFree   PriceRange = "free"
	PriceRangeLow    PriceRange = "low"
	PriceRangeMedium PriceRange = "medium"
	PriceRangeHigh   PriceRange = "high"
)

var priceRangeLabels = map[PriceRange]string{
	PriceRangeFree:   "Gratis",
	PriceRangeLow:    "$1 - $25",
	PriceRangeMedium: "$26 - $50",
	PriceRangeHigh:   "$51+",
}

var priceRangeOrder = []PriceRange{PriceRangeFree, PriceRangeLow, PriceRangeMedium, PriceRangeHigh}

func (p PriceRange) Valid() bool {
	_, ok := priceRangeLabels[p]
	return ok
}

func (p PriceRange) Label() string {
	if l, ok := priceRangeLabels[p]; ok {
		return l
	}
	return string(p)
}

// Option is one selectable value of a filter dimension.
type Option struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

// FilterOptions lists every dimension's options, each starting with "all".
type FilterOptions struct {
	Categories  []Option `json:"categories"`
	Locations   []Option `json:"locations"`
	DateRanges  []Option `json:"dateRanges"`
	PriceRanges []Option `json:"priceRanges"`
}

func NewFilterOptions() FilterOptions {
	opts := FilterOptions{
		Categories:  []Option{{Value: All, Label: "Todas las categorías"}},
		Locations:   []Option{{Value: All, Label: "Todas las ubicaciones"}},
		DateRanges:  []Option{{Value: All, Label: "Todas las fechas"}},
		PriceRanges: []Option{{Value: All, Label: "Todos los precios"}},
	}
	for _, c := range categoryOrder {
		opts.Categories = append(opts.Categories, Option{Value: string(c), Label: c.Label()})
	}
	for _, z := range zoneOrder {
		opts.Locations = append(opts.Locations, Option{Value: string(z), Label: z.Label()})
	}
	for _, d := range dateRangeOrder {
		opts.DateRanges = append(opts.DateRanges, Option{Value: string(d), Label: d.Label()})
	}
	for _, p := range priceRangeOrder {
		opts.PriceRanges = append(opts.PriceRanges, Option{Value: string(p), Label: p.Label()})
	}
	return opts
}
