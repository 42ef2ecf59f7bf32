package media

// Kind classifies a catalog entry as a film or a series.
type Kind string

const (
	KindUnknown Kind = ""
	KindFilm    Kind = "film"
	KindSeries  Kind = "series"
)

func (k Kind) String() string {
	switch k {
	case KindFilm:
		return "film"
	case KindSeries:
		return "series"
	default:
		return "unknown"
	}
}

// Candidate references one catalog entry during and after resolution.
// Score only matters while ranking search results; aggregated franchise
// members carry a neutral zero score.
type Candidate struct {
	ID    int64
	Name  string
	Kind  Kind
	Year  int
	Score float64
}

// ParsedQuery is the outcome of parsing one raw user query: the normalized
// title, an optional release year (0 when absent), and an optional kind hint
// extracted from marker words.
type ParsedQuery struct {
	Title string
	Year  int
	Hint  Kind
}
