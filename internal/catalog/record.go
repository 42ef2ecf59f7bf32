package catalog

// Record models one loosely-typed catalog document. Every field is optional;
// accessor methods implement the fallback priority chains.
type Record struct {
	ID              int64  `json:"id"`
	KpID            int64  `json:"kpId"`
	KinopoiskID     int64  `json:"kinopoiskId"`
	Name            string `json:"name"`
	AlternativeName string `json:"alternativeName"`
	EnName          string `json:"enName"`
	Year            int    `json:"year"`
	Type            string `json:"type"`
	IsSeries        *bool  `json:"isSeries,omitempty"`
	Serial          *bool  `json:"serial,omitempty"`
	SeriesLength    int    `json:"seriesLength,omitempty"`

	SeasonsInfo        []SeasonInfo `json:"seasonsInfo,omitempty"`
	Poster             *Poster      `json:"poster,omitempty"`
	Rating             *Rating      `json:"rating,omitempty"`
	Genres             []Genre      `json:"genres,omitempty"`
	SequelsAndPrequels []Record     `json:"sequelsAndPrequels,omitempty"`
}

// SeasonInfo describes one season entry of a series record.
type SeasonInfo struct {
	Number        int `json:"number"`
	EpisodesCount int `json:"episodesCount"`
}

// Poster carries the poster image URL variants.
type Poster struct {
	URL        string `json:"url"`
	PreviewURL string `json:"previewUrl"`
}

// Rating carries the catalog rating variants; only the KP value is rendered.
type Rating struct {
	KP   float64 `json:"kp"`
	IMDB float64 `json:"imdb"`
}

// Genre is a named genre entry.
type Genre struct {
	Name string `json:"name"`
}

// CatalogID returns the record identifier, trying id, then kpId, then
// kinopoiskId. The second return is false when no identifier is usable.
func (r Record) CatalogID() (int64, bool) {
	for _, id := range []int64{r.ID, r.KpID, r.KinopoiskID} {
		if id > 0 {
			return id, true
		}
	}
	return 0, false
}

// DisplayName returns the record name, falling back through alternativeName
// and enName, then a "?" placeholder.
func (r Record) DisplayName() string {
	for _, name := range []string{r.Name, r.AlternativeName, r.EnName} {
		if name != "" {
			return name
		}
	}
	return "?"
}

// NameVariants returns the name fields in scoring order; missing fields are
// empty strings.
func (r Record) NameVariants() [3]string {
	return [3]string{r.Name, r.AlternativeName, r.EnName}
}

// PosterURL returns the poster URL or "" when absent.
func (r Record) PosterURL() string {
	if r.Poster == nil {
		return ""
	}
	return r.Poster.URL
}

// RatingKP returns the KP rating or 0 when absent.
func (r Record) RatingKP() float64 {
	if r.Rating == nil {
		return 0
	}
	return r.Rating.KP
}

// GenreNames returns the non-empty genre names in catalog order.
func (r Record) GenreNames() []string {
	if len(r.Genres) == 0 {
		return nil
	}
	names := make([]string, 0, len(r.Genres))
	for _, g := range r.Genres {
		if g.Name != "" {
			names = append(names, g.Name)
		}
	}
	return names
}
