package jobsearch

// SearchParams describe a job ad search request.
type SearchParams struct {
	Query            string
	Municipalities   []string
	Regions          []string
	OccupationGroups []string
	Employer         string
	Remote           *bool
	PublishedAfter   string
	Offset           int
	Limit            int
}

// SearchResult is a page of matching ads.
type SearchResult struct {
	Total int  `json:"total"`
	Hits  []Ad `json:"hits"`
}

// Ad is a published job advertisement.
type Ad struct {
	ID                  string           `json:"id"`
	Headline            string           `json:"headline"`
	Employer            Employer         `json:"employer"`
	WorkplaceAddress    WorkplaceAddress `json:"workplace_address"`
	PublicationDate     string           `json:"publication_date"`
	ApplicationDeadline string           `json:"application_deadline"`
	WebpageURL          string           `json:"webpage_url"`
	Description         Description      `json:"description"`
	Remote              bool             `json:"remote"`
}

type Employer struct {
	Name string `json:"name"`
}

type WorkplaceAddress struct {
	Municipality string `json:"municipality"`
	Region       string `json:"region"`
	Country      string `json:"country"`
}

type Description struct {
	Text string `json:"text"`
}

// CompleteResult holds typeahead suggestions for a partial query.
type CompleteResult struct {
	Typeahead []Suggestion `json:"typeahead"`
}

type Suggestion struct {
	Value       string `json:"value"`
	FoundPhrase string `json:"found_phrase"`
	Type        string `json:"type"`
	Occurrences int    `json:"occurrences"`
}

type searchResponse struct {
	Total struct {
		Value int `json:"value"`
	} `json:"total"`
	Hits []Ad `json:"hits"`
}
