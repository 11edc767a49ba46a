package jobstream

// Event is one entry in the ad event stream. A removed event only carries
// the id and removal metadata; the remaining fields describe the ad as
// currently published.
type Event struct {
	ID              string     `json:"id"`
	Headline        string     `json:"headline"`
	Removed         bool       `json:"removed"`
	RemovedDate     string     `json:"removed_date"`
	PublicationDate string     `json:"publication_date"`
	LastUpdated     string     `json:"timestamp"`
	Occupation      ConceptRef `json:"occupation"`
	Workplace       Workplace  `json:"workplace_address"`
}

// ConceptRef points into the taxonomy.
type ConceptRef struct {
	ConceptID string `json:"concept_id"`
	Label     string `json:"label"`
}

type Workplace struct {
	Municipality string `json:"municipality"`
	Region       string `json:"region"`
}
