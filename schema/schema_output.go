package schema

// EnrichedAuthorRecord adds presentation data to an AuthorRecord.
type EnrichedAuthorRecord struct {
	Rank      int    `json:"rank"`
	FirstDate string `json:"first_date"`
	LastDate  string `json:"last_date"`
	AuthorRecord
}

// EnrichAuthors adds rank and display dates to a list of author records.
func EnrichAuthors(authors []AuthorRecord) []EnrichedAuthorRecord {
	output := make([]EnrichedAuthorRecord, len(authors))
	for i, a := range authors {
		output[i] = EnrichedAuthorRecord{
			Rank:         i + 1,
			FirstDate:    a.FirstCommit.Format(DateLayout),
			LastDate:     a.LastCommit.Format(DateLayout),
			AuthorRecord: a,
		}
	}
	return output
}

// DailyCount is a single day of activity in serialized output.
type DailyCount struct {
	Date    string `json:"date"`
	Commits int    `json:"commits"`
}
