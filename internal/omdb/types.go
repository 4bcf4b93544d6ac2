package omdb

import "github.com/vadimtrunov/MovieSearch/internal/core"

// responseTrue is the success marker OMDb puts in the Response field.
const responseTrue = "True"

// envelope carries the status fields present in every OMDb response.
type envelope struct {
	Response string `json:"Response"`
	Error    string `json:"Error,omitempty"`
}

// searchResponse is the OMDb search response (?s=).
type searchResponse struct {
	envelope
	Search       []core.MovieSummary `json:"Search"`
	TotalResults string              `json:"totalResults,omitempty"`
}

// detailResponse is the OMDb title response (?i=).
type detailResponse struct {
	envelope
	core.MovieDetail
}
