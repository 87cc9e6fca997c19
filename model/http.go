package model

type SearchRequestBody struct {
	Notes Notes `json:"notes"`
}

type SearchResult struct {
	Key          string       `json:"key"`
	PitchClasses []PitchClass `json:"pitch_classes"`
	Root         PitchClass   `json:"root"`
	RootName     string       `json:"root_name"`
	Quality      string       `json:"quality"`
}

type SearchResponse struct {
	NumMatches int            `json:"num_matches"`
	Results    []SearchResult `json:"results"`
}

type ErrorResponse struct {
	Error string `json:"detail"`
}
