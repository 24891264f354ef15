package resolver

// Record is a named entity with an opaque payload forwarded unchanged on match
type Record[T any] struct {
	Name    string `json:"name"`
	Payload T      `json:"payload"`
}

// Stage identifies which matching stage produced a result
type Stage string

const (
	StageExact      Stage = "exact"
	StageSubstring  Stage = "substring"
	StageSimilarity Stage = "similarity"
	StageNone       Stage = "none"
)

// Match is the outcome of a single resolution
// Found=false means no record cleared any stage; Record is then the zero value.
type Match[T any] struct {
	Record Record[T] `json:"record"`
	Query  string    `json:"query"`
	Stage  Stage     `json:"stage"`
	Score  float64   `json:"score"`
	Found  bool      `json:"found"`
}

// Candidate is a scored corpus entry
type Candidate[T any] struct {
	Record Record[T] `json:"record"`
	Index  int       `json:"index"`
	Score  float64   `json:"score"`
}
