package model

// Quiz sources
const (
	SourceAI   = "ai"
	SourcePool = "pool"
)

// QuizMetadata describes how a quiz was produced
type QuizMetadata struct {
	Seed      int          `json:"seed"`
	UniqueID  string       `json:"uniqueId"`
	AgeGroup  AudienceTier `json:"ageGroup"`
	Timestamp int64        `json:"timestamp"` // Unix milliseconds
	Generated int          `json:"generated"`
	Requested int          `json:"requested"`
	Source    string       `json:"source"`
}

// Quiz is a set of questions handed to a respondent
type Quiz struct {
	ID        string             `json:"id,omitempty"`
	Questions []SelectedQuestion `json:"questions"`
	Metadata  *QuizMetadata      `json:"metadata,omitempty"`
}
