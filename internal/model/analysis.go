package model

import "time"

// QuizAnswer is one answered quiz question submitted for analysis
type QuizAnswer struct {
	Question       string `json:"question" bson:"question"`
	SelectedOption Option `json:"selectedOption" bson:"selectedOption"`
}

// CareerRecommendation is one recommended profession in a full analysis
type CareerRecommendation struct {
	Title           string   `json:"title" bson:"title"`
	MatchPercentage int      `json:"match_percentage" bson:"matchPercentage"`
	Reason          string   `json:"reason" bson:"reason"`
	SkillsNeeded    []string `json:"skills_needed" bson:"skillsNeeded"`
}

// CareerAnalysis is the AI's reading of a completed interest quiz
type CareerAnalysis struct {
	ID                 string                 `json:"id,omitempty" bson:"_id,omitempty"`
	PersonalityType    string                 `json:"personality_type" bson:"personalityType"`
	Description        string                 `json:"description" bson:"description"`
	RecommendedCareers []CareerRecommendation `json:"recommended_careers" bson:"recommendedCareers"`
	Strengths          []string               `json:"strengths" bson:"strengths"`
	DevelopmentAreas   []string               `json:"development_areas" bson:"developmentAreas"`
	NextSteps          []string               `json:"next_steps" bson:"nextSteps"`
	Sectors            []string               `json:"sectors,omitempty" bson:"sectors,omitempty"`
	AnswerCount        int                    `json:"answerCount,omitempty" bson:"answerCount"`
	CreatedAt          time.Time              `json:"createdAt,omitempty" bson:"createdAt"`
}

// RecommendedJob is one entry of a mini-test analysis
type RecommendedJob struct {
	Title      string `json:"title"`
	MatchScore int    `json:"match_score"`
	Reason     string `json:"reason"`
	Type       string `json:"type"`
}

// MiniTestAnalysis is the AI's reading of a short roadmap mini-test
type MiniTestAnalysis struct {
	RecommendedJobs []RecommendedJob `json:"recommendedJobs"`
	Summary         string           `json:"summary"`
	Strengths       []string         `json:"strengths"`
}
