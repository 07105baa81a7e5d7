package model

import "time"

// RoadmapRequest describes who the roadmap is for
type RoadmapRequest struct {
	TargetRole     string   `json:"targetRole"`
	CurrentStatus  string   `json:"currentStatus"`
	HasGoal        bool     `json:"hasGoal"`
	ExistingSkills []string `json:"existingSkills"`
}

type LearningResource struct {
	Name string `json:"name"`
	Type string `json:"type"` // course, book, tutorial
	Link string `json:"link"`
}

type Certification struct {
	Name     string `json:"name"`
	Provider string `json:"provider"`
	Priority string `json:"priority"` // high, medium, low
}

// RoadmapPhase is one stage of a career roadmap
type RoadmapPhase struct {
	Phase             string             `json:"phase"`
	Duration          string             `json:"duration"`
	Description       string             `json:"description"`
	Skills            []string           `json:"skills"`
	LearningResources []LearningResource `json:"learningResources"`
	Certifications    []Certification    `json:"certifications"`
	Milestones        []string           `json:"milestones"`
}

// Roadmap is a phased plan towards a target role
type Roadmap struct {
	ID            string         `json:"id,omitempty"`
	Title         string         `json:"title"`
	Overview      string         `json:"overview"`
	EstimatedTime string         `json:"estimatedTime"`
	Phases        []RoadmapPhase `json:"phases"`
	CareerTips    []string       `json:"careerTips"`
	CreatedAt     time.Time      `json:"createdAt,omitempty"`
}

// NextStepsRequest carries a user's progress through a roadmap. Either
// Roadmap or RoadmapID must be set.
type NextStepsRequest struct {
	Roadmap         *Roadmap `json:"roadmap,omitempty"`
	RoadmapID       string   `json:"roadmapId,omitempty"`
	CompletedPhases []int    `json:"completedPhases"`
	CurrentSkills   []string `json:"currentSkills"`
}

type NextStep struct {
	Step          string `json:"step"`
	Priority      string `json:"priority"`
	EstimatedTime string `json:"estimatedTime"`
}

type CertificationAdvice struct {
	Name    string `json:"name"`
	Reason  string `json:"reason"`
	Urgency string `json:"urgency"`
}

// NextSteps is the AI's guidance for the user's current roadmap position
type NextSteps struct {
	CurrentPhase              string                `json:"currentPhase"`
	ProgressPercentage        int                   `json:"progressPercentage"`
	NextSteps                 []NextStep            `json:"nextSteps"`
	RecommendedCertifications []CertificationAdvice `json:"recommendedCertifications"`
	SkillGaps                 []string              `json:"skillGaps"`
	MotivationalMessage       string                `json:"motivationalMessage"`
}
