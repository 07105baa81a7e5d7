package model

// Category is the psychological or work dimension a question probes
type Category string

const (
	CategoryWorkEnvironment  Category = "work_environment"
	CategoryInteractionStyle Category = "interaction_style"
	CategoryProblemSolving   Category = "problem_solving"
	CategoryStressPressure   Category = "stress_pressure"
	CategoryValuesMotivation Category = "values_motivation"
)

// Categories lists every category in declaration order. Quiz assembly
// concatenates per-category picks in this order before shuffling.
var Categories = []Category{
	CategoryWorkEnvironment,
	CategoryInteractionStyle,
	CategoryProblemSolving,
	CategoryStressPressure,
	CategoryValuesMotivation,
}

// categoryPercent holds each category's share of a generated quiz. Sums to 100.
var categoryPercent = map[Category]int{
	CategoryWorkEnvironment:  25,
	CategoryInteractionStyle: 25,
	CategoryProblemSolving:   20,
	CategoryStressPressure:   15,
	CategoryValuesMotivation: 15,
}

// Percent returns the category's target share of a quiz, in percent
func (c Category) Percent() int {
	return categoryPercent[c]
}

// Label returns the heading used for the category in AI prompts
func (c Category) Label() string {
	switch c {
	case CategoryWorkEnvironment:
		return "WORK ENVIRONMENT"
	case CategoryInteractionStyle:
		return "INTERACTION STYLE"
	case CategoryProblemSolving:
		return "PROBLEM SOLVING"
	case CategoryStressPressure:
		return "STRESS & PRESSURE"
	case CategoryValuesMotivation:
		return "VALUES & MOTIVATION"
	}
	return string(c)
}

// IsValid reports whether c is one of the fixed categories
func (c Category) IsValid() bool {
	_, ok := categoryPercent[c]
	return ok
}
