package model

import "strings"

// AudienceTier partitions the question catalogue by the respondent's life stage
type AudienceTier string

const (
	TierSMP       AudienceTier = "SMP"       // Junior high students, age 15 and below
	TierSMA       AudienceTier = "SMA"       // Senior high students, age 16-18
	TierMahasiswa AudienceTier = "MAHASISWA" // University students and professionals, 19+
)

// Tiers lists every audience tier, youngest first
var Tiers = []AudienceTier{TierSMP, TierSMA, TierMahasiswa}

// TierForAge maps a respondent's age to a tier. An age of zero or less
// means the age was not given and resolves to the adult tier.
func TierForAge(age int) AudienceTier {
	switch {
	case age <= 0:
		return TierMahasiswa
	case age <= 15:
		return TierSMP
	case age <= 18:
		return TierSMA
	default:
		return TierMahasiswa
	}
}

// ParseTier resolves a wire name (case-insensitive) to a tier
func ParseTier(s string) (AudienceTier, bool) {
	t := AudienceTier(strings.ToUpper(strings.TrimSpace(s)))
	for _, known := range Tiers {
		if t == known {
			return t, true
		}
	}
	return "", false
}

// Context returns a short description of the audience used in prompts
func (t AudienceTier) Context() string {
	switch t {
	case TierSMP:
		return "User adalah siswa SMP (12-15 tahun)"
	case TierSMA:
		return "User adalah siswa SMA (16-18 tahun)"
	default:
		return "User adalah mahasiswa/profesional (19+ tahun)"
	}
}
