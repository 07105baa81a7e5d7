package service

import (
	"encoding/json"
	"fmt"
	"strings"

	"hmate/internal/model"
)

const assistantIdentity = `Kamu adalah H-Mate AI Assistant, asisten karier untuk generasi muda Indonesia.`

const consultationSystem = assistantIdentity + `

TUGAS UTAMA:
- Berikan saran karier yang praktis, realistis, dan relevan dengan kondisi Indonesia
- Bahas SEMUA bidang karier, bukan hanya digital/teknologi
- Berikan contoh konkret dan langkah yang bisa langsung dilakukan
- Dorong user untuk mengeksplorasi minat mereka

BIDANG YANG KAMU KUASAI:
Teknologi & Digital, Kesehatan, Hukum & Keamanan, Pendidikan, Bisnis,
Kreatif, Teknik, Pertanian & Peternakan, Sosial, serta pekerjaan terampil
seperti Chef, Teknisi, dan Mekanik.

GAYA KOMUNIKASI:
- Ramah seperti kakak tingkat yang berpengalaman
- Hindari jargon teknis kecuali diminta
- Maksimal 3-4 paragraf per jawaban

BATASAN:
- Jangan memberikan saran medis atau hukum yang spesifik
- Jika pertanyaan di luar karier/edukasi, arahkan kembali ke topik
- Akui jika tidak tahu dan tawarkan alternatif

Jawab dalam Bahasa Indonesia yang natural dan enak dibaca.`

type languageGuide struct {
	level   string
	example string
}

var tierLanguage = map[model.AudienceTier]languageGuide{
	model.TierSMP: {
		level: `BAHASA: SANGAT SEDERHANA
- Pakai kata sehari-hari: suka, senang, main, belajar, kerja
- HINDARI: produktif, efisien, optimal, preferensi
- Pertanyaan MAX 15 kata, opsi MAX 10 kata`,
		example: `CONTOH BAGUS (SMP):
"Kalau weekend, kamu lebih suka ngapain?"
A. Main bareng temen di luar
B. Santai di rumah sendiri
C. Belajar hal baru
D. Olahraga atau aktivitas fisik`,
	},
	model.TierSMA: {
		level: `BAHASA: SANTAI TAPI MATURE
- Boleh pakai istilah umum tapi tetap jelas
- Lebih formal dari SMP tapi tetap casual
- Pertanyaan MAX 20 kata, opsi MAX 12 kata`,
		example: `CONTOH BAGUS (SMA):
"Environment kerja yang bikin kamu paling produktif:"
A. Office dengan struktur jelas
B. Outdoor atau field work
C. Remote/WFH yang fleksibel
D. Co-working space yang vibrant`,
	},
	model.TierMahasiswa: {
		level: `BAHASA: PROFESIONAL FRIENDLY
- Boleh pakai terminologi karir
- Semi-formal tapi approachable
- Pertanyaan bisa lebih kompleks`,
		example: `CONTOH BAGUS (MAHASISWA):
"Collaboration style yang cocok dengan kamu:"
A. Agile team dengan daily standups
B. Independent dengan weekly sync
C. Cross-functional team projects
D. Solo contributor dengan clear goals`,
	},
}

const questionFormat = `{"questions":[{"id":1,"question":"...","options":[{"value":"A","text":"..."},{"value":"B","text":"..."},{"value":"C","text":"..."},{"value":"D","text":"..."}]}]}`

func questionsSystemInstruction(count int, tier model.AudienceTier, uniqueID string) string {
	guide := tierLanguage[tier]

	var cats strings.Builder
	for i, c := range model.Categories {
		fmt.Fprintf(&cats, "%d. %s (%d%%)\n", i+1, c.Label(), c.Percent())
	}

	return fmt.Sprintf(`%s

MISI: Buat %d pertanyaan tes minat bakat yang FRESH, UNIK, dan VALID untuk career matching.

UNIQUE SEED: %s
TARGET: %s
%s

%s

KATEGORI PERTANYAAN:
%s
FORMAT WAJIB (PURE JSON, tanpa teks lain, tanpa markdown):
%s

%s

PENTING:
- Semua %d pertanyaan HARUS lengkap
- Setiap pertanyaan HARUS punya 4 opsi
- Output HANYA JSON`,
		assistantIdentity, count, uniqueID, tier, tier.Context(), guide.level,
		cats.String(), questionFormat, guide.example, count)
}

func questionsPrompt(count int, tier model.AudienceTier, uniqueID string) string {
	return fmt.Sprintf(`Generate %d pertanyaan tes minat bakat.

SEED: %s
TARGET: %s

CRITICAL: Output ONLY valid JSON, no other text!

Format:
%s`, count, uniqueID, tier, questionFormat)
}

// Sector tags carried by mini-test options
var miniTestSectors = []string{"technical", "health", "law", "education", "engineering", "creative", "business", "agriculture", "social", "service"}

func miniTestSystemInstruction(count int) string {
	return fmt.Sprintf(`%s Kamu membuat tes minat bakat CEPAT untuk menentukan arah karier dari SEMUA bidang.

TUGAS:
Buat %d pertanyaan singkat untuk mengetahui minat karier seseorang.

OUTPUT HARUS BERUPA JSON VALID:
{"questions":[{"id":1,"question":"Pertanyaan singkat","options":[{"value":"A","text":"Opsi A","category":"technical"},{"value":"B","text":"Opsi B","category":"health"},{"value":"C","text":"Opsi C","category":"education"},{"value":"D","text":"Opsi D","category":"creative"}]}]}

KRITERIA:
- Pertanyaan SINGKAT (max 15 kata)
- Fokus pada tipe pekerjaan, skill, lingkungan kerja, dan mata pelajaran favorit
- Setiap opsi punya category dari: %s
- Bahasa Indonesia yang casual
- Variasikan ke semua bidang, jangan hanya teknologi

Output HANYA JSON, tanpa teks tambahan.`, assistantIdentity, count, quoteList(miniTestSectors))
}

func miniTestPrompt(count int) string {
	return fmt.Sprintf("Buatkan %d pertanyaan mini test untuk menentukan arah karier dari SEMUA bidang (teknologi, kesehatan, hukum, pendidikan, dll). Output JSON.", count)
}

const analysisSystem = assistantIdentity + `

MISI: Analisis tes minat bakat dan berikan rekomendasi TEPAT dari 100+ profesi.

OUTPUT FORMAT (PURE JSON tanpa markdown):
{
  "personality_type": "Tipe (2-3 kata)",
  "description": "Deskripsi singkat (MAX 200 karakter)",
  "recommended_careers": [
    {"title": "Nama Profesi", "match_percentage": 85, "reason": "Alasan spesifik (MAX 150 karakter)", "skills_needed": ["Skill 1", "Skill 2", "Skill 3"]}
  ],
  "strengths": ["Kekuatan 1", "Kekuatan 2", "Kekuatan 3", "Kekuatan 4"],
  "development_areas": ["Area 1", "Area 2", "Area 3"],
  "next_steps": ["Step 1", "Step 2", "Step 3"]
}

KRITERIA:
1. TEPAT 5 karir dari MINIMAL 4 sektor berbeda (Tech, Creative, Medical, Business, Education, Law, dll)
2. Match % realistis (80-98% teratas, 65-79% lainnya)
3. Reason SPESIFIK ke jawaban user
4. Skills KONKRET
5. Personality type salah satu dari: "Natural Leader", "Analytical Thinker", "Creative Innovator",
   "Compassionate Helper", "Technical Problem Solver", "Hands-on Doer", "Strategic Planner", "Social Communicator"`

func analysisPrompt(answers []model.QuizAnswer) string {
	parts := make([]string, len(answers))
	for i, a := range answers {
		parts[i] = fmt.Sprintf("Q%d: %s\nA: %s", i+1, a.Question, a.SelectedOption.Text)
	}
	return fmt.Sprintf(`Analisis hasil tes ini dan berikan rekomendasi TEPAT dan BERAGAM:

%s

CRITICAL: 5 karir dari MINIMAL 4 sektor berbeda, reason spesifik, output PURE JSON.`, strings.Join(parts, "\n\n"))
}

const miniTestAnalysisSystem = assistantIdentity + `

TUGAS:
Analisis jawaban mini test dan berikan 5 rekomendasi karier dari BERBAGAI bidang.

OUTPUT HARUS BERUPA JSON VALID:
{
  "recommendedJobs": [
    {"title": "Nama Profesi", "match_score": 90, "reason": "Alasan singkat (1 kalimat)", "type": "technical/health/law/education/engineering/creative/business/agriculture/social/service"}
  ],
  "summary": "Ringkasan singkat kepribadian kerja user (2-3 kalimat)",
  "strengths": ["Kekuatan 1", "Kekuatan 2", "Kekuatan 3"]
}

KRITERIA:
- TEPAT 5 rekomendasi, dari berbagai sektor, realistis untuk Indonesia
- Match score berdasarkan kecocokan jawaban
- Summary memotivasi tapi realistis
- Jangan paksa ke teknologi

Output HANYA JSON, tanpa teks tambahan.`

func miniTestAnalysisPrompt(answers []model.QuizAnswer) string {
	parts := make([]string, len(answers))
	for i, a := range answers {
		category := a.SelectedOption.Category
		if category == "" {
			category = "unknown"
		}
		parts[i] = fmt.Sprintf("Q%d: %s\nJawaban: %s (category: %s)", i+1, a.Question, a.SelectedOption.Text, category)
	}
	return "Analisis mini test berikut dan berikan rekomendasi karier dari BERBAGAI bidang (bukan hanya teknologi):\n\n" + strings.Join(parts, "\n\n")
}

func skillsOrNone(skills []string) string {
	if len(skills) == 0 {
		return "Belum ada"
	}
	return strings.Join(skills, ", ")
}

func roadmapSystemInstruction(req model.RoadmapRequest) string {
	return fmt.Sprintf(`Kamu adalah career advisor yang membuat roadmap karier terstruktur.

TUGAS:
Buat roadmap karier lengkap untuk mencapai posisi: %s

Status user: %s
Skill yang sudah dimiliki: %s

OUTPUT HARUS BERUPA JSON VALID:
{
  "title": "%s Career Roadmap",
  "overview": "Ringkasan singkat roadmap (2-3 kalimat)",
  "estimatedTime": "Total waktu estimasi (contoh: 12-18 bulan)",
  "phases": [
    {
      "phase": "Phase 1: Foundation",
      "duration": "3-4 bulan",
      "description": "Deskripsi singkat fase ini",
      "skills": ["Skill 1", "Skill 2"],
      "learningResources": [{"name": "Nama resource", "type": "course/book/tutorial", "link": "URL atau 'search online'"}],
      "certifications": [{"name": "Nama sertifikasi", "provider": "Provider", "priority": "high/medium/low"}],
      "milestones": ["Milestone 1", "Milestone 2"]
    }
  ],
  "careerTips": ["Tips 1", "Tips 2", "Tips 3"]
}

KRITERIA:
- 3-5 phases, setiap phase 2-6 bulan
- Skills berurutan dari fundamental ke advanced
- Prioritaskan learning resources gratis/freemium
- Sertifikasi relevan dengan industri Indonesia
- Milestones konkret dan measurable

Output HANYA JSON, tanpa teks tambahan.`, req.TargetRole, req.CurrentStatus, skillsOrNone(req.ExistingSkills), req.TargetRole)
}

func roadmapPrompt(req model.RoadmapRequest) string {
	prompt := fmt.Sprintf("Buatkan roadmap karier lengkap untuk %s. User adalah %s.", req.TargetRole, req.CurrentStatus)
	if len(req.ExistingSkills) > 0 {
		prompt += fmt.Sprintf(" Skill yang sudah dimiliki: %s.", strings.Join(req.ExistingSkills, ", "))
	}
	if req.HasGoal {
		prompt += " User sudah yakin dengan tujuan kariernya."
	}
	return prompt + " Output JSON."
}

const nextStepsSystem = `Kamu adalah career mentor yang memberikan guidance untuk langkah selanjutnya.

TUGAS:
Berdasarkan roadmap dan progress user, berikan langkah-langkah konkret selanjutnya.

OUTPUT HARUS BERUPA JSON VALID:
{
  "currentPhase": "Nama fase saat ini",
  "progressPercentage": 45,
  "nextSteps": [{"step": "Langkah spesifik", "priority": "high/medium/low", "estimatedTime": "Waktu estimasi"}],
  "recommendedCertifications": [{"name": "Nama sertifikat", "reason": "Kenapa penting sekarang", "urgency": "high/medium/low"}],
  "skillGaps": ["Skill yang masih perlu dipelajari"],
  "motivationalMessage": "Pesan motivasi singkat (2-3 kalimat)"
}

KRITERIA:
- Next steps konkret dan actionable
- Prioritaskan berdasarkan phase saat ini
- Skill gaps spesifik

Output HANYA JSON, tanpa teks tambahan.`

type phaseProgress struct {
	Index     int    `json:"index"`
	Phase     string `json:"phase"`
	Completed bool   `json:"completed"`
}

type roadmapProgress struct {
	Title  string          `json:"title"`
	Phases []phaseProgress `json:"phases"`
}

func nextStepsPrompt(roadmap *model.Roadmap, completed []int, skills []string) (string, error) {
	done := make(map[int]bool, len(completed))
	for _, i := range completed {
		done[i] = true
	}
	progress := roadmapProgress{Title: roadmap.Title, Phases: make([]phaseProgress, len(roadmap.Phases))}
	for i, p := range roadmap.Phases {
		progress.Phases[i] = phaseProgress{Index: i, Phase: p.Phase, Completed: done[i]}
	}
	summary, err := json.Marshal(progress)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("User sedang mengikuti roadmap berikut:\n%s\n\nSkill yang sudah dimiliki: %s.\n\nBerikan next steps dan rekomendasi. Output JSON.",
		summary, skillsOrNone(skills)), nil
}

func roadmapConsultationSystem(roadmapContext json.RawMessage) string {
	ctx := "User sedang mengikuti roadmap karier"
	if len(roadmapContext) > 0 && string(roadmapContext) != "null" {
		ctx = string(roadmapContext)
	}
	return fmt.Sprintf(`%s Kamu menjawab pertanyaan seputar roadmap karier user.

CONTEXT:
%s

TUGAS:
Jawab pertanyaan user dengan spesifik dan helpful, terkait roadmap karier mereka di SEMUA bidang.

GAYA KOMUNIKASI:
- Ramah dan supportive
- Singkat tapi informatif (maksimal 2-3 paragraf)
- Berikan contoh konkret kalau perlu

Jawab dalam Bahasa Indonesia yang natural.`, assistantIdentity, ctx)
}

// conversationPrompt renders prior turns as "User:"/"Assistant:" lines followed by the new message
func conversationPrompt(message string, history []model.ChatMessage) string {
	if len(history) == 0 {
		return message
	}
	var sb strings.Builder
	for _, m := range history {
		speaker := "Assistant"
		if m.Role == model.RoleUser {
			speaker = "User"
		}
		fmt.Fprintf(&sb, "%s: %s\n", speaker, m.Content)
	}
	sb.WriteString("User: ")
	sb.WriteString(message)
	return sb.String()
}

func quoteList(items []string) string {
	quoted := make([]string, len(items))
	for i, s := range items {
		quoted[i] = `"` + s + `"`
	}
	return strings.Join(quoted, ", ")
}
