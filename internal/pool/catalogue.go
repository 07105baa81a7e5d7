package pool

import "hmate/internal/model"

// Default returns the production question catalogue compiled into the binary
func Default() *Pool {
	return MustNew(defaultCatalogue())
}

func option(value, text, tag string) model.Option {
	return model.Option{Value: value, Text: text, Category: tag}
}

func template(question string, options ...model.Option) model.QuestionTemplate {
	return model.QuestionTemplate{Question: question, Options: options}
}

func defaultCatalogue() Catalogue {
	return Catalogue{
		model.TierSMP: {
			model.CategoryWorkEnvironment: {
				template("Kalau disuruh pilih tempat kerja, kamu pilih yang mana?",
					option("A", "Kantor dengan AC dan komputer", "indoor_tech"),
					option("B", "Di luar ruangan, bisa gerak bebas", "outdoor_active"),
					option("C", "Rumah sendiri, kerja dari laptop", "remote_flexible"),
					option("D", "Keliling-keliling, ketemu orang baru", "mobile_social"),
				),
				template("Kamu lebih nyaman kerja bareng siapa?",
					option("A", "Sendiri aja, fokus tanpa gangguan", "solo_focused"),
					option("B", "Tim kecil yang kompak", "small_team"),
					option("C", "Grup besar, rame-rame seru", "large_group"),
					option("D", "Tergantung project, fleksibel", "flexible_collab"),
				),
				template("Jam kerja yang cocok buat kamu?",
					option("A", "9-5 teratur, udah pasti", "structured_time"),
					option("B", "Fleksibel, yang penting deadline kelar", "flexible_time"),
					option("C", "Malam hari, lebih fokus", "night_owl"),
					option("D", "Pagi banget, fresh otak", "early_bird"),
				),
			},
			model.CategoryInteractionStyle: {
				template("Di grup project, kamu biasanya jadi apa?",
					option("A", "Yang ngatur dan bagi tugas", "leader_organizer"),
					option("B", "Yang ngerjain tugas sungguh-sungguh", "executor_doer"),
					option("C", "Yang kasih ide-ide kreatif", "ideator_creative"),
					option("D", "Yang bantuin semua yang butuh", "supporter_helper"),
				),
				template("Kalau ada tugas presentasi, kamu prefer?",
					option("A", "Jadi presenter, suka ngomong di depan", "presenter_extrovert"),
					option("B", "Buat slide-nya, desain bagus", "designer_visual"),
					option("C", "Riset materinya, cari data", "researcher_analytical"),
					option("D", "Support dari belakang aja", "support_introvert"),
				),
				template("Tipe temen yang kamu cari?",
					option("A", "Banyak temen, circle luas", "social_extrovert"),
					option("B", "Beberapa temen deket aja", "selective_social"),
					option("C", "Online friend juga oke", "digital_social"),
					option("D", "Sendirian juga nyaman kok", "introverted_solo"),
				),
			},
			model.CategoryProblemSolving: {
				template("Ada masalah sulit, cara kamu nyelesaiin?",
					option("A", "Langsung coba-coba sampe berhasil", "trial_error_hands_on"),
					option("B", "Pikirin dulu pelan-pelan", "analytical_thinking"),
					option("C", "Tanya orang yang lebih tau", "collaborative_learner"),
					option("D", "Cari tutorial atau artikel", "research_learner"),
				),
				template("Kamu lebih suka tugas yang gimana?",
					option("A", "Ada instruksi jelas step by step", "structured_clear"),
					option("B", "Bebas kreatif, terserah kamu", "creative_freedom"),
					option("C", "Ada tantangan dan teka-teki", "challenging_puzzle"),
					option("D", "Praktek langsung, bukan teori", "hands_on_practical"),
				),
			},
			model.CategoryStressPressure: {
				template("Kalau deadline besok, kamu?",
					option("A", "Tenang aja, udah biasa", "high_pressure_calm"),
					option("B", "Grogi tapi tetep ngerjain", "medium_pressure"),
					option("C", "Panik, butuh bantuan", "low_pressure_support"),
					option("D", "Mending hindarin deadline mepet", "low_pressure_avoid"),
				),
				template("Kamu takut sama hal apa di dunia kerja?",
					option("A", "Salah keputusan, tanggung jawab besar", "decision_averse"),
					option("B", "Dikritik atau dimarahin", "criticism_sensitive"),
					option("C", "Gagal atau hasilnya jelek", "failure_averse"),
					option("D", "Nggak takut, santai aja", "risk_taker_brave"),
				),
			},
			model.CategoryValuesMotivation: {
				template("Yang paling kamu pengen dari kerja?",
					option("A", "Gaji besar, bisa beli apa aja", "financial_motivated"),
					option("B", "Bantu orang lain, bikin seneng", "helping_motivated"),
					option("C", "Bikin sesuatu yang keren", "creative_motivated"),
					option("D", "Terkenal atau dihormatin", "recognition_motivated"),
				),
				template("Pekerjaan impian kamu tuh yang?",
					option("A", "Stabil, aman, nggak takut PHK", "stability_security"),
					option("B", "Seru, beda-beda tiap hari", "variety_excitement"),
					option("C", "Fleksibel, bisa atur sendiri", "flexibility_autonomy"),
					option("D", "Punya impact besar ke banyak orang", "impact_meaning"),
				),
			},
		},
		model.TierSMA: {
			model.CategoryWorkEnvironment: {
				template("Environment kerja yang bikin kamu paling produktif?",
					option("A", "Office dengan struktur dan sistem jelas", "structured_corporate"),
					option("B", "Outdoor atau field work", "outdoor_field"),
					option("C", "Remote/WFH yang fleksibel", "remote_flexible"),
					option("D", "Co-working space yang vibrant", "coworking_dynamic"),
				),
				template("Setup workspace yang ideal untukmu?",
					option("A", "Meja sendiri, tools lengkap, minimal noise", "solo_focused_setup"),
					option("B", "Open space, bisa kolaborasi kapan aja", "collaborative_open"),
					option("C", "Hybrid, kadang office kadang remote", "hybrid_flexible"),
					option("D", "Mobile, bisa kerja dari mana aja", "mobile_nomadic"),
				),
			},
			model.CategoryInteractionStyle: {
				template("Leadership style yang sesuai dengan karakter kamu?",
					option("A", "Delegative - kasih kebebasan ke team", "delegative_leader"),
					option("B", "Collaborative - bareng-bareng decide", "collaborative_leader"),
					option("C", "Directive - kasih instruksi jelas", "directive_leader"),
					option("D", "Prefer jadi specialist, bukan manager", "individual_contributor"),
				),
				template("Cara kamu networking paling efektif?",
					option("A", "Event, conference, ketemu langsung", "extrovert_networker"),
					option("B", "Online communities, LinkedIn, Twitter", "digital_networker"),
					option("C", "Through projects dan collaboration", "work_based_networker"),
					option("D", "Networking bukan prioritas gue", "network_averse"),
				),
			},
			model.CategoryProblemSolving: {
				template("Approach kamu ke problem complex?",
					option("A", "Break down jadi sub-problems kecil", "analytical_systematic"),
					option("B", "Cari pattern atau analogy dari case lain", "pattern_recognition"),
					option("C", "Brainstorm creative solutions dulu", "creative_problem_solver"),
					option("D", "Research best practices yang proven", "research_based"),
				),
				template("Tools yang paling sering kamu pakai?",
					option("A", "Spreadsheet, data, analytics tools", "data_analytical"),
					option("B", "Design tools, visual editors", "visual_creative"),
					option("C", "Communication apps, collab tools", "communication_collab"),
					option("D", "Technical tools, code, terminal", "technical_tools"),
				),
			},
			model.CategoryStressPressure: {
				template("High-stakes situation yang kamu handle?",
					option("A", "Bring it on, gue thrives under pressure", "high_pressure_performer"),
					option("B", "Bisa handle tapi draining energy", "medium_pressure_capable"),
					option("C", "Prefer avoid, performance drop", "low_pressure_prefer"),
					option("D", "Neutral, depends on context", "context_dependent"),
				),
				template("Failure response kamu gimana?",
					option("A", "Learning opportunity, iterate fast", "growth_mindset"),
					option("B", "Analyze what went wrong systematically", "analytical_learner"),
					option("C", "Butuh time to process and recover", "reflective_processor"),
					option("D", "Seek support and guidance", "support_seeker"),
				),
			},
			model.CategoryValuesMotivation: {
				template("Career success metric yang paling meaningful?",
					option("A", "Financial independence dan wealth", "financial_success"),
					option("B", "Impact positif ke society/environment", "social_impact"),
					option("C", "Recognition dan influence di industri", "recognition_influence"),
					option("D", "Work-life balance dan fulfillment", "balance_fulfillment"),
				),
				template("Company culture yang kamu cari?",
					option("A", "Fast-paced, innovative, risk-taking", "startup_culture"),
					option("B", "Stable, established, clear progression", "corporate_culture"),
					option("C", "Mission-driven, purpose-oriented", "mission_culture"),
					option("D", "Flexible, autonomous, remote-first", "flexible_culture"),
				),
			},
		},
		model.TierMahasiswa: {
			model.CategoryWorkEnvironment: {
				template("Organizational structure yang memaksimalkan potensi kamu?",
					option("A", "Flat hierarchy, direct access to leadership", "flat_structure"),
					option("B", "Matrix organization, cross-functional teams", "matrix_structure"),
					option("C", "Traditional hierarchy dengan clear reporting", "traditional_structure"),
					option("D", "Fully autonomous, self-managed teams", "autonomous_structure"),
				),
			},
			model.CategoryInteractionStyle: {
				template("Collaboration style yang paling efektif untukmu?",
					option("A", "Agile/Scrum dengan daily standups", "agile_collaborative"),
					option("B", "Independent work dengan weekly sync", "independent_sync"),
					option("C", "Deep collaboration, pair programming/working", "deep_collaboration"),
					option("D", "Async communication, documentation-first", "async_documented"),
				),
			},
			model.CategoryProblemSolving: {
				template("Technical problem-solving approach kamu?",
					option("A", "First principles thinking, bottom-up", "first_principles"),
					option("B", "Design thinking, user-centric iteration", "design_thinking"),
					option("C", "Data-driven, hypothesis testing", "data_driven"),
					option("D", "Systems thinking, holistic view", "systems_thinking"),
				),
			},
			model.CategoryStressPressure: {
				template("Crisis management style kamu?",
					option("A", "Take charge, decisive action under pressure", "crisis_leader"),
					option("B", "Systematic triage and prioritization", "systematic_crisis"),
					option("C", "Collaborative problem-solving dengan team", "collaborative_crisis"),
					option("D", "Prefer prevention over crisis handling", "preventive_mindset"),
				),
			},
			model.CategoryValuesMotivation: {
				template("Long-term career vision yang align dengan values kamu?",
					option("A", "Build/scale company, entrepreneurial path", "entrepreneurial"),
					option("B", "Deep expertise, thought leader di domain", "expert_specialist"),
					option("C", "Leadership position, organizational impact", "leadership_executive"),
					option("D", "Portfolio career, multiple ventures/roles", "portfolio_career"),
				),
			},
		},
	}
}
