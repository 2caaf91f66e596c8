package taxonomy

// Default returns the built-in taxonomy: twelve policy themes and the
// granular keyword table used for filtering, plus the summary-page
// metadata. Declaration order is load-bearing (scoring tie-break and
// keyword truncation order), so edits here reorder results.
func Default() *Taxonomy {
	return &Taxonomy{
		Themes: []Theme{
			{Name: "science", Patterns: []string{"nsf", "nasa", "research", "climate", "weather", "scientist"}},
			{Name: "health", Patterns: []string{"cdc", "fda", "nih", "vaccine", "covid", "pandemic", "health", "medical", "hospital"}},
			{Name: "education", Patterns: []string{"education", "school", "university", "college", "student", "teacher", "harvard", "columbia"}},
			{Name: "environment", Patterns: []string{"epa", "environment", "pollution", "clean", "toxic", "waste", "water", "air"}},
			{Name: "civil-society", Patterns: []string{"dei", "diversity", "equity", "inclusion", "civil-rights", "voting", "democracy"}},
			{Name: "human-rights", Patterns: []string{"lgbtq", "transgender", "discrimination", "religious", "freedom", "abortion"}},
			{Name: "government", Patterns: []string{"federal", "employee", "workforce", "doge", "efficiency", "layoff", "resign"}},
			{Name: "justice", Patterns: []string{"fbi", "doj", "court", "judge", "attorney", "prosecutor", "investigation"}},
			{Name: "immigration", Patterns: []string{"ice", "deportation", "immigrant", "refugee", "border", "asylum", "visa"}},
			{Name: "trade", Patterns: []string{"tariff", "trade", "import", "export", "nafta", "china"}},
			{Name: "economy", Patterns: []string{"tax", "budget", "debt", "inflation", "crypto", "bitcoin", "stock", "economy"}},
			{Name: "foreign-affairs", Patterns: []string{"ukraine", "russia", "israel", "palestine", "nato", "china", "foreign"}},
		},
		Keywords: []Keyword{
			{Name: "doge", Patterns: []string{"doge", "efficiency"}},
			{Name: "fbi", Patterns: []string{"fbi", "federal bureau"}},
			{Name: "ice", Patterns: []string{"ice", "immigration enforcement"}},
			{Name: "epa", Patterns: []string{"epa", "environmental protection"}},
			{Name: "cdc", Patterns: []string{"cdc", "disease control"}},
			{Name: "nasa", Patterns: []string{"nasa", "space"}},
			{Name: "nsf", Patterns: []string{"nsf", "national science foundation"}},
			{Name: "nih", Patterns: []string{"nih", "health institute"}},
			{Name: "supreme-court", Patterns: []string{"supreme court", "scotus"}},
			{Name: "tariffs", Patterns: []string{"tariff"}},
			{Name: "ukraine", Patterns: []string{"ukraine", "zelensky"}},
			{Name: "russia", Patterns: []string{"russia", "putin"}},
			{Name: "israel", Patterns: []string{"israel", "gaza", "palestine"}},
			{Name: "musk", Patterns: []string{"musk", "elon"}},
			{Name: "rfk-jr", Patterns: []string{"rfk", "kennedy jr"}},
			{Name: "hegseth", Patterns: []string{"hegseth"}},
			{Name: "harvard", Patterns: []string{"harvard"}},
			{Name: "columbia", Patterns: []string{"columbia university"}},
			{Name: "voice-of-america", Patterns: []string{"voice of america", "voa"}},
			{Name: "peace-corps", Patterns: []string{"peace corps"}},
			{Name: "social-security", Patterns: []string{"social security", "ssa"}},
			{Name: "veterans", Patterns: []string{"veteran", "va "}},
			{Name: "medicare", Patterns: []string{"medicare", "medicaid"}},
			{Name: "lgbt", Patterns: []string{"lgbt", "transgender", "gay", "lesbian"}},
			{Name: "dei", Patterns: []string{"dei", "diversity", "equity", "inclusion"}},
			{Name: "climate", Patterns: []string{"climate", "carbon", "emission"}},
			{Name: "covid", Patterns: []string{"covid", "coronavirus", "pandemic"}},
			{Name: "abortion", Patterns: []string{"abortion", "reproductive"}},
			{Name: "crypto", Patterns: []string{"crypto", "bitcoin", "digital currency"}},
		},
		Meta: map[string]ThemeMeta{
			"government": {
				Title:       "Federal Workforce Restructuring and Government Operations",
				Priority:    1,
				Description: "Systematic restructuring of federal agencies, mass layoffs, and the Department of Government Efficiency (DOGE) initiatives",
			},
			"immigration": {
				Title:       "Immigration Enforcement and Deportation Operations",
				Priority:    2,
				Description: "Border enforcement, deportation operations, visa policies, and treatment of refugees and asylum seekers",
			},
			"science": {
				Title:       "Scientific Research and Space Programs",
				Priority:    3,
				Description: "Changes to NSF, NASA, climate research, and federal research funding",
			},
			"health": {
				Title:       "Healthcare Policy and Public Health",
				Priority:    4,
				Description: "CDC policies, vaccine programs, NIH research, and public health infrastructure",
			},
			"education": {
				Title:       "Educational Institutions and Academic Freedom",
				Priority:    5,
				Description: "University funding, DEI elimination, student visas, and academic research",
			},
			"justice": {
				Title:       "Justice Department and Law Enforcement",
				Priority:    6,
				Description: "DOJ transformation, FBI changes, prosecutorial decisions, and judicial relations",
			},
			"economy": {
				Title:       "Economic Policy and Financial Markets",
				Priority:    7,
				Description: "Tax policies, cryptocurrency, stock market regulations, and federal budget",
			},
			"trade": {
				Title:       "Trade Policy and Tariffs",
				Priority:    8,
				Description: "Import tariffs, trade agreements, and international commerce",
			},
			"foreign-affairs": {
				Title:       "Foreign Policy and International Relations",
				Priority:    9,
				Description: "Relations with allies and adversaries, military aid, and diplomatic initiatives",
			},
			"environment": {
				Title:       "Environmental Deregulation and Resource Extraction",
				Priority:    10,
				Description: "EPA changes, climate policy rollbacks, and natural resource exploitation",
			},
			"human-rights": {
				Title:       "Civil Rights and Social Policy",
				Priority:    11,
				Description: "LGBTQ+ rights, religious freedom, reproductive rights, and discrimination policies",
			},
			"civil-society": {
				Title:       "Democratic Institutions and Civil Society",
				Priority:    12,
				Description: "Voting rights, democratic norms, civil society organizations, and constitutional issues",
			},
		},
	}
}
