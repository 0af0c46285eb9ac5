package lexicon

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

// SkillCategory groups vocabulary terms for reporting; matching ignores it.
type SkillCategory struct {
	Name  string
	Terms []string
}

// SkillVocabulary is the fixed list of skill and technology terms the token
// extractor looks for. Terms are lowercase.
var SkillVocabulary = []SkillCategory{
	{Name: "languages", Terms: []string{
		"python", "java", "javascript", "typescript", "go", "golang", "rust", "c++", "c#",
		"ruby", "php", "scala", "kotlin", "swift", "r", "sql", "bash", "perl", "matlab",
	}},
	{Name: "frameworks", Terms: []string{
		"react", "angular", "vue", "node", "node.js", "express", "django", "flask",
		"spring", "rails", ".net", "next.js", "fastapi", "gin", "graphql", "rest api",
	}},
	{Name: "data", Terms: []string{
		"postgresql", "mysql", "sql server", "t-sql", "oracle", "mongodb", "redis",
		"elasticsearch", "kafka", "spark", "hadoop", "airflow", "snowflake", "tableau",
		"power bi", "pandas", "numpy", "machine learning", "data analysis", "etl", "looker",
	}},
	{Name: "cloud", Terms: []string{
		"aws", "azure", "gcp", "google cloud", "docker", "kubernetes", "terraform",
		"ansible", "jenkins", "ci/cd", "github actions", "linux", "prometheus", "grafana",
	}},
	{Name: "domain", Terms: []string{
		"customs", "customs brokerage", "trade compliance", "logistics", "supply chain",
		"freight", "import", "export", "tariff", "hts classification", "cargowise",
		"accounting", "budgeting", "forecasting", "sales", "marketing", "seo", "crm",
		"salesforce", "sap", "erp", "project management", "agile", "scrum",
		"six sigma", "compliance", "auditing", "risk management",
	}},
	{Name: "soft", Terms: []string{
		"leadership", "communication", "teamwork", "collaboration", "problem solving",
		"critical thinking", "time management", "negotiation", "mentoring", "customer service",
		"attention to detail", "adaptability", "presentation",
	}},
	{Name: "office", Terms: []string{
		"excel", "microsoft excel", "microsoft word", "powerpoint", "outlook", "microsoft office",
		"google sheets", "jira", "confluence", "sharepoint", "quickbooks", "visio",
	}},
}

// SynonymGroups lists spellings treated as the same skill by the fuzzy
// matcher. Entries are written as humans spell them; the matcher normalizes
// them when it builds its index.
var SynonymGroups = [][]string{
	{"excel", "microsoft excel", "ms excel", "spreadsheets"},
	{"sql", "postgresql", "postgres", "mysql", "sql server", "tsql", "t-sql", "mssql"},
	{"customs", "custom", "cbp", "customs brokerage", "customs broker"},
	{"javascript", "js", "ecmascript"},
	{"typescript", "ts"},
	{"node", "nodejs", "node.js", "node js"},
	{"go", "golang"},
	{"kubernetes", "k8s"},
	{"aws", "amazon web services"},
	{"gcp", "google cloud", "google cloud platform"},
	{"azure", "microsoft azure"},
	{"react", "reactjs", "react.js"},
	{"vue", "vuejs", "vue.js"},
	{"ci/cd", "cicd", "continuous integration", "continuous delivery"},
	{"machine learning", "ml"},
	{"artificial intelligence", "ai"},
	{"power bi", "powerbi"},
	{"microsoft office", "ms office", "office 365", "microsoft 365"},
	{"word", "microsoft word", "ms word"},
	{"powerpoint", "microsoft powerpoint", "ms powerpoint"},
	{"project management", "pmp", "program management"},
	{"customer service", "customer support", "client service"},
	{"communication", "communications", "communication skills"},
	{"teamwork", "collaboration", "team player"},
	{"trade compliance", "import compliance", "export compliance"},
	{"hts classification", "tariff classification", "hts"},
	{"logistics", "supply chain", "supply chain management"},
	{"crm", "salesforce", "hubspot"},
	{"erp", "sap", "oracle erp"},
}

// ambiguousTerms are vocabulary terms that are also ordinary English ("go to
// market", "R&D"). They count only when capitalized and written as a list
// item, after "in", "with" or "using", or before a word naming a language.
var ambiguousTerms = map[string]*regexp.Regexp{
	"go": properNounPattern("Go", "programming", "language", "developer", "engineer"),
	"r":  properNounPattern("R", "programming", "language", "studio"),
}

func properNounPattern(word string, follows ...string) *regexp.Regexp {
	w := regexp.QuoteMeta(word)
	return regexp.MustCompile(`(?m)\b` + w + `(?:\s*(?:[,;/|)]|$)|\s+(?:` + strings.Join(follows, "|") + `)\b)` +
		`|\b(?:in|with|using)\s+` + w + `(?:\s|[,;/|)]|$)`)
}

// FindSkills returns the vocabulary terms present in text, in vocabulary
// order and without duplicates. A hit must not sit inside a longer
// alphanumeric word, so "express" does not match "expressed". Ambiguous
// terms need the context described on ambiguousTerms.
func FindSkills(text string) []string {
	lower := strings.ToLower(text)
	seen := make(map[string]bool)
	var out []string
	for _, cat := range SkillVocabulary {
		for _, term := range cat.Terms {
			if seen[term] || !hasTerm(text, lower, term) {
				continue
			}
			seen[term] = true
			out = append(out, term)
		}
	}
	return out
}

func hasTerm(text, lower, term string) bool {
	if re, ok := ambiguousTerms[term]; ok {
		return re.MatchString(text)
	}
	return containsTerm(lower, term)
}

func containsTerm(text, term string) bool {
	for start := 0; start < len(text); {
		i := strings.Index(text[start:], term)
		if i < 0 {
			return false
		}
		i += start
		end := i + len(term)
		before, _ := utf8.DecodeLastRuneInString(text[:i])
		after, _ := utf8.DecodeRuneInString(text[end:])
		if !isWordRune(before) && !isWordRune(after) {
			return true
		}
		start = i + 1
	}
	return false
}

func isWordRune(r rune) bool {
	return r != utf8.RuneError && (unicode.IsLetter(r) || unicode.IsDigit(r))
}
