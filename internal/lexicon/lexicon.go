// Package lexicon holds the fixed, versioned word lists the analysis and
// matching engines are built on. Every table here is read-only after package
// initialization and safe to share across goroutines.
package lexicon

// Version identifies the revision of every table in this package. Bump it
// whenever a list changes so stored results can be traced to the tables that
// produced them.
const Version = "lexicon-2024.3"

// WeakPhrase pairs a passive, duty-oriented phrase with the stronger verb
// suggested in its place.
type WeakPhrase struct {
	Phrase      string
	Replacement string
}

// WeakPhrases is checked in order; the first phrase found in a candidate is the
// one rewritten.
var WeakPhrases = []WeakPhrase{
	{Phrase: "responsible for", Replacement: "Managed"},
	{Phrase: "duties included", Replacement: "Performed"},
	{Phrase: "tasked with", Replacement: "Executed"},
	{Phrase: "in charge of", Replacement: "Led"},
	{Phrase: "worked on", Replacement: "Built"},
	{Phrase: "helped with", Replacement: "Drove"},
	{Phrase: "helped to", Replacement: "Drove"},
	{Phrase: "involved in", Replacement: "Led"},
	{Phrase: "participated in", Replacement: "Executed"},
	{Phrase: "assisted with", Replacement: "Enabled"},
	{Phrase: "assisted in", Replacement: "Enabled"},
	{Phrase: "contributed to", Replacement: "Advanced"},
	{Phrase: "supported", Replacement: "Enabled"},
	{Phrase: "handled", Replacement: "Resolved"},
	{Phrase: "coordinated", Replacement: "Orchestrated"},
	{Phrase: "oversaw", Replacement: "Directed"},
	{Phrase: "maintained", Replacement: "Optimized"},
	{Phrase: "dealt with", Replacement: "Resolved"},
}

// SupervisoryVerbs frame work as a responsibility rather than a result.
var SupervisoryVerbs = []string{
	"managed", "oversaw", "supervised", "coordinated", "handled", "administered", "maintained",
}

// ActionVerbs are the strong verbs a bullet is expected to open with.
var ActionVerbs = []string{
	"achieved", "analyzed", "architected", "automated", "built", "championed", "created",
	"cut", "delivered", "designed", "developed", "directed", "drove", "engineered",
	"established", "executed", "expanded", "generated", "grew", "implemented", "improved",
	"increased", "initiated", "launched", "led", "managed", "mentored", "migrated",
	"negotiated", "optimized", "orchestrated", "organized", "pioneered", "planned",
	"produced", "reduced", "redesigned", "resolved", "restructured", "saved", "scaled",
	"secured", "spearheaded", "streamlined", "strengthened", "trained", "transformed",
}

// ImpactVerbStems mark a sentence as an achievement when it also carries a
// number. Stems are matched at the start of a word.
var ImpactVerbStems = []string{
	"increas", "improv", "reduc", "achiev", "deliver", "exceed", "generat", "sav",
	"enhanc", "optimi", "grew", "grow", "boost", "accelerat", "expand", "doubl",
	"tripl", "cut", "drove", "won", "surpass", "lower", "raise",
}

// ImpactMarkers signal that a bullet states an outcome. Entries ending in "*"
// match any word with that prefix.
var ImpactMarkers = []string{
	"resulted in", "resulting in", "leading to", "led to", "improved", "reduced",
	"increased", "boosted", "saved", "cut", "delivered", "achieved", "revenue",
	"cost", "efficien*", "accuracy", "compliance", "risk", "latency",
}

// VagueQuantifier maps a vague amount to a concrete-looking placeholder.
type VagueQuantifier struct {
	Word        string
	Placeholder string
}

// VagueQuantifiers lists the words flagged as generic descriptions.
var VagueQuantifiers = []VagueQuantifier{
	{Word: "various", Placeholder: "[5+]"},
	{Word: "different", Placeholder: "[4]"},
	{Word: "multiple", Placeholder: "[3+]"},
	{Word: "several", Placeholder: "[6]"},
	{Word: "many", Placeholder: "[10+]"},
	{Word: "numerous", Placeholder: "[12+]"},
	{Word: "diverse", Placeholder: "[5]"},
}

// MetricClause is appended to a bullet that lacks numbers. Keywords are
// checked in table order; the last entry is the fallback.
type MetricClause struct {
	Keywords []string
	Clause   string
}

// MetricClauses chooses a metric suggestion by what the bullet talks about.
var MetricClauses = []MetricClause{
	{Keywords: []string{"data", "analysis", "analyz", "analytic"}, Clause: " with [X]% accuracy"},
	{Keywords: []string{"team", "manage", "staff", "mentor"}, Clause: " across a team of [X] people"},
	{Keywords: []string{"project", "program", "initiative"}, Clause: " for a $[X]K project"},
	{Keywords: []string{"report", "dashboard"}, Clause: ", saving [X] hours per week"},
	{Keywords: nil, Clause: ", improving efficiency by [X]%"},
}

// OutcomeClause is appended when a bullet describes duties without a result.
const OutcomeClause = ", resulting in [X]% improvement in [key outcome]"

// SectionKeywords drive header detection. Order matters: the first section
// whose keyword appears in a header line wins.
var SectionKeywords = []struct {
	Section  string
	Keywords []string
}{
	{Section: "experience", Keywords: []string{"experience", "work history", "employment", "career history", "professional background"}},
	{Section: "education", Keywords: []string{"education", "academic", "qualifications", "degrees", "certifications"}},
	{Section: "skills", Keywords: []string{"skills", "competencies", "technologies", "technical proficiencies", "expertise"}},
	{Section: "summary", Keywords: []string{"summary", "objective", "profile", "about me"}},
}
