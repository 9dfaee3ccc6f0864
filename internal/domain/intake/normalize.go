package intake

import "strings"

// The eight relations the family history grid is seeded with. Anything the
// user adds beyond these is an extra member and passes through verbatim.
var canonicalRelations = []string{
	"children",
	"grandfather_paternal",
	"grandfather_maternal",
	"grandmother_paternal",
	"grandmother_maternal",
	"father",
	"mother",
	"sibling",
}

var relationSynonyms = map[string]string{
	"brother/sister":         "sibling",
	"brother":                "sibling",
	"sister":                 "sibling",
	"child":                  "children",
	"kids":                   "children",
	"grandfather (paternal)": "grandfather_paternal",
	"grandfather (maternal)": "grandfather_maternal",
	"grandmother (paternal)": "grandmother_paternal",
	"grandmother (maternal)": "grandmother_maternal",
	"dad":                    "father",
	"mom":                    "mother",
}

// NormalizeRelation maps a free-text relation label onto its canonical key.
// Matching is trimmed and case-insensitive; unrecognized labels pass through
// unchanged so extra family members are kept as entered.
func NormalizeRelation(rel string) string {
	key := strings.ToLower(strings.TrimSpace(rel))
	if key == "" {
		return ""
	}
	for _, c := range canonicalRelations {
		if key == c {
			return c
		}
	}
	if canonical, ok := relationSynonyms[key]; ok {
		return canonical
	}
	return strings.TrimSpace(rel)
}

// IsCanonicalRelation reports whether rel is one of the eight seeded keys.
func IsCanonicalRelation(rel string) bool {
	for _, c := range canonicalRelations {
		if rel == c {
			return true
		}
	}
	return false
}

// problemAliases maps UI problem keys whose wording diverged from the lookup
// table onto the stored name. Checked against the table at startup via
// ValidateAliases.
var problemAliases = map[string]string{
	"heart": "heart disease",
}

// ProblemResolver resolves UI problem keys against the contents of
// family_problem_lookup. Names are matched after trimming and lowercasing.
type ProblemResolver struct {
	byName map[string]int64
}

func NewProblemResolver(rows []*FamilyProblemLookup) *ProblemResolver {
	byName := make(map[string]int64, len(rows))
	for _, row := range rows {
		byName[normalizeProblemName(row.Name)] = row.ProblemID
	}
	return &ProblemResolver{byName: byName}
}

func normalizeProblemName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// Resolve probes the lookup with the key itself, the key with underscores
// replaced by spaces, then any special alias. First hit wins; a miss means
// the key must be skipped, never inserted.
func (r *ProblemResolver) Resolve(key string) (int64, bool) {
	k := normalizeProblemName(key)
	if k == "" {
		return 0, false
	}

	candidates := []string{k, strings.ReplaceAll(k, "_", " ")}
	if alias, ok := problemAliases[k]; ok {
		candidates = append(candidates, normalizeProblemName(alias))
	}

	for _, cand := range candidates {
		if id, ok := r.byName[cand]; ok {
			return id, true
		}
	}
	return 0, false
}

// ValidateAliases returns the alias targets that are missing from the lookup
// table. A non-empty result means the seed data and the alias list have
// drifted apart; the server logs it at startup.
func (r *ProblemResolver) ValidateAliases() []string {
	var missing []string
	for key, target := range problemAliases {
		if _, ok := r.byName[normalizeProblemName(target)]; !ok {
			missing = append(missing, key+" -> "+target)
		}
	}
	return missing
}
