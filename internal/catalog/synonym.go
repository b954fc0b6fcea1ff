package catalog

import "github.com/psrun/psrun/internal/models"

// Resolution is the outcome of a name lookup: the matched entry plus any
// environment overrides the synonym contract injects.
type Resolution struct {
	Entry models.ScriptEntry
	Env   map[string]string
}

// synonym maps a missing requested name to fallback names tried in order.
// The dev fallbacks inject NODE_ENV=dev: Node-ecosystem scripts branch on
// that variable, and callers must be able to reproduce the behavior exactly.
type synonym struct {
	fallbacks []string
	env       map[string]string
}

var synonymTable = map[string]synonym{
	"dev":       {fallbacks: []string{"start", "run"}, env: map[string]string{"NODE_ENV": "dev"}},
	"typecheck": {fallbacks: []string{"tc"}},
	"tc":        {fallbacks: []string{"typecheck"}},
}

// Resolve maps a requested script name to a catalog entry. An exact match
// never injects environment overrides; only a synonym fallback does.
func Resolve(c *models.Catalog, name string) (Resolution, error) {
	if entry, ok := c.Get(name); ok {
		return Resolution{Entry: entry}, nil
	}

	if syn, ok := synonymTable[name]; ok {
		for _, fallback := range syn.fallbacks {
			if entry, ok := c.Get(fallback); ok {
				return Resolution{Entry: entry, Env: syn.env}, nil
			}
		}
	}

	return Resolution{}, &NotFoundError{
		Name:       name,
		Suggestion: nearestName(c.Names(), name),
	}
}

// nearestName picks the existing script name with the smallest edit distance
// from the requested one, or "" when nothing is close enough to suggest.
func nearestName(names []string, requested string) string {
	best := ""
	bestDist := len(requested)/2 + 1 // suggestions beyond this read as noise
	for _, name := range names {
		if d := editDistance(requested, name); d < bestDist {
			best = name
			bestDist = d
		}
	}
	return best
}

func editDistance(a, b string) int {
	ra, rb := []rune(a), []rune(b)
	prev := make([]int, len(rb)+1)
	curr := make([]int, len(rb)+1)
	for j := range prev {
		prev[j] = j
	}
	for i := 1; i <= len(ra); i++ {
		curr[0] = i
		for j := 1; j <= len(rb); j++ {
			cost := 1
			if ra[i-1] == rb[j-1] {
				cost = 0
			}
			curr[j] = min(prev[j]+1, curr[j-1]+1, prev[j-1]+cost)
		}
		prev, curr = curr, prev
	}
	return prev[len(rb)]
}
