package dispatchers

import (
	"sort"
	"strings"
)

// levenshtein calculates the edit distance between two strings
func levenshtein(a, b string) int {
	a = strings.ToLower(a)
	b = strings.ToLower(b)

	if len(a) == 0 {
		return len(b)
	}
	if len(b) == 0 {
		return len(a)
	}

	// two rows are enough: the previous one and the one being filled
	prev := make([]int, len(b)+1)
	cur := make([]int, len(b)+1)
	for j := range prev {
		prev[j] = j
	}

	for i := 1; i <= len(a); i++ {
		cur[0] = i
		for j := 1; j <= len(b); j++ {
			cost := 1
			if a[i-1] == b[j-1] {
				cost = 0
			}

			cur[j] = min(
				prev[j]+1,      // deletion
				cur[j-1]+1,     // insertion
				prev[j-1]+cost, // substitution
			)
		}
		prev, cur = cur, prev
	}

	return prev[len(b)]
}

type suggestion struct {
	name     string
	distance int
}

const maxDistance = 3

// Suggest returns up to maxResults candidates within a small edit distance
// of input, closest first. Exact matches are not suggestions.
func Suggest(input string, candidates []string, maxResults int) []string {
	var suggestions []suggestion

	for _, name := range candidates {
		dist := levenshtein(input, name)
		if dist <= maxDistance && dist > 0 {
			suggestions = append(suggestions, suggestion{name: name, distance: dist})
		}
	}

	// Sort by distance (ascending), then alphabetically for stability
	sort.Slice(suggestions, func(i, j int) bool {
		if suggestions[i].distance != suggestions[j].distance {
			return suggestions[i].distance < suggestions[j].distance
		}
		return suggestions[i].name < suggestions[j].name
	})

	if len(suggestions) > maxResults {
		suggestions = suggestions[:maxResults]
	}

	result := make([]string, len(suggestions))
	for i, s := range suggestions {
		result[i] = s.name
	}
	return result
}

// FindSimilarCommands suggests children of node that look like input.
func FindSimilarCommands(input string, node *DispatchNode, maxResults int) []string {
	if node == nil || node.Children == nil {
		return nil
	}

	names := make([]string, 0, len(node.Children))
	for name := range node.Children {
		names = append(names, name)
	}
	return Suggest(input, names, maxResults)
}

// CollectAllCommands recursively collects all command names from a node tree,
// as space-separated paths below node.
func CollectAllCommands(node *DispatchNode, prefix string) []string {
	if node == nil {
		return nil
	}

	var commands []string

	for name, child := range node.Children {
		fullPath := name
		if prefix != "" {
			fullPath = prefix + " " + name
		}
		commands = append(commands, fullPath)
		commands = append(commands, CollectAllCommands(child, fullPath)...)
	}

	sort.Strings(commands)
	return commands
}
