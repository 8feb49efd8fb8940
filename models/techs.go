package models

import (
	"slices"
	"sort"
)

// UniqueTechs returns every tech tag across projects, deduplicated and
// sorted byte-wise.
func UniqueTechs(projects []Project) []string {
	seen := make(map[string]struct{})
	for _, p := range projects {
		for _, tech := range p.Tech {
			seen[tech] = struct{}{}
		}
	}

	techs := make([]string, 0, len(seen))
	for tech := range seen {
		techs = append(techs, tech)
	}
	sort.Strings(techs)
	return techs
}

// CountTechs returns how many projects use each tech tag.
func CountTechs(projects []Project) map[string]int {
	counts := make(map[string]int)
	for _, p := range projects {
		for _, tech := range p.Tech {
			counts[tech]++
		}
	}
	return counts
}

// FilterByTech returns projects whose tech list contains tag exactly.
// An empty tag means no filter and returns projects unchanged.
func FilterByTech(projects []Project, tag string) []Project {
	if tag == "" {
		return projects
	}

	filtered := []Project{}
	for _, p := range projects {
		if slices.Contains(p.Tech, tag) {
			filtered = append(filtered, p)
		}
	}
	return filtered
}
