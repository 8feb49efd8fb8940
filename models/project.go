package models

import (
	"regexp"
	"strings"
)

// projectID is the id shape usable as a single URL and file path segment.
var projectID = regexp.MustCompile(`^[A-Za-z0-9][A-Za-z0-9._-]*$`)

// Project is one entry of a locale's projects.json catalog.
type Project struct {
	ID              string   `json:"id"`
	Name            string   `json:"name"`
	Description     string   `json:"description"`
	LongDescription string   `json:"longDescription,omitempty"`
	Tech            []string `json:"tech"`
	GitHub          string   `json:"github,omitempty"`
	GitLab          string   `json:"gitlab,omitempty"`
	Demo            string   `json:"demo,omitempty"`
	APK             string   `json:"apk,omitempty"`
	Image           string   `json:"image,omitempty"`
	Featured        bool     `json:"featured,omitempty"`
	Year            string   `json:"year,omitempty"`
}

// ValidProjectID reports whether id can be used as a path segment.
func ValidProjectID(id string) bool {
	return projectID.MatchString(id) && !strings.Contains(id, "..")
}

// FindProject returns the project with the given id.
func FindProject(projects []Project, id string) (Project, bool) {
	for i := range projects {
		if projects[i].ID == id {
			return projects[i], true
		}
	}
	return Project{}, false
}
