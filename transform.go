package resumy

import (
	"fmt"

	"github.com/resumy/go-resumy/internal/dateutil"
)

// Legacy section names and their JSON Resume counterparts.
const (
	sectionSkills    = "skills"
	sectionWork      = "job_experience"
	sectionEducation = "education"
	sectionProjects  = "projects"
)

// pageBreakMarker signals a page break by its mere presence; the value is
// never inspected.
const pageBreakMarker = "include_page_break"

// Transform converts a legacy resumy document into the JSON Resume shape.
// It is a pure function: the input document is never mutated, and the
// result is built from scratch. Sections that are absent or empty in the
// input are skipped entirely in the output.
//
// Returns ErrMissingProfile if the document has no profile section and
// dateutil.ErrUnknownMonth if a partial date carries an unrecognized
// month abbreviation.
func Transform(doc Document) (Document, error) {
	profile, ok := doc["profile"].(map[string]any)
	if !ok || len(profile) == 0 {
		return nil, ErrMissingProfile
	}

	breaks := map[string]any{}
	out := Document{
		"meta": map[string]any{
			"breaks_before": breaks,
		},
		"basics": transformBasics(profile),
	}

	if sec, ok := truthySection(doc, sectionSkills); ok {
		markBreak(breaks, sec, "skills")
		out["skills"] = transformSkills(sec)
	}

	if sec, ok := truthySection(doc, sectionWork); ok {
		markBreak(breaks, sec, "work")
		work, err := transformWork(sec)
		if err != nil {
			return nil, err
		}
		out["work"] = work
	}

	if sec, ok := truthySection(doc, sectionEducation); ok {
		markBreak(breaks, sec, "education")
		education, err := transformEducation(sec)
		if err != nil {
			return nil, err
		}
		out["education"] = education
	}

	if sec, ok := truthySection(doc, sectionProjects); ok {
		markBreak(breaks, sec, "projects")
		out["projects"] = transformProjects(sec)
	}

	return out, nil
}

// transformBasics maps the legacy profile section to JSON Resume basics.
func transformBasics(profile map[string]any) map[string]any {
	basics := map[string]any{
		"name":     fmt.Sprintf("%s %s", stringAt(profile, "firstname"), stringAt(profile, "lastname")),
		"email":    profile["email"],
		"phone":    profile["phone"],
		"url":      profile["portfolio_url"],
		"profiles": []any{},
	}

	// One truthy field is enough to include the location object, but both
	// fields are carried over regardless.
	if truthy(profile["city"]) || truthy(profile["country"]) {
		basics["location"] = map[string]any{
			"city":        profile["city"],
			"countryCode": profile["country"],
		}
	}

	profiles := []any{}
	if gh := stringAt(profile, "github_username"); gh != "" {
		profiles = append(profiles, map[string]any{
			"network":  "Github",
			"username": gh,
			"url":      "https://github.com/" + gh,
		})
	}
	if li := stringAt(profile, "linkedin_username"); li != "" {
		profiles = append(profiles, map[string]any{
			"network":  "Linkedin",
			"username": li,
			"url":      "https://www.linkedin.com/" + li,
		})
	}
	basics["profiles"] = profiles

	return basics
}

// transformSkills maps skill categories to {name, keywords} entries.
func transformSkills(sec map[string]any) []any {
	skills := []any{}
	for _, item := range sequence(sec["content"]) {
		cat, _ := item.(map[string]any)
		skills = append(skills, map[string]any{
			"name":     cat["title"],
			"keywords": namesOf(cat["content"]),
		})
	}
	return skills
}

// transformWork maps job experience entries to JSON Resume work entries.
// An entry carrying a present marker never gets an endDate, even when a
// "to" date is also present.
func transformWork(sec map[string]any) ([]any, error) {
	work := []any{}
	for _, item := range sequence(sec["content"]) {
		entry, _ := item.(map[string]any)

		start, err := partialDateString(entry["from"])
		if err != nil {
			return nil, err
		}
		w := map[string]any{
			"name":       entry["company_name"],
			"position":   entry["title"],
			"startDate":  start,
			"highlights": entry["description"],
		}

		if _, present := entry["present"]; !present {
			if to, ok := entry["to"]; ok {
				end, err := partialDateString(to)
				if err != nil {
					return nil, err
				}
				w["endDate"] = end
			}
		}
		work = append(work, w)
	}
	return work, nil
}

// transformEducation maps education entries to JSON Resume education
// entries. The endDate rules mirror work entries: a per-entry present
// marker suppresses it, otherwise it derives from the entry's own "to"
// date when one exists.
func transformEducation(sec map[string]any) ([]any, error) {
	education := []any{}
	for _, item := range sequence(sec["content"]) {
		entry, _ := item.(map[string]any)

		start, err := partialDateString(entry["from"])
		if err != nil {
			return nil, err
		}
		e := map[string]any{
			"institution": entry["company_name"],
			"area":        entry["title"],
			"startDate":   start,
		}

		if _, present := entry["present"]; !present {
			if to, ok := entry["to"]; ok {
				end, err := partialDateString(to)
				if err != nil {
					return nil, err
				}
				e["endDate"] = end
			}
		}
		education = append(education, e)
	}
	return education, nil
}

// transformProjects maps project entries, defaulting description to an
// empty string and copying url only when the entry carries one.
func transformProjects(sec map[string]any) []any {
	projects := []any{}
	for _, item := range sequence(sec["content"]) {
		entry, _ := item.(map[string]any)

		description := any("")
		if d, ok := entry["description"]; ok {
			description = d
		}
		p := map[string]any{
			"name":        entry["name"],
			"description": description,
			"keywords":    namesOf(entry["skills"]),
		}
		if url, ok := entry["url"]; ok {
			p["url"] = url
		}
		projects = append(projects, p)
	}
	return projects
}

// partialDateString renders a {year, month?} mapping as "YYYY-MM-01".
// A missing month means January. Entries that carry no date mapping at
// all, or one without a year, surface here when validation is disabled.
func partialDateString(v any) (string, error) {
	date, ok := v.(map[string]any)
	if !ok {
		return "", fmt.Errorf("%w: %v", ErrInvalidDate, v)
	}
	if _, ok := date["year"]; !ok {
		return "", fmt.Errorf("%w: missing year in %v", ErrInvalidDate, date)
	}

	month := "01"
	if m, ok := date["month"]; ok {
		var err error
		month, err = dateutil.MonthNumber(fmt.Sprintf("%v", m))
		if err != nil {
			return "", err
		}
	}
	return fmt.Sprintf("%v-%s-01", date["year"], month), nil
}

// truthySection returns the section mapping under key when it exists and
// is non-empty. Absent, null, and empty sections all count as missing.
func truthySection(doc Document, key string) (map[string]any, bool) {
	m, ok := doc[key].(map[string]any)
	if !ok || len(m) == 0 {
		return nil, false
	}
	return m, true
}

// markBreak records a page break for the output section when the legacy
// section carries the marker key.
func markBreak(breaks, sec map[string]any, outKey string) {
	if _, ok := sec[pageBreakMarker]; ok {
		breaks[outKey] = true
	}
}

// namesOf extracts the "name" field of each mapping in a sequence.
func namesOf(v any) []any {
	names := []any{}
	for _, item := range sequence(v) {
		if m, ok := item.(map[string]any); ok {
			names = append(names, m["name"])
		}
	}
	return names
}

// sequence returns v as a slice, or nil when it is not one.
func sequence(v any) []any {
	s, _ := v.([]any)
	return s
}

// stringAt returns the string value under key, or "" when absent or not a
// string.
func stringAt(m map[string]any, key string) string {
	s, _ := m[key].(string)
	return s
}

// truthy mirrors the loose truthiness the legacy dialect relies on:
// nil, false, empty strings, and empty collections are all falsy.
func truthy(v any) bool {
	switch t := v.(type) {
	case nil:
		return false
	case bool:
		return t
	case string:
		return t != ""
	case []any:
		return len(t) > 0
	case map[string]any:
		return len(t) > 0
	default:
		return true
	}
}
