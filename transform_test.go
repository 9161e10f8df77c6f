package resumy

import (
	"errors"
	"reflect"
	"testing"

	"github.com/resumy/go-resumy/internal/dateutil"
)

// legacyProfile returns a minimal, fully populated legacy profile section.
func legacyProfile() map[string]any {
	return map[string]any{
		"firstname":         "Jane",
		"lastname":          "Doe",
		"email":             "jane@example.com",
		"phone":             "+1 555 0100",
		"portfolio_url":     "https://janedoe.example.com",
		"city":              "",
		"country":           "",
		"github_username":   "",
		"linkedin_username": "",
	}
}

func TestTransformMissingProfile(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		doc  Document
	}{
		{name: "absent profile", doc: Document{"version": "0.0.1"}},
		{name: "empty profile", doc: Document{"profile": map[string]any{}}},
		{name: "profile wrong type", doc: Document{"profile": "jane"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := Transform(tt.doc)
			if !errors.Is(err, ErrMissingProfile) {
				t.Errorf("Transform() error = %v, want ErrMissingProfile", err)
			}
		})
	}
}

func TestTransformBasicsOnly(t *testing.T) {
	t.Parallel()

	// A legacy document missing every optional section yields only meta
	// and basics.
	doc := Document{
		"version": "0.0.1",
		"profile": legacyProfile(),
	}

	got, err := Transform(doc)
	if err != nil {
		t.Fatalf("Transform() error = %v", err)
	}

	if len(got) != 2 {
		t.Errorf("Transform() produced keys %v, want only meta and basics", keysOf(got))
	}

	basics, ok := got["basics"].(map[string]any)
	if !ok {
		t.Fatalf("Transform() basics missing or wrong type: %T", got["basics"])
	}
	if name := basics["name"]; name != "Jane Doe" {
		t.Errorf("basics.name = %v, want Jane Doe", name)
	}
	if email := basics["email"]; email != "jane@example.com" {
		t.Errorf("basics.email = %v, want jane@example.com", email)
	}
	if url := basics["url"]; url != "https://janedoe.example.com" {
		t.Errorf("basics.url = %v, want portfolio url", url)
	}
	if _, hasLocation := basics["location"]; hasLocation {
		t.Error("basics.location present despite empty city and country")
	}

	// No network usernames means an empty profiles sequence, not a
	// missing one.
	profiles, ok := basics["profiles"].([]any)
	if !ok {
		t.Fatalf("basics.profiles missing or wrong type: %T", basics["profiles"])
	}
	if len(profiles) != 0 {
		t.Errorf("basics.profiles = %v, want empty", profiles)
	}

	meta, ok := got["meta"].(map[string]any)
	if !ok {
		t.Fatalf("Transform() meta missing or wrong type: %T", got["meta"])
	}
	breaks, ok := meta["breaks_before"].(map[string]any)
	if !ok || len(breaks) != 0 {
		t.Errorf("meta.breaks_before = %v, want empty mapping", meta["breaks_before"])
	}
}

func TestTransformLocation(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		city    string
		country string
		want    map[string]any
	}{
		{
			name: "both empty omits location",
		},
		{
			name: "city only includes both fields",
			city: "Portland",
			want: map[string]any{"city": "Portland", "countryCode": ""},
		},
		{
			name:    "country only includes both fields",
			country: "US",
			want:    map[string]any{"city": "", "countryCode": "US"},
		},
		{
			name:    "both set",
			city:    "Portland",
			country: "US",
			want:    map[string]any{"city": "Portland", "countryCode": "US"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			profile := legacyProfile()
			profile["city"] = tt.city
			profile["country"] = tt.country

			got, err := Transform(Document{"profile": profile})
			if err != nil {
				t.Fatalf("Transform() error = %v", err)
			}

			basics := got["basics"].(map[string]any)
			location, ok := basics["location"]
			if tt.want == nil {
				if ok {
					t.Errorf("basics.location = %v, want omitted", location)
				}
				return
			}
			if !reflect.DeepEqual(location, map[string]any(tt.want)) {
				t.Errorf("basics.location = %v, want %v", location, tt.want)
			}
		})
	}
}

func TestTransformNetworkProfiles(t *testing.T) {
	t.Parallel()

	profile := legacyProfile()
	profile["github_username"] = "janedoe"
	profile["linkedin_username"] = "in/janedoe"

	got, err := Transform(Document{"profile": profile})
	if err != nil {
		t.Fatalf("Transform() error = %v", err)
	}

	basics := got["basics"].(map[string]any)
	want := []any{
		map[string]any{
			"network":  "Github",
			"username": "janedoe",
			"url":      "https://github.com/janedoe",
		},
		map[string]any{
			"network":  "Linkedin",
			"username": "in/janedoe",
			"url":      "https://www.linkedin.com/in/janedoe",
		},
	}
	if !reflect.DeepEqual(basics["profiles"], want) {
		t.Errorf("basics.profiles = %v, want Github before Linkedin: %v", basics["profiles"], want)
	}
}

func TestTransformSkills(t *testing.T) {
	t.Parallel()

	doc := Document{
		"profile": legacyProfile(),
		"skills": map[string]any{
			"content": []any{
				map[string]any{
					"title": "Languages",
					"content": []any{
						map[string]any{"name": "Go"},
						map[string]any{"name": "Rust"},
					},
				},
			},
		},
	}

	got, err := Transform(doc)
	if err != nil {
		t.Fatalf("Transform() error = %v", err)
	}

	want := []any{
		map[string]any{"name": "Languages", "keywords": []any{"Go", "Rust"}},
	}
	if !reflect.DeepEqual(got["skills"], want) {
		t.Errorf("skills = %v, want %v", got["skills"], want)
	}
}

func TestTransformWork(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		entry map[string]any
		want  map[string]any
	}{
		{
			name: "present entry omits endDate even with a to date",
			entry: map[string]any{
				"company_name": "Acme",
				"title":        "Engineer",
				"from":         map[string]any{"year": 2020, "month": "Mar"},
				"to":           map[string]any{"year": 2024},
				"present":      true,
				"description":  []any{"Built things"},
			},
			want: map[string]any{
				"name":       "Acme",
				"position":   "Engineer",
				"startDate":  "2020-03-01",
				"highlights": []any{"Built things"},
			},
		},
		{
			name: "finished entry derives endDate",
			entry: map[string]any{
				"company_name": "Widget Labs",
				"title":        "Developer",
				"from":         map[string]any{"year": 2018, "month": "Jun"},
				"to":           map[string]any{"year": 2021, "month": "Feb"},
				"description":  []any{"Shipped the widget"},
			},
			want: map[string]any{
				"name":       "Widget Labs",
				"position":   "Developer",
				"startDate":  "2018-06-01",
				"endDate":    "2021-02-01",
				"highlights": []any{"Shipped the widget"},
			},
		},
		{
			name: "missing month defaults to January",
			entry: map[string]any{
				"company_name": "Initech",
				"title":        "Consultant",
				"from":         map[string]any{"year": 2015},
				"description":  []any{},
			},
			want: map[string]any{
				"name":       "Initech",
				"position":   "Consultant",
				"startDate":  "2015-01-01",
				"highlights": []any{},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			doc := Document{
				"profile": legacyProfile(),
				"job_experience": map[string]any{
					"content": []any{tt.entry},
				},
			}

			got, err := Transform(doc)
			if err != nil {
				t.Fatalf("Transform() error = %v", err)
			}

			work, ok := got["work"].([]any)
			if !ok || len(work) != 1 {
				t.Fatalf("work = %v, want one entry", got["work"])
			}
			if !reflect.DeepEqual(work[0], tt.want) {
				t.Errorf("work[0] = %v, want %v", work[0], tt.want)
			}
		})
	}
}

func TestTransformWorkUnknownMonth(t *testing.T) {
	t.Parallel()

	doc := Document{
		"profile": legacyProfile(),
		"job_experience": map[string]any{
			"content": []any{
				map[string]any{
					"company_name": "Acme",
					"title":        "Engineer",
					"from":         map[string]any{"year": 2020, "month": "Mars"},
				},
			},
		},
	}

	_, err := Transform(doc)
	if !errors.Is(err, dateutil.ErrUnknownMonth) {
		t.Errorf("Transform() error = %v, want ErrUnknownMonth", err)
	}
}

func TestTransformInvalidDates(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		entry map[string]any
	}{
		{
			name: "entry without a from mapping",
			entry: map[string]any{
				"company_name": "Acme",
				"title":        "Engineer",
			},
		},
		{
			name: "from is not a mapping",
			entry: map[string]any{
				"company_name": "Acme",
				"title":        "Engineer",
				"from":         "2020-03",
			},
		},
		{
			name: "date without a year",
			entry: map[string]any{
				"company_name": "Acme",
				"title":        "Engineer",
				"from":         map[string]any{"month": "Mar"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			doc := Document{
				"profile": legacyProfile(),
				"job_experience": map[string]any{
					"content": []any{tt.entry},
				},
			}

			_, err := Transform(doc)
			if !errors.Is(err, ErrInvalidDate) {
				t.Errorf("Transform() error = %v, want ErrInvalidDate", err)
			}
		})
	}
}

func TestTransformEducation(t *testing.T) {
	t.Parallel()

	doc := Document{
		"profile": legacyProfile(),
		"education": map[string]any{
			"content": []any{
				map[string]any{
					"company_name": "State University",
					"title":        "B.Sc. Computer Science",
					"from":         map[string]any{"year": 2014, "month": "Sep"},
					"to":           map[string]any{"year": 2018, "month": "May"},
				},
				map[string]any{
					"company_name": "Night School",
					"title":        "M.Sc. Data Engineering",
					"from":         map[string]any{"year": 2022},
					"present":      true,
				},
			},
		},
	}

	got, err := Transform(doc)
	if err != nil {
		t.Fatalf("Transform() error = %v", err)
	}

	want := []any{
		map[string]any{
			"institution": "State University",
			"area":        "B.Sc. Computer Science",
			"startDate":   "2014-09-01",
			"endDate":     "2018-05-01",
		},
		map[string]any{
			"institution": "Night School",
			"area":        "M.Sc. Data Engineering",
			"startDate":   "2022-01-01",
		},
	}
	if !reflect.DeepEqual(got["education"], want) {
		t.Errorf("education = %v, want %v", got["education"], want)
	}
}

func TestTransformProjects(t *testing.T) {
	t.Parallel()

	doc := Document{
		"profile": legacyProfile(),
		"projects": map[string]any{
			"include_page_break": nil,
			"content": []any{
				map[string]any{
					"name":        "go-tidepool",
					"description": "Tide forecast dashboard",
					"url":         "https://github.com/janedoe/go-tidepool",
					"skills": []any{
						map[string]any{"name": "Go"},
					},
				},
				map[string]any{
					"name": "pantry",
					"skills": []any{
						map[string]any{"name": "Python"},
						map[string]any{"name": "SQL"},
					},
				},
			},
		},
	}

	got, err := Transform(doc)
	if err != nil {
		t.Fatalf("Transform() error = %v", err)
	}

	want := []any{
		map[string]any{
			"name":        "go-tidepool",
			"description": "Tide forecast dashboard",
			"url":         "https://github.com/janedoe/go-tidepool",
			"keywords":    []any{"Go"},
		},
		map[string]any{
			"name":        "pantry",
			"description": "",
			"keywords":    []any{"Python", "SQL"},
		},
	}
	if !reflect.DeepEqual(got["projects"], want) {
		t.Errorf("projects = %v, want %v", got["projects"], want)
	}

	// include_page_break present (whatever its value) marks the section.
	meta := got["meta"].(map[string]any)
	breaks := meta["breaks_before"].(map[string]any)
	if breaks["projects"] != true {
		t.Errorf("meta.breaks_before.projects = %v, want true", breaks["projects"])
	}
	if len(breaks) != 1 {
		t.Errorf("meta.breaks_before = %v, want only projects", breaks)
	}
}

func TestTransformSkipsFalsySections(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		value any
	}{
		{name: "null section", value: nil},
		{name: "empty mapping", value: map[string]any{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			doc := Document{
				"profile": legacyProfile(),
				"skills":  tt.value,
			}

			got, err := Transform(doc)
			if err != nil {
				t.Fatalf("Transform() error = %v", err)
			}
			if _, ok := got["skills"]; ok {
				t.Errorf("skills key present for falsy input section: %v", got["skills"])
			}
		})
	}
}

func TestTransformDoesNotMutateInput(t *testing.T) {
	t.Parallel()

	doc := Document{
		"version": "0.0.1",
		"profile": legacyProfile(),
		"skills": map[string]any{
			"include_page_break": true,
			"content": []any{
				map[string]any{
					"title":   "Languages",
					"content": []any{map[string]any{"name": "Go"}},
				},
			},
		},
	}
	snapshot := Document{
		"version": "0.0.1",
		"profile": legacyProfile(),
		"skills": map[string]any{
			"include_page_break": true,
			"content": []any{
				map[string]any{
					"title":   "Languages",
					"content": []any{map[string]any{"name": "Go"}},
				},
			},
		},
	}

	if _, err := Transform(doc); err != nil {
		t.Fatalf("Transform() error = %v", err)
	}

	if !reflect.DeepEqual(doc, snapshot) {
		t.Errorf("Transform() mutated its input:\n got %v\nwant %v", doc, snapshot)
	}
}

// keysOf returns the key set of a document for error messages.
func keysOf(doc Document) []string {
	keys := make([]string, 0, len(doc))
	for k := range doc {
		keys = append(keys, k)
	}
	return keys
}
