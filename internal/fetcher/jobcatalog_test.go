package fetcher

import "testing"

func TestJobCatalogLookup(t *testing.T) {
	catalog := DefaultJobCatalog()

	testCases := []struct {
		input string
		want  string
	}{
		{"Senior Data Analyst", "Data Analyst"},
		{"analyste données marketing", "Data Analyst"},
		{"Chef de produit B2B", "Product Manager"},
		{"PM | Fintech", "Product Manager"},
		{"Développeur Go", "Software Engineer"},
		{"Software Engineer II", "Software Engineer"},
	}
	for _, tc := range testCases {
		job, ok := catalog.Lookup(tc.input)
		if !ok {
			t.Errorf("Lookup(%q) found nothing, want %q", tc.input, tc.want)
			continue
		}
		if job.Normalized != tc.want {
			t.Errorf("Lookup(%q) = %q, want %q", tc.input, job.Normalized, tc.want)
		}
	}

	for _, miss := range []string{"", "   ", "Nurse", "Development lead"} {
		if job, ok := catalog.Lookup(miss); ok {
			t.Errorf("Lookup(%q) = %q, want no match", miss, job.Normalized)
		}
	}
}

func TestJobCatalogEmbeddedEntries(t *testing.T) {
	catalog := DefaultJobCatalog()
	if len(catalog.jobs) != 3 {
		t.Fatalf("embedded catalog has %d jobs, want 3", len(catalog.jobs))
	}
	for _, job := range catalog.jobs {
		if job.EscoCode == "" || len(job.Core) == 0 || len(job.Trending) == 0 || len(job.NiceToHave) == 0 {
			t.Errorf("incomplete catalog entry: %+v", job)
		}
	}
}

func TestJobCatalogFallback(t *testing.T) {
	catalog := NewJobCatalog([]byte("jobs: [unterminated"))
	if _, ok := catalog.Lookup("data analyst"); !ok {
		t.Error("built-in entries should be used when YAML is invalid")
	}
}
