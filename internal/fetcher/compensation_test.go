package fetcher

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestBaselineTableBands(t *testing.T) {
	testCases := []struct {
		name     string
		provider *BaselineTable
		role     string
		region   string
		p25      string
		median   string
		p75      string
		currency string
	}{
		{"fr data", NewApecInseeProvider(), "Data Analyst", "", "42000", "48000", "60000", "EUR"},
		{"fr paris", NewApecInseeProvider(), "Data Analyst", "Île-de-France", "47040", "53760", "67200", "EUR"},
		{"fr lyon", NewApecInseeProvider(), "Product Manager", "Lyon", "47250", "57750", "71400", "EUR"},
		{"fr other region", NewApecInseeProvider(), "Comptable", "Bretagne", "36100", "43700", "55100", "EUR"},
		{"fr ingenieur", NewApecInseeProvider(), "Ingénieur logiciel", "", "45000", "55000", "70000", "EUR"},
		{"uk london", NewOnsAsheProvider(), "Software Engineer", "Greater London", "62500", "87500", "112500", "GBP"},
		{"uk scotland", NewOnsAsheProvider(), "Nurse", "Scotland", "32200", "41400", "50600", "GBP"},
		{"us california", NewBlsProvider(), "Data Scientist", "California", "88500", "112100", "141600", "USD"},
		{"us engineer", NewBlsProvider(), "Site Reliability Engineer", "Ohio", "100000", "135000", "180000", "USD"},
		{"eurostat data", NewEurostatProvider(), "Data Engineer", "Bavaria", "41600", "52000", "65000", "EUR"},
		{"eurostat generic", NewEurostatProvider(), "Designer", "", "36800", "46000", "57500", "EUR"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			b, ok := tc.provider.Baseline(tc.role, tc.region)
			if !ok {
				t.Fatalf("Baseline(%q, %q) returned no data", tc.role, tc.region)
			}
			check := func(field string, got decimal.Decimal, want string) {
				if !got.Equal(decimal.RequireFromString(want)) {
					t.Errorf("%s = %s, want %s", field, got, want)
				}
			}
			check("p25", b.P25, tc.p25)
			check("median", b.Median, tc.median)
			check("p75", b.P75, tc.p75)
			if b.Currency != tc.currency {
				t.Errorf("currency = %s, want %s", b.Currency, tc.currency)
			}
			if b.Notes == "" {
				t.Error("notes should not be empty")
			}
		})
	}
}

func TestBaselineTableSupports(t *testing.T) {
	if !NewOnsAsheProvider().Supports("gb") {
		t.Error("GB should be served by the UK provider")
	}
	if !NewApecInseeProvider().Supports(" fr ") {
		t.Error("country matching should ignore case and spaces")
	}
	if NewEurostatProvider().Supports("FR") {
		t.Error("Eurostat should not cover FR")
	}
}

func TestSourcesReturnsCopy(t *testing.T) {
	p := NewBlsProvider()
	s := p.Sources()
	s[0].URL = "mutated"
	if p.Sources()[0].URL == "mutated" {
		t.Error("Sources should not expose internal slice")
	}
}
