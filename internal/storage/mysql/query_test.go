package mysql

import (
	"reflect"
	"regexp"
	"strings"
	"testing"

	"github.com/pingvi095/wifi/internal/domain"
)

func TestBuildPlacesQuery_EmptyCriteria(t *testing.T) {
	q, args := buildPlacesQuery(domain.FilterCriteria{})
	if q != listPlacesBaseSQL {
		t.Fatalf("expected bare base select, got %q", q)
	}
	if len(args) != 0 {
		t.Fatalf("expected no args, got %v", args)
	}
	if strings.Contains(q, "ORDER BY") {
		t.Fatalf("empty criteria must not impose an ordering: %q", q)
	}
}

func TestBuildPlacesQuery_SearchPlaceholderIsNoFilter(t *testing.T) {
	q, args := buildPlacesQuery(domain.FilterCriteria{Query: domain.SearchPlaceholder})
	if strings.Contains(q, "WHERE") || len(args) != 0 {
		t.Fatalf("placeholder text must not become a filter: %q %v", q, args)
	}
}

func TestBuildPlacesQuery_Search(t *testing.T) {
	q, args := buildPlacesQuery(domain.FilterCriteria{Query: "  caf  "})
	if !strings.Contains(q, "(name LIKE ? OR address LIKE ?)") {
		t.Fatalf("missing search predicate: %q", q)
	}
	want := []any{"%caf%", "%caf%"}
	if !reflect.DeepEqual(args, want) {
		t.Fatalf("args = %v, want %v", args, want)
	}
}

func TestBuildPlacesQuery_TypeAndWifi(t *testing.T) {
	q, args := buildPlacesQuery(domain.FilterCriteria{Type: "Кафе", Wifi: "Отличное"})
	if !strings.Contains(q, "TRIM(LOWER(type)) = TRIM(LOWER(?))") {
		t.Fatalf("missing type predicate: %q", q)
	}
	if !strings.Contains(q, "TRIM(LOWER(wifi_quality)) = TRIM(LOWER(?))") {
		t.Fatalf("missing wifi predicate: %q", q)
	}
	if !reflect.DeepEqual(args, []any{"Кафе", "Отличное"}) {
		t.Fatalf("unexpected args: %v", args)
	}
	// independent dimensions are conjoined
	if strings.Count(q, " AND ") != 1 {
		t.Fatalf("expected a single AND between two predicates: %q", q)
	}
}

func TestBuildPlacesQuery_HoursBuckets(t *testing.T) {
	q, args := buildPlacesQuery(domain.FilterCriteria{Hours: domain.HoursRoundTheClock})
	for _, token := range []string{"'%24%'", "'%круглосуточ%'", "'%24/7%'", "'%24 часа%'"} {
		if !strings.Contains(q, token) {
			t.Errorf("round-the-clock predicate lacks %s: %q", token, q)
		}
	}
	if len(args) != 0 {
		t.Fatalf("bucket tokens are constants, expected no args: %v", args)
	}

	q, _ = buildPlacesQuery(domain.FilterCriteria{Hours: domain.HoursUntil23})
	if !strings.Contains(q, `REGEXP '[^0-9]23(:00)?'`) {
		t.Fatalf("until-23 predicate lacks digit-boundary guard: %q", q)
	}
	q, _ = buildPlacesQuery(domain.FilterCriteria{Hours: domain.HoursUntil20})
	if !strings.Contains(q, `REGEXP '[^0-9]20(:00)?'`) {
		t.Fatalf("until-20 predicate lacks digit-boundary guard: %q", q)
	}

	q, args = buildPlacesQuery(domain.FilterCriteria{Hours: domain.HoursBucket("до 18:00")})
	if !strings.Contains(q, "work_hours LIKE ?") {
		t.Fatalf("free label bucket should be a bound substring match: %q", q)
	}
	if !reflect.DeepEqual(args, []any{"%до 18:00%"}) {
		t.Fatalf("unexpected args: %v", args)
	}
}

// The guard expression is evaluated by MySQL, but its dialect here is plain
// POSIX class syntax, so the behavior can be pinned with Go's regexp.
func TestHoursDigitBoundaryGuard(t *testing.T) {
	re := regexp.MustCompile(`[^0-9]23(:00)?`)
	if !re.MatchString(strings.ToLower("9:00-23:00")) {
		t.Error("guard should match 9:00-23:00")
	}
	if !re.MatchString(strings.ToLower("до 23")) {
		t.Error("guard should match до 23")
	}
	if re.MatchString("-123:00") {
		t.Error("guard must not treat the 23 inside 123 as a boundary match")
	}
}

func TestBuildPlacesQuery_Sort(t *testing.T) {
	cases := []struct {
		sort domain.SortMode
		want string
	}{
		{domain.SortUnspecified, ""},
		{domain.SortRatingDesc, " ORDER BY rating DESC"},
		{domain.SortRatingAsc, " ORDER BY rating ASC"},
		{domain.SortNameAsc, " ORDER BY name ASC"},
		{domain.SortNameDesc, " ORDER BY name DESC"},
	}
	for _, tc := range cases {
		q, _ := buildPlacesQuery(domain.FilterCriteria{Sort: tc.sort})
		if tc.want == "" {
			if strings.Contains(q, "ORDER BY") {
				t.Errorf("sort %v: unexpected ordering in %q", tc.sort, q)
			}
			continue
		}
		if !strings.HasSuffix(q, tc.want) {
			t.Errorf("sort %v: query %q does not end with %q", tc.sort, q, tc.want)
		}
	}
}

func TestBuildPlacesQuery_AllDimensions(t *testing.T) {
	c := domain.FilterCriteria{
		Query: "кофе",
		Type:  "Кафе",
		Wifi:  "Хорошее",
		Hours: domain.HoursRoundTheClock,
		Sort:  domain.SortRatingDesc,
	}
	q, args := buildPlacesQuery(c)
	if strings.Count(q, " AND ") != 3 {
		t.Fatalf("expected four conjoined predicates: %q", q)
	}
	if !strings.HasSuffix(q, " ORDER BY rating DESC") {
		t.Fatalf("missing ordering: %q", q)
	}
	if len(args) != 4 { // search bound twice, type, wifi
		t.Fatalf("expected 4 bound args, got %v", args)
	}
}

func TestBuildPlacesQuery_Deterministic(t *testing.T) {
	c := domain.FilterCriteria{
		Query: "caf",
		Type:  "Кафе",
		Wifi:  "Хорошее",
		Hours: domain.HoursUntil23,
		Sort:  domain.SortNameAsc,
	}
	q1, a1 := buildPlacesQuery(c)
	q2, a2 := buildPlacesQuery(c)
	if q1 != q2 {
		t.Fatalf("query text differs between runs:\n%q\n%q", q1, q2)
	}
	if !reflect.DeepEqual(a1, a2) {
		t.Fatalf("args differ between runs: %v vs %v", a1, a2)
	}
}
