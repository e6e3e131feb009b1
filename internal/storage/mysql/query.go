package mysql

import (
	"strings"

	"github.com/pingvi095/wifi/internal/domain"
)

// buildPlacesQuery composes the catalog listing query from filter criteria.
// Each dimension contributes at most one predicate; predicates are ANDed in
// a fixed order, so equal criteria always produce identical SQL and args.
// User-supplied literals travel only as bound parameters.
func buildPlacesQuery(c domain.FilterCriteria) (string, []any) {
	var (
		where []string
		args  []any
	)

	if q := strings.TrimSpace(c.Query); q != "" && q != domain.SearchPlaceholder {
		where = append(where, "(name LIKE ? OR address LIKE ?)")
		pat := "%" + q + "%"
		args = append(args, pat, pat)
	}

	if t := strings.TrimSpace(c.Type); t != "" {
		where = append(where, "TRIM(LOWER(type)) = TRIM(LOWER(?))")
		args = append(args, t)
	}

	if w := strings.TrimSpace(c.Wifi); w != "" {
		where = append(where, "TRIM(LOWER(wifi_quality)) = TRIM(LOWER(?))")
		args = append(args, w)
	}

	switch c.Hours {
	case domain.HoursAny:
	case domain.HoursRoundTheClock:
		where = append(where, hoursRoundTheClockSQL)
	case domain.HoursUntil23:
		where = append(where, hoursUntil23SQL)
	case domain.HoursUntil20:
		where = append(where, hoursUntil20SQL)
	default:
		// free-form bucket label: plain substring over the hours text
		where = append(where, "work_hours LIKE ?")
		args = append(args, "%"+string(c.Hours)+"%")
	}

	query := listPlacesBaseSQL
	if len(where) > 0 {
		query += " WHERE " + strings.Join(where, " AND ")
	}

	switch c.Sort {
	case domain.SortRatingDesc:
		query += " ORDER BY rating DESC"
	case domain.SortRatingAsc:
		query += " ORDER BY rating ASC"
	case domain.SortNameAsc:
		query += " ORDER BY name ASC"
	case domain.SortNameDesc:
		query += " ORDER BY name DESC"
	}

	return query, args
}
