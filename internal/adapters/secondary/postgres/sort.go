package postgres

// sortColumn returns the requested sort column when it is in the
// allowlist, otherwise the fallback. Sort columns are interpolated into
// SQL, so only known identifiers may pass through.
func sortColumn(requested string, allowed map[string]bool, fallback string) string {
	if allowed[requested] {
		return requested
	}
	return fallback
}

func sortDirection(order string) string {
	if order == "asc" {
		return "ASC"
	}
	return "DESC"
}
