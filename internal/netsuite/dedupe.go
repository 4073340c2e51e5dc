package netsuite

// Dedupe collapses a row set to one row per internalid, keeping the first
// occurrence. Queries joining transaction lines return one row per line;
// order of the surviving rows matches the query's own ordering.
func Dedupe(rows []Row) []Row {
	seen := make(map[string]struct{}, len(rows))
	out := make([]Row, 0, len(rows))

	for _, row := range rows {
		id := row.String("internalid")
		if _, ok := seen[id]; ok {
			continue
		}

		seen[id] = struct{}{}
		out = append(out, row)
	}

	return out
}
