package models

// CheckinTable is the sparse check-in ledger: date (YYYY-MM-DD) -> habit id -> 0|1.
// A date key may exist with a partial set of habit ids; that is distinct from
// the date having no entry at all.
type CheckinTable map[string]map[string]int

// Clone returns a deep copy of the table.
func (c CheckinTable) Clone() CheckinTable {
	out := make(CheckinTable, len(c))
	for date, day := range c {
		dayCopy := make(map[string]int, len(day))
		for id, v := range day {
			dayCopy[id] = v
		}
		out[date] = dayCopy
	}
	return out
}
