package logging

// Common structured log field keys to keep logs searchable/consistent.
const (
	FieldService    = "service"
	FieldVersion    = "version"
	FieldRunID      = "run_id"
	FieldSeason     = "season"
	FieldTeam       = "team"
	FieldWeeks      = "weeks"
	FieldGames      = "games"
	FieldTrials     = "trials"
	FieldSeed       = "seed"
	FieldChampion   = "champion"
	FieldRequestID  = "request_id"
	FieldPath       = "path"
	FieldMethod     = "method"
	FieldStatusCode = "status_code"
	FieldCount      = "count"
	FieldDurationMS = "duration_ms"
)
