package entity

type JobMeta struct {
	ID        string
	Path      string
	Workers   int
	Status    JobStatus
	Err       string
	StartedAt int64
	EndedAt   int64

	// Filled once the scan finishes
	Lines    int64
	Bytes    int64
	Stations int
}

// StationRow is one line of a finished report.
type StationRow struct {
	Name  string
	Stats Stats
}
