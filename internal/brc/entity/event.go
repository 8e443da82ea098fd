package entity

// JobEvent is published once per finished job.
type JobEvent struct {
	EventID string
	JobID   string
	Status  JobStatus
	Output  string
}
