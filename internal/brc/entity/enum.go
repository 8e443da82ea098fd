package entity

type JobStatus string

const (
	JobStatusQueued     JobStatus = "QUEUED"
	JobStatusProcessing JobStatus = "PROCESSING"
	JobStatusDone       JobStatus = "DONE"
	JobStatusFailed     JobStatus = "FAILED"
)

// Finished reports whether the job will not change status anymore.
func (s JobStatus) Finished() bool {
	return s == JobStatusDone || s == JobStatusFailed
}
