// Package job contains the Job aggregate and its supporting value objects:
// the lifecycle status state machine, the tenant-unique job number, tasks and
// the append-only status log.
//
// A job is created Planned and moves through the state machine defined in
// status.go. Completed and Cancelled are terminal: no further mutation, and no
// new schedule events may be committed against the job.
package job
