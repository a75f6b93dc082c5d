// Package schedule contains the ScheduleEvent aggregate (a crew + time-window
// commitment against a job, with its own status lifecycle and append-only log)
// and the TimeEntry record for reported working time.
package schedule
