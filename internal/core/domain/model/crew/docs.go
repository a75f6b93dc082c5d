// Package crew contains the CrewMember aggregate: a schedulable worker with a
// skill set, working-hour limits and declared availability/blackout windows.
// Deactivation is a soft delete so historical schedule events keep their crew
// references.
package crew
