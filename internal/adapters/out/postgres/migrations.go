package postgres

import (
	"fieldservice/internal/adapters/out/postgres/crewrepo"
	"fieldservice/internal/adapters/out/postgres/dependencyrepo"
	"fieldservice/internal/adapters/out/postgres/jobrepo"
	"fieldservice/internal/adapters/out/postgres/schedulerepo"
	"fieldservice/internal/adapters/out/postgres/triggerrepo"

	"gorm.io/gorm"
)

// Migrate creates or updates the database schema for every persistence DTO.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&jobrepo.JobDTO{},
		&jobrepo.TaskDTO{},
		&jobrepo.StatusLogDTO{},
		&jobrepo.SequenceDTO{},
		&crewrepo.CrewMemberDTO{},
		&crewrepo.AvailabilityDTO{},
		&schedulerepo.EventDTO{},
		&schedulerepo.EventStatusLogDTO{},
		&schedulerepo.TimeEntryDTO{},
		&dependencyrepo.DependencyDTO{},
		&triggerrepo.TriggerDTO{},
		&triggerrepo.DispatchDTO{},
	)
}
