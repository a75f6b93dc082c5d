package cmd

import (
	"log/slog"

	"fieldservice/internal/adapters/out/automation"
	"fieldservice/internal/adapters/out/postgres"
	"fieldservice/internal/core/application/usecases/commands"
	"fieldservice/internal/core/application/usecases/queries"
	"fieldservice/internal/core/domain/services"
	"fieldservice/internal/pkg/locker"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	crewLocks  *locker.KeyedMutex
	logger     *slog.Logger
}

func NewCompositionRoot(_ Config, gormDB *gorm.DB, logger *slog.Logger) CompositionRoot {
	return CompositionRoot{
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		crewLocks:  locker.NewKeyedMutex(),
		logger:     logger,
	}
}

func (c *CompositionRoot) CreateCreateJobCommandHandler() commands.CreateJobCommandHandler {
	return commands.NewCreateJobCommandHandler(c.jobUoWFactory())
}

func (c *CompositionRoot) CreateUpdateJobCommandHandler() commands.UpdateJobCommandHandler {
	return commands.NewUpdateJobCommandHandler(c.jobUoWFactory())
}

func (c *CompositionRoot) CreateDeleteJobCommandHandler() commands.DeleteJobCommandHandler {
	var f commands.JobPurgeUoWFactory = FuncJobPurgeUoWFactory(func() commands.JobPurgeUoW {
		return c.uowFactory.Create()
	})
	return commands.NewDeleteJobCommandHandler(f)
}

func (c *CompositionRoot) CreateTransitionJobStatusCommandHandler() commands.TransitionJobStatusCommandHandler {
	return commands.NewTransitionJobStatusCommandHandler(c.jobGraphUoWFactory())
}

func (c *CompositionRoot) CreateCancelJobCommandHandler() commands.CancelJobCommandHandler {
	return commands.NewCancelJobCommandHandler(c.jobUoWFactory())
}

func (c *CompositionRoot) CreateAddTaskCommandHandler() commands.AddTaskCommandHandler {
	return commands.NewAddTaskCommandHandler(c.jobUoWFactory())
}

func (c *CompositionRoot) CreateRemoveTaskCommandHandler() commands.RemoveTaskCommandHandler {
	return commands.NewRemoveTaskCommandHandler(c.jobUoWFactory())
}

func (c *CompositionRoot) CreateUpdateTaskStatusCommandHandler() commands.UpdateTaskStatusCommandHandler {
	return commands.NewUpdateTaskStatusCommandHandler(c.jobUoWFactory())
}

func (c *CompositionRoot) CreateCreateScheduleEventCommandHandler() commands.CreateScheduleEventCommandHandler {
	return commands.NewCreateScheduleEventCommandHandler(c.scheduleUoWFactory(), c.crewLocks)
}

func (c *CompositionRoot) CreateUpdateScheduleEventCommandHandler() commands.UpdateScheduleEventCommandHandler {
	return commands.NewUpdateScheduleEventCommandHandler(c.scheduleUoWFactory(), c.crewLocks)
}

func (c *CompositionRoot) CreateDeleteScheduleEventCommandHandler() commands.DeleteScheduleEventCommandHandler {
	var f commands.EventUoWFactory = FuncEventUoWFactory(func() commands.EventUoW {
		return c.uowFactory.Create()
	})
	return commands.NewDeleteScheduleEventCommandHandler(f)
}

func (c *CompositionRoot) CreateTransitionEventStatusCommandHandler() commands.TransitionEventStatusCommandHandler {
	return commands.NewTransitionEventStatusCommandHandler(c.scheduleUoWFactory())
}

func (c *CompositionRoot) CreateLogTimeEntryCommandHandler() commands.LogTimeEntryCommandHandler {
	return commands.NewLogTimeEntryCommandHandler(c.timeEntryUoWFactory())
}

func (c *CompositionRoot) CreateAmendTimeEntryCommandHandler() commands.AmendTimeEntryCommandHandler {
	return commands.NewAmendTimeEntryCommandHandler(c.timeEntryUoWFactory())
}

func (c *CompositionRoot) CreateDeleteTimeEntryCommandHandler() commands.DeleteTimeEntryCommandHandler {
	return commands.NewDeleteTimeEntryCommandHandler(c.timeEntryUoWFactory())
}

func (c *CompositionRoot) CreateCreateCrewMemberCommandHandler() commands.CreateCrewMemberCommandHandler {
	return commands.NewCreateCrewMemberCommandHandler(c.crewUoWFactory())
}

func (c *CompositionRoot) CreateUpdateCrewMemberCommandHandler() commands.UpdateCrewMemberCommandHandler {
	return commands.NewUpdateCrewMemberCommandHandler(c.crewUoWFactory())
}

func (c *CompositionRoot) CreateDeactivateCrewMemberCommandHandler() commands.DeactivateCrewMemberCommandHandler {
	return commands.NewDeactivateCrewMemberCommandHandler(c.crewUoWFactory())
}

func (c *CompositionRoot) CreateDeclareCrewAvailabilityCommandHandler() commands.DeclareCrewAvailabilityCommandHandler {
	return commands.NewDeclareCrewAvailabilityCommandHandler(c.crewUoWFactory())
}

func (c *CompositionRoot) CreateRemoveCrewAvailabilityCommandHandler() commands.RemoveCrewAvailabilityCommandHandler {
	return commands.NewRemoveCrewAvailabilityCommandHandler(c.crewUoWFactory())
}

func (c *CompositionRoot) CreateAddDependencyCommandHandler() commands.AddDependencyCommandHandler {
	return commands.NewAddDependencyCommandHandler(c.jobGraphUoWFactory())
}

func (c *CompositionRoot) CreateRemoveDependencyCommandHandler() commands.RemoveDependencyCommandHandler {
	return commands.NewRemoveDependencyCommandHandler(c.jobGraphUoWFactory())
}

func (c *CompositionRoot) CreateCreateTriggerCommandHandler() commands.CreateTriggerCommandHandler {
	return commands.NewCreateTriggerCommandHandler(c.triggerUoWFactory())
}

func (c *CompositionRoot) CreateUpdateTriggerCommandHandler() commands.UpdateTriggerCommandHandler {
	return commands.NewUpdateTriggerCommandHandler(c.triggerUoWFactory())
}

func (c *CompositionRoot) CreateDeleteTriggerCommandHandler() commands.DeleteTriggerCommandHandler {
	return commands.NewDeleteTriggerCommandHandler(c.triggerUoWFactory())
}

func (c *CompositionRoot) CreateOptimizeScheduleCommandHandler() commands.OptimizeScheduleCommandHandler {
	var f commands.PlanningUoWFactory = FuncPlanningUoWFactory(func() commands.PlanningUoW {
		return c.uowFactory.Create()
	})
	return commands.NewOptimizeScheduleCommandHandler(f)
}

func (c *CompositionRoot) CreateDispatchAutomationCommandHandler() commands.DispatchAutomationCommandHandler {
	var f commands.AutomationUoWFactory = FuncAutomationUoWFactory(func() commands.AutomationUoW {
		return c.uowFactory.Create()
	})

	dispatcher := automation.NewGatewayActionDispatcher(
		automation.NewLogNotificationGateway(c.logger),
		automation.NewCommandTaskCreator(c.CreateAddTaskCommandHandler()),
		automation.NewLogInvoiceGenerator(c.logger),
	)
	engine := services.NewAutomationEngine(dispatcher, c.logger)

	return commands.NewDispatchAutomationCommandHandler(f, engine)
}

func (c *CompositionRoot) CreateListJobsQueryHandler() queries.ListJobsQueryHandler {
	return queries.NewListJobsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetJobQueryHandler() queries.GetJobQueryHandler {
	return queries.NewGetJobQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetJobHistoryQueryHandler() queries.GetJobHistoryQueryHandler {
	return queries.NewGetJobHistoryQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetJobTimeEntriesQueryHandler() queries.GetJobTimeEntriesQueryHandler {
	return queries.NewGetJobTimeEntriesQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateListJobEventsQueryHandler() queries.ListJobEventsQueryHandler {
	return queries.NewListJobEventsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateListJobDependenciesQueryHandler() queries.ListJobDependenciesQueryHandler {
	return queries.NewListJobDependenciesQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetScheduleOverviewQueryHandler() queries.GetScheduleOverviewQueryHandler {
	return queries.NewGetScheduleOverviewQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateFindScheduleConflictsQueryHandler() queries.FindScheduleConflictsQueryHandler {
	return queries.NewFindScheduleConflictsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateListCrewMembersQueryHandler() queries.ListCrewMembersQueryHandler {
	return queries.NewListCrewMembersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateListCrewAvailabilityQueryHandler() queries.ListCrewAvailabilityQueryHandler {
	return queries.NewListCrewAvailabilityQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateListTriggersQueryHandler() queries.ListTriggersQueryHandler {
	return queries.NewListTriggersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) jobUoWFactory() commands.JobUoWFactory {
	return FuncJobUoWFactory(func() commands.JobUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) jobGraphUoWFactory() commands.JobGraphUoWFactory {
	return FuncJobGraphUoWFactory(func() commands.JobGraphUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) scheduleUoWFactory() commands.ScheduleUoWFactory {
	return FuncScheduleUoWFactory(func() commands.ScheduleUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) crewUoWFactory() commands.CrewUoWFactory {
	return FuncCrewUoWFactory(func() commands.CrewUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) timeEntryUoWFactory() commands.TimeEntryUoWFactory {
	return FuncTimeEntryUoWFactory(func() commands.TimeEntryUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) triggerUoWFactory() commands.TriggerUoWFactory {
	return FuncTriggerUoWFactory(func() commands.TriggerUoW {
		return c.uowFactory.Create()
	})
}

type FuncJobUoWFactory func() commands.JobUoW

func (f FuncJobUoWFactory) Create() commands.JobUoW {
	return f()
}

type FuncJobGraphUoWFactory func() commands.JobGraphUoW

func (f FuncJobGraphUoWFactory) Create() commands.JobGraphUoW {
	return f()
}

type FuncJobPurgeUoWFactory func() commands.JobPurgeUoW

func (f FuncJobPurgeUoWFactory) Create() commands.JobPurgeUoW {
	return f()
}

type FuncEventUoWFactory func() commands.EventUoW

func (f FuncEventUoWFactory) Create() commands.EventUoW {
	return f()
}

type FuncCrewUoWFactory func() commands.CrewUoW

func (f FuncCrewUoWFactory) Create() commands.CrewUoW {
	return f()
}

type FuncScheduleUoWFactory func() commands.ScheduleUoW

func (f FuncScheduleUoWFactory) Create() commands.ScheduleUoW {
	return f()
}

type FuncTimeEntryUoWFactory func() commands.TimeEntryUoW

func (f FuncTimeEntryUoWFactory) Create() commands.TimeEntryUoW {
	return f()
}

type FuncTriggerUoWFactory func() commands.TriggerUoW

func (f FuncTriggerUoWFactory) Create() commands.TriggerUoW {
	return f()
}

type FuncAutomationUoWFactory func() commands.AutomationUoW

func (f FuncAutomationUoWFactory) Create() commands.AutomationUoW {
	return f()
}

type FuncPlanningUoWFactory func() commands.PlanningUoW

func (f FuncPlanningUoWFactory) Create() commands.PlanningUoW {
	return f()
}
