package finance

import (
	"context"

	"crewledger/models"
)

// CrewProjectSummary aggregates one role profile's shifts on one project.
// This is the balance shown on the payment dialog and the number the
// coordinator revalidates transactionally before committing a payment.
func (s *DefaultFinanceService) CrewProjectSummary(ctx context.Context, crewID, projectID string) (models.FinancialSummary, error) {
	key := summaryKey("crew", crewID, projectID)
	if summary, ok := s.cachedSummary(ctx, key); ok {
		return summary, nil
	}

	shifts, err := s.Shifts.GetByCrewAndProject(ctx, crewID, projectID)
	if err != nil {
		return models.FinancialSummary{}, err
	}
	summary := Summarize(shifts)
	s.cacheSummary(ctx, key, summary)
	return summary, nil
}

// ProjectSummary aggregates every shift logged on a project.
func (s *DefaultFinanceService) ProjectSummary(ctx context.Context, projectID string) (models.FinancialSummary, error) {
	key := summaryKey("project", projectID)
	if summary, ok := s.cachedSummary(ctx, key); ok {
		return summary, nil
	}

	shifts, err := s.Shifts.GetByProject(ctx, projectID)
	if err != nil {
		return models.FinancialSummary{}, err
	}
	summary := Summarize(shifts)
	s.cacheSummary(ctx, key, summary)
	return summary, nil
}

// PersonSummary aggregates a person's lifetime shifts across every role
// profile they hold, keyed by the stable member id.
func (s *DefaultFinanceService) PersonSummary(ctx context.Context, mid string) (models.FinancialSummary, error) {
	key := summaryKey("mid", mid)
	if summary, ok := s.cachedSummary(ctx, key); ok {
		return summary, nil
	}

	shifts, err := s.Shifts.GetByMID(ctx, mid)
	if err != nil {
		return models.FinancialSummary{}, err
	}
	summary := Summarize(shifts)
	s.cacheSummary(ctx, key, summary)
	return summary, nil
}

// ProjectCrewBreakdown produces the per-role financial rows of the project
// report: one summary per assigned role profile, derived from the same shift
// set sliced per profile.
func (s *DefaultFinanceService) ProjectCrewBreakdown(ctx context.Context, projectID string) ([]models.CrewFinancials, error) {
	shifts, err := s.Shifts.GetByProject(ctx, projectID)
	if err != nil {
		return nil, err
	}

	byCrew := make(map[string][]models.Shift)
	order := make([]string, 0)
	for _, shift := range shifts {
		if _, seen := byCrew[shift.CrewID]; !seen {
			order = append(order, shift.CrewID)
		}
		byCrew[shift.CrewID] = append(byCrew[shift.CrewID], shift)
	}

	rows := make([]models.CrewFinancials, 0, len(order))
	for _, crewID := range order {
		member, err := s.Crew.GetByID(ctx, crewID)
		if err != nil {
			// A shift can outlive its profile if the profile was deleted;
			// report the financials under a placeholder profile.
			member = &models.CrewMember{ID: crewID, Name: "Unknown Member"}
		}
		rows = append(rows, models.CrewFinancials{
			Crew:    *member,
			Summary: Summarize(byCrew[crewID]),
		})
	}
	return rows, nil
}
