package file

import (
	"time"

	"github.com/google/uuid"

	"classsync/internal/model"
	"classsync/pkg/dateutil"
)

// seedTasks is the initial collection shown when no state has been saved yet.
func seedTasks() []model.Task {
	now := time.Now()
	return []model.Task{
		{
			ID:          uuid.NewString(),
			Title:       "Physics Lab Report",
			Teacher:     "Mr. Heisenberg",
			Deadline:    now.AddDate(0, 0, 2).Format(dateutil.DateFormat),
			Description: "Complete the write-up for the projectile motion experiment. Include all graphs.",
			Priority:    model.PriorityHigh,
			Completed:   false,
			CreatedAt:   now,
		},
		{
			ID:          uuid.NewString(),
			Title:       "History Essay Draft",
			Teacher:     "Ms. Antony",
			Deadline:    now.AddDate(0, 0, 5).Format(dateutil.DateFormat),
			Description: "First draft about the Industrial Revolution impact on urbanization.",
			Priority:    model.PriorityMedium,
			Completed:   true,
			CreatedAt:   now.Add(-100 * time.Second),
		},
	}
}
