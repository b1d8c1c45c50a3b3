package usecase

import (
	"context"
)

// ToggleComplete flips the completed flag for the matching task.
// Unknown ids are a no-op; the caller cannot distinguish and does not need to.
func (uc *implUseCase) ToggleComplete(ctx context.Context, id string) error {
	if err := uc.repo.ToggleTask(ctx, id); err != nil {
		uc.l.Errorf(ctx, "uc.ToggleComplete ToggleTask: %v", err)
		return err
	}
	return nil
}

// Delete removes the matching task. Unknown ids are a no-op. User
// confirmation is a UI concern, by the time this runs the decision is made.
func (uc *implUseCase) Delete(ctx context.Context, id string) error {
	if err := uc.repo.DeleteTask(ctx, id); err != nil {
		uc.l.Errorf(ctx, "uc.Delete DeleteTask: %v", err)
		return err
	}
	return nil
}
