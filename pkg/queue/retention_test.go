package queue

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/exegete-ai/exegete/ent/analysisjob"
	"github.com/exegete-ai/exegete/pkg/config"
	"github.com/exegete-ai/exegete/pkg/services"
)

func TestRetentionSweeperDeletesOldTerminalJobs(t *testing.T) {
	h := newHarness(t, &fakeCaller{})
	ctx := context.Background()

	plan := h.twoPhasePlan(t)
	plan.PlanID = "plan-retained"
	job := h.createJob(t, plan)
	_, err := h.jobs.MarkTerminal(ctx, job.ID, analysisjob.StatusCompleted, "")
	require.NoError(t, err)

	sweeper := NewRetentionSweeper(h.jobs, config.RetentionSettings{
		Enabled:       true,
		MaxAge:        time.Millisecond,
		SweepInterval: 10 * time.Millisecond,
	})
	sweeper.Start(ctx)
	defer sweeper.Stop()

	assert.Eventually(t, func() bool {
		_, err := h.jobs.Get(ctx, job.ID)
		return err != nil
	}, 2*time.Second, 10*time.Millisecond)

	_, err = h.jobs.Get(ctx, job.ID)
	assert.ErrorIs(t, err, services.ErrNotFound)
}

func TestRetentionSweeperDisabled(t *testing.T) {
	h := newHarness(t, &fakeCaller{})

	sweeper := NewRetentionSweeper(h.jobs, config.RetentionSettings{Enabled: false})
	sweeper.Start(context.Background())
	// Start returned without launching the loop; Stop must not hang
	sweeper.Stop()
}
