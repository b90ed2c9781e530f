// Package directory holds the client-side state of the employee directory:
// the fetched list, the load phase and the derived, filtered view.
package directory

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/UnknownOlympus/athena/internal/lib/logger/sl"
	"github.com/UnknownOlympus/athena/internal/metrics"
	"github.com/UnknownOlympus/athena/internal/models"
)

// LoadErrorMessage is the only error text shown to users.
const LoadErrorMessage = "Failed to load employees. Please try again later."

// Phase is the load state of the directory.
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseLoading
	PhaseLoaded
	PhaseFailed
)

func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseLoading:
		return "loading"
	case PhaseLoaded:
		return "loaded"
	case PhaseFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// Fetcher loads the full employee collection.
type Fetcher interface {
	ListEmployees(ctx context.Context) ([]models.Employee, error)
}

// State is an immutable snapshot of the directory. Employees is set only in
// PhaseLoaded and Error only in PhaseFailed.
type State struct {
	Phase      Phase
	Employees  []models.Employee
	Error      string
	Refreshing bool
}

// View is a State with the criteria applied.
type View struct {
	State
	Criteria    Criteria
	Results     []models.Employee
	Departments []string
}

// Directory owns the fetched list. Overlapping loads are not deduplicated;
// each one applies its outcome when it completes, so the last to finish wins.
type Directory struct {
	log     *slog.Logger
	fetcher Fetcher
	metrics *metrics.Metrics

	mu         sync.Mutex
	state      State
	refreshing int
}

func New(log *slog.Logger, fetcher Fetcher, metrics *metrics.Metrics) *Directory {
	return &Directory{
		log:     log.With(slog.String("division", "directory")),
		fetcher: fetcher,
		metrics: metrics,
	}
}

// Load fetches the employee list and records the outcome.
func (d *Directory) Load(ctx context.Context) State {
	d.begin(false)
	employees, err := d.fetcher.ListEmployees(ctx)
	return d.finish(ctx, false, employees, err)
}

// Refresh is Load triggered by the user; it also raises the refreshing flag
// for its duration.
func (d *Directory) Refresh(ctx context.Context) State {
	d.begin(true)
	employees, err := d.fetcher.ListEmployees(ctx)
	return d.finish(ctx, true, employees, err)
}

// Snapshot returns the current state.
func (d *Directory) Snapshot() State {
	d.mu.Lock()
	defer d.mu.Unlock()

	return d.state
}

// View derives the displayed results from the current state.
func (d *Directory) View(criteria Criteria) View {
	state := d.Snapshot()

	view := View{State: state, Criteria: criteria}
	if state.Phase == PhaseLoaded {
		view.Results = Filter(state.Employees, criteria)
		view.Departments = Departments(state.Employees)
	}

	return view
}

func (d *Directory) begin(refresh bool) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if refresh {
		d.refreshing++
	}
	d.state = State{Phase: PhaseLoading, Refreshing: d.refreshing > 0}
}

func (d *Directory) finish(ctx context.Context, refresh bool, employees []models.Employee, err error) State {
	d.mu.Lock()
	defer d.mu.Unlock()

	if refresh {
		d.refreshing--
	}

	if err != nil {
		d.log.ErrorContext(ctx, "Failed to fetch employees", sl.Err(err))
		d.metrics.DirectoryRefreshes.WithLabelValues("failure").Inc()
		d.state = State{Phase: PhaseFailed, Error: LoadErrorMessage, Refreshing: d.refreshing > 0}
		return d.state
	}

	if employees == nil {
		employees = []models.Employee{}
	}
	d.metrics.DirectoryRefreshes.WithLabelValues("success").Inc()
	d.metrics.LastSuccessfulRefresh.Set(float64(time.Now().Unix()))
	d.state = State{Phase: PhaseLoaded, Employees: employees, Refreshing: d.refreshing > 0}

	return d.state
}
