package review

import (
	"fmt"

	"github.com/felixgeelhaar/statekit"
)

type RunStatus string

const (
	RunIdle        RunStatus = "idle"
	RunDiscovering RunStatus = "discovering"
	RunReviewing   RunStatus = "reviewing"
	RunCompleted   RunStatus = "completed"
	RunEmpty       RunStatus = "empty"
	RunAborted     RunStatus = "aborted"
)

// Run lifecycle events.
const (
	EventDiscover = "discover"
	EventReview   = "review"
	EventNone     = "none_found"
	EventFinish   = "finish"
	EventAbort    = "abort"
	EventReset    = "reset"
)

// State identifiers must stay untyped for statekit.StateID compatibility and
// match the RunStatus values above.
const (
	stateIdle        = "idle"
	stateDiscovering = "discovering"
	stateReviewing   = "reviewing"
	stateCompleted   = "completed"
	stateEmpty       = "empty"
	stateAborted     = "aborted"
)

type runContext struct {
	Root string
}

// RunStateMachine tracks the phase of a review run.
type RunStateMachine struct {
	interpreter *statekit.Interpreter[runContext]
}

func NewRunStateMachine(root string) (*RunStateMachine, error) {
	builder := statekit.NewMachine[runContext]("review-run").
		WithInitial(statekit.StateID(stateIdle)).
		WithContext(runContext{Root: root})

	builder.State(stateIdle).
		On(EventDiscover).Target(stateDiscovering).
		Done()

	builder.State(stateDiscovering).
		On(EventReview).Target(stateReviewing).
		On(EventNone).Target(stateEmpty).
		On(EventAbort).Target(stateAborted).
		Done()

	builder.State(stateReviewing).
		On(EventFinish).Target(stateCompleted).
		On(EventAbort).Target(stateAborted).
		Done()

	builder.State(stateCompleted).
		On(EventReset).Target(stateIdle).
		Done()

	builder.State(stateEmpty).
		On(EventReset).Target(stateIdle).
		Done()

	builder.State(stateAborted).
		On(EventReset).Target(stateIdle).
		Done()

	machine, err := builder.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to build run state machine: %w", err)
	}

	interpreter := statekit.NewInterpreter(machine)
	interpreter.Start()

	return &RunStateMachine{interpreter: interpreter}, nil
}

// Transition sends event and fails if the run did not change phase.
func (sm *RunStateMachine) Transition(event string) error {
	before := sm.Current()
	sm.interpreter.Send(statekit.Event{Type: statekit.EventType(event)})
	if sm.Current() != before {
		return nil
	}
	return fmt.Errorf("event %q is not allowed while the run is %s", event, before)
}

func (sm *RunStateMachine) Current() RunStatus {
	return RunStatus(sm.interpreter.State().Value)
}
