// Copyright 2025 Poiesic Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package workflow

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/panjf2000/ants/v2"

	"github.com/poiesic/lattice/agents"
)

// stepAction names the single operation agents expose today. It is recorded
// per step so traces stay meaningful if agents grow more actions.
const stepAction = "execute"

const defaultPoolSize = 8

// Config controls how a single workflow runs.
type Config struct {
	// Parallel runs all agents concurrently against the same payload
	// instead of feeding each agent its predecessors' results.
	Parallel bool

	// StopOnError finalizes the execution as failed on the first agent
	// error instead of recording a degenerate output and continuing.
	StopOnError bool

	// MaxExecutionTime is advisory. Callers enforce deadlines through the
	// context they pass to ExecuteWorkflow.
	MaxExecutionTime time.Duration
}

// Orchestrator runs registered agents as workflows and retains their
// execution traces. Safe for concurrent use.
type Orchestrator struct {
	mu         sync.RWMutex
	registry   map[string]agents.Agent
	executions map[string]*Execution
	pool       *ants.Pool
	logger     *slog.Logger
}

// Option configures an Orchestrator.
type Option func(*orchestratorOptions)

type orchestratorOptions struct {
	poolSize int
	logger   *slog.Logger
}

// WithPoolSize sets the size of the worker pool used for parallel
// workflows.
func WithPoolSize(n int) Option {
	return func(o *orchestratorOptions) {
		if n > 0 {
			o.poolSize = n
		}
	}
}

// WithLogger sets the logger the orchestrator derives its component logger
// from.
func WithLogger(logger *slog.Logger) Option {
	return func(o *orchestratorOptions) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// NewOrchestrator creates an orchestrator with an empty agent registry.
func NewOrchestrator(opts ...Option) (*Orchestrator, error) {
	cfg := orchestratorOptions{
		poolSize: defaultPoolSize,
		logger:   slog.Default(),
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	pool, err := ants.NewPool(cfg.poolSize)
	if err != nil {
		return nil, fmt.Errorf("failed to create worker pool: %w", err)
	}

	return &Orchestrator{
		registry:   make(map[string]agents.Agent),
		executions: make(map[string]*Execution),
		pool:       pool,
		logger:     cfg.logger.With("component", "orchestrator"),
	}, nil
}

// RegisterAgent makes an agent available to workflows under its Name.
// Registering the same name again replaces the previous agent.
func (o *Orchestrator) RegisterAgent(agent agents.Agent) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.registry[agent.Name()] = agent
	o.logger.Debug("registered agent", "agent", agent.Name())
}

// Agents returns the registered agent names, sorted.
func (o *Orchestrator) Agents() []string {
	o.mu.RLock()
	defer o.mu.RUnlock()
	names := make([]string, 0, len(o.registry))
	for name := range o.registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ExecuteWorkflow runs the named agents over the payload and returns the
// execution trace plus one output per requested agent, in request order.
// The returned error is non-nil only when the workflow itself failed:
// unknown agents, or an agent error under Config.StopOnError.
func (o *Orchestrator) ExecuteWorkflow(ctx context.Context, documentID string, agentNames []string, data agents.Payload, cfg Config) (*Execution, []agents.Output, error) {
	if len(agentNames) == 0 {
		return nil, nil, ErrNoAgents
	}

	resolved := make([]agents.Agent, len(agentNames))
	o.mu.RLock()
	for i, name := range agentNames {
		agent, ok := o.registry[name]
		if !ok {
			o.mu.RUnlock()
			return nil, nil, fmt.Errorf("%w: %q", ErrUnknownAgent, name)
		}
		resolved[i] = agent
	}
	o.mu.RUnlock()

	exec := &Execution{
		ID:         uuid.NewString(),
		DocumentID: documentID,
		Status:     StatusRunning,
		StartTime:  time.Now().UTC(),
	}
	o.mu.Lock()
	o.executions[exec.ID] = exec
	o.mu.Unlock()

	o.logger.Info("workflow started",
		"execution_id", exec.ID,
		"document_id", documentID,
		"agents", agentNames,
		"parallel", cfg.Parallel)

	var (
		outputs []agents.Output
		runErr  error
	)
	if cfg.Parallel {
		outputs, runErr = o.runParallel(ctx, exec, agentNames, resolved, data, cfg)
	} else {
		outputs, runErr = o.runSequential(ctx, exec, agentNames, resolved, data, cfg)
	}

	o.mu.Lock()
	exec.EndTime = time.Now().UTC()
	exec.TotalDuration = exec.EndTime.Sub(exec.StartTime)
	if runErr != nil {
		exec.Status = StatusFailed
	} else {
		exec.Status = StatusCompleted
	}
	snap := exec.snapshot()
	o.mu.Unlock()

	o.logger.Info("workflow finished",
		"execution_id", exec.ID,
		"status", snap.Status,
		"duration", snap.TotalDuration)

	return snap, outputs, runErr
}

func (o *Orchestrator) runSequential(ctx context.Context, exec *Execution, names []string, resolved []agents.Agent, data agents.Payload, cfg Config) ([]agents.Output, error) {
	outputs := make([]agents.Output, 0, len(resolved))
	running := data
	for i, agent := range resolved {
		input := agents.Input{
			Data:       running,
			Context:    append([]agents.Output(nil), outputs...),
			WorkflowID: exec.ID,
		}
		started := time.Now()
		out, err := agent.Execute(ctx, input)

		step := AgentStep{
			AgentName: names[i],
			Action:    stepAction,
			Input:     input,
			Timestamp: started.UTC(),
		}
		if err != nil {
			step.Error = err.Error()
			o.appendStep(exec, step)
			o.logger.Warn("agent step failed",
				"execution_id", exec.ID,
				"agent", names[i],
				"error", err)
			if cfg.StopOnError {
				return outputs, fmt.Errorf("%w: agent %s: %w", ErrWorkflowFailed, names[i], err)
			}
			outputs = append(outputs, agents.Output{Meta: agents.OutputMeta{Error: err.Error()}})
			continue
		}

		step.Success = true
		step.Duration = time.Since(started)
		step.Output = out
		o.appendStep(exec, step)
		outputs = append(outputs, *out)
		running = running.Merge(out.Result)
	}
	return outputs, nil
}

func (o *Orchestrator) runParallel(ctx context.Context, exec *Execution, names []string, resolved []agents.Agent, data agents.Payload, cfg Config) ([]agents.Output, error) {
	outputs := make([]agents.Output, len(resolved))
	steps := make([]AgentStep, len(resolved))
	errs := make([]error, len(resolved))

	var wg sync.WaitGroup
	for i, agent := range resolved {
		wg.Add(1)
		task := func() {
			defer wg.Done()
			input := agents.Input{Data: data, WorkflowID: exec.ID}
			started := time.Now()
			out, err := agent.Execute(ctx, input)

			step := AgentStep{
				AgentName: names[i],
				Action:    stepAction,
				Input:     input,
				Timestamp: started.UTC(),
			}
			if err != nil {
				step.Error = err.Error()
				errs[i] = err
				outputs[i] = agents.Output{Meta: agents.OutputMeta{Error: err.Error()}}
				o.logger.Warn("agent step failed",
					"execution_id", exec.ID,
					"agent", names[i],
					"error", err)
			} else {
				step.Success = true
				step.Duration = time.Since(started)
				step.Output = out
				outputs[i] = *out
			}
			steps[i] = step
		}
		if err := o.pool.Submit(task); err != nil {
			wg.Done()
			errs[i] = err
			steps[i] = AgentStep{
				AgentName: names[i],
				Action:    stepAction,
				Timestamp: time.Now().UTC(),
				Error:     err.Error(),
			}
			outputs[i] = agents.Output{Meta: agents.OutputMeta{Error: err.Error()}}
		}
	}
	wg.Wait()

	// Steps land in request order regardless of completion order.
	for _, step := range steps {
		o.appendStep(exec, step)
	}

	if cfg.StopOnError {
		if err := errors.Join(errs...); err != nil {
			return outputs, fmt.Errorf("%w: %w", ErrWorkflowFailed, err)
		}
	}
	return outputs, nil
}

func (o *Orchestrator) appendStep(exec *Execution, step AgentStep) {
	o.mu.Lock()
	exec.Steps = append(exec.Steps, step)
	o.mu.Unlock()
}

// GetExecution returns a snapshot of the execution with the given id. An
// absent id yields no result, not an error.
func (o *Orchestrator) GetExecution(id string) (*Execution, bool) {
	o.mu.RLock()
	defer o.mu.RUnlock()
	exec, ok := o.executions[id]
	if !ok {
		return nil, false
	}
	return exec.snapshot(), true
}

// DocumentExecutions returns snapshots of all executions recorded for the
// document, oldest first.
func (o *Orchestrator) DocumentExecutions(documentID string) []*Execution {
	o.mu.RLock()
	defer o.mu.RUnlock()
	var execs []*Execution
	for _, exec := range o.executions {
		if exec.DocumentID == documentID {
			execs = append(execs, exec.snapshot())
		}
	}
	sort.Slice(execs, func(i, j int) bool {
		return execs[i].StartTime.Before(execs[j].StartTime)
	})
	return execs
}

// Cleanup evicts executions that started before the cutoff and returns how
// many were removed. Purely a retention mechanism, safe to run concurrently
// with new workflow starts.
func (o *Orchestrator) Cleanup(maxAge time.Duration) int {
	cutoff := time.Now().UTC().Add(-maxAge)
	o.mu.Lock()
	defer o.mu.Unlock()
	removed := 0
	for id, exec := range o.executions {
		if exec.StartTime.Before(cutoff) {
			delete(o.executions, id)
			removed++
		}
	}
	return removed
}

// Release shuts down the worker pool. The orchestrator must not be used
// afterwards.
func (o *Orchestrator) Release() {
	o.pool.Release()
}
