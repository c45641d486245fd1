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
	"time"

	"github.com/poiesic/lattice/agents"
)

// Status is the lifecycle state of an execution.
type Status string

const (
	StatusRunning   Status = "running"
	StatusCompleted Status = "completed"
	StatusFailed    Status = "failed"
)

// AgentStep records one agent invocation within an execution. Failed steps
// carry a zero Duration and the error text.
type AgentStep struct {
	AgentName string
	Action    string
	Input     agents.Input
	Output    *agents.Output
	Timestamp time.Time
	Duration  time.Duration
	Success   bool
	Error     string
}

// Execution is the full trace of one workflow run.
type Execution struct {
	ID            string
	DocumentID    string
	Steps         []AgentStep
	Status        Status
	StartTime     time.Time
	EndTime       time.Time
	TotalDuration time.Duration
}

// snapshot returns an independent copy safe to hand out while the
// orchestrator keeps mutating the original.
func (e *Execution) snapshot() *Execution {
	cp := *e
	cp.Steps = make([]AgentStep, len(e.Steps))
	copy(cp.Steps, e.Steps)
	return &cp
}

// Succeeded reports whether the execution completed without being
// finalized as failed.
func (e *Execution) Succeeded() bool {
	return e.Status == StatusCompleted
}

// FailedSteps returns the names of agents whose steps failed.
func (e *Execution) FailedSteps() []string {
	var failed []string
	for _, s := range e.Steps {
		if !s.Success {
			failed = append(failed, s.AgentName)
		}
	}
	return failed
}
