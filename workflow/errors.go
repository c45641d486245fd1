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

import "errors"

var (
	// ErrUnknownAgent indicates a workflow referenced an agent name that
	// was never registered.
	ErrUnknownAgent = errors.New("unknown agent")

	// ErrNoAgents indicates a workflow was requested with an empty agent
	// list.
	ErrNoAgents = errors.New("workflow requires at least one agent")

	// ErrWorkflowFailed indicates a workflow was finalized as failed under
	// stop-on-error.
	ErrWorkflowFailed = errors.New("workflow failed")
)
