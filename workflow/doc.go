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


// Package workflow coordinates agent executions over a document page.
//
// The Orchestrator maintains a registry of named agents and runs them as a
// workflow, either sequentially (each agent sees the accumulated results of
// its predecessors) or in parallel over a shared worker pool. Every run
// produces an Execution: a full trace of which agent ran, with what input,
// what it returned, how long it took and whether it succeeded.
//
// # Failure handling
//
// A failing agent never tears down the workflow by default. Its step is
// recorded as failed and a degenerate output (nil result, zero confidence)
// takes its position so that output indices stay aligned with the requested
// agent order. With Config.StopOnError set, the first failure finalizes the
// execution as failed and returns the error instead.
//
// Executions stay queryable after completion until Cleanup evicts them.
package workflow
