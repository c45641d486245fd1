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


// Package agents implements the extraction agents of the pipeline.
//
// An agent is a stateless unit that turns page content (plus accumulated
// context) into one category of graph fragment: concepts, named entities, or
// typed relationships. All agents share one capability:
//
//	Execute(ctx, Input) (*Output, error)
//
// with Input carrying a typed Payload and Output carrying the normalized,
// scored fragments. The workflow orchestrator depends only on the Agent
// interface, never on concrete agent types.
//
// # Contract
//
// Inputs lacking page text or a workflow id are rejected with
// ErrInvalidInput before any backend call. Backend failures propagate
// wrapped; agents never retry internally - retry policy belongs to the
// caller. Beyond the outbound extraction request agents are pure functions
// of their input.
//
// # Confidence
//
// An agent's overall confidence is the mean of its fragments' confidences
// clamped to [0,1]; an empty fragment set yields 0. The entity and
// relationship agents add a bounded diversity bonus that rewards varied, not
// just numerous, fragments.
package agents
