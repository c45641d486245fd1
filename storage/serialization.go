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


package storage

import (
	"github.com/poiesic/lattice/core"
)

// MarshalConceptNode serializes a ConceptNode to bytes.
func MarshalConceptNode(node *core.ConceptNode) []byte {
	buf := make([]byte, core.ConceptNodeMUS.Size(*node))
	core.ConceptNodeMUS.Marshal(*node, buf)
	return buf
}

// UnmarshalConceptNode deserializes a ConceptNode from bytes.
func UnmarshalConceptNode(data []byte) (*core.ConceptNode, error) {
	node, _, err := core.ConceptNodeMUS.Unmarshal(data)
	if err != nil {
		return nil, err
	}
	return &node, nil
}

// MarshalEntityNode serializes an EntityNode to bytes.
func MarshalEntityNode(node *core.EntityNode) []byte {
	buf := make([]byte, core.EntityNodeMUS.Size(*node))
	core.EntityNodeMUS.Marshal(*node, buf)
	return buf
}

// UnmarshalEntityNode deserializes an EntityNode from bytes.
func UnmarshalEntityNode(data []byte) (*core.EntityNode, error) {
	node, _, err := core.EntityNodeMUS.Unmarshal(data)
	if err != nil {
		return nil, err
	}
	return &node, nil
}

// MarshalRelationshipNode serializes a RelationshipNode to bytes.
func MarshalRelationshipNode(node *core.RelationshipNode) []byte {
	buf := make([]byte, core.RelationshipNodeMUS.Size(*node))
	core.RelationshipNodeMUS.Marshal(*node, buf)
	return buf
}

// UnmarshalRelationshipNode deserializes a RelationshipNode from bytes.
func UnmarshalRelationshipNode(data []byte) (*core.RelationshipNode, error) {
	node, _, err := core.RelationshipNodeMUS.Unmarshal(data)
	if err != nil {
		return nil, err
	}
	return &node, nil
}

// MarshalGraphRelationship serializes a GraphRelationship to bytes.
func MarshalGraphRelationship(edge *core.GraphRelationship) []byte {
	buf := make([]byte, core.GraphRelationshipMUS.Size(*edge))
	core.GraphRelationshipMUS.Marshal(*edge, buf)
	return buf
}

// UnmarshalGraphRelationship deserializes a GraphRelationship from bytes.
func UnmarshalGraphRelationship(data []byte) (*core.GraphRelationship, error) {
	edge, _, err := core.GraphRelationshipMUS.Unmarshal(data)
	if err != nil {
		return nil, err
	}
	return &edge, nil
}
