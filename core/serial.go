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


package core

import (
	"math"
	"slices"
	"time"

	"github.com/mus-format/mus-go/ord"
	"github.com/mus-format/mus-go/varint"
)

// Hand-written mus serializers for the stored node types. Field order is
// fixed; adding fields requires appending, never reordering.

// ConceptNodeMUS serializes ConceptNode values.
var ConceptNodeMUS = conceptNodeMUS{}

// EntityNodeMUS serializes EntityNode values.
var EntityNodeMUS = entityNodeMUS{}

// RelationshipNodeMUS serializes RelationshipNode values.
var RelationshipNodeMUS = relationshipNodeMUS{}

// GraphRelationshipMUS serializes GraphRelationship values.
var GraphRelationshipMUS = graphRelationshipMUS{}

// Timestamps are stored as UnixMicro, floats as their IEEE 754 bits.

func marshalTime(t time.Time, bs []byte) int {
	return varint.Uint64.Marshal(uint64(t.UnixMicro()), bs)
}

func unmarshalTime(bs []byte) (time.Time, int, error) {
	v, n, err := varint.Uint64.Unmarshal(bs)
	if err != nil {
		return time.Time{}, n, err
	}
	return time.UnixMicro(int64(v)).UTC(), n, nil
}

func sizeTime(t time.Time) int {
	return varint.Uint64.Size(uint64(t.UnixMicro()))
}

func marshalFloat(f float64, bs []byte) int {
	return varint.Uint64.Marshal(math.Float64bits(f), bs)
}

func unmarshalFloat(bs []byte) (float64, int, error) {
	v, n, err := varint.Uint64.Unmarshal(bs)
	if err != nil {
		return 0, n, err
	}
	return math.Float64frombits(v), n, nil
}

func sizeFloat(f float64) int {
	return varint.Uint64.Size(math.Float64bits(f))
}

func marshalStrings(vs []string, bs []byte) (n int) {
	n = varint.Uint64.Marshal(uint64(len(vs)), bs)
	for _, v := range vs {
		n += ord.String.Marshal(v, bs[n:])
	}
	return n
}

func unmarshalStrings(bs []byte) (vs []string, n int, err error) {
	length, n, err := varint.Uint64.Unmarshal(bs)
	if err != nil {
		return nil, n, err
	}
	if length == 0 {
		return nil, n, nil
	}
	vs = make([]string, 0, length)
	for range length {
		var v string
		var vn int
		v, vn, err = ord.String.Unmarshal(bs[n:])
		n += vn
		if err != nil {
			return nil, n, err
		}
		vs = append(vs, v)
	}
	return vs, n, nil
}

func sizeStrings(vs []string) (size int) {
	size = varint.Uint64.Size(uint64(len(vs)))
	for _, v := range vs {
		size += ord.String.Size(v)
	}
	return size
}

// String maps are stored with sorted keys so equal maps encode identically.

func marshalStringMap(m map[string]string, bs []byte) (n int) {
	n = varint.Uint64.Marshal(uint64(len(m)), bs)
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	for _, k := range keys {
		n += ord.String.Marshal(k, bs[n:])
		n += ord.String.Marshal(m[k], bs[n:])
	}
	return n
}

func unmarshalStringMap(bs []byte) (m map[string]string, n int, err error) {
	length, n, err := varint.Uint64.Unmarshal(bs)
	if err != nil {
		return nil, n, err
	}
	if length == 0 {
		return nil, n, nil
	}
	m = make(map[string]string, length)
	for range length {
		var k, v string
		var kn, vn int
		k, kn, err = ord.String.Unmarshal(bs[n:])
		n += kn
		if err != nil {
			return nil, n, err
		}
		v, vn, err = ord.String.Unmarshal(bs[n:])
		n += vn
		if err != nil {
			return nil, n, err
		}
		m[k] = v
	}
	return m, n, nil
}

func sizeStringMap(m map[string]string) (size int) {
	size = varint.Uint64.Size(uint64(len(m)))
	for k, v := range m {
		size += ord.String.Size(k) + ord.String.Size(v)
	}
	return size
}

type conceptNodeMUS struct{}

func (conceptNodeMUS) Marshal(node ConceptNode, bs []byte) (n int) {
	n = ord.String.Marshal(node.ID, bs)
	n += marshalStrings(node.Labels, bs[n:])
	n += ord.String.Marshal(node.Properties.Name, bs[n:])
	n += ord.String.Marshal(node.Properties.Definition, bs[n:])
	n += ord.String.Marshal(node.Properties.Domain, bs[n:])
	n += marshalFloat(node.Properties.Confidence, bs[n:])
	n += ord.Bool.Marshal(node.Properties.TaxonomyMapped, bs[n:])
	n += ord.String.Marshal(node.Properties.Taxonomy, bs[n:])
	n += marshalTime(node.CreatedAt, bs[n:])
	n += marshalTime(node.UpdatedAt, bs[n:])
	return n
}

func (conceptNodeMUS) Unmarshal(bs []byte) (node ConceptNode, n int, err error) {
	var vn int
	if node.ID, n, err = ord.String.Unmarshal(bs); err != nil {
		return node, n, err
	}
	if node.Labels, vn, err = unmarshalStrings(bs[n:]); err != nil {
		return node, n + vn, err
	}
	n += vn
	if node.Properties.Name, vn, err = ord.String.Unmarshal(bs[n:]); err != nil {
		return node, n + vn, err
	}
	n += vn
	if node.Properties.Definition, vn, err = ord.String.Unmarshal(bs[n:]); err != nil {
		return node, n + vn, err
	}
	n += vn
	if node.Properties.Domain, vn, err = ord.String.Unmarshal(bs[n:]); err != nil {
		return node, n + vn, err
	}
	n += vn
	if node.Properties.Confidence, vn, err = unmarshalFloat(bs[n:]); err != nil {
		return node, n + vn, err
	}
	n += vn
	if node.Properties.TaxonomyMapped, vn, err = ord.Bool.Unmarshal(bs[n:]); err != nil {
		return node, n + vn, err
	}
	n += vn
	if node.Properties.Taxonomy, vn, err = ord.String.Unmarshal(bs[n:]); err != nil {
		return node, n + vn, err
	}
	n += vn
	if node.CreatedAt, vn, err = unmarshalTime(bs[n:]); err != nil {
		return node, n + vn, err
	}
	n += vn
	if node.UpdatedAt, vn, err = unmarshalTime(bs[n:]); err != nil {
		return node, n + vn, err
	}
	n += vn
	return node, n, nil
}

func (conceptNodeMUS) Size(node ConceptNode) (size int) {
	size = ord.String.Size(node.ID)
	size += sizeStrings(node.Labels)
	size += ord.String.Size(node.Properties.Name)
	size += ord.String.Size(node.Properties.Definition)
	size += ord.String.Size(node.Properties.Domain)
	size += sizeFloat(node.Properties.Confidence)
	size += ord.Bool.Size(node.Properties.TaxonomyMapped)
	size += ord.String.Size(node.Properties.Taxonomy)
	size += sizeTime(node.CreatedAt)
	size += sizeTime(node.UpdatedAt)
	return size
}

func (s conceptNodeMUS) Skip(bs []byte) (n int, err error) {
	_, n, err = s.Unmarshal(bs)
	return n, err
}

type entityNodeMUS struct{}

func (entityNodeMUS) Marshal(node EntityNode, bs []byte) (n int) {
	n = ord.String.Marshal(node.ID, bs)
	n += marshalStrings(node.Labels, bs[n:])
	n += ord.String.Marshal(node.Properties.Name, bs[n:])
	n += ord.String.Marshal(node.Properties.Type, bs[n:])
	n += ord.String.Marshal(node.Properties.Description, bs[n:])
	n += marshalFloat(node.Properties.Confidence, bs[n:])
	n += marshalStringMap(node.Properties.Attributes, bs[n:])
	n += marshalTime(node.CreatedAt, bs[n:])
	n += marshalTime(node.UpdatedAt, bs[n:])
	return n
}

func (entityNodeMUS) Unmarshal(bs []byte) (node EntityNode, n int, err error) {
	var vn int
	if node.ID, n, err = ord.String.Unmarshal(bs); err != nil {
		return node, n, err
	}
	if node.Labels, vn, err = unmarshalStrings(bs[n:]); err != nil {
		return node, n + vn, err
	}
	n += vn
	if node.Properties.Name, vn, err = ord.String.Unmarshal(bs[n:]); err != nil {
		return node, n + vn, err
	}
	n += vn
	if node.Properties.Type, vn, err = ord.String.Unmarshal(bs[n:]); err != nil {
		return node, n + vn, err
	}
	n += vn
	if node.Properties.Description, vn, err = ord.String.Unmarshal(bs[n:]); err != nil {
		return node, n + vn, err
	}
	n += vn
	if node.Properties.Confidence, vn, err = unmarshalFloat(bs[n:]); err != nil {
		return node, n + vn, err
	}
	n += vn
	if node.Properties.Attributes, vn, err = unmarshalStringMap(bs[n:]); err != nil {
		return node, n + vn, err
	}
	n += vn
	if node.CreatedAt, vn, err = unmarshalTime(bs[n:]); err != nil {
		return node, n + vn, err
	}
	n += vn
	if node.UpdatedAt, vn, err = unmarshalTime(bs[n:]); err != nil {
		return node, n + vn, err
	}
	n += vn
	return node, n, nil
}

func (entityNodeMUS) Size(node EntityNode) (size int) {
	size = ord.String.Size(node.ID)
	size += sizeStrings(node.Labels)
	size += ord.String.Size(node.Properties.Name)
	size += ord.String.Size(node.Properties.Type)
	size += ord.String.Size(node.Properties.Description)
	size += sizeFloat(node.Properties.Confidence)
	size += sizeStringMap(node.Properties.Attributes)
	size += sizeTime(node.CreatedAt)
	size += sizeTime(node.UpdatedAt)
	return size
}

func (s entityNodeMUS) Skip(bs []byte) (n int, err error) {
	_, n, err = s.Unmarshal(bs)
	return n, err
}

type relationshipNodeMUS struct{}

func (relationshipNodeMUS) Marshal(node RelationshipNode, bs []byte) (n int) {
	n = ord.String.Marshal(node.ID, bs)
	n += marshalStrings(node.Labels, bs[n:])
	n += ord.String.Marshal(node.Properties.Type, bs[n:])
	n += ord.String.Marshal(node.Properties.Description, bs[n:])
	n += marshalFloat(node.Properties.Confidence, bs[n:])
	n += ord.String.Marshal(node.Properties.SourceEntityID, bs[n:])
	n += ord.String.Marshal(node.Properties.TargetEntityID, bs[n:])
	n += marshalTime(node.CreatedAt, bs[n:])
	n += marshalTime(node.UpdatedAt, bs[n:])
	return n
}

func (relationshipNodeMUS) Unmarshal(bs []byte) (node RelationshipNode, n int, err error) {
	var vn int
	if node.ID, n, err = ord.String.Unmarshal(bs); err != nil {
		return node, n, err
	}
	if node.Labels, vn, err = unmarshalStrings(bs[n:]); err != nil {
		return node, n + vn, err
	}
	n += vn
	if node.Properties.Type, vn, err = ord.String.Unmarshal(bs[n:]); err != nil {
		return node, n + vn, err
	}
	n += vn
	if node.Properties.Description, vn, err = ord.String.Unmarshal(bs[n:]); err != nil {
		return node, n + vn, err
	}
	n += vn
	if node.Properties.Confidence, vn, err = unmarshalFloat(bs[n:]); err != nil {
		return node, n + vn, err
	}
	n += vn
	if node.Properties.SourceEntityID, vn, err = ord.String.Unmarshal(bs[n:]); err != nil {
		return node, n + vn, err
	}
	n += vn
	if node.Properties.TargetEntityID, vn, err = ord.String.Unmarshal(bs[n:]); err != nil {
		return node, n + vn, err
	}
	n += vn
	if node.CreatedAt, vn, err = unmarshalTime(bs[n:]); err != nil {
		return node, n + vn, err
	}
	n += vn
	if node.UpdatedAt, vn, err = unmarshalTime(bs[n:]); err != nil {
		return node, n + vn, err
	}
	n += vn
	return node, n, nil
}

func (relationshipNodeMUS) Size(node RelationshipNode) (size int) {
	size = ord.String.Size(node.ID)
	size += sizeStrings(node.Labels)
	size += ord.String.Size(node.Properties.Type)
	size += ord.String.Size(node.Properties.Description)
	size += sizeFloat(node.Properties.Confidence)
	size += ord.String.Size(node.Properties.SourceEntityID)
	size += ord.String.Size(node.Properties.TargetEntityID)
	size += sizeTime(node.CreatedAt)
	size += sizeTime(node.UpdatedAt)
	return size
}

func (s relationshipNodeMUS) Skip(bs []byte) (n int, err error) {
	_, n, err = s.Unmarshal(bs)
	return n, err
}

type graphRelationshipMUS struct{}

func (graphRelationshipMUS) Marshal(edge GraphRelationship, bs []byte) (n int) {
	n = ord.String.Marshal(edge.ID, bs)
	n += ord.String.Marshal(edge.Type, bs[n:])
	n += ord.String.Marshal(edge.StartNodeID, bs[n:])
	n += ord.String.Marshal(edge.EndNodeID, bs[n:])
	n += marshalFloat(edge.Properties.ExtractionConfidence, bs[n:])
	n += marshalTime(edge.Properties.CreatedAt, bs[n:])
	return n
}

func (graphRelationshipMUS) Unmarshal(bs []byte) (edge GraphRelationship, n int, err error) {
	var vn int
	if edge.ID, n, err = ord.String.Unmarshal(bs); err != nil {
		return edge, n, err
	}
	if edge.Type, vn, err = ord.String.Unmarshal(bs[n:]); err != nil {
		return edge, n + vn, err
	}
	n += vn
	if edge.StartNodeID, vn, err = ord.String.Unmarshal(bs[n:]); err != nil {
		return edge, n + vn, err
	}
	n += vn
	if edge.EndNodeID, vn, err = ord.String.Unmarshal(bs[n:]); err != nil {
		return edge, n + vn, err
	}
	n += vn
	if edge.Properties.ExtractionConfidence, vn, err = unmarshalFloat(bs[n:]); err != nil {
		return edge, n + vn, err
	}
	n += vn
	if edge.Properties.CreatedAt, vn, err = unmarshalTime(bs[n:]); err != nil {
		return edge, n + vn, err
	}
	n += vn
	return edge, n, nil
}

func (graphRelationshipMUS) Size(edge GraphRelationship) (size int) {
	size = ord.String.Size(edge.ID)
	size += ord.String.Size(edge.Type)
	size += ord.String.Size(edge.StartNodeID)
	size += ord.String.Size(edge.EndNodeID)
	size += sizeFloat(edge.Properties.ExtractionConfidence)
	size += sizeTime(edge.Properties.CreatedAt)
	return size
}

func (s graphRelationshipMUS) Skip(bs []byte) (n int, err error) {
	_, n, err = s.Unmarshal(bs)
	return n, err
}
