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


package badger

// Key prefixes for the graph element kinds. Node ids are content-addressed
// slugs, so the id itself is the remainder of the key.
const (
	conceptNodePrefix      = "gracon"
	entityNodePrefix       = "graent"
	relationshipNodePrefix = "grarel"
	correlationEdgePrefix  = "gracor"
)

func makeKey(prefix, id string) []byte {
	return []byte(prefix + ":" + id)
}

func keyPrefix(prefix string) []byte {
	return []byte(prefix + ":")
}
