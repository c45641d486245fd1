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


package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writePagesFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "pages.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadPages(t *testing.T) {
	path := writePagesFile(t, `[
		{"pageNumber": 2, "text": "second page"},
		{"pageNumber": 1, "text": "first page", "summary": "short"}
	]`)

	pages, err := loadPages(path)
	require.NoError(t, err)
	require.Len(t, pages, 2)
	assert.Equal(t, 2, pages[0].PageNumber)
	assert.Equal(t, "second page", pages[0].ExtractedText)
	assert.Equal(t, "short", pages[1].Summary)
}

func TestLoadPagesRejectsEmptyFile(t *testing.T) {
	path := writePagesFile(t, `[]`)
	_, err := loadPages(path)
	assert.Error(t, err)
}

func TestLoadPagesRejectsBlankText(t *testing.T) {
	path := writePagesFile(t, `[{"pageNumber": 1, "text": "   "}]`)
	_, err := loadPages(path)
	assert.Error(t, err)
}

func TestLoadPagesMissingFile(t *testing.T) {
	_, err := loadPages(filepath.Join(t.TempDir(), "nope.json"))
	assert.Error(t, err)
}
