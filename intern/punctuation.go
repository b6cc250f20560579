// Copyright 2020-2025 Buf Technologies, Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package intern

// PunctuationID identifies a custom (non-predefined) punctuation sequence
// interned by a PunctuationTable.
type PunctuationID = ID

// PunctuationTable interns the text of user-defined operator sequences.
// Predefined punctuation (dot families, colon, arrows, ...) never touches
// this table: it is represented directly as an enum variant in package
// token. This is the same shape as Table, so it is implemented as one.
type PunctuationTable struct {
	Table
}

// NewPunctuationTable creates an empty punctuation table.
func NewPunctuationTable() *PunctuationTable {
	return &PunctuationTable{Table: Table{ids: make(map[string]ID)}}
}
