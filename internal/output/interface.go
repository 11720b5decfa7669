// Copyright 2026 Prdump Authors
//
// Licensed under the Business Source License 1.1 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     https://mariadb.com/bsl11
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package output

// OutputWriter defines the interface for writing pull request records.
// This abstraction allows for different output encodings (JSON array,
// NDJSON, etc.) to be implemented without changing the export logic.
type OutputWriter interface {
	// Write appends a single record to the output.
	Write(record interface{}) error

	// Close finalizes the output and releases any resources. For
	// file-backed writers this is the point where the result becomes
	// visible; nothing is published before Close returns.
	Close() error
}
