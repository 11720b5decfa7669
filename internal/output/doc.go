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

// Package output provides utilities for writing export results as a JSON
// array, either to a stream such as stdout or to a file.
//
// The primary type is Writer, which provides thread-safe writing of JSON
// records. The array only becomes visible once Close succeeds: stream
// writers buffer records in memory and flush on Close, while file-backed
// writers write to a temporary file and rename it into place. A crash or
// mid-export failure therefore never leaves a truncated result at the
// destination.
//
// Example usage:
//
//	w, err := output.NewFileWriter("prs.json")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	for _, record := range records {
//	    if err := w.Write(record); err != nil {
//	        w.Abort()
//	        log.Fatal(err)
//	    }
//	}
//
//	if err := w.Close(); err != nil {
//	    log.Fatal(err)
//	}
package output
