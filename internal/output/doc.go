// Copyright 2025 SirSeer, LLC
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

// Package output writes flattened pull request data as CSV with a fixed
// column schema. Rows are written in the order they are received; the
// header line is emitted exactly once, before the first row.
//
// Example usage:
//
//	w, err := output.NewFileWriter("prs.csv")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer w.Close()
//
//	for _, pr := range prs {
//	    if err := w.Write(output.NewRow(pr)); err != nil {
//	        return err
//	    }
//	}
package output
