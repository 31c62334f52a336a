// Copyright 2025 walteh LLC
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

package text_test

import (
	"context"
	"fmt"

	"github.com/walteh/elformprevent/pkg/text"
)

func ExampleTagRewriter_Rewrite() {
	rewriter, err := text.NewTagRewriter(text.ElFormRule())
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}

	result, err := rewriter.Rewrite(context.Background(),
		`<el-form :model="form"><el-form-item></el-form-item></el-form><el-form @submit="save"></el-form>`)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}

	fmt.Printf("Text: %s\n", result.Text)
	fmt.Printf("Rewritten: %d\n", result.Rewritten)
	fmt.Printf("Skipped: %d\n", result.Skipped)
	fmt.Printf("Changed: %v\n", result.Changed)

	// Output:
	// Text: <el-form :model="form" @submit.native.prevent><el-form-item></el-form-item></el-form><el-form @submit="save"></el-form>
	// Rewritten: 1
	// Skipped: 1
	// Changed: true
}

func ExampleValidateRule() {
	err := text.ValidateRule(text.TagRule{
		Tag:    "el-form",
		Guard:  "@submit",
		Marker: "v-on:submit.prevent",
	})
	fmt.Printf("Validation error: %v\n", err)

	// Output:
	// Validation error: marker "v-on:submit.prevent" must contain guard "@submit"
}
