// Package plugin adds a default submit-prevention binding to element-ui forms.
//
//	        +-----------------+
//	        |  Transform(req) |
//	        +--------+--------+
//	                 |
//	        +--------+--------+
//	        | filter.Matcher  |  enabled? custom filter? include/exclude?
//	        +--------+--------+
//	                 | eligible
//	        +--------+--------+
//	        | text.TagRewriter|  <el-form ...> without @submit
//	        +--------+--------+
//	                 |
//	      Unchanged  |  Rewritten{Code}
//	                 v
//
// 🎯 Purpose:
// - Gives every <el-form> without a submit binding @submit.native.prevent
// - Leaves forms that already bind @submit (in any form) byte for byte intact
// - Never touches <el-form-item> or other tags sharing the prefix
//
// 🔄 Flow:
// 1. The host calls Transform once per module with its code and identifier
// 2. The identifier is gated by the filter (see package filter)
// 3. Eligible code goes through a single rewrite pass
// 4. The host keeps its text on Unchanged, or swaps in Result.Code
//
// ⚡ Guarantees:
// - Transform is a pure function of its request and the plugin options
// - A Plugin is immutable after New and safe for concurrent use
// - Transforming a rewritten result again yields Unchanged
// - No source map is produced
//
// 🔍 Example:
//
//	p, err := plugin.New(ctx,
//		plugin.WithInclude("src/**/*.vue"),
//		plugin.WithExclude("**/*.spec.vue"),
//	)
//	if err != nil {
//		return err
//	}
//
//	res, err := p.Transform(ctx, plugin.Request{Code: code, ID: "src/App.vue"})
//	if err != nil {
//		return err
//	}
//	if res.Kind == plugin.Rewritten {
//		code = res.Code
//	}
package plugin
