// Package config loads the project configuration for elformprevent.
//
//	            +-------------+
//	            |   Config    |
//	            | (Settings)  |
//	            +------+------+
//	                   |
//	      +------------+------------+
//	      |            |            |
//	+-----+-----+ +----+----+ +-----+-----+
//	|   YAML    | |  JSON   | |    HCL    |
//	|  Parser   | | Parser  | |  Parser   |
//	+-----------+ +---------+ +-----------+
//
// 🎯 Purpose:
// - Reads .elformrc.{yaml,yml,json,hcl} from a project root
// - Applies defaults for every field left out
// - Rejects markers that would make the rewrite non-idempotent
// - Converts the file into plugin options
//
// 🔄 Flow:
// 1. Discover looks for the first known file name in a directory
// 2. The parser registered for the extension decodes it (unknown fields fail)
// 3. Validate fills defaults and checks values
// 4. PluginOptions feeds plugin.New
//
// 📝 Fields:
//
//	include: ["**/*.vue"]            # glob, matched against path and basename
//	exclude: []                      # glob, same dual match
//	enabled: true
//	marker: "@submit.native.prevent" # must contain "@submit"
//	skip: ["**/node_modules", "**/.git", "**/dist"]
//	workers: 0                       # 0 means GOMAXPROCS
//
// Invalid glob patterns are not an error here. They are reported when the
// plugin is built and simply never match.
//
// 🔍 Example:
//
//	cfg, err := config.Discover(ctx, ".")
//	if err != nil {
//		return err
//	}
//
//	p, err := plugin.New(ctx, cfg.PluginOptions()...)
package config
