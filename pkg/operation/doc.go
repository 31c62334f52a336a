/*
Package operation walks a project directory and runs every file through a
transformer, the way a build host would.

	+-------------+
	|    Walk     |
	| (doublestar)|
	+------+------+
	       |
	+------+------+
	|  Transform  |
	|  (errgroup) |
	+------+------+
	       |
	+------+------+
	|   Status    |
	| (write/diff)|
	+-------------+

🎯 Purpose:
- Supplies the I/O the transformer deliberately leaves to its host
- Hands each file over with its slash separated root relative path as the id
- Records one status.FileInfo per file

🔄 Flow:
1. Walk the root with "**", pruning directories that match a skip pattern
2. Transform files with a bounded worker pool
3. Depending on the mode, write the result, compute a diff or just report

⚡ Modes:
- ModeWrite: rewritten files are replaced through a temp file and rename
- ModeCheck: nothing is written, rewritten files are reported as modified
- ModeDiff: like check, with a line diff attached to each modified file

📝 Results are always returned in walk order, regardless of which worker
finished first. A file that cannot be read, transformed or written is
reported with status.StatusError and does not stop the run.

🔍 Example:

	runner, err := operation.New(operation.Options{
		Root:        "./web",
		Transformer: p,
		Skip:        config.DefaultSkip,
		Mode:        operation.ModeCheck,
	})
	report, err := runner.Run(ctx)
*/
package operation
