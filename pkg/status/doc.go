/*
Package status manages file storage and outcome tracking for a transform run.

	            +-------------+
	            |   Status    |
	            |  (Storage)  |
	            +------+------+
	                   |
	      +-----------+-----------+
	      |                       |
	+-----+-----+           +----+----+
	|   Files   |           | Outcome |
	| (Storage) |           | (UI/UX) |
	+-----------+           +---------+

🎯 Purpose:
- Reads source files relative to a project root
- Replaces rewritten files atomically, keeping their permissions
- Tracks one outcome per file (unchanged, modified, error)
- Summarizes a run for the console

⚡ Key Responsibilities:
- File system operations
- Status tracking
- Thread-safe bookkeeping for concurrent workers
*/
package status
