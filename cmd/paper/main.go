// Command paper is the notepad calculator's CLI: one-shot evaluation,
// batch file runs, unit/currency conversion, and an interactive repl.
package main

import "github.com/paperlang/paper/cmd/paper/cmd"

func main() {
	cmd.Execute()
}
