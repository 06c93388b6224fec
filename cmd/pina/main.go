// Pina is a speaking shell for blind and low-vision users. Every key press,
// every completed word and the output of every command is read aloud by a
// text-to-speech engine.
package main

import (
	"os"

	"src.pina.sh/pkg/buildinfo"
	"src.pina.sh/pkg/prog"
	"src.pina.sh/pkg/shell"
)

func main() {
	os.Exit(prog.Run(
		[3]*os.File{os.Stdin, os.Stdout, os.Stderr}, os.Args,
		prog.Composite(buildinfo.Program, shell.Program{})))
}
