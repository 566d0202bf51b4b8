package main

import "github.com/alchy/PianoChord-sub000/cmd"

func main() {
	cmd.Execute()
}
