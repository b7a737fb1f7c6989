/*
Copyright © 2019 Matt Muldowney <matt.muldowney@gmail.com>

*/
package main

import "github.com/mmuldo/colorweave/cmd"

func main() {
	cmd.Execute()
}
