// Command radiosim runs radio medium simulations described by scenario files.
package main

import "github.com/sarchlab/radiosim/radiosim/cmd"

func main() {
	cmd.Execute()
}
