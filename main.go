package main

import "github.com/VolumeFi/gpu-dao-cw/cmd"

func main() {
	cmd.Execute()
}
