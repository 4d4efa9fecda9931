package main

import "github.com/nickharris808/HPC-Thermal-Stability-Benchmark/cmd"

func main() {
	cmd.Execute()
}
