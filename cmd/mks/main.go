package main

import (
	"fmt"
	"os"
	"os/exec"
	"syscall"
)

func main() {
	bin, err := exec.LookPath("makespan")
	if err != nil {
		fmt.Fprintln(os.Stderr, "mks: makespan not found on PATH")
		os.Exit(1)
	}
	if err := syscall.Exec(bin, append([]string{"makespan"}, os.Args[1:]...), os.Environ()); err != nil {
		fmt.Fprintf(os.Stderr, "mks: %v\n", err)
		os.Exit(1)
	}
}
