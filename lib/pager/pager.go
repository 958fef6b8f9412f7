package pager

import (
	"io"
	"os"
	"os/exec"
	"strings"
)

const DEFAULT_PAGER = "less"

// SetupPager pipes output through the user's pager when enabled. The
// returned function waits for the pager to exit.
func SetupPager(enabled bool, stdout, stderr io.Writer) (io.Writer, func()) {
	if !enabled {
		return stdout, func() {}
	}

	args := strings.Fields(os.Getenv("GITLET_PAGER"))
	if len(args) == 0 {
		args = strings.Fields(os.Getenv("PAGER"))
	}
	if len(args) == 0 {
		args = []string{DEFAULT_PAGER}
	}

	reader, writer := io.Pipe()

	cmd := exec.Command(args[0], args[1:]...)
	cmd.Env = append(os.Environ(), "LESS=FRX")
	cmd.Stdin = reader
	cmd.Stdout = stdout
	cmd.Stderr = stderr

	if err := cmd.Start(); err != nil {
		reader.Close()
		writer.Close()
		return stdout, func() {}
	}

	done := make(chan struct{})
	go func() {
		cmd.Wait()
		reader.Close()
		close(done)
	}()

	return writer, func() {
		writer.Close()
		<-done
	}
}
