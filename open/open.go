// Package open hands files to the desktop's default viewer.
package open

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"

	"github.com/huewheel/huewheel/constant"
)

// Start opens path with the default application and returns without waiting.
func Start(path string) error {
	cmd, err := command(runtime.GOOS, path)
	if err != nil {
		return err
	}

	return cmd.Start()
}

// Run is Start that waits for the viewer to exit.
func Run(path string) error {
	cmd, err := command(runtime.GOOS, path)
	if err != nil {
		return err
	}

	return cmd.Run()
}

func command(goos, path string) (*exec.Cmd, error) {
	switch goos {
	case constant.Windows:
		rundll := filepath.Join(os.Getenv("SYSTEMROOT"), "System32", "rundll32.exe")
		return exec.Command(rundll, "url.dll,FileProtocolHandler", path), nil
	case constant.Darwin:
		return exec.Command("open", path), nil
	case constant.Linux:
		return exec.Command("xdg-open", path), nil
	case constant.Android:
		return exec.Command("termux-open", path), nil
	default:
		return nil, fmt.Errorf("opening files is not supported on %s", goos)
	}
}
