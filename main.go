// Command archambeau-site is the local development entrypoint: it compiles
// the page runtime and then serves the site with any arguments passed through.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"os/signal"
	"syscall"
	"time"

	"github.com/Its-donkey/archambeau-site/logging"
)

// wasmOutput is where the page runtime bundle is written for the static site.
const wasmOutput = "site/main.wasm"

const shutdownGrace = 2 * time.Second

// devStep is one command of the dev loop. Build steps must finish before the
// server starts; the server runs until interrupted.
type devStep struct {
	name   string
	args   []string
	env    []string
	server bool
}

func devSteps(serverArgs []string) []devStep {
	return []devStep{
		{
			name: "site-wasm",
			args: []string{"go", "build", "-o", wasmOutput, "./cmd/site-wasm"},
			env:  []string{"GOOS=js", "GOARCH=wasm"},
		},
		{
			name:   "site-server",
			args:   append([]string{"go", "run", "./cmd/site-server"}, serverArgs...),
			server: true,
		},
	}
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	logger := logging.New("dev", logging.INFO, os.Stdout)
	if err := runDev(ctx, logger, devSteps(os.Args[1:])); err != nil {
		logger.Error("dev", "dev loop stopped", err, nil)
		os.Exit(1)
	}
}

// runDev runs the build steps in order and then the server step. An
// interrupt is a clean exit.
func runDev(ctx context.Context, logger *logging.Logger, steps []devStep) error {
	if len(steps) == 0 {
		return errors.New("no dev steps configured")
	}
	for _, step := range steps {
		started := time.Now()
		logger.Info("dev", "starting "+step.name, map[string]any{"args": step.args})
		var err error
		if step.server {
			err = serve(ctx, step)
		} else {
			err = stepCommand(ctx, step).Run()
		}
		if ctx.Err() != nil {
			logger.Info("dev", "interrupted", map[string]any{"step": step.name})
			return nil
		}
		if err != nil {
			return fmt.Errorf("%s: %w", step.name, err)
		}
		logger.Info("dev", step.name+" finished", map[string]any{"duration": time.Since(started).String()})
	}
	return nil
}

// serve runs the server step and gives it shutdownGrace to exit after an
// interrupt before it is killed.
func serve(ctx context.Context, step devStep) error {
	cmd := stepCommand(context.Background(), step)
	if err := cmd.Start(); err != nil {
		return err
	}
	exited := make(chan error, 1)
	go func() { exited <- cmd.Wait() }()

	select {
	case err := <-exited:
		return err
	case <-ctx.Done():
		_ = cmd.Process.Signal(os.Interrupt)
		select {
		case <-exited:
		case <-time.After(shutdownGrace):
			_ = cmd.Process.Kill()
			<-exited
		}
		return nil
	}
}

func stepCommand(ctx context.Context, step devStep) *exec.Cmd {
	cmd := exec.CommandContext(ctx, step.args[0], step.args[1:]...)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if len(step.env) > 0 {
		cmd.Env = append(os.Environ(), step.env...)
	}
	return cmd
}
