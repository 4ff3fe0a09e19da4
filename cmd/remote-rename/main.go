// nolint: gocritic
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path"
	"strings"
	"syscall"

	"github.com/spf13/pflag"

	"github.com/keboola/remote-files/internal/pkg/config"
	"github.com/keboola/remote-files/internal/pkg/dependencies"
	"github.com/keboola/remote-files/internal/pkg/env"
	"github.com/keboola/remote-files/internal/pkg/remote/operation/rename"
	"github.com/keboola/remote-files/internal/pkg/remote/remotepath"
	"github.com/keboola/remote-files/internal/pkg/utils/errors"
)

const envFile = ".env"

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	envs, err := loadEnvs(envFile)
	if err == nil {
		err = run(ctx, os.Args[1:], envs, os.Stdout, os.Stderr) // nolint:forbidigo
	}

	if err != nil {
		fmt.Fprintln(os.Stderr, errors.PrefixError(err, "fatal error").Error()) // nolint:forbidigo
		cancel()
		os.Exit(1)
	}
}

// loadEnvs merges OS ENVs with the optional dotenv file, OS ENVs take precedence.
func loadEnvs(path string) (*env.Map, error) {
	envs := env.FromOs()
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) { // nolint:forbidigo
		return envs, nil
	}

	fileEnvs, err := env.LoadEnvFile(path)
	if err != nil {
		return nil, err
	}

	envs.Merge(fileEnvs, false)
	return envs, nil
}

// run renames the file or folder given by the first positional argument to the name given by the second one.
// A folder path must end with a slash.
func run(ctx context.Context, args []string, envs env.Provider, stdout, stderr io.Writer) error {
	cfg, positional, err := config.BindArgs(args, envs)
	if errors.Is(err, pflag.ErrHelp) {
		// Stop on --help flag
		return nil
	} else if err != nil {
		return err
	}

	if len(positional) != 2 {
		return errors.Errorf(`expected 2 arguments "<old remote path> <new name>", found %d`, len(positional))
	}

	baseDeps, err := dependencies.NewBaseDepsFromConfig(cfg, envs, stdout, stderr, nil)
	if err != nil {
		return err
	}

	d, err := dependencies.NewRemoteDeps(ctx, baseDeps)
	if err != nil {
		return err
	}

	oldRemotePath, newName := positional[0], positional[1]
	req := rename.Request{
		OldName:       path.Base(strings.TrimRight(oldRemotePath, remotepath.Separator)),
		OldRemotePath: oldRemotePath,
		NewName:       newName,
		IsFolder:      remotepath.IsFolder(oldRemotePath),
	}

	outcome := rename.Run(
		ctx, d.WebDAVClient(), d.Logger(), req,
		rename.WithReadTimeout(cfg.ReadTimeout),
		rename.WithConnectionTimeout(cfg.ConnectionTimeout),
		rename.WithTelemetry(d.Telemetry()),
	)
	return outcome.Err()
}
